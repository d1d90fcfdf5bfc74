package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"gorm.io/datatypes"

	"github.com/Emmynem/alphaprimeclub-api/internals/constants"
)

// VerificationResult is the gateway-neutral outcome of a remote verify call.
type VerificationResult struct {
	// Verified is the gateway's top-level success flag; false means the
	// gateway could not even look the transaction up.
	Verified bool
	// TransactionStatus is the nested status of the transaction itself,
	// "success" when the charge went through.
	TransactionStatus string
	// Amount as reported by the gateway, in the gateway's own unit.
	Amount float64
	// Raw is the undecoded gateway payload, kept for the audit trail.
	Raw datatypes.JSON
}

// Verifier confirms a transaction against one named gateway.
type Verifier interface {
	// Name as used in user-facing messages, e.g. "Paystack".
	Name() string
	// KeyCriteria is the app_defaults criteria holding this gateway's secret.
	KeyCriteria() string
	Verify(ctx context.Context, reference, secretKey string) (*VerificationResult, error)
}

// GatewayError is a failed or refused upstream call, preserving the
// gateway's own message and error code where available.
type GatewayError struct {
	Code    string
	Message string
}

func (e *GatewayError) Error() string { return e.Message }

func verifyRequest(ctx context.Context, client *http.Client, url, secretKey string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+secretKey)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &GatewayError{Code: "ECONN", Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GatewayError{Code: "EREAD", Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// surface the gateway's own message when the error body carries one
		var errBody struct {
			Message string `json:"message"`
		}
		message := resp.Status
		if json.Unmarshal(body, &errBody) == nil && errBody.Message != "" {
			message = errBody.Message
		}
		return nil, &GatewayError{Code: strconv.Itoa(resp.StatusCode), Message: message}
	}

	return body, nil
}

// =======================
// Paystack
// =======================

// PaystackVerifier calls GET <base><reference> with a bearer secret.
// Success requires status=true and data.status="success".
type PaystackVerifier struct {
	BaseURL string
	Client  *http.Client
}

func NewPaystackVerifier(baseURL string) *PaystackVerifier {
	return &PaystackVerifier{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (v *PaystackVerifier) Name() string        { return "Paystack" }
func (v *PaystackVerifier) KeyCriteria() string { return constants.PaystackSecretKeyCriteria }

func (v *PaystackVerifier) Verify(ctx context.Context, reference, secretKey string) (*VerificationResult, error) {
	body, err := verifyRequest(ctx, v.Client, v.BaseURL+reference, secretKey)
	if err != nil {
		return nil, err
	}

	var decoded struct {
		Status bool `json:"status"`
		Data   struct {
			Status string  `json:"status"`
			Amount float64 `json:"amount"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("paystack response decode: %w", err)
	}

	return &VerificationResult{
		Verified:          decoded.Status,
		TransactionStatus: decoded.Data.Status,
		Amount:            decoded.Data.Amount,
		Raw:               datatypes.JSON(body),
	}, nil
}

// =======================
// Squad
// =======================

// SquadVerifier calls GET <base><reference> with a bearer secret.
// Success requires success=true and data.transaction_status="success".
type SquadVerifier struct {
	BaseURL string
	Client  *http.Client
}

func NewSquadVerifier(baseURL string) *SquadVerifier {
	return &SquadVerifier{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (v *SquadVerifier) Name() string        { return "Squad" }
func (v *SquadVerifier) KeyCriteria() string { return constants.SquadSecretKeyCriteria }

func (v *SquadVerifier) Verify(ctx context.Context, reference, secretKey string) (*VerificationResult, error) {
	body, err := verifyRequest(ctx, v.Client, v.BaseURL+reference, secretKey)
	if err != nil {
		return nil, err
	}

	var decoded struct {
		Success bool `json:"success"`
		Data    struct {
			TransactionStatus string  `json:"transaction_status"`
			TransactionAmount float64 `json:"transaction_amount"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("squad response decode: %w", err)
	}

	return &VerificationResult{
		Verified:          decoded.Success,
		TransactionStatus: decoded.Data.TransactionStatus,
		Amount:            decoded.Data.TransactionAmount,
		Raw:               datatypes.JSON(body),
	}, nil
}
