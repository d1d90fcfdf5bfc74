package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Emmynem/alphaprimeclub-api/internals/configs"
	"github.com/Emmynem/alphaprimeclub-api/internals/constants"
	model "github.com/Emmynem/alphaprimeclub-api/internals/features/payments/model"
	helper "github.com/Emmynem/alphaprimeclub-api/internals/helpers"
)

// PaymentEngine drives the processing → {completed | cancelled} transition
// for a payment and the pending → paid transition of its application. It only
// knows its collaborators by contract: the ledger for guarded reads/writes,
// the mailer for notifications, and one verifier per remote gateway.
type PaymentEngine struct {
	ledger            Ledger
	mailer            Mailer
	verifiers         map[string]Verifier
	squadVerifyAmount bool
}

// NewPaymentEngine wires the production collaborators from config.
func NewPaymentEngine(cfg configs.Config, ledger Ledger, mailer Mailer) *PaymentEngine {
	return NewEngine(ledger, mailer, map[string]Verifier{
		constants.GatewayPaystack: NewPaystackVerifier(cfg.PaystackVerifyURL),
		constants.GatewaySquad:    NewSquadVerifier(cfg.SquadVerifyURL),
	}, cfg.SquadVerifyAmount)
}

// NewEngine takes explicit collaborators.
func NewEngine(ledger Ledger, mailer Mailer, verifiers map[string]Verifier, squadVerifyAmount bool) *PaymentEngine {
	return &PaymentEngine{
		ledger:            ledger,
		mailer:            mailer,
		verifiers:         verifiers,
		squadVerifyAmount: squadVerifyAmount,
	}
}

// =======================
// Admission
// =======================

type AdmitInput struct {
	ApplicationUniqueID string
	Amount              float64
	Gateway             string
	Reference           string // optional, generated when empty
}

type AdmitResult struct {
	UniqueID  string  `json:"unique_id"`
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
}

// ExistingPayment is the conflict payload pointing at the in-flight payment.
type ExistingPayment struct {
	Reference string `json:"reference"`
	UniqueID  string `json:"unique_id"`
}

// AdmitPayment creates a new processing payment for an application, enforcing
// at most one in-flight payment per application. On conflict the existing
// payment's reference is returned instead of creating a duplicate.
func (e *PaymentEngine) AdmitPayment(ctx context.Context, in AdmitInput) (*AdmitResult, *EngineError) {
	application, err := e.ledger.FindActiveApplication(ctx, in.ApplicationUniqueID)
	if err != nil {
		return nil, internalErr(err.Error())
	}
	if application == nil {
		return nil, notFoundErr("User not found")
	}

	current, err := e.ledger.FindProcessingPaymentForApplication(ctx, in.ApplicationUniqueID)
	if err != nil {
		return nil, internalErr(err.Error())
	}
	if current != nil {
		return nil, conflictErr("You have a pending payment!!", ExistingPayment{
			Reference: current.Reference,
			UniqueID:  current.UniqueID,
		})
	}

	reference := strings.TrimSpace(in.Reference)
	if reference == "" {
		reference = helper.RandomReference()
	}

	payment := &model.Payment{
		UniqueID:            uuid.NewString(),
		ApplicationUniqueID: in.ApplicationUniqueID,
		Type:                constants.TransactionTypePayment,
		Gateway:             constants.NormalizeGateway(in.Gateway),
		PaymentMethod:       constants.PaymentMethodCard,
		Amount:              in.Amount,
		Reference:           reference,
		PaymentStatus:       constants.Processing,
		Details:             helper.PaymentDetails(in.Amount, constants.TransactionTypePayment, constants.PaymentMethodCard),
		Status:              constants.DefaultStatus,
	}

	if err := e.ledger.CreatePayment(ctx, payment); err != nil {
		// lost the admission race to a concurrent insert: report the winner
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if winner, werr := e.ledger.FindProcessingPaymentForApplication(ctx, in.ApplicationUniqueID); werr == nil && winner != nil {
				return nil, conflictErr("You have a pending payment!!", ExistingPayment{
					Reference: winner.Reference,
					UniqueID:  winner.UniqueID,
				})
			}
			return nil, conflictErr("You have a pending payment!!", nil)
		}
		return nil, internalErr(err.Error())
	}

	return &AdmitResult{
		UniqueID:  payment.UniqueID,
		Reference: payment.Reference,
		Amount:    payment.Amount,
	}, nil
}

// =======================
// Cancellation
// =======================

// CancelPayment cancels the processing payment with this unique id.
func (e *PaymentEngine) CancelPayment(ctx context.Context, uniqueID string) *EngineError {
	payment, err := e.ledger.FindProcessingPaymentByUniqueID(ctx, uniqueID)
	if err != nil {
		return internalErr(err.Error())
	}
	return e.cancel(ctx, payment, UserCancelPaymentTemplate())
}

// CancelPaymentByReference cancels the processing payment carrying this
// reference.
func (e *PaymentEngine) CancelPaymentByReference(ctx context.Context, reference string) *EngineError {
	payment, err := e.ledger.FindProcessingPaymentByReference(ctx, reference)
	if err != nil {
		return internalErr(err.Error())
	}
	return e.cancel(ctx, payment, UserCancelPaymentViaReferenceTemplate(reference))
}

func (e *PaymentEngine) cancel(ctx context.Context, payment *model.Payment, tmpl MailTemplate) *EngineError {
	if payment == nil {
		return notFoundErr("Processing Payment not found!")
	}
	if payment.Application == nil {
		return internalErr("payment has no application loaded")
	}

	// notify first; a payment is only cancelled once the user has been told
	if engineErr := e.notify(ctx, payment.Application.Email, tmpl); engineErr != nil {
		return engineErr
	}

	if err := e.ledger.MarkPaymentCancelled(ctx, payment); err != nil {
		if errors.Is(err, ErrPaymentRowUnchanged) {
			return persistenceErr("Payment not found")
		}
		return internalErr(err.Error())
	}
	return nil
}

// =======================
// Completion
// =======================

type CompleteResult struct {
	ApplicationUniqueID string
}

// CompletePayment verifies the transaction with its gateway (card payments on
// a remote gateway only), notifies the applicant, then atomically marks the
// payment completed and the application paid.
func (e *PaymentEngine) CompletePayment(ctx context.Context, reference string) (*CompleteResult, *EngineError) {
	payment, err := e.ledger.FindProcessingPaymentByReference(ctx, reference)
	if err != nil {
		return nil, internalErr(err.Error())
	}
	if payment == nil {
		return nil, notFoundErr("Processing Payment not found!")
	}
	if payment.Application == nil {
		return nil, internalErr("payment has no application loaded")
	}

	if payment.PaymentMethod == constants.PaymentMethodCard && payment.Gateway != constants.GatewayInternal {
		if engineErr := e.verifyWithGateway(ctx, payment); engineErr != nil {
			return nil, engineErr
		}
	}

	tmpl := UserCompletePaymentTemplate(payment.Reference, helper.FormatCurrencyAmount(payment.Amount))
	if engineErr := e.notify(ctx, payment.Application.Email, tmpl); engineErr != nil {
		return nil, engineErr
	}

	if err := e.ledger.MarkPaymentCompleted(ctx, payment); err != nil {
		switch {
		case errors.Is(err, ErrPaymentRowUnchanged):
			return nil, persistenceErr("Error completing payment")
		case errors.Is(err, ErrApplicationRowUnchanged):
			return nil, persistenceErr("Error updating application status")
		default:
			return nil, internalErr(err.Error())
		}
	}

	return &CompleteResult{ApplicationUniqueID: payment.ApplicationUniqueID}, nil
}

func (e *PaymentEngine) verifyWithGateway(ctx context.Context, payment *model.Payment) *EngineError {
	verifier, ok := e.verifiers[payment.Gateway]
	if !ok {
		return validationErr("Invalid transaction gateway!")
	}

	appDefault, err := e.ledger.FindAppDefault(ctx, verifier.KeyCriteria())
	if err != nil {
		return internalErr(err.Error())
	}
	if appDefault == nil {
		return notFoundErr(fmt.Sprintf("App Default for %s Gateway not found!", verifier.Name()))
	}

	result, err := verifier.Verify(ctx, payment.Reference, appDefault.Value)
	if err != nil {
		e.recordEvent(ctx, payment, "error", nil)
		var gatewayErr *GatewayError
		if errors.As(err, &gatewayErr) {
			return upstreamErr(gatewayErr.Message, gatewayErr.Code)
		}
		return upstreamErr(err.Error(), "")
	}

	switch {
	case !result.Verified:
		e.recordEvent(ctx, payment, "unverified", result)
		return upstreamErr("Error getting payment for validation", "")
	case result.TransactionStatus != "success":
		e.recordEvent(ctx, payment, "failed", result)
		status := result.TransactionStatus
		if payment.Gateway == constants.GatewayPaystack {
			status = strings.ToUpper(status)
		}
		return upstreamErr(fmt.Sprintf("Payment unsuccessful (Status - %s)", status), "")
	case e.squadVerifyAmount && payment.Gateway == constants.GatewaySquad && result.Amount < payment.Amount:
		e.recordEvent(ctx, payment, "amount_mismatch", result)
		return upstreamErr("Invalid transaction amount!", "")
	}

	e.recordEvent(ctx, payment, "verified", result)
	return nil
}

// recordEvent writes the audit row for a verification attempt. Best-effort.
func (e *PaymentEngine) recordEvent(ctx context.Context, payment *model.Payment, outcome string, result *VerificationResult) {
	event := &model.PaymentGatewayEvent{
		UniqueID:        uuid.NewString(),
		PaymentUniqueID: payment.UniqueID,
		Gateway:         payment.Gateway,
		Reference:       payment.Reference,
		Outcome:         outcome,
	}
	if result != nil {
		event.Payload = result.Raw
	}
	if err := e.ledger.RecordGatewayEvent(ctx, event); err != nil {
		log.Printf("[WARN] gateway event not recorded (%s %s): %v", payment.Gateway, payment.Reference, err)
	}
}

func (e *PaymentEngine) notify(ctx context.Context, toEmail string, tmpl MailTemplate) *EngineError {
	result, err := e.mailer.Send(ctx, Mail{
		ToEmail: toEmail,
		Subject: tmpl.Subject,
		Text:    tmpl.Text,
		HTML:    tmpl.HTML,
	})
	if err != nil {
		return internalErr(err.Error())
	}
	if !result.Success {
		return upstreamErr(result.Message, "")
	}
	if result.DataIsNull() {
		return upstreamErr("Unable to send email to user", "")
	}
	return nil
}
