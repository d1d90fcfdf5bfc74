package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Emmynem/alphaprimeclub-api/internals/constants"
	applicationModel "github.com/Emmynem/alphaprimeclub-api/internals/features/applications/model"
	model "github.com/Emmynem/alphaprimeclub-api/internals/features/payments/model"
)

/* =======================================================================
   Mock collaborators
======================================================================= */

type mockLedger struct {
	findApplication    func(uniqueID string) (*applicationModel.Application, error)
	findByUniqueID     func(uniqueID string) (*model.Payment, error)
	findByReference    func(reference string) (*model.Payment, error)
	findForApplication func(applicationUniqueID string) (*model.Payment, error)
	findAppDefault     func(criteria string) (*model.AppDefault, error)
	createPayment      func(payment *model.Payment) error
	markCancelled      func(payment *model.Payment) error
	markCompleted      func(payment *model.Payment) error

	created   []*model.Payment
	cancelled []*model.Payment
	completed []*model.Payment
	events    []*model.PaymentGatewayEvent

	// shared call trace for ordering assertions
	trace *[]string
}

func (m *mockLedger) record(step string) {
	if m.trace != nil {
		*m.trace = append(*m.trace, step)
	}
}

func (m *mockLedger) FindActiveApplication(_ context.Context, uniqueID string) (*applicationModel.Application, error) {
	if m.findApplication != nil {
		return m.findApplication(uniqueID)
	}
	return nil, nil
}

func (m *mockLedger) FindProcessingPaymentByUniqueID(_ context.Context, uniqueID string) (*model.Payment, error) {
	if m.findByUniqueID != nil {
		return m.findByUniqueID(uniqueID)
	}
	return nil, nil
}

func (m *mockLedger) FindProcessingPaymentByReference(_ context.Context, reference string) (*model.Payment, error) {
	if m.findByReference != nil {
		return m.findByReference(reference)
	}
	return nil, nil
}

func (m *mockLedger) FindProcessingPaymentForApplication(_ context.Context, applicationUniqueID string) (*model.Payment, error) {
	if m.findForApplication != nil {
		return m.findForApplication(applicationUniqueID)
	}
	return nil, nil
}

func (m *mockLedger) FindAppDefault(_ context.Context, criteria string) (*model.AppDefault, error) {
	if m.findAppDefault != nil {
		return m.findAppDefault(criteria)
	}
	return nil, nil
}

func (m *mockLedger) CreatePayment(_ context.Context, payment *model.Payment) error {
	if m.createPayment != nil {
		if err := m.createPayment(payment); err != nil {
			return err
		}
	}
	m.created = append(m.created, payment)
	return nil
}

func (m *mockLedger) MarkPaymentCancelled(_ context.Context, payment *model.Payment) error {
	m.record("mark_cancelled")
	if m.markCancelled != nil {
		if err := m.markCancelled(payment); err != nil {
			return err
		}
	}
	m.cancelled = append(m.cancelled, payment)
	return nil
}

func (m *mockLedger) MarkPaymentCompleted(_ context.Context, payment *model.Payment) error {
	m.record("mark_completed")
	if m.markCompleted != nil {
		if err := m.markCompleted(payment); err != nil {
			return err
		}
	}
	m.completed = append(m.completed, payment)
	return nil
}

func (m *mockLedger) RecordGatewayEvent(_ context.Context, event *model.PaymentGatewayEvent) error {
	m.events = append(m.events, event)
	return nil
}

type mockMailer struct {
	result *MailResult
	err    error
	sent   []Mail

	trace *[]string
}

func (m *mockMailer) Send(_ context.Context, mail Mail) (*MailResult, error) {
	if m.trace != nil {
		*m.trace = append(*m.trace, "send_mail")
	}
	m.sent = append(m.sent, mail)
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return okMailResult(), nil
}

type mockVerifier struct {
	name     string
	criteria string
	result   *VerificationResult
	err      error
	calls    int
}

func (m *mockVerifier) Name() string        { return m.name }
func (m *mockVerifier) KeyCriteria() string { return m.criteria }

func (m *mockVerifier) Verify(_ context.Context, _, _ string) (*VerificationResult, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

/* =======================================================================
   Fixtures
======================================================================= */

func okMailResult() *MailResult {
	return &MailResult{Success: true, Data: json.RawMessage(`{"accepted":["user@example.com"]}`)}
}

func activeApplication() *applicationModel.Application {
	return &applicationModel.Application{
		UniqueID:          "app-1",
		Fullname:          "Ada Obi",
		Email:             "ada@example.com",
		ApplicationStatus: constants.ApplicationPending,
		Status:            constants.DefaultStatus,
	}
}

func processingPayment(gateway string) *model.Payment {
	return &model.Payment{
		UniqueID:            "pay-1",
		ApplicationUniqueID: "app-1",
		Type:                constants.TransactionTypePayment,
		Gateway:             gateway,
		PaymentMethod:       constants.PaymentMethodCard,
		Amount:              5000,
		Reference:           "REF12345",
		PaymentStatus:       constants.Processing,
		Status:              constants.DefaultStatus,
		Application:         activeApplication(),
	}
}

func paystackKey() *model.AppDefault {
	return &model.AppDefault{
		UniqueID: "default-1",
		Criteria: constants.PaystackSecretKeyCriteria,
		DataType: "STRING",
		Value:    "sk_test_xyz",
		Status:   constants.DefaultStatus,
	}
}

/* =======================================================================
   Admission
======================================================================= */

func TestAdmitPaymentCreatesProcessingPayment(t *testing.T) {
	ledger := &mockLedger{
		findApplication: func(string) (*applicationModel.Application, error) {
			return activeApplication(), nil
		},
	}
	engine := NewEngine(ledger, &mockMailer{}, nil, false)

	result, engineErr := engine.AdmitPayment(context.Background(), AdmitInput{
		ApplicationUniqueID: "app-1",
		Amount:              5000,
		Gateway:             "paystack",
	})

	require.Nil(t, engineErr)
	require.NotNil(t, result)
	require.Len(t, ledger.created, 1)

	created := ledger.created[0]
	assert.Equal(t, "app-1", created.ApplicationUniqueID)
	assert.Equal(t, constants.TransactionTypePayment, created.Type)
	assert.Equal(t, constants.GatewayPaystack, created.Gateway)
	assert.Equal(t, constants.PaymentMethodCard, created.PaymentMethod)
	assert.Equal(t, constants.Processing, created.PaymentStatus)
	assert.Equal(t, constants.DefaultStatus, created.Status)
	assert.Equal(t, "NGN 5,000 payment, via Card", created.Details)
	assert.Len(t, created.Reference, 16)
	assert.Equal(t, created.UniqueID, result.UniqueID)
	assert.Equal(t, created.Reference, result.Reference)
	assert.Equal(t, 5000.0, result.Amount)
}

func TestAdmitPaymentKeepsCallerReference(t *testing.T) {
	ledger := &mockLedger{
		findApplication: func(string) (*applicationModel.Application, error) {
			return activeApplication(), nil
		},
	}
	engine := NewEngine(ledger, &mockMailer{}, nil, false)

	result, engineErr := engine.AdmitPayment(context.Background(), AdmitInput{
		ApplicationUniqueID: "app-1",
		Amount:              5000,
		Gateway:             constants.GatewayInternal,
		Reference:           "CUSTOM-REF-01",
	})

	require.Nil(t, engineErr)
	assert.Equal(t, "CUSTOM-REF-01", result.Reference)
}

func TestAdmitPaymentUnknownApplication(t *testing.T) {
	engine := NewEngine(&mockLedger{}, &mockMailer{}, nil, false)

	result, engineErr := engine.AdmitPayment(context.Background(), AdmitInput{
		ApplicationUniqueID: "missing",
		Amount:              5000,
		Gateway:             constants.GatewayPaystack,
	})

	require.Nil(t, result)
	require.NotNil(t, engineErr)
	assert.Equal(t, "User not found", engineErr.Message)
	assert.Equal(t, 400, engineErr.HTTPStatus())
}

func TestAdmitPaymentConflictReturnsExistingReference(t *testing.T) {
	ledger := &mockLedger{
		findApplication: func(string) (*applicationModel.Application, error) {
			return activeApplication(), nil
		},
		findForApplication: func(string) (*model.Payment, error) {
			return processingPayment(constants.GatewayPaystack), nil
		},
	}
	engine := NewEngine(ledger, &mockMailer{}, nil, false)

	result, engineErr := engine.AdmitPayment(context.Background(), AdmitInput{
		ApplicationUniqueID: "app-1",
		Amount:              5000,
		Gateway:             constants.GatewayPaystack,
	})

	require.Nil(t, result)
	require.NotNil(t, engineErr)
	assert.Equal(t, "You have a pending payment!!", engineErr.Message)

	existing, ok := engineErr.Data.(ExistingPayment)
	require.True(t, ok)
	assert.Equal(t, "REF12345", existing.Reference)
	assert.Equal(t, "pay-1", existing.UniqueID)
	assert.Empty(t, ledger.created)
}

func TestAdmitPaymentInsertRaceReportsWinner(t *testing.T) {
	lookups := 0
	ledger := &mockLedger{
		findApplication: func(string) (*applicationModel.Application, error) {
			return activeApplication(), nil
		},
		findForApplication: func(string) (*model.Payment, error) {
			lookups++
			if lookups == 1 {
				// the check passes, then a concurrent insert wins
				return nil, nil
			}
			return processingPayment(constants.GatewayPaystack), nil
		},
		createPayment: func(*model.Payment) error {
			return gorm.ErrDuplicatedKey
		},
	}
	engine := NewEngine(ledger, &mockMailer{}, nil, false)

	result, engineErr := engine.AdmitPayment(context.Background(), AdmitInput{
		ApplicationUniqueID: "app-1",
		Amount:              5000,
		Gateway:             constants.GatewayPaystack,
	})

	require.Nil(t, result)
	require.NotNil(t, engineErr)
	assert.Equal(t, "You have a pending payment!!", engineErr.Message)

	existing, ok := engineErr.Data.(ExistingPayment)
	require.True(t, ok)
	assert.Equal(t, "REF12345", existing.Reference)
	assert.Empty(t, ledger.created)
}

/* =======================================================================
   Completion
======================================================================= */

func TestCompletePaymentInternalGatewaySkipsVerification(t *testing.T) {
	payment := processingPayment(constants.GatewayInternal)
	ledger := &mockLedger{
		findByReference: func(string) (*model.Payment, error) { return payment, nil },
	}
	mailer := &mockMailer{}
	verifier := &mockVerifier{name: "Paystack", criteria: constants.PaystackSecretKeyCriteria}
	engine := NewEngine(ledger, mailer, map[string]Verifier{constants.GatewayPaystack: verifier}, false)

	result, engineErr := engine.CompletePayment(context.Background(), "REF12345")

	require.Nil(t, engineErr)
	require.NotNil(t, result)
	assert.Equal(t, "app-1", result.ApplicationUniqueID)
	assert.Zero(t, verifier.calls)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "ada@example.com", mailer.sent[0].ToEmail)
	assert.Contains(t, mailer.sent[0].Text, "REF12345")
	assert.Contains(t, mailer.sent[0].Text, "NGN 5,000")
	require.Len(t, ledger.completed, 1)
}

func TestCompletePaymentNotFound(t *testing.T) {
	mailer := &mockMailer{}
	engine := NewEngine(&mockLedger{}, mailer, nil, false)

	result, engineErr := engine.CompletePayment(context.Background(), "missing")

	require.Nil(t, result)
	require.NotNil(t, engineErr)
	assert.Equal(t, "Processing Payment not found!", engineErr.Message)
	assert.Empty(t, mailer.sent)
}

func TestCompletePaymentVerifiedCommits(t *testing.T) {
	payment := processingPayment(constants.GatewayPaystack)
	ledger := &mockLedger{
		findByReference: func(string) (*model.Payment, error) { return payment, nil },
		findAppDefault: func(criteria string) (*model.AppDefault, error) {
			require.Equal(t, constants.PaystackSecretKeyCriteria, criteria)
			return paystackKey(), nil
		},
	}
	verifier := &mockVerifier{
		name:     "Paystack",
		criteria: constants.PaystackSecretKeyCriteria,
		result:   &VerificationResult{Verified: true, TransactionStatus: "success", Amount: 500000},
	}
	mailer := &mockMailer{}
	engine := NewEngine(ledger, mailer, map[string]Verifier{constants.GatewayPaystack: verifier}, false)

	result, engineErr := engine.CompletePayment(context.Background(), "REF12345")

	require.Nil(t, engineErr)
	require.NotNil(t, result)
	assert.Equal(t, 1, verifier.calls)
	require.Len(t, ledger.completed, 1)
	require.Len(t, ledger.events, 1)
	assert.Equal(t, "verified", ledger.events[0].Outcome)
}

func TestCompletePaymentFailedStatusLeavesPaymentUntouched(t *testing.T) {
	payment := processingPayment(constants.GatewayPaystack)
	ledger := &mockLedger{
		findByReference: func(string) (*model.Payment, error) { return payment, nil },
		findAppDefault:  func(string) (*model.AppDefault, error) { return paystackKey(), nil },
	}
	verifier := &mockVerifier{
		name:     "Paystack",
		criteria: constants.PaystackSecretKeyCriteria,
		result:   &VerificationResult{Verified: true, TransactionStatus: "failed"},
	}
	mailer := &mockMailer{}
	engine := NewEngine(ledger, mailer, map[string]Verifier{constants.GatewayPaystack: verifier}, false)

	result, engineErr := engine.CompletePayment(context.Background(), "REF12345")

	require.Nil(t, result)
	require.NotNil(t, engineErr)
	// Paystack statuses are uppercased in the message
	assert.Equal(t, "Payment unsuccessful (Status - FAILED)", engineErr.Message)
	assert.Empty(t, mailer.sent)
	assert.Empty(t, ledger.completed)
	require.Len(t, ledger.events, 1)
	assert.Equal(t, "failed", ledger.events[0].Outcome)
}

func TestCompletePaymentSquadStatusKeptVerbatim(t *testing.T) {
	payment := processingPayment(constants.GatewaySquad)
	ledger := &mockLedger{
		findByReference: func(string) (*model.Payment, error) { return payment, nil },
		findAppDefault:  func(string) (*model.AppDefault, error) { return paystackKey(), nil },
	}
	verifier := &mockVerifier{
		name:     "Squad",
		criteria: constants.SquadSecretKeyCriteria,
		result:   &VerificationResult{Verified: true, TransactionStatus: "abandoned"},
	}
	engine := NewEngine(ledger, &mockMailer{}, map[string]Verifier{constants.GatewaySquad: verifier}, false)

	_, engineErr := engine.CompletePayment(context.Background(), "REF12345")

	require.NotNil(t, engineErr)
	assert.Equal(t, "Payment unsuccessful (Status - abandoned)", engineErr.Message)
}

func TestCompletePaymentUnverified(t *testing.T) {
	payment := processingPayment(constants.GatewayPaystack)
	ledger := &mockLedger{
		findByReference: func(string) (*model.Payment, error) { return payment, nil },
		findAppDefault:  func(string) (*model.AppDefault, error) { return paystackKey(), nil },
	}
	verifier := &mockVerifier{
		name:     "Paystack",
		criteria: constants.PaystackSecretKeyCriteria,
		result:   &VerificationResult{Verified: false},
	}
	engine := NewEngine(ledger, &mockMailer{}, map[string]Verifier{constants.GatewayPaystack: verifier}, false)

	_, engineErr := engine.CompletePayment(context.Background(), "REF12345")

	require.NotNil(t, engineErr)
	assert.Equal(t, "Error getting payment for validation", engineErr.Message)
	require.Len(t, ledger.events, 1)
	assert.Equal(t, "unverified", ledger.events[0].Outcome)
}

func TestCompletePaymentUnknownGateway(t *testing.T) {
	payment := processingPayment("FLUTTERWAVE")
	ledger := &mockLedger{
		findByReference: func(string) (*model.Payment, error) { return payment, nil },
	}
	engine := NewEngine(ledger, &mockMailer{}, map[string]Verifier{}, false)

	_, engineErr := engine.CompletePayment(context.Background(), "REF12345")

	require.NotNil(t, engineErr)
	assert.Equal(t, "Invalid transaction gateway!", engineErr.Message)
}

func TestCompletePaymentMissingAppDefault(t *testing.T) {
	payment := processingPayment(constants.GatewayPaystack)
	ledger := &mockLedger{
		findByReference: func(string) (*model.Payment, error) { return payment, nil },
	}
	verifier := &mockVerifier{name: "Paystack", criteria: constants.PaystackSecretKeyCriteria}
	engine := NewEngine(ledger, &mockMailer{}, map[string]Verifier{constants.GatewayPaystack: verifier}, false)

	_, engineErr := engine.CompletePayment(context.Background(), "REF12345")

	require.NotNil(t, engineErr)
	assert.Equal(t, "App Default for Paystack Gateway not found!", engineErr.Message)
	assert.Zero(t, verifier.calls)
}

func TestCompletePaymentGatewayErrorCarriesCode(t *testing.T) {
	payment := processingPayment(constants.GatewayPaystack)
	ledger := &mockLedger{
		findByReference: func(string) (*model.Payment, error) { return payment, nil },
		findAppDefault:  func(string) (*model.AppDefault, error) { return paystackKey(), nil },
	}
	verifier := &mockVerifier{
		name:     "Paystack",
		criteria: constants.PaystackSecretKeyCriteria,
		err:      &GatewayError{Code: "ECONN", Message: "connection refused"},
	}
	engine := NewEngine(ledger, &mockMailer{}, map[string]Verifier{constants.GatewayPaystack: verifier}, false)

	_, engineErr := engine.CompletePayment(context.Background(), "REF12345")

	require.NotNil(t, engineErr)
	assert.Equal(t, "connection refused", engineErr.Message)
	assert.Equal(t, "ECONN", engineErr.Code)
	require.Len(t, ledger.events, 1)
	assert.Equal(t, "error", ledger.events[0].Outcome)
}

func TestCompletePaymentSquadAmountMismatch(t *testing.T) {
	payment := processingPayment(constants.GatewaySquad)
	ledger := &mockLedger{
		findByReference: func(string) (*model.Payment, error) { return payment, nil },
		findAppDefault:  func(string) (*model.AppDefault, error) { return paystackKey(), nil },
	}
	verifier := &mockVerifier{
		name:     "Squad",
		criteria: constants.SquadSecretKeyCriteria,
		result:   &VerificationResult{Verified: true, TransactionStatus: "success", Amount: 4000},
	}
	engine := NewEngine(ledger, &mockMailer{}, map[string]Verifier{constants.GatewaySquad: verifier}, true)

	_, engineErr := engine.CompletePayment(context.Background(), "REF12345")

	require.NotNil(t, engineErr)
	assert.Equal(t, "Invalid transaction amount!", engineErr.Message)
	assert.Empty(t, ledger.completed)
	require.Len(t, ledger.events, 1)
	assert.Equal(t, "amount_mismatch", ledger.events[0].Outcome)
}

func TestCompletePaymentSquadAmountIgnoredByDefault(t *testing.T) {
	payment := processingPayment(constants.GatewaySquad)
	ledger := &mockLedger{
		findByReference: func(string) (*model.Payment, error) { return payment, nil },
		findAppDefault:  func(string) (*model.AppDefault, error) { return paystackKey(), nil },
	}
	verifier := &mockVerifier{
		name:     "Squad",
		criteria: constants.SquadSecretKeyCriteria,
		result:   &VerificationResult{Verified: true, TransactionStatus: "success", Amount: 4000},
	}
	engine := NewEngine(ledger, &mockMailer{}, map[string]Verifier{constants.GatewaySquad: verifier}, false)

	_, engineErr := engine.CompletePayment(context.Background(), "REF12345")

	require.Nil(t, engineErr)
	require.Len(t, ledger.completed, 1)
}

func TestCompletePaymentMailerFailureBlocksCommit(t *testing.T) {
	payment := processingPayment(constants.GatewayInternal)
	ledger := &mockLedger{
		findByReference: func(string) (*model.Payment, error) { return payment, nil },
	}
	mailer := &mockMailer{result: &MailResult{Success: false, Message: "relay rejected sender"}}
	engine := NewEngine(ledger, mailer, nil, false)

	result, engineErr := engine.CompletePayment(context.Background(), "REF12345")

	require.Nil(t, result)
	require.NotNil(t, engineErr)
	assert.Equal(t, "relay rejected sender", engineErr.Message)
	assert.Empty(t, ledger.completed)
}

func TestCompletePaymentMailerNullData(t *testing.T) {
	payment := processingPayment(constants.GatewayInternal)
	ledger := &mockLedger{
		findByReference: func(string) (*model.Payment, error) { return payment, nil },
	}
	mailer := &mockMailer{result: &MailResult{Success: true, Data: json.RawMessage(`null`)}}
	engine := NewEngine(ledger, mailer, nil, false)

	_, engineErr := engine.CompletePayment(context.Background(), "REF12345")

	require.NotNil(t, engineErr)
	assert.Equal(t, "Unable to send email to user", engineErr.Message)
	assert.Empty(t, ledger.completed)
}

func TestCompletePaymentLostPaymentRow(t *testing.T) {
	payment := processingPayment(constants.GatewayInternal)
	ledger := &mockLedger{
		findByReference: func(string) (*model.Payment, error) { return payment, nil },
		markCompleted:   func(*model.Payment) error { return ErrPaymentRowUnchanged },
	}
	engine := NewEngine(ledger, &mockMailer{}, nil, false)

	_, engineErr := engine.CompletePayment(context.Background(), "REF12345")

	require.NotNil(t, engineErr)
	assert.Equal(t, "Error completing payment", engineErr.Message)
}

func TestCompletePaymentLostApplicationRow(t *testing.T) {
	payment := processingPayment(constants.GatewayInternal)
	ledger := &mockLedger{
		findByReference: func(string) (*model.Payment, error) { return payment, nil },
		markCompleted:   func(*model.Payment) error { return ErrApplicationRowUnchanged },
	}
	engine := NewEngine(ledger, &mockMailer{}, nil, false)

	_, engineErr := engine.CompletePayment(context.Background(), "REF12345")

	require.NotNil(t, engineErr)
	assert.Equal(t, "Error updating application status", engineErr.Message)
}

/* =======================================================================
   Cancellation
======================================================================= */

func TestCancelPaymentNotifiesBeforeWrite(t *testing.T) {
	trace := []string{}
	payment := processingPayment(constants.GatewayPaystack)
	ledger := &mockLedger{
		findByUniqueID: func(string) (*model.Payment, error) { return payment, nil },
		trace:          &trace,
	}
	mailer := &mockMailer{trace: &trace}
	engine := NewEngine(ledger, mailer, nil, false)

	engineErr := engine.CancelPayment(context.Background(), "pay-1")

	require.Nil(t, engineErr)
	require.Equal(t, []string{"send_mail", "mark_cancelled"}, trace)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "ada@example.com", mailer.sent[0].ToEmail)
}

func TestCancelPaymentNotFound(t *testing.T) {
	mailer := &mockMailer{}
	engine := NewEngine(&mockLedger{}, mailer, nil, false)

	engineErr := engine.CancelPayment(context.Background(), "missing")

	require.NotNil(t, engineErr)
	assert.Equal(t, "Processing Payment not found!", engineErr.Message)
	assert.Empty(t, mailer.sent)
}

func TestCancelPaymentMailerErrorBlocksWrite(t *testing.T) {
	payment := processingPayment(constants.GatewayPaystack)
	ledger := &mockLedger{
		findByUniqueID: func(string) (*model.Payment, error) { return payment, nil },
	}
	mailer := &mockMailer{err: errors.New("dial tcp: connection refused")}
	engine := NewEngine(ledger, mailer, nil, false)

	engineErr := engine.CancelPayment(context.Background(), "pay-1")

	require.NotNil(t, engineErr)
	assert.Equal(t, 500, engineErr.HTTPStatus())
	assert.Empty(t, ledger.cancelled)
}

func TestCancelPaymentByReferenceMentionsReference(t *testing.T) {
	payment := processingPayment(constants.GatewayPaystack)
	ledger := &mockLedger{
		findByReference: func(string) (*model.Payment, error) { return payment, nil },
	}
	mailer := &mockMailer{}
	engine := NewEngine(ledger, mailer, nil, false)

	engineErr := engine.CancelPaymentByReference(context.Background(), "REF12345")

	require.Nil(t, engineErr)
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].Text, "REF12345")
	require.Len(t, ledger.cancelled, 1)
}

func TestCancelPaymentLostRow(t *testing.T) {
	payment := processingPayment(constants.GatewayPaystack)
	ledger := &mockLedger{
		findByUniqueID: func(string) (*model.Payment, error) { return payment, nil },
		markCancelled:  func(*model.Payment) error { return ErrPaymentRowUnchanged },
	}
	engine := NewEngine(ledger, &mockMailer{}, nil, false)

	engineErr := engine.CancelPayment(context.Background(), "pay-1")

	require.NotNil(t, engineErr)
	assert.Equal(t, "Payment not found", engineErr.Message)
}
