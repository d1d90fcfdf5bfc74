package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Emmynem/alphaprimeclub-api/internals/constants"
	applicationModel "github.com/Emmynem/alphaprimeclub-api/internals/features/applications/model"
	model "github.com/Emmynem/alphaprimeclub-api/internals/features/payments/model"
)

// Sentinels for guarded writes that matched nothing. The engine reports them
// as persistence failures; the precondition changed between read and write.
var (
	ErrPaymentRowUnchanged     = errors.New("payment row unchanged")
	ErrApplicationRowUnchanged = errors.New("application row unchanged")
)

// Ledger is the durable store as the lifecycle engine sees it. Lookups return
// (nil, nil) when nothing matches; writes are conditionally guarded and fail
// with the sentinels above when a row slipped away.
type Ledger interface {
	FindActiveApplication(ctx context.Context, uniqueID string) (*applicationModel.Application, error)
	FindProcessingPaymentByUniqueID(ctx context.Context, uniqueID string) (*model.Payment, error)
	FindProcessingPaymentByReference(ctx context.Context, reference string) (*model.Payment, error)
	FindProcessingPaymentForApplication(ctx context.Context, applicationUniqueID string) (*model.Payment, error)
	FindAppDefault(ctx context.Context, criteria string) (*model.AppDefault, error)

	CreatePayment(ctx context.Context, payment *model.Payment) error
	// MarkPaymentCancelled flips the payment to cancelled, guarded on it
	// still being an active processing payment.
	MarkPaymentCancelled(ctx context.Context, payment *model.Payment) error
	// MarkPaymentCompleted sets payment=completed and application=paid in one
	// atomic unit; either guard matching zero rows aborts the whole unit.
	MarkPaymentCompleted(ctx context.Context, payment *model.Payment) error

	RecordGatewayEvent(ctx context.Context, event *model.PaymentGatewayEvent) error
}

// GormLedger is the Postgres-backed Ledger.
type GormLedger struct {
	db *gorm.DB
}

func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{db: db}
}

func (l *GormLedger) FindActiveApplication(ctx context.Context, uniqueID string) (*applicationModel.Application, error) {
	var app applicationModel.Application
	err := l.db.WithContext(ctx).
		Where("unique_id = ? AND status = ?", uniqueID, constants.DefaultStatus).
		First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (l *GormLedger) findProcessingPayment(ctx context.Context, query string, arg interface{}) (*model.Payment, error) {
	var payment model.Payment
	err := l.db.WithContext(ctx).
		Preload("Application").
		Where(query, arg, constants.TransactionTypePayment, constants.Processing, constants.DefaultStatus).
		First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (l *GormLedger) FindProcessingPaymentByUniqueID(ctx context.Context, uniqueID string) (*model.Payment, error) {
	return l.findProcessingPayment(ctx,
		"unique_id = ? AND type = ? AND payment_status = ? AND status = ?", uniqueID)
}

func (l *GormLedger) FindProcessingPaymentByReference(ctx context.Context, reference string) (*model.Payment, error) {
	return l.findProcessingPayment(ctx,
		"reference = ? AND type = ? AND payment_status = ? AND status = ?", reference)
}

func (l *GormLedger) FindProcessingPaymentForApplication(ctx context.Context, applicationUniqueID string) (*model.Payment, error) {
	return l.findProcessingPayment(ctx,
		"application_unique_id = ? AND type = ? AND payment_status = ? AND status = ?", applicationUniqueID)
}

func (l *GormLedger) FindAppDefault(ctx context.Context, criteria string) (*model.AppDefault, error) {
	var appDefault model.AppDefault
	err := l.db.WithContext(ctx).
		Where("criteria = ?", criteria).
		First(&appDefault).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appDefault, nil
}

func (l *GormLedger) CreatePayment(ctx context.Context, payment *model.Payment) error {
	return l.db.WithContext(ctx).Create(payment).Error
}

func (l *GormLedger) MarkPaymentCancelled(ctx context.Context, payment *model.Payment) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Payment{}).
			Where("unique_id = ? AND type = ? AND payment_status = ? AND status = ?",
				payment.UniqueID, constants.TransactionTypePayment, constants.Processing, constants.DefaultStatus).
			Update("payment_status", constants.Cancelled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrPaymentRowUnchanged
		}
		return nil
	})
}

func (l *GormLedger) MarkPaymentCompleted(ctx context.Context, payment *model.Payment) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Payment{}).
			Where("unique_id = ? AND reference = ? AND type = ? AND payment_status = ? AND status = ?",
				payment.UniqueID, payment.Reference, constants.TransactionTypePayment, constants.Processing, constants.DefaultStatus).
			Update("payment_status", constants.Completed)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrPaymentRowUnchanged
		}

		res = tx.Model(&applicationModel.Application{}).
			Where("unique_id = ? AND status = ?",
				payment.ApplicationUniqueID, constants.DefaultStatus).
			Update("application_status", constants.ApplicationPaid)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrApplicationRowUnchanged
		}
		return nil
	})
}

func (l *GormLedger) RecordGatewayEvent(ctx context.Context, event *model.PaymentGatewayEvent) error {
	return l.db.WithContext(ctx).Create(event).Error
}
