package dto

import (
	"errors"

	"github.com/Emmynem/alphaprimeclub-api/internals/constants"
	applicationModel "github.com/Emmynem/alphaprimeclub-api/internals/features/applications/model"
	model "github.com/Emmynem/alphaprimeclub-api/internals/features/payments/model"
)

// AddPaymentRequest creates a new processing payment for an application.
type AddPaymentRequest struct {
	ApplicationUniqueID string  `json:"application_unique_id" query:"application_unique_id" validate:"required,max=40"`
	Amount              float64 `json:"amount" query:"amount" validate:"gte=0"`
	Gateway             string  `json:"gateway" query:"gateway" validate:"required,max=50"`
	Reference           string  `json:"reference" query:"reference" validate:"omitempty,max=200"`
}

// Validate covers the rules validator tags cannot express.
func (r *AddPaymentRequest) Validate() error {
	if !constants.IsValidGateway(r.Gateway) {
		return errors.New("Invalid gateway, accepts - " +
			constants.GatewayPaystack + ", " + constants.GatewaySquad + ", " + constants.GatewayInternal)
	}
	return nil
}

// FindPaymentRequest targets one payment by its unique id.
type FindPaymentRequest struct {
	UniqueID string `json:"unique_id" query:"unique_id" validate:"required,max=40"`
}

// FindByReferenceRequest targets one payment by its reference.
type FindByReferenceRequest struct {
	Reference string `json:"reference" query:"reference" validate:"required,max=200"`
}

// SearchRequest is the free-text search input.
type SearchRequest struct {
	Search string `json:"search" query:"search" validate:"required,min=1,max=200"`
}

// PaymentResponse is a payment with its owning application summary attached.
type PaymentResponse struct {
	model.Payment
	Application *applicationModel.ApplicationSummary `json:"application,omitempty"`
}

func FromPayment(p *model.Payment) PaymentResponse {
	resp := PaymentResponse{Payment: *p}
	if p.Application != nil {
		summary := p.Application.Summary()
		resp.Application = &summary
	}
	return resp
}

func FromPayments(payments []model.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, FromPayment(&payments[i]))
	}
	return out
}
