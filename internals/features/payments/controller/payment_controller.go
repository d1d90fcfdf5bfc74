package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Emmynem/alphaprimeclub-api/internals/constants"
	dto "github.com/Emmynem/alphaprimeclub-api/internals/features/payments/dto"
	model "github.com/Emmynem/alphaprimeclub-api/internals/features/payments/model"
	svc "github.com/Emmynem/alphaprimeclub-api/internals/features/payments/service"
	helper "github.com/Emmynem/alphaprimeclub-api/internals/helpers"
)

var paymentOrderColumns = map[string]string{
	"createdAt":      "created_at",
	"updatedAt":      "updated_at",
	"amount":         "amount",
	"reference":      "reference",
	"type":           "type",
	"gateway":        "gateway",
	"payment_status": "payment_status",
}

type PaymentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Engine    *svc.PaymentEngine
}

func NewPaymentController(db *gorm.DB, engine *svc.PaymentEngine) *PaymentController {
	return &PaymentController{
		DB:        db,
		Validator: validator.New(),
		Engine:    engine,
	}
}

/* =======================================================================
   Listing
======================================================================= */

// GET /payments
func (h *PaymentController) GetPayments(c *fiber.Ctx) error {
	return h.listPayments(c, nil, "Payments")
}

// GET /payments/via/application
func (h *PaymentController) GetPaymentsViaApplication(c *fiber.Ctx) error {
	applicationUniqueID := c.Query("application_unique_id")
	if applicationUniqueID == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Application Unique Id is required")
	}
	return h.listPayments(c, map[string]interface{}{"application_unique_id": applicationUniqueID}, "Payments specifically")
}

// GET /payments/via/type
func (h *PaymentController) GetPaymentsViaType(c *fiber.Ctx) error {
	transactionType := c.Query("type")
	if transactionType == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Type is required")
	}
	return h.listPayments(c, map[string]interface{}{"type": transactionType}, "Payments specifically")
}

// GET /payments/via/gateway
func (h *PaymentController) GetPaymentsViaGateway(c *fiber.Ctx) error {
	gateway := c.Query("gateway")
	if !constants.IsValidGateway(gateway) {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid gateway, accepts - "+
			constants.GatewayPaystack+", "+constants.GatewaySquad+", "+constants.GatewayInternal)
	}
	return h.listPayments(c, map[string]interface{}{"gateway": constants.NormalizeGateway(gateway)}, "Payments specifically")
}

// GET /payments/via/payment_status
func (h *PaymentController) GetPaymentsViaPaymentStatus(c *fiber.Ctx) error {
	paymentStatus := c.Query("payment_status")
	if paymentStatus == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Payment Status is required")
	}
	return h.listPayments(c, map[string]interface{}{"payment_status": paymentStatus}, "Payments specifically")
}

// GET /payments/via/reference
func (h *PaymentController) GetPaymentsViaReference(c *fiber.Ctx) error {
	reference := c.Query("reference")
	if reference == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Reference is required")
	}
	return h.listPayments(c, map[string]interface{}{"reference": reference}, "Payments specifically")
}

func (h *PaymentController) listPayments(c *fiber.Ctx, where map[string]interface{}, label string) error {
	countQuery := h.DB.WithContext(c.Context()).Model(&model.Payment{})
	if where != nil {
		countQuery = countQuery.Where(where)
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	pagination := helper.Paginate(c, total)
	order, err := helper.OrderClause(c, paymentOrderColumns, "createdAt")
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	listQuery := h.DB.WithContext(c.Context()).Preload("Application").Order(order).
		Offset(pagination.Start).Limit(pagination.Size)
	if where != nil {
		listQuery = listQuery.Where(where)
	}

	var payments []model.Payment
	if err := listQuery.Find(&payments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if len(payments) == 0 {
		return helper.Success(c, label+" Not found", []dto.PaymentResponse{})
	}
	return helper.Success(c, label+" loaded", fiber.Map{
		"count": total,
		"rows":  dto.FromPayments(payments),
		"pages": pagination.Pages,
	})
}

// GET /search/payments
func (h *PaymentController) SearchPayments(c *fiber.Ctx) error {
	search := c.Query("search")
	if search == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Search is required")
	}
	like := "%" + search + "%"
	clause := "reference ILIKE ? OR type ILIKE ? OR gateway ILIKE ? OR payment_method ILIKE ? OR payment_status ILIKE ?"
	args := []interface{}{like, like, like, like, like}

	var total int64
	if err := h.DB.WithContext(c.Context()).Model(&model.Payment{}).
		Where(clause, args...).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	pagination := helper.Paginate(c, total)

	var payments []model.Payment
	if err := h.DB.WithContext(c.Context()).Preload("Application").
		Where(clause, args...).
		Order("created_at DESC").
		Offset(pagination.Start).Limit(pagination.Size).
		Find(&payments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if len(payments) == 0 {
		return helper.Success(c, "Payments Not found", []dto.PaymentResponse{})
	}
	return helper.Success(c, "Payments loaded", fiber.Map{
		"count": total,
		"rows":  dto.FromPayments(payments),
		"pages": pagination.Pages,
	})
}

// GET /payment
func (h *PaymentController) GetPayment(c *fiber.Ctx) error {
	var req dto.FindPaymentRequest
	if err := c.QueryParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var payment model.Payment
	err := h.DB.WithContext(c.Context()).Preload("Application").
		Where("unique_id = ?", req.UniqueID).
		First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Payment not found")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Payment loaded", dto.FromPayment(&payment))
}

/* =======================================================================
   Lifecycle
======================================================================= */

// POST /add/payment
func (h *PaymentController) AddPayment(c *fiber.Ctx) error {
	var req dto.AddPaymentRequest
	_ = c.QueryParser(&req)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
		}
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.Validate(); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	result, engineErr := h.Engine.AdmitPayment(c.Context(), svc.AdmitInput{
		ApplicationUniqueID: req.ApplicationUniqueID,
		Amount:              req.Amount,
		Gateway:             req.Gateway,
		Reference:           req.Reference,
	})
	if engineErr != nil {
		return respondEngineError(c, engineErr)
	}
	return helper.Success(c, "Payment created successfully!", result)
}

// PUT /complete/payment
func (h *PaymentController) CompletePayment(c *fiber.Ctx) error {
	reference, ok := referenceFromRequest(c, h.Validator)
	if !ok {
		return nil
	}

	if _, engineErr := h.Engine.CompletePayment(c.Context(), reference); engineErr != nil {
		return respondEngineError(c, engineErr)
	}
	return helper.Success(c, "Payment was completed successfully!", nil)
}

// PUT /cancel/payment
func (h *PaymentController) CancelPayment(c *fiber.Ctx) error {
	var req dto.FindPaymentRequest
	_ = c.QueryParser(&req)
	if len(c.Body()) > 0 {
		_ = c.BodyParser(&req)
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if engineErr := h.Engine.CancelPayment(c.Context(), req.UniqueID); engineErr != nil {
		return respondEngineError(c, engineErr)
	}
	return helper.Success(c, "Payment was cancelled successfully!", nil)
}

// PUT /cancel/payment/via/reference
func (h *PaymentController) CancelPaymentViaReference(c *fiber.Ctx) error {
	reference, ok := referenceFromRequest(c, h.Validator)
	if !ok {
		return nil
	}

	if engineErr := h.Engine.CancelPaymentByReference(c.Context(), reference); engineErr != nil {
		return respondEngineError(c, engineErr)
	}
	return helper.Success(c, "Payment was cancelled successfully!", nil)
}

// DELETE /payment
func (h *PaymentController) DeletePayment(c *fiber.Ctx) error {
	var req dto.FindPaymentRequest
	_ = c.QueryParser(&req)
	if len(c.Body()) > 0 {
		_ = c.BodyParser(&req)
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("unique_id = ? AND status = ?", req.UniqueID, constants.DefaultStatus).
			Delete(&model.Payment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("Error deleting payment")
		}
		return nil
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Payment was deleted successfully!", nil)
}

/* =======================================================================
   Shared bits
======================================================================= */

// referenceFromRequest writes the validation response itself; the second
// return value tells the handler whether to keep going.
func referenceFromRequest(c *fiber.Ctx, v *validator.Validate) (string, bool) {
	var req dto.FindByReferenceRequest
	_ = c.QueryParser(&req)
	if len(c.Body()) > 0 {
		_ = c.BodyParser(&req)
	}
	if err := v.Struct(&req); err != nil {
		_ = helper.ValidationError(c, err)
		return "", false
	}
	return req.Reference, true
}

func respondEngineError(c *fiber.Ctx, e *svc.EngineError) error {
	if e.Data != nil {
		return helper.ErrorWithDetails(c, e.HTTPStatus(), e.Message, e.Data)
	}
	if e.Code != "" {
		return helper.ErrorWithDetails(c, e.HTTPStatus(), e.Message, fiber.Map{"err_code": e.Code})
	}
	return helper.Error(c, e.HTTPStatus(), e.Message)
}
