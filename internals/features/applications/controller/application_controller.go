package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Emmynem/alphaprimeclub-api/internals/constants"
	dto "github.com/Emmynem/alphaprimeclub-api/internals/features/applications/dto"
	model "github.com/Emmynem/alphaprimeclub-api/internals/features/applications/model"
	paymentModel "github.com/Emmynem/alphaprimeclub-api/internals/features/payments/model"
	helper "github.com/Emmynem/alphaprimeclub-api/internals/helpers"
)

var applicationOrderColumns = map[string]string{
	"createdAt":          "created_at",
	"updatedAt":          "updated_at",
	"fullname":           "fullname",
	"email":              "email",
	"application_status": "application_status",
}

type ApplicationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewApplicationController(db *gorm.DB) *ApplicationController {
	return &ApplicationController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /applications
func (h *ApplicationController) GetApplications(c *fiber.Ctx) error {
	var total int64
	if err := h.DB.WithContext(c.Context()).Model(&model.Application{}).
		Where("status = ?", constants.DefaultStatus).
		Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	pagination := helper.Paginate(c, total)
	order, err := helper.OrderClause(c, applicationOrderColumns, "createdAt")
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var applications []model.Application
	if err := h.DB.WithContext(c.Context()).
		Where("status = ?", constants.DefaultStatus).
		Order(order).
		Offset(pagination.Start).Limit(pagination.Size).
		Find(&applications).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if len(applications) == 0 {
		return helper.Success(c, "Applications Not found", []model.Application{})
	}
	return helper.Success(c, "Applications loaded", fiber.Map{
		"count": total,
		"rows":  applications,
		"pages": pagination.Pages,
	})
}

// GET /application
func (h *ApplicationController) GetApplication(c *fiber.Ctx) error {
	var req dto.FindApplicationRequest
	if err := c.QueryParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var application model.Application
	err := h.DB.WithContext(c.Context()).
		Where("unique_id = ? AND status = ?", req.UniqueID, constants.DefaultStatus).
		First(&application).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Application not found")
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Application loaded", application)
}

// POST /application
//
// Creates the application and its first processing payment in one
// transaction so an application never exists without a payment to settle.
func (h *ApplicationController) AddApplication(c *fiber.Ctx) error {
	var req dto.AddApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.Validate(); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	dateOfBirth, err := req.ParsedDateOfBirth()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date of birth format (YYYY-MM-DD)")
	}

	reference := req.Reference
	if reference == "" {
		reference = helper.RandomReference()
	}

	application := model.Application{
		UniqueID:           uuid.NewString(),
		Fullname:           req.Fullname,
		Email:              req.Email,
		PhoneNumber:        req.PhoneNumber,
		Gender:             req.Gender,
		DateOfBirth:        dateOfBirth,
		JobTitle:           req.JobTitle,
		CompanyName:        req.CompanyName,
		Industry:           req.Industry,
		LinkedinProfile:    req.LinkedinProfile,
		ResidentialAddress: req.ResidentialAddress,
		Why:                req.Why,
		What:               req.What,
		How:                req.How,
		Any:                req.Any,
		FileOne:            req.FileOne,
		FileOneType:        req.FileOneType,
		FileOnePublicID:    req.FileOnePublicID,
		FileTwo:            req.FileTwo,
		FileTwoType:        req.FileTwoType,
		FileTwoPublicID:    req.FileTwoPublicID,
		ApplicationStatus:  constants.ApplicationPending,
		Status:             constants.DefaultStatus,
	}
	payment := paymentModel.Payment{
		UniqueID:            uuid.NewString(),
		ApplicationUniqueID: application.UniqueID,
		Type:                constants.TransactionTypePayment,
		Gateway:             constants.NormalizeGateway(req.Gateway),
		PaymentMethod:       constants.PaymentMethodCard,
		Amount:              req.Amount,
		Reference:           reference,
		PaymentStatus:       constants.Processing,
		Details:             helper.PaymentDetails(req.Amount, constants.TransactionTypePayment, constants.PaymentMethodCard),
		Status:              constants.DefaultStatus,
	}

	err = h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&application).Error; err != nil {
			return err
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Application added successfully!", fiber.Map{
		"unique_id": payment.UniqueID,
		"reference": payment.Reference,
		"amount":    payment.Amount,
	})
}

// PUT /application/status
func (h *ApplicationController) UpdateApplicationStatus(c *fiber.Ctx) error {
	var req dto.UpdateApplicationStatusRequest
	_ = c.QueryParser(&req)
	if len(c.Body()) > 0 {
		_ = c.BodyParser(&req)
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := h.DB.WithContext(c.Context()).Model(&model.Application{}).
		Where("unique_id = ? AND status = ?", req.UniqueID, constants.DefaultStatus).
		Update("application_status", req.ApplicationStatus)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Error updating application status")
	}
	return helper.Success(c, "Application status updated successfully!", nil)
}

// DELETE /application
//
// Applications with payment history are soft deleted so the payment rows
// keep a valid parent; the rest are removed outright.
func (h *ApplicationController) DeleteApplication(c *fiber.Ctx) error {
	var req dto.FindApplicationRequest
	_ = c.QueryParser(&req)
	if len(c.Body()) > 0 {
		_ = c.BodyParser(&req)
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var paymentCount int64
		if err := tx.Model(&paymentModel.Payment{}).
			Where("application_unique_id = ?", req.UniqueID).
			Count(&paymentCount).Error; err != nil {
			return err
		}

		var res *gorm.DB
		if paymentCount > 0 {
			res = tx.Model(&model.Application{}).
				Where("unique_id = ? AND status = ?", req.UniqueID, constants.DefaultStatus).
				Update("status", constants.DefaultDeleteStatus)
		} else {
			res = tx.Where("unique_id = ? AND status = ?", req.UniqueID, constants.DefaultStatus).
				Delete(&model.Application{})
		}
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("Error deleting application")
		}
		return nil
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Application was deleted successfully!", nil)
}
