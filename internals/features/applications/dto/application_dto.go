package dto

import (
	"errors"
	"time"

	"gorm.io/datatypes"

	"github.com/Emmynem/alphaprimeclub-api/internals/constants"
	helper "github.com/Emmynem/alphaprimeclub-api/internals/helpers"
)

// AddApplicationRequest is the public membership application payload. It also
// carries the initial payment's amount/gateway since both records are created
// in one transaction.
type AddApplicationRequest struct {
	Fullname           string  `json:"fullname" validate:"required,min=3,max=200"`
	Email              string  `json:"email" validate:"required,email,max=255"`
	PhoneNumber        string  `json:"phone_number" validate:"required,min=7,max=20"`
	Gender             string  `json:"gender" validate:"required,min=3,max=20"`
	DateOfBirth        string  `json:"date_of_birth" validate:"required"`
	JobTitle           string  `json:"job_title" validate:"required,min=2,max=100"`
	CompanyName        string  `json:"company_name" validate:"required,min=2,max=100"`
	Industry           string  `json:"industry" validate:"required,min=2,max=100"`
	LinkedinProfile    string  `json:"linkedin_profile" validate:"required,url,max=300"`
	ResidentialAddress string  `json:"residential_address" validate:"required,min=3,max=500"`
	Why                string  `json:"why" validate:"required,min=3,max=3000"`
	What               string  `json:"what" validate:"required,min=3,max=3000"`
	How                string  `json:"how" validate:"required,min=3,max=3000"`
	Any                *string `json:"any" validate:"omitempty,max=3000"`

	FileOne         string `json:"file_one" validate:"required,url,max=500"`
	FileOneType     string `json:"file_one_type" validate:"required,max=100"`
	FileOnePublicID string `json:"file_one_public_id" validate:"required,max=500"`
	FileTwo         string `json:"file_two" validate:"required,url,max=500"`
	FileTwoType     string `json:"file_two_type" validate:"required,max=100"`
	FileTwoPublicID string `json:"file_two_public_id" validate:"required,max=500"`

	Amount    float64 `json:"amount" validate:"gte=0"`
	Gateway   string  `json:"gateway" validate:"required,max=50"`
	Reference string  `json:"reference" validate:"omitempty,max=200"`
}

// Validate covers the cross-field and whitelist rules.
func (r *AddApplicationRequest) Validate() error {
	if _, err := r.ParsedDateOfBirth(); err != nil {
		return errors.New("Invalid date of birth format (YYYY-MM-DD)")
	}
	if !helper.ImageOrPdfFilter(r.FileOneType) {
		return errors.New("File one type not allowed, accepts images or PDF")
	}
	if !helper.ImageOrPdfFilter(r.FileTwoType) {
		return errors.New("File two type not allowed, accepts images or PDF")
	}
	if !constants.IsValidGateway(r.Gateway) {
		return errors.New("Invalid gateway, accepts - " +
			constants.GatewayPaystack + ", " + constants.GatewaySquad + ", " + constants.GatewayInternal)
	}
	return nil
}

// ParsedDateOfBirth parses the YYYY-MM-DD date of birth, which must be in the
// past.
func (r *AddApplicationRequest) ParsedDateOfBirth() (datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", r.DateOfBirth)
	if err != nil {
		return datatypes.Date{}, err
	}
	if !t.Before(time.Now()) {
		return datatypes.Date{}, errors.New("date of birth must be in the past")
	}
	return datatypes.Date(t), nil
}

// FindApplicationRequest targets one application by unique id.
type FindApplicationRequest struct {
	UniqueID string `json:"unique_id" query:"unique_id" validate:"required,max=40"`
}

// UpdateApplicationStatusRequest is the administrative status override.
type UpdateApplicationStatusRequest struct {
	UniqueID          string `json:"unique_id" query:"unique_id" validate:"required,max=40"`
	ApplicationStatus string `json:"application_status" validate:"required,min=3,max=50"`
}
