package model

import (
	"time"

	"gorm.io/datatypes"
)

// Application is a membership registration record. `unique_id` is the public
// identity; the bigint pk never leaves the API.
type Application struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UniqueID string `gorm:"column:unique_id;type:varchar(40);not null;uniqueIndex" json:"unique_id"`

	Fullname           string         `gorm:"column:fullname;type:varchar(200);not null" json:"fullname"`
	Email              string         `gorm:"column:email;type:varchar(255);not null" json:"email"`
	PhoneNumber        string         `gorm:"column:phone_number;type:varchar(20);not null" json:"phone_number"`
	Gender             string         `gorm:"column:gender;type:varchar(20);not null" json:"gender"`
	DateOfBirth        datatypes.Date `gorm:"column:date_of_birth;not null" json:"date_of_birth"`
	JobTitle           string         `gorm:"column:job_title;type:varchar(100);not null" json:"job_title"`
	CompanyName        string         `gorm:"column:company_name;type:varchar(100);not null" json:"company_name"`
	Industry           string         `gorm:"column:industry;type:varchar(100);not null" json:"industry"`
	LinkedinProfile    string         `gorm:"column:linkedin_profile;type:varchar(300);not null" json:"linkedin_profile"`
	ResidentialAddress string         `gorm:"column:residential_address;type:varchar(500);not null" json:"residential_address"`

	Why  string  `gorm:"column:why;type:varchar(3000);not null" json:"why,omitempty"`
	What string  `gorm:"column:what;type:varchar(3000);not null" json:"what,omitempty"`
	How  string  `gorm:"column:how;type:varchar(3000);not null" json:"how,omitempty"`
	Any  *string `gorm:"column:any;type:varchar(3000)" json:"any,omitempty"`

	FileOne         string `gorm:"column:file_one;type:varchar(500);not null" json:"file_one"`
	FileOneType     string `gorm:"column:file_one_type;type:varchar(100);not null" json:"file_one_type"`
	FileOnePublicID string `gorm:"column:file_one_public_id;type:varchar(500);not null" json:"-"`
	FileTwo         string `gorm:"column:file_two;type:varchar(500);not null" json:"file_two"`
	FileTwoType     string `gorm:"column:file_two_type;type:varchar(100);not null" json:"file_two_type"`
	FileTwoPublicID string `gorm:"column:file_two_public_id;type:varchar(500);not null" json:"-"`

	ApplicationStatus string `gorm:"column:application_status;type:varchar(50);not null" json:"application_status"`
	Status            int    `gorm:"column:status;not null" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Application) TableName() string { return "applications" }

// ApplicationSummary is the slim shape embedded in payment responses.
type ApplicationSummary struct {
	UniqueID          string `json:"unique_id"`
	Fullname          string `json:"fullname"`
	Email             string `json:"email"`
	ApplicationStatus string `json:"application_status"`
}

func (a *Application) Summary() ApplicationSummary {
	return ApplicationSummary{
		UniqueID:          a.UniqueID,
		Fullname:          a.Fullname,
		Email:             a.Email,
		ApplicationStatus: a.ApplicationStatus,
	}
}
