package model

import (
	"time"

	applicationModel "github.com/Emmynem/alphaprimeclub-api/internals/features/applications/model"
)

// Payment is a monetary transaction record owned by an application through
// application_unique_id. Always created in `processing`.
type Payment struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UniqueID string `gorm:"column:unique_id;type:varchar(40);not null;uniqueIndex" json:"unique_id"`

	ApplicationUniqueID string `gorm:"column:application_unique_id;type:varchar(40);not null;index" json:"application_unique_id"`

	Type          string  `gorm:"column:type;type:varchar(50);not null" json:"type"`
	Gateway       string  `gorm:"column:gateway;type:varchar(50);not null" json:"gateway"`
	PaymentMethod string  `gorm:"column:payment_method;type:varchar(50);not null" json:"payment_method"`
	Amount        float64 `gorm:"column:amount;not null;check:amount >= 0" json:"amount"`
	Reference     string  `gorm:"column:reference;type:varchar(200)" json:"reference"`
	PaymentStatus string  `gorm:"column:payment_status;type:varchar(50);not null" json:"payment_status"`
	Details       string  `gorm:"column:details;type:varchar(500)" json:"details"`
	Status        int     `gorm:"column:status;not null" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Application *applicationModel.Application `gorm:"foreignKey:ApplicationUniqueID;references:UniqueID" json:"-"`
}

func (Payment) TableName() string { return "payments" }

func (p *Payment) IsProcessing() bool { return p.PaymentStatus == "processing" }

// IsTerminal reports whether the payment reached a final state.
func (p *Payment) IsTerminal() bool {
	switch p.PaymentStatus {
	case "completed", "cancelled", "refunded":
		return true
	default:
		return false
	}
}
