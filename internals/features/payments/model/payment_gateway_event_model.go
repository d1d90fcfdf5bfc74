package model

import (
	"time"

	"gorm.io/datatypes"
)

// PaymentGatewayEvent is an audit row recorded for every remote verification
// attempt, successful or not. Best-effort: failures to record never block the
// lifecycle.
type PaymentGatewayEvent struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UniqueID string `gorm:"column:unique_id;type:varchar(40);not null;uniqueIndex" json:"unique_id"`

	PaymentUniqueID string         `gorm:"column:payment_unique_id;type:varchar(40);not null;index" json:"payment_unique_id"`
	Gateway         string         `gorm:"column:gateway;type:varchar(50);not null" json:"gateway"`
	Reference       string         `gorm:"column:reference;type:varchar(200);not null" json:"reference"`
	Outcome         string         `gorm:"column:outcome;type:varchar(50);not null" json:"outcome"`
	Payload         datatypes.JSON `gorm:"column:payload;type:jsonb" json:"payload,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (PaymentGatewayEvent) TableName() string { return "payment_gateway_events" }
