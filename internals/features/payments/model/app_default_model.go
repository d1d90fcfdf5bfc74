package model

import "time"

// AppDefault is a named runtime configuration value, e.g. a gateway secret
// key, fetched by criteria instead of compiled in.
type AppDefault struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UniqueID string `gorm:"column:unique_id;type:varchar(40);not null;uniqueIndex" json:"unique_id"`

	Criteria string `gorm:"column:criteria;type:varchar(100);not null;uniqueIndex" json:"criteria"`
	DataType string `gorm:"column:data_type;type:varchar(20);not null" json:"data_type"`
	Value    string `gorm:"column:value;type:varchar(500);not null" json:"-"`
	Status   int    `gorm:"column:status;not null" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (AppDefault) TableName() string { return "app_defaults" }
