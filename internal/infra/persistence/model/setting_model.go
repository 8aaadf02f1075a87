package model

import "time"

// SettingModel mirrors the 'settings' table, keyed by Key.
type SettingModel struct {
	Key         string `gorm:"type:varchar(100);primaryKey"`
	Value       string `gorm:"type:text;not null"`
	Type        string `gorm:"type:varchar(10);not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingModel) TableName() string {
	return "settings"
}
