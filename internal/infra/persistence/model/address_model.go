package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressModel mirrors the 'addresses' table.
type AddressModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Street    string    `gorm:"type:varchar(255);not null"`
	City      string    `gorm:"type:varchar(100);not null"`
	County    string    `gorm:"type:varchar(100)"`
	Postcode  string    `gorm:"type:varchar(20);not null"`
	Country   string    `gorm:"type:varchar(100)"`
	Type      string    `gorm:"type:varchar(10);not null"`
	IsDefault bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}

// BeforeCreate assigns the primary key.
func (m *AddressModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}
