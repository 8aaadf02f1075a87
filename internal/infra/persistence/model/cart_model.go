package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartModel mirrors the 'carts' table. Exactly one of UserID or SessionID is set.
type CartModel struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	SessionID *string          `gorm:"type:varchar(80);uniqueIndex"`
	Items     []*CartItemModel `gorm:"foreignKey:CartID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// BeforeCreate assigns the primary key.
func (m *CartModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// CartItemModel mirrors the 'cart_items' table. (cart_id, product_id, size) is unique.
type CartItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CartID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_line"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_line"`
	Size      string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_cart_items_line"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Product   *ProductModel   `gorm:"foreignKey:ProductID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// BeforeCreate assigns the primary key.
func (m *CartItemModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}
