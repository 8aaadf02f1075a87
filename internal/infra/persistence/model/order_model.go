package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CustomerSnapshot is the contact data frozen on an order.
type CustomerSnapshot struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// AddressSnapshot is the delivery address frozen on an order.
type AddressSnapshot struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	County   string `json:"county,omitempty"`
	Postcode string `json:"postcode"`
	Country  string `json:"country,omitempty"`
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID                   uuid.UUID                            `gorm:"type:uuid;primaryKey"`
	OrderNumber          string                               `gorm:"type:varchar(50);uniqueIndex;not null"`
	UserID               *uuid.UUID                           `gorm:"type:uuid;index"`
	Status               string                               `gorm:"type:varchar(20);not null;index"`
	PaymentStatus        string                               `gorm:"type:varchar(20);not null"`
	DeliveryType         string                               `gorm:"type:varchar(10);not null"`
	DeliveryDate         time.Time                            `gorm:"not null;index"`
	DeliveryTime         string                               `gorm:"type:varchar(20)"`
	DeliveryAddress      datatypes.JSON                       `gorm:"column:delivery_address"`
	CustomerInfo         datatypes.JSONType[CustomerSnapshot] `gorm:"not null"`
	SpecialInstructions  string                               `gorm:"type:text"`
	AllergenAcknowledged bool                                 `gorm:"not null"`
	Subtotal             decimal.Decimal                      `gorm:"type:numeric(10,2);not null"`
	DeliveryFee          decimal.Decimal                      `gorm:"type:numeric(10,2);not null"`
	Tax                  decimal.Decimal                      `gorm:"type:numeric(10,2);not null"`
	Total                decimal.Decimal                      `gorm:"type:numeric(10,2);not null"`
	RefundedAmount       decimal.Decimal                      `gorm:"type:numeric(10,2);not null"`
	Currency             string                               `gorm:"type:varchar(3);not null"`
	PaymentIntentID      *string                              `gorm:"type:varchar(255);uniqueIndex"`
	Items                []*OrderItemModel                    `gorm:"foreignKey:OrderID"`
	CreatedAt            time.Time                            `gorm:"index"`
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// BeforeCreate assigns the primary key.
func (m *OrderModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	Size        string          `gorm:"type:varchar(50);not null"`
	Quantity    int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// BeforeCreate assigns the primary key.
func (m *OrderItemModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}
