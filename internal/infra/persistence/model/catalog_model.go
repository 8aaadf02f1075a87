package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Slug        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	Active      bool      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// BeforeCreate assigns the primary key.
func (m *CategoryModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// ProductModel mirrors the 'products' table. List columns are stored as JSON arrays.
type ProductModel struct {
	ID               uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name             string                      `gorm:"type:varchar(255);not null"`
	Slug             string                      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description      string                      `gorm:"type:text"`
	ShortDescription string                      `gorm:"type:varchar(500)"`
	CategoryID       *uuid.UUID                  `gorm:"type:uuid;index"`
	Category         *CategoryModel              `gorm:"foreignKey:CategoryID"`
	Featured         bool                        `gorm:"not null;index"`
	Active           bool                        `gorm:"not null;index"`
	Allergens        datatypes.JSONSlice[string] `gorm:"not null"`
	Ingredients      datatypes.JSONSlice[string] `gorm:"not null"`
	Images           datatypes.JSONSlice[string] `gorm:"not null"`
	Sizes            []*ProductSizeModel         `gorm:"foreignKey:ProductID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeCreate assigns the primary key.
func (m *ProductModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// ProductSizeModel mirrors the 'product_sizes' table.
type ProductSizeModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_product_sizes_product_size"`
	Size        string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_product_sizes_product_size"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	IsAvailable bool            `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductSizeModel) TableName() string {
	return "product_sizes"
}

// BeforeCreate assigns the primary key.
func (m *ProductSizeModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	Approved  bool      `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// BeforeCreate assigns the primary key.
func (m *ReviewModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// WishlistModel mirrors the 'wishlist' table.
type WishlistModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_product"`
	ProductID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_product"`
	Product   *ProductModel `gorm:"foreignKey:ProductID"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WishlistModel) TableName() string {
	return "wishlist"
}

// BeforeCreate assigns the primary key.
func (m *WishlistModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}
