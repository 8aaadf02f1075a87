// Package entity contains the core business objects of the storefront.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups products on the storefront.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Product is a sellable item. Products are disabled with Active=false and never hard-deleted.
type Product struct {
	ID               uuid.UUID      `json:"id"`
	Name             string         `json:"name"`
	Slug             string         `json:"slug"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"short_description"`
	CategoryID       *uuid.UUID     `json:"category_id,omitempty"`
	Category         *Category      `json:"category,omitempty"`
	Featured         bool           `json:"featured"`
	Active           bool           `json:"active"`
	Allergens        []string       `json:"allergens"`
	Ingredients      []string       `json:"ingredients"`
	Images           []string       `json:"images"`
	Sizes            []*ProductSize `json:"sizes"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// ProductSize is a priced variant of a product.
type ProductSize struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	Size        string          `json:"size"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"is_available"`
}

// FindSize returns the variant with the given label, or nil.
func (p *Product) FindSize(size string) *ProductSize {
	for _, s := range p.Sizes {
		if s.Size == size {
			return s
		}
	}

	return nil
}

// ProductDetail is the single-product page: product, approved reviews and related products.
type ProductDetail struct {
	Product *Product   `json:"product"`
	Reviews []*Review  `json:"reviews"`
	Related []*Product `json:"related"`
}

// ProductFilter narrows a catalog listing.
type ProductFilter struct {
	CategorySlug    string
	Featured        *bool
	Search          string
	IncludeInactive bool
	Page            int
	Limit           int
}

// Review is a customer rating of a product. Reviews start unapproved.
type Review struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

// WishlistItem is a product saved by a customer.
type WishlistItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewPagination computes the page count for a total.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// NormalizePage clamps page and limit to sane values.
func NormalizePage(page, limit, defaultLimit, maxLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}
