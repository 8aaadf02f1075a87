package usecase

import (
	"context"

	"aurelise/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductPage is one page of a product listing.
type ProductPage struct {
	Items      []*entity.Product `json:"items"`
	Pagination entity.Pagination `json:"pagination"`
}

// ProductInput defines a product written from the back office.
type ProductInput struct {
	Name             string
	Slug             string
	Description      string
	ShortDescription string
	CategoryID       *uuid.UUID
	Featured         bool
	Active           *bool
	Allergens        []string
	Ingredients      []string
	Images           []string

	// Sizes replaces every size of the product when non-nil.
	Sizes []SizeInput
}

// SizeInput defines one priced variant.
type SizeInput struct {
	Size        string
	Price       decimal.Decimal
	IsAvailable bool
}

// ReviewInput defines a customer review.
type ReviewInput struct {
	ProductID uuid.UUID
	Rating    int
	Comment   string
}

// CatalogUsecase defines the read side of the storefront and product administration.
type CatalogUsecase interface {
	// ListProducts lists active products, featured first then newest.
	ListProducts(ctx context.Context, filter entity.ProductFilter) (*ProductPage, error)
	// GetProduct returns an active product with approved reviews and related products.
	GetProduct(ctx context.Context, slug string) (*entity.ProductDetail, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// AdminListProducts lists every product including disabled ones.
	AdminListProducts(ctx context.Context, filter entity.ProductFilter) (*ProductPage, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, input *ProductInput) (*entity.Product, error)
	// DisableProduct hides a product. Products are never hard-deleted.
	DisableProduct(ctx context.Context, productID uuid.UUID) error

	SubmitReview(ctx context.Context, userID uuid.UUID, input *ReviewInput) (*entity.Review, error)
	ListReviews(ctx context.Context, approved *bool) ([]*entity.Review, error)
	ApproveReview(ctx context.Context, reviewID uuid.UUID) error
}
