package repository

import (
	"context"

	"aurelise/internal/domain/entity"
	"aurelise/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrSizeNotFound     = errors.New("product size not found")
	ErrDuplicateSlug    = errors.New("product slug already exists")
	ErrCategoryNotFound = errors.New("category not found")
)

// ProductRepository defines read and write access to products and their sizes.
type ProductRepository interface {
	// ListProducts returns one page of products, featured first then newest, and the total count.
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, int64, error)

	// FindProductBySlug loads an active product with sizes and category.
	FindProductBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// FindProductByID loads a product with sizes and category regardless of its active flag.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindRelatedProducts returns active products of the category, excluding excludeID.
	FindRelatedProducts(ctx context.Context, categoryID, excludeID uuid.UUID, limit int) ([]*entity.Product, error)

	// FindSize returns the live size row of an active product.
	FindSize(ctx context.Context, productID uuid.UUID, size string) (*entity.ProductSize, error)

	// CreateProduct persists the product and its sizes.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// UpdateProduct writes product fields; sizes are untouched.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// ReplaceSizes deletes the existing sizes of a product and inserts the given ones.
	ReplaceSizes(ctx context.Context, productID uuid.UUID, sizes []*entity.ProductSize) error

	// SetActive toggles product visibility.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// CategoryRepository defines read access to product categories.
type CategoryRepository interface {
	// ListActiveCategories returns active categories ordered by name.
	ListActiveCategories(ctx context.Context) ([]*entity.Category, error)
}
