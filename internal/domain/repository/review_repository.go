package repository

import (
	"context"

	"aurelise/internal/domain/entity"
	"aurelise/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for review and wishlist persistence.
var (
	ErrReviewNotFound       = errors.New("review not found")
	ErrWishlistItemExists   = errors.New("product already in wishlist")
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
)

// ReviewRepository defines persistence for product reviews.
type ReviewRepository interface {
	CreateReview(ctx context.Context, review *entity.Review) error

	// FindApprovedByProduct lists approved reviews of a product, newest first.
	FindApprovedByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// ListReviews lists reviews for moderation; a nil approved returns all.
	ListReviews(ctx context.Context, approved *bool) ([]*entity.Review, error)

	ApproveReview(ctx context.Context, id uuid.UUID) error
}

// WishlistRepository defines persistence for saved products.
type WishlistRepository interface {
	AddItem(ctx context.Context, item *entity.WishlistItem) error

	// FindByUser lists wishlist items with their products.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error)

	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
}
