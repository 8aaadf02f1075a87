package postgres

import (
	"context"

	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	"aurelise/internal/errors"
	"aurelise/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// CreateReview stores a review.
func (repo *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	reviewM := &model.ReviewModel{
		ID:        review.ID,
		ProductID: review.ProductID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		Approved:  review.Approved,
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// FindApprovedByProduct lists approved reviews of a product, newest first.
func (repo *reviewRepository) FindApprovedByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ? AND approved = ?", productID, true).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by product")
	}

	return toReviewDomains(reviewModels), nil
}

// ListReviews lists reviews for moderation.
func (repo *reviewRepository) ListReviews(ctx context.Context, approved *bool) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	db := repo.db.WithContext(ctx)
	if approved != nil {
		db = db.Where("approved = ?", *approved)
	}
	if err := db.Order("created_at DESC").Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return toReviewDomains(reviewModels), nil
}

// ApproveReview marks a review as visible.
func (repo *reviewRepository) ApproveReview(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", id).
		Update("approved", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to approve review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

func toReviewDomains(models []*model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(models))
	for _, reviewM := range models {
		reviews = append(reviews, &entity.Review{
			ID:        reviewM.ID,
			ProductID: reviewM.ProductID,
			UserID:    reviewM.UserID,
			Rating:    reviewM.Rating,
			Comment:   reviewM.Comment,
			Approved:  reviewM.Approved,
			CreatedAt: reviewM.CreatedAt,
		})
	}

	return reviews
}

// wishlistRepository implements the repository.WishlistRepository interface.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

// AddItem saves a product to the user's wishlist.
func (repo *wishlistRepository) AddItem(ctx context.Context, item *entity.WishlistItem) error {
	itemM := &model.WishlistModel{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
	}

	if err := repo.db.WithContext(ctx).Omit("Product").Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrWishlistItemExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add wishlist item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

// FindByUser lists wishlist items with their products, newest first.
func (repo *wishlistRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	var itemModels []*model.WishlistModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Sizes", preloadSizes).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find wishlist")
	}

	items := make([]*entity.WishlistItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, &entity.WishlistItem{
			ID:        itemM.ID,
			UserID:    itemM.UserID,
			ProductID: itemM.ProductID,
			Product:   toProductDomain(itemM.Product),
			CreatedAt: itemM.CreatedAt,
		})
	}

	return items, nil
}

// RemoveItem deletes a product from the user's wishlist.
func (repo *wishlistRepository) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WishlistModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove wishlist item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishlistItemNotFound
	}

	return nil
}
