package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "aurelise/internal/delivery/context"
	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	"aurelise/internal/errors"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/fx"
)

const (
	defaultProductPageSize = 12
	maxProductPageSize     = 100
	relatedProductsLimit   = 3
	maxCommentLength       = 2000
)

type catalogService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	reviewRepo   repository.ReviewRepository
	logger       *slog.Logger
	now          func() time.Time
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	ReviewRepo   repository.ReviewRepository
	Logger       *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		reviewRepo:   params.ReviewRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (s *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListProducts lists active products.
func (s *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) (*usecase.ProductPage, error) {
	filter.IncludeInactive = false

	return s.listProducts(ctx, filter)
}

// AdminListProducts lists products including disabled ones.
func (s *catalogService) AdminListProducts(ctx context.Context, filter entity.ProductFilter) (*usecase.ProductPage, error) {
	filter.IncludeInactive = true

	return s.listProducts(ctx, filter)
}

func (s *catalogService) listProducts(ctx context.Context, filter entity.ProductFilter) (*usecase.ProductPage, error) {
	filter.Page, filter.Limit = entity.NormalizePage(filter.Page, filter.Limit, defaultProductPageSize, maxProductPageSize)
	filter.Search = strings.TrimSpace(filter.Search)

	products, total, err := s.productRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductPage{
		Items:      products,
		Pagination: entity.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// GetProduct returns the active product with its approved reviews and related products.
func (s *catalogService) GetProduct(ctx context.Context, productSlug string) (*entity.ProductDetail, error) {
	product, err := s.productRepo.FindProductBySlug(ctx, productSlug)
	if errors.Is(err, repository.ErrProductNotFound) || (err == nil && !product.Active) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	reviews, err := s.reviewRepo.FindApprovedByProduct(ctx, product.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	related := []*entity.Product{}
	if product.CategoryID != nil {
		related, err = s.productRepo.FindRelatedProducts(ctx, *product.CategoryID, product.ID, relatedProductsLimit)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find related products")
		}
	}

	return &entity.ProductDetail{Product: product, Reviews: reviews, Related: related}, nil
}

// ListCategories lists active categories.
func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.ListActiveCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// CreateProduct stores a new product with its sizes.
func (s *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input, true); err != nil {
		return nil, err
	}

	now := s.now()
	product := &entity.Product{
		ID:        uuid.New(),
		Active:    true,
		CreatedAt: now,
	}
	applyProductInput(product, input, now)

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, domainerrors.ErrProductSlugTaken
		}

		return nil, errors.Wrap(err, "failed to create product")
	}

	s.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("slug", product.Slug))

	return product, nil
}

// UpdateProduct overwrites a product and, when sizes are given, replaces its sizes.
func (s *catalogService) UpdateProduct(ctx context.Context, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input, false); err != nil {
		return nil, err
	}

	var product *entity.Product
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		existing, err := productRepo.FindProductByID(ctx, productID)
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find product")
		}

		applyProductInput(existing, input, s.now())

		if err := productRepo.UpdateProduct(ctx, existing); err != nil {
			if errors.Is(err, repository.ErrDuplicateSlug) {
				return domainerrors.ErrProductSlugTaken
			}

			return errors.Wrap(err, "failed to update product")
		}
		if input.Sizes != nil {
			if err := productRepo.ReplaceSizes(ctx, existing.ID, existing.Sizes); err != nil {
				return errors.Wrap(err, "failed to replace sizes")
			}
		}
		product = existing

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update product transaction")
	}

	s.log(ctx).Info("Product updated", slog.Any("productID", productID))

	return product, nil
}

// DisableProduct hides the product from the storefront.
func (s *catalogService) DisableProduct(ctx context.Context, productID uuid.UUID) error {
	if err := s.productRepo.SetActive(ctx, productID, false); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to disable product")
	}

	s.log(ctx).Info("Product disabled", slog.Any("productID", productID))

	return nil
}

// SubmitReview stores an unapproved review.
func (s *catalogService) SubmitReview(ctx context.Context, userID uuid.UUID, input *usecase.ReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}
	comment := strings.TrimSpace(input.Comment)
	if len(comment) > maxCommentLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("comment is too long")
	}

	if _, err := s.productRepo.FindProductByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	review := &entity.Review{
		ID:        uuid.New(),
		ProductID: input.ProductID,
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   comment,
		CreatedAt: s.now(),
	}
	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	return review, nil
}

// ListReviews lists reviews, optionally filtered by approval.
func (s *catalogService) ListReviews(ctx context.Context, approved *bool) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.ListReviews(ctx, approved)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// ApproveReview publishes a review on its product page.
func (s *catalogService) ApproveReview(ctx context.Context, reviewID uuid.UUID) error {
	if err := s.reviewRepo.ApproveReview(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to approve review")
	}

	return nil
}

func validateProductInput(input *usecase.ProductInput, creating bool) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	input.Slug = strings.TrimSpace(input.Slug)
	if input.Slug == "" {
		input.Slug = slug.Make(input.Name)
	} else if !slug.IsSlug(input.Slug) {
		return domainerrors.ErrValidationFailed.WithDetails("slug must be lowercase letters, digits and hyphens")
	}

	if creating && len(input.Sizes) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("at least one size is required")
	}

	seen := make(map[string]bool, len(input.Sizes))
	for _, size := range input.Sizes {
		name := strings.TrimSpace(size.Size)
		if name == "" {
			return domainerrors.ErrValidationFailed.WithDetails("size name is required")
		}
		if seen[name] {
			return domainerrors.ErrValidationFailed.WithDetails("duplicate size " + name)
		}
		seen[name] = true
		if size.Price.IsNegative() {
			return domainerrors.ErrValidationFailed.WithDetails("size price must not be negative")
		}
	}

	return nil
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput, now time.Time) {
	product.Name = input.Name
	product.Slug = input.Slug
	product.Description = strings.TrimSpace(input.Description)
	product.ShortDescription = strings.TrimSpace(input.ShortDescription)
	product.CategoryID = input.CategoryID
	product.Featured = input.Featured
	if input.Active != nil {
		product.Active = *input.Active
	}
	product.Allergens = nonNilStrings(input.Allergens)
	product.Ingredients = nonNilStrings(input.Ingredients)
	product.Images = nonNilStrings(input.Images)
	product.UpdatedAt = now

	if input.Sizes != nil {
		product.Sizes = make([]*entity.ProductSize, 0, len(input.Sizes))
		for _, size := range input.Sizes {
			product.Sizes = append(product.Sizes, &entity.ProductSize{
				ID:          uuid.New(),
				ProductID:   product.ID,
				Size:        strings.TrimSpace(size.Size),
				Price:       size.Price.Round(2),
				IsAvailable: size.IsAvailable,
			})
		}
	}
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
