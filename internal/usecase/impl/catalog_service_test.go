package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	mockRepo "aurelise/internal/mocks/repository"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	txManager    *mockRepo.MockTransactionManager
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	reviewRepo   *mockRepo.MockReviewRepository
	now          time.Time
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	fixtures := catalogServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		reviewRepo:   mockRepo.NewMockReviewRepository(t),
		now:          time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC),
	}

	srv := NewCatalogService(CatalogServiceParams{
		TxManager:    fixtures.txManager,
		ProductRepo:  fixtures.productRepo,
		CategoryRepo: fixtures.categoryRepo,
		ReviewRepo:   fixtures.reviewRepo,
		Logger:       newDiscardLogger(),
	})
	srv.(*catalogService).now = func() time.Time { return fixtures.now }
	fixtures.service = srv

	return fixtures
}

func validProductInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        "Tarte au Citron",
		Description: "Lemon tart with Italian meringue",
		Allergens:   []string{"gluten", "eggs", "milk"},
		Sizes: []usecase.SizeInput{
			{Size: "6 inch", Price: decimal.RequireFromString("22.00"), IsAvailable: true},
			{Size: "8 inch", Price: decimal.RequireFromString("32.005"), IsAvailable: true},
		},
	}
}

func TestCatalogService_ListProducts_HidesInactive(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	featured := true

	fx.productRepo.EXPECT().
		ListProducts(ctx, entity.ProductFilter{Featured: &featured, Search: "tart", Page: 1, Limit: 12}).
		Return([]*entity.Product{{Name: "Tarte au Citron"}}, int64(1), nil)

	page, err := fx.service.ListProducts(ctx, entity.ProductFilter{Featured: &featured, Search: "  tart ", IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Pagination.TotalPages)
}

func TestCatalogService_AdminListProducts_IncludesInactive(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.productRepo.EXPECT().
		ListProducts(mock.Anything, mock.MatchedBy(func(filter entity.ProductFilter) bool {
			return filter.IncludeInactive && filter.Limit == 100
		})).
		Return([]*entity.Product{}, int64(0), nil)

	_, err := fx.service.AdminListProducts(context.Background(), entity.ProductFilter{Limit: 1000})
	require.NoError(t, err)
}

func TestCatalogService_GetProduct(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Slug: "opera", CategoryID: &categoryID, Active: true}
	reviews := []*entity.Review{{ID: uuid.New(), Rating: 5, Approved: true}}
	related := []*entity.Product{{ID: uuid.New(), Slug: "fraisier"}}

	fx.productRepo.EXPECT().FindProductBySlug(ctx, "opera").Return(product, nil)
	fx.reviewRepo.EXPECT().FindApprovedByProduct(ctx, product.ID).Return(reviews, nil)
	fx.productRepo.EXPECT().FindRelatedProducts(ctx, categoryID, product.ID, 3).Return(related, nil)

	detail, err := fx.service.GetProduct(ctx, "opera")
	require.NoError(t, err)
	assert.Equal(t, product, detail.Product)
	assert.Equal(t, reviews, detail.Reviews)
	assert.Equal(t, related, detail.Related)
}

func TestCatalogService_GetProduct_Uncategorized(t *testing.T) {
	fx := createTestCatalogService(t)

	product := &entity.Product{ID: uuid.New(), Slug: "macarons", Active: true}
	fx.productRepo.EXPECT().FindProductBySlug(mock.Anything, "macarons").Return(product, nil)
	fx.reviewRepo.EXPECT().FindApprovedByProduct(mock.Anything, product.ID).Return([]*entity.Review{}, nil)

	detail, err := fx.service.GetProduct(context.Background(), "macarons")
	require.NoError(t, err)
	assert.NotNil(t, detail.Related)
	assert.Empty(t, detail.Related)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		product *entity.Product
		err     error
	}{
		{name: "missing", err: repository.ErrProductNotFound},
		{name: "disabled", product: &entity.Product{ID: uuid.New(), Slug: "eclair", Active: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)

			fx.productRepo.EXPECT().FindProductBySlug(mock.Anything, "eclair").Return(tt.product, tt.err)

			detail, err := fx.service.GetProduct(context.Background(), "eclair")
			assert.Nil(t, detail)
			assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
		})
	}
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.MatchedBy(func(product *entity.Product) bool {
			return product.Slug == "tarte-au-citron" && product.Active && len(product.Sizes) == 2
		})).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, validProductInput())
	require.NoError(t, err)
	assert.Equal(t, "tarte-au-citron", product.Slug)
	assert.Equal(t, "32.01", product.Sizes[1].Price.StringFixed(2))
	assert.Equal(t, product.ID, product.Sizes[0].ProductID)
	assert.Equal(t, []string{}, product.Images)
	assert.Equal(t, fx.now, product.CreatedAt)
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(input *usecase.ProductInput)
	}{
		{name: "blank name", modify: func(input *usecase.ProductInput) { input.Name = "  " }},
		{name: "bad slug", modify: func(input *usecase.ProductInput) { input.Slug = "Tarte Au Citron!" }},
		{name: "no sizes", modify: func(input *usecase.ProductInput) { input.Sizes = nil }},
		{name: "duplicate size", modify: func(input *usecase.ProductInput) { input.Sizes[1].Size = "6 inch" }},
		{name: "negative price", modify: func(input *usecase.ProductInput) { input.Sizes[0].Price = decimal.NewFromInt(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)

			input := validProductInput()
			tt.modify(input)

			product, err := fx.service.CreateProduct(context.Background(), input)
			assert.Nil(t, product)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCatalogService_CreateProduct_SlugTaken(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.productRepo.EXPECT().CreateProduct(mock.Anything, mock.Anything).Return(repository.ErrDuplicateSlug)

	_, err := fx.service.CreateProduct(context.Background(), validProductInput())
	assert.ErrorIs(t, err, domainerrors.ErrProductSlugTaken)
}

func TestCatalogService_UpdateProduct_ReplacesSizes(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	existing := &entity.Product{ID: productID, Name: "Lemon Tart", Slug: "lemon-tart", Active: false}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().NewProductRepository().Return(txProductRepo)

		txProductRepo.EXPECT().FindProductByID(ctx, productID).Return(existing, nil)
		txProductRepo.EXPECT().UpdateProduct(ctx, existing).Return(nil)
		txProductRepo.EXPECT().
			ReplaceSizes(ctx, productID, mock.MatchedBy(func(sizes []*entity.ProductSize) bool {
				return len(sizes) == 2 && sizes[0].Size == "6 inch"
			})).
			Return(nil)
	})

	product, err := fx.service.UpdateProduct(ctx, productID, validProductInput())
	require.NoError(t, err)
	assert.Equal(t, "Tarte au Citron", product.Name)
	assert.False(t, product.Active)
}

func TestCatalogService_UpdateProduct_KeepsSizesWhenOmitted(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	sizes := []*entity.ProductSize{{ID: uuid.New(), Size: "Box of 12"}}
	existing := &entity.Product{ID: productID, Slug: "macarons", Active: true, Sizes: sizes}
	active := false

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().NewProductRepository().Return(txProductRepo)

		txProductRepo.EXPECT().FindProductByID(ctx, productID).Return(existing, nil)
		txProductRepo.EXPECT().UpdateProduct(ctx, existing).Return(nil)
	})

	product, err := fx.service.UpdateProduct(ctx, productID, &usecase.ProductInput{Name: "Macarons", Slug: "macarons", Active: &active})
	require.NoError(t, err)
	assert.Equal(t, sizes, product.Sizes)
	assert.False(t, product.Active)
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	productID := uuid.New()
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().NewProductRepository().Return(txProductRepo)
		txProductRepo.EXPECT().FindProductByID(mock.Anything, productID).Return(nil, repository.ErrProductNotFound)
	})

	_, err := fx.service.UpdateProduct(context.Background(), productID, validProductInput())
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_DisableProduct(t *testing.T) {
	fx := createTestCatalogService(t)

	productID := uuid.New()
	fx.productRepo.EXPECT().SetActive(mock.Anything, productID, false).Return(nil)

	assert.NoError(t, fx.service.DisableProduct(context.Background(), productID))
}

func TestCatalogService_SubmitReview(t *testing.T) {
	productID := uuid.New()

	tests := []struct {
		name    string
		input   usecase.ReviewInput
		setup   func(fx catalogServiceFixtures)
		wantErr error
	}{
		{
			name:  "stored unapproved",
			input: usecase.ReviewInput{ProductID: productID, Rating: 5, Comment: " Perfect "},
			setup: func(fx catalogServiceFixtures) {
				fx.productRepo.EXPECT().FindProductByID(mock.Anything, productID).Return(&entity.Product{ID: productID}, nil)
				fx.reviewRepo.EXPECT().
					CreateReview(mock.Anything, mock.MatchedBy(func(review *entity.Review) bool {
						return !review.Approved && review.Comment == "Perfect"
					})).
					Return(nil)
			},
		},
		{name: "rating too low", input: usecase.ReviewInput{ProductID: productID, Rating: 0}, wantErr: domainerrors.ErrValidationFailed},
		{name: "rating too high", input: usecase.ReviewInput{ProductID: productID, Rating: 6}, wantErr: domainerrors.ErrValidationFailed},
		{
			name:    "comment too long",
			input:   usecase.ReviewInput{ProductID: productID, Rating: 4, Comment: strings.Repeat("a", 2001)},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:  "unknown product",
			input: usecase.ReviewInput{ProductID: productID, Rating: 4},
			setup: func(fx catalogServiceFixtures) {
				fx.productRepo.EXPECT().FindProductByID(mock.Anything, productID).Return(nil, repository.ErrProductNotFound)
			},
			wantErr: domainerrors.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}
			input := tt.input

			review, err := fx.service.SubmitReview(context.Background(), uuid.New(), &input)
			if tt.wantErr != nil {
				assert.Nil(t, review)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, 5, review.Rating)
		})
	}
}

func TestCatalogService_ApproveReview_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	reviewID := uuid.New()
	fx.reviewRepo.EXPECT().ApproveReview(mock.Anything, reviewID).Return(repository.ErrReviewNotFound)

	err := fx.service.ApproveReview(context.Background(), reviewID)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}
