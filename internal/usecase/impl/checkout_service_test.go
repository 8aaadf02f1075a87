package impl

import (
	"context"
	"testing"
	"time"

	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	"aurelise/internal/domain/service"
	mockRepo "aurelise/internal/mocks/repository"
	mockSvc "aurelise/internal/mocks/service"
	mockUC "aurelise/internal/mocks/usecase"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutServiceFixtures struct {
	service       usecase.CheckoutUsecase
	txManager     *mockRepo.MockTransactionManager
	cartRepo      *mockRepo.MockCartRepository
	productRepo   *mockRepo.MockProductRepository
	orderRepo     *mockRepo.MockOrderRepository
	pricing       *mockUC.MockPricingResolver
	orderNumbers  *mockSvc.MockOrderNumberGenerator
	qrCodeService *mockSvc.MockQRCodeService
	now           time.Time
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	fixtures := checkoutServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		cartRepo:      mockRepo.NewMockCartRepository(t),
		productRepo:   mockRepo.NewMockProductRepository(t),
		orderRepo:     mockRepo.NewMockOrderRepository(t),
		pricing:       mockUC.NewMockPricingResolver(t),
		orderNumbers:  mockSvc.NewMockOrderNumberGenerator(t),
		qrCodeService: mockSvc.NewMockQRCodeService(t),
		now:           time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC),
	}

	srv := NewCheckoutService(CheckoutServiceParams{
		TxManager:     fixtures.txManager,
		CartRepo:      fixtures.cartRepo,
		ProductRepo:   fixtures.productRepo,
		OrderRepo:     fixtures.orderRepo,
		Pricing:       fixtures.pricing,
		OrderNumbers:  fixtures.orderNumbers,
		QRCodeService: fixtures.qrCodeService,
		Logger:        newDiscardLogger(),
	})
	srv.(*checkoutService).now = func() time.Time { return fixtures.now }
	fixtures.service = srv

	return fixtures
}

func defaultPricing() *usecase.PricingSettings {
	return &usecase.PricingSettings{
		TaxRate:      usecase.DefaultTaxRate,
		DeliveryFee:  usecase.DefaultDeliveryFee,
		MinOrderDays: usecase.DefaultMinOrderDays,
		Currency:     "GBP",
	}
}

func validPlaceOrderInput(now time.Time) *usecase.PlaceOrderInput {
	return &usecase.PlaceOrderInput{
		DeliveryType: entity.DeliveryTypeDelivery,
		DeliveryDate: now.AddDate(0, 0, 4),
		DeliveryTime: "10:00-12:00",
		DeliveryAddress: &entity.DeliveryAddress{
			Street:   "12 Rue Lepic",
			City:     "London",
			Postcode: "N1 9GU",
		},
		Customer: entity.CustomerInfo{
			FirstName: "Claire",
			LastName:  "Dubois",
			Email:     "claire@example.com",
		},
		AllergenAcknowledged: true,
	}
}

func TestCheckoutService_PlaceOrder_DeliveryTotals(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.CartOwner{UserID: &userID}
	cartID := uuid.New()
	cakeID := uuid.New()
	orderID := uuid.New()

	cart := &entity.Cart{ID: cartID, UserID: &userID, Items: []*entity.CartItem{
		// The captured price is stale; checkout must use the live one.
		{ProductID: cakeID, ProductName: "Opera Cake", Size: "6 inch", Quantity: 2, UnitPrice: decimal.RequireFromString("20.00")},
	}}

	fx.pricing.EXPECT().Resolve(ctx).Return(defaultPricing(), nil)
	fx.cartRepo.EXPECT().FindCartByOwner(ctx, owner).Return(cart, nil)
	fx.productRepo.EXPECT().
		FindSize(ctx, cakeID, "6 inch").
		Return(&entity.ProductSize{Price: decimal.RequireFromString("22.00"), IsAvailable: true}, nil)
	fx.orderNumbers.EXPECT().Generate(ctx).Return("AUR20260504-0007", nil)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txOrderRepo := mockRepo.NewMockOrderRepository(t)
		txCartRepo := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
		factory.EXPECT().NewCartRepository().Return(txCartRepo)

		txOrderRepo.EXPECT().
			CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(_ context.Context, order *entity.Order) { order.ID = orderID }).
			Return(nil)
		txCartRepo.EXPECT().ClearItems(ctx, cartID).Return(nil)
	})

	order, err := fx.service.PlaceOrder(ctx, owner, validPlaceOrderInput(fx.now))
	require.NoError(t, err)

	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, "AUR20260504-0007", order.OrderNumber)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, "44.00", order.Subtotal.StringFixed(2))
	assert.Equal(t, "5.00", order.DeliveryFee.StringFixed(2))
	assert.Equal(t, "8.80", order.Tax.StringFixed(2))
	assert.Equal(t, "57.80", order.Total.StringFixed(2))
	assert.Equal(t, "GBP", order.Currency)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "22.00", order.Items[0].Price.StringFixed(2))
	require.NotNil(t, order.DeliveryAddress)
	assert.Equal(t, &userID, order.UserID)
}

func TestCheckoutService_PlaceOrder_PickupDropsAddress(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	owner := entity.CartOwner{SessionID: testSessionID}
	cartID := uuid.New()
	productID := uuid.New()

	input := validPlaceOrderInput(fx.now)
	input.DeliveryType = entity.DeliveryTypePickup

	fx.pricing.EXPECT().Resolve(ctx).Return(defaultPricing(), nil)
	fx.cartRepo.EXPECT().FindCartByOwner(ctx, owner).Return(&entity.Cart{ID: cartID, Items: []*entity.CartItem{
		{ProductID: productID, Size: "box of 6", Quantity: 1},
	}}, nil)
	fx.productRepo.EXPECT().
		FindSize(ctx, productID, "box of 6").
		Return(&entity.ProductSize{Price: decimal.RequireFromString("12.00"), IsAvailable: true}, nil)
	fx.orderNumbers.EXPECT().Generate(ctx).Return("AUR20260504-0008", nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txOrderRepo := mockRepo.NewMockOrderRepository(t)
		txCartRepo := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
		factory.EXPECT().NewCartRepository().Return(txCartRepo)
		txOrderRepo.EXPECT().CreateOrder(ctx, mock.Anything).Return(nil)
		txCartRepo.EXPECT().ClearItems(ctx, cartID).Return(nil)
	})

	order, err := fx.service.PlaceOrder(ctx, owner, input)
	require.NoError(t, err)
	assert.Nil(t, order.DeliveryAddress)
	assert.Nil(t, order.UserID)
	assert.True(t, order.DeliveryFee.IsZero())
	assert.Equal(t, "14.40", order.Total.StringFixed(2))
}

func TestCheckoutService_PlaceOrder_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(input *usecase.PlaceOrderInput, now time.Time)
		pricing bool
		wantErr error
	}{
		{
			name:    "allergen not acknowledged",
			mutate:  func(input *usecase.PlaceOrderInput, _ time.Time) { input.AllergenAcknowledged = false },
			wantErr: domainerrors.ErrAllergenNotAcknowledged,
		},
		{
			name:    "unknown delivery type",
			mutate:  func(input *usecase.PlaceOrderInput, _ time.Time) { input.DeliveryType = "COURIER" },
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "lead time one minute short",
			mutate:  func(input *usecase.PlaceOrderInput, now time.Time) { input.DeliveryDate = now.AddDate(0, 0, 3).Add(-time.Minute) },
			pricing: true,
			wantErr: domainerrors.ErrLeadTimeTooShort,
		},
		{
			name:    "delivery without address",
			mutate:  func(input *usecase.PlaceOrderInput, _ time.Time) { input.DeliveryAddress = &entity.DeliveryAddress{City: "London"} },
			pricing: true,
			wantErr: domainerrors.ErrDeliveryAddressRequired,
		},
		{
			name:    "customer email missing",
			mutate:  func(input *usecase.PlaceOrderInput, _ time.Time) { input.Customer.Email = " " },
			pricing: true,
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckoutService(t)
			input := validPlaceOrderInput(fx.now)
			tt.mutate(input, fx.now)
			if tt.pricing {
				fx.pricing.EXPECT().Resolve(mock.Anything).Return(defaultPricing(), nil)
			}

			order, err := fx.service.PlaceOrder(context.Background(), entity.CartOwner{SessionID: testSessionID}, input)
			assert.Nil(t, order)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckoutService_PlaceOrder_LeadTimeBoundaryAccepted(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	owner := entity.CartOwner{SessionID: testSessionID}
	input := validPlaceOrderInput(fx.now)
	input.DeliveryDate = fx.now.AddDate(0, 0, 3)

	fx.pricing.EXPECT().Resolve(ctx).Return(defaultPricing(), nil)
	fx.cartRepo.EXPECT().FindCartByOwner(ctx, owner).Return(nil, repository.ErrCartNotFound)

	_, err := fx.service.PlaceOrder(ctx, owner, input)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_PlaceOrder_ConfiguredLeadTime(t *testing.T) {
	fx := createTestCheckoutService(t)

	pricing := defaultPricing()
	pricing.MinOrderDays = 5
	input := validPlaceOrderInput(fx.now)

	fx.pricing.EXPECT().Resolve(mock.Anything).Return(pricing, nil)

	_, err := fx.service.PlaceOrder(context.Background(), entity.CartOwner{SessionID: testSessionID}, input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrLeadTimeTooShort.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Error(), "5 days")
}

func TestCheckoutService_PlaceOrder_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	owner := entity.CartOwner{SessionID: testSessionID}

	fx.pricing.EXPECT().Resolve(ctx).Return(defaultPricing(), nil)
	fx.cartRepo.EXPECT().FindCartByOwner(ctx, owner).Return(&entity.Cart{ID: uuid.New(), Items: []*entity.CartItem{}}, nil)

	order, err := fx.service.PlaceOrder(ctx, owner, validPlaceOrderInput(fx.now))
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_PlaceOrder_SizeNoLongerAvailable(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	owner := entity.CartOwner{SessionID: testSessionID}
	productID := uuid.New()

	fx.pricing.EXPECT().Resolve(ctx).Return(defaultPricing(), nil)
	fx.cartRepo.EXPECT().FindCartByOwner(ctx, owner).Return(&entity.Cart{ID: uuid.New(), Items: []*entity.CartItem{
		{ProductID: productID, ProductName: "Tarte Tatin", Size: "8 inch", Quantity: 1},
	}}, nil)
	fx.productRepo.EXPECT().
		FindSize(ctx, productID, "8 inch").
		Return(&entity.ProductSize{IsAvailable: false}, nil)

	order, err := fx.service.PlaceOrder(ctx, owner, validPlaceOrderInput(fx.now))
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrSizeUnavailable)
}

func TestCheckoutService_GetOrder_NotOwned(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindOrderByID(ctx, orderID).Return(&entity.Order{ID: orderID, UserID: &ownerID}, nil)

	order, err := fx.service.GetOrder(ctx, uuid.New(), orderID)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestCheckoutService_PickupQR(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: &userID, OrderNumber: "AUR20260504-0007"}, nil)
	fx.qrCodeService.EXPECT().
		GeneratePickupQR(service.PickupCode{OrderID: orderID, OrderNumber: "AUR20260504-0007"}).
		Return([]byte("png"), nil)

	png, err := fx.service.PickupQR(ctx, userID, orderID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestCheckoutService_ListOrders(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	orders := []*entity.Order{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.orderRepo.EXPECT().FindOrdersByUser(ctx, userID).Return(orders, nil)

	result, err := fx.service.ListOrders(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, orders, result)
}
