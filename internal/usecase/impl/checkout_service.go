package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	deliverycontext "aurelise/internal/delivery/context"
	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	"aurelise/internal/domain/service"
	"aurelise/internal/errors"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type checkoutService struct {
	txManager     repository.TransactionManager
	cartRepo      repository.CartRepository
	productRepo   repository.ProductRepository
	orderRepo     repository.OrderRepository
	pricing       usecase.PricingResolver
	orderNumbers  service.OrderNumberGenerator
	qrCodeService service.QRCodeService
	logger        *slog.Logger
	now           func() time.Time
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	CartRepo      repository.CartRepository
	ProductRepo   repository.ProductRepository
	OrderRepo     repository.OrderRepository
	Pricing       usecase.PricingResolver
	OrderNumbers  service.OrderNumberGenerator
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager:     params.TxManager,
		cartRepo:      params.CartRepo,
		productRepo:   params.ProductRepo,
		orderRepo:     params.OrderRepo,
		pricing:       params.Pricing,
		orderNumbers:  params.OrderNumbers,
		qrCodeService: params.QRCodeService,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (s *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// PlaceOrder validates the checkout form, re-prices the cart and writes the order while clearing the cart.
func (s *checkoutService) PlaceOrder(ctx context.Context, owner entity.CartOwner, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if err := validateOwner(owner); err != nil {
		return nil, err
	}
	if !input.AllergenAcknowledged {
		return nil, domainerrors.ErrAllergenNotAcknowledged
	}
	if !input.DeliveryType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("delivery_type must be PICKUP or DELIVERY")
	}

	pricing, err := s.pricing.Resolve(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve pricing")
	}

	if input.DeliveryDate.Before(s.now().AddDate(0, 0, pricing.MinOrderDays)) {
		return nil, leadTimeError(pricing.MinOrderDays)
	}
	if input.DeliveryType == entity.DeliveryTypeDelivery && !hasDeliveryAddress(input.DeliveryAddress) {
		return nil, domainerrors.ErrDeliveryAddressRequired
	}
	if err := validateCustomer(input.Customer); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.FindCartByOwner(ctx, owner)
	if errors.Is(err, repository.ErrCartNotFound) || (err == nil && len(cart.Items) == 0) {
		return nil, domainerrors.ErrCartEmpty
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	items, subtotal, err := s.priceItems(ctx, cart.Items)
	if err != nil {
		return nil, err
	}
	totals := pricing.Totals(subtotal, input.DeliveryType)

	orderNumber, err := s.orderNumbers.Generate(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order number")
	}

	order := &entity.Order{
		OrderNumber:          orderNumber,
		UserID:               owner.UserID,
		Status:               entity.OrderStatusPending,
		PaymentStatus:        entity.PaymentStatusPending,
		DeliveryType:         input.DeliveryType,
		DeliveryDate:         input.DeliveryDate,
		DeliveryTime:         strings.TrimSpace(input.DeliveryTime),
		Customer:             input.Customer,
		SpecialInstructions:  strings.TrimSpace(input.SpecialInstructions),
		AllergenAcknowledged: true,
		Subtotal:             totals.Subtotal,
		DeliveryFee:          totals.DeliveryFee,
		Tax:                  totals.Tax,
		Total:                totals.Total,
		RefundedAmount:       decimal.Zero,
		Currency:             pricing.Currency,
		Items:                items,
	}
	if input.DeliveryType == entity.DeliveryTypeDelivery {
		order.DeliveryAddress = input.DeliveryAddress
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return errors.Wrap(repoFactory.NewCartRepository().ClearItems(ctx, cart.ID), "failed to clear cart")
	})
	if err != nil {
		s.log(ctx).Error("Failed to place order", slog.String("orderNumber", orderNumber), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}

	s.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.String("orderNumber", order.OrderNumber),
		slog.String("total", order.Total.StringFixed(2)),
	)

	return order, nil
}

// priceItems re-reads every line's live price and builds the order lines.
func (s *checkoutService) priceItems(ctx context.Context, cartItems []*entity.CartItem) ([]*entity.OrderItem, decimal.Decimal, error) {
	subtotal := decimal.Zero
	items := make([]*entity.OrderItem, 0, len(cartItems))

	for _, cartItem := range cartItems {
		size, err := s.productRepo.FindSize(ctx, cartItem.ProductID, cartItem.Size)
		if errors.Is(err, repository.ErrSizeNotFound) || errors.Is(err, repository.ErrProductNotFound) || (err == nil && !size.IsAvailable) {
			return nil, decimal.Zero, domainerrors.ErrSizeUnavailable.WithDetails(fmt.Sprintf("%s (%s) is no longer available", cartItem.ProductName, cartItem.Size))
		}
		if err != nil {
			return nil, decimal.Zero, errors.Wrap(err, "failed to find product size")
		}

		line := &entity.OrderItem{
			ProductID:   cartItem.ProductID,
			ProductName: cartItem.ProductName,
			Size:        cartItem.Size,
			Quantity:    cartItem.Quantity,
			Price:       size.Price,
		}
		subtotal = subtotal.Add(size.Price.Mul(decimal.NewFromInt(int64(cartItem.Quantity))))
		items = append(items, line)
	}

	return items, subtotal, nil
}

// ListOrders lists the account's orders newest first.
func (s *checkoutService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindOrdersByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns an order owned by the account.
func (s *checkoutService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}
	if !order.IsOwnedBy(userID) {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// PickupQR renders the collection QR code of an owned order.
func (s *checkoutService) PickupQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error) {
	order, err := s.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrCodeService.GeneratePickupQR(service.PickupCode{OrderID: order.ID, OrderNumber: order.OrderNumber})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR code")
	}

	return png, nil
}

func leadTimeError(days int) error {
	if days == usecase.DefaultMinOrderDays {
		return domainerrors.ErrLeadTimeTooShort
	}

	return domainerrors.NewBaseError(
		http.StatusBadRequest,
		domainerrors.ErrLeadTimeTooShort.ErrorCode(),
		fmt.Sprintf("Delivery date must be at least %d days in advance", days),
		"",
	)
}

func hasDeliveryAddress(address *entity.DeliveryAddress) bool {
	if address == nil {
		return false
	}

	return strings.TrimSpace(address.Street) != "" &&
		strings.TrimSpace(address.City) != "" &&
		strings.TrimSpace(address.Postcode) != ""
}

func validateCustomer(customer entity.CustomerInfo) error {
	if strings.TrimSpace(customer.Email) == "" ||
		strings.TrimSpace(customer.FirstName) == "" ||
		strings.TrimSpace(customer.LastName) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("customer first_name, last_name and email are required")
	}

	return nil
}
