package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"aurelise/config"
	deliverycontext "aurelise/internal/delivery/context"
	"aurelise/internal/domain/constants"
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

const (
	dashboardTopProducts  = 5
	dashboardRecentOrders = 10
	dashboardWindowDays   = 30
	maxOrderPageSize      = 100
)

type orderAdminService struct {
	orderRepo          repository.OrderRepository
	userRepo           repository.UserRepository
	settingRepo        repository.SettingRepository
	qrCodeService      service.QRCodeService
	publisher          service.EventPublisher
	enforceTransitions bool
	defaultPageSize    int
	logger             *slog.Logger
	now                func() time.Time
}

// OrderAdminServiceParams holds dependencies for OrderAdminService, injected by Fx.
type OrderAdminServiceParams struct {
	fx.In

	OrderRepo     repository.OrderRepository
	UserRepo      repository.UserRepository
	SettingRepo   repository.SettingRepository
	QRCodeService service.QRCodeService
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewOrderAdminService creates the back-office service.
func NewOrderAdminService(params OrderAdminServiceParams) usecase.OrderAdminUsecase {
	srv := &orderAdminService{
		orderRepo:       params.OrderRepo,
		userRepo:        params.UserRepo,
		settingRepo:     params.SettingRepo,
		qrCodeService:   params.QRCodeService,
		publisher:       params.Publisher,
		defaultPageSize: 20,
		logger:          params.Logger,
		now:             time.Now,
	}
	if params.Config != nil && params.Config.Orders != nil {
		srv.enforceTransitions = params.Config.Orders.EnforceTransitions
		if params.Config.Orders.DefaultPageSize > 0 {
			srv.defaultPageSize = params.Config.Orders.DefaultPageSize
		}
	}

	return srv
}

func (s *orderAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListOrders returns one page of orders, newest first.
func (s *orderAdminService) ListOrders(ctx context.Context, filter entity.OrderFilter) (*usecase.OrderPage, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus
	}
	filter.Page, filter.Limit = entity.NormalizePage(filter.Page, filter.Limit, s.defaultPageSize, maxOrderPageSize)

	orders, total, err := s.orderRepo.ListOrders(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderPage{
		Items:      orders,
		Pagination: entity.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// GetOrder returns any order with its items.
func (s *orderAdminService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// UpdateStatus writes a fulfilment status and announces the change.
func (s *orderAdminService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus
	}

	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if s.enforceTransitions && !order.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrStatusTransitionNotAllowed.WithDetails(
			order.Status.String() + " -> " + status.String(),
		)
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	previous := order.Status
	order.Status = status
	s.log(ctx).Info("Order status updated",
		slog.Any("orderID", orderID),
		slog.String("from", previous.String()),
		slog.String("to", status.String()),
	)

	if previous != status {
		publishOrderEvent(ctx, s.publisher, s.log(ctx), newOrderEvent(ctx, constants.EventOrderStatusChanged, order, s.now()))
	}

	return order, nil
}

// ScanPickup resolves a scanned pickup code to its order.
func (s *orderAdminService) ScanPickup(ctx context.Context, qrData string) (*entity.Order, error) {
	code, err := s.qrCodeService.ParsePickupQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode.WithDetails(err.Error())
	}

	order, err := s.GetOrder(ctx, code.OrderID)
	if err != nil {
		return nil, err
	}
	if order.OrderNumber != code.OrderNumber {
		return nil, domainerrors.ErrInvalidQRCode.WithDetails("order number mismatch")
	}

	return order, nil
}

// Dashboard summarizes today, the last 30 days and the current workload.
func (s *orderAdminService) Dashboard(ctx context.Context) (*entity.DashboardStats, error) {
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats := &entity.DashboardStats{}
	var err error

	if stats.TodayOrders, stats.TodayRevenue, err = s.orderRepo.SummarizeSince(ctx, startOfDay); err != nil {
		return nil, errors.Wrap(err, "failed to summarize today's orders")
	}
	if stats.MonthOrders, stats.MonthRevenue, err = s.orderRepo.SummarizeSince(ctx, now.AddDate(0, 0, -dashboardWindowDays)); err != nil {
		return nil, errors.Wrap(err, "failed to summarize recent orders")
	}
	if stats.PendingOrders, err = s.orderRepo.CountByStatus(ctx, entity.OrderStatusPending); err != nil {
		return nil, errors.Wrap(err, "failed to count pending orders")
	}
	if stats.PopularProducts, err = s.orderRepo.TopProducts(ctx, dashboardTopProducts); err != nil {
		return nil, errors.Wrap(err, "failed to rank products")
	}
	if stats.RecentOrders, err = s.orderRepo.RecentOrders(ctx, dashboardRecentOrders); err != nil {
		return nil, errors.Wrap(err, "failed to load recent orders")
	}

	return stats, nil
}

// ListCustomers returns customer accounts with their order counts.
func (s *orderAdminService) ListCustomers(ctx context.Context) ([]*entity.CustomerSummary, error) {
	customers, err := s.userRepo.ListCustomers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

// ListSettings returns every setting sorted by key.
func (s *orderAdminService) ListSettings(ctx context.Context) ([]*entity.Setting, error) {
	settings, err := s.settingRepo.ListSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list settings")
	}

	return settings, nil
}

// UpsertSetting validates the value against its declared type and stores it.
func (s *orderAdminService) UpsertSetting(ctx context.Context, input *usecase.SettingInput) (*entity.Setting, error) {
	key := strings.TrimSpace(input.Key)
	if key == "" {
		return nil, domainerrors.ErrInvalidSetting.WithDetails("key is required")
	}
	if input.Type == "" {
		input.Type = entity.SettingTypeText
	}
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrInvalidSetting.WithDetails("unknown setting type " + string(input.Type))
	}

	value := strings.TrimSpace(input.Value)
	if err := validateSettingValue(input.Type, value); err != nil {
		return nil, domainerrors.ErrInvalidSetting.WithDetails(err.Error())
	}
	if err := validatePricingSetting(key, value); err != nil {
		return nil, domainerrors.ErrInvalidSetting.WithDetails(err.Error())
	}

	setting := &entity.Setting{
		Key:         key,
		Value:       value,
		Type:        input.Type,
		Description: input.Description,
		UpdatedAt:   s.now(),
	}
	if err := s.settingRepo.UpsertSetting(ctx, setting); err != nil {
		return nil, errors.Wrap(err, "failed to upsert setting")
	}

	s.log(ctx).Info("Setting updated", slog.String("key", key), slog.String("value", value))

	return setting, nil
}

func validateSettingValue(settingType entity.SettingType, value string) error {
	switch settingType {
	case entity.SettingTypeNumber:
		if _, err := decimal.NewFromString(value); err != nil {
			return errors.Errorf("%q is not a number", value)
		}
	case entity.SettingTypeBoolean:
		if _, err := strconv.ParseBool(value); err != nil {
			return errors.Errorf("%q is not a boolean", value)
		}
	case entity.SettingTypeJSON:
		if !json.Valid([]byte(value)) {
			return errors.New("value is not valid JSON")
		}
	case entity.SettingTypeText:
	}

	return nil
}

// validatePricingSetting bounds the keys checkout depends on.
func validatePricingSetting(key, value string) error {
	switch key {
	case constants.SettingTaxRate:
		rate, err := decimal.NewFromString(value)
		if err != nil || !validTaxRate(rate) {
			return errors.Errorf("%s must be a fraction between 0 and 1, got %q", key, value)
		}
	case constants.SettingDeliveryFee:
		fee, err := decimal.NewFromString(value)
		if err != nil || fee.IsNegative() {
			return errors.Errorf("%s must be a non-negative amount, got %q", key, value)
		}
	case constants.SettingMinOrderDays:
		days, err := strconv.Atoi(value)
		if err != nil || days < usecase.DefaultMinOrderDays {
			return errors.Errorf("%s must be a whole number of at least %d, got %q", key, usecase.DefaultMinOrderDays, value)
		}
	}

	return nil
}

// UpdateUserRole changes an account's role.
func (s *orderAdminService) UpdateUserRole(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	if !role.IsValid() {
		return domainerrors.ErrInvalidRole
	}

	if err := s.userRepo.UpdateRole(ctx, userID, role); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update role")
	}

	s.log(ctx).Info("User role updated", slog.Any("userID", userID), slog.String("role", role.String()))

	return nil
}
