package usecase

import (
	"context"

	"aurelise/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderPage is one page of the back-office order list.
type OrderPage struct {
	Items      []*entity.Order   `json:"items"`
	Pagination entity.Pagination `json:"pagination"`
}

// SettingInput defines a business setting written from the back office.
type SettingInput struct {
	Key         string
	Value       string
	Type        entity.SettingType
	Description string
}

// OrderAdminUsecase defines the back office: order lifecycle, dashboard, customers, settings and roles.
type OrderAdminUsecase interface {
	ListOrders(ctx context.Context, filter entity.OrderFilter) (*OrderPage, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)
	// UpdateStatus writes a new fulfilment status and announces it.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	// ScanPickup resolves a scanned pickup QR code to its order.
	ScanPickup(ctx context.Context, qrData string) (*entity.Order, error)
	Dashboard(ctx context.Context) (*entity.DashboardStats, error)
	ListCustomers(ctx context.Context) ([]*entity.CustomerSummary, error)
	ListSettings(ctx context.Context) ([]*entity.Setting, error)
	UpsertSetting(ctx context.Context, input *SettingInput) (*entity.Setting, error)
	UpdateUserRole(ctx context.Context, userID uuid.UUID, role entity.Role) error
}
