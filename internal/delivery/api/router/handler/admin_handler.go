package handler

import (
	"log/slog"

	"aurelise/internal/delivery/api/response"
	"aurelise/internal/domain/entity"
	"aurelise/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	OrderAdminUC usecase.OrderAdminUsecase
	Logger       *slog.Logger
}

// AdminHandler serves the back office: orders, dashboard, customers, settings and roles.
type AdminHandler struct {
	orderAdminUC usecase.OrderAdminUsecase
	logger       *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		orderAdminUC: params.OrderAdminUC,
		logger:       params.Logger,
	}
}

// UpdateStatusRequest moves an order to a new fulfilment status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ScanRequest carries the content of a scanned pickup QR code.
type ScanRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// SettingRequest writes a business setting.
type SettingRequest struct {
	Key         string `json:"key" validate:"required,max=100"`
	Value       string `json:"value"`
	Type        string `json:"type" validate:"omitempty,oneof=TEXT NUMBER BOOLEAN JSON"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// UpdateRoleRequest changes the role of an account.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// ListOrders lists orders, optionally by status and delivery date.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	filter := entity.OrderFilter{
		Status: entity.OrderStatus(c.QueryParam("status")),
		Page:   intQuery(c, "page"),
		Limit:  intQuery(c, "limit"),
	}
	if date := c.QueryParam("date"); date != "" {
		deliveryDate, err := parseDate(date)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		filter.DeliveryDate = &deliveryDate
	}

	page, err := h.orderAdminUC.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, page)
}

// GetOrder returns any order with its items.
func (h *AdminHandler) GetOrder(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderAdminUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// UpdateStatus writes a new fulfilment status.
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateStatusRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderAdminUC.UpdateStatus(c.Request().Context(), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// ScanPickup resolves a pickup QR code.
func (h *AdminHandler) ScanPickup(c echo.Context) error {
	var req ScanRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderAdminUC.ScanPickup(c.Request().Context(), req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// Dashboard returns the trading summary.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.orderAdminUC.Dashboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, stats)
}

// ListCustomers lists customer accounts with their order counts.
func (h *AdminHandler) ListCustomers(c echo.Context) error {
	customers, err := h.orderAdminUC.ListCustomers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, customers)
}

// ListSettings lists business settings.
func (h *AdminHandler) ListSettings(c echo.Context) error {
	settings, err := h.orderAdminUC.ListSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, settings)
}

// UpsertSetting writes a business setting by key.
func (h *AdminHandler) UpsertSetting(c echo.Context) error {
	var req SettingRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	setting, err := h.orderAdminUC.UpsertSetting(c.Request().Context(), &usecase.SettingInput{
		Key:         req.Key,
		Value:       req.Value,
		Type:        entity.SettingType(req.Type),
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, setting)
}

// UpdateUserRole changes the role of an account.
func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateRoleRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.orderAdminUC.UpdateUserRole(c.Request().Context(), userID, entity.Role(req.Role)); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Role updated")
}
