package handler

import (
	"log/slog"
	"net/http"

	"aurelise/internal/delivery/api/response"
	"aurelise/internal/domain/entity"
	"aurelise/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler serves order placement and the customer's order history.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler.
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// PlaceOrderRequest is the checkout form.
type PlaceOrderRequest struct {
	DeliveryType         string                  `json:"delivery_type" validate:"required,oneof=PICKUP DELIVERY"`
	DeliveryDate         string                  `json:"delivery_date" validate:"required"`
	DeliveryTime         string                  `json:"delivery_time" validate:"omitempty,max=50"`
	DeliveryAddress      *DeliveryAddressRequest `json:"delivery_address"`
	Customer             CustomerRequest         `json:"customer"`
	SpecialInstructions  string                  `json:"special_instructions" validate:"omitempty,max=1000"`
	AllergenAcknowledged bool                    `json:"allergen_acknowledged"`
}

// DeliveryAddressRequest is where a delivery order goes.
type DeliveryAddressRequest struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	County   string `json:"county"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// CustomerRequest is the contact of the order.
type CustomerRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,max=32"`
}

// PlaceOrder turns the caller's cart into an order.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	owner, err := cartOwner(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PlaceOrderRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	deliveryDate, err := parseDate(req.DeliveryDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.PlaceOrderInput{
		DeliveryType: entity.DeliveryType(req.DeliveryType),
		DeliveryDate: deliveryDate,
		DeliveryTime: req.DeliveryTime,
		Customer: entity.CustomerInfo{
			FirstName: req.Customer.FirstName,
			LastName:  req.Customer.LastName,
			Email:     req.Customer.Email,
			Phone:     req.Customer.Phone,
		},
		SpecialInstructions:  req.SpecialInstructions,
		AllergenAcknowledged: req.AllergenAcknowledged,
	}
	if req.DeliveryAddress != nil {
		input.DeliveryAddress = &entity.DeliveryAddress{
			Street:   req.DeliveryAddress.Street,
			City:     req.DeliveryAddress.City,
			County:   req.DeliveryAddress.County,
			Postcode: req.DeliveryAddress.Postcode,
			Country:  req.DeliveryAddress.Country,
		}
	}

	order, err := h.checkoutUC.PlaceOrder(c.Request().Context(), owner, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, order)
}

// ListOrders lists the account's orders.
func (h *CheckoutHandler) ListOrders(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.checkoutUC.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, orders)
}

// GetOrder returns an owned order.
func (h *CheckoutHandler) GetOrder(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.checkoutUC.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// PickupQR renders the collection QR code of an owned order.
func (h *CheckoutHandler) PickupQR(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.checkoutUC.PickupQR(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}
