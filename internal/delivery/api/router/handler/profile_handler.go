package handler

import (
	"log/slog"

	"aurelise/internal/delivery/api/response"
	"aurelise/internal/domain/entity"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the customer's profile, addresses and wishlist.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest edits the profile. Omitted fields are kept.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=32"`
}

// AddressRequest is a saved address.
type AddressRequest struct {
	Street    string `json:"street" validate:"required,max=255"`
	City      string `json:"city" validate:"required,max=100"`
	County    string `json:"county" validate:"omitempty,max=100"`
	Postcode  string `json:"postcode" validate:"required,max=16"`
	Country   string `json:"country" validate:"omitempty,max=100"`
	Type      string `json:"type" validate:"omitempty,oneof=HOME WORK OTHER"`
	IsDefault bool   `json:"is_default"`
}

// WishlistRequest saves a product.
type WishlistRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

// GetProfile returns the signed-in account.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user)
}

// UpdateProfile edits names and phone.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user)
}

// ListAddresses returns the saved addresses.
func (h *ProfileHandler) ListAddresses(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	addresses, err := h.profileUC.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, addresses)
}

// CreateAddress saves a new address.
func (h *ProfileHandler) CreateAddress(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddressRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.profileUC.CreateAddress(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, address)
}

// UpdateAddress rewrites an owned address.
func (h *ProfileHandler) UpdateAddress(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	addressID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddressRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.profileUC.UpdateAddress(c.Request().Context(), userID, addressID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, address)
}

// DeleteAddress removes an owned address.
func (h *ProfileHandler) DeleteAddress(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	addressID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.profileUC.DeleteAddress(c.Request().Context(), userID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Address deleted")
}

// GetWishlist returns the saved products.
func (h *ProfileHandler) GetWishlist(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items, err := h.profileUC.GetWishlist(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, items)
}

// AddToWishlist saves a product.
func (h *ProfileHandler) AddToWishlist(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req WishlistRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.profileUC.AddToWishlist(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, item)
}

// RemoveFromWishlist forgets a saved product.
func (h *ProfileHandler) RemoveFromWishlist(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	productID, err := uuidParam(c, "productId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.profileUC.RemoveFromWishlist(c.Request().Context(), userID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Removed from wishlist")
}

func (r *AddressRequest) toInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		Street:    r.Street,
		City:      r.City,
		County:    r.County,
		Postcode:  r.Postcode,
		Country:   r.Country,
		Type:      entity.AddressType(r.Type),
		IsDefault: r.IsDefault,
	}
}
