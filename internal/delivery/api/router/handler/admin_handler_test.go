package handler

import (
	"net/http"
	"testing"
	"time"

	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	mockUC "aurelise/internal/mocks/usecase"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminHandler(t *testing.T) (*AdminHandler, *mockUC.MockOrderAdminUsecase) {
	orderAdminUC := mockUC.NewMockOrderAdminUsecase(t)

	return NewAdminHandler(AdminHandlerParams{OrderAdminUC: orderAdminUC, Logger: newDiscardLogger()}), orderAdminUC
}

func TestAdminHandler_ListOrders_Filters(t *testing.T) {
	h, orderAdminUC := newAdminHandler(t)
	c, rec := newContext(http.MethodGet, "/admin/orders?status=READY&date=2026-05-09&page=2&limit=50", "")

	day := time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC)
	orderAdminUC.EXPECT().
		ListOrders(mock.Anything, entity.OrderFilter{Status: entity.OrderStatusReady, DeliveryDate: &day, Page: 2, Limit: 50}).
		Return(&usecase.OrderPage{
			Items:      []*entity.Order{{ID: uuid.New(), OrderNumber: "AUR1"}},
			Pagination: entity.Pagination{Page: 2, Limit: 50, Total: 51, TotalPages: 2},
		}, nil).
		Once()

	require.NoError(t, h.ListOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var page usecase.OrderPage
	decodeData(t, rec, &page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, entity.Pagination{Page: 2, Limit: 50, Total: 51, TotalPages: 2}, page.Pagination)
}

func TestAdminHandler_ListOrders_BadDate(t *testing.T) {
	h, _ := newAdminHandler(t)
	c, rec := newContext(http.MethodGet, "/admin/orders?date=09/05/2026", "")

	require.NoError(t, h.ListOrders(c))
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestAdminHandler_UpdateStatus(t *testing.T) {
	orderID := uuid.New()

	tests := []struct {
		name   string
		ucErr  error
		status int
		code   string
	}{
		{name: "written", status: http.StatusOK},
		{name: "transition refused", ucErr: domainerrors.ErrStatusTransitionNotAllowed, status: http.StatusConflict, code: domainerrors.ErrStatusTransitionNotAllowed.ErrorCode()},
		{name: "not an order status", ucErr: domainerrors.ErrInvalidOrderStatus, status: http.StatusBadRequest, code: domainerrors.ErrInvalidOrderStatus.ErrorCode()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, orderAdminUC := newAdminHandler(t)
			c, rec := newContext(http.MethodPut, "/admin/orders/"+orderID.String()+"/status", `{"status":"PREPARING"}`)
			withParams(c, "id", orderID.String())

			call := orderAdminUC.EXPECT().UpdateStatus(mock.Anything, orderID, entity.OrderStatusPreparing).Once()
			if tt.ucErr != nil {
				call.Return(nil, tt.ucErr)
			} else {
				call.Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPreparing}, nil)
			}

			require.NoError(t, h.UpdateStatus(c))
			if tt.code == "" {
				assert.Equal(t, tt.status, rec.Code)

				return
			}
			requireErrorCode(t, rec, tt.status, tt.code)
		})
	}
}

func TestAdminHandler_UpsertSetting(t *testing.T) {
	h, orderAdminUC := newAdminHandler(t)
	c, rec := newContext(http.MethodPut, "/admin/settings", `{"key":"delivery_fee","value":"6.50","type":"NUMBER"}`)

	orderAdminUC.EXPECT().
		UpsertSetting(mock.Anything, &usecase.SettingInput{Key: "delivery_fee", Value: "6.50", Type: entity.SettingTypeNumber}).
		Return(&entity.Setting{Key: "delivery_fee", Value: "6.50", Type: entity.SettingTypeNumber}, nil).
		Once()

	require.NoError(t, h.UpsertSetting(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminHandler_UpsertSetting_UnknownType(t *testing.T) {
	h, _ := newAdminHandler(t)
	c, rec := newContext(http.MethodPut, "/admin/settings", `{"key":"x","value":"1","type":"FLOAT"}`)

	require.NoError(t, h.UpsertSetting(c))
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestAdminHandler_ScanPickup(t *testing.T) {
	h, orderAdminUC := newAdminHandler(t)
	c, rec := newContext(http.MethodPost, "/admin/orders/scan", `{"qr_data":"garbage"}`)

	orderAdminUC.EXPECT().ScanPickup(mock.Anything, "garbage").Return(nil, domainerrors.ErrInvalidQRCode).Once()

	require.NoError(t, h.ScanPickup(c))
	requireErrorCode(t, rec, domainerrors.ErrInvalidQRCode.HTTPCode(), domainerrors.ErrInvalidQRCode.ErrorCode())
}

func TestAdminHandler_UpdateUserRole(t *testing.T) {
	h, orderAdminUC := newAdminHandler(t)
	userID := uuid.New()
	c, rec := newContext(http.MethodPut, "/admin/users/"+userID.String()+"/role", `{"role":"ADMIN"}`)
	withParams(c, "id", userID.String())

	orderAdminUC.EXPECT().UpdateUserRole(mock.Anything, userID, entity.RoleAdmin).Return(nil).Once()

	require.NoError(t, h.UpdateUserRole(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
