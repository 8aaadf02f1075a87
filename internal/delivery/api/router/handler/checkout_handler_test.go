package handler

import (
	"net/http"
	"testing"
	"time"

	"aurelise/internal/domain/constants"
	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	mockUC "aurelise/internal/mocks/usecase"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const deliveryOrderBody = `{
	"delivery_type": "DELIVERY",
	"delivery_date": "2026-05-09",
	"delivery_time": "10:00-12:00",
	"delivery_address": {"street": "12 Rue Cler", "city": "London", "postcode": "SW1A 1AA"},
	"customer": {"first_name": "Claire", "last_name": "Dubois", "email": "claire@example.com", "phone": "07700900123"},
	"special_instructions": "Ring twice",
	"allergen_acknowledged": true
}`

func newCheckoutHandler(t *testing.T) (*CheckoutHandler, *mockUC.MockCheckoutUsecase) {
	checkoutUC := mockUC.NewMockCheckoutUsecase(t)

	return NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkoutUC, Logger: newDiscardLogger()}), checkoutUC
}

func TestCheckoutHandler_PlaceOrder_Guest(t *testing.T) {
	h, checkoutUC := newCheckoutHandler(t)
	c, rec := newContext(http.MethodPost, "/api/v1/orders", deliveryOrderBody)
	c.Request().Header.Set(constants.HeaderCartSession, testSession)

	orderID := uuid.New()
	checkoutUC.EXPECT().
		PlaceOrder(mock.Anything, entity.CartOwner{SessionID: testSession}, mock.MatchedBy(func(input *usecase.PlaceOrderInput) bool {
			return input.DeliveryType == entity.DeliveryTypeDelivery &&
				input.DeliveryDate.Equal(time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC)) &&
				input.DeliveryTime == "10:00-12:00" &&
				input.DeliveryAddress != nil && input.DeliveryAddress.Postcode == "SW1A 1AA" &&
				input.Customer.Email == "claire@example.com" &&
				input.SpecialInstructions == "Ring twice" &&
				input.AllergenAcknowledged
		})).
		Return(&entity.Order{ID: orderID, OrderNumber: "AUR1001", Status: entity.OrderStatusPending}, nil).
		Once()

	require.NoError(t, h.PlaceOrder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var order entity.Order
	decodeData(t, rec, &order)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, "AUR1001", order.OrderNumber)
}

func TestCheckoutHandler_PlaceOrder_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		ucErr  error
		status int
		code   string
	}{
		{
			name:   "unknown delivery type",
			body:   `{"delivery_type":"DRONE","delivery_date":"2026-05-09","customer":{"first_name":"A","last_name":"B","email":"a@b.co","phone":"1"}}`,
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
		{
			name:   "unparseable date",
			body:   `{"delivery_type":"PICKUP","delivery_date":"next friday","customer":{"first_name":"A","last_name":"B","email":"a@b.co","phone":"1"}}`,
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
		{
			name:   "lead time from the use case",
			body:   `{"delivery_type":"PICKUP","delivery_date":"2026-05-05","customer":{"first_name":"A","last_name":"B","email":"a@b.co","phone":"1"},"allergen_acknowledged":true}`,
			ucErr:  domainerrors.ErrLeadTimeTooShort,
			status: http.StatusBadRequest,
			code:   domainerrors.ErrLeadTimeTooShort.ErrorCode(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, checkoutUC := newCheckoutHandler(t)
			c, rec := newContext(http.MethodPost, "/api/v1/orders", tt.body)
			signIn(c)

			if tt.ucErr != nil {
				checkoutUC.EXPECT().PlaceOrder(mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.ucErr).Once()
			}

			require.NoError(t, h.PlaceOrder(c))
			requireErrorCode(t, rec, tt.status, tt.code)
		})
	}
}

func TestCheckoutHandler_GetOrder_NotOwned(t *testing.T) {
	h, checkoutUC := newCheckoutHandler(t)
	orderID := uuid.New()
	c, rec := newContext(http.MethodGet, "/api/v1/orders/"+orderID.String(), "")
	withParams(c, "id", orderID.String())
	userID := signIn(c)

	checkoutUC.EXPECT().GetOrder(mock.Anything, userID, orderID).Return(nil, domainerrors.ErrOrderNotFound).Once()

	require.NoError(t, h.GetOrder(c))
	requireErrorCode(t, rec, http.StatusNotFound, domainerrors.ErrOrderNotFound.ErrorCode())
}

func TestCheckoutHandler_ListOrders_RequiresUser(t *testing.T) {
	h, _ := newCheckoutHandler(t)
	c, rec := newContext(http.MethodGet, "/api/v1/orders", "")

	require.NoError(t, h.ListOrders(c))
	requireErrorCode(t, rec, http.StatusUnauthorized, "UNAUTHORIZED")
}

func TestCheckoutHandler_PickupQR(t *testing.T) {
	h, checkoutUC := newCheckoutHandler(t)
	orderID := uuid.New()
	c, rec := newContext(http.MethodGet, "/api/v1/orders/"+orderID.String()+"/pickup-qr", "")
	withParams(c, "id", orderID.String())
	userID := signIn(c)

	png := []byte("\x89PNG\r\n\x1a\n")
	checkoutUC.EXPECT().PickupQR(mock.Anything, userID, orderID).Return(png, nil).Once()

	require.NoError(t, h.PickupQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}
