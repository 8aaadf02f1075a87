package handler

import (
	"net/http"
	"testing"

	"aurelise/internal/domain/constants"
	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	mockUC "aurelise/internal/mocks/usecase"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSession = "sess_Ab12Cd34Ef56"

func newCartHandler(t *testing.T) (*CartHandler, *mockUC.MockCartUsecase) {
	cartUC := mockUC.NewMockCartUsecase(t)

	return NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: newDiscardLogger()}), cartUC
}

func TestCartHandler_GetCart_GuestSession(t *testing.T) {
	h, cartUC := newCartHandler(t)
	c, rec := newContext(http.MethodGet, "/api/v1/cart", "")
	c.Request().Header.Set(constants.HeaderCartSession, testSession)

	cart := &entity.Cart{
		ID: uuid.New(),
		Items: []*entity.CartItem{
			{ID: uuid.New(), ProductName: "Croissant", Size: "single", Quantity: 2, UnitPrice: decimal.RequireFromString("4.50")},
			{ID: uuid.New(), ProductName: "Pain au chocolat", Size: "single", Quantity: 1, UnitPrice: decimal.RequireFromString("3.25")},
		},
	}
	cartUC.EXPECT().GetCart(mock.Anything, entity.CartOwner{SessionID: testSession}).Return(cart, nil).Once()

	require.NoError(t, h.GetCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body CartResponse
	decodeData(t, rec, &body)
	require.Len(t, body.Items, 2)
	assert.True(t, body.Items[0].LineTotal.Equal(decimal.RequireFromString("9.00")))
	assert.True(t, body.Subtotal.Equal(decimal.RequireFromString("12.25")))
	assert.Equal(t, 3, body.ItemCount)
}

func TestCartHandler_GetCart_SignedInWinsOverSession(t *testing.T) {
	h, cartUC := newCartHandler(t)
	c, rec := newContext(http.MethodGet, "/api/v1/cart", "")
	c.Request().Header.Set(constants.HeaderCartSession, testSession)
	userID := signIn(c)

	cartUC.EXPECT().GetCart(mock.Anything, entity.CartOwner{UserID: &userID}).Return(&entity.Cart{}, nil).Once()

	require.NoError(t, h.GetCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body CartResponse
	decodeData(t, rec, &body)
	assert.Empty(t, body.Items)
	assert.Nil(t, body.ID)
}

func TestCartHandler_MissingIdentity(t *testing.T) {
	tests := []struct {
		name    string
		session string
	}{
		{name: "no header", session: ""},
		{name: "malformed header", session: "sess_short"},
		{name: "wrong prefix", session: "cart_Ab12Cd34Ef56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newCartHandler(t)
			c, rec := newContext(http.MethodGet, "/api/v1/cart", "")
			if tt.session != "" {
				c.Request().Header.Set(constants.HeaderCartSession, tt.session)
			}

			require.NoError(t, h.GetCart(c))
			requireErrorCode(t, rec, http.StatusBadRequest, "CART_IDENTITY_MISSING")
		})
	}
}

func TestCartHandler_AddItem_DefaultsQuantity(t *testing.T) {
	h, cartUC := newCartHandler(t)
	productID := uuid.New()
	c, rec := newContext(http.MethodPost, "/api/v1/cart/items", `{"product_id":"`+productID.String()+`","size":"6 inch"}`)
	c.Request().Header.Set(constants.HeaderCartSession, testSession)

	cartUC.EXPECT().
		AddItem(mock.Anything, entity.CartOwner{SessionID: testSession}, usecase.AddCartItemInput{ProductID: productID, Size: "6 inch", Quantity: 1}).
		Return(&entity.Cart{ID: uuid.New()}, nil).
		Once()

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_AddItem_SizeUnavailable(t *testing.T) {
	h, cartUC := newCartHandler(t)
	c, rec := newContext(http.MethodPost, "/api/v1/cart/items", `{"product_id":"`+uuid.NewString()+`","size":"large","quantity":2}`)
	signIn(c)

	cartUC.EXPECT().AddItem(mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrSizeUnavailable).Once()

	require.NoError(t, h.AddItem(c))
	requireErrorCode(t, rec, http.StatusUnprocessableEntity, domainerrors.ErrSizeUnavailable.ErrorCode())
}

func TestCartHandler_AddItem_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{name: "missing size", body: `{"product_id":"` + uuid.NewString() + `"}`, code: "VALIDATION_FAILED"},
		{name: "zero quantity", body: `{"product_id":"` + uuid.NewString() + `","size":"s","quantity":0}`, code: "VALIDATION_FAILED"},
		{name: "bad json", body: `{"product_id":`, code: "INVALID_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newCartHandler(t)
			c, rec := newContext(http.MethodPost, "/api/v1/cart/items", tt.body)
			signIn(c)

			require.NoError(t, h.AddItem(c))
			requireErrorCode(t, rec, http.StatusBadRequest, tt.code)
		})
	}
}

func TestCartHandler_UpdateItem(t *testing.T) {
	h, cartUC := newCartHandler(t)
	itemID := uuid.New()
	c, rec := newContext(http.MethodPut, "/api/v1/cart/items/"+itemID.String(), `{"quantity":0}`)
	withParams(c, "id", itemID.String())
	userID := signIn(c)

	cartUC.EXPECT().UpdateItem(mock.Anything, entity.CartOwner{UserID: &userID}, itemID, 0).Return(&entity.Cart{}, nil).Once()

	require.NoError(t, h.UpdateItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_RemoveItem_InvalidID(t *testing.T) {
	h, _ := newCartHandler(t)
	c, rec := newContext(http.MethodDelete, "/api/v1/cart/items/nope", "")
	withParams(c, "id", "nope")
	signIn(c)

	require.NoError(t, h.RemoveItem(c))
	requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_ID")
}

func TestCartHandler_MergeCarts(t *testing.T) {
	t.Run("merges the session cart", func(t *testing.T) {
		h, cartUC := newCartHandler(t)
		c, rec := newContext(http.MethodPost, "/api/v1/cart/merge", "")
		c.Request().Header.Set(constants.HeaderCartSession, testSession)
		userID := signIn(c)

		cartUC.EXPECT().MergeCarts(mock.Anything, userID, testSession).Return(&entity.Cart{}, nil).Once()

		require.NoError(t, h.MergeCarts(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("requires a session header", func(t *testing.T) {
		h, _ := newCartHandler(t)
		c, rec := newContext(http.MethodPost, "/api/v1/cart/merge", "")
		signIn(c)

		require.NoError(t, h.MergeCarts(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "CART_IDENTITY_MISSING")
	})
}

func TestCartHandler_NewSession(t *testing.T) {
	h, cartUC := newCartHandler(t)
	c, rec := newContext(http.MethodPost, "/api/v1/cart/session", "")

	cartUC.EXPECT().NewSession(mock.Anything).Return(testSession, nil).Once()

	require.NoError(t, h.NewSession(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]string
	decodeData(t, rec, &body)
	assert.Equal(t, testSession, body["session_id"])
}
