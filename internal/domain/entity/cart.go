// Package entity contains the core business objects of the storefront.
package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var sessionIDPattern = regexp.MustCompile(`^sess_[A-Za-z0-9]{8,64}$`)

// IsValidSessionID reports whether s looks like a guest cart session token.
func IsValidSessionID(s string) bool {
	return sessionIDPattern.MatchString(s)
}

// CartOwner identifies whose cart is addressed: an account, or a guest session token.
// Exactly one of the two is set.
type CartOwner struct {
	UserID    *uuid.UUID
	SessionID string
}

// IsUser reports whether the owner is an authenticated account.
func (o CartOwner) IsUser() bool {
	return o.UserID != nil
}

// IsZero reports whether no identity is known.
func (o CartOwner) IsZero() bool {
	return o.UserID == nil && o.SessionID == ""
}

// Cart holds pending purchase selections. At most one cart exists per account or per session.
type Cart struct {
	ID        uuid.UUID   `json:"id"`
	UserID    *uuid.UUID  `json:"user_id,omitempty"`
	SessionID *string     `json:"session_id,omitempty"`
	Items     []*CartItem `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// CartItem is a quantity of one product size with the unit price captured when added.
type CartItem struct {
	ID          uuid.UUID       `json:"id"`
	CartID      uuid.UUID       `json:"cart_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	ProductSlug string          `json:"product_slug,omitempty"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// LineTotal is unit price times quantity.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Subtotal sums every line total.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	if c == nil {
		return total
	}
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}

	return total
}

// ItemCount sums quantities across lines.
func (c *Cart) ItemCount() int {
	if c == nil {
		return 0
	}
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}
