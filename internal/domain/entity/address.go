// Package entity contains the core business objects of the storefront.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AddressType labels a saved address.
type AddressType string

const (
	AddressTypeHome  AddressType = "HOME"
	AddressTypeWork  AddressType = "WORK"
	AddressTypeOther AddressType = "OTHER"
)

// IsValid checks if the AddressType is a valid value.
func (t AddressType) IsValid() bool {
	switch t {
	case AddressTypeHome, AddressTypeWork, AddressTypeOther:
		return true
	default:
		return false
	}
}

// Address is a saved delivery address of a customer. At most one per user is the default.
type Address struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Street    string      `json:"street"`
	City      string      `json:"city"`
	County    string      `json:"county"`
	Postcode  string      `json:"postcode"`
	Country   string      `json:"country"`
	Type      AddressType `json:"type"`
	IsDefault bool        `json:"is_default"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
