// Package entity contains the core business objects of the storefront.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DevicePlatform is the client platform a push token was issued for.
type DevicePlatform string

const (
	DevicePlatformIOS     DevicePlatform = "ios"
	DevicePlatformAndroid DevicePlatform = "android"
	DevicePlatformWeb     DevicePlatform = "web"
)

// IsValid checks if the DevicePlatform is a valid value.
func (p DevicePlatform) IsValid() bool {
	switch p {
	case DevicePlatformIOS, DevicePlatformAndroid, DevicePlatformWeb:
		return true
	default:
		return false
	}
}

// UserDevice is a customer's device registered for order push notifications.
type UserDevice struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	FCMToken  string         `json:"fcm_token"` // Firebase Cloud Messaging registration token.
	DeviceID  string         `json:"device_id"` // Client-side device identifier.
	Platform  DevicePlatform `json:"platform"`
	IsActive  bool           `json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
