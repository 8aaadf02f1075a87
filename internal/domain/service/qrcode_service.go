package service

import (
	"github.com/google/uuid"
)

// PickupCode is the content of an order collection QR code.
type PickupCode struct {
	OrderID     uuid.UUID
	OrderNumber string
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePickupQR renders a PNG QR code identifying the order at collection
	GeneratePickupQR(code PickupCode) ([]byte, error)

	// ParsePickupQR parses scanned QR data back into the pickup code
	ParsePickupQR(qrData string) (*PickupCode, error)
}
