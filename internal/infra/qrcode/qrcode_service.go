// Package qrcode renders and reads order pickup QR codes.
package qrcode

import (
	"encoding/json"

	"aurelise/config"
	"aurelise/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	pickupType  = "pickup"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PickupData is the JSON payload encoded in a pickup QR code.
type PickupData struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Type        string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig reads size and recovery level from the qrcode section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GeneratePickupQR generates a PNG QR code for order collection
func (s *qrcodeService) GeneratePickupQR(code service.PickupCode) ([]byte, error) {
	jsonData, err := json.Marshal(PickupData{
		OrderID:     code.OrderID.String(),
		OrderNumber: code.OrderNumber,
		Type:        pickupType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePickupQR parses scanned QR data back into a pickup code
func (s *qrcodeService) ParsePickupQR(qrData string) (*service.PickupCode, error) {
	var data PickupData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != pickupType {
		return nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse order ID")
	}

	return &service.PickupCode{OrderID: orderID, OrderNumber: data.OrderNumber}, nil
}
