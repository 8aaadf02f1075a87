package qrcode

import (
	"encoding/json"
	"testing"

	"aurelise/config"
	"aurelise/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestNewQRCodeServiceFromConfig(t *testing.T) {
	svc := NewQRCodeServiceFromConfig(&config.Config{})
	assert.Equal(t, defaultSize, svc.(*qrcodeService).size)

	svc = NewQRCodeServiceFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}})
	assert.Equal(t, 128, svc.(*qrcodeService).size)
}

func TestQRCodeService_GeneratePickupQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	qrBytes, err := svc.GeneratePickupQR(service.PickupCode{OrderID: uuid.New(), OrderNumber: "AUR-00042"})
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParsePickupQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	orderID := uuid.New()

	jsonData, err := json.Marshal(PickupData{OrderID: orderID.String(), OrderNumber: "AUR-00042", Type: "pickup"})
	require.NoError(t, err)

	code, err := svc.ParsePickupQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, orderID, code.OrderID)
	assert.Equal(t, "AUR-00042", code.OrderNumber)
}

func TestQRCodeService_ParsePickupQR_Errors(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"invalid json", "invalid json", "failed to unmarshal QR code data"},
		{"wrong type", `{"order_id":"` + uuid.NewString() + `","type":"subscription"}`, "invalid QR code type"},
		{"invalid uuid", `{"order_id":"not-a-uuid","type":"pickup"}`, "failed to parse order ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParsePickupQR(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
