package qrcode

import (
	"bytes"
	"encoding/json"
	"image/png"
	"testing"

	"adminpanel/config"
	"adminpanel/internal/domain/entity"
	"adminpanel/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newService(size int, level string) service.QRCodeService {
	cfg := &config.Config{}
	cfg.Console.QRCode.Size = size
	cfg.Console.QRCode.ErrorCorrection = level

	return NewQRCodeService(cfg)
}

func testOrder() *entity.Order {
	id, _ := primitive.ObjectIDFromHex("65f1c2a9e4b0a1b2c3d4e5f7")

	return &entity.Order{ID: id, OrderNumber: "ORD-7"}
}

func TestNewQRCodeService_Levels(t *testing.T) {
	for _, level := range []string{"L", "M", "Q", "H", "h", "invalid", ""} {
		t.Run(level, func(t *testing.T) {
			svc := newService(128, level)
			qrBytes, err := svc.GenerateOrderQR(testOrder())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateOrderQR_Sizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qrBytes, err := newService(tt.size, "M").GenerateOrderQR(testOrder())
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_GenerateOrderQR_ZeroID(t *testing.T) {
	_, err := newService(256, "M").GenerateOrderQR(&entity.Order{OrderNumber: "ORD-1"})
	require.Error(t, err)

	_, err = newService(256, "M").GenerateOrderQR(nil)
	require.Error(t, err)
}

func TestQRCodeService_ParseOrderQR(t *testing.T) {
	svc := newService(256, "M")
	order := testOrder()

	jsonData, err := json.Marshal(QRCodeData{OrderID: order.ID.Hex(), OrderNumber: order.OrderNumber, Type: "order"})
	require.NoError(t, err)

	parsedID, err := svc.ParseOrderQR(" " + string(jsonData) + "\n")
	require.NoError(t, err)
	assert.Equal(t, order.ID, parsedID)
}

func TestQRCodeService_ParseOrderQR_Invalid(t *testing.T) {
	svc := newService(256, "M")

	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{name: "plain search term", payload: "ORD-7", wantErr: "failed to unmarshal QR code data"},
		{name: "foreign type", payload: `{"order_id":"65f1c2a9e4b0a1b2c3d4e5f7","type":"subscription"}`, wantErr: "invalid QR code type"},
		{name: "bad order id", payload: `{"order_id":"nope","type":"order"}`, wantErr: "failed to parse order ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseOrderQR(tt.payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
