package qrcode

import (
	"encoding/json"
	"strings"

	"adminpanel/config"
	"adminpanel/internal/domain/entity"
	"adminpanel/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const orderQRType = "order"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData is the payload printed on an order slip
type QRCodeData struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number,omitempty"`
	Type        string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(cfg.Console.QRCode.ErrorCorrection) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 cfg.Console.QRCode.Size,
		errorCorrectionLevel: level,
	}
}

// GenerateOrderQR generates the PNG printed on the order slip
func (s *qrcodeService) GenerateOrderQR(order *entity.Order) ([]byte, error) {
	if order == nil || order.ID.IsZero() {
		return nil, errors.New("order has no ID")
	}

	jsonData, err := json.Marshal(QRCodeData{
		OrderID:     order.ID.Hex(),
		OrderNumber: order.OrderNumber,
		Type:        orderQRType,
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

// ParseOrderQR parses a scanned slip and returns the order ID
func (s *qrcodeService) ParseOrderQR(qrData string) (primitive.ObjectID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(strings.TrimSpace(qrData)), &data); err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != orderQRType {
		return primitive.NilObjectID, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	orderID, err := primitive.ObjectIDFromHex(data.OrderID)
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "failed to parse order ID")
	}

	return orderID, nil
}
