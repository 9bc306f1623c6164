package service

import (
	"adminpanel/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QRCodeService defines the interface for the order slip QR codes
type QRCodeService interface {
	// GenerateOrderQR renders a PNG code identifying the order
	GenerateOrderQR(order *entity.Order) ([]byte, error)

	// ParseOrderQR reads a scanned payload back into the order ID
	ParseOrderQR(qrData string) (primitive.ObjectID, error)
}
