package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the server-authoritative order state.
type OrderStatus string

const (
	OrderStatusNotContacted OrderStatus = "not_contacted"
	OrderStatusInProcess    OrderStatus = "in_process"
	OrderStatusDelivered    OrderStatus = "delivered"
	OrderStatusCancelled    OrderStatus = "cancelled"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusNotContacted: "Not contacted",
	OrderStatusInProcess:    "In process",
	OrderStatusDelivered:    "Delivered",
	OrderStatusCancelled:    "Cancelled",
}

// OrderStatuses returns every status in display order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusNotContacted,
		OrderStatusInProcess,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusLabels[s]

	return ok
}

// Label returns a human readable name, falling back to the raw value.
func (s OrderStatus) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}

	return string(s)
}

// Customer is the snapshot of the buyer taken when the order was placed.
type Customer struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// OrderItem is one line of an order. TotalPrice is computed by the server.
type OrderItem struct {
	Title      string          `json:"title"`
	Size       string          `json:"size"`
	Color      string          `json:"color"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type Order struct {
	ID            primitive.ObjectID `json:"_id"`
	OrderNumber   string             `json:"orderNumber"`
	Customer      Customer           `json:"customer"`
	Items         []OrderItem        `json:"items"`
	Status        OrderStatus        `json:"status"`
	InternalNotes string             `json:"internalNotes"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// Total sums the line totals.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.TotalPrice)
	}

	return total
}

// ItemCount returns the number of order lines.
func (o *Order) ItemCount() int {
	return len(o.Items)
}
