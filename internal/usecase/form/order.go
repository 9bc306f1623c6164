package form

import (
	"adminpanel/internal/domain/entity"
	"adminpanel/internal/domain/service"
)

// OrderStatus moves an order to another status with optional notes.
type OrderStatus struct {
	Status        string `form:"status" json:"status" validate:"required,oneof=not_contacted in_process delivered cancelled"`
	InternalNotes string `form:"internalNotes" json:"internalNotes"`
}

// OrderStatusFrom prefills the form with the order's current values.
func OrderStatusFrom(o *entity.Order) OrderStatus {
	return OrderStatus{Status: o.Status.String(), InternalNotes: o.InternalNotes}
}

func (f *OrderStatus) Normalize() {
	trim(&f.Status, &f.InternalNotes)
}

func (f *OrderStatus) ToRequest() service.OrderStatusRequest {
	return service.OrderStatusRequest{
		Status:        entity.OrderStatus(f.Status),
		InternalNotes: f.InternalNotes,
	}
}

// CancelOrder cancels an order; the reason is mandatory.
type CancelOrder struct {
	Reason string `form:"reason" json:"reason" validate:"required"`
}

func (f *CancelOrder) Normalize() {
	trim(&f.Reason)
}
