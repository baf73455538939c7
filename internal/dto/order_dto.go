package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LineItemRequest struct {
	Name     string          `json:"name"     validate:"required,min=1,max=120"`
	Quantity decimal.Decimal `json:"quantity" validate:"required,gt=0"`
	Unit     string          `json:"unit"     validate:"required,oneof=kg g pièce(s) tranche(s)"`
	Produced decimal.Decimal `json:"produced" validate:"min=0"`
}

type CreateOrderRequest struct {
	CustomerName  string            `json:"customerName"  validate:"required,min=1,max=120"`
	CustomerPhone string            `json:"customerPhone" validate:"required,min=1,max=30"`
	DeliveryDay   string            `json:"deliveryDay"   validate:"required,oneof=mercredi jeudi vendredi samedi"`
	DeliveryDate  string            `json:"deliveryDate"  validate:"required,datetime=2006-01-02"`
	Notes         string            `json:"notes"`
	Products      []LineItemRequest `json:"products"      validate:"required,min=1,dive"`
}

// UpdateOrderRequest replaces only the fields present. When Products is
// present the whole item list is replaced (delete all, insert all) in a
// single transaction.
type UpdateOrderRequest struct {
	CustomerName  *string           `json:"customerName"  validate:"omitempty,min=1,max=120"`
	CustomerPhone *string           `json:"customerPhone" validate:"omitempty,min=1,max=30"`
	DeliveryDay   *string           `json:"deliveryDay"   validate:"omitempty,oneof=mercredi jeudi vendredi samedi"`
	DeliveryDate  *string           `json:"deliveryDate"  validate:"omitempty,datetime=2006-01-02"`
	Notes         *string           `json:"notes"`
	Products      []LineItemRequest `json:"products"      validate:"omitempty,min=1,dive"`
}

// SetProducedRequest updates the produced counter of a single line item.
// No upper bound: production can exceed the ordered quantity.
type SetProducedRequest struct {
	Produced decimal.Decimal `json:"produced" validate:"min=0"`
}

// OrderFilter narrows order listings and aggregates to one delivery day
// or one concrete delivery date.
type OrderFilter struct {
	Day  string `form:"day"  validate:"omitempty,oneof=mercredi jeudi vendredi samedi"`
	Date string `form:"date" validate:"omitempty,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LineItemResponse struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Produced decimal.Decimal `json:"produced"`
}

type OrderResponse struct {
	ID            uuid.UUID          `json:"id"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	DeliveryDay   string             `json:"deliveryDay"`
	DeliveryDate  string             `json:"deliveryDate"`
	Notes         string             `json:"notes"`
	CreatedAt     time.Time          `json:"createdAt"`
	Products      []LineItemResponse `json:"products"`
}
