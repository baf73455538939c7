package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Response DTOs ───────────────────────────────────────────────────────────

// GroupContribution is one order's share of a product group. Quantity and
// Produced are expressed in the group's normalized unit.
type GroupContribution struct {
	OrderID      uuid.UUID       `json:"orderId"`
	ItemID       uuid.UUID       `json:"productId"`
	CustomerName string          `json:"customerName"`
	Quantity     decimal.Decimal `json:"quantity"`
	Produced     decimal.Decimal `json:"produced"`
}

// ProductGroupResponse aggregates all line items sharing the same
// lowercased name and normalized unit across the filtered orders.
type ProductGroupResponse struct {
	Name          string              `json:"name"`
	Unit          string              `json:"unit"`
	TotalQuantity decimal.Decimal     `json:"totalQuantity"`
	TotalProduced decimal.Decimal     `json:"totalProduced"`
	Remaining     decimal.Decimal     `json:"remaining"`
	Progress      int                 `json:"progress"`
	Completed     bool                `json:"completed"`
	Orders        []GroupContribution `json:"orders"`
}

// BulkUpdateResponse reports how many line items a group mutation touched.
type BulkUpdateResponse struct {
	Updated int `json:"updated"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// GroupSelector identifies a summary group. Unit is the normalized unit,
// so "g" is not accepted: gram items live in their product's kg group.
type GroupSelector struct {
	Day  string `json:"day"  validate:"omitempty,oneof=mercredi jeudi vendredi samedi"`
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Name string `json:"name" validate:"required"`
	Unit string `json:"unit" validate:"required,oneof=kg pièce(s) tranche(s)"`
}

type SetGroupQuantityRequest struct {
	GroupSelector
	Quantity decimal.Decimal `json:"quantity" validate:"min=0"`
}
