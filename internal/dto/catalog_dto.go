package dto

import (
	"time"

	"github.com/google/uuid"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCatalogProductRequest struct {
	Name        string `json:"name"        validate:"required,min=1,max=120"`
	DefaultUnit string `json:"defaultUnit" validate:"required,oneof=kg g pièce(s) tranche(s)"`
}

// UpdateCatalogProductRequest is a full replacement: the admin screen always
// sends both fields, matching the PUT semantics of the API.
type UpdateCatalogProductRequest struct {
	Name        string `json:"name"        validate:"required,min=1,max=120"`
	DefaultUnit string `json:"defaultUnit" validate:"required,oneof=kg g pièce(s) tranche(s)"`
}

// ImportCatalogRequest carries a raw delimited blob of "name,unit" rows.
// The first line is treated as a header and skipped.
type ImportCatalogRequest struct {
	Data string `json:"data" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CatalogProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DefaultUnit string    `json:"defaultUnit"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ImportCatalogResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
