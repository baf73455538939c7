package model

import (
	"time"

	"github.com/google/uuid"
)

// CatalogProduct is a sellable product managed from the admin screen.
// Orders copy its name and unit at creation time, so deleting a catalog
// entry never touches existing orders.
type CatalogProduct struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"uniqueIndex;not null"`
	DefaultUnit string    `gorm:"not null;default:'kg'"`
	CreatedAt   time.Time
}

func (CatalogProduct) TableName() string { return "catalog_products" }
