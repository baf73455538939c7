package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Units of measure accepted on line items. UnitGram quantities are
// converted to UnitKilogram when grouped in the production summary.
const (
	UnitKilogram = "kg"
	UnitGram     = "g"
	UnitPiece    = "pièce(s)"
	UnitSlice    = "tranche(s)"
)

// Delivery days the shop actually opens for pickup.
const (
	DayMercredi = "mercredi"
	DayJeudi    = "jeudi"
	DayVendredi = "vendredi"
	DaySamedi   = "samedi"
)

// Order is a customer order for a given delivery day. It owns its line
// items exclusively: replacing the item list deletes the old rows and
// inserts the new ones.
type Order struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerName  string    `gorm:"not null"`
	CustomerPhone string    `gorm:"not null"`
	DeliveryDay   string    `gorm:"not null;index"`
	DeliveryDate  time.Time `gorm:"type:date;not null;index"`
	Notes         string
	CreatedAt     time.Time

	Items []LineItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string { return "orders" }

// LineItem is one product entry within an order. Name and Unit are
// denormalized copies taken at order time; Produced accumulates the
// quantity made so far and may legally exceed Quantity.
type LineItem struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name     string          `gorm:"not null"`
	Quantity decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	Unit     string          `gorm:"not null"`
	Produced decimal.Decimal `gorm:"type:decimal(10,3);not null;default:0"`
	// Position preserves the order items were entered in. Summary bulk
	// allocation walks contributions in this order.
	Position int `gorm:"not null;default:0"`
}

func (LineItem) TableName() string { return "line_items" }

// Completed reports whether the item has been fully produced.
// Produced == Quantity counts as complete.
func (li LineItem) Completed() bool {
	return li.Produced.GreaterThanOrEqual(li.Quantity)
}
