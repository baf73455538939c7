package dto

import "github.com/shopspring/decimal"

// StatsResponse is the production dashboard snapshot, recomputed from the
// current orders on every request.
type StatsResponse struct {
	OrderCount             int             `json:"orderCount"`
	OrderCompletedCount    int             `json:"orderCompletedCount"`
	TotalLineItemCount     int             `json:"totalProductsCount"`
	CompletedLineItemCount int             `json:"completedProductsCount"`
	TotalRequiredQuantity  decimal.Decimal `json:"totalRequiredQuantity"`
	TotalProducedQuantity  decimal.Decimal `json:"totalProducedQuantity"`
	ProgressPercentage     int             `json:"progressPercentage"`
	UniqueCustomerCount    int             `json:"totalCustomers"`
	UniqueProductCount     int             `json:"uniqueProductsCount"`
}
