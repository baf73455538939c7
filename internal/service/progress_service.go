package service

import (
	"context"
	"strings"

	"github.com/cedricmorin1/Ordermanagement/internal/dto"
	"github.com/cedricmorin1/Ordermanagement/internal/model"
	"github.com/cedricmorin1/Ordermanagement/internal/repository"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ProgressService computes dashboard aggregates. Everything is pure
// recomputation over the current order snapshot; no aggregate state is
// kept anywhere.
type ProgressService interface {
	Stats(ctx context.Context, filter dto.OrderFilter) (*dto.StatsResponse, error)
}

type progressService struct {
	orders repository.OrderRepository
}

func NewProgressService(orders repository.OrderRepository) ProgressService {
	return &progressService{orders: orders}
}

func (s *progressService) Stats(ctx context.Context, filter dto.OrderFilter) (*dto.StatsResponse, error) {
	day, date, err := parseFilter(filter)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.List(ctx, day, date)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(orders)
	return &stats, nil
}

// ComputeStats aggregates production progress over a set of orders.
func ComputeStats(orders []model.Order) dto.StatsResponse {
	stats := dto.StatsResponse{
		OrderCount:            len(orders),
		TotalRequiredQuantity: decimal.Zero,
		TotalProducedQuantity: decimal.Zero,
	}
	customers := map[string]bool{}
	products := map[string]bool{}

	for _, o := range orders {
		customers[strings.ToLower(o.CustomerName)] = true
		orderComplete := true
		for _, li := range o.Items {
			stats.TotalLineItemCount++
			products[strings.ToLower(li.Name)] = true
			stats.TotalRequiredQuantity = stats.TotalRequiredQuantity.Add(li.Quantity)
			stats.TotalProducedQuantity = stats.TotalProducedQuantity.Add(li.Produced)
			if li.Completed() {
				stats.CompletedLineItemCount++
			} else {
				orderComplete = false
			}
		}
		if orderComplete {
			stats.OrderCompletedCount++
		}
	}

	stats.UniqueCustomerCount = len(customers)
	stats.UniqueProductCount = len(products)
	stats.ProgressPercentage = percentage(stats.TotalProducedQuantity, stats.TotalRequiredQuantity)
	return stats
}

// percentage returns round-half-up(100*produced/required), or 0 when
// nothing is required.
func percentage(produced, required decimal.Decimal) int {
	if required.IsZero() {
		return 0
	}
	return int(produced.Mul(oneHundred).Div(required).Round(0).IntPart())
}
