package service

import (
	"context"
	"errors"
	"time"

	"github.com/cedricmorin1/Ordermanagement/internal/dto"
	"github.com/cedricmorin1/Ordermanagement/internal/model"
	"github.com/cedricmorin1/Ordermanagement/internal/repository"
	"github.com/cedricmorin1/Ordermanagement/internal/schedule"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService defines business operations for customer orders.
type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	List(ctx context.Context, filter dto.OrderFilter) ([]dto.OrderResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrderRequest) (*dto.OrderResponse, error)
	// SetProduced writes one line item's produced counter. Produced may
	// exceed the ordered quantity; only negatives are rejected upstream.
	SetProduced(ctx context.Context, orderID, itemID uuid.UUID, produced decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func mapLineItem(li model.LineItem) dto.LineItemResponse {
	return dto.LineItemResponse{
		ID:       li.ID,
		Name:     li.Name,
		Quantity: li.Quantity,
		Unit:     li.Unit,
		Produced: li.Produced,
	}
}

func mapOrder(o model.Order) dto.OrderResponse {
	items := make([]dto.LineItemResponse, 0, len(o.Items))
	for _, li := range o.Items {
		items = append(items, mapLineItem(li))
	}
	return dto.OrderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		DeliveryDay:   o.DeliveryDay,
		DeliveryDate:  o.DeliveryDate.Format(schedule.DateLayout),
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		Products:      items,
	}
}

func buildItems(reqs []dto.LineItemRequest) []model.LineItem {
	items := make([]model.LineItem, 0, len(reqs))
	for _, p := range reqs {
		items = append(items, model.LineItem{
			Name:     p.Name,
			Quantity: p.Quantity,
			Unit:     p.Unit,
			Produced: p.Produced,
		})
	}
	return items
}

// parseFilter converts the wire filter into repository arguments. The
// date string is pre-validated by the datetime tag.
func parseFilter(filter dto.OrderFilter) (string, *time.Time, error) {
	if filter.Date == "" {
		return filter.Day, nil, nil
	}
	date, err := time.Parse(schedule.DateLayout, filter.Date)
	if err != nil {
		return "", nil, Invalid("Date invalide")
	}
	return filter.Day, &date, nil
}

func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	deliveryDate, err := time.Parse(schedule.DateLayout, req.DeliveryDate)
	if err != nil {
		return nil, Invalid("Date de livraison invalide")
	}

	o := &model.Order{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		DeliveryDay:   req.DeliveryDay,
		DeliveryDate:  deliveryDate,
		Notes:         req.Notes,
		Items:         buildItems(req.Products),
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	resp := mapOrder(*o)
	return &resp, nil
}

func (s *orderService) List(ctx context.Context, filter dto.OrderFilter) ([]dto.OrderResponse, error) {
	day, date, err := parseFilter(filter)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.List(ctx, day, date)
	if err != nil {
		return nil, err
	}
	result := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, mapOrder(o))
	}
	return result, nil
}

func (s *orderService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Commande non trouvée")
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.CustomerName != nil {
		fields["customer_name"] = *req.CustomerName
	}
	if req.CustomerPhone != nil {
		fields["customer_phone"] = *req.CustomerPhone
	}
	if req.DeliveryDay != nil {
		fields["delivery_day"] = *req.DeliveryDay
	}
	if req.DeliveryDate != nil {
		date, err := time.Parse(schedule.DateLayout, *req.DeliveryDate)
		if err != nil {
			return nil, Invalid("Date de livraison invalide")
		}
		fields["delivery_date"] = date
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	// Full-replace semantics: the old item list is dropped and the new
	// one inserted, all inside one transaction.
	if req.Products != nil {
		if err := s.repo.ReplaceLineItems(ctx, id, buildItems(req.Products)); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapOrder(*updated)
	return &resp, nil
}

func (s *orderService) SetProduced(ctx context.Context, orderID, itemID uuid.UUID, produced decimal.Decimal) error {
	err := s.repo.SetItemProduced(ctx, orderID, itemID, produced)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("Produit introuvable dans la commande")
	}
	return err
}

func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Commande non trouvée")
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
