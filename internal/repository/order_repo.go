package repository

import (
	"context"
	"time"

	"github.com/cedricmorin1/Ordermanagement/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderRepository defines the data access contract for customer orders
// and their line items.
type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	// List returns orders newest first, items preloaded in entry order.
	// day and date narrow the result; zero values mean no filter.
	List(ctx context.Context, day string, date *time.Time) ([]model.Order, error)
	// UpdateFields patches order columns without touching line items or
	// created_at.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	// ReplaceLineItems swaps the whole item list in one transaction:
	// either all old rows are gone and all new rows inserted, or nothing
	// changed.
	ReplaceLineItems(ctx context.Context, orderID uuid.UUID, items []model.LineItem) error
	// SetItemProduced writes one item's produced counter. Returns
	// gorm.ErrRecordNotFound when no such item exists under the order.
	SetItemProduced(ctx context.Context, orderID, itemID uuid.UUID, produced decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Order("line_items.position ASC")
}

func (r *orderRepo) Create(ctx context.Context, o *model.Order) error {
	for i := range o.Items {
		o.Items[i].Position = i
	}
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Preload("Items", preloadItems).First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) List(ctx context.Context, day string, date *time.Time) ([]model.Order, error) {
	q := r.db.WithContext(ctx).Model(&model.Order{}).Preload("Items", preloadItems)
	if day != "" {
		q = q.Where("delivery_day = ?", day)
	}
	if date != nil {
		q = q.Where("delivery_date = ?", *date)
	}
	var orders []model.Order
	err := q.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Updates(fields).Error
}

func (r *orderRepo) ReplaceLineItems(ctx context.Context, orderID uuid.UUID, items []model.LineItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&model.LineItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = uuid.Nil
			items[i].OrderID = orderID
			items[i].Position = i
		}
		return tx.Create(&items).Error
	})
}

func (r *orderRepo) SetItemProduced(ctx context.Context, orderID, itemID uuid.UUID, produced decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&model.LineItem{}).
		Where("id = ? AND order_id = ?", itemID, orderID).
		Update("produced", produced)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// line_items go with the order via the ON DELETE CASCADE constraint
	return r.db.WithContext(ctx).Delete(&model.Order{}, "id = ?", id).Error
}
