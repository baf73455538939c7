package repository

import (
	"context"

	"github.com/cedricmorin1/Ordermanagement/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogRepository defines the data access contract for admin products.
// Services depend on this interface, not on the concrete GORM
// implementation, enabling clean unit testing via stubs.
type CatalogRepository interface {
	Create(ctx context.Context, p *model.CatalogProduct) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CatalogProduct, error)
	// FindByName matches the name exactly (case-sensitive). The CSV
	// import path does its own case-insensitive check over List.
	FindByName(ctx context.Context, name string) (*model.CatalogProduct, error)
	List(ctx context.Context) ([]model.CatalogProduct, error)
	Update(ctx context.Context, p *model.CatalogProduct) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type catalogRepo struct{ db *gorm.DB }

func NewCatalogRepository(db *gorm.DB) CatalogRepository { return &catalogRepo{db: db} }

func (r *catalogRepo) Create(ctx context.Context, p *model.CatalogProduct) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *catalogRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CatalogProduct, error) {
	var p model.CatalogProduct
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *catalogRepo) FindByName(ctx context.Context, name string) (*model.CatalogProduct, error) {
	var p model.CatalogProduct
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *catalogRepo) List(ctx context.Context) ([]model.CatalogProduct, error) {
	var products []model.CatalogProduct
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&products).Error
	return products, err
}

func (r *catalogRepo) Update(ctx context.Context, p *model.CatalogProduct) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *catalogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CatalogProduct{}, "id = ?", id).Error
}
