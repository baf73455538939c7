package service

import (
	"context"
	"encoding/csv"
	"errors"
	"strings"

	"github.com/cedricmorin1/Ordermanagement/internal/dto"
	"github.com/cedricmorin1/Ordermanagement/internal/model"
	"github.com/cedricmorin1/Ordermanagement/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService defines business operations for the admin product catalog.
type CatalogService interface {
	Create(ctx context.Context, req dto.CreateCatalogProductRequest) (*dto.CatalogProductResponse, error)
	List(ctx context.Context) ([]dto.CatalogProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCatalogProductRequest) (*dto.CatalogProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ImportCSV loads "name,unit" rows from a delimited blob. The first
	// line is a header. Rows whose name already exists (compared
	// case-insensitively) are skipped, as are malformed rows.
	ImportCSV(ctx context.Context, data string) (*dto.ImportCatalogResponse, error)
}

type catalogService struct {
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) CatalogService {
	return &catalogService{repo: repo}
}

func mapCatalogProduct(p model.CatalogProduct) dto.CatalogProductResponse {
	return dto.CatalogProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		DefaultUnit: p.DefaultUnit,
		CreatedAt:   p.CreatedAt,
	}
}

func (s *catalogService) Create(ctx context.Context, req dto.CreateCatalogProductRequest) (*dto.CatalogProductResponse, error) {
	// Duplicate pre-check, exact match
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, Conflict("Un produit avec ce nom existe déjà")
	}

	p := &model.CatalogProduct{
		Name:        req.Name,
		DefaultUnit: req.DefaultUnit,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := mapCatalogProduct(*p)
	return &resp, nil
}

func (s *catalogService) List(ctx context.Context) ([]dto.CatalogProductResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CatalogProductResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapCatalogProduct(p))
	}
	return result, nil
}

func (s *catalogService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCatalogProductRequest) (*dto.CatalogProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Produit non trouvé")
		}
		return nil, err
	}

	if req.Name != p.Name {
		existing, err := s.repo.FindByName(ctx, req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, Conflict("Un produit avec ce nom existe déjà")
		}
	}

	p.Name = req.Name
	p.DefaultUnit = req.DefaultUnit
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := mapCatalogProduct(*p)
	return &resp, nil
}

func (s *catalogService) Delete(ctx context.Context, id uuid.UUID) error {
	// No referential check against orders: they carry their own copy of
	// product name and unit.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Produit non trouvé")
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

var validUnits = map[string]bool{
	model.UnitKilogram: true,
	model.UnitGram:     true,
	model.UnitPiece:    true,
	model.UnitSlice:    true,
}

func (s *catalogService) ImportCSV(ctx context.Context, data string) (*dto.ImportCatalogResponse, error) {
	reader := csv.NewReader(strings.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, Invalid("Fichier CSV illisible")
	}
	if len(rows) <= 1 {
		return &dto.ImportCatalogResponse{}, nil
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[strings.ToLower(p.Name)] = true
	}

	resp := &dto.ImportCatalogResponse{}
	for _, row := range rows[1:] { // rows[0] is the header
		if len(row) < 2 {
			resp.Skipped++
			continue
		}
		name := strings.TrimSpace(row[0])
		unit := strings.TrimSpace(row[1])
		if name == "" || !validUnits[unit] {
			resp.Skipped++
			continue
		}
		if seen[strings.ToLower(name)] {
			resp.Skipped++
			continue
		}
		p := &model.CatalogProduct{Name: name, DefaultUnit: unit}
		if err := s.repo.Create(ctx, p); err != nil {
			return nil, err
		}
		seen[strings.ToLower(name)] = true
		resp.Imported++
	}
	return resp, nil
}
