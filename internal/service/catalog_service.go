package service

import (
	"context"

	"aravalli/internal/domain"
	"aravalli/internal/port"
)

// CatalogService exposes the configurable furniture catalog.
type CatalogService interface {
	List(ctx context.Context) ([]domain.CatalogItem, error)
}

type catalogService struct {
	catalogRepo port.CatalogRepository
}

// NewCatalogService creates a new CatalogService implementation.
func NewCatalogService(catalogRepo port.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) List(ctx context.Context) ([]domain.CatalogItem, error) {
	return s.catalogRepo.List(ctx)
}
