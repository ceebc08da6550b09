package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"aravalli/internal/domain"
	"aravalli/internal/port"
)

type catalogRepo struct {
	db *sqlx.DB
}

// NewCatalogRepo creates a new PostgreSQL-backed CatalogRepository.
func NewCatalogRepo(db *sqlx.DB) port.CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) Upsert(ctx context.Context, item *domain.CatalogItem) error {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	query := `INSERT INTO catalog_items (id, model, material, height_cm, width_cm, depth_cm, base_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (model, material) DO UPDATE SET
			height_cm = EXCLUDED.height_cm,
			width_cm = EXCLUDED.width_cm,
			depth_cm = EXCLUDED.depth_cm,
			base_rate = EXCLUDED.base_rate,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Model, item.Material, item.HeightCm, item.WidthCm, item.DepthCm,
		item.BaseRate, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return domain.NewStoreError("catalogRepo.Upsert", err)
	}
	return nil
}

func (r *catalogRepo) List(ctx context.Context) ([]domain.CatalogItem, error) {
	var items []domain.CatalogItem
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM catalog_items ORDER BY model, material")
	if err != nil {
		return nil, domain.NewStoreError("catalogRepo.List", err)
	}
	return items, nil
}
