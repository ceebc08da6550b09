package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"aravalli/internal/domain"
	"aravalli/internal/port"
)

type partyRepo struct {
	db *sqlx.DB
}

// NewPartyRepo creates a new PostgreSQL-backed PartyRepository.
func NewPartyRepo(db *sqlx.DB) port.PartyRepository {
	return &partyRepo{db: db}
}

func (r *partyRepo) Create(ctx context.Context, p *domain.Party) error {
	p.CreatedAt = time.Now().UTC()

	query := `INSERT INTO parties (id, owner_id, name, mobile, email, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.OwnerID, p.Name, p.Mobile, p.Email, p.Address, p.CreatedAt)
	if err != nil {
		return domain.NewStoreError("partyRepo.Create", err)
	}
	return nil
}

func (r *partyRepo) GetByID(ctx context.Context, ownerID, partyID uuid.UUID) (*domain.Party, error) {
	var p domain.Party
	err := r.db.GetContext(ctx, &p,
		"SELECT * FROM parties WHERE id = $1 AND owner_id = $2", partyID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPartyNotFound
		}
		return nil, domain.NewStoreError("partyRepo.GetByID", err)
	}
	return &p, nil
}

func (r *partyRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Party, error) {
	var parties []domain.Party
	err := r.db.SelectContext(ctx, &parties,
		"SELECT * FROM parties WHERE owner_id = $1 ORDER BY created_at DESC", ownerID)
	if err != nil {
		return nil, domain.NewStoreError("partyRepo.ListByOwner", err)
	}
	return parties, nil
}

// DeleteCascade deletes the party and all invoices referencing it in one
// transaction. Readers never observe a party without its invoices already gone,
// or vice versa; any failure rolls the whole batch back.
func (r *partyRepo) DeleteCascade(ctx context.Context, ownerID, partyID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.NewStoreError("partyRepo.DeleteCascade begin", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM invoices WHERE party_id = $1 AND owner_id = $2",
		partyID, ownerID); err != nil {
		return domain.NewStoreError("partyRepo.DeleteCascade invoices", err)
	}

	result, err := tx.ExecContext(ctx,
		"DELETE FROM parties WHERE id = $1 AND owner_id = $2",
		partyID, ownerID)
	if err != nil {
		return domain.NewStoreError("partyRepo.DeleteCascade party", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPartyNotFound
	}

	if err := tx.Commit(); err != nil {
		return domain.NewStoreError("partyRepo.DeleteCascade commit", err)
	}
	return nil
}
