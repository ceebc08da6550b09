package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"aravalli/internal/domain"
	"aravalli/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

// invoiceRow mirrors the invoices table; items live in a JSONB column.
type invoiceRow struct {
	ID         uuid.UUID       `db:"id"`
	OwnerID    uuid.UUID       `db:"owner_id"`
	PartyID    uuid.UUID       `db:"party_id"`
	Items      json.RawMessage `db:"items"`
	GrandTotal float64         `db:"grand_total"`
	CreatedAt  time.Time       `db:"created_at"`
}

func (row *invoiceRow) toDomain() (*domain.Invoice, error) {
	var items []domain.InvoiceItem
	if err := json.Unmarshal(row.Items, &items); err != nil {
		return nil, fmt.Errorf("decoding invoice items: %w", err)
	}
	return &domain.Invoice{
		ID:         row.ID,
		OwnerID:    row.OwnerID,
		PartyID:    row.PartyID,
		Items:      items,
		GrandTotal: row.GrandTotal,
		CreatedAt:  row.CreatedAt,
	}, nil
}

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	inv.CreatedAt = time.Now().UTC()

	items, err := json.Marshal(inv.Items)
	if err != nil {
		return fmt.Errorf("encoding invoice items: %w", err)
	}

	query := `INSERT INTO invoices (id, owner_id, party_id, items, grand_total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.db.ExecContext(ctx, query,
		inv.ID, inv.OwnerID, inv.PartyID, items, inv.GrandTotal, inv.CreatedAt)
	if err != nil {
		return domain.NewStoreError("invoiceRepo.Create", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, ownerID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	var row invoiceRow
	err := r.db.GetContext(ctx, &row,
		"SELECT * FROM invoices WHERE id = $1 AND owner_id = $2", invoiceID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, domain.NewStoreError("invoiceRepo.GetByID", err)
	}
	return row.toDomain()
}

// ListByParty returns the party's invoices newest first. Ordering is applied at
// read time; storage makes no ordering guarantee.
func (r *invoiceRepo) ListByParty(ctx context.Context, ownerID, partyID uuid.UUID) ([]domain.Invoice, error) {
	var rows []invoiceRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM invoices WHERE owner_id = $1 AND party_id = $2
		 ORDER BY created_at DESC`,
		ownerID, partyID)
	if err != nil {
		return nil, domain.NewStoreError("invoiceRepo.ListByParty", err)
	}
	return rowsToDomain(rows)
}

func (r *invoiceRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Invoice, error) {
	var rows []invoiceRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM invoices WHERE owner_id = $1 ORDER BY created_at DESC", ownerID)
	if err != nil {
		return nil, domain.NewStoreError("invoiceRepo.ListByOwner", err)
	}
	return rowsToDomain(rows)
}

func rowsToDomain(rows []invoiceRow) ([]domain.Invoice, error) {
	invoices := make([]domain.Invoice, 0, len(rows))
	for i := range rows {
		inv, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, *inv)
	}
	return invoices, nil
}
