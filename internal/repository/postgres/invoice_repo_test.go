package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"aravalli/internal/domain"
)

func TestInvoiceRepo_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvoiceRepo(db)

	inv := &domain.Invoice{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		PartyID: uuid.New(),
		Items: []domain.InvoiceItem{
			{Product: "Chair", Qty: 2, Rate: 500, Total: 1000},
		},
		GrandTotal: 1000,
	}

	mock.ExpectExec("INSERT INTO invoices").
		WithArgs(inv.ID, inv.OwnerID, inv.PartyID, sqlmock.AnyArg(), inv.GrandTotal, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), inv)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepo_GetByID_DecodesItems(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvoiceRepo(db)

	ownerID := uuid.New()
	invoiceID := uuid.New()
	partyID := uuid.New()
	items := `[{"product":"Pipe","qty":3,"rate":100,"per_kg":2,"total":600}]`

	mock.ExpectQuery("SELECT \\* FROM invoices WHERE id").
		WithArgs(invoiceID, ownerID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "party_id", "items", "grand_total", "created_at"}).
			AddRow(invoiceID, ownerID, partyID, []byte(items), 600.0, time.Now().UTC()))

	inv, err := repo.GetByID(context.Background(), ownerID, invoiceID)

	assert.NoError(t, err)
	assert.Equal(t, partyID, inv.PartyID)
	assert.Len(t, inv.Items, 1)
	assert.Equal(t, 2.0, inv.Items[0].PerKg)
	assert.Equal(t, 600.0, inv.Items[0].Total)
	assert.Equal(t, 600.0, inv.GrandTotal)
}

func TestInvoiceRepo_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvoiceRepo(db)

	ownerID := uuid.New()
	invoiceID := uuid.New()

	mock.ExpectQuery("SELECT \\* FROM invoices WHERE id").
		WithArgs(invoiceID, ownerID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "party_id", "items", "grand_total", "created_at"}))

	inv, err := repo.GetByID(context.Background(), ownerID, invoiceID)

	assert.Nil(t, inv)
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestInvoiceRepo_ListByParty_NewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvoiceRepo(db)

	ownerID := uuid.New()
	partyID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT \\* FROM invoices WHERE owner_id .+ ORDER BY created_at DESC").
		WithArgs(ownerID, partyID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "party_id", "items", "grand_total", "created_at"}).
			AddRow(uuid.New(), ownerID, partyID, []byte(`[]`), 250.0, now).
			AddRow(uuid.New(), ownerID, partyID, []byte(`[]`), 100.0, now.Add(-24*time.Hour)))

	invoices, err := repo.ListByParty(context.Background(), ownerID, partyID)

	assert.NoError(t, err)
	assert.Len(t, invoices, 2)
	assert.Equal(t, 250.0, invoices[0].GrandTotal)
	assert.True(t, invoices[0].CreatedAt.After(invoices[1].CreatedAt))
}
