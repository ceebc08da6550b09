package port

import (
	"context"

	"github.com/google/uuid"

	"aravalli/internal/domain"
)

// UserRepository defines the contract for account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByGoogleSub(ctx context.Context, sub string) (*domain.User, error)
}

// PartyRepository defines the contract for party persistence.
// All query methods include ownerID to enforce per-account isolation.
type PartyRepository interface {
	Create(ctx context.Context, party *domain.Party) error
	GetByID(ctx context.Context, ownerID, partyID uuid.UUID) (*domain.Party, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Party, error)
	// DeleteCascade removes the party and every invoice referencing it in a
	// single transaction. All-or-nothing: a failure leaves every row in place.
	DeleteCascade(ctx context.Context, ownerID, partyID uuid.UUID) error
}

// InvoiceRepository defines the contract for invoice persistence.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, ownerID, invoiceID uuid.UUID) (*domain.Invoice, error)
	ListByParty(ctx context.Context, ownerID, partyID uuid.UUID) ([]domain.Invoice, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Invoice, error)
}

// CatalogRepository defines the contract for the furniture product catalog.
type CatalogRepository interface {
	Upsert(ctx context.Context, item *domain.CatalogItem) error
	List(ctx context.Context) ([]domain.CatalogItem, error)
}
