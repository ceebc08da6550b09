package service

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/google/uuid"

	"aravalli/internal/config"
	"aravalli/internal/domain"
	"aravalli/internal/port"
	"aravalli/internal/pricing"
	"aravalli/internal/render"
)

// CreateInvoiceInput is the DTO for creating an invoice.
type CreateInvoiceInput struct {
	OwnerID uuid.UUID
	PartyID uuid.UUID
	Items   []domain.InvoiceItem
}

// ShareInvoiceInput is the DTO for emailing a shareable invoice link.
type ShareInvoiceInput struct {
	OwnerID   uuid.UUID
	InvoiceID uuid.UUID
	ToEmail   string
	ToName    string
}

// InvoiceService defines the invoice lifecycle contract.
type InvoiceService interface {
	Create(ctx context.Context, input *CreateInvoiceInput) (*domain.Invoice, error)
	GetByID(ctx context.Context, ownerID, invoiceID uuid.UUID) (*domain.Invoice, error)
	ListForParty(ctx context.Context, ownerID, partyID uuid.UUID) ([]domain.Invoice, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Invoice, error)
	// RenderView builds the parameterized invoice rendering used by dashboard,
	// print, and share screens alike.
	RenderView(ctx context.Context, ownerID, invoiceID uuid.UUID, opts render.Options) (*render.InvoiceView, error)
	// ShareURL builds the link a recipient can open without a session.
	ShareURL(ownerID, invoiceID uuid.UUID) string
	EmailShareLink(ctx context.Context, input *ShareInvoiceInput) error
}

type invoiceService struct {
	invoiceRepo port.InvoiceRepository
	partyRepo   port.PartyRepository
	emailSender port.EmailSender
	shareCfg    config.ShareConfig
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	invoiceRepo port.InvoiceRepository,
	partyRepo port.PartyRepository,
	emailSender port.EmailSender,
	shareCfg config.ShareConfig,
) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		partyRepo:   partyRepo,
		emailSender: emailSender,
		shareCfg:    shareCfg,
	}
}

func (s *invoiceService) Create(ctx context.Context, input *CreateInvoiceInput) (*domain.Invoice, error) {
	if len(input.Items) == 0 {
		return nil, domain.ValidationErrorf("invoice must contain at least one item")
	}
	for _, item := range input.Items {
		if err := pricing.ValidateItem(item); err != nil {
			return nil, err
		}
	}

	// The party must exist and belong to the same owner; the store itself does
	// not enforce this reference.
	if _, err := s.partyRepo.GetByID(ctx, input.OwnerID, input.PartyID); err != nil {
		if err == domain.ErrPartyNotFound {
			return nil, domain.ValidationErrorf("party %s does not exist", input.PartyID)
		}
		return nil, fmt.Errorf("resolving party: %w", err)
	}

	items, grandTotal := pricing.Derive(input.Items)

	invoice := &domain.Invoice{
		ID:         uuid.New(),
		OwnerID:    input.OwnerID,
		PartyID:    input.PartyID,
		Items:      items,
		GrandTotal: grandTotal,
	}

	log.Printf("invoiceService.Create: creating invoice %s for party %s (total %.2f)",
		invoice.ID, input.PartyID, grandTotal)
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("creating invoice: %w", err)
	}
	return invoice, nil
}

func (s *invoiceService) GetByID(ctx context.Context, ownerID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, ownerID, invoiceID)
}

func (s *invoiceService) ListForParty(ctx context.Context, ownerID, partyID uuid.UUID) ([]domain.Invoice, error) {
	if _, err := s.partyRepo.GetByID(ctx, ownerID, partyID); err != nil {
		return nil, err
	}
	return s.invoiceRepo.ListByParty(ctx, ownerID, partyID)
}

func (s *invoiceService) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Invoice, error) {
	return s.invoiceRepo.ListByOwner(ctx, ownerID)
}

func (s *invoiceService) RenderView(ctx context.Context, ownerID, invoiceID uuid.UUID, opts render.Options) (*render.InvoiceView, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, ownerID, invoiceID)
	if err != nil {
		return nil, err
	}
	party, err := s.partyRepo.GetByID(ctx, ownerID, invoice.PartyID)
	if err != nil {
		return nil, err
	}
	return render.BuildInvoiceView(invoice, party, opts), nil
}

func (s *invoiceService) ShareURL(ownerID, invoiceID uuid.UUID) string {
	q := url.Values{}
	q.Set("owner", ownerID.String())
	q.Set("invoice", invoiceID.String())
	return fmt.Sprintf("%s/share/invoice?%s", s.shareCfg.BaseURL, q.Encode())
}

func (s *invoiceService) EmailShareLink(ctx context.Context, input *ShareInvoiceInput) error {
	if input.ToEmail == "" {
		return domain.ValidationErrorf("recipient email is required")
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, input.OwnerID, input.InvoiceID)
	if err != nil {
		return err
	}
	party, err := s.partyRepo.GetByID(ctx, input.OwnerID, invoice.PartyID)
	if err != nil {
		return err
	}

	shareURL := s.ShareURL(input.OwnerID, input.InvoiceID)
	log.Printf("invoiceService.EmailShareLink: sending invoice %s link to %s", input.InvoiceID, input.ToEmail)
	if err := s.emailSender.SendInvoiceShareEmail(ctx, input.ToEmail, input.ToName, party.Name, shareURL); err != nil {
		return fmt.Errorf("sending share email: %w", err)
	}
	return nil
}
