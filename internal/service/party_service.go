package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"aravalli/internal/domain"
	"aravalli/internal/port"
)

// CreatePartyInput is the DTO for creating a party.
type CreatePartyInput struct {
	OwnerID uuid.UUID
	Name    string
	Mobile  string
	Email   string
	Address string
}

// PartyService defines the party management contract.
type PartyService interface {
	Create(ctx context.Context, input *CreatePartyInput) (*domain.Party, error)
	GetByID(ctx context.Context, ownerID, partyID uuid.UUID) (*domain.Party, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Party, error)
	// DeleteCascade removes the party and every invoice referencing it as one
	// atomic operation.
	DeleteCascade(ctx context.Context, ownerID, partyID uuid.UUID) error
}

type partyService struct {
	partyRepo port.PartyRepository
}

// NewPartyService creates a new PartyService implementation.
func NewPartyService(partyRepo port.PartyRepository) PartyService {
	return &partyService{partyRepo: partyRepo}
}

func (s *partyService) Create(ctx context.Context, input *CreatePartyInput) (*domain.Party, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.ValidationErrorf("party name is required")
	}
	if strings.TrimSpace(input.Mobile) == "" {
		return nil, domain.ValidationErrorf("party mobile is required")
	}

	party := &domain.Party{
		ID:      uuid.New(),
		OwnerID: input.OwnerID,
		Name:    strings.TrimSpace(input.Name),
		Mobile:  strings.TrimSpace(input.Mobile),
		Email:   strings.TrimSpace(input.Email),
		Address: strings.TrimSpace(input.Address),
	}

	log.Printf("partyService.Create: creating party %s for owner %s", party.ID, input.OwnerID)
	if err := s.partyRepo.Create(ctx, party); err != nil {
		return nil, fmt.Errorf("creating party: %w", err)
	}
	return party, nil
}

func (s *partyService) GetByID(ctx context.Context, ownerID, partyID uuid.UUID) (*domain.Party, error) {
	return s.partyRepo.GetByID(ctx, ownerID, partyID)
}

func (s *partyService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Party, error) {
	return s.partyRepo.ListByOwner(ctx, ownerID)
}

func (s *partyService) DeleteCascade(ctx context.Context, ownerID, partyID uuid.UUID) error {
	log.Printf("partyService.DeleteCascade: deleting party %s and its invoices for owner %s", partyID, ownerID)
	return s.partyRepo.DeleteCascade(ctx, ownerID, partyID)
}
