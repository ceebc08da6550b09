package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aravalli/internal/domain"
	"aravalli/internal/service"
)

// MockPartyService is a mock implementation of service.PartyService.
type MockPartyService struct {
	mock.Mock
}

func (m *MockPartyService) Create(ctx context.Context, input *service.CreatePartyInput) (*domain.Party, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) GetByID(ctx context.Context, ownerID, partyID uuid.UUID) (*domain.Party, error) {
	args := m.Called(ctx, ownerID, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Party, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyService) DeleteCascade(ctx context.Context, ownerID, partyID uuid.UUID) error {
	args := m.Called(ctx, ownerID, partyID)
	return args.Error(0)
}
