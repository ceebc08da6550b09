package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aravalli/internal/domain"
	"aravalli/internal/render"
	"aravalli/internal/service"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Create(ctx context.Context, input *service.CreateInvoiceInput) (*domain.Invoice, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetByID(ctx context.Context, ownerID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, ownerID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) ListForParty(ctx context.Context, ownerID, partyID uuid.UUID) ([]domain.Invoice, error) {
	args := m.Called(ctx, ownerID, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Invoice, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) RenderView(ctx context.Context, ownerID, invoiceID uuid.UUID, opts render.Options) (*render.InvoiceView, error) {
	args := m.Called(ctx, ownerID, invoiceID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*render.InvoiceView), args.Error(1)
}

func (m *MockInvoiceService) ShareURL(ownerID, invoiceID uuid.UUID) string {
	args := m.Called(ownerID, invoiceID)
	return args.String(0)
}

func (m *MockInvoiceService) EmailShareLink(ctx context.Context, input *service.ShareInvoiceInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}
