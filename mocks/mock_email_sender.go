package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendInvoiceShareEmail(ctx context.Context, toEmail, toName, partyName, shareURL string) error {
	args := m.Called(ctx, toEmail, toName, partyName, shareURL)
	return args.Error(0)
}
