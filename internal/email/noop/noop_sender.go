package noop

import (
	"context"
	"log"

	"aravalli/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs share links to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendInvoiceShareEmail(_ context.Context, toEmail, toName, partyName, shareURL string) error {
	log.Printf("[NOOP EMAIL] Invoice share for %s (%s), party %s: %s", toName, toEmail, partyName, shareURL)
	return nil
}
