package port

import "context"

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	// SendInvoiceShareEmail delivers a read-only invoice link to a recipient.
	SendInvoiceShareEmail(ctx context.Context, toEmail, toName, partyName, shareURL string) error
}
