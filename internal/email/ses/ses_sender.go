package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"aravalli/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendInvoiceShareEmail(ctx context.Context, toEmail, toName, partyName, shareURL string) error {
	subject := fmt.Sprintf("Bill for %s from Aravalli Furniture", partyName)
	htmlBody := buildShareHTML(toName, partyName, shareURL)
	textBody := fmt.Sprintf("Hi %s,\n\nYour bill from Aravalli Furniture is ready. View it here:\n%s\n\nAravalli Furniture", toName, shareURL)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildShareHTML(toName, partyName, shareURL string) string {
	return fmt.Sprintf(`<html><body style="font-family: sans-serif; color: #1c1917;">
<p>Hi %s,</p>
<p>Your bill for <strong>%s</strong> from Aravalli Furniture is ready.</p>
<p><a href="%s" style="display:inline-block;padding:10px 20px;background:#8b5e3c;color:#fff;text-decoration:none;border-radius:6px;">View Bill</a></p>
<p>If the button does not work, open this link:<br>%s</p>
<p>Aravalli Furniture</p>
</body></html>`, toName, partyName, shareURL, shareURL)
}
