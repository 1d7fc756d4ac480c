// internal/adapters/out/mail/sendgrid_notifier.go
package mail

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"agendalog/internal/domain/notify"
)

// SendGridNotifier implements notify.Notifier by mailing the operations
// address. Severity is carried in the subject prefix.
type SendGridNotifier struct {
	apiKey string
	from   string
	to     string
}

func NewSendGridNotifier(apiKey, from, to string) *SendGridNotifier {
	return &SendGridNotifier{
		apiKey: strings.TrimSpace(apiKey),
		from:   strings.TrimSpace(from),
		to:     strings.TrimSpace(to),
	}
}

func (c *SendGridNotifier) Notify(ctx context.Context, n notify.Notification) error {
	if c == nil || c.apiKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}
	if c.from == "" || c.to == "" {
		return fmt.Errorf("sendgrid from/to address is empty")
	}

	subject := fmt.Sprintf("[%s] %s", strings.ToUpper(string(n.Severity)), n.Title)

	fromEmail := sgmail.NewEmail("Agendalog", c.from)
	toEmail := sgmail.NewEmail("", c.to)
	htmlContent := fmt.Sprintf("<pre>%s</pre>", n.Message)

	message := sgmail.NewSingleEmail(fromEmail, subject, toEmail, n.Message, htmlContent)

	client := sendgrid.NewSendClient(c.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}
	if response.StatusCode >= 400 {
		log.Printf("[sendgrid] error status=%d, body=%s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid send failed status=%d", response.StatusCode)
	}
	return nil
}
