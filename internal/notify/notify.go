// Package notify sends acknowledgement mails for publicly submitted tickets.
package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Sender struct {
	Email string
	Name  string
}

// SendGridNotifier mails through the SendGrid v3 API.
type SendGridNotifier struct {
	client *sendgrid.Client
	from   Sender
}

func NewSendGridNotifier(apiKey string, from Sender) *SendGridNotifier {
	return &SendGridNotifier{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
	}
}

func subject(t ticket.Ticket) string {
	return fmt.Sprintf("Ticket reçu : %s", t.Title)
}

func body(t ticket.Ticket) string {
	return fmt.Sprintf("Bonjour,\n\nNous avons bien reçu votre demande \"%s\" (référence %s).\nNotre équipe la traitera dans les meilleurs délais.\n", t.Title, t.ID)
}

func (n *SendGridNotifier) TicketReceived(ctx context.Context, to string, t ticket.Ticket) error {
	from := mail.NewEmail(n.from.Name, n.from.Email)
	recipient := mail.NewEmail("", to)
	msg := mail.NewSingleEmail(from, subject(t), recipient, body(t), "")

	resp, err := n.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// LogNotifier only logs; used when no SendGrid key is configured.
type LogNotifier struct{}

func (LogNotifier) TicketReceived(_ context.Context, to string, t ticket.Ticket) error {
	log.Printf("[notify] would mail %s: %s", to, subject(t))
	return nil
}
