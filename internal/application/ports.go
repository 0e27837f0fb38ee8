package application

import (
	"context"
	"io"
	"time"

	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
)

// Board events pushed to websocket subscribers.
const (
	EventTicketCreated     = "ticket.created"
	EventTicketUpdated     = "ticket.updated"
	EventTicketDeleted     = "ticket.deleted"
	EventTicketTypeCreated = "ticket_type.created"
	EventTicketTypeUpdated = "ticket_type.updated"
	EventTicketTypeDeleted = "ticket_type.deleted"
)

type EventPublisher interface {
	Publish(event, id string)
}

type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, key string) error
	PresignedGetURL(ctx context.Context, key, fileName string, expiry time.Duration) (string, error)
}

type Notifier interface {
	TicketReceived(ctx context.Context, to string, t ticket.Ticket) error
}

// Dependencies are the optional collaborators of the services. Nil members disable the feature.
type Dependencies struct {
	Events   EventPublisher
	Storage  ObjectStore
	Notifier Notifier
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, string) {}
