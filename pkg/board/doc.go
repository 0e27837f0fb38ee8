// Package board is the client side of the ticket tracker: a caching API client and the
// pure view logic (filtering, sorting, stats and kanban columns) the dashboards render.
package board

import (
	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
	"github.com/Sahindou/ifrit-ticket/internal/domain/tickettype"
)

// Ticket is a ticket as served by the API.
type Ticket = ticket.TicketDTO

type TicketType = tickettype.TicketType

// TicketInput is the full-record body sent on create and update.
type TicketInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Priority    ticket.Priority `json:"priority"`
	Status      ticket.Status   `json:"status"`
	DueDate     *string         `json:"due_date,omitempty"`
	TypeID      string          `json:"type_id"`
}

// InputFrom copies t into an update body, normalising the due date to DD-MM-YYYY.
func InputFrom(t Ticket) TicketInput {
	in := TicketInput{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		TypeID:      t.TypeID,
	}
	if t.DueDate != nil && *t.DueDate != "" {
		d := EnsureDDMMYYYY(*t.DueDate)
		in.DueDate = &d
	}
	return in
}
