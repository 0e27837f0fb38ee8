package board

import (
	"time"

	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
)

const (
	cardTitleLen       = 60
	cardDescriptionLen = 120
)

var columnTitles = map[ticket.Status]string{
	ticket.StatusToDo:       "À faire",
	ticket.StatusInProgress: "En cours",
	ticket.StatusDone:       "Terminé",
}

type Card struct {
	ID          string
	Title       string
	Description string
	TypeName    string
	Priority    ticket.Priority
	Status      ticket.Status
	DueDate     string
	Overdue     bool
}

type Column struct {
	Status ticket.Status
	Title  string
	Count  int
	Cards  []Card
}

// Kanban groups tickets into the three status columns, in input order.
// Tickets with an unknown status are left out.
func Kanban(tickets []Ticket, types []TicketType, now time.Time) []Column {
	names := make(map[string]string, len(types))
	for _, tt := range types {
		names[tt.ID] = tt.Name
	}

	cols := make([]Column, len(ticket.Statuses))
	index := make(map[ticket.Status]int, len(ticket.Statuses))
	for i, st := range ticket.Statuses {
		cols[i] = Column{Status: st, Title: columnTitles[st], Cards: []Card{}}
		index[st] = i
	}

	for _, t := range tickets {
		i, ok := index[t.Status]
		if !ok {
			continue
		}
		typeName, ok := names[t.TypeID]
		if !ok {
			typeName = "Inconnu"
		}
		cols[i].Cards = append(cols[i].Cards, Card{
			ID:          t.ID,
			Title:       truncate(t.Title, cardTitleLen),
			Description: truncate(t.Description, cardDescriptionLen),
			TypeName:    typeName,
			Priority:    t.Priority,
			Status:      t.Status,
			DueDate:     FormatFR(t.DueDate),
			Overdue:     IsOverdue(t, now),
		})
		cols[i].Count++
	}
	return cols
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
