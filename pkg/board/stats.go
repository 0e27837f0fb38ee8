package board

import (
	"time"

	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
)

type Stats struct {
	Total      int
	InProgress int
	Overdue    int
}

func ComputeStats(tickets []Ticket, now time.Time) Stats {
	s := Stats{Total: len(tickets)}
	for _, t := range tickets {
		if t.Status == ticket.StatusInProgress {
			s.InProgress++
		}
		if IsOverdue(t, now) {
			s.Overdue++
		}
	}
	return s
}
