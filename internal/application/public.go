package application

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/Sahindou/ifrit-ticket/internal/domain/audit"
	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
	"github.com/Sahindou/ifrit-ticket/internal/repository"
	"github.com/Sahindou/ifrit-ticket/pkg/utils"
)

// PublicService accepts tickets from the unauthenticated submission form.
type PublicService struct {
	Repos    *repository.Repos
	types    *TicketTypeService
	tickets  *TicketService
	notifier Notifier
}

func NewPublicService(repos *repository.Repos, types *TicketTypeService, tickets *TicketService, notifier Notifier) *PublicService {
	return &PublicService{
		Repos:    repos,
		types:    types,
		tickets:  tickets,
		notifier: notifier,
	}
}

// SubmitTicket files a TO_DO / LOW ticket under the type named by input.Type, creating the
// type on first use, then acknowledges receipt to the reporter.
func (s *PublicService) SubmitTicket(c *gin.Context, input ticket.PublicSubmissionInput) (ticket.Ticket, error) {
	email := strings.TrimSpace(input.Email)
	t := ticket.Ticket{
		Title:         strings.TrimSpace(input.Title),
		Description:   strings.TrimSpace(input.Description),
		Status:        ticket.StatusToDo,
		Priority:      ticket.PriorityLow,
		ReporterEmail: &email,
	}

	var typeCreated bool
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		tt, created, err := s.types.FindOrCreateByName(tx, string(input.Type))
		if err != nil {
			return err
		}
		typeCreated = created
		t.TypeID = tt.ID
		if err := tx.Ticket.CreateTicket(&t); err != nil {
			return fmt.Errorf("create ticket: %w", err)
		}
		return nil
	})
	if err != nil {
		return ticket.Ticket{}, err
	}

	if typeCreated {
		s.types.events.Publish(EventTicketTypeCreated, t.TypeID)
	}
	utils.LogAuditWithConsole(c, audit.ActionCreate, audit.ResourceTicket, t.ID, nil, ticket.NewTicketDTO(t), "public submission", s.Repos.Audit)
	s.tickets.events.Publish(EventTicketCreated, t.ID)

	if s.notifier != nil {
		ctx := context.Background()
		if c != nil && c.Request != nil {
			ctx = c.Request.Context()
		}
		if err := s.notifier.TicketReceived(ctx, email, t); err != nil {
			log.Printf("[notify] acknowledgement to %s failed: %v", email, err)
		}
	}
	return t, nil
}
