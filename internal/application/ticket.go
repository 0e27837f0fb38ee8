package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/Sahindou/ifrit-ticket/internal/domain/audit"
	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
	"github.com/Sahindou/ifrit-ticket/internal/repository"
	"github.com/Sahindou/ifrit-ticket/pkg/utils"
	"gorm.io/gorm"
)

type TicketService struct {
	Repos   *repository.Repos
	events  EventPublisher
	storage ObjectStore
}

func NewTicketService(repos *repository.Repos, events EventPublisher, storage ObjectStore) *TicketService {
	if events == nil {
		events = noopPublisher{}
	}
	return &TicketService{
		Repos:   repos,
		events:  events,
		storage: storage,
	}
}

func (s *TicketService) ListTickets() ([]ticket.Ticket, error) {
	tickets, err := s.Repos.Ticket.ListTickets()
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

func (s *TicketService) GetTicket(id string) (ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetTicketByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ticket.Ticket{}, ErrTicketNotFound
	}
	if err != nil {
		return ticket.Ticket{}, fmt.Errorf("get ticket: %w", err)
	}
	return t, nil
}

// ensureType turns a dangling type reference into a field error instead of a constraint violation.
func ensureType(repos *repository.Repos, typeID string) error {
	_, err := repos.TicketType.GetTicketTypeByID(typeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return newValidationError("type_id", "type_id does not reference an existing ticket type")
	}
	return err
}

func (s *TicketService) CreateTicket(c *gin.Context, input ticket.CreateTicketInput) (ticket.Ticket, error) {
	t := ticket.Ticket{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Status:      ticket.StatusToDo,
		Priority:    ticket.PriorityLow,
		TypeID:      strings.ToLower(input.TypeID),
	}
	if input.Status != nil {
		t.Status = *input.Status
	}
	if input.Priority != nil {
		t.Priority = *input.Priority
	}
	if input.DueDate != nil {
		due, err := ticket.ParseDueDate(*input.DueDate)
		if err != nil {
			return ticket.Ticket{}, newValidationError("due_date", err.Error())
		}
		t.DueDate = &due
	}

	if err := s.create(&t); err != nil {
		return ticket.Ticket{}, err
	}

	utils.LogAuditWithConsole(c, audit.ActionCreate, audit.ResourceTicket, t.ID, nil, ticket.NewTicketDTO(t), "", s.Repos.Audit)
	s.events.Publish(EventTicketCreated, t.ID)
	return t, nil
}

func (s *TicketService) create(t *ticket.Ticket) error {
	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := ensureType(tx, t.TypeID); err != nil {
			return err
		}
		if err := tx.Ticket.CreateTicket(t); err != nil {
			return fmt.Errorf("create ticket: %w", err)
		}
		return nil
	})
}

// UpdateTicket applies the fields present in input; absent fields keep their value.
func (s *TicketService) UpdateTicket(c *gin.Context, id string, input ticket.UpdateTicketInput) (ticket.Ticket, error) {
	var before, after ticket.Ticket
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		existing, err := tx.Ticket.GetTicketByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTicketNotFound
		}
		if err != nil {
			return fmt.Errorf("get ticket: %w", err)
		}
		before = existing

		if input.Title != nil {
			existing.Title = strings.TrimSpace(*input.Title)
		}
		if input.Description != nil {
			existing.Description = strings.TrimSpace(*input.Description)
		}
		if input.Status != nil {
			existing.Status = *input.Status
		}
		if input.Priority != nil {
			existing.Priority = *input.Priority
		}
		if input.DueDate != nil {
			due, err := ticket.ParseDueDate(*input.DueDate)
			if err != nil {
				return newValidationError("due_date", err.Error())
			}
			existing.DueDate = &due
		}
		if input.TypeID != nil {
			typeID := strings.ToLower(*input.TypeID)
			if typeID != existing.TypeID {
				if err := ensureType(tx, typeID); err != nil {
					return err
				}
			}
			existing.TypeID = typeID
		}

		if err := tx.Ticket.SaveTicket(&existing); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketNotFound
			}
			return fmt.Errorf("update ticket: %w", err)
		}
		after = existing
		return nil
	})
	if err != nil {
		return ticket.Ticket{}, err
	}

	utils.LogAuditWithConsole(c, audit.ActionUpdate, audit.ResourceTicket, id, ticket.NewTicketDTO(before), ticket.NewTicketDTO(after), "", s.Repos.Audit)
	s.events.Publish(EventTicketUpdated, id)
	return after, nil
}

func (s *TicketService) DeleteTicket(c *gin.Context, id string) error {
	var before ticket.Ticket
	var keys []string
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		existing, err := tx.Ticket.GetTicketByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTicketNotFound
		}
		if err != nil {
			return fmt.Errorf("get ticket: %w", err)
		}
		before = existing

		if s.storage != nil {
			if keys, err = tx.Attachment.ListObjectKeysByTicket(id); err != nil {
				return fmt.Errorf("list attachments: %w", err)
			}
		}
		if err := tx.Ticket.DeleteTicket(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketNotFound
			}
			return fmt.Errorf("delete ticket: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	removeObjects(context.Background(), s.storage, keys)
	utils.LogAuditWithConsole(c, audit.ActionDelete, audit.ResourceTicket, id, ticket.NewTicketDTO(before), nil, "", s.Repos.Audit)
	s.events.Publish(EventTicketDeleted, id)
	return nil
}

// removeObjects deletes stored objects after their rows are gone. Failures leave orphans and are only logged.
func removeObjects(ctx context.Context, store ObjectStore, keys []string) {
	if store == nil {
		return
	}
	for _, key := range keys {
		if err := store.Remove(ctx, key); err != nil {
			log.Printf("[storage] remove %s: %v", key, err)
		}
	}
}
