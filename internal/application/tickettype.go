package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/Sahindou/ifrit-ticket/internal/domain/audit"
	"github.com/Sahindou/ifrit-ticket/internal/domain/tickettype"
	"github.com/Sahindou/ifrit-ticket/internal/repository"
	"github.com/Sahindou/ifrit-ticket/pkg/utils"
	"gorm.io/gorm"
)

type TicketTypeService struct {
	Repos   *repository.Repos
	events  EventPublisher
	storage ObjectStore
}

func NewTicketTypeService(repos *repository.Repos, events EventPublisher, storage ObjectStore) *TicketTypeService {
	if events == nil {
		events = noopPublisher{}
	}
	return &TicketTypeService{
		Repos:   repos,
		events:  events,
		storage: storage,
	}
}

func (s *TicketTypeService) ListTicketTypes() ([]tickettype.TicketType, error) {
	types, err := s.Repos.TicketType.ListTicketTypes()
	if err != nil {
		return nil, fmt.Errorf("list ticket types: %w", err)
	}
	return types, nil
}

func (s *TicketTypeService) GetTicketType(id string) (tickettype.TicketType, error) {
	t, err := s.Repos.TicketType.GetTicketTypeByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tickettype.TicketType{}, ErrTicketTypeNotFound
	}
	if err != nil {
		return tickettype.TicketType{}, fmt.Errorf("get ticket type: %w", err)
	}
	return t, nil
}

func (s *TicketTypeService) CreateTicketType(c *gin.Context, input tickettype.CreateTicketTypeInput) (tickettype.TicketType, error) {
	t := tickettype.TicketType{Name: strings.TrimSpace(input.Name)}
	if err := s.Repos.TicketType.CreateTicketType(&t); err != nil {
		return tickettype.TicketType{}, fmt.Errorf("create ticket type: %w", err)
	}

	utils.LogAuditWithConsole(c, audit.ActionCreate, audit.ResourceTicketType, t.ID, nil, t, "", s.Repos.Audit)
	s.events.Publish(EventTicketTypeCreated, t.ID)
	return t, nil
}

func (s *TicketTypeService) UpdateTicketType(c *gin.Context, id string, input tickettype.UpdateTicketTypeInput) (tickettype.TicketType, error) {
	existing, err := s.GetTicketType(id)
	if err != nil {
		return tickettype.TicketType{}, err
	}
	before := existing

	if input.Name != nil {
		existing.Name = strings.TrimSpace(*input.Name)
	}
	if err := s.Repos.TicketType.SaveTicketType(&existing); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tickettype.TicketType{}, ErrTicketTypeNotFound
		}
		return tickettype.TicketType{}, fmt.Errorf("update ticket type: %w", err)
	}

	utils.LogAuditWithConsole(c, audit.ActionUpdate, audit.ResourceTicketType, id, before, existing, "", s.Repos.Audit)
	s.events.Publish(EventTicketTypeUpdated, id)
	return existing, nil
}

// DeleteTicketType removes the type and every ticket that references it.
func (s *TicketTypeService) DeleteTicketType(c *gin.Context, id string) error {
	var before tickettype.TicketType
	var keys []string
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		existing, err := tx.TicketType.GetTicketTypeByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTicketTypeNotFound
		}
		if err != nil {
			return fmt.Errorf("get ticket type: %w", err)
		}
		before = existing

		if s.storage != nil {
			if keys, err = tx.Attachment.ListObjectKeysByType(id); err != nil {
				return fmt.Errorf("list attachments: %w", err)
			}
		}
		if err := tx.TicketType.DeleteTicketType(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketTypeNotFound
			}
			return fmt.Errorf("delete ticket type: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	removeObjects(context.Background(), s.storage, keys)
	utils.LogAuditWithConsole(c, audit.ActionDelete, audit.ResourceTicketType, id, before, nil, "cascades to its tickets", s.Repos.Audit)
	s.events.Publish(EventTicketTypeDeleted, id)
	return nil
}

// FindOrCreateByName returns the type with that name, creating it on first use.
func (s *TicketTypeService) FindOrCreateByName(repos *repository.Repos, name string) (tickettype.TicketType, bool, error) {
	t, err := repos.TicketType.GetTicketTypeByName(name)
	if err == nil {
		return t, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return tickettype.TicketType{}, false, fmt.Errorf("find ticket type: %w", err)
	}

	t = tickettype.TicketType{Name: name}
	if err := repos.TicketType.CreateTicketType(&t); err != nil {
		return tickettype.TicketType{}, false, fmt.Errorf("create ticket type: %w", err)
	}
	return t, true, nil
}

// SeedFromFile creates the types listed in the YAML file when the table is empty.
// A missing file is not an error.
func (s *TicketTypeService) SeedFromFile(path string) (int, error) {
	var seed tickettype.SeedFile
	if err := utils.LoadYAMLFile(path, &seed); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("[seed] %s not found, skipping", path)
			return 0, nil
		}
		return 0, err
	}
	return s.Seed(seed.TicketTypes)
}

func (s *TicketTypeService) Seed(names []string) (int, error) {
	created := 0
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		n, err := tx.TicketType.CountTicketTypes()
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		seen := make(map[string]struct{}, len(names))
		for _, raw := range names {
			name := strings.TrimSpace(raw)
			if name == "" || utf8.RuneCountInString(name) > 100 {
				continue
			}
			if _, dup := seen[strings.ToLower(name)]; dup {
				continue
			}
			seen[strings.ToLower(name)] = struct{}{}
			t := tickettype.TicketType{Name: name}
			if err := tx.TicketType.CreateTicketType(&t); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed ticket types: %w", err)
	}
	return created, nil
}
