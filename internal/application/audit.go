package application

import (
	"errors"
	"fmt"

	"github.com/Sahindou/ifrit-ticket/internal/domain/audit"
	"github.com/Sahindou/ifrit-ticket/internal/repository"
	"gorm.io/gorm"
)

const (
	defaultAuditPageSize = 100
	maxAuditPageSize     = 500
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

// AuditPage is one page of entries plus the number of entries matching the filters.
type AuditPage struct {
	Logs  []audit.AuditLog
	Total int64
}

func (s *AuditService) QueryAuditLogs(params repository.AuditQueryParams) (AuditPage, error) {
	switch {
	case params.Limit <= 0:
		params.Limit = defaultAuditPageSize
	case params.Limit > maxAuditPageSize:
		params.Limit = maxAuditPageSize
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	logs, err := s.Repos.Audit.GetAuditLogs(params)
	if err != nil {
		return AuditPage{}, fmt.Errorf("query audit logs: %w", err)
	}
	total, err := s.Repos.Audit.CountAuditLogs(params)
	if err != nil {
		return AuditPage{}, fmt.Errorf("count audit logs: %w", err)
	}
	if logs == nil {
		logs = []audit.AuditLog{}
	}
	return AuditPage{Logs: logs, Total: total}, nil
}

// TicketHistory lists the recorded changes of one ticket, newest first.
func (s *AuditService) TicketHistory(ticketID string) ([]audit.AuditLog, error) {
	_, err := s.Repos.Ticket.GetTicketByID(ticketID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	resourceType := audit.ResourceTicket
	page, err := s.QueryAuditLogs(repository.AuditQueryParams{
		ResourceType: &resourceType,
		ResourceID:   &ticketID,
		Limit:        maxAuditPageSize,
	})
	if err != nil {
		return nil, err
	}
	return page.Logs, nil
}

// CleanupOldLogs drops entries older than days and reports how many went.
func (s *AuditService) CleanupOldLogs(days int) (int64, error) {
	return s.Repos.Audit.DeleteOldAuditLogs(days)
}
