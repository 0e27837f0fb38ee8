package application

import (
	"github.com/Sahindou/ifrit-ticket/internal/repository"
)

type Services struct {
	Audit      *AuditService
	Auth       *AuthService
	Ticket     *TicketService
	TicketType *TicketTypeService
	Public     *PublicService
	Attachment *AttachmentService
}

func New(repos *repository.Repos, deps Dependencies) *Services {
	if deps.Events == nil {
		deps.Events = noopPublisher{}
	}
	ticketTypes := NewTicketTypeService(repos, deps.Events, deps.Storage)
	tickets := NewTicketService(repos, deps.Events, deps.Storage)
	return &Services{
		Audit:      NewAuditService(repos),
		Auth:       NewAuthService(repos),
		Ticket:     tickets,
		TicketType: ticketTypes,
		Public:     NewPublicService(repos, ticketTypes, tickets, deps.Notifier),
		Attachment: NewAttachmentService(repos, deps.Storage),
	}
}
