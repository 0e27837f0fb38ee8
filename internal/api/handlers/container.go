package handlers

import (
	"github.com/Sahindou/ifrit-ticket/internal/application"
	"github.com/Sahindou/ifrit-ticket/internal/realtime"
)

type Handlers struct {
	Audit      *AuditHandler
	Auth       *AuthHandler
	Ticket     *TicketHandler
	TicketType *TicketTypeHandler
	Public     *PublicHandler
	Attachment *AttachmentHandler
	Board      *BoardHandler
}

func New(svc *application.Services, hub *realtime.Hub) *Handlers {
	return &Handlers{
		Audit:      NewAuditHandler(svc.Audit),
		Auth:       NewAuthHandler(svc.Auth),
		Ticket:     NewTicketHandler(svc.Ticket),
		TicketType: NewTicketTypeHandler(svc.TicketType),
		Public:     NewPublicHandler(svc.Public),
		Attachment: NewAttachmentHandler(svc.Attachment),
		Board:      NewBoardHandler(hub),
	}
}
