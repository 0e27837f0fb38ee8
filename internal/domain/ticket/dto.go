package ticket

import (
	"fmt"
	"time"
)

type CreateTicketInput struct {
	Title       string    `json:"title" binding:"required,notblank,max=255" example:"Printer on fire"`
	Description string    `json:"description" binding:"required,notblank,max=1000" example:"Third floor printer is smoking"`
	Status      *Status   `json:"status" binding:"omitempty,oneof=TO_DO IN_PROGRESS DONE" example:"TO_DO"`
	Priority    *Priority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH" example:"HIGH"`
	DueDate     *string   `json:"due_date" binding:"omitempty,duedate" example:"25-12-2025"`
	TypeID      string    `json:"type_id" binding:"required,uuid" example:"3f1c2a9e-8d4b-4c8e-9a51-0f6b2d7c1e44"`
}

type UpdateTicketInput struct {
	Title       *string   `json:"title" binding:"omitempty,notblank,max=255"`
	Description *string   `json:"description" binding:"omitempty,notblank,max=1000"`
	Status      *Status   `json:"status" binding:"omitempty,oneof=TO_DO IN_PROGRESS DONE"`
	Priority    *Priority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate     *string   `json:"due_date" binding:"omitempty,duedate"`
	TypeID      *string   `json:"type_id" binding:"omitempty,uuid"`
}

type PublicTicketKind string

const (
	PublicKindIncident    PublicTicketKind = "incident"
	PublicKindImprovement PublicTicketKind = "amélioration"
)

// PublicSubmissionInput is what the unauthenticated submission form posts.
type PublicSubmissionInput struct {
	Email       string           `json:"email" binding:"required,email" example:"jane@example.com"`
	Title       string           `json:"title" binding:"required,notblank,max=255"`
	Description string           `json:"description" binding:"required,notblank,max=1000"`
	Type        PublicTicketKind `json:"type" binding:"required,oneof=incident amélioration" example:"incident"`
}

type TicketDTO struct {
	ID            string    `json:"id" example:"9b0f1d8e-4a52-4d0b-8d1e-2c7f3a6b5e10"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Status        Status    `json:"status" example:"TO_DO"`
	Priority      Priority  `json:"priority" example:"LOW"`
	DueDate       *string   `json:"due_date" example:"25-12-2025"`
	TypeID        string    `json:"type_id"`
	ReporterEmail *string   `json:"reporter_email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (t TicketDTO) AuditSummary() string {
	return fmt.Sprintf("%q [%s]", t.Title, t.Status)
}

type IDDTO struct {
	ID string `json:"id"`
}

func NewTicketDTO(t Ticket) TicketDTO {
	return TicketDTO{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        t.Status,
		Priority:      t.Priority,
		DueDate:       FormatDueDate(t.DueDate),
		TypeID:        t.TypeID,
		ReporterEmail: t.ReporterEmail,
		CreatedAt:     t.CreatedAt,
	}
}

func NewTicketDTOs(ts []Ticket) []TicketDTO {
	out := make([]TicketDTO, 0, len(ts))
	for _, t := range ts {
		out = append(out, NewTicketDTO(t))
	}
	return out
}
