package ticket

import (
	"fmt"
	"time"

	"github.com/Sahindou/ifrit-ticket/internal/domain/tickettype"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusToDo       Status = "TO_DO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// Statuses lists every status in board order.
var Statuses = []Status{StatusToDo, StatusInProgress, StatusDone}

func (s Status) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Next returns the status that follows s on the TO_DO -> IN_PROGRESS -> DONE cycle.
// Unknown values restart the cycle.
func (s Status) Next() Status {
	for i, st := range Statuses {
		if st == s {
			return Statuses[(i+1)%len(Statuses)]
		}
	}
	return StatusToDo
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities by urgency, LOW first.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	}
	return -1
}

type Ticket struct {
	ID            string                 `gorm:"type:uuid;primaryKey"`
	Title         string                 `gorm:"size:255;not null"`
	Description   string                 `gorm:"size:1000;not null"`
	Status        Status                 `gorm:"size:20;not null;default:TO_DO"`
	Priority      Priority               `gorm:"size:10;not null;default:LOW"`
	DueDate       *time.Time             `gorm:"column:due_date"`
	TypeID        string                 `gorm:"type:uuid;not null;index"`
	Type          *tickettype.TicketType `gorm:"foreignKey:TypeID;constraint:OnDelete:CASCADE"`
	ReporterEmail *string                `gorm:"size:255"`
	CreatedAt     time.Time              `gorm:"autoCreateTime;index"`
}

func (Ticket) TableName() string {
	return "tickets"
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// Attachment is a file stored in object storage and linked to a ticket.
type Attachment struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	TicketID    string    `gorm:"type:uuid;not null;index" json:"ticket_id"`
	Ticket      *Ticket   `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"-"`
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	ContentType string    `gorm:"size:100" json:"content_type"`
	Size        int64     `json:"size"`
	ObjectKey   string    `gorm:"size:512;not null" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (a Attachment) AuditSummary() string {
	return fmt.Sprintf("%q (%d bytes)", a.FileName, a.Size)
}

func (Attachment) TableName() string {
	return "ticket_attachments"
}

func (a *Attachment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
