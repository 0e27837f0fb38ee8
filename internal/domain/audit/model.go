package audit

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

const (
	ResourceTicket     = "ticket"
	ResourceTicketType = "ticket_type"
	ResourceAttachment = "attachment"
)

type AuditLog struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       *string        `gorm:"type:uuid;index" json:"user_id"`
	Action       string         `gorm:"size:50;not null;index" json:"action"`
	ResourceType string         `gorm:"size:50;not null;index" json:"resource_type"`
	ResourceID   string         `gorm:"size:64;not null" json:"resource_id"`
	OldData      datatypes.JSON `json:"old_data,omitempty" swaggertype:"object"`
	NewData      datatypes.JSON `json:"new_data,omitempty" swaggertype:"object"`
	IPAddress    string         `gorm:"size:64" json:"ip_address"`
	UserAgent    string         `gorm:"size:255" json:"user_agent"`
	Description  string         `gorm:"size:255" json:"description"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Summarizer is implemented by audited records that can name themselves in one line.
type Summarizer interface {
	AuditSummary() string
}

// Describe renders the default description of an entry, such as
// `update ticket "Printer jam" [IN_PROGRESS]`. The newest state wins; note is appended in parentheses.
func Describe(action, resourceType string, before, after any, note string) string {
	desc := action + " " + resourceType
	if s, ok := after.(Summarizer); ok {
		desc += " " + s.AuditSummary()
	} else if s, ok := before.(Summarizer); ok {
		desc += " " + s.AuditSummary()
	}
	if note != "" {
		desc += " (" + note + ")"
	}
	if r := []rune(desc); len(r) > 255 {
		desc = string(r[:254]) + "…"
	}
	return desc
}
