package tickettype

import (
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketType is a named category tickets belong to.
type TicketType struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}

func (TicketType) TableName() string {
	return "ticket_types"
}

func (t *TicketType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func (t TicketType) AuditSummary() string {
	return strconv.Quote(t.Name)
}
