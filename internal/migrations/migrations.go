package migrations

import (
	"log"

	"github.com/Sahindou/ifrit-ticket/internal/domain/audit"
	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
	"github.com/Sahindou/ifrit-ticket/internal/domain/tickettype"
	"github.com/Sahindou/ifrit-ticket/internal/domain/token"
	"github.com/Sahindou/ifrit-ticket/internal/domain/user"
	"gorm.io/gorm"
)

// Models lists every persisted model, parents before children.
func Models() []interface{} {
	return []interface{}{
		&user.User{},
		&tickettype.TicketType{},
		&ticket.Ticket{},
		&ticket.Attachment{},
		&token.RefreshToken{},
		&audit.AuditLog{},
	}
}

// Run creates or updates every table, including the refresh-token store.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	log.Println("AutoMigrate completed")
	return nil
}

// Reset drops and recreates every table. Used by integration tests.
func Reset(db *gorm.DB) error {
	models := Models()
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			return err
		}
	}
	return Run(db)
}
