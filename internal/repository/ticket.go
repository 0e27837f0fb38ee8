package repository

import (
	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TicketRepo interface {
	CreateTicket(t *ticket.Ticket) error
	GetTicketByID(id string) (ticket.Ticket, error)
	ListTickets() ([]ticket.Ticket, error)
	SaveTicket(t *ticket.Ticket) error
	DeleteTicket(id string) error
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{
		db: db,
	}
}

func (r *DBTicketRepo) CreateTicket(t *ticket.Ticket) error {
	return r.db.Omit(clause.Associations).Create(t).Error
}

func (r *DBTicketRepo) GetTicketByID(id string) (ticket.Ticket, error) {
	var t ticket.Ticket
	if err := r.db.Where("id = ?", id).First(&t).Error; err != nil {
		return t, err
	}
	return t, nil
}

func (r *DBTicketRepo) ListTickets() ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Order("created_at ASC").Order("id ASC").Find(&tickets).Error
	return tickets, err
}

// SaveTicket writes every column of an existing ticket. A ticket deleted in the
// meantime is reported as gorm.ErrRecordNotFound and never re-created.
func (r *DBTicketRepo) SaveTicket(t *ticket.Ticket) error {
	res := r.db.Model(t).Where("id = ?", t.ID).Select("*").Omit(clause.Associations).Updates(t)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteTicket removes the ticket and its attachment rows. Stored objects are the caller's concern.
func (r *DBTicketRepo) DeleteTicket(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", id).Delete(&ticket.Attachment{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&ticket.Ticket{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{
		db: tx,
	}
}
