package repository

import (
	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
	"github.com/Sahindou/ifrit-ticket/internal/domain/tickettype"
	"gorm.io/gorm"
)

type TicketTypeRepo interface {
	CreateTicketType(t *tickettype.TicketType) error
	GetTicketTypeByID(id string) (tickettype.TicketType, error)
	GetTicketTypeByName(name string) (tickettype.TicketType, error)
	ListTicketTypes() ([]tickettype.TicketType, error)
	CountTicketTypes() (int64, error)
	SaveTicketType(t *tickettype.TicketType) error
	DeleteTicketType(id string) error
	WithTx(tx *gorm.DB) TicketTypeRepo
}

type DBTicketTypeRepo struct {
	db *gorm.DB
}

func NewTicketTypeRepo(db *gorm.DB) *DBTicketTypeRepo {
	return &DBTicketTypeRepo{
		db: db,
	}
}

func (r *DBTicketTypeRepo) CreateTicketType(t *tickettype.TicketType) error {
	return r.db.Create(t).Error
}

func (r *DBTicketTypeRepo) GetTicketTypeByID(id string) (tickettype.TicketType, error) {
	var t tickettype.TicketType
	if err := r.db.Where("id = ?", id).First(&t).Error; err != nil {
		return t, err
	}
	return t, nil
}

// GetTicketTypeByName matches case-insensitively and returns the oldest match on duplicates.
func (r *DBTicketTypeRepo) GetTicketTypeByName(name string) (tickettype.TicketType, error) {
	var t tickettype.TicketType
	if err := r.db.Where("LOWER(name) = LOWER(?)", name).Order("name ASC").Order("id ASC").First(&t).Error; err != nil {
		return t, err
	}
	return t, nil
}

func (r *DBTicketTypeRepo) ListTicketTypes() ([]tickettype.TicketType, error) {
	var types []tickettype.TicketType
	err := r.db.Order("name ASC").Order("id ASC").Find(&types).Error
	return types, err
}

func (r *DBTicketTypeRepo) CountTicketTypes() (int64, error) {
	var n int64
	err := r.db.Model(&tickettype.TicketType{}).Count(&n).Error
	return n, err
}

func (r *DBTicketTypeRepo) SaveTicketType(t *tickettype.TicketType) error {
	res := r.db.Model(t).Where("id = ?", t.ID).Select("*").Updates(t)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteTicketType removes the type together with its tickets and their attachment rows.
// The foreign keys cascade as well; the explicit deletes keep dialects without FK enforcement consistent.
func (r *DBTicketTypeRepo) DeleteTicketType(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		ticketIDs := tx.Model(&ticket.Ticket{}).Select("id").Where("type_id = ?", id)
		if err := tx.Where("ticket_id IN (?)", ticketIDs).Delete(&ticket.Attachment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("type_id = ?", id).Delete(&ticket.Ticket{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&tickettype.TicketType{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *DBTicketTypeRepo) WithTx(tx *gorm.DB) TicketTypeRepo {
	if tx == nil {
		return r
	}
	return &DBTicketTypeRepo{
		db: tx,
	}
}
