package repository

import (
	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
	"gorm.io/gorm"
)

type AttachmentRepo interface {
	CreateAttachment(a *ticket.Attachment) error
	GetAttachment(ticketID, id string) (ticket.Attachment, error)
	ListAttachmentsByTicket(ticketID string) ([]ticket.Attachment, error)
	DeleteAttachment(id string) error
	ListObjectKeysByTicket(ticketID string) ([]string, error)
	ListObjectKeysByType(typeID string) ([]string, error)
	WithTx(tx *gorm.DB) AttachmentRepo
}

type DBAttachmentRepo struct {
	db *gorm.DB
}

func NewAttachmentRepo(db *gorm.DB) *DBAttachmentRepo {
	return &DBAttachmentRepo{
		db: db,
	}
}

func (r *DBAttachmentRepo) CreateAttachment(a *ticket.Attachment) error {
	return r.db.Omit("Ticket").Create(a).Error
}

func (r *DBAttachmentRepo) GetAttachment(ticketID, id string) (ticket.Attachment, error) {
	var a ticket.Attachment
	if err := r.db.Where("id = ? AND ticket_id = ?", id, ticketID).First(&a).Error; err != nil {
		return a, err
	}
	return a, nil
}

func (r *DBAttachmentRepo) ListAttachmentsByTicket(ticketID string) ([]ticket.Attachment, error) {
	var out []ticket.Attachment
	err := r.db.Where("ticket_id = ?", ticketID).Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *DBAttachmentRepo) DeleteAttachment(id string) error {
	return r.db.Where("id = ?", id).Delete(&ticket.Attachment{}).Error
}

func (r *DBAttachmentRepo) ListObjectKeysByTicket(ticketID string) ([]string, error) {
	var keys []string
	err := r.db.Model(&ticket.Attachment{}).Where("ticket_id = ?", ticketID).Pluck("object_key", &keys).Error
	return keys, err
}

func (r *DBAttachmentRepo) ListObjectKeysByType(typeID string) ([]string, error) {
	var keys []string
	err := r.db.Model(&ticket.Attachment{}).
		Joins("JOIN tickets ON tickets.id = ticket_attachments.ticket_id").
		Where("tickets.type_id = ?", typeID).
		Pluck("ticket_attachments.object_key", &keys).Error
	return keys, err
}

func (r *DBAttachmentRepo) WithTx(tx *gorm.DB) AttachmentRepo {
	if tx == nil {
		return r
	}
	return &DBAttachmentRepo{
		db: tx,
	}
}
