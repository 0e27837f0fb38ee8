package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Ticket       TicketRepo
	TicketType   TicketTypeRepo
	User         UserRepo
	RefreshToken RefreshTokenRepo
	Attachment   AttachmentRepo
	Audit        AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Ticket:       NewTicketRepo(db),
		TicketType:   NewTicketTypeRepo(db),
		User:         NewUserRepo(db),
		RefreshToken: NewRefreshTokenRepo(db),
		Attachment:   NewAttachmentRepo(db),
		Audit:        NewAuditRepo(db),
		db:           db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Ticket:       r.Ticket.WithTx(tx),
		TicketType:   r.TicketType.WithTx(tx),
		User:         r.User.WithTx(tx),
		RefreshToken: r.RefreshToken.WithTx(tx),
		Attachment:   r.Attachment.WithTx(tx),
		Audit:        r.Audit.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn against repositories bound to a single transaction.
// Containers assembled by hand without a database (mocks in tests) run fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
