package repository

import (
	"time"

	"github.com/Sahindou/ifrit-ticket/internal/domain/audit"
	"gorm.io/gorm"
)

type AuditQueryParams struct {
	UserID       *string
	ResourceType *string
	ResourceID   *string
	Action       *string
	StartTime    *time.Time
	EndTime      *time.Time
	Limit        int
	Offset       int
}

type AuditRepo interface {
	GetAuditLogs(params AuditQueryParams) ([]audit.AuditLog, error)
	CountAuditLogs(params AuditQueryParams) (int64, error)
	CreateAuditLog(audit *audit.AuditLog) error
	DeleteOldAuditLogs(retentionDays int) (int64, error)
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{
		db: db,
	}
}

// DeleteOldAuditLogs drops entries older than the retention window and reports how many went.
func (r *DBAuditRepo) DeleteOldAuditLogs(retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	res := r.db.Where("created_at < ?", cutoff).Delete(&audit.AuditLog{})
	return res.RowsAffected, res.Error
}

// matching narrows a query to the entries selected by p, ignoring paging.
func matching(p AuditQueryParams) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		filters := []struct {
			column string
			value  *string
		}{
			{"user_id", p.UserID},
			{"resource_type", p.ResourceType},
			{"resource_id", p.ResourceID},
			{"action", p.Action},
		}
		for _, f := range filters {
			if f.value != nil {
				q = q.Where(f.column+" = ?", *f.value)
			}
		}
		if p.StartTime != nil {
			q = q.Where("created_at >= ?", *p.StartTime)
		}
		if p.EndTime != nil {
			q = q.Where("created_at <= ?", *p.EndTime)
		}
		return q
	}
}

// GetAuditLogs returns one page of matching entries, newest first.
func (r *DBAuditRepo) GetAuditLogs(params AuditQueryParams) ([]audit.AuditLog, error) {
	var logs []audit.AuditLog
	query := r.db.Model(&audit.AuditLog{}).
		Scopes(matching(params)).
		Order("created_at DESC").
		Order("id DESC")
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}
	err := query.Find(&logs).Error
	return logs, err
}

func (r *DBAuditRepo) CountAuditLogs(params AuditQueryParams) (int64, error) {
	var n int64
	err := r.db.Model(&audit.AuditLog{}).Scopes(matching(params)).Count(&n).Error
	return n, err
}

func (r *DBAuditRepo) CreateAuditLog(audit *audit.AuditLog) error {
	return r.db.Create(audit).Error
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{
		db: tx,
	}
}
