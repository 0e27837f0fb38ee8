package repository

import (
	"errors"
	"time"

	"github.com/Sahindou/ifrit-ticket/internal/domain/token"
	"gorm.io/gorm"
)

type RefreshTokenRepo interface {
	SaveRefreshToken(t *token.RefreshToken) error
	RefreshTokenExists(hash string) (bool, error)
	// DeleteRefreshToken reports whether a row was actually removed.
	DeleteRefreshToken(hash string) (bool, error)
	DeleteRefreshTokensByUser(userID string) error
	DeleteExpiredRefreshTokens(now time.Time) (int64, error)
	WithTx(tx *gorm.DB) RefreshTokenRepo
}

type DBRefreshTokenRepo struct {
	db *gorm.DB
}

func NewRefreshTokenRepo(db *gorm.DB) *DBRefreshTokenRepo {
	return &DBRefreshTokenRepo{
		db: db,
	}
}

func (r *DBRefreshTokenRepo) SaveRefreshToken(t *token.RefreshToken) error {
	return r.db.Create(t).Error
}

func (r *DBRefreshTokenRepo) RefreshTokenExists(hash string) (bool, error) {
	var t token.RefreshToken
	err := r.db.Select("token_hash").Where("token_hash = ?", hash).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *DBRefreshTokenRepo) DeleteRefreshToken(hash string) (bool, error) {
	res := r.db.Where("token_hash = ?", hash).Delete(&token.RefreshToken{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *DBRefreshTokenRepo) DeleteRefreshTokensByUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&token.RefreshToken{}).Error
}

func (r *DBRefreshTokenRepo) DeleteExpiredRefreshTokens(now time.Time) (int64, error) {
	res := r.db.Where("expires_at <= ?", now).Delete(&token.RefreshToken{})
	return res.RowsAffected, res.Error
}

func (r *DBRefreshTokenRepo) WithTx(tx *gorm.DB) RefreshTokenRepo {
	if tx == nil {
		return r
	}
	return &DBRefreshTokenRepo{
		db: tx,
	}
}
