package token

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// RefreshToken is a known, unrevoked refresh token. The raw token never hits the table.
type RefreshToken struct {
	TokenHash string    `gorm:"size:64;primaryKey"`
	UserID    string    `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func Hash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
