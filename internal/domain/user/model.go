package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
)

type User struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Pseudo       string    `gorm:"size:50;not null"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	Password     string    `gorm:"size:255;not null"`
	Role         Role      `gorm:"size:20;not null;default:USER"`
	TokenVersion int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
