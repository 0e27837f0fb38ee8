package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/Sahindou/ifrit-ticket/internal/domain/user"
)

// Claims is carried by access tokens and stored in the gin context under "claims".
type Claims struct {
	UserID string    `json:"userId"`
	Role   user.Role `json:"role"`
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	UserID       string `json:"userId"`
	TokenVersion int    `json:"tokenVersion"`
	jwt.RegisteredClaims
}
