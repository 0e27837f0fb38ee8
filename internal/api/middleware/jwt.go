package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/Sahindou/ifrit-ticket/internal/config"
	"github.com/Sahindou/ifrit-ticket/internal/domain/user"
	"github.com/Sahindou/ifrit-ticket/pkg/response"
	"github.com/Sahindou/ifrit-ticket/pkg/types"
)

var (
	accessKey  []byte
	refreshKey []byte

	ErrInvalidToken = errors.New("invalid token")
)

// Init sets the JWT signing keys.
func Init() {
	accessKey = []byte(config.AccessTokenSecret)
	refreshKey = []byte(config.RefreshTokenSecret)
}

// GenerateAccessToken issues a short-lived token carrying the user's id and role.
var GenerateAccessToken = func(userID string, role user.Role) (string, error) {
	now := time.Now()
	claims := &types.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(config.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(accessKey)
}

// GenerateRefreshToken issues a long-lived token bound to the user's current token version.
var GenerateRefreshToken = func(userID string, tokenVersion int) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(config.RefreshTokenTTL)
	claims := &types.RefreshClaims{
		UserID:       userID,
		TokenVersion: tokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(refreshKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func parseWith(tokenStr string, claims jwt.Claims, key []byte) error {
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return err
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

// ParseAccessToken validates an access token and extracts its claims.
func ParseAccessToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}
	if err := parseWith(tokenStr, claims, accessKey); err != nil {
		return nil, err
	}
	return claims, nil
}

// ParseRefreshToken validates a refresh token and extracts its claims.
var ParseRefreshToken = func(tokenStr string) (*types.RefreshClaims, error) {
	claims := &types.RefreshClaims{}
	if err := parseWith(tokenStr, claims, refreshKey); err != nil {
		return nil, err
	}
	return claims, nil
}

func accessTokenFrom(c *gin.Context) string {
	if cookie, err := c.Cookie(config.AccessCookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// AccessTokenMiddleware reads the access token from its cookie or a Bearer header.
// A missing token is 401, an invalid or expired one 403.
func AccessTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := accessTokenFrom(c)
		if tokenStr == "" {
			response.AbortError(c, http.StatusUnauthorized, "Access token missing", nil)
			return
		}

		claims, err := ParseAccessToken(tokenStr)
		if err != nil {
			response.AbortError(c, http.StatusForbidden, "Invalid or expired access token", err.Error())
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}
