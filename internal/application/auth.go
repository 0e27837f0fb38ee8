package application

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Sahindou/ifrit-ticket/internal/api/middleware"
	"github.com/Sahindou/ifrit-ticket/internal/domain/token"
	"github.com/Sahindou/ifrit-ticket/internal/domain/user"
	"github.com/Sahindou/ifrit-ticket/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const passwordHashCost = 10

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthService struct {
	Repos *repository.Repos
}

func NewAuthService(repos *repository.Repos) *AuthService {
	return &AuthService{
		Repos: repos,
	}
}

// issuePair signs a new access/refresh pair and records the refresh token as known.
func issuePair(repos *repository.Repos, u user.User) (TokenPair, error) {
	access, err := middleware.GenerateAccessToken(u.ID, u.Role)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}
	refresh, expiresAt, err := middleware.GenerateRefreshToken(u.ID, u.TokenVersion)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	record := &token.RefreshToken{
		TokenHash: token.Hash(refresh),
		UserID:    u.ID,
		ExpiresAt: expiresAt,
	}
	if err := repos.RefreshToken.SaveRefreshToken(record); err != nil {
		return TokenPair{}, fmt.Errorf("store refresh token: %w", err)
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) Login(input user.LoginInput) (user.User, TokenPair, error) {
	u, err := s.Repos.User.GetUserByEmail(strings.TrimSpace(input.Email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		return user.User{}, TokenPair{}, fmt.Errorf("find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(strings.TrimSpace(input.Password))); err != nil {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := issuePair(s.Repos, u)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}
	return u, pair, nil
}

func (s *AuthService) Register(input user.RegisterInput) (user.User, TokenPair, error) {
	email := strings.TrimSpace(input.Email)
	_, err := s.Repos.User.GetUserByEmail(email)
	if err == nil {
		return user.User{}, TokenPair{}, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, TokenPair{}, fmt.Errorf("find user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(input.Password)), passwordHashCost)
	if err != nil {
		return user.User{}, TokenPair{}, fmt.Errorf("hash password: %w", err)
	}

	u := user.User{
		Email:        email,
		Password:     string(hashed),
		Pseudo:       strings.TrimSpace(input.Pseudo),
		Role:         user.RoleUser,
		TokenVersion: 0,
	}

	var pair TokenPair
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.User.CreateUser(&u); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		pair, err = issuePair(tx, u)
		return err
	})
	if err != nil {
		return user.User{}, TokenPair{}, err
	}
	return u, pair, nil
}

// Refresh exchanges a known refresh token for a new pair. The old token is revoked in the
// same transaction that records the new one; losing a concurrent rotation yields ErrRefreshTokenInvalid.
func (s *AuthService) Refresh(raw string) (TokenPair, error) {
	if raw == "" {
		return TokenPair{}, ErrMissingRefreshToken
	}
	hash := token.Hash(raw)

	known, err := s.Repos.RefreshToken.RefreshTokenExists(hash)
	if err != nil {
		return TokenPair{}, fmt.Errorf("lookup refresh token: %w", err)
	}
	if !known {
		return TokenPair{}, ErrRefreshTokenInvalid
	}

	claims, err := middleware.ParseRefreshToken(raw)
	if err != nil {
		return TokenPair{}, ErrRefreshTokenInvalid
	}

	u, err := s.Repos.User.GetUserByID(claims.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return TokenPair{}, ErrUserNotFound
	}
	if err != nil {
		return TokenPair{}, fmt.Errorf("find user: %w", err)
	}

	if claims.TokenVersion != u.TokenVersion {
		if _, err := s.Repos.RefreshToken.DeleteRefreshToken(hash); err != nil {
			log.Printf("[auth] revoke stale refresh token: %v", err)
		}
		return TokenPair{}, ErrRefreshTokenInvalid
	}

	var pair TokenPair
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		deleted, err := tx.RefreshToken.DeleteRefreshToken(hash)
		if err != nil {
			return fmt.Errorf("revoke refresh token: %w", err)
		}
		if !deleted {
			return ErrRefreshTokenInvalid
		}
		pair, err = issuePair(tx, u)
		return err
	})
	if err != nil {
		return TokenPair{}, err
	}
	return pair, nil
}

// Logout revokes the refresh token when it is known. Unknown tokens are ignored.
func (s *AuthService) Logout(raw string) {
	if raw == "" {
		return
	}
	if _, err := s.Repos.RefreshToken.DeleteRefreshToken(token.Hash(raw)); err != nil {
		log.Printf("[auth] logout revoke: %v", err)
	}
}

// LogoutAll bumps the user's token version and forgets all their refresh tokens.
func (s *AuthService) LogoutAll(userID string) error {
	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.User.IncrementTokenVersion(userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("bump token version: %w", err)
		}
		if err := tx.RefreshToken.DeleteRefreshTokensByUser(userID); err != nil {
			return fmt.Errorf("revoke refresh tokens: %w", err)
		}
		return nil
	})
}

func (s *AuthService) Me(userID string) (user.User, error) {
	u, err := s.Repos.User.GetUserByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, ErrUserNotFound
	}
	if err != nil {
		return user.User{}, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

// PurgeExpiredTokens drops refresh-token records past their expiry.
func (s *AuthService) PurgeExpiredTokens() (int64, error) {
	return s.Repos.RefreshToken.DeleteExpiredRefreshTokens(time.Now())
}
