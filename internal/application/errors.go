package application

import (
	"errors"

	"github.com/Sahindou/ifrit-ticket/pkg/utils"
)

var (
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrUserNotFound       = errors.New("user not found")

	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailTaken          = errors.New("email already in use")
	ErrMissingRefreshToken = errors.New("refresh token missing")
	ErrRefreshTokenInvalid = errors.New("refresh token invalid")

	ErrStorageDisabled = errors.New("attachment storage is not configured")
)

// ValidationError carries per-field messages for input the binding layer could not reject on its own.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return utils.JoinMessages(e.Fields)
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
