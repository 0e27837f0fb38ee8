package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Sahindou/ifrit-ticket/internal/application"
	"github.com/Sahindou/ifrit-ticket/pkg/response"
	"github.com/Sahindou/ifrit-ticket/pkg/utils"
)

// bindJSON binds the body and writes a 400 with per-field messages on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if fields, ok := utils.ValidationMessages(err); ok {
			response.Error(c, http.StatusBadRequest, "Invalid input: "+utils.JoinMessages(fields), fields)
			return false
		}
		response.Error(c, http.StatusBadRequest, "Invalid input", err.Error())
		return false
	}
	return true
}

func uuidParam(c *gin.Context, param, what string) (string, bool) {
	id, err := utils.ParseUUIDParam(c, param)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid "+what+" id", err.Error())
		return "", false
	}
	return id, true
}

// writeError maps service errors onto the envelope. op names the operation for 500s.
func writeError(c *gin.Context, op string, err error) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Error(c, http.StatusBadRequest, "Invalid input: "+verr.Error(), verr.Fields)
	case errors.Is(err, application.ErrTicketNotFound),
		errors.Is(err, application.ErrTicketTypeNotFound),
		errors.Is(err, application.ErrAttachmentNotFound),
		errors.Is(err, application.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, capitalize(err.Error()), nil)
	case errors.Is(err, application.ErrInvalidCredentials),
		errors.Is(err, application.ErrMissingRefreshToken):
		response.Error(c, http.StatusUnauthorized, capitalize(err.Error()), nil)
	case errors.Is(err, application.ErrRefreshTokenInvalid):
		response.Error(c, http.StatusForbidden, capitalize(err.Error()), nil)
	case errors.Is(err, application.ErrEmailTaken):
		response.Error(c, http.StatusConflict, capitalize(err.Error()), nil)
	case errors.Is(err, application.ErrStorageDisabled):
		response.Error(c, http.StatusServiceUnavailable, capitalize(err.Error()), nil)
	default:
		log.Printf("[%s] %v", op, err)
		response.Error(c, http.StatusInternalServerError, op+" failed", err.Error())
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
