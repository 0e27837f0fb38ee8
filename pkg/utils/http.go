package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	ErrEmptyParameter = errors.New("empty parameter")
	ErrInvalidUUID    = errors.New("invalid uuid")
)

// ParseUUIDParam reads a path parameter that must hold a UUID and returns its canonical form.
func ParseUUIDParam(c *gin.Context, param string) (string, error) {
	raw := c.Param(param)
	if raw == "" {
		return "", ErrEmptyParameter
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", ErrInvalidUUID
	}
	return id.String(), nil
}

func ParseQueryIntParam(c *gin.Context, param string) (int, error) {
	valStr := c.Query(param)
	if valStr == "" {
		return 0, ErrEmptyParameter
	}
	return strconv.Atoi(valStr)
}
