package response

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/Sahindou/ifrit-ticket/internal/config"
)

const timestampLayout = "2006-01-02T15:04:05.000Z"

type SuccessResponse struct {
	Success   bool        `json:"success" example:"true"`
	Message   string      `json:"message" example:"Tickets fetched"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp" example:"2025-07-17T15:20:41.000Z"`
}

type ErrorResponse struct {
	Success   bool        `json:"success" example:"false"`
	Message   string      `json:"message" example:"Ticket not found"`
	Error     interface{} `json:"error,omitempty"`
	Timestamp string      `json:"timestamp" example:"2025-07-17T15:20:41.000Z"`
	Code      int         `json:"code,omitempty" example:"404"`
}

func now() string {
	return time.Now().UTC().Format(timestampLayout)
}

func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, SuccessResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: now(),
	})
}

// Error writes the failure envelope with code set to status. detail is dropped in production.
func Error(c *gin.Context, status int, message string, detail interface{}) {
	body := ErrorResponse{
		Message:   message,
		Timestamp: now(),
		Code:      status,
	}
	if !config.IsProduction {
		body.Error = detail
	}
	c.JSON(status, body)
}

// AbortError is Error for middleware: the chain stops after the write.
func AbortError(c *gin.Context, status int, message string, detail interface{}) {
	Error(c, status, message, detail)
	c.Abort()
}
