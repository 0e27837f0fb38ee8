package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Sahindou/ifrit-ticket/internal/config"
	"github.com/Sahindou/ifrit-ticket/pkg/response"
)

const serviceName = "ifrit-ticket"

type ServiceInfo struct {
	Name        string `json:"name" example:"ifrit-ticket"`
	Environment string `json:"environment" example:"development"`
	Docs        string `json:"docs" example:"/swagger/index.html"`
}

// Info godoc
// @Summary Service information
// @Tags health
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=ServiceInfo}
// @Router / [get]
func Info(c *gin.Context) {
	response.Success(c, http.StatusOK, "API is running", ServiceInfo{
		Name:        serviceName,
		Environment: config.Env,
		Docs:        "/swagger/index.html",
	})
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
