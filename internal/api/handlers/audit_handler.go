package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/Sahindou/ifrit-ticket/internal/application"
	"github.com/Sahindou/ifrit-ticket/internal/repository"
	"github.com/Sahindou/ifrit-ticket/pkg/response"
	"github.com/Sahindou/ifrit-ticket/pkg/utils"
)

// totalCountHeader carries the number of entries matching the filters, across all pages.
const totalCountHeader = "X-Total-Count"

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

func optionalQuery(c *gin.Context, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}

func timeQuery(c *gin.Context, key string) (*time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetAuditLogs godoc
// @Summary      Query audit logs
// @Description  Audit entries filtered by user, resource, action and time range, newest first.
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        user_id       query     string   false  "User ID" format(uuid)
// @Param        resource_type query     string   false  "Resource type" example("ticket")
// @Param        resource_id   query     string   false  "Resource ID"
// @Param        action        query     string   false  "Action" example("create")
// @Param        start_time    query     string   false  "Start time, RFC3339" example("2025-01-01T00:00:00Z")
// @Param        end_time      query     string   false  "End time, RFC3339" example("2025-02-01T00:00:00Z")
// @Param        limit         query     int      false  "Max records (default 100, max 500)" example(100)
// @Param        offset        query     int      false  "Offset (default 0)" example(0)
// @Success      200 {object}  response.SuccessResponse{data=[]audit.AuditLog}
// @Header       200 {integer} X-Total-Count "Entries matching the filters"
// @Failure      400 {object}  response.ErrorResponse "Invalid query parameters"
// @Failure      401 {object}  response.ErrorResponse
// @Failure      403 {object}  response.ErrorResponse
// @Failure      500 {object}  response.ErrorResponse
// @Router       /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var params repository.AuditQueryParams

	if uid := optionalQuery(c, "user_id"); uid != nil {
		if _, err := uuid.Parse(*uid); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid user_id", err.Error())
			return
		}
		params.UserID = uid
	}
	params.ResourceType = optionalQuery(c, "resource_type")
	params.ResourceID = optionalQuery(c, "resource_id")
	params.Action = optionalQuery(c, "action")

	var err error
	if params.StartTime, err = timeQuery(c, "start_time"); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid start_time", err.Error())
		return
	}
	if params.EndTime, err = timeQuery(c, "end_time"); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid end_time", err.Error())
		return
	}

	if params.Limit, err = utils.ParseQueryIntParam(c, "limit"); err != nil && !errors.Is(err, utils.ErrEmptyParameter) {
		response.Error(c, http.StatusBadRequest, "Invalid limit", err.Error())
		return
	}
	if params.Offset, err = utils.ParseQueryIntParam(c, "offset"); err != nil && !errors.Is(err, utils.ErrEmptyParameter) {
		response.Error(c, http.StatusBadRequest, "Invalid offset", err.Error())
		return
	}

	page, err := h.svc.QueryAuditLogs(params)
	if err != nil {
		writeError(c, "Fetch audit logs", err)
		return
	}
	c.Header(totalCountHeader, strconv.FormatInt(page.Total, 10))
	response.Success(c, http.StatusOK, "Audit logs fetched", page.Logs)
}

// GetTicketHistory godoc
// @Summary      Ticket history
// @Description  Recorded changes of one ticket, newest first.
// @Tags         tickets
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      string  true  "Ticket ID" format(uuid)
// @Success      200 {object}  response.SuccessResponse{data=[]audit.AuditLog}
// @Failure      400 {object}  response.ErrorResponse "Invalid ticket id"
// @Failure      401 {object}  response.ErrorResponse
// @Failure      404 {object}  response.ErrorResponse "Ticket not found"
// @Failure      500 {object}  response.ErrorResponse
// @Router       /tickets/{id}/history [get]
func (h *AuditHandler) GetTicketHistory(c *gin.Context) {
	id, ok := uuidParam(c, "id", "ticket")
	if !ok {
		return
	}
	logs, err := h.svc.TicketHistory(id)
	if err != nil {
		writeError(c, "Fetch ticket history", err)
		return
	}
	response.Success(c, http.StatusOK, "Ticket history fetched", logs)
}
