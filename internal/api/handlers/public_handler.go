package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Sahindou/ifrit-ticket/internal/application"
	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
	"github.com/Sahindou/ifrit-ticket/pkg/response"
)

type PublicHandler struct {
	svc *application.PublicService
}

func NewPublicHandler(svc *application.PublicService) *PublicHandler {
	return &PublicHandler{svc: svc}
}

// SubmitTicket godoc
// @Summary Submit a ticket without an account
// @Description Files a TO_DO ticket of type incident or amélioration and acknowledges it by mail.
// @Tags public
// @Accept json
// @Produce json
// @Param input body ticket.PublicSubmissionInput true "Submission"
// @Success 201 {object} response.SuccessResponse{data=ticket.IDDTO}
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /public/tickets [post]
func (h *PublicHandler) SubmitTicket(c *gin.Context) {
	var input ticket.PublicSubmissionInput
	if !bindJSON(c, &input) {
		return
	}
	t, err := h.svc.SubmitTicket(c, input)
	if err != nil {
		writeError(c, "Submit ticket", err)
		return
	}
	response.Success(c, http.StatusCreated, "Ticket submitted", ticket.IDDTO{ID: t.ID})
}
