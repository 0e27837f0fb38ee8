package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Sahindou/ifrit-ticket/internal/application"
	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
	"github.com/Sahindou/ifrit-ticket/pkg/response"
)

type TicketHandler struct {
	svc *application.TicketService
}

func NewTicketHandler(svc *application.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// GetTickets godoc
// @Summary List tickets
// @Description Tickets ordered by creation date, oldest first.
// @Tags tickets
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=[]ticket.TicketDTO}
// @Failure 500 {object} response.ErrorResponse
// @Router /tickets [get]
func (h *TicketHandler) GetTickets(c *gin.Context) {
	tickets, err := h.svc.ListTickets()
	if err != nil {
		writeError(c, "Fetch tickets", err)
		return
	}
	response.Success(c, http.StatusOK, "Tickets fetched", ticket.NewTicketDTOs(tickets))
}

// GetTicket godoc
// @Summary Get ticket by ID
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID" format(uuid)
// @Success 200 {object} response.SuccessResponse{data=ticket.TicketDTO}
// @Failure 400 {object} response.ErrorResponse "Invalid ticket id"
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, ok := uuidParam(c, "id", "ticket")
	if !ok {
		return
	}
	t, err := h.svc.GetTicket(id)
	if err != nil {
		writeError(c, "Fetch ticket", err)
		return
	}
	response.Success(c, http.StatusOK, "Ticket fetched", ticket.NewTicketDTO(t))
}

// CreateTicket godoc
// @Summary Create a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param input body ticket.CreateTicketInput true "Ticket"
// @Success 201 {object} response.SuccessResponse{data=ticket.IDDTO}
// @Failure 400 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var input ticket.CreateTicketInput
	if !bindJSON(c, &input) {
		return
	}
	t, err := h.svc.CreateTicket(c, input)
	if err != nil {
		writeError(c, "Create ticket", err)
		return
	}
	response.Success(c, http.StatusCreated, "Ticket created", ticket.IDDTO{ID: t.ID})
}

// UpdateTicket godoc
// @Summary Update a ticket
// @Description Partial update: absent fields are left unchanged.
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID" format(uuid)
// @Param input body ticket.UpdateTicketInput true "Fields to change"
// @Success 200 {object} response.SuccessResponse{data=ticket.IDDTO}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	id, ok := uuidParam(c, "id", "ticket")
	if !ok {
		return
	}
	var input ticket.UpdateTicketInput
	if !bindJSON(c, &input) {
		return
	}
	t, err := h.svc.UpdateTicket(c, id, input)
	if err != nil {
		writeError(c, "Update ticket", err)
		return
	}
	response.Success(c, http.StatusOK, "Ticket updated", ticket.IDDTO{ID: t.ID})
}

// DeleteTicket godoc
// @Summary Delete a ticket
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID" format(uuid)
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	id, ok := uuidParam(c, "id", "ticket")
	if !ok {
		return
	}
	if err := h.svc.DeleteTicket(c, id); err != nil {
		writeError(c, "Delete ticket", err)
		return
	}
	response.Success(c, http.StatusOK, "Ticket deleted", nil)
}
