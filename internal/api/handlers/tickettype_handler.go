package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Sahindou/ifrit-ticket/internal/application"
	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
	"github.com/Sahindou/ifrit-ticket/internal/domain/tickettype"
	"github.com/Sahindou/ifrit-ticket/pkg/response"
)

type TicketTypeHandler struct {
	svc *application.TicketTypeService
}

func NewTicketTypeHandler(svc *application.TicketTypeService) *TicketTypeHandler {
	return &TicketTypeHandler{svc: svc}
}

// GetTicketTypes godoc
// @Summary List ticket types
// @Tags type-tickets
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=[]tickettype.TicketType}
// @Failure 500 {object} response.ErrorResponse
// @Router /type-tickets [get]
func (h *TicketTypeHandler) GetTicketTypes(c *gin.Context) {
	types, err := h.svc.ListTicketTypes()
	if err != nil {
		writeError(c, "Fetch ticket types", err)
		return
	}
	if types == nil {
		types = []tickettype.TicketType{}
	}
	response.Success(c, http.StatusOK, "Ticket types fetched", types)
}

// GetTicketType godoc
// @Summary Get ticket type by ID
// @Tags type-tickets
// @Produce json
// @Param id path string true "Ticket type ID" format(uuid)
// @Success 200 {object} response.SuccessResponse{data=tickettype.TicketType}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /type-tickets/{id} [get]
func (h *TicketTypeHandler) GetTicketType(c *gin.Context) {
	id, ok := uuidParam(c, "id", "ticket type")
	if !ok {
		return
	}
	tt, err := h.svc.GetTicketType(id)
	if err != nil {
		writeError(c, "Fetch ticket type", err)
		return
	}
	response.Success(c, http.StatusOK, "Ticket type fetched", tt)
}

// CreateTicketType godoc
// @Summary Create a ticket type
// @Tags type-tickets
// @Accept json
// @Produce json
// @Param input body tickettype.CreateTicketTypeInput true "Ticket type"
// @Success 201 {object} response.SuccessResponse{data=ticket.IDDTO}
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /type-tickets [post]
func (h *TicketTypeHandler) CreateTicketType(c *gin.Context) {
	var input tickettype.CreateTicketTypeInput
	if !bindJSON(c, &input) {
		return
	}
	tt, err := h.svc.CreateTicketType(c, input)
	if err != nil {
		writeError(c, "Create ticket type", err)
		return
	}
	response.Success(c, http.StatusCreated, "Ticket type created", ticket.IDDTO{ID: tt.ID})
}

// UpdateTicketType godoc
// @Summary Rename a ticket type
// @Tags type-tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket type ID" format(uuid)
// @Param input body tickettype.UpdateTicketTypeInput true "Fields to change"
// @Success 200 {object} response.SuccessResponse{data=ticket.IDDTO}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /type-tickets/{id} [put]
func (h *TicketTypeHandler) UpdateTicketType(c *gin.Context) {
	id, ok := uuidParam(c, "id", "ticket type")
	if !ok {
		return
	}
	var input tickettype.UpdateTicketTypeInput
	if !bindJSON(c, &input) {
		return
	}
	tt, err := h.svc.UpdateTicketType(c, id, input)
	if err != nil {
		writeError(c, "Update ticket type", err)
		return
	}
	response.Success(c, http.StatusOK, "Ticket type updated", ticket.IDDTO{ID: tt.ID})
}

// DeleteTicketType godoc
// @Summary Delete a ticket type
// @Description Tickets of this type are deleted with it.
// @Tags type-tickets
// @Produce json
// @Param id path string true "Ticket type ID" format(uuid)
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /type-tickets/{id} [delete]
func (h *TicketTypeHandler) DeleteTicketType(c *gin.Context) {
	id, ok := uuidParam(c, "id", "ticket type")
	if !ok {
		return
	}
	if err := h.svc.DeleteTicketType(c, id); err != nil {
		writeError(c, "Delete ticket type", err)
		return
	}
	response.Success(c, http.StatusOK, "Ticket type deleted", nil)
}
