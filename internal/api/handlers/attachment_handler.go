package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Sahindou/ifrit-ticket/internal/application"
	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
	"github.com/Sahindou/ifrit-ticket/pkg/response"
)

type AttachmentHandler struct {
	svc *application.AttachmentService
}

func NewAttachmentHandler(svc *application.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

// UploadAttachment godoc
// @Summary Attach a file to a ticket
// @Tags attachments
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Ticket ID" format(uuid)
// @Param file formData file true "File to attach"
// @Success 201 {object} response.SuccessResponse{data=ticket.Attachment}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse "Storage not configured"
// @Router /tickets/{id}/attachments [post]
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	ticketID, ok := uuidParam(c, "id", "ticket")
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid input: file is required", err.Error())
		return
	}
	a, err := h.svc.Upload(c, ticketID, fh)
	if err != nil {
		writeError(c, "Upload attachment", err)
		return
	}
	response.Success(c, http.StatusCreated, "Attachment uploaded", a)
}

// ListAttachments godoc
// @Summary List the attachments of a ticket
// @Tags attachments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Ticket ID" format(uuid)
// @Success 200 {object} response.SuccessResponse{data=[]ticket.Attachment}
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id}/attachments [get]
func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	ticketID, ok := uuidParam(c, "id", "ticket")
	if !ok {
		return
	}
	list, err := h.svc.List(ticketID)
	if err != nil {
		writeError(c, "Fetch attachments", err)
		return
	}
	if list == nil {
		list = []ticket.Attachment{}
	}
	response.Success(c, http.StatusOK, "Attachments fetched", list)
}

// DownloadAttachment godoc
// @Summary Download an attachment
// @Description Redirects to a short-lived presigned URL.
// @Tags attachments
// @Security BearerAuth
// @Param id path string true "Ticket ID" format(uuid)
// @Param aid path string true "Attachment ID" format(uuid)
// @Success 302
// @Failure 404 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /tickets/{id}/attachments/{aid} [get]
func (h *AttachmentHandler) DownloadAttachment(c *gin.Context) {
	ticketID, ok := uuidParam(c, "id", "ticket")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "aid", "attachment")
	if !ok {
		return
	}
	url, err := h.svc.DownloadURL(c.Request.Context(), ticketID, id)
	if err != nil {
		writeError(c, "Download attachment", err)
		return
	}
	c.Redirect(http.StatusFound, url)
}

// DeleteAttachment godoc
// @Summary Delete an attachment
// @Tags attachments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Ticket ID" format(uuid)
// @Param aid path string true "Attachment ID" format(uuid)
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /tickets/{id}/attachments/{aid} [delete]
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	ticketID, ok := uuidParam(c, "id", "ticket")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "aid", "attachment")
	if !ok {
		return
	}
	if err := h.svc.Delete(c, ticketID, id); err != nil {
		writeError(c, "Delete attachment", err)
		return
	}
	response.Success(c, http.StatusOK, "Attachment deleted", nil)
}
