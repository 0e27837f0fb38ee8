package application

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/Sahindou/ifrit-ticket/internal/domain/audit"
	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
	"github.com/Sahindou/ifrit-ticket/internal/repository"
	"github.com/Sahindou/ifrit-ticket/pkg/utils"
	"gorm.io/gorm"
)

const (
	MaxAttachmentSize = 10 << 20
	presignExpiry     = 15 * time.Minute
)

type AttachmentService struct {
	Repos   *repository.Repos
	storage ObjectStore
}

func NewAttachmentService(repos *repository.Repos, storage ObjectStore) *AttachmentService {
	return &AttachmentService{
		Repos:   repos,
		storage: storage,
	}
}

func (s *AttachmentService) Enabled() bool {
	return s.storage != nil
}

func (s *AttachmentService) ensureTicket(id string) error {
	_, err := s.Repos.Ticket.GetTicketByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTicketNotFound
	}
	return err
}

func objectKey(ticketID, fileName string) string {
	return fmt.Sprintf("tickets/%s/%s-%s", ticketID, uuid.NewString(), fileName)
}

func cleanFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return name
}

func (s *AttachmentService) Upload(c *gin.Context, ticketID string, fh *multipart.FileHeader) (ticket.Attachment, error) {
	if s.storage == nil {
		return ticket.Attachment{}, ErrStorageDisabled
	}
	if fh.Size > MaxAttachmentSize {
		return ticket.Attachment{}, newValidationError("file", fmt.Sprintf("file must be at most %d bytes", MaxAttachmentSize))
	}
	if err := s.ensureTicket(ticketID); err != nil {
		return ticket.Attachment{}, err
	}

	f, err := fh.Open()
	if err != nil {
		return ticket.Attachment{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	name := cleanFileName(fh.Filename)
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	a := ticket.Attachment{
		TicketID:    ticketID,
		FileName:    name,
		ContentType: contentType,
		Size:        fh.Size,
		ObjectKey:   objectKey(ticketID, name),
	}

	ctx := c.Request.Context()
	if err := s.storage.Put(ctx, a.ObjectKey, f, fh.Size, contentType); err != nil {
		return ticket.Attachment{}, fmt.Errorf("store attachment: %w", err)
	}
	if err := s.Repos.Attachment.CreateAttachment(&a); err != nil {
		removeObjects(context.Background(), s.storage, []string{a.ObjectKey})
		return ticket.Attachment{}, fmt.Errorf("record attachment: %w", err)
	}

	utils.LogAuditWithConsole(c, audit.ActionCreate, audit.ResourceAttachment, a.ID, nil, a, "ticket "+ticketID, s.Repos.Audit)
	return a, nil
}

func (s *AttachmentService) List(ticketID string) ([]ticket.Attachment, error) {
	if err := s.ensureTicket(ticketID); err != nil {
		return nil, err
	}
	return s.Repos.Attachment.ListAttachmentsByTicket(ticketID)
}

func (s *AttachmentService) get(ticketID, id string) (ticket.Attachment, error) {
	a, err := s.Repos.Attachment.GetAttachment(ticketID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ticket.Attachment{}, ErrAttachmentNotFound
	}
	return a, err
}

// DownloadURL returns a short-lived presigned URL for the stored object.
func (s *AttachmentService) DownloadURL(ctx context.Context, ticketID, id string) (string, error) {
	if s.storage == nil {
		return "", ErrStorageDisabled
	}
	a, err := s.get(ticketID, id)
	if err != nil {
		return "", err
	}
	return s.storage.PresignedGetURL(ctx, a.ObjectKey, a.FileName, presignExpiry)
}

func (s *AttachmentService) Delete(c *gin.Context, ticketID, id string) error {
	if s.storage == nil {
		return ErrStorageDisabled
	}
	a, err := s.get(ticketID, id)
	if err != nil {
		return err
	}
	if err := s.Repos.Attachment.DeleteAttachment(a.ID); err != nil {
		return fmt.Errorf("delete attachment: %w", err)
	}
	removeObjects(c.Request.Context(), s.storage, []string{a.ObjectKey})
	utils.LogAuditWithConsole(c, audit.ActionDelete, audit.ResourceAttachment, a.ID, a, nil, "ticket "+ticketID, s.Repos.Audit)
	return nil
}
