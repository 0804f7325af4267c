package handler

import (
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	appcrm "github.com/instrategy/salesflow/internal/application/crm"
	"github.com/instrategy/salesflow/internal/domain/crm"
	"github.com/instrategy/salesflow/internal/infrastructure/mail"
)

// EmailHandler handles the email audit table and outbound delivery
type EmailHandler struct {
	BaseHandler
	logs   *appcrm.EmailLogService
	mailer *appcrm.MailService
}

// NewEmailHandler creates a new EmailHandler
func NewEmailHandler(logs *appcrm.EmailLogService, mailer *appcrm.MailService) *EmailHandler {
	return &EmailHandler{logs: logs, mailer: mailer}
}

// List handles GET /emails
func (h *EmailHandler) List(c *gin.Context) {
	filters, limit, err := listParams(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	emails, err := h.logs.List(c.Request.Context(), filters, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, emails)
}

// Get handles GET /emails/:id
func (h *EmailHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "id must be an integer")
		return
	}

	email, err := h.logs.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, email)
}

// Create handles POST /emails
func (h *EmailHandler) Create(c *gin.Context) {
	var email crm.EmailLog
	if err := c.ShouldBindJSON(&email); err != nil {
		h.InvalidJSON(c, err)
		return
	}

	created, err := h.logs.Create(c.Request.Context(), &email)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// Update handles PATCH /emails/:id
func (h *EmailHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "id must be an integer")
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		h.InvalidJSON(c, err)
		return
	}

	rows, err := h.logs.Update(c.Request.Context(), id, fields)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// Delete handles DELETE /emails/:id
func (h *EmailHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "id must be an integer")
		return
	}

	rows, err := h.logs.Delete(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// sendEmailResponse is the POST /emails/send response body
type sendEmailResponse struct {
	Accepted           []string          `json:"accepted"`
	AttachmentsSent    int               `json:"attachments_sent"`
	AttachmentsSkipped []string          `json:"attachments_skipped,omitempty"`
	Audit              appcrm.AuditResult `json:"audit"`
}

// Send handles POST /emails/send. The request is multipart form data so
// that file attachments can ride along with the text fields. Attachments
// that cannot be read are skipped and reported, not fatal.
func (h *EmailHandler) Send(c *gin.Context) {
	input := appcrm.SendEmailInput{
		Asunto:      c.PostForm("asunto"),
		Para:        c.PostForm("para"),
		Plantilla:   c.PostForm("plantilla"),
		Body:        c.PostForm("body"),
		Responsable: c.PostForm("responsable"),
	}

	var skipped []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, files := range form.File {
			for _, header := range files {
				content, err := readAttachment(header)
				if err != nil {
					skipped = append(skipped, header.Filename)
					continue
				}
				input.Attachments = append(input.Attachments, mail.Attachment{
					Filename: header.Filename,
					Content:  content,
				})
			}
		}
	}

	result, err := h.mailer.Send(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sendEmailResponse{
		Accepted:           result.Accepted,
		AttachmentsSent:    len(input.Attachments),
		AttachmentsSkipped: skipped,
		Audit:              result.Audit,
	})
}

// Health handles GET /emails/health
func (h *EmailHandler) Health(c *gin.Context) {
	h.Success(c, gin.H{"smtp_configured": h.mailer.Configured()})
}

func readAttachment(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
