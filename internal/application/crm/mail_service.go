package crm

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/instrategy/salesflow/internal/domain/crm"
	"github.com/instrategy/salesflow/internal/domain/shared"
	"github.com/instrategy/salesflow/internal/infrastructure/mail"
)

const emailEstadoEnviado = "enviado"

// SendEmailInput is one outbound email request
type SendEmailInput struct {
	Asunto      string
	Para        string
	Plantilla   string
	Body        string
	Responsable string
	Attachments []mail.Attachment
}

// SendEmailResult reports a delivered email plus its audit outcome
type SendEmailResult struct {
	Accepted []string
	Audit    AuditResult
}

// MailService sends transactional email and writes the audit trail
type MailService struct {
	sender mail.Sender
	emails crm.EmailLogRepository
	logger *zap.Logger
}

// NewMailService creates a new MailService
func NewMailService(sender mail.Sender, emails crm.EmailLogRepository, logger *zap.Logger) *MailService {
	return &MailService{sender: sender, emails: emails, logger: logger}
}

// Configured reports whether SMTP credentials are present
func (s *MailService) Configured() bool {
	return s.sender.Configured()
}

// Send delivers the message and records an audit row. Delivery failures
// are errors; an audit insert failure is reported in the result instead,
// because the mail is already gone.
func (s *MailService) Send(ctx context.Context, in SendEmailInput) (*SendEmailResult, error) {
	if !s.sender.Configured() {
		return nil, shared.NewDomainError("CONFIG_ERROR", "smtp credentials are not configured")
	}
	if in.Asunto == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "asunto is required")
	}
	recipients := mail.ParseRecipients(in.Para)
	if len(recipients) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "para must contain at least one recipient")
	}

	err := s.sender.Send(&mail.Message{
		To:          recipients,
		Subject:     in.Asunto,
		Body:        in.Body,
		Attachments: in.Attachments,
	})
	if err != nil {
		return nil, shared.NewDomainErrorf("UPSTREAM_ERROR", "smtp delivery failed: %v", err)
	}

	result := &SendEmailResult{
		Accepted: recipients,
		Audit:    AuditResult{Recorded: true},
	}

	now := time.Now().UTC()
	para := strings.Join(recipients, ", ")
	estado := emailEstadoEnviado
	entry := &crm.EmailLog{
		Asunto:    &in.Asunto,
		Para:      &para,
		Estado:    &estado,
		FechaHora: &now,
	}
	if in.Plantilla != "" {
		entry.Plantilla = &in.Plantilla
	}
	if in.Responsable != "" {
		entry.Responsable = &in.Responsable
	}
	if _, err := s.emails.Create(ctx, entry); err != nil {
		s.logger.Warn("email audit insert failed",
			zap.String("para", para),
			zap.Error(err))
		result.Audit = AuditResult{Recorded: false, Error: err.Error()}
	}
	return result, nil
}
