package mail

import (
	"fmt"
	"io"
	"strings"

	gomail "gopkg.in/gomail.v2"
)

// Config holds SMTP submission settings
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Attachment is a file to include in an outbound message
type Attachment struct {
	Filename string
	Content  []byte
}

// Message is a plain-text email with optional attachments
type Message struct {
	To          []string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Sender delivers outbound email
type Sender interface {
	Configured() bool
	Send(msg *Message) error
}

// GomailSender submits messages over SMTPS
type GomailSender struct {
	cfg Config
}

var _ Sender = (*GomailSender)(nil)

// NewGomailSender creates an SMTP sender from the given settings
func NewGomailSender(cfg Config) *GomailSender {
	return &GomailSender{cfg: cfg}
}

// Configured reports whether SMTP credentials are present
func (s *GomailSender) Configured() bool {
	return s.cfg.Username != "" && s.cfg.Password != ""
}

// Send delivers the message, dialing per call
func (s *GomailSender) Send(msg *Message) error {
	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	d.SSL = s.cfg.Port == 465
	if err := d.DialAndSend(s.build(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func (s *GomailSender) build(msg *Message) *gomail.Message {
	m := gomail.NewMessage()
	from := s.cfg.From
	if from == "" {
		from = s.cfg.Username
	}
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	for _, att := range msg.Attachments {
		content := att.Content
		m.Attach(att.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}
	return m
}

// ParseRecipients splits a comma-separated recipient list, trimming
// whitespace and dropping empty entries.
func ParseRecipients(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
