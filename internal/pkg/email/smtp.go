// internal/pkg/email/smtp.go
package email

import (
	"bytes"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/google/uuid"
)

// sendSMTP delivers the message through the configured SMTP relay
func (s *Service) sendSMTP(msg *Message) (*SendResult, error) {
	cfg := s.config.Email
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" {
		return nil, fmt.Errorf("SMTP configuration incomplete: missing host or username")
	}

	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)

	from := msg.From
	if from == "" {
		if cfg.FromName != "" {
			from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail)
		} else {
			from = cfg.FromEmail
		}
	}

	headers := make(map[string]string)
	headers["From"] = from
	headers["To"] = strings.Join(msg.To, ", ")
	headers["Subject"] = msg.Subject
	headers["MIME-Version"] = "1.0"
	if msg.HTMLContent != "" {
		headers["Content-Type"] = `text/html; charset="utf-8"`
	} else {
		headers["Content-Type"] = `text/plain; charset="utf-8"`
	}
	if msg.ReplyTo != "" {
		headers["Reply-To"] = msg.ReplyTo
	}

	var buf bytes.Buffer
	for key, value := range headers {
		buf.WriteString(fmt.Sprintf("%s: %s\r\n", key, value))
	}
	buf.WriteString("\r\n")
	if msg.HTMLContent != "" {
		buf.WriteString(msg.HTMLContent)
	} else {
		buf.WriteString(msg.TextContent)
	}

	serverAddr := fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)
	if err := smtp.SendMail(serverAddr, auth, cfg.FromEmail, msg.To, buf.Bytes()); err != nil {
		return nil, fmt.Errorf("SMTP delivery failed: %w", err)
	}

	return &SendResult{MessageID: "smtp-" + uuid.New().String()}, nil
}
