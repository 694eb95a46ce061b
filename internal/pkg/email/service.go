// internal/pkg/email/service.go
package email

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/lepetitmarche/storefront-api/internal/config"
	"github.com/sirupsen/logrus"
)

// Service delivers transactional email through the configured
// provider. The "simulate" provider logs instead of sending, which
// keeps development and CI free of SMTP dependencies.
type Service struct {
	config *config.Config
	logger *logrus.Logger
}

// NewService creates a new email service
func NewService(cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		config: cfg,
		logger: logger,
	}
}

// Send delivers a message using the configured provider
func (s *Service) Send(ctx context.Context, msg *Message) (*SendResult, error) {
	if len(msg.To) == 0 {
		return nil, fmt.Errorf("email has no recipient")
	}

	switch s.config.Email.Provider {
	case "simulate":
		return s.sendSimulated(msg), nil
	case "smtp":
		return s.sendSMTP(msg)
	default:
		return nil, fmt.Errorf("unsupported email provider: %s", s.config.Email.Provider)
	}
}

// sendSimulated logs the message instead of delivering it
func (s *Service) sendSimulated(msg *Message) *SendResult {
	messageID := "sim-" + uuid.New().String()

	preview := msg.TextContent
	if preview == "" {
		preview = msg.HTMLContent
	}
	if len(preview) > 180 {
		// Back up to a rune boundary so the cut never splits a
		// multi-byte character.
		cut := 180
		for cut > 0 && !utf8.RuneStart(preview[cut]) {
			cut--
		}
		preview = preview[:cut]
	}

	s.logger.WithFields(logrus.Fields{
		"message_id": messageID,
		"type":       msg.Type,
		"to":         msg.To,
		"from":       msg.From,
		"subject":    msg.Subject,
		"reply_to":   msg.ReplyTo,
		"preview":    preview,
	}).Info("Email simulated")

	return &SendResult{MessageID: messageID}
}
