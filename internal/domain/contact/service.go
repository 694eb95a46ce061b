// internal/domain/contact/service.go
package contact

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/lepetitmarche/storefront-api/internal/config"
	"github.com/lepetitmarche/storefront-api/internal/pkg/email"
	"github.com/sirupsen/logrus"
)

var emailRegex = regexp.MustCompile(`(?i)^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// Request is a contact form submission
type Request struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Result reports the outcome of a submission. Errors maps field names
// to human-readable messages when validation fails.
type Result struct {
	OK        bool              `json:"ok"`
	Message   string            `json:"message"`
	AttemptID string            `json:"attempt_id,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// Mailer delivers a single message
type Mailer interface {
	Send(ctx context.Context, msg *email.Message) (*email.SendResult, error)
}

// Service handles contact form submissions: validation, an owner
// notification and a confirmation back to the sender.
type Service struct {
	config *config.Config
	mailer Mailer
	logger *logrus.Logger
}

// NewService creates a new contact service
func NewService(cfg *config.Config, mailer Mailer, logger *logrus.Logger) *Service {
	return &Service{
		config: cfg,
		mailer: mailer,
		logger: logger,
	}
}

// Validate checks a submission and returns field-level messages for
// everything wrong with it.
func Validate(req *Request) map[string]string {
	errors := make(map[string]string)
	if len(strings.TrimSpace(req.Name)) < 2 {
		errors["name"] = "Le nom doit contenir au moins 2 caractères."
	}
	if !emailRegex.MatchString(strings.TrimSpace(req.Email)) {
		errors["email"] = "Veuillez saisir un e-mail valide."
	}
	if len(strings.TrimSpace(req.Subject)) < 2 {
		errors["subject"] = "Le sujet doit contenir au moins 2 caractères."
	}
	if len(strings.TrimSpace(req.Message)) < 10 {
		errors["message"] = "Le message doit contenir au moins 10 caractères."
	}
	if len(errors) == 0 {
		return nil
	}
	return errors
}

// Submit validates the request and, when valid, sends the owner
// notification and the sender confirmation.
func (s *Service) Submit(ctx context.Context, req *Request, clientIP, userAgent string) (*Result, error) {
	attemptID := "c_" + uuid.New().String()

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	s.logger.WithFields(logrus.Fields{
		"attempt_id":  attemptID,
		"client_ip":   clientIP,
		"user_agent":  userAgent,
		"email":       req.Email,
		"subject_len": len(req.Subject),
		"message_len": len(req.Message),
	}).Info("Contact form attempt")

	if errors := Validate(req); errors != nil {
		s.logger.WithFields(logrus.Fields{
			"attempt_id": attemptID,
			"errors":     errors,
		}).Warn("Contact form validation failed")
		return &Result{
			OK:      false,
			Message: "Données invalides",
			Errors:  errors,
		}, nil
	}

	ownerMsg := &email.Message{
		To:          []string{s.config.Contact.Recipient},
		From:        s.config.Contact.Sender,
		ReplyTo:     req.Email,
		Subject:     fmt.Sprintf("[Contact] %s", req.Subject),
		TextContent: buildOwnerText(req),
		HTMLContent: buildOwnerHTML(req),
		Type:        email.MessageTypeContactOwner,
	}
	ownerRes, err := s.mailer.Send(ctx, ownerMsg)
	if err != nil {
		return nil, fmt.Errorf("failed to send owner notification: %w", err)
	}

	confirmMsg := &email.Message{
		To:          []string{req.Email},
		From:        s.config.Contact.Sender,
		Subject:     "Nous avons bien reçu votre message",
		TextContent: buildConfirmationText(req),
		HTMLContent: buildConfirmationHTML(req),
		Type:        email.MessageTypeContactConfirmation,
	}
	confirmRes, err := s.mailer.Send(ctx, confirmMsg)
	if err != nil {
		return nil, fmt.Errorf("failed to send confirmation: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"attempt_id":         attemptID,
		"owner_message_id":   ownerRes.MessageID,
		"confirm_message_id": confirmRes.MessageID,
	}).Info("Contact form delivered")

	return &Result{
		OK:        true,
		Message:   "Votre message a été envoyé.",
		AttemptID: attemptID,
	}, nil
}
