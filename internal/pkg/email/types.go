// internal/pkg/email/types.go
package email

// MessageType classifies outgoing mail for logging
type MessageType string

const (
	MessageTypeContactOwner        MessageType = "contact_owner"
	MessageTypeContactConfirmation MessageType = "contact_confirmation"
)

// Message represents an outgoing email
type Message struct {
	To          []string    `json:"to"`
	From        string      `json:"from"`
	ReplyTo     string      `json:"reply_to,omitempty"`
	Subject     string      `json:"subject"`
	TextContent string      `json:"text_content,omitempty"`
	HTMLContent string      `json:"html_content,omitempty"`
	Type        MessageType `json:"type"`
}

// SendResult identifies a delivered (or simulated) message
type SendResult struct {
	MessageID string `json:"message_id"`
}
