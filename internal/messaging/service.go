// Package messaging provides the delivery abstraction between the WhatsApp
// transports and the advisory engine, plus the responder loop that feeds
// inbound farmer messages through the engine and sends replies back.
package messaging

import (
	"context"
	"errors"

	"github.com/JalMitra/JalMitra/internal/models"
)

// ErrServiceStopped is returned by operations invoked after Stop.
var ErrServiceStopped = errors.New("messaging service stopped")

// Service defines a pluggable message delivery abstraction.
// It supports sending messages, and provides channels for receipt and response events.
type Service interface {
	// ValidateAndCanonicalizeRecipient validates and canonicalizes a recipient identifier.
	// Returns the canonicalized recipient and an error if validation fails.
	ValidateAndCanonicalizeRecipient(recipient string) (string, error)

	// SendMessage sends a message to a recipient.
	SendMessage(ctx context.Context, to string, body string) error

	// Start begins any background processing (e.g., event polling).
	Start(ctx context.Context) error

	// Stop stops background processing and cleans up resources.
	Stop() error

	// Receipts returns a channel of receipt events (sent, delivered, read).
	Receipts() <-chan models.Receipt

	// Responses returns a channel of incoming farmer messages.
	Responses() <-chan models.Response
}
