package models

import "errors"

// StatusType defines the delivery status of an outbound message.
type StatusType string

const (
	// StatusTypeSent indicates the message was handed to the transport.
	StatusTypeSent StatusType = "sent"
	// StatusTypeDelivered indicates the message reached the recipient device.
	StatusTypeDelivered StatusType = "delivered"
	// StatusTypeRead indicates the recipient read the message.
	StatusTypeRead StatusType = "read"
)

// Error variables for better error handling and testability
var (
	ErrEmptyRecipient = errors.New("recipient cannot be empty")
	ErrEmptyBody      = errors.New("message body cannot be empty")
)

// Receipt represents a delivery or read receipt for an outbound message.
type Receipt struct {
	To     string     `json:"to"`
	Status StatusType `json:"status"`
	Time   int64      `json:"time"`
}

// Response represents an inbound message from a user.
type Response struct {
	From      string `json:"from"`
	Body      string `json:"body"`
	MessageID string `json:"message_id,omitempty"`
	Time      int64  `json:"time"`
}
