package messaging

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// Natural typing pace: the reply is delayed in proportion to its length so a
// long advisory does not land the instant the farmer hits send.
const (
	DefaultPerWordDelay = 60 * time.Millisecond
	MaxTypingDelay      = 3 * time.Second
)

// Handler turns one inbound message into one reply. It never fails: errors
// inside the conversation are rendered as localized replies.
type Handler interface {
	HandleIncoming(ctx context.Context, userID string, message string) string
}

// readAcker is implemented by services that can acknowledge inbound messages.
type readAcker interface {
	MarkRead(ctx context.Context, from string, messageID string) error
}

// typingSignaler is implemented by services that can show a typing indicator.
type typingSignaler interface {
	SendTyping(ctx context.Context, to string, typing bool) error
}

// Responder consumes inbound messages from a Service, runs them through the
// Handler, and sends the replies back through the same Service.
type Responder struct {
	service      Service
	handler      Handler
	perWordDelay time.Duration
	maxDelay     time.Duration
}

// ResponderOption defines a configuration option for the Responder.
type ResponderOption func(*Responder)

// WithTypingDelay overrides the per-word delay applied before each reply.
// A zero delay disables the natural typing pace entirely.
func WithTypingDelay(perWord time.Duration) ResponderOption {
	return func(r *Responder) { r.perWordDelay = perWord }
}

// WithMaxTypingDelay overrides the cap on the total pre-reply delay.
func WithMaxTypingDelay(max time.Duration) ResponderOption {
	return func(r *Responder) { r.maxDelay = max }
}

// NewResponder creates a Responder for the given service and handler.
func NewResponder(service Service, handler Handler, opts ...ResponderOption) *Responder {
	r := &Responder{
		service:      service,
		handler:      handler,
		perWordDelay: DefaultPerWordDelay,
		maxDelay:     MaxTypingDelay,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes inbound messages until the context is cancelled or the
// service's response channel is closed. Replies are sent sequentially in
// arrival order; per-user serialization happens inside the handler.
func (r *Responder) Run(ctx context.Context) {
	slog.Info("Responder started")
	for {
		select {
		case <-ctx.Done():
			slog.Info("Responder stopping due to context cancellation")
			return
		case response, ok := <-r.service.Responses():
			if !ok {
				slog.Info("Responder stopping: response channel closed")
				return
			}
			r.respond(ctx, response.From, response.Body, response.MessageID)
		}
	}
}

func (r *Responder) respond(ctx context.Context, from, body, messageID string) {
	if acker, ok := r.service.(readAcker); ok && messageID != "" {
		if err := acker.MarkRead(ctx, from, messageID); err != nil {
			slog.Debug("Responder failed to mark message read", "from", from, "error", err)
		}
	}

	reply := r.handler.HandleIncoming(ctx, from, body)
	if reply == "" {
		return
	}

	r.typePause(ctx, from, reply)

	if err := r.service.SendMessage(ctx, from, reply); err != nil {
		slog.Error("Responder failed to send reply", "to", from, "error", err)
	}
}

// typePause shows a typing indicator (where supported) and sleeps for a
// duration proportional to the reply length.
func (r *Responder) typePause(ctx context.Context, to, reply string) {
	delay := r.replyDelay(reply)
	if delay <= 0 {
		return
	}

	signaler, canType := r.service.(typingSignaler)
	if canType {
		if err := signaler.SendTyping(ctx, to, true); err != nil {
			slog.Debug("Responder failed to signal typing", "to", to, "error", err)
		}
	}

	select {
	case <-ctx.Done():
	case <-time.After(delay):
	}

	if canType {
		if err := signaler.SendTyping(ctx, to, false); err != nil {
			slog.Debug("Responder failed to clear typing", "to", to, "error", err)
		}
	}
}

// replyDelay computes the typing pause for a reply, capped at maxDelay.
func (r *Responder) replyDelay(reply string) time.Duration {
	if r.perWordDelay <= 0 {
		return 0
	}
	words := len(strings.Fields(reply))
	delay := time.Duration(words) * r.perWordDelay
	if delay > r.maxDelay {
		delay = r.maxDelay
	}
	return delay
}
