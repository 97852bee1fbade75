package whatsapp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JalMitra/JalMitra/internal/models"
)

// Both the real client and the mock must satisfy the delivery surface.
var (
	_ Sender = (*Client)(nil)
	_ Sender = (*MockClient)(nil)
)

func TestSendMessageValidatesInput(t *testing.T) {
	c := &Client{}
	ctx := context.Background()

	if err := c.SendMessage(ctx, "", "hello"); !errors.Is(err, models.ErrEmptyRecipient) {
		t.Errorf("expected ErrEmptyRecipient, got %v", err)
	}
	if err := c.SendMessage(ctx, "919800000001", ""); !errors.Is(err, models.ErrEmptyBody) {
		t.Errorf("expected ErrEmptyBody, got %v", err)
	}
	if err := c.SendMessage(ctx, "919800000001", "hello"); err == nil {
		t.Error("expected error for uninitialized client")
	}
}

func TestMarkReadAndTypingRequireClient(t *testing.T) {
	c := &Client{}
	if err := c.MarkRead(context.Background(), "919800000001", "MSG1", time.Now()); err == nil {
		t.Error("expected MarkRead error for uninitialized client")
	}
	if err := c.SendTyping(context.Background(), "919800000001", true); err == nil {
		t.Error("expected SendTyping error for uninitialized client")
	}
}

func TestMockClientIsNoOp(t *testing.T) {
	m := NewMockClient()
	ctx := context.Background()
	if err := m.SendMessage(ctx, "919800000001", "hi"); err != nil {
		t.Errorf("mock SendMessage returned %v", err)
	}
	if err := m.MarkRead(ctx, "919800000001", "MSG1", time.Now()); err != nil {
		t.Errorf("mock MarkRead returned %v", err)
	}
	if err := m.SendTyping(ctx, "919800000001", false); err != nil {
		t.Errorf("mock SendTyping returned %v", err)
	}
}
