package messaging

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/JalMitra/JalMitra/internal/models"
)

// mockService is an in-memory Service for responder tests.
type mockService struct {
	mu        sync.Mutex
	sent      []sentMessage
	marked    []string
	responses chan models.Response
	receipts  chan models.Receipt
}

type sentMessage struct {
	to   string
	body string
}

func newMockService() *mockService {
	return &mockService{
		responses: make(chan models.Response, 10),
		receipts:  make(chan models.Receipt, 10),
	}
}

func (m *mockService) ValidateAndCanonicalizeRecipient(recipient string) (string, error) {
	return recipient, nil
}

func (m *mockService) SendMessage(ctx context.Context, to string, body string) error {
	m.mu.Lock()
	m.sent = append(m.sent, sentMessage{to: to, body: body})
	m.mu.Unlock()
	return nil
}

func (m *mockService) MarkRead(ctx context.Context, from string, messageID string) error {
	m.mu.Lock()
	m.marked = append(m.marked, messageID)
	m.mu.Unlock()
	return nil
}

func (m *mockService) Start(ctx context.Context) error { return nil }
func (m *mockService) Stop() error                     { return nil }

func (m *mockService) Receipts() <-chan models.Receipt   { return m.receipts }
func (m *mockService) Responses() <-chan models.Response { return m.responses }

func (m *mockService) sentMessages() []sentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMessage(nil), m.sent...)
}

func (m *mockService) markedIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.marked...)
}

// echoHandler replies with a fixed prefix plus the inbound text.
type echoHandler struct{}

func (echoHandler) HandleIncoming(ctx context.Context, userID, message string) string {
	return "reply to " + message
}

func waitFor(t *testing.T, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met within deadline")
}

func TestResponderRepliesToInbound(t *testing.T) {
	service := newMockService()
	responder := NewResponder(service, echoHandler{}, WithTypingDelay(0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go responder.Run(ctx)

	service.responses <- models.Response{From: "+919800000001", Body: "hi", MessageID: "MSG1", Time: time.Now().Unix()}

	waitFor(t, func() bool { return len(service.sentMessages()) == 1 })
	sent := service.sentMessages()[0]
	if sent.to != "+919800000001" {
		t.Errorf("reply went to %q", sent.to)
	}
	if !strings.Contains(sent.body, "hi") {
		t.Errorf("unexpected reply body %q", sent.body)
	}
}

func TestResponderMarksInboundRead(t *testing.T) {
	service := newMockService()
	responder := NewResponder(service, echoHandler{}, WithTypingDelay(0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go responder.Run(ctx)

	service.responses <- models.Response{From: "+919800000001", Body: "hi", MessageID: "MSG2"}

	waitFor(t, func() bool { return len(service.markedIDs()) == 1 })
	if service.markedIDs()[0] != "MSG2" {
		t.Errorf("marked wrong message: %v", service.markedIDs())
	}
}

func TestResponderStopsOnChannelClose(t *testing.T) {
	service := newMockService()
	responder := NewResponder(service, echoHandler{}, WithTypingDelay(0))

	done := make(chan struct{})
	go func() {
		responder.Run(context.Background())
		close(done)
	}()

	close(service.responses)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("responder did not stop after channel close")
	}
}

func TestReplyDelayScalesAndCaps(t *testing.T) {
	r := NewResponder(newMockService(), echoHandler{},
		WithTypingDelay(100*time.Millisecond), WithMaxTypingDelay(time.Second))

	if got := r.replyDelay("one two three"); got != 300*time.Millisecond {
		t.Errorf("expected 300ms for three words, got %v", got)
	}
	long := strings.Repeat("word ", 50)
	if got := r.replyDelay(long); got != time.Second {
		t.Errorf("expected delay capped at 1s, got %v", got)
	}

	disabled := NewResponder(newMockService(), echoHandler{}, WithTypingDelay(0))
	if got := disabled.replyDelay(long); got != 0 {
		t.Errorf("expected no delay when disabled, got %v", got)
	}
}
