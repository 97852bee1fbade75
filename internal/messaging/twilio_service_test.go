package messaging

import (
	"context"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/JalMitra/JalMitra/internal/twiliowhatsapp"
)

func TestTwilioValidateAndCanonicalizeRecipient(t *testing.T) {
	service := NewTwilioService(twiliowhatsapp.NewMockClient())

	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"+91 98000-00001", "919800000001", false},
		{"919800000001", "919800000001", false},
		{"", "", true},
		{"abc", "", true},
		{"12345", "", true}, // too short
	}
	for _, c := range cases {
		got, err := service.ValidateAndCanonicalizeRecipient(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("expected error for %q", c.in)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Errorf("ValidateAndCanonicalizeRecipient(%q) = %q, %v; want %q", c.in, got, err, c.want)
		}
	}
}

func TestTwilioSendMessageEmitsReceipt(t *testing.T) {
	client := twiliowhatsapp.NewMockClient()
	service := NewTwilioService(client)

	if err := service.SendMessage(context.Background(), "+919800000001", "hello"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	if len(client.SentMessages) != 1 || client.SentMessages[0].To != "919800000001" {
		t.Fatalf("unexpected sent messages: %+v", client.SentMessages)
	}
	select {
	case receipt := <-service.Receipts():
		if receipt.To != "919800000001" {
			t.Errorf("receipt for wrong recipient: %+v", receipt)
		}
	default:
		t.Fatal("expected a sent receipt")
	}
}

func TestTwilioSendAfterStop(t *testing.T) {
	service := NewTwilioService(twiliowhatsapp.NewMockClient())
	if err := service.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if err := service.SendMessage(context.Background(), "+919800000001", "hello"); err != ErrServiceStopped {
		t.Fatalf("expected ErrServiceStopped, got %v", err)
	}
}

func TestTwilioWebhookEmitsResponse(t *testing.T) {
	service := NewTwilioService(twiliowhatsapp.NewMockClient())

	form := url.Values{
		"From":       {"whatsapp:+919800000001"},
		"Body":       {"hi"},
		"MessageSid": {"SM123"},
	}
	req := httptest.NewRequest("POST", "/twilio/webhook", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	service.WebhookHandler(rec, req)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	select {
	case response := <-service.Responses():
		if response.Body != "hi" || response.MessageID != "SM123" {
			t.Errorf("unexpected response: %+v", response)
		}
	default:
		t.Fatal("expected an emitted response")
	}
}

func TestTwilioWebhookRejectsMissingFields(t *testing.T) {
	service := NewTwilioService(twiliowhatsapp.NewMockClient())

	req := httptest.NewRequest("POST", "/twilio/webhook", strings.NewReader("From=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	service.WebhookHandler(rec, req)
	if rec.Code != 400 {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
