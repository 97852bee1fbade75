// Package api wires the JalMitra modules together and exposes the HTTP
// surface: health and session statistics for operators, an outbound send
// endpoint, and the Twilio inbound webhook when that transport is selected.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JalMitra/JalMitra/internal/advisory"
	"github.com/JalMitra/JalMitra/internal/engine"
	"github.com/JalMitra/JalMitra/internal/genai"
	"github.com/JalMitra/JalMitra/internal/messaging"
	"github.com/JalMitra/JalMitra/internal/models"
	"github.com/JalMitra/JalMitra/internal/store"
	"github.com/JalMitra/JalMitra/internal/twiliowhatsapp"
	"github.com/JalMitra/JalMitra/internal/whatsapp"
)

// Default configuration constants
const (
	// DefaultAddr is the default HTTP listen address
	DefaultAddr = ":8080"
	// DefaultShutdownTimeout bounds graceful HTTP shutdown
	DefaultShutdownTimeout = 10 * time.Second
)

// Opts holds configuration options for the API server.
type Opts struct {
	Addr        string
	UseTwilio   bool          // route through the Twilio API instead of a linked device
	ReplyDelay  time.Duration // per-word natural typing delay, 0 keeps the default
	DelaySet    bool
	TwilioOpts  []twiliowhatsapp.Option
	AdvisoryURL string
}

// Option defines a configuration option for the API server.
type Option func(*Opts)

// WithAddr sets the HTTP listen address.
func WithAddr(addr string) Option {
	return func(o *Opts) { o.Addr = addr }
}

// WithTwilio selects the Twilio transport instead of the whatsmeow client.
func WithTwilio(opts ...twiliowhatsapp.Option) Option {
	return func(o *Opts) {
		o.UseTwilio = true
		o.TwilioOpts = opts
	}
}

// WithReplyDelay overrides the per-word natural typing delay (0 disables it).
func WithReplyDelay(perWord time.Duration) Option {
	return func(o *Opts) {
		o.ReplyDelay = perWord
		o.DelaySet = true
	}
}

// WithAdvisoryBaseURL sets the advisory backend base URL.
func WithAdvisoryBaseURL(url string) Option {
	return func(o *Opts) { o.AdvisoryURL = url }
}

// Server holds the wired modules for the HTTP handlers.
type Server struct {
	service  messaging.Service
	sessions store.SessionStore
}

// Run wires the modules together and serves until SIGINT or SIGTERM.
func Run(waOpts []whatsapp.Option, storeOpts []store.Option, genaiOpts []genai.Option, apiOpts []Option) error {
	cfg := Opts{Addr: DefaultAddr}
	for _, opt := range apiOpts {
		opt(&cfg)
	}
	if cfg.AdvisoryURL == "" {
		return fmt.Errorf("advisory backend base URL must be configured")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessions, err := store.NewStore(storeOpts...)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}
	defer sessions.Close()

	backend, err := advisory.NewClient(advisory.WithBaseURL(cfg.AdvisoryURL))
	if err != nil {
		return fmt.Errorf("failed to initialize advisory client: %w", err)
	}

	var engineOpts []engine.Option
	if len(genaiOpts) > 0 {
		crops, err := genai.NewClient(genaiOpts...)
		if err != nil {
			slog.Warn("GenAI client unavailable, crop names will be used verbatim", "error", err)
		} else {
			engineOpts = append(engineOpts, engine.WithCropCanonicalizer(crops))
		}
	}
	conv := engine.NewEngine(sessions, backend, engineOpts...)

	service, twilioService, err := buildMessagingService(cfg, waOpts)
	if err != nil {
		return err
	}
	if err := service.Start(ctx); err != nil {
		return fmt.Errorf("failed to start messaging service: %w", err)
	}
	defer service.Stop()

	var responderOpts []messaging.ResponderOption
	if cfg.DelaySet {
		responderOpts = append(responderOpts, messaging.WithTypingDelay(cfg.ReplyDelay))
	}
	responder := messaging.NewResponder(service, conv, responderOpts...)
	go responder.Run(ctx)

	srv := &Server{service: service, sessions: sessions}
	mux := http.NewServeMux()
	mux.HandleFunc("/health", srv.healthHandler)
	mux.HandleFunc("/stats", srv.statsHandler)
	mux.HandleFunc("/send", srv.sendHandler)
	if twilioService != nil {
		mux.HandleFunc("/twilio/webhook", twilioService.WebhookHandler)
	}

	httpSrv := &http.Server{Addr: cfg.Addr, Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("JalMitra API listening", "addr", cfg.Addr, "transport", transportName(cfg.UseTwilio))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server failed: %w", err)
	case sig := <-sigCh:
		slog.Info("Shutting down on signal", "signal", sig.String())
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP shutdown failed: %w", err)
	}
	return nil
}

// buildMessagingService constructs the selected transport. The Twilio service
// is returned separately so its webhook handler can be mounted.
func buildMessagingService(cfg Opts, waOpts []whatsapp.Option) (messaging.Service, *messaging.TwilioService, error) {
	if cfg.UseTwilio {
		client, err := twiliowhatsapp.NewClient(cfg.TwilioOpts...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize Twilio client: %w", err)
		}
		service := messaging.NewTwilioService(client)
		return service, service, nil
	}

	client, err := whatsapp.NewClient(waOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize WhatsApp client: %w", err)
	}
	return messaging.NewWhatsAppService(client), nil, nil
}

func transportName(useTwilio bool) string {
	if useTwilio {
		return "twilio"
	}
	return "whatsmeow"
}

// healthHandler reports liveness.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// statsHandler reports the active session count.
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	count, err := s.sessions.Count(r.Context())
	if err != nil {
		slog.Error("Stats handler failed to count sessions", "error", err)
		http.Error(w, "store unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"active_sessions": count})
}

// sendHandler sends an outbound message, for operator announcements.
func (s *Server) sendHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		To   string `json:"to"`
		Body string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.To == "" || req.Body == "" {
		http.Error(w, "to and body are required", http.StatusBadRequest)
		return
	}
	if err := s.service.SendMessage(r.Context(), req.To, req.Body); err != nil {
		slog.Error("Send handler failed", "to", req.To, "error", err)
		http.Error(w, "send failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.Receipt{To: req.To, Status: models.StatusTypeSent, Time: time.Now().Unix()})
}
