// Package engine implements the JalMitra conversation state machine.
//
// The engine owns the session store and routes each inbound message to the
// handler for the session's current state: language selection, the five-step
// location setup chain, the main menu and the two advisory sub-flows. Every
// handler validates its input, may call the advisory backend, mutates the
// session and returns the composed reply text. HandleIncoming never fails:
// remote errors are mapped to localized reply text and the conversation state
// is left intact so the user can simply resend.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/JalMitra/JalMitra/internal/advisory"
	"github.com/JalMitra/JalMitra/internal/i18n"
	"github.com/JalMitra/JalMitra/internal/models"
	"github.com/JalMitra/JalMitra/internal/store"
)

// greetings trigger a soft reset: transient flow data is cleared but language
// and location survive.
var greetings = map[string]bool{
	"hi":    true,
	"hello": true,
	"hey":   true,
	"start": true,
	"menu":  true,
}

// resetKeyword triggers a hard reset clearing everything including language
// and location.
const resetKeyword = "reset"

// CropCanonicalizer normalizes a free-text crop name (possibly vernacular,
// plural or misspelled) into the canonical token the backend expects.
// Implementations must be best-effort: an error leaves the raw text in use.
type CropCanonicalizer interface {
	CanonicalizeCrop(ctx context.Context, raw string) (string, error)
}

// Opts holds configuration options for the engine.
type Opts struct {
	Crops CropCanonicalizer
}

// Option defines a configuration option for the engine.
type Option func(*Opts)

// WithCropCanonicalizer enables crop-name normalization before backend calls.
func WithCropCanonicalizer(c CropCanonicalizer) Option {
	return func(o *Opts) { o.Crops = c }
}

// Engine is the conversation engine. It serializes processing per user so two
// in-flight messages from the same user cannot race on the session's
// selection maps; messages from different users proceed in parallel.
type Engine struct {
	sessions store.SessionStore
	backend  *advisory.Client
	crops    CropCanonicalizer

	// locks holds one *sync.Mutex per user identifier.
	locks sync.Map
}

// NewEngine creates a conversation engine over the given session store and
// advisory backend client.
func NewEngine(sessions store.SessionStore, backend *advisory.Client, opts ...Option) *Engine {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	slog.Debug("Engine created", "crop_canonicalizer", cfg.Crops != nil)
	return &Engine{sessions: sessions, backend: backend, crops: cfg.Crops}
}

// HandleIncoming processes one inbound message and returns the reply text.
// It never returns an error: internal failures are converted to localized
// reply text.
func (e *Engine) HandleIncoming(ctx context.Context, userID, message string) string {
	mu := e.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	session, err := e.sessions.Get(ctx, userID)
	if err != nil {
		// A broken store must not silence the bot: continue with a fresh
		// session and reply normally.
		slog.Error("Engine session lookup failed, using fresh session", "error", err, "user", userID)
	}
	if session == nil {
		session = models.NewSession()
		slog.Info("Engine created new session", "user", userID)
	}

	reply := e.route(ctx, session, message)

	if err := e.sessions.Save(ctx, userID, session); err != nil {
		slog.Error("Engine session save failed", "error", err, "user", userID)
	}
	slog.Debug("Engine handled message", "user", userID, "state", session.State, "reply_length", len(reply))
	return reply
}

// route applies the global overrides and then dispatches on the current state.
func (e *Engine) route(ctx context.Context, session *models.Session, message string) string {
	normalized := strings.ToLower(strings.TrimSpace(message))
	trimmed := strings.TrimSpace(message)
	lang := session.Language

	// Hard reset clears everything including location and language.
	if normalized == resetKeyword {
		session.FullReset()
		session.State = models.StateSelectLanguage
		return i18n.Get(i18n.KeyWelcomeLanguage, models.DefaultLanguage, nil)
	}

	// Greetings soft-reset: back to the menu if location is set, otherwise
	// continue wherever setup left off.
	if greetings[normalized] {
		hasLanguage := session.LanguageSet
		session.Reset()
		switch {
		case session.LocationSetupComplete:
			return i18n.Get(i18n.KeyMainMenu, lang, nil)
		case hasLanguage:
			session.State = models.StateSetupAreaType
			return i18n.Get(i18n.KeyAskAreaType, lang, nil)
		default:
			session.State = models.StateSelectLanguage
			return i18n.Get(i18n.KeyWelcomeLanguage, models.DefaultLanguage, nil)
		}
	}

	switch session.State {
	case models.StateStart:
		// A session may have been created but never advanced; re-derive the
		// right position from its flags.
		switch {
		case session.LanguageSet && session.LocationSetupComplete:
			session.State = models.StateMainMenu
			return i18n.Get(i18n.KeyMainMenu, lang, nil)
		case session.LanguageSet:
			session.State = models.StateSetupAreaType
			return i18n.Get(i18n.KeyAskAreaType, lang, nil)
		default:
			session.State = models.StateSelectLanguage
			return i18n.Get(i18n.KeyWelcomeLanguage, models.DefaultLanguage, nil)
		}

	case models.StateSelectLanguage:
		return e.handleLanguageSelection(session, normalized)

	case models.StateSetupAreaType:
		return e.handleAreaType(ctx, session, normalized)
	case models.StateSetupSelectDistrict:
		return e.handleDistrictSelection(ctx, session, trimmed)
	case models.StateSetupSelectTaluka:
		return e.handleTalukaSelection(ctx, session, trimmed)
	case models.StateSetupSelectVillage:
		return e.handleVillageSelection(ctx, session, trimmed)
	case models.StateSetupSelectPlot:
		return e.handlePlotSelection(ctx, session, trimmed)
	case models.StateSetupSelectOwner:
		return e.handleOwnerSelection(ctx, session, trimmed)

	case models.StateMainMenu:
		return e.handleMainMenu(ctx, session, normalized)

	case models.StateSowingCollectCrop:
		return e.handleSowingCrop(ctx, session, trimmed)
	case models.StateSolvencyCollectCrop:
		return e.handleSolvencyCrop(ctx, session, trimmed)
	}

	// Unreachable with the closed state set; never fatal.
	slog.Warn("Engine encountered unknown state", "state", session.State)
	return i18n.Get(i18n.KeyFallback, lang, nil)
}

// handleLanguageSelection consumes the 1/2/3 language choice. Any other input
// re-prompts in the default language without changing state.
func (e *Engine) handleLanguageSelection(session *models.Session, choice string) string {
	switch choice {
	case "1":
		session.Language = models.LanguageEnglish
	case "2":
		session.Language = models.LanguageHindi
	case "3":
		session.Language = models.LanguageMarathi
	default:
		return i18n.Get(i18n.KeyInvalidLanguage, models.DefaultLanguage, nil)
	}

	session.LanguageSet = true
	session.State = models.StateSetupAreaType
	return i18n.Get(i18n.KeyLanguageSet, session.Language, nil) + "\n\n" +
		i18n.Get(i18n.KeyAskAreaType, session.Language, nil)
}

// errorReply maps a backend failure to the localized reply text for the
// session's language: a dedicated message for connectivity failures, a
// generic one carrying the detail otherwise.
func (e *Engine) errorReply(session *models.Session, err error) string {
	if errors.Is(err, advisory.ErrConnectivity) {
		return i18n.Get(i18n.KeyConnectionError, session.Language, nil)
	}
	return i18n.Get(i18n.KeyErrorGeneric, session.Language, i18n.Params{"error": err.Error()})
}

func (e *Engine) lockFor(userID string) *sync.Mutex {
	mu, _ := e.locks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// canonicalCrop runs the optional crop canonicalizer; failures fall back to
// the raw text.
func (e *Engine) canonicalCrop(ctx context.Context, raw string) string {
	if e.crops == nil {
		return raw
	}
	canonical, err := e.crops.CanonicalizeCrop(ctx, raw)
	if err != nil || canonical == "" {
		slog.Warn("Engine crop canonicalization failed, using raw input", "error", err, "crop", raw)
		return raw
	}
	if canonical != raw {
		slog.Debug("Engine canonicalized crop name", "raw", raw, "canonical", canonical)
	}
	return canonical
}
