// Package store provides session storage backends for JalMitra.
//
// Sessions are keyed by the messaging-platform user identifier and persisted
// as JSON blobs. Backends: in-memory (default, TTL-evicting), SQLite,
// PostgreSQL (auto-detected from the DSN) and Redis (native per-key TTL).
package store

import (
	"context"
	"strings"
	"time"

	"github.com/JalMitra/JalMitra/internal/models"
)

// DefaultSessionTTL bounds how long an idle session is retained. Unbounded
// in-memory retention is a liability in a long-running service, so every
// backend applies an idle TTL.
const DefaultSessionTTL = 30 * 24 * time.Hour

// SessionStore defines the session persistence abstraction used by the
// conversation engine. Get returns (nil, nil) when no session exists for the
// user; creation is the engine's job so lookup-or-create stays in one place.
type SessionStore interface {
	// Get retrieves the session for a user, or nil if none exists.
	Get(ctx context.Context, userID string) (*models.Session, error)

	// Save persists the session for a user, replacing any previous record.
	Save(ctx context.Context, userID string, session *models.Session) error

	// Delete removes the session for a user. Deleting a missing session is
	// not an error.
	Delete(ctx context.Context, userID string) error

	// Count returns the number of stored sessions.
	Count(ctx context.Context) (int, error)

	// Close releases backend resources.
	Close() error
}

// Opts holds configuration options for session store construction.
type Opts struct {
	DSN       string
	RedisAddr string
	TTL       time.Duration
}

// Option defines a configuration option for session store construction.
type Option func(*Opts)

// WithDSN sets the database DSN (SQLite path or PostgreSQL URL).
func WithDSN(dsn string) Option {
	return func(o *Opts) { o.DSN = dsn }
}

// WithRedisAddr selects the Redis backend at the given address.
func WithRedisAddr(addr string) Option {
	return func(o *Opts) { o.RedisAddr = addr }
}

// WithTTL overrides the idle session TTL.
func WithTTL(ttl time.Duration) Option {
	return func(o *Opts) { o.TTL = ttl }
}

// DetectDSNType reports "postgres" for PostgreSQL-style DSNs and "sqlite"
// otherwise (plain file paths are treated as SQLite databases).
func DetectDSNType(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return "postgres"
	}
	return "sqlite"
}

// NewStore builds a session store from the provided options: Redis when a
// Redis address is set, PostgreSQL or SQLite when a DSN is set, in-memory
// otherwise.
func NewStore(opts ...Option) (SessionStore, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultSessionTTL
	}

	switch {
	case cfg.RedisAddr != "":
		return NewRedisStore(cfg.RedisAddr, cfg.TTL)
	case cfg.DSN != "" && DetectDSNType(cfg.DSN) == "postgres":
		return NewPostgresStore(cfg.DSN, cfg.TTL)
	case cfg.DSN != "":
		return NewSQLiteStore(cfg.DSN, cfg.TTL)
	default:
		return NewInMemoryStore(cfg.TTL), nil
	}
}
