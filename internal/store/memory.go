package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/JalMitra/JalMitra/internal/models"
)

// janitorInterval is how often the in-memory store sweeps expired sessions.
const janitorInterval = time.Hour

type memoryEntry struct {
	session  *models.Session
	lastSeen time.Time
}

// InMemoryStore keeps sessions in a map guarded by a mutex. Idle sessions
// past the TTL are evicted by a background janitor.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	done     chan struct{}
	once     sync.Once
}

// NewInMemoryStore creates an in-memory session store with the given idle TTL.
func NewInMemoryStore(ttl time.Duration) *InMemoryStore {
	s := &InMemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go s.janitor()
	slog.Debug("InMemoryStore created", "ttl", ttl)
	return s
}

// Get retrieves the session for a user, or nil if none exists.
func (s *InMemoryStore) Get(ctx context.Context, userID string) (*models.Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return entry.session, nil
}

// Save persists the session for a user.
func (s *InMemoryStore) Save(ctx context.Context, userID string, session *models.Session) error {
	s.mu.Lock()
	s.sessions[userID] = memoryEntry{session: session, lastSeen: time.Now()}
	s.mu.Unlock()
	return nil
}

// Delete removes the session for a user.
func (s *InMemoryStore) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
	return nil
}

// Count returns the number of stored sessions.
func (s *InMemoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions), nil
}

// Close stops the eviction janitor.
func (s *InMemoryStore) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

func (s *InMemoryStore) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.done:
			return
		}
	}
}

func (s *InMemoryStore) evictExpired() {
	cutoff := time.Now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for userID, entry := range s.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(s.sessions, userID)
			evicted++
		}
	}
	if evicted > 0 {
		slog.Info("InMemoryStore evicted idle sessions", "evicted", evicted, "remaining", len(s.sessions))
	}
}
