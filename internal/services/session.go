package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AnshRaj112/tripboard-backend/internal/models"
)

const (
	// DefaultSessionTTL is the idle lifetime of a session.
	DefaultSessionTTL = 12 * time.Hour
	// SessionKeyPrefix is the Redis key prefix for sessions
	SessionKeyPrefix = "trip_session:"
)

// ErrSessionNotFound is returned for unknown or expired sessions.
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionUnavailable wraps failures of the session backend.
var ErrSessionUnavailable = errors.New("session storage unavailable")

// ItineraryRow is one row of the session itinerary table. StoreID is the id
// of the document the row was last persisted to, empty until the first save.
type ItineraryRow struct {
	StoreID string `json:"store_id,omitempty"`
	models.ItineraryEntry
}

// Session is the per-browser state. The itinerary table is seeded once at
// creation and is authoritative for the lifetime of the session.
type Session struct {
	ID        string         `json:"id"`
	Unlocked  bool           `json:"unlocked"`
	Itinerary []ItineraryRow `json:"itinerary"`
	CreatedAt time.Time      `json:"created_at"`
}

// Entries returns the itinerary without store ids.
func (s *Session) Entries() []models.ItineraryEntry {
	out := make([]models.ItineraryEntry, len(s.Itinerary))
	for i, row := range s.Itinerary {
		out[i] = row.ItineraryEntry
	}
	return out
}

// SessionStore persists sessions between requests.
type SessionStore interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	// Refresh extends the lifetime of a stored session without rewriting it.
	Refresh(ctx context.Context, id string, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// SessionManager creates, loads and updates sessions. Updates to one session
// are serialised with a per-session lock.
type SessionManager struct {
	store SessionStore
	ttl   time.Duration
	seed  []models.ItineraryEntry
	log   *zap.Logger

	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func NewSessionManager(store SessionStore, ttl time.Duration, seed []models.ItineraryEntry, log *zap.Logger) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionManager{
		store: store,
		ttl:   ttl,
		seed:  append([]models.ItineraryEntry(nil), seed...),
		log:   log,
		locks: make(map[string]*sessionLock),
	}
}

// TTL is the idle lifetime applied on every save.
func (m *SessionManager) TTL() time.Duration { return m.ttl }

// Create starts a session seeded with the sample itinerary.
func (m *SessionManager) Create(ctx context.Context) (*Session, error) {
	s := &Session{
		ID:        uuid.NewString(),
		Itinerary: make([]ItineraryRow, len(m.seed)),
		CreatedAt: time.Now().UTC(),
	}
	for i, e := range m.seed {
		s.Itinerary[i] = ItineraryRow{ItineraryEntry: e}
	}
	if err := m.store.Save(ctx, s, m.ttl); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	m.log.Debug("session created", zap.String("session_id", s.ID))
	return s, nil
}

// Get loads a session, returning ErrSessionNotFound when it is unknown or expired.
func (m *SessionManager) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}
	return m.store.Load(ctx, id)
}

// Touch refreshes the idle timer of a session. The stored body is left alone
// so a concurrent Update is never overwritten by an older copy.
func (m *SessionManager) Touch(ctx context.Context, id string) error {
	return m.store.Refresh(ctx, id, m.ttl)
}

// Update applies fn to the latest copy of the session under its lock and
// saves the result. The session is saved even when fn fails: local edits made
// before a failing store call are kept.
func (m *SessionManager) Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error) {
	unlock := m.lock(id)
	defer unlock()

	s, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fnErr := fn(s)
	if err := m.store.Save(ctx, s, m.ttl); err != nil {
		m.log.Error("failed to save session", zap.String("session_id", id), zap.Error(err))
		if fnErr == nil {
			return s, fmt.Errorf("%w: %w", ErrSessionUnavailable, err)
		}
	}
	return s, fnErr
}

// Delete ends a session.
func (m *SessionManager) Delete(ctx context.Context, id string) error {
	return m.store.Delete(ctx, id)
}

func (m *SessionManager) lock(id string) func() {
	m.mu.Lock()
	l, ok := m.locks[id]
	if !ok {
		l = &sessionLock{}
		m.locks[id] = l
	}
	l.refs++
	m.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		m.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(m.locks, id)
		}
		m.mu.Unlock()
	}
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session attached by WithSession.
func SessionFrom(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}
