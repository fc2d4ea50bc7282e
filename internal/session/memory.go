package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/tutoriz/internal/logger"
)

// DefaultTTL is how long an idle session lives before the reaper
// reclaims it.
const DefaultTTL = 30 * time.Minute

// MemoryStore is the in-memory Store implementation. The map lock only
// guards membership; each session carries its own mutex so appends on
// unrelated sessions never contend.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*memEntry
	ttl      time.Duration
	now      func() time.Time
}

type memEntry struct {
	mu   sync.Mutex
	sess Session
	// gone is set by the reaper under mu. An append that was waiting on
	// mu when eviction won re-checks it instead of writing into a
	// deleted session.
	gone bool
}

// NewMemoryStore creates a MemoryStore with the given idle TTL.
// A non-positive ttl falls back to DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		sessions: make(map[string]*memEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(problem Problem, mode DifficultyMode, ownerID string) (*Session, error) {
	if strings.TrimSpace(problem.Text) == "" {
		return nil, ErrEmptyProblem
	}

	now := s.now()
	sess := Session{
		ID:           uuid.NewString(),
		OwnerID:      ownerID,
		Problem:      problem,
		Mode:         NormalizeMode(string(mode)),
		State:        StateCreated,
		CreatedAt:    now,
		LastActivity: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = &memEntry{sess: sess}
	s.mu.Unlock()

	return sess.clone(), nil
}

func (s *MemoryStore) Get(id, ownerID string) (*Session, error) {
	e := s.lookup(id)
	if e == nil {
		return nil, ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone {
		return nil, ErrNotFound
	}
	if ownerID != "" && e.sess.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return e.sess.clone(), nil
}

func (s *MemoryStore) Append(id string, msg Message) (*Message, error) {
	e := s.lookup(id)
	if e == nil {
		return nil, ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone {
		return nil, ErrNotFound
	}

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	// Timestamps are assigned under the session lock so append order and
	// timestamp order can never disagree.
	msg.Timestamp = s.now()
	if n := len(e.sess.Messages); n > 0 && msg.Timestamp.Before(e.sess.Messages[n-1].Timestamp) {
		msg.Timestamp = e.sess.Messages[n-1].Timestamp
	}

	e.sess.Messages = append(e.sess.Messages, msg)
	e.sess.State = StateActive
	e.sess.LastActivity = msg.Timestamp

	cp := msg
	return &cp, nil
}

func (s *MemoryStore) Clear(id, ownerID string) error {
	e := s.lookup(id)
	if e == nil {
		return nil
	}

	e.mu.Lock()
	if e.gone {
		e.mu.Unlock()
		return nil
	}
	if ownerID != "" && e.sess.OwnerID != ownerID {
		e.mu.Unlock()
		return ErrNotFound
	}
	e.gone = true
	e.mu.Unlock()

	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) ListActive() []*Session {
	s.mu.RLock()
	entries := make([]*memEntry, 0, len(s.sessions))
	for _, e := range s.sessions {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	out := make([]*Session, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		if !e.gone {
			out = append(out, e.sess.clone())
		}
		e.mu.Unlock()
	}
	return out
}

func (s *MemoryStore) lookup(id string) *memEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// Reap evicts sessions idle longer than the TTL and returns how many it
// removed. Eviction takes each session's lock first, so it serializes
// with any in-flight append: the append either lands before eviction or
// observes the session as gone.
func (s *MemoryStore) Reap() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.RLock()
	candidates := make([]*memEntry, 0)
	for _, e := range s.sessions {
		candidates = append(candidates, e)
	}
	s.mu.RUnlock()

	reaped := 0
	for _, e := range candidates {
		e.mu.Lock()
		// Re-check idleness under the lock: an append may have landed
		// between the scan and now.
		if e.gone || e.sess.LastActivity.After(cutoff) {
			e.mu.Unlock()
			continue
		}
		e.gone = true
		id := e.sess.ID
		e.mu.Unlock()

		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		reaped++
	}
	return reaped
}

// StartReaper runs Reap on the given interval until ctx is cancelled.
func (s *MemoryStore) StartReaper(ctx context.Context, interval time.Duration, log *logger.Logger) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Reap(); n > 0 && log != nil {
					log.Debug("reaped %d idle sessions", n)
				}
			}
		}
	}()
}
