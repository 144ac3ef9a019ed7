// Package session owns the "who is logged in" state: one live value,
// persisted to on-device key-value storage, rehydrated once at process start.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/frahmantamala/fintrack/internal"
	"github.com/frahmantamala/fintrack/internal/user"
)

// StorageKey is the fixed key the serialized session lives under.
const StorageKey = "user_session"

// Storage is the persistent key-value collaborator. Get returns (nil, nil)
// for a missing key; an absent session is not an error.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// State is the rehydration lifecycle. Consumers must not read an empty
// session as "logged out" until the store is StateReady.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Store holds the active session. Reads are concurrent-safe; writes
// serialize, last write wins.
type Store struct {
	mu      sync.RWMutex
	state   State
	current *user.User

	storage Storage
	logger  *slog.Logger
}

func NewStore(storage Storage, logger *slog.Logger) *Store {
	return &Store{
		state:   StateUninitialized,
		storage: storage,
		logger:  logger,
	}
}

// Initialize rehydrates the session from storage. A missing, corrupt or
// unreadable record degrades to an empty session; failures are logged and
// never surfaced, so startup is never blocked on the local store.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()

	var loaded *user.User

	raw, err := s.storage.Get(ctx, StorageKey)
	switch {
	case err != nil:
		s.logger.Warn("session storage unreadable, starting logged out", "error", err)
	case raw == nil:
		// no persisted session
	default:
		var u user.User
		if err := json.Unmarshal(raw, &u); err != nil {
			s.logger.Warn("persisted session corrupt, starting logged out", "error", err)
		} else {
			loaded = &u
		}
	}

	s.mu.Lock()
	s.current = loaded
	s.state = StateReady
	s.mu.Unlock()
}

// Set persists the session (or removes it when u is nil) and then updates the
// in-memory value. Persistence comes first: if the write fails, memory is
// left untouched so storage and memory can never disagree after a crash, and
// the error is returned for the caller to log or retry.
func (s *Store) Set(ctx context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u == nil {
		if err := s.storage.Remove(ctx, StorageKey); err != nil {
			return internal.NewStorageError("failed to remove persisted session", err)
		}
		s.current = nil
		return nil
	}

	raw, err := json.Marshal(u)
	if err != nil {
		return internal.NewStorageError("failed to serialize session", err)
	}
	if err := s.storage.Set(ctx, StorageKey, raw); err != nil {
		return internal.NewStorageError("failed to persist session", err)
	}

	clone := *u
	s.current = &clone
	return nil
}

// Current returns the in-memory session without touching storage; nil means
// no one is logged in (or rehydration has not run, see State).
func (s *Store) Current() *user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	clone := *s.current
	return &clone
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
