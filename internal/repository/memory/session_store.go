package memory

import (
	"context"
	"time"

	"persona-assistant-be/internal/repository/contract"
	"persona-assistant-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionStore is an in-process implementation of contract.SessionStore
// backed by go-cache. It is not durable across restarts; it serves unit tests
// and the read-through layer in CachedSessionStore.
type SessionStore struct {
	cache *cache.Cache
}

func NewSessionStore() *SessionStore {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	return &SessionStore{
		cache: cache.New(1*time.Hour, 10*time.Minute),
	}
}

var _ contract.SessionStore = (*SessionStore)(nil)

func (s *SessionStore) StoreSession(_ context.Context, sessionID string, role string, history []store.Turn) error {
	record := &store.SessionRecord{
		SessionID: sessionID,
		Role:      role,
		History:   store.TruncateHistory(history),
	}
	s.cache.Set(sessionID, record, cache.DefaultExpiration)
	return nil
}

func (s *SessionStore) RetrieveSession(_ context.Context, sessionID string) (*store.SessionRecord, bool, error) {
	if x, found := s.cache.Get(sessionID); found {
		return x.(*store.SessionRecord), true, nil
	}
	return nil, false, nil
}

func (s *SessionStore) DeleteSession(_ context.Context, sessionID string) error {
	s.cache.Delete(sessionID)
	return nil
}
