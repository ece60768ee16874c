package memory

import (
	"context"
	"time"

	"persona-assistant-be/internal/repository/contract"
	"persona-assistant-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// CachedSessionStore layers a go-cache read-through cache over a durable
// backend. Writes go to the backend first; the cache is only refreshed after
// the durable write succeeds, so the cache can never hold state the backend
// lost.
type CachedSessionStore struct {
	backend contract.SessionStore
	cache   *cache.Cache
}

func NewCachedSessionStore(backend contract.SessionStore) *CachedSessionStore {
	return &CachedSessionStore{
		backend: backend,
		cache:   cache.New(15*time.Minute, 5*time.Minute),
	}
}

var _ contract.SessionStore = (*CachedSessionStore)(nil)

func (s *CachedSessionStore) StoreSession(ctx context.Context, sessionID string, role string, history []store.Turn) error {
	if err := s.backend.StoreSession(ctx, sessionID, role, history); err != nil {
		return err
	}
	s.cache.Set(sessionID, &store.SessionRecord{
		SessionID: sessionID,
		Role:      role,
		History:   store.TruncateHistory(history),
	}, cache.DefaultExpiration)
	return nil
}

func (s *CachedSessionStore) RetrieveSession(ctx context.Context, sessionID string) (*store.SessionRecord, bool, error) {
	if x, found := s.cache.Get(sessionID); found {
		return x.(*store.SessionRecord), true, nil
	}

	record, found, err := s.backend.RetrieveSession(ctx, sessionID)
	if err != nil || !found {
		return nil, found, err
	}
	s.cache.Set(sessionID, record, cache.DefaultExpiration)
	return record, true, nil
}

func (s *CachedSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	s.cache.Delete(sessionID)
	return s.backend.DeleteSession(ctx, sessionID)
}
