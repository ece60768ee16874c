package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"persona-assistant-be/internal/repository/contract"
	"persona-assistant-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix  = "assistant:session:"
	defaultSessionTTL = 24 * time.Hour
)

// SessionStore keeps visitor sessions in Redis with a sliding TTL.
// Each session is one JSON value, so writes are last-write-wins.
type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client) contract.SessionStore {
	return &SessionStore{
		rdb: rdb,
		ttl: defaultSessionTTL,
	}
}

type sessionPayload struct {
	Role    string       `json:"role"`
	History []store.Turn `json:"history"`
}

func (s *SessionStore) key(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func (s *SessionStore) StoreSession(ctx context.Context, sessionID string, role string, history []store.Turn) error {
	payload := sessionPayload{
		Role:    role,
		History: store.TruncateHistory(history),
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal session payload: %w", err)
	}
	return s.rdb.Set(ctx, s.key(sessionID), raw, s.ttl).Err()
}

func (s *SessionStore) RetrieveSession(ctx context.Context, sessionID string) (*store.SessionRecord, bool, error) {
	raw, err := s.rdb.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var payload sessionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false, fmt.Errorf("unmarshal session payload: %w", err)
	}
	return &store.SessionRecord{
		SessionID: sessionID,
		Role:      payload.Role,
		History:   payload.History,
	}, true, nil
}

func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, s.key(sessionID)).Err()
}
