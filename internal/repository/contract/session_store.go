package contract

import (
	"context"

	"persona-assistant-be/pkg/store"
)

// SessionStore is the durable keyed store for visitor sessions. Absence is a
// valid outcome of RetrieveSession (found=false), never an error. Writes are
// last-write-wins; implementations must apply the history truncation
// invariant before persisting so the stored record is always within the cap.
type SessionStore interface {
	StoreSession(ctx context.Context, sessionID string, role string, history []store.Turn) error
	RetrieveSession(ctx context.Context, sessionID string) (*store.SessionRecord, bool, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
