package implementation

import (
	"context"
	"errors"

	"persona-assistant-be/internal/entity"
	"persona-assistant-be/internal/mapper"
	"persona-assistant-be/internal/model"
	"persona-assistant-be/internal/repository/contract"
	"persona-assistant-be/pkg/store"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSessionStore persists visitor sessions in Postgres. Writes are
// last-write-wins upserts keyed on session_key.
type GormSessionStore struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewGormSessionStore(db *gorm.DB) contract.SessionStore {
	return &GormSessionStore{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (s *GormSessionStore) StoreSession(ctx context.Context, sessionID string, role string, history []store.Turn) error {
	e := &entity.VisitorSession{
		SessionKey: sessionID,
		Role:       role,
		History:    store.TruncateHistory(history),
	}
	m, err := s.mapper.ToModel(e)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"role", "history", "updated_at"}),
		}).
		Create(m).Error
}

func (s *GormSessionStore) RetrieveSession(ctx context.Context, sessionID string) (*store.SessionRecord, bool, error) {
	var m model.VisitorSession
	err := s.db.WithContext(ctx).Where("session_key = ?", sessionID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	e, err := s.mapper.ToEntity(&m)
	if err != nil {
		return nil, false, err
	}
	return &store.SessionRecord{
		SessionID: e.SessionKey,
		Role:      e.Role,
		History:   e.History,
	}, true, nil
}

func (s *GormSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	return s.db.WithContext(ctx).Where("session_key = ?", sessionID).Delete(&model.VisitorSession{}).Error
}
