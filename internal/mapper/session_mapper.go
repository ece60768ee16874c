package mapper

import (
	"encoding/json"
	"fmt"

	"persona-assistant-be/internal/entity"
	"persona-assistant-be/internal/model"
	"persona-assistant-be/pkg/store"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToModel(e *entity.VisitorSession) (*model.VisitorSession, error) {
	history := e.History
	if history == nil {
		history = []store.Turn{}
	}
	raw, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("marshal session history: %w", err)
	}
	return &model.VisitorSession{
		SessionKey: e.SessionKey,
		Role:       e.Role,
		History:    raw,
		CreatedAt:  e.CreatedAt,
	}, nil
}

func (m *SessionMapper) ToEntity(mo *model.VisitorSession) (*entity.VisitorSession, error) {
	var history []store.Turn
	if len(mo.History) > 0 {
		if err := json.Unmarshal(mo.History, &history); err != nil {
			return nil, fmt.Errorf("unmarshal session history: %w", err)
		}
	}
	e := &entity.VisitorSession{
		SessionKey: mo.SessionKey,
		Role:       mo.Role,
		History:    history,
		CreatedAt:  mo.CreatedAt,
	}
	if !mo.UpdatedAt.IsZero() {
		updated := mo.UpdatedAt
		e.UpdatedAt = &updated
	}
	return e, nil
}
