package service

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"persona-assistant-be/internal/dto"
	"persona-assistant-be/internal/repository/contract"
	"persona-assistant-be/pkg/assistant/router"
	"persona-assistant-be/pkg/events"
	pktNats "persona-assistant-be/pkg/nats"
	"persona-assistant-be/pkg/role"
	"persona-assistant-be/pkg/store"
)

type IAssistantService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	ListRoles(ctx context.Context) []*dto.RoleResponse
	GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type assistantService struct {
	router         *router.Router
	sessions       contract.SessionStore
	eventPublisher *pktNats.Publisher
}

func NewAssistantService(
	r *router.Router,
	sessions contract.SessionStore,
	eventPublisher *pktNats.Publisher,
) IAssistantService {
	return &assistantService{
		router:         r,
		sessions:       sessions,
		eventPublisher: eventPublisher,
	}
}

// InitLLMLogger builds the isolated file logger shared by the retrieval and
// generation components, kept out of the main log stream.
func InitLLMLogger(logPath string) *log.Logger {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
		return log.Default()
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("Failed to open %s: %v", logPath, err)
		return log.Default()
	}
	return log.New(f, "", log.LstdFlags)
}

func (s *assistantService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	var callerHistory []store.Turn
	if req.ChatHistory != nil {
		callerHistory = make([]store.Turn, 0, len(req.ChatHistory))
		for _, t := range req.ChatHistory {
			callerHistory = append(callerHistory, store.Turn{Speaker: t.Speaker, Text: t.Text})
		}
	}

	result := s.router.Route(ctx, router.Request{
		SessionID:   req.SessionID,
		Role:        req.Role,
		Query:       req.Query,
		ChatHistory: callerHistory,
	})

	if s.eventPublisher != nil {
		evt := events.NewExchangeCompleted(req.SessionID, string(role.Parse(req.Role)), result.QueryType)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish %s event: %v", events.TypeExchangeCompleted, err)
		}
	}

	return &dto.ChatResponse{
		SessionID: req.SessionID,
		QueryType: result.QueryType,
		Response:  result.Response,
		Context:   result.Context,
	}, nil
}

func (s *assistantService) ListRoles(ctx context.Context) []*dto.RoleResponse {
	all := role.All()
	res := make([]*dto.RoleResponse, 0, len(all))
	for _, r := range all {
		res = append(res, &dto.RoleResponse{
			Name:      string(r),
			Label:     r.Label(),
			AllowCode: r.AllowCode(),
		})
	}
	return res
}

func (s *assistantService) GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	record, found, err := s.sessions.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	history := make([]dto.TurnPayload, 0, len(record.History))
	for _, t := range record.History {
		history = append(history, dto.TurnPayload{Speaker: t.Speaker, Text: t.Text})
	}
	return &dto.SessionResponse{
		SessionID: record.SessionID,
		Role:      record.Role,
		History:   history,
	}, nil
}

func (s *assistantService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.sessions.DeleteSession(ctx, sessionID)
}
