package dto

import "persona-assistant-be/pkg/store"

// TurnPayload mirrors store.Turn on the wire.
type TurnPayload struct {
	Speaker string `json:"speaker" validate:"required,oneof=user assistant"`
	Text    string `json:"text"`
}

// ChatRequest is one visitor exchange. Query may be empty (classified as
// general) and an unknown role is downgraded, never rejected. ChatHistory,
// when present, overrides the stored session history for this exchange.
type ChatRequest struct {
	SessionID   string        `json:"session_id"`
	Role        string        `json:"role"`
	Query       string        `json:"query"`
	ChatHistory []TurnPayload `json:"chat_history,omitempty"`
}

type ChatResponse struct {
	SessionID string                  `json:"session_id,omitempty"`
	QueryType string                  `json:"query_type"`
	Response  string                  `json:"response"`
	Context   *store.RetrievalContext `json:"context,omitempty"`
}

type RoleResponse struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	AllowCode bool   `json:"allow_code"`
}

type SessionResponse struct {
	SessionID string        `json:"session_id"`
	Role      string        `json:"role"`
	History   []TurnPayload `json:"history"`
}
