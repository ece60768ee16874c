package store

// Speaker tags for conversation turns
const (
	SpeakerUser      = "user"
	SpeakerAssistant = "assistant"
)

// MaxHistoryTurns caps the persisted conversation history per session.
// Insertion beyond the cap evicts the oldest turns first.
const MaxHistoryTurns = 10

// Turn is a single utterance in a session's conversation history
type Turn struct {
	Speaker string `json:"speaker"` // "user" | "assistant"
	Text    string `json:"text"`
}

// SessionRecord is the durable state of one visitor session
type SessionRecord struct {
	SessionID string `json:"session_id"`
	Role      string `json:"role"`
	History   []Turn `json:"history"`
}

// TruncateHistory enforces the FIFO history cap, keeping the chronologically
// last MaxHistoryTurns turns. Returns the same slice when under the cap.
func TruncateHistory(history []Turn) []Turn {
	if len(history) <= MaxHistoryTurns {
		return history
	}
	return history[len(history)-MaxHistoryTurns:]
}

// Snippet is one ranked knowledge-base hit used to ground an answer
type Snippet struct {
	Content string  `json:"content"`
	Source  string  `json:"source"`
	Score   float32 `json:"score"`
}

// CodeSnippet is a code-level hit, only retrieved for code-capable roles
type CodeSnippet struct {
	Name     string  `json:"name"`
	Citation string  `json:"citation"` // human readable, e.g. "router.go:42"
	Content  string  `json:"content"`
	Link     string  `json:"link"` // deep link into the source repository
	Score    float32 `json:"score"`
}

// RetrievalContext carries the ranked snippets assembled for one exchange.
// It is never persisted; it lives only for the duration of a routed request.
type RetrievalContext struct {
	Snippets     []Snippet     `json:"snippets"`
	CodeSnippets []CodeSnippet `json:"code_snippets,omitempty"`
}

// Empty reports whether retrieval produced nothing usable
func (rc *RetrievalContext) Empty() bool {
	return rc == nil || (len(rc.Snippets) == 0 && len(rc.CodeSnippets) == 0)
}

// RoutedResult is the structured output of one routed exchange
type RoutedResult struct {
	QueryType string            `json:"query_type"`
	Response  string            `json:"response"`
	Context   *RetrievalContext `json:"context,omitempty"`
}
