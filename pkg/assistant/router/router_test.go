package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	"persona-assistant-be/pkg/assistant/classify"
	"persona-assistant-be/pkg/assistant/response"
	"persona-assistant-be/pkg/assistant/retrieval"
	"persona-assistant-be/pkg/role"
	"persona-assistant-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionStore struct {
	records   map[string]*store.SessionRecord
	readErr   error
	writeErr  error
	reads     int
	writes    int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{records: map[string]*store.SessionRecord{}}
}

func (f *fakeSessionStore) StoreSession(ctx context.Context, sessionID string, roleName string, history []store.Turn) error {
	f.writes++
	if f.writeErr != nil {
		return f.writeErr
	}
	f.records[sessionID] = &store.SessionRecord{
		SessionID: sessionID,
		Role:      roleName,
		History:   store.TruncateHistory(history),
	}
	return nil
}

func (f *fakeSessionStore) RetrieveSession(ctx context.Context, sessionID string) (*store.SessionRecord, bool, error) {
	f.reads++
	if f.readErr != nil {
		return nil, false, f.readErr
	}
	record, ok := f.records[sessionID]
	return record, ok, nil
}

func (f *fakeSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	delete(f.records, sessionID)
	return nil
}

type fakeGateway struct {
	calls    int
	lastPlan retrieval.Plan
	result   *retrieval.Result
	err      error
}

func (f *fakeGateway) Search(ctx context.Context, query string, plan retrieval.Plan) (*retrieval.Result, error) {
	f.calls++
	f.lastPlan = plan
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &retrieval.Result{}, nil
}

type fakeGenerator struct {
	calls        int
	lastPreamble string
	answer       string
	err          error
}

func (f *fakeGenerator) Generate(ctx context.Context, query string, visitorRole role.Role, preamble string, retrieved *store.RetrievalContext) (string, error) {
	f.calls++
	f.lastPreamble = preamble
	if f.err != nil {
		return "", f.err
	}
	if f.answer != "" {
		return f.answer, nil
	}
	return "a generated answer", nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestRouter(sessions *fakeSessionStore, gateway *fakeGateway, generator *fakeGenerator) *Router {
	return New(sessions, gateway, generator, discardLogger())
}

func TestRouteConfessionIsolation(t *testing.T) {
	sessions := newFakeSessionStore()
	gateway := &fakeGateway{}
	generator := &fakeGenerator{}
	r := newTestRouter(sessions, gateway, generator)

	result := r.Route(context.Background(), Request{
		SessionID: "s1",
		Role:      string(role.Confession),
		Query:     "I like someone",
	})

	require.NotNil(t, result)
	assert.Equal(t, classify.TypeConfession, result.QueryType)
	assert.NotEmpty(t, result.Response)
	assert.Nil(t, result.Context)
	assert.Zero(t, gateway.calls, "confession path must never hit retrieval")
	assert.Zero(t, generator.calls, "confession path must never hit generation")
}

func TestRouteMMAShortcut(t *testing.T) {
	sessions := newFakeSessionStore()
	gateway := &fakeGateway{}
	generator := &fakeGenerator{}
	r := newTestRouter(sessions, gateway, generator)

	result := r.Route(context.Background(), Request{
		SessionID: "s1",
		Role:      string(role.CasualVisitor),
		Query:     "tell me about your MMA training",
	})

	assert.Equal(t, classify.TypeMMA, result.QueryType)
	assert.Contains(t, result.Response, response.MMAHighlightLink)
	assert.Zero(t, gateway.calls)
	assert.Zero(t, generator.calls)
}

func TestRouteTechnicalQueryForEngineer(t *testing.T) {
	sessions := newFakeSessionStore()
	gateway := &fakeGateway{
		result: &retrieval.Result{
			Snippets:     []store.Snippet{{Content: "pipeline doc", Source: "projects", Score: 0.9}},
			CodeSnippets: []store.CodeSnippet{{Name: "router", Citation: "router.go:10", Content: "func Route()", Score: 0.8}},
		},
	}
	generator := &fakeGenerator{answer: "it works by embedding the query"}
	r := newTestRouter(sessions, gateway, generator)

	result := r.Route(context.Background(), Request{
		SessionID: "s1",
		Role:      string(role.SoftwareEngineer),
		Query:     "How does the retrieval pipeline work?",
	})

	assert.Equal(t, classify.TypeTechnical, result.QueryType)
	assert.Equal(t, "it works by embedding the query", result.Response)
	assert.NotEqual(t, response.FallbackApology(), result.Response)
	require.NotNil(t, result.Context)
	assert.Len(t, result.Context.CodeSnippets, 1)
	assert.True(t, gateway.lastPlan.WantCode)
	assert.Equal(t, 1, gateway.calls)
	assert.Equal(t, 1, generator.calls)
}

func TestRouteUnknownRoleNeverGetsCode(t *testing.T) {
	sessions := newFakeSessionStore()
	gateway := &fakeGateway{}
	generator := &fakeGenerator{}
	r := newTestRouter(sessions, gateway, generator)

	result := r.Route(context.Background(), Request{
		SessionID: "s1",
		Role:      "Unknown Role X",
		Query:     "show me the source code of your pipeline",
	})

	require.NotNil(t, result)
	assert.False(t, gateway.lastPlan.WantCode, "unknown role must be code-gated")
	if result.Context != nil {
		assert.Empty(t, result.Context.CodeSnippets)
	}
	// Technical keyword under a non-code role downgrades to career framing.
	assert.Equal(t, classify.TypeCareer, result.QueryType)
}

func TestRouteDegradationOnGeneratorFailure(t *testing.T) {
	sessions := newFakeSessionStore()
	gateway := &fakeGateway{}
	generator := &fakeGenerator{err: errors.New("upstream exploded: secret detail")}
	r := newTestRouter(sessions, gateway, generator)

	result := r.Route(context.Background(), Request{
		SessionID: "s1",
		Role:      string(role.CasualVisitor),
		Query:     "what do you do for work",
	})

	require.NotNil(t, result)
	assert.Equal(t, response.FallbackApology(), result.Response)
	assert.NotContains(t, result.Response, "secret detail")
	assert.NotEmpty(t, result.QueryType)
}

func TestRouteDegradationOnRetrievalFailure(t *testing.T) {
	sessions := newFakeSessionStore()
	gateway := &fakeGateway{err: errors.New("vector store down")}
	generator := &fakeGenerator{}
	r := newTestRouter(sessions, gateway, generator)

	result := r.Route(context.Background(), Request{
		SessionID: "s1",
		Role:      string(role.TechnicalHiringManager),
		Query:     "what stack do you deploy on",
	})

	assert.Equal(t, response.FallbackApology(), result.Response)
	assert.Zero(t, generator.calls, "generation is skipped when retrieval fails")
	assert.NotContains(t, result.Response, "vector store down")
}

func TestRoutePersistsTurnPair(t *testing.T) {
	sessions := newFakeSessionStore()
	gateway := &fakeGateway{}
	generator := &fakeGenerator{answer: "hello there"}
	r := newTestRouter(sessions, gateway, generator)

	r.Route(context.Background(), Request{
		SessionID: "s1",
		Role:      string(role.CasualVisitor),
		Query:     "hi",
	})

	record, ok := sessions.records["s1"]
	require.True(t, ok)
	require.Len(t, record.History, 2)
	assert.Equal(t, store.SpeakerUser, record.History[0].Speaker)
	assert.Equal(t, "hi", record.History[0].Text)
	assert.Equal(t, store.SpeakerAssistant, record.History[1].Speaker)
	assert.Equal(t, "hello there", record.History[1].Text)
	assert.Equal(t, string(role.CasualVisitor), record.Role)
}

func TestRouteTruncatesPersistedHistory(t *testing.T) {
	sessions := newFakeSessionStore()
	long := make([]store.Turn, 0, 14)
	for i := 0; i < 14; i++ {
		long = append(long, store.Turn{Speaker: store.SpeakerUser, Text: fmt.Sprintf("turn-%d", i)})
	}
	sessions.records["s1"] = &store.SessionRecord{SessionID: "s1", Role: string(role.CasualVisitor), History: long}

	r := newTestRouter(sessions, &fakeGateway{}, &fakeGenerator{})
	r.Route(context.Background(), Request{
		SessionID: "s1",
		Role:      string(role.CasualVisitor),
		Query:     "latest question",
	})

	record := sessions.records["s1"]
	require.Len(t, record.History, store.MaxHistoryTurns)
	assert.Equal(t, "latest question", record.History[len(record.History)-2].Text)
}

func TestRouteFailsOpenOnSessionReadError(t *testing.T) {
	sessions := newFakeSessionStore()
	sessions.readErr = errors.New("backend down")
	gateway := &fakeGateway{}
	generator := &fakeGenerator{answer: "still answered"}
	r := newTestRouter(sessions, gateway, generator)

	result := r.Route(context.Background(), Request{
		SessionID: "s1",
		Role:      string(role.CasualVisitor),
		Query:     "anything interesting?",
	})

	assert.Equal(t, "still answered", result.Response)
}

func TestRouteWriteFailureDoesNotFailExchange(t *testing.T) {
	sessions := newFakeSessionStore()
	sessions.writeErr = errors.New("disk full")
	r := newTestRouter(sessions, &fakeGateway{}, &fakeGenerator{answer: "fine"})

	result := r.Route(context.Background(), Request{
		SessionID: "s1",
		Role:      string(role.CasualVisitor),
		Query:     "hello",
	})

	assert.Equal(t, "fine", result.Response)
}

func TestRouteCallerHistoryTakesPriority(t *testing.T) {
	sessions := newFakeSessionStore()
	sessions.records["s1"] = &store.SessionRecord{
		SessionID: "s1",
		Role:      string(role.CasualVisitor),
		History:   []store.Turn{{Speaker: store.SpeakerUser, Text: "from the store"}},
	}
	generator := &fakeGenerator{}
	r := newTestRouter(sessions, &fakeGateway{}, generator)

	r.Route(context.Background(), Request{
		SessionID: "s1",
		Role:      string(role.CasualVisitor),
		Query:     "and now?",
		ChatHistory: []store.Turn{
			{Speaker: store.SpeakerUser, Text: "from the caller"},
		},
	})

	assert.True(t, strings.Contains(generator.lastPreamble, "from the caller"))
	assert.False(t, strings.Contains(generator.lastPreamble, "from the store"))
}

func TestRouteEmptySessionIDSkipsPersistence(t *testing.T) {
	sessions := newFakeSessionStore()
	r := newTestRouter(sessions, &fakeGateway{}, &fakeGenerator{})

	result := r.Route(context.Background(), Request{
		Role:  string(role.CasualVisitor),
		Query: "hello",
	})

	require.NotNil(t, result)
	assert.Zero(t, sessions.writes)
	assert.Zero(t, sessions.reads)
}
