package router

import (
	"context"
	"log"
	"time"

	"persona-assistant-be/internal/repository/contract"
	"persona-assistant-be/pkg/assistant/classify"
	"persona-assistant-be/pkg/assistant/history"
	"persona-assistant-be/pkg/assistant/response"
	"persona-assistant-be/pkg/assistant/retrieval"
	"persona-assistant-be/pkg/role"
	"persona-assistant-be/pkg/store"
)

const (
	DefaultRetrievalTimeout  = 10 * time.Second
	DefaultGenerationTimeout = 60 * time.Second
)

// Router orchestrates one visitor exchange end to end: role normalization,
// history resolution, classification, dispatch, memory write-back. Every
// collaborator is injected so the router can run against deterministic fakes.
type Router struct {
	sessions  contract.SessionStore
	gateway   retrieval.Gateway
	generator response.Generator
	budget    history.Budget
	logger    *log.Logger

	retrievalTimeout  time.Duration
	generationTimeout time.Duration
}

type Option func(*Router)

func WithBudget(b history.Budget) Option {
	return func(r *Router) { r.budget = b }
}

func WithTimeouts(retrieval, generation time.Duration) Option {
	return func(r *Router) {
		r.retrievalTimeout = retrieval
		r.generationTimeout = generation
	}
}

func New(sessions contract.SessionStore, gateway retrieval.Gateway, generator response.Generator, logger *log.Logger, opts ...Option) *Router {
	r := &Router{
		sessions:          sessions,
		gateway:           gateway,
		generator:         generator,
		budget:            history.DefaultBudget(),
		logger:            logger,
		retrievalTimeout:  DefaultRetrievalTimeout,
		generationTimeout: DefaultGenerationTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Request is one caller exchange. ChatHistory, when non-nil, takes priority
// over whatever the session store holds.
type Request struct {
	SessionID   string
	Role        string
	Query       string
	ChatHistory []store.Turn
}

// Route runs one exchange to completion. It never returns an error to the
// caller boundary: collaborator failures degrade to an apology response and
// the result is always well formed.
func (r *Router) Route(ctx context.Context, req Request) *store.RoutedResult {
	visitorRole := role.Parse(req.Role)

	effectiveHistory := r.resolveHistory(ctx, req)
	preamble := history.BuildPreamble(effectiveHistory, r.budget)
	queryType := classify.Classify(req.Query, visitorRole)

	var (
		answer    string
		retrieved *store.RetrievalContext
	)

	switch queryType {
	case classify.TypeConfession:
		// Unconditionally free of collaborator calls.
		answer = response.ConfessionMessage()
	case classify.TypeMMA:
		answer = response.MMAMessage()
	default:
		answer, retrieved = r.retrieveAndGenerate(ctx, req.Query, visitorRole, queryType, preamble)
	}

	r.persist(ctx, req, visitorRole, effectiveHistory, answer)

	return &store.RoutedResult{
		QueryType: queryType,
		Response:  answer,
		Context:   retrieved,
	}
}

// resolveHistory picks the effective history: caller-supplied wins, then the
// session store, then empty. A store read failure fails open to empty so a
// broken backend degrades continuity, not the exchange.
func (r *Router) resolveHistory(ctx context.Context, req Request) []store.Turn {
	if req.ChatHistory != nil {
		return req.ChatHistory
	}
	if req.SessionID == "" {
		return nil
	}
	record, found, err := r.sessions.RetrieveSession(ctx, req.SessionID)
	if err != nil {
		r.logger.Printf("[WARN] Session read failed for %s, continuing without history: %v", req.SessionID, err)
		return nil
	}
	if !found {
		return nil
	}
	return record.History
}

func (r *Router) retrieveAndGenerate(ctx context.Context, query string, visitorRole role.Role, queryType string, preamble string) (string, *store.RetrievalContext) {
	plan := retrieval.PlanFor(visitorRole, queryType)

	retrieved := &store.RetrievalContext{}
	if plan.TopKText > 0 {
		searchCtx, cancel := context.WithTimeout(ctx, r.retrievalTimeout)
		result, err := r.gateway.Search(searchCtx, query, plan)
		cancel()
		if err != nil {
			r.logger.Printf("[ERROR] Retrieval failed (%s): %v", queryType, err)
			return response.FallbackApology(), nil
		}
		retrieved.Snippets = result.Snippets
		retrieved.CodeSnippets = result.CodeSnippets
	}

	genCtx, cancel := context.WithTimeout(ctx, r.generationTimeout)
	defer cancel()
	answer, err := r.generator.Generate(genCtx, query, visitorRole, preamble, retrieved)
	if err != nil {
		r.logger.Printf("[ERROR] Generation failed (%s): %v", queryType, err)
		return response.FallbackApology(), nil
	}
	return answer, retrieved
}

// persist appends the turn pair and writes the session back. A write failure
// is logged, never fatal: losing this turn's history must not fail the
// in-flight response.
func (r *Router) persist(ctx context.Context, req Request, visitorRole role.Role, effectiveHistory []store.Turn, answer string) {
	if req.SessionID == "" {
		return
	}
	updated := append(append([]store.Turn{}, effectiveHistory...),
		store.Turn{Speaker: store.SpeakerUser, Text: req.Query},
		store.Turn{Speaker: store.SpeakerAssistant, Text: answer},
	)
	updated = store.TruncateHistory(updated)
	if err := r.sessions.StoreSession(ctx, req.SessionID, string(visitorRole), updated); err != nil {
		r.logger.Printf("[WARN] Session write failed for %s: %v", req.SessionID, err)
	}
}
