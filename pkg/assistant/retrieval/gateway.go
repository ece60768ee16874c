package retrieval

import (
	"context"

	"persona-assistant-be/pkg/store"
)

// Result is what the gateway returns for one search. Both slices are ranked
// best-first. An empty result is a valid outcome, not an error.
type Result struct {
	Snippets     []store.Snippet
	CodeSnippets []store.CodeSnippet
}

// Gateway is the external similarity-search collaborator. Implementations
// must be safe to call with Plan.WantCode=false (code is omitted entirely)
// and must return an empty result set when nothing matches above threshold.
type Gateway interface {
	Search(ctx context.Context, query string, plan Plan) (*Result, error)
}
