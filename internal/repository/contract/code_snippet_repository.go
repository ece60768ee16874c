package contract

import (
	"context"

	"persona-assistant-be/internal/entity"
	"persona-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredCodeSnippet wraps CodeSnippet with its similarity score
type ScoredCodeSnippet struct {
	Snippet    *entity.CodeSnippet
	Similarity float64
}

type CodeSnippetRepository interface {
	Create(ctx context.Context, snippet *entity.CodeSnippet) error
	CreateBulk(ctx context.Context, snippets []*entity.CodeSnippet) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CodeSnippet, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredCodeSnippet, error)
}
