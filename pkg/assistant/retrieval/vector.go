package retrieval

import (
	"context"
	"fmt"
	"log"

	"persona-assistant-be/internal/constant"
	"persona-assistant-be/internal/repository/unitofwork"
	"persona-assistant-be/pkg/embedding"
	"persona-assistant-be/pkg/store"
)

// VectorGateway implements Gateway on top of the pgvector-backed knowledge
// and code repositories. It embeds the query once and reuses the vector for
// both searches.
type VectorGateway struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	threshold         float64
	logger            *log.Logger
}

// NewVectorGateway creates a gateway with the given similarity threshold.
// Hits below the threshold are treated as "nothing matched".
func NewVectorGateway(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	threshold float64,
	logger *log.Logger,
) *VectorGateway {
	return &VectorGateway{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		threshold:         threshold,
		logger:            logger,
	}
}

var _ Gateway = (*VectorGateway)(nil)

func (g *VectorGateway) Search(ctx context.Context, query string, plan Plan) (*Result, error) {
	embeddingRes, err := g.embeddingProvider.Generate(query, constant.TaskTypeRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}
	queryVector := embeddingRes.Embedding.Values

	uow := g.uowFactory.NewUnitOfWork(ctx)
	result := &Result{}

	if plan.TopKText > 0 {
		scored, err := uow.KnowledgeEmbeddingRepository().SearchSimilarWithScore(
			ctx, queryVector, plan.TopKText, g.threshold,
		)
		if err != nil {
			return nil, fmt.Errorf("knowledge search failed: %w", err)
		}
		g.logger.Printf("[RETRIEVAL] %d text hits for top_k=%d", len(scored), plan.TopKText)

		for _, hit := range scored {
			result.Snippets = append(result.Snippets, store.Snippet{
				Content: hit.Embedding.Document,
				Source:  hit.Embedding.Source,
				Score:   float32(hit.Similarity),
			})
		}
	}

	// Code snippets are only fetched when the plan asks for them; callers
	// with want_code=false never touch the code table at all.
	if plan.WantCode && plan.TopKCode > 0 {
		scored, err := uow.CodeSnippetRepository().SearchSimilarWithScore(
			ctx, queryVector, plan.TopKCode, g.threshold,
		)
		if err != nil {
			return nil, fmt.Errorf("code search failed: %w", err)
		}
		g.logger.Printf("[RETRIEVAL] %d code hits for top_k=%d", len(scored), plan.TopKCode)

		for _, hit := range scored {
			result.CodeSnippets = append(result.CodeSnippets, store.CodeSnippet{
				Name:     hit.Snippet.Name,
				Citation: hit.Snippet.Citation,
				Content:  hit.Snippet.Content,
				Link:     hit.Snippet.SourceURL,
				Score:    float32(hit.Similarity),
			})
		}
	}

	return result, nil
}
