package retrieval

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"persona-assistant-be/internal/constant"
	"persona-assistant-be/pkg/embedding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingEmbedder struct {
	taskType string
	err      error
}

func (c *capturingEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	c.taskType = taskType
	return nil, c.err
}

func TestSearchEmbedsQueryAsRetrievalQuery(t *testing.T) {
	embedder := &capturingEmbedder{err: errors.New("provider unavailable")}
	gateway := NewVectorGateway(nil, embedder, 0.35, log.New(io.Discard, "", 0))

	_, err := gateway.Search(context.Background(), "how does the pipeline work", Plan{TopKText: 3})
	require.Error(t, err)

	// Queries use the query-side task hint, not the document-side one used
	// during ingestion.
	assert.Equal(t, constant.TaskTypeRetrievalQuery, embedder.taskType)
}
