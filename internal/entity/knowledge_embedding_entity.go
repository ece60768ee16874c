package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeEmbedding is one embedded slice of a knowledge chunk. Source is
// denormalized from the owning chunk so retrieval can cite without a join.
type KnowledgeEmbedding struct {
	Id             uuid.UUID
	Document       string
	Source         string
	EmbeddingValue []float32
	ChunkId        uuid.UUID
	ChunkIndex     int
	CreatedAt      time.Time
}
