package entity

import (
	"time"

	"github.com/google/uuid"
)

// CodeSnippet is an embeddable code sample from the subject's repositories,
// retrieved only for code-capable roles.
type CodeSnippet struct {
	Id             uuid.UUID
	Name           string
	Citation       string // human readable, e.g. "router.go:42-88"
	Content        string
	SourceURL      string // deep link into the repository
	EmbeddingValue []float32
	CreatedAt      time.Time
}
