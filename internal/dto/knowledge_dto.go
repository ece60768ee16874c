package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateKnowledgeChunkRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Source  string `json:"source" validate:"required"`
}

type CreateKnowledgeChunkResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateKnowledgeChunkRequest struct {
	Id      uuid.UUID `json:"id" validate:"required"`
	Title   string    `json:"title" validate:"required"`
	Content string    `json:"content" validate:"required"`
	Source  string    `json:"source" validate:"required"`
}

type KnowledgeChunkResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Source    string     `json:"source"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type SearchKnowledgeRequest struct {
	Query string `json:"query" validate:"required"`
	Limit int    `json:"limit"`
}

type SearchKnowledgeResponse struct {
	Document string  `json:"document"`
	Source   string  `json:"source"`
	Score    float64 `json:"score"`
}

type CreateCodeSnippetRequest struct {
	Name      string `json:"name" validate:"required"`
	Citation  string `json:"citation"`
	Content   string `json:"content" validate:"required"`
	SourceURL string `json:"source_url"`
}

type CreateCodeSnippetResponse struct {
	Id uuid.UUID `json:"id"`
}

// PublishEmbedChunkMessage is the ingestion work item carried on the
// in-process bus between the knowledge service and the embedding consumer.
type PublishEmbedChunkMessage struct {
	ChunkId uuid.UUID `json:"chunk_id"`
}
