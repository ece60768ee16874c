package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeChunk is one curated fact block about the subject.
type KnowledgeChunk struct {
	Id        uuid.UUID
	Title     string
	Content   string
	Source    string // section of the knowledge base, e.g. "resume", "projects"
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
