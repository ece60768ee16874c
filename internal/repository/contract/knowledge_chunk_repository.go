package contract

import (
	"context"

	"persona-assistant-be/internal/entity"
	"persona-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

type KnowledgeChunkRepository interface {
	Create(ctx context.Context, chunk *entity.KnowledgeChunk) error
	Update(ctx context.Context, chunk *entity.KnowledgeChunk) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeChunk, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
