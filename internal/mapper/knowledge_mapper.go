package mapper

import (
	"persona-assistant-be/internal/entity"
	"persona-assistant-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) ChunkToModel(e *entity.KnowledgeChunk) *model.KnowledgeChunk {
	return &model.KnowledgeChunk{
		Id:        e.Id,
		Title:     e.Title,
		Content:   e.Content,
		Source:    e.Source,
		CreatedAt: e.CreatedAt,
	}
}

func (m *KnowledgeMapper) ChunkToEntity(mo *model.KnowledgeChunk) *entity.KnowledgeChunk {
	e := &entity.KnowledgeChunk{
		Id:        mo.Id,
		Title:     mo.Title,
		Content:   mo.Content,
		Source:    mo.Source,
		CreatedAt: mo.CreatedAt,
	}
	if !mo.UpdatedAt.IsZero() {
		updated := mo.UpdatedAt
		e.UpdatedAt = &updated
	}
	if mo.DeletedAt.Valid {
		deleted := mo.DeletedAt.Time
		e.DeletedAt = &deleted
		e.IsDeleted = true
	}
	return e
}

func (m *KnowledgeMapper) ChunksToEntities(models []*model.KnowledgeChunk) []*entity.KnowledgeChunk {
	entities := make([]*entity.KnowledgeChunk, len(models))
	for i, mo := range models {
		entities[i] = m.ChunkToEntity(mo)
	}
	return entities
}

func (m *KnowledgeMapper) EmbeddingToModel(e *entity.KnowledgeEmbedding) *model.KnowledgeEmbedding {
	return &model.KnowledgeEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		Source:         e.Source,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		ChunkId:        e.ChunkId,
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *KnowledgeMapper) EmbeddingToEntity(mo *model.KnowledgeEmbedding) *entity.KnowledgeEmbedding {
	return &entity.KnowledgeEmbedding{
		Id:             mo.Id,
		Document:       mo.Document,
		Source:         mo.Source,
		EmbeddingValue: mo.EmbeddingValue.Slice(),
		ChunkId:        mo.ChunkId,
		ChunkIndex:     mo.ChunkIndex,
		CreatedAt:      mo.CreatedAt,
	}
}
