package mapper

import (
	"persona-assistant-be/internal/entity"
	"persona-assistant-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type CodeMapper struct{}

func NewCodeMapper() *CodeMapper {
	return &CodeMapper{}
}

func (m *CodeMapper) ToModel(e *entity.CodeSnippet) *model.CodeSnippet {
	return &model.CodeSnippet{
		Id:             e.Id,
		Name:           e.Name,
		Citation:       e.Citation,
		Content:        e.Content,
		SourceURL:      e.SourceURL,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		CreatedAt:      e.CreatedAt,
	}
}

func (m *CodeMapper) ToEntity(mo *model.CodeSnippet) *entity.CodeSnippet {
	return &entity.CodeSnippet{
		Id:             mo.Id,
		Name:           mo.Name,
		Citation:       mo.Citation,
		Content:        mo.Content,
		SourceURL:      mo.SourceURL,
		EmbeddingValue: mo.EmbeddingValue.Slice(),
		CreatedAt:      mo.CreatedAt,
	}
}

func (m *CodeMapper) ToEntities(models []*model.CodeSnippet) []*entity.CodeSnippet {
	entities := make([]*entity.CodeSnippet, len(models))
	for i, mo := range models {
		entities[i] = m.ToEntity(mo)
	}
	return entities
}
