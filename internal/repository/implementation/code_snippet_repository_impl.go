package implementation

import (
	"context"

	"persona-assistant-be/internal/entity"
	"persona-assistant-be/internal/mapper"
	"persona-assistant-be/internal/model"
	"persona-assistant-be/internal/repository/contract"
	"persona-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type CodeSnippetRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CodeMapper
}

func NewCodeSnippetRepository(db *gorm.DB) contract.CodeSnippetRepository {
	return &CodeSnippetRepositoryImpl{
		db:     db,
		mapper: mapper.NewCodeMapper(),
	}
}

func (r *CodeSnippetRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CodeSnippetRepositoryImpl) Create(ctx context.Context, snippet *entity.CodeSnippet) error {
	m := r.mapper.ToModel(snippet)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*snippet = *r.mapper.ToEntity(m)
	return nil
}

func (r *CodeSnippetRepositoryImpl) CreateBulk(ctx context.Context, snippets []*entity.CodeSnippet) error {
	if len(snippets) == 0 {
		return nil
	}
	models := make([]*model.CodeSnippet, len(snippets))
	for i, s := range snippets {
		models[i] = r.mapper.ToModel(s)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*snippets[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *CodeSnippetRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CodeSnippet{}, id).Error
}

func (r *CodeSnippetRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CodeSnippet, error) {
	var models []*model.CodeSnippet
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CodeSnippetRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.CodeSnippet{}).Count(&count).Error
	return count, err
}

func (r *CodeSnippetRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredCodeSnippet, error) {
	if limit <= 0 {
		limit = 3
	}

	type result struct {
		model.CodeSnippet
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("code_snippets").
		Select("code_snippets.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("code_snippets.deleted_at IS NULL").
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredCodeSnippet, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredCodeSnippet{
			Snippet:    r.mapper.ToEntity(&res.CodeSnippet),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
