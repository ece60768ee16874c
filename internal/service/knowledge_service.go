package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"persona-assistant-be/internal/constant"
	"persona-assistant-be/internal/dto"
	"persona-assistant-be/internal/entity"
	"persona-assistant-be/internal/repository/specification"
	"persona-assistant-be/internal/repository/unitofwork"
	"persona-assistant-be/pkg/embedding"

	"github.com/google/uuid"
)

type IKnowledgeService interface {
	CreateChunk(ctx context.Context, req *dto.CreateKnowledgeChunkRequest) (*dto.CreateKnowledgeChunkResponse, error)
	UpdateChunk(ctx context.Context, req *dto.UpdateKnowledgeChunkRequest) error
	DeleteChunk(ctx context.Context, id uuid.UUID) error
	ListChunks(ctx context.Context, source string, limit, offset int) ([]*dto.KnowledgeChunkResponse, error)
	Search(ctx context.Context, req *dto.SearchKnowledgeRequest) ([]*dto.SearchKnowledgeResponse, error)
	CreateCodeSnippet(ctx context.Context, req *dto.CreateCodeSnippetRequest) (*dto.CreateCodeSnippetResponse, error)
	DeleteCodeSnippet(ctx context.Context, id uuid.UUID) error
}

type knowledgeService struct {
	uowFactory        unitofwork.RepositoryFactory
	publisherService  IPublisherService
	embeddingProvider embedding.EmbeddingProvider
}

func NewKnowledgeService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	embeddingProvider embedding.EmbeddingProvider,
) IKnowledgeService {
	return &knowledgeService{
		uowFactory:        uowFactory,
		publisherService:  publisherService,
		embeddingProvider: embeddingProvider,
	}
}

func (s *knowledgeService) CreateChunk(ctx context.Context, req *dto.CreateKnowledgeChunkRequest) (*dto.CreateKnowledgeChunkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	chunk := entity.KnowledgeChunk{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		Source:    req.Source,
		CreatedAt: time.Now(),
	}

	if err := uow.KnowledgeChunkRepository().Create(ctx, &chunk); err != nil {
		return nil, err
	}

	if err := s.publishEmbedMessage(ctx, chunk.Id); err != nil {
		return nil, err
	}

	return &dto.CreateKnowledgeChunkResponse{Id: chunk.Id}, nil
}

func (s *knowledgeService) UpdateChunk(ctx context.Context, req *dto.UpdateKnowledgeChunkRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	chunk, err := uow.KnowledgeChunkRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if chunk == nil {
		return fmt.Errorf("knowledge chunk %s not found", req.Id)
	}

	chunk.Title = req.Title
	chunk.Content = req.Content
	chunk.Source = req.Source
	if err := uow.KnowledgeChunkRepository().Update(ctx, chunk); err != nil {
		return err
	}

	// Re-index asynchronously; stale embeddings stay queryable until then.
	return s.publishEmbedMessage(ctx, chunk.Id)
}

func (s *knowledgeService) DeleteChunk(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.KnowledgeEmbeddingRepository().DeleteByChunkId(ctx, id); err != nil {
		return err
	}
	if err := uow.KnowledgeChunkRepository().Delete(ctx, id); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *knowledgeService) ListChunks(ctx context.Context, source string, limit, offset int) ([]*dto.KnowledgeChunkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if source != "" {
		specs = append(specs, specification.BySource{Source: source})
	}
	if limit > 0 {
		specs = append(specs, specification.Pagination{Limit: limit, Offset: offset})
	}

	chunks, err := uow.KnowledgeChunkRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.KnowledgeChunkResponse, 0, len(chunks))
	for _, c := range chunks {
		res = append(res, &dto.KnowledgeChunkResponse{
			Id:        c.Id,
			Title:     c.Title,
			Content:   c.Content,
			Source:    c.Source,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return res, nil
}

func (s *knowledgeService) Search(ctx context.Context, req *dto.SearchKnowledgeRequest) ([]*dto.SearchKnowledgeResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}

	embeddingRes, err := s.embeddingProvider.Generate(req.Query, constant.TaskTypeRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.KnowledgeEmbeddingRepository().SearchSimilarWithScore(
		ctx, embeddingRes.Embedding.Values, limit, 0,
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SearchKnowledgeResponse, 0, len(scored))
	for _, hit := range scored {
		res = append(res, &dto.SearchKnowledgeResponse{
			Document: hit.Embedding.Document,
			Source:   hit.Embedding.Source,
			Score:    hit.Similarity,
		})
	}
	return res, nil
}

func (s *knowledgeService) CreateCodeSnippet(ctx context.Context, req *dto.CreateCodeSnippetRequest) (*dto.CreateCodeSnippetResponse, error) {
	// Code snippets are embedded inline: they are small and rare enough
	// that the async pipeline would be overkill.
	embedText := fmt.Sprintf("%s\n%s\n\n%s", req.Name, req.Citation, req.Content)
	embeddingRes, err := s.embeddingProvider.Generate(embedText, constant.TaskTypeRetrievalDocument)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	snippet := entity.CodeSnippet{
		Id:             uuid.New(),
		Name:           req.Name,
		Citation:       req.Citation,
		Content:        req.Content,
		SourceURL:      req.SourceURL,
		EmbeddingValue: embeddingRes.Embedding.Values,
		CreatedAt:      time.Now(),
	}
	if err := uow.CodeSnippetRepository().Create(ctx, &snippet); err != nil {
		return nil, err
	}
	return &dto.CreateCodeSnippetResponse{Id: snippet.Id}, nil
}

func (s *knowledgeService) DeleteCodeSnippet(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CodeSnippetRepository().Delete(ctx, id)
}

func (s *knowledgeService) publishEmbedMessage(ctx context.Context, chunkId uuid.UUID) error {
	payload := dto.PublishEmbedChunkMessage{ChunkId: chunkId}
	msgJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		log.Printf("[WARN] Failed to queue chunk %s for indexing: %v", chunkId, err)
		return err
	}
	return nil
}
