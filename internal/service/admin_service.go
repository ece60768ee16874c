package service

import (
	"context"

	"persona-assistant-be/internal/pkg/logger"
	"persona-assistant-be/internal/repository/unitofwork"
)

type IAdminService interface {
	GetLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error)
	GetStats(ctx context.Context) (*AdminStats, error)
}

type AdminStats struct {
	KnowledgeChunks     int64 `json:"knowledge_chunks"`
	KnowledgeEmbeddings int64 `json:"knowledge_embeddings"`
	CodeSnippets        int64 `json:"code_snippets"`
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	sysLogger  logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, sysLogger logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		sysLogger:  sysLogger,
	}
}

func (s *adminService) GetLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return s.sysLogger.GetLogs(level, limit, offset)
}

func (s *adminService) GetStats(ctx context.Context) (*AdminStats, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chunks, err := uow.KnowledgeChunkRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	embeddings, err := uow.KnowledgeEmbeddingRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	snippets, err := uow.CodeSnippetRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	return &AdminStats{
		KnowledgeChunks:     chunks,
		KnowledgeEmbeddings: embeddings,
		CodeSnippets:        snippets,
	}, nil
}
