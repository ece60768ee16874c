package unitofwork

import (
	"context"

	"persona-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	KnowledgeChunkRepository() contract.KnowledgeChunkRepository
	KnowledgeEmbeddingRepository() contract.KnowledgeEmbeddingRepository
	CodeSnippetRepository() contract.CodeSnippetRepository
	SessionStore() contract.SessionStore
}
