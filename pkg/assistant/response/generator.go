package response

import (
	"context"
	"log"

	"persona-assistant-be/pkg/assistant/prompt"
	"persona-assistant-be/pkg/llm"
	"persona-assistant-be/pkg/role"
	"persona-assistant-be/pkg/store"
)

// Generator is the text-generation collaborator contract. Implementations
// must accept an empty context (zero snippets) and still return a coherent
// answer rather than erroring.
type Generator interface {
	Generate(ctx context.Context, query string, visitorRole role.Role, preamble string, retrieved *store.RetrievalContext) (string, error)
}

// LLMGenerator implements Generator on top of the provider-agnostic llm
// package, using the role-conditioned prompt builder.
type LLMGenerator struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewLLMGenerator(llmProvider llm.LLMProvider, logger *log.Logger) *LLMGenerator {
	return &LLMGenerator{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

var _ Generator = (*LLMGenerator)(nil)

func (g *LLMGenerator) Generate(
	ctx context.Context,
	query string,
	visitorRole role.Role,
	preamble string,
	retrieved *store.RetrievalContext,
) (string, error) {
	promptText := prompt.NewBuilder(visitorRole, query, preamble, retrieved).Build()

	text, err := g.llmProvider.Generate(ctx, promptText, llm.WithTemperature(0.4))
	if err != nil {
		g.logger.Printf("[ERROR] LLM generation failed: %v", err)
		return "", err
	}

	var snippets, code int
	if retrieved != nil {
		snippets, code = len(retrieved.Snippets), len(retrieved.CodeSnippets)
	}
	g.logger.Printf("[GENERATION] Answer generated (%d snippets, %d code)", snippets, code)
	return text, nil
}
