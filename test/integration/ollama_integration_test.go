package integration

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"persona-assistant-be/pkg/embedding"
	"persona-assistant-be/pkg/llm"
	"persona-assistant-be/pkg/llm/ollama"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ollamaBaseURL(t *testing.T) string {
	baseURL := os.Getenv("OLLAMA_BASE_URL")
	if baseURL == "" {
		t.Skip("Skipping integration test: OLLAMA_BASE_URL not set")
	}

	client := &http.Client{Timeout: 2 * time.Second}
	if _, err := client.Get(baseURL + "/api/tags"); err != nil {
		t.Skipf("Ollama not reachable at %s: %v", baseURL, err)
	}
	return baseURL
}

func TestOllamaGenerate(t *testing.T) {
	baseURL := ollamaBaseURL(t)
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "llama3"
	}

	provider := ollama.NewOllamaProvider(baseURL, model)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	text, err := provider.Generate(ctx, "Reply with the single word: pong", llm.WithTemperature(0))
	require.NoError(t, err)
	assert.NotEmpty(t, text)
	t.Logf("Model replied: %q", text)
}

func TestOllamaChatWithHistory(t *testing.T) {
	baseURL := ollamaBaseURL(t)
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "llama3"
	}

	provider := ollama.NewOllamaProvider(baseURL, model)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	history := []llm.Message{
		{Role: "user", Content: "My favorite color is teal. Remember that."},
		{Role: "assistant", Content: "Noted, your favorite color is teal."},
		{Role: "user", Content: "What is my favorite color?"},
	}

	text, err := provider.Chat(ctx, history, llm.WithTemperature(0))
	require.NoError(t, err)
	assert.Contains(t, text, "teal")
}

func TestOllamaEmbedding(t *testing.T) {
	baseURL := ollamaBaseURL(t)
	model := os.Getenv("OLLAMA_EMBEDDING_MODEL")
	if model == "" {
		model = "nomic-embed-text"
	}

	provider := embedding.NewOllamaProvider(baseURL, model)

	res, err := provider.Generate("retrieval smoke test", "RETRIEVAL_DOCUMENT")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Embedding.Values)
	t.Logf("Embedding dimensions: %d", len(res.Embedding.Values))
}
