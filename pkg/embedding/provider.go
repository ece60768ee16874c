package embedding

// EmbeddingProvider turns text into a vector for cosine similarity search.
// taskType is the Gemini-style hint ("RETRIEVAL_QUERY" or
// "RETRIEVAL_DOCUMENT"); providers without an equivalent ignore it.
type EmbeddingProvider interface {
	Generate(text string, taskType string) (*EmbeddingResponse, error)
}
