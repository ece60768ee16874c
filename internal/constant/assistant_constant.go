package constant

// Embedding task types (Gemini naming, understood by all wired providers)
const (
	TaskTypeRetrievalQuery    = "RETRIEVAL_QUERY"
	TaskTypeRetrievalDocument = "RETRIEVAL_DOCUMENT"
)

// Chunking parameters for knowledge ingestion. Character based; roughly
// 375 tokens per chunk with boundary overlap.
const (
	ChunkSize    = 1500
	ChunkOverlap = 200
)
