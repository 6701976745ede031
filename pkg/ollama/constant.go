package ollama

import "time"

const (
	DefaultEndpoint = "http://localhost:11434"
	DefaultModel    = "nomic-embed-text"
	DefaultTimeout  = 5 * time.Second

	embeddingsPath = "/api/embeddings"
)
