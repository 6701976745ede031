package ollama

import "context"

// IOllama defines the interface for local embeddings.
// Implementations are safe for concurrent use.
type IOllama interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Model() string
}
