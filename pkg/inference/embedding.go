package inference

import (
	"context"
	"fmt"
	"math"
	"sync"

	"homework-assistant/pkg/ollama"
)

const EmbeddingProviderName = "ollama"

// EmbeddingProvider scores a hypothesis by the cosine similarity between the
// premise embedding and the hypothesis text embedding, floored at zero.
// Hypothesis embeddings are computed once and reused.
type EmbeddingProvider struct {
	client ollama.IOllama

	mu    sync.RWMutex
	cache map[string][]float32
}

var _ Provider = (*EmbeddingProvider)(nil)

// NewEmbeddingProvider wraps an embedding client.
func NewEmbeddingProvider(client ollama.IOllama) *EmbeddingProvider {
	return &EmbeddingProvider{
		client: client,
		cache:  make(map[string][]float32),
	}
}

func (p *EmbeddingProvider) Name() string  { return EmbeddingProviderName }
func (p *EmbeddingProvider) Model() string { return p.client.Model() }

// Score implements Provider.
func (p *EmbeddingProvider) Score(ctx context.Context, premise string, hypotheses []Hypothesis) ([]float64, error) {
	if err := p.warm(ctx, hypotheses); err != nil {
		return nil, err
	}

	embs, err := p.client.Embed(ctx, []string{premise})
	if err != nil {
		return nil, fmt.Errorf("embed premise: %w", err)
	}
	premiseVec := embs[0]

	p.mu.RLock()
	defer p.mu.RUnlock()

	scores := make([]float64, len(hypotheses))
	for i, h := range hypotheses {
		sim := cosine(premiseVec, p.cache[h.Text])
		if sim < 0 {
			sim = 0
		}
		scores[i] = sim
	}
	return scores, nil
}

// warm embeds every hypothesis text not yet cached.
func (p *EmbeddingProvider) warm(ctx context.Context, hypotheses []Hypothesis) error {
	p.mu.RLock()
	var missing []string
	for _, h := range hypotheses {
		if h.Text == "" {
			p.mu.RUnlock()
			return fmt.Errorf("%w: hypothesis %s has no text", ErrInvalidRequest, h.Label)
		}
		if _, ok := p.cache[h.Text]; !ok {
			missing = append(missing, h.Text)
		}
	}
	p.mu.RUnlock()

	if len(missing) == 0 {
		return nil
	}

	embs, err := p.client.Embed(ctx, missing)
	if err != nil {
		return fmt.Errorf("embed hypotheses: %w", err)
	}

	p.mu.Lock()
	for i, text := range missing {
		p.cache[text] = embs[i]
	}
	p.mu.Unlock()
	return nil
}

func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
