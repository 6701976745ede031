package inference

import "context"

// Provider scores how strongly a premise entails each hypothesis.
type Provider interface {
	// Score returns one value in [0, 1] per hypothesis, in the same order.
	Score(ctx context.Context, premise string, hypotheses []Hypothesis) ([]float64, error)

	// Name returns the provider name (e.g., "lexicon", "ollama")
	Name() string

	// Model returns the model being used
	Model() string
}

// Scorer is the narrow view classifiers depend on.
type Scorer interface {
	Score(ctx context.Context, premise string, hypotheses []Hypothesis) ([]float64, error)
}

// Hypothesis is one candidate label phrased as a natural-language statement,
// plus the lexical cues that support it.
type Hypothesis struct {
	Label string
	Text  string
	Cues  []Cue
}

// Cue is a phrase whose presence in the premise is evidence for a hypothesis.
type Cue struct {
	Phrase string
	Weight float64
}
