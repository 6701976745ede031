package inference

import (
	"context"
	"strings"
	"unicode"
)

const (
	LexiconProviderName = "lexicon"
	LexiconModelName    = "cue-noisy-or"
)

// LexiconProvider scores hypotheses by the cues found in the premise. Each
// matched cue is independent evidence, combined as a noisy-or:
// 1 - prod(1 - weight). It needs no model files and is fully deterministic.
type LexiconProvider struct{}

var _ Provider = (*LexiconProvider)(nil)

// NewLexiconProvider creates the built-in provider.
func NewLexiconProvider() *LexiconProvider {
	return &LexiconProvider{}
}

func (p *LexiconProvider) Name() string  { return LexiconProviderName }
func (p *LexiconProvider) Model() string { return LexiconModelName }

// Score implements Provider.
func (p *LexiconProvider) Score(ctx context.Context, premise string, hypotheses []Hypothesis) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := " " + Normalize(premise) + " "
	scores := make([]float64, len(hypotheses))
	for i, h := range hypotheses {
		miss := 1.0
		for _, cue := range h.Cues {
			phrase := Normalize(cue.Phrase)
			if phrase == "" {
				continue
			}
			if strings.Contains(text, " "+phrase+" ") {
				miss *= 1 - clamp(cue.Weight)
			}
		}
		scores[i] = 1 - miss
	}
	return scores, nil
}

// Normalize lowercases s and collapses every run of non-alphanumeric
// characters into a single space, so "What's due?" becomes "what s due".
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := true
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func clamp(w float64) float64 {
	if w < 0 {
		return 0
	}
	if w > 1 {
		return 1
	}
	return w
}
