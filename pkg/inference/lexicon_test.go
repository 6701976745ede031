package inference

import (
	"context"
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"What's due tomorrow?":    "what s due tomorrow",
		"  Mark   A7 as DONE!!  ": "mark a7 as done",
		"":                        "",
		"¿Qué?":                   "qué",
	}
	for in, want := range tests {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLexiconScore(t *testing.T) {
	p := NewLexiconProvider()
	hyps := []Hypothesis{
		{Label: "due", Cues: []Cue{{Phrase: "due", Weight: 0.6}, {Phrase: "what's due", Weight: 0.5}}},
		{Label: "done", Cues: []Cue{{Phrase: "done", Weight: 0.7}}},
		{Label: "none", Cues: nil},
	}

	scores, err := p.Score(context.Background(), "What's due tomorrow?", hyps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 1 - (0.4 * 0.5)
	if math.Abs(scores[0]-0.8) > 1e-9 {
		t.Errorf("noisy-or score = %v, want 0.8", scores[0])
	}
	if scores[1] != 0 || scores[2] != 0 {
		t.Errorf("unmatched hypotheses should score 0, got %v", scores)
	}
}

func TestLexiconMatchesWholeWordsOnly(t *testing.T) {
	p := NewLexiconProvider()
	hyps := []Hypothesis{{Label: "due", Cues: []Cue{{Phrase: "due", Weight: 0.9}}}}

	scores, _ := p.Score(context.Background(), "I am subdued today", hyps)
	if scores[0] != 0 {
		t.Errorf("cue must not match inside another word, got %v", scores[0])
	}
}

func TestLexiconDeterministic(t *testing.T) {
	p := NewLexiconProvider()
	hyps := []Hypothesis{{Label: "x", Cues: []Cue{{Phrase: "help", Weight: 0.4}, {Phrase: "what can you do", Weight: 0.8}}}}

	first, _ := p.Score(context.Background(), "help, what can you do?", hyps)
	for i := 0; i < 10; i++ {
		again, _ := p.Score(context.Background(), "help, what can you do?", hyps)
		if again[0] != first[0] {
			t.Fatalf("score changed between calls: %v vs %v", again[0], first[0])
		}
	}
}

func TestLexiconCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewLexiconProvider().Score(ctx, "hi", []Hypothesis{{Label: "x"}}); err == nil {
		t.Errorf("expected context error")
	}
}
