package emotion

import (
	"context"

	"homework-assistant/internal/model"
	pkgErrors "homework-assistant/pkg/errors"
	"homework-assistant/pkg/inference"
	pkgLog "homework-assistant/pkg/log"
)

// DefaultMinScore is the weakest evidence still reported as an emotion.
const DefaultMinScore = 0.25

func cue(phrase string, weight float64) inference.Cue {
	return inference.Cue{Phrase: phrase, Weight: weight}
}

var hypotheses = map[model.Emotion]inference.Hypothesis{
	model.EmotionJoy: {
		Text: "The writer of this message feels happy.",
		Cues: []inference.Cue{
			cue("happy", 0.7), cue("great", 0.5), cue("awesome", 0.6), cue("yay", 0.7), cue("excited", 0.6),
			cue("love", 0.5), cue("finally", 0.3), cue("glad", 0.6), cue("nice", 0.4),
		},
	},
	model.EmotionSadness: {
		Text: "The writer of this message feels sad.",
		Cues: []inference.Cue{
			cue("sad", 0.7), cue("depressed", 0.7), cue("disappointed", 0.6), cue("failed", 0.5),
			cue("unhappy", 0.7), cue("feel down", 0.6), cue("miserable", 0.7),
		},
	},
	model.EmotionFrustration: {
		Text: "The writer of this message feels frustrated or angry.",
		Cues: []inference.Cue{
			cue("frustrated", 0.8), cue("frustrating", 0.7), cue("annoying", 0.6), cue("ugh", 0.6),
			cue("hate", 0.6), cue("sick of", 0.6), cue("angry", 0.7), cue("fed up", 0.7), cue("stupid", 0.5),
		},
	},
	model.EmotionAnxiety: {
		Text: "The writer of this message feels worried or stressed.",
		Cues: []inference.Cue{
			cue("worried", 0.7), cue("stressed", 0.7), cue("anxious", 0.8), cue("nervous", 0.7),
			cue("overwhelmed", 0.7), cue("panic", 0.7), cue("scared", 0.6), cue("afraid", 0.6),
			cue("freaking out", 0.7), cue("worry", 0.5),
		},
	},
	model.EmotionSurprise: {
		Text: "The writer of this message is surprised.",
		Cues: []inference.Cue{
			cue("wow", 0.6), cue("surprised", 0.7), cue("no way", 0.6), cue("seriously", 0.4),
			cue("can t believe", 0.6), cue("really", 0.3),
		},
	},
}

type Config struct {
	MinScore float64
}

// Detector labels the affect of an utterance. Its output only ever shapes
// the tone of a reply.
type Detector struct {
	l        pkgLog.Logger
	scorer   inference.Scorer
	minScore float64
	hyps     []inference.Hypothesis
}

// NewDetector creates a detector scoring through scorer.
func NewDetector(l pkgLog.Logger, scorer inference.Scorer, cfg Config) *Detector {
	if cfg.MinScore <= 0 {
		cfg.MinScore = DefaultMinScore
	}
	hyps := make([]inference.Hypothesis, 0, len(model.Emotions))
	for _, e := range model.Emotions {
		h := hypotheses[e]
		h.Label = string(e)
		hyps = append(hyps, h)
	}
	return &Detector{l: l, scorer: scorer, minScore: cfg.MinScore, hyps: hyps}
}

// Detect returns the strongest emotion, or neutral when nothing reaches the
// minimum score. Failures return neutral with confidence 0.
func (d *Detector) Detect(ctx context.Context, utterance string) model.EmotionResult {
	if inference.Normalize(utterance) == "" {
		return model.NeutralEmotion
	}

	scores, err := d.scorer.Score(ctx, utterance, d.hyps)
	if err != nil || len(scores) != len(d.hyps) {
		d.l.Warnf(ctx, "internal.nlu.emotion.Detect: %v: %v", pkgErrors.ErrModelUnavailable, err)
		return model.NeutralEmotion
	}

	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	if scores[best] < d.minScore {
		return model.EmotionResult{Emotion: model.EmotionNeutral, Confidence: 1 - scores[best]}
	}
	return model.EmotionResult{Emotion: model.Emotion(d.hyps[best].Label), Confidence: scores[best]}
}
