package intent

import (
	"context"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"homework-assistant/internal/model"
	pkgErrors "homework-assistant/pkg/errors"
	"homework-assistant/pkg/inference"
	pkgLog "homework-assistant/pkg/log"
)

const (
	DefaultEpsilon   = 0.02
	DefaultCacheSize = 256
)

type Config struct {
	// Epsilon is the minimum gap between the top two scores; closer calls
	// resolve to Unknown.
	Epsilon   float64
	CacheSize int
}

// Classifier maps an utterance to one intent of the closed set.
type Classifier struct {
	l       pkgLog.Logger
	scorer  inference.Scorer
	epsilon float64
	cache   *lru.Cache[string, model.IntentResult]
}

// NewClassifier creates a classifier scoring through scorer.
func NewClassifier(l pkgLog.Logger, scorer inference.Scorer, cfg Config) (*Classifier, error) {
	if cfg.Epsilon <= 0 {
		cfg.Epsilon = DefaultEpsilon
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, model.IntentResult](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create intent cache: %w", err)
	}
	return &Classifier{l: l, scorer: scorer, epsilon: cfg.Epsilon, cache: cache}, nil
}

// Classify scores utterance against the hypothesis of every candidate and
// returns the strongest one. An empty candidate list means every intent.
// It never fails: scoring errors yield Unknown with confidence 0.
func (c *Classifier) Classify(ctx context.Context, utterance string, candidates []model.Intent) model.IntentResult {
	if len(candidates) == 0 {
		candidates = model.Intents
	}

	hyps := make([]inference.Hypothesis, 0, len(candidates))
	labels := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		h, ok := Hypothesis(cand)
		if !ok {
			continue
		}
		hyps = append(hyps, h)
		labels = append(labels, h.Label)
	}

	text := inference.Normalize(utterance)
	if text == "" || len(hyps) == 0 {
		return model.UnknownIntent
	}

	key := text + "|" + strings.Join(labels, ",")
	if res, ok := c.cache.Get(key); ok {
		return res
	}

	scores, err := c.scorer.Score(ctx, utterance, hyps)
	if err != nil {
		c.l.Warnf(ctx, "internal.nlu.intent.Classify: %v: %v", pkgErrors.ErrModelUnavailable, err)
		return model.UnknownIntent
	}
	if len(scores) != len(hyps) {
		c.l.Warnf(ctx, "internal.nlu.intent.Classify: %v: got %d scores for %d hypotheses", pkgErrors.ErrModelUnavailable, len(scores), len(hyps))
		return model.UnknownIntent
	}

	res := c.pick(hyps, scores)
	c.cache.Add(key, res)
	c.l.Debugf(ctx, "internal.nlu.intent.Classify: %q -> %s (%.2f)", text, res.Intent, res.Confidence)
	return res
}

func (c *Classifier) pick(hyps []inference.Hypothesis, scores []float64) model.IntentResult {
	best, second := -1, -1
	for i, s := range scores {
		switch {
		case best < 0 || s > scores[best]:
			best, second = i, best
		case second < 0 || s > scores[second]:
			second = i
		}
	}

	top := scores[best]
	if top <= 0 {
		return model.UnknownIntent
	}
	if second >= 0 && top-scores[second] < c.epsilon {
		return model.IntentResult{Intent: model.IntentUnknown, Confidence: top}
	}
	return model.IntentResult{Intent: model.Intent(hyps[best].Label), Confidence: top}
}
