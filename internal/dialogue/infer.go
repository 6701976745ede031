package dialogue

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"homework-assistant/internal/model"
	"homework-assistant/internal/nlu/entity"
	pkgErrors "homework-assistant/pkg/errors"
)

// signals is what the three analyzers found in one utterance.
type signals struct {
	intent   model.IntentResult
	emotion  model.EmotionResult
	entities model.Entities
	known    entity.Known
}

// infer runs the classifier, the detector and the extractor side by side
// and waits for all of them. Model calls are bounded by the inference
// timeout and fall back to Unknown and neutral.
func (m *Manager) infer(ctx context.Context, text string, known entity.Known, now time.Time) signals {
	sig := signals{known: known}

	var g errgroup.Group
	g.Go(func() error {
		var ok bool
		sig.intent, ok = withTimeout(ctx, m.cfg.InferenceTimeout, model.UnknownIntent, func(ctx context.Context) model.IntentResult {
			return m.deps.Classifier.Classify(ctx, text, nil)
		})
		if !ok {
			m.l.Warnf(ctx, "%s: intent classification timed out after %s: %v", LogPrefixInfer, m.cfg.InferenceTimeout, pkgErrors.ErrModelUnavailable)
		}
		return nil
	})
	g.Go(func() error {
		var ok bool
		sig.emotion, ok = withTimeout(ctx, m.cfg.InferenceTimeout, model.NeutralEmotion, func(ctx context.Context) model.EmotionResult {
			return m.deps.Detector.Detect(ctx, text)
		})
		if !ok {
			m.l.Warnf(ctx, "%s: emotion detection timed out after %s: %v", LogPrefixInfer, m.cfg.InferenceTimeout, pkgErrors.ErrModelUnavailable)
		}
		return nil
	})
	g.Go(func() error {
		sig.entities = m.deps.Extractor.Extract(ctx, text, known, now)
		return nil
	})
	_ = g.Wait()

	return sig
}

// withTimeout returns fn's result, or fallback once timeout passes. The
// call's context is cancelled either way so fn can return promptly.
func withTimeout[T any](ctx context.Context, timeout time.Duration, fallback T, fn func(context.Context) T) (T, bool) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out := make(chan T, 1)
	go func() { out <- fn(ctx) }()

	select {
	case v := <-out:
		return v, true
	case <-ctx.Done():
		return fallback, false
	}
}
