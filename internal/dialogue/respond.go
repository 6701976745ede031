package dialogue

import (
	"context"
	"errors"
	"strings"

	"homework-assistant/internal/model"
	pkgErrors "homework-assistant/pkg/errors"
)

// compose prefixes the body with a tone matching a clear emotion and adds
// the notices. Emotion only ever changes the phrasing.
func (m *Manager) compose(em model.EmotionResult, body string, notices []string) string {
	var b strings.Builder
	if em.Confidence >= m.cfg.EmotionThreshold {
		b.WriteString(tones[em.Emotion])
	}
	b.WriteString(body)
	for _, n := range notices {
		b.WriteString("\n\n" + n)
	}
	return b.String()
}

// remember appends the user and assistant turns. A failed write is kept in
// memory by the conversation store and reported as a notice.
func (m *Manager) remember(ctx context.Context, sessionID, text string, res *TurnResult) {
	now := m.now()
	intent, ents, em := res.Intent, res.Entities.Clone(), res.Emotion
	user := model.Turn{
		Speaker:   model.SpeakerUser,
		Text:      text,
		Timestamp: now,
		Intent:    &intent,
		Entities:  &ents,
		Emotion:   &em,
	}
	reply := model.Turn{Speaker: model.SpeakerAssistant, Text: res.Response, Timestamp: now}

	err := m.deps.Memory.Append(ctx, sessionID, user, reply)
	switch {
	case err == nil:
	case errors.Is(err, pkgErrors.ErrStoreIO):
		m.l.Warnf(ctx, "%s: %v", LogPrefixRemember, err)
		res.Notices = append(res.Notices, MsgHistoryNotice)
	default:
		m.l.Warnf(ctx, "%s: turn not recorded: %v", LogPrefixRemember, err)
	}
}
