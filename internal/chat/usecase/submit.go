package usecase

import (
	"context"
	"strings"

	"homework-assistant/internal/chat"
	pkgLog "homework-assistant/pkg/log"
)

func (uc *implUseCase) Submit(ctx context.Context, input chat.SubmitInput) (chat.SubmitOutput, error) {
	id := strings.TrimSpace(input.SessionID)
	if id == "" {
		return chat.SubmitOutput{}, chat.ErrEmptySessionID
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return chat.SubmitOutput{}, chat.ErrEmptyInput
	}

	s := uc.session(id)
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx = pkgLog.WithSessionID(ctx, id)
	res := uc.dialogue.ProcessTurn(ctx, &s.dc, id, text)
	uc.l.Debugf(ctx, "internal.chat.usecase.Submit: outcome=%s path=%v", res.Outcome, res.Path)

	return chat.SubmitOutput{
		Response: res.Response,
		Intent:   res.Intent,
		Entities: res.Entities,
		Emotion:  res.Emotion,
		Outcome:  string(res.Outcome),
		Mutated:  res.Mutated,
		Notices:  res.Notices,
	}, nil
}

func (uc *implUseCase) SubmitUtterance(ctx context.Context, sessionID, text string) (string, error) {
	out, err := uc.Submit(ctx, chat.SubmitInput{SessionID: sessionID, Text: text})
	if err != nil {
		return "", err
	}

	reply := out.Response
	for _, n := range out.Notices {
		if !strings.Contains(reply, n) {
			reply += "\n\n" + n
		}
	}
	return reply, nil
}
