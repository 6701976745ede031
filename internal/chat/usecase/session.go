package usecase

import (
	"context"
	"strings"

	"homework-assistant/internal/chat"
	"homework-assistant/internal/model"
)

func (uc *implUseCase) StartSession(ctx context.Context) (chat.StartSessionOutput, error) {
	s, err := uc.memory.StartSession(ctx)
	if s.ID == "" {
		return chat.StartSessionOutput{}, err
	}
	if err != nil {
		uc.l.Warnf(ctx, "internal.chat.usecase.StartSession: %v", err)
	}
	return chat.StartSessionOutput{Session: s, PersistErr: err}, nil
}

func (uc *implUseCase) Sessions(ctx context.Context) []model.SessionSummary {
	return uc.memory.Sessions(ctx)
}

func (uc *implUseCase) GetHistory(ctx context.Context, sessionID string) ([]model.Turn, error) {
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return nil, chat.ErrEmptySessionID
	}
	return uc.memory.History(ctx, id, uc.historyLimit)
}
