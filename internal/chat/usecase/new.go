package usecase

import (
	"context"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"homework-assistant/internal/chat"
	"homework-assistant/internal/conversation"
	"homework-assistant/internal/dialogue"
	pkgLog "homework-assistant/pkg/log"
)

// Processor runs one dialogue turn.
type Processor interface {
	ProcessTurn(ctx context.Context, dc *dialogue.DialogueContext, sessionID, text string) dialogue.TurnResult
}

// session is the volatile per-session state. mu serializes its turns.
type session struct {
	mu sync.Mutex
	dc dialogue.DialogueContext
}

type implUseCase struct {
	l            pkgLog.Logger
	dialogue     Processor
	memory       conversation.UseCase
	historyLimit int

	mu       sync.Mutex
	contexts *expirable.LRU[string, *session]
}

var _ chat.UseCase = (*implUseCase)(nil)

func New(l pkgLog.Logger, dialogue Processor, memory conversation.UseCase, cfg chat.Config) *implUseCase {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = chat.DefaultHistoryLimit
	}
	if cfg.ContextTTL <= 0 {
		cfg.ContextTTL = chat.DefaultContextTTL
	}
	if cfg.ContextCapacity <= 0 {
		cfg.ContextCapacity = chat.DefaultContextCapacity
	}

	return &implUseCase{
		l:            l,
		dialogue:     dialogue,
		memory:       memory,
		historyLimit: cfg.HistoryLimit,
		contexts:     expirable.NewLRU[string, *session](cfg.ContextCapacity, nil, cfg.ContextTTL),
	}
}

// session returns the state of id, starting a fresh context when it was
// never seen or has expired.
func (uc *implUseCase) session(id string) *session {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if s, ok := uc.contexts.Get(id); ok {
		return s
	}
	s := &session{}
	uc.contexts.Add(id, s)
	return s
}
