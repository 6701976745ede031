package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"homework-assistant/internal/conversation"
	"homework-assistant/internal/conversation/repository"
	"homework-assistant/internal/model"
	pkgLog "homework-assistant/pkg/log"
)

// pendingWrite is a change held in memory that still has to reach the
// repository. Writes are replayed in order.
type pendingWrite struct {
	sessionID string
	create    *model.SessionSummary
	turns     []model.Turn
}

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	now   func() time.Time
	newID func() string

	mu       sync.RWMutex
	loaded   bool
	sessions map[string]*model.Session
	order    []string
	pending  []pendingWrite
}

var _ conversation.UseCase = (*implUseCase)(nil)

// New creates the conversation memory on top of repo. Call Load before use.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		now:      time.Now,
		newID:    uuid.NewString,
		loaded:   true,
		sessions: make(map[string]*model.Session),
	}
}
