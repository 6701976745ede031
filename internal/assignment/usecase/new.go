package usecase

import (
	"sync"
	"time"

	"homework-assistant/internal/assignment"
	"homework-assistant/internal/assignment/repository"
	"homework-assistant/internal/model"
	"homework-assistant/pkg/gcalendar"
	pkgLog "homework-assistant/pkg/log"
)

// Config holds the optional collaborators of the store.
type Config struct {
	// Calendar enables ExportToCalendar when set.
	Calendar   gcalendar.Calendar
	CalendarID string
	Location   *time.Location
}

type pendingOp int

const (
	pendingUpsert pendingOp = iota + 1
	pendingDelete
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	calendar   gcalendar.Calendar
	calendarID string
	location   *time.Location
	now        func() time.Time

	// mu serializes mutations; readers take the read lock and get copies.
	mu      sync.RWMutex
	loaded  bool
	items   map[string]model.Assignment
	nextSeq int
	pending map[string]pendingOp
	events  []model.AssignmentEvent
}

var _ assignment.UseCase = (*implUseCase)(nil)

// New creates the in-memory assignment store on top of repo. Call Load
// before serving requests.
func New(l pkgLog.Logger, repo repository.Repository, cfg Config) *implUseCase {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	calendarID := cfg.CalendarID
	if calendarID == "" {
		calendarID = gcalendar.DefaultCalendarID
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   cfg.Calendar,
		calendarID: calendarID,
		location:   loc,
		now:        time.Now,
		loaded:     true,
		items:      make(map[string]model.Assignment),
		pending:    make(map[string]pendingOp),
	}
}
