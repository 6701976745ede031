package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"homework-assistant/internal/model"
	"homework-assistant/pkg/gcalendar"
	"homework-assistant/pkg/log"
)

var errDiskFull = errors.New("disk full")

// memRepo is an in-memory repository.Repository whose writes can be made to fail.
type memRepo struct {
	mu       sync.Mutex
	records  map[string]model.Assignment
	failLoad bool
	failNext int
	writes   int
}

func newMemRepo(items ...model.Assignment) *memRepo {
	r := &memRepo{records: make(map[string]model.Assignment)}
	for _, a := range items {
		r.records[a.ID] = a
	}
	return r
}

func (r *memRepo) Load(ctx context.Context) ([]model.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failLoad {
		return nil, errDiskFull
	}
	out := make([]model.Assignment, 0, len(r.records))
	for _, a := range r.records {
		out = append(out, a)
	}
	return out, nil
}

func (r *memRepo) Upsert(ctx context.Context, a model.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext > 0 {
		r.failNext--
		return errDiskFull
	}
	r.writes++
	r.records[a.ID] = a
	return nil
}

func (r *memRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext > 0 {
		r.failNext--
		return errDiskFull
	}
	r.writes++
	delete(r.records, id)
	return nil
}

func (r *memRepo) has(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.records[id]
	return ok
}

func (r *memRepo) get(id string) model.Assignment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records[id]
}

func (r *memRepo) setFailLoad(fail bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failLoad = fail
}

// fakeCalendar records created events.
type fakeCalendar struct {
	existing  []gcalendar.Event
	created   []gcalendar.CreateEventRequest
	listErr   error
	createErr error
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &gcalendar.Event{ID: "ev-" + req.PrivateKey, HtmlLink: "https://calendar.example/" + req.PrivateKey}, nil
}

func (f *fakeCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.existing, nil
}

var testNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, repo *memRepo, cfg Config) *implUseCase {
	t.Helper()
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	uc := New(log.NewNop(), repo, cfg)
	uc.now = func() time.Time { return testNow }
	if err := uc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return uc
}

func day(offset int) time.Time {
	return time.Date(2024, 3, 10+offset, 23, 59, 0, 0, time.UTC)
}
