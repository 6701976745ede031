package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homework-assistant/internal/conversation"
	"homework-assistant/internal/conversation/repository/jsonfile"
	"homework-assistant/internal/model"
	pkgErrors "homework-assistant/pkg/errors"
	"homework-assistant/pkg/log"
)

var errDiskFull = errors.New("disk full")

var testNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

// memRepo is an in-memory repository.Repository whose writes can be made to fail.
type memRepo struct {
	mu       sync.Mutex
	sessions []model.Session
	failLoad bool
	failNext int
}

func (r *memRepo) Load(ctx context.Context) ([]model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failLoad {
		return nil, errDiskFull
	}
	return append([]model.Session(nil), r.sessions...), nil
}

func (r *memRepo) CreateSession(ctx context.Context, s model.SessionSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext > 0 {
		r.failNext--
		return errDiskFull
	}
	r.sessions = append(r.sessions, model.Session{ID: s.ID, CreatedAt: s.CreatedAt})
	return nil
}

func (r *memRepo) AppendTurns(ctx context.Context, sessionID string, turns []model.Turn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext > 0 {
		r.failNext--
		return errDiskFull
	}
	for i := range r.sessions {
		if r.sessions[i].ID == sessionID {
			r.sessions[i].Turns = append(r.sessions[i].Turns, turns...)
			return nil
		}
	}
	r.sessions = append(r.sessions, model.Session{ID: sessionID, CreatedAt: turns[0].Timestamp, Turns: turns})
	return nil
}

func (r *memRepo) texts(sessionID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, s := range r.sessions {
		if s.ID == sessionID {
			for _, t := range s.Turns {
				out = append(out, t.Text)
			}
		}
	}
	return out
}

func newTestUseCase(t *testing.T, repo *memRepo) *implUseCase {
	t.Helper()
	uc := New(log.NewNop(), repo)
	uc.now = func() time.Time { return testNow }
	n := 0
	uc.newID = func() string {
		n++
		return fmt.Sprintf("s-%d", n)
	}
	require.NoError(t, uc.Load(context.Background()))
	return uc
}

func userTurn(text string) model.Turn {
	return model.Turn{Speaker: model.SpeakerUser, Text: text}
}

func TestStartSessionAndSessions(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{}
	uc := newTestUseCase(t, repo)

	first, err := uc.StartSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "s-1", first.ID)
	assert.True(t, first.CreatedAt.Equal(testNow))

	_, err = uc.StartSession(ctx)
	require.NoError(t, err)
	require.NoError(t, uc.Append(ctx, "s-1", userTurn("hello"), model.Turn{Speaker: model.SpeakerAssistant, Text: "Hi!"}))

	got := uc.Sessions(ctx)
	require.Len(t, got, 2)
	assert.Equal(t, "s-1", got[0].ID)
	assert.Equal(t, 2, got[0].TurnCount)
	assert.Equal(t, "s-2", got[1].ID)
	assert.Equal(t, 0, got[1].TurnCount)
	assert.Len(t, repo.sessions, 2)
}

func TestHistoryIsChronological(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, &memRepo{})

	for i := 1; i <= 5; i++ {
		require.NoError(t, uc.Append(ctx, "chat", userTurn(fmt.Sprintf("turn %d", i))))
	}

	all, err := uc.History(ctx, "chat", 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "turn 1", all[0].Text)
	assert.Equal(t, "turn 5", all[4].Text)

	last, err := uc.History(ctx, "chat", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"turn 4", "turn 5"}, []string{last[0].Text, last[1].Text})

	again, err := uc.History(ctx, "chat", 2)
	require.NoError(t, err)
	assert.Equal(t, last, again)

	_, err = uc.History(ctx, "missing", 10)
	assert.ErrorIs(t, err, conversation.ErrSessionNotFound)
}

func TestAppendValidation(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{}
	uc := newTestUseCase(t, repo)

	assert.ErrorIs(t, uc.Append(ctx, " ", userTurn("hi")), conversation.ErrEmptySessionID)
	assert.ErrorIs(t, uc.Append(ctx, "chat", model.Turn{Speaker: "bot", Text: "hi"}), conversation.ErrInvalidTurn)
	assert.ErrorIs(t, uc.Append(ctx, "chat", userTurn("ok"), model.Turn{Speaker: model.SpeakerUser}), conversation.ErrInvalidTurn)

	assert.Empty(t, uc.Sessions(ctx))
	assert.Empty(t, repo.sessions)
}

func TestPersistFailureKeepsMemoryAndRetriesInOrder(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{failNext: 1}
	uc := newTestUseCase(t, repo)

	err := uc.Append(ctx, "chat", userTurn("first"))
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgErrors.ErrStoreIO)
	var ioErr *pkgErrors.StoreIOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "Append", ioErr.Op)

	history, err := uc.History(ctx, "chat", 0)
	require.NoError(t, err)
	require.Len(t, history, 1, "memory stays authoritative")
	assert.Empty(t, repo.texts("chat"))

	require.NoError(t, uc.Append(ctx, "chat", userTurn("second")))
	assert.Equal(t, []string{"first", "second"}, repo.texts("chat"))
}

func TestFlushRetriesPendingWrites(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{failNext: 1}
	uc := newTestUseCase(t, repo)

	_, err := uc.StartSession(ctx)
	require.ErrorIs(t, err, pkgErrors.ErrStoreIO)
	assert.Len(t, uc.Sessions(ctx), 1)

	require.NoError(t, uc.Flush(ctx))
	assert.Len(t, repo.sessions, 1)
	require.NoError(t, uc.Flush(ctx))
	assert.Len(t, repo.sessions, 1)
}

func TestLoadFailureStartsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{
		sessions: []model.Session{{ID: "old", CreatedAt: testNow, Turns: []model.Turn{userTurn("hi")}}},
	}
	uc := newTestUseCase(t, repo)
	require.Len(t, uc.Sessions(ctx), 1)

	repo.failLoad = true
	err := uc.Load(ctx)
	require.ErrorIs(t, err, pkgErrors.ErrStoreIO)
	assert.Empty(t, uc.Sessions(ctx))

	// The assistant keeps working on the empty history; the turn is held.
	err = uc.Append(ctx, "new", userTurn("still here"))
	require.ErrorIs(t, err, conversation.ErrNotLoaded)
	turns, err := uc.History(ctx, "new", 0)
	require.NoError(t, err)
	require.Len(t, turns, 1)
}

func TestLoadFailureKeepsPersistedHistory(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{
		failLoad: true,
		sessions: []model.Session{{ID: "old", CreatedAt: testNow, Turns: []model.Turn{userTurn("hi")}}},
	}
	uc := New(log.NewNop(), repo)
	uc.now = func() time.Time { return testNow }
	require.ErrorIs(t, uc.Load(ctx), pkgErrors.ErrStoreIO)

	require.ErrorIs(t, uc.Append(ctx, "old", userTurn("are you there?")), pkgErrors.ErrStoreIO)
	assert.Equal(t, []string{"hi"}, repo.texts("old"), "persisted history must not change while unread")

	repo.mu.Lock()
	repo.failLoad = false
	repo.mu.Unlock()
	require.NoError(t, uc.Flush(ctx))

	assert.Equal(t, []string{"hi", "are you there?"}, repo.texts("old"))
	turns, err := uc.History(ctx, "old", 0)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "hi", turns[0].Text)
}

func TestHistoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, &memRepo{})

	turn := userTurn("math homework")
	turn.Entities = &model.Entities{ClassName: "Math", Candidates: []string{"A1", "A2"}}
	require.NoError(t, uc.Append(ctx, "chat", turn))
	turn.Entities.ClassName = "changed by caller"

	got, err := uc.History(ctx, "chat", 0)
	require.NoError(t, err)
	got[0].Entities.Candidates[0] = "changed by reader"

	again, err := uc.History(ctx, "chat", 0)
	require.NoError(t, err)
	assert.Equal(t, "Math", again[0].Entities.ClassName)
	assert.Equal(t, []string{"A1", "A2"}, again[0].Entities.Candidates)
}

func TestRoundTripThroughJSONFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "chat_history.json")

	uc := New(log.NewNop(), jsonfile.New(path, log.NewNop()))
	uc.now = func() time.Time { return testNow }
	require.NoError(t, uc.Load(ctx))

	s, err := uc.StartSession(ctx)
	require.NoError(t, err)
	intent := model.IntentResult{Intent: model.IntentDueDateQuery, Confidence: 0.8}
	require.NoError(t, uc.Append(ctx, s.ID,
		model.Turn{Speaker: model.SpeakerUser, Text: "What's due tomorrow?", Timestamp: testNow.Add(time.Second), Intent: &intent},
		model.Turn{Speaker: model.SpeakerAssistant, Text: "Nothing is due tomorrow.", Timestamp: testNow.Add(2 * time.Second)},
	))
	want, err := uc.History(ctx, s.ID, 0)
	require.NoError(t, err)

	reloaded := New(log.NewNop(), jsonfile.New(path, log.NewNop()))
	require.NoError(t, reloaded.Load(ctx))
	got, err := reloaded.History(ctx, s.ID, 0)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(uc.Sessions(ctx), reloaded.Sessions(ctx)); diff != "" {
		t.Errorf("session summaries differ (-want +got):\n%s", diff)
	}
}
