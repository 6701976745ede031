package dialogue

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"homework-assistant/internal/assignment"
	assignmentRepo "homework-assistant/internal/assignment/repository/jsonfile"
	assignmentUC "homework-assistant/internal/assignment/usecase"
	"homework-assistant/internal/conversation"
	conversationRepo "homework-assistant/internal/conversation/repository/jsonfile"
	conversationUC "homework-assistant/internal/conversation/usecase"
	"homework-assistant/internal/model"
	"homework-assistant/internal/nlu/emotion"
	"homework-assistant/internal/nlu/entity"
	"homework-assistant/internal/nlu/intent"
	"homework-assistant/pkg/datemath"
	"homework-assistant/pkg/inference"
	"homework-assistant/pkg/log"
)

// Sunday morning.
var testNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

var errDiskFull = errors.New("disk full")

func at(month time.Month, day, hour, min int) time.Time {
	return time.Date(2024, month, day, hour, min, 0, 0, time.UTC)
}

func fixtures() []model.Assignment {
	created := testNow.Add(-48 * time.Hour)
	mk := func(id, name, class string, due time.Time, p model.Priority, difficulty int) model.Assignment {
		return model.Assignment{ID: id, Name: name, ClassName: class, DueDate: due, Priority: p, Difficulty: difficulty, CreatedAt: created, UpdatedAt: created}
	}
	return []model.Assignment{
		mk("A1", "Problem set 4", "Math", at(time.March, 11, 23, 59), model.PriorityHigh, 7),
		mk("A2", "Lab report", "Science", at(time.March, 13, 17, 0), model.PriorityHigh, 8),
		mk("A3", "Reading notes", "History", at(time.March, 15, 12, 0), model.PriorityLow, 3),
		mk("A5", "Math lab", "Math", at(time.March, 20, 23, 59), model.PriorityMedium, 5),
		mk("A7", "Final project", "Programming", at(time.March, 30, 23, 59), model.PriorityMedium, 9),
	}
}

type harness struct {
	m      *Manager
	store  assignment.UseCase
	memory conversation.UseCase
}

// newHarness wires a manager over real components: the lexicon scorer,
// the date parser and JSON-file stores in a temp dir.
func newHarness(t *testing.T, tweak func(*Deps)) *harness {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()
	nop := log.NewNop()

	repo := assignmentRepo.New(filepath.Join(dir, "assignments.json"), nop)
	for _, a := range fixtures() {
		require.NoError(t, repo.Upsert(ctx, a))
	}
	store := assignmentUC.New(nop, repo, assignmentUC.Config{Location: time.UTC})
	require.NoError(t, store.Load(ctx))

	memory := conversationUC.New(nop, conversationRepo.New(filepath.Join(dir, "chat_history.json"), nop))
	require.NoError(t, memory.Load(ctx))

	lexicon := inference.NewLexiconProvider()
	classifier, err := intent.NewClassifier(nop, lexicon, intent.Config{})
	require.NoError(t, err)
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	deps := Deps{
		Classifier: classifier,
		Detector:   emotion.NewDetector(nop, lexicon, emotion.Config{}),
		Extractor:  entity.NewExtractor(nop, parser),
		Store:      store,
		Memory:     memory,
		Status:     inference.NewManager([]inference.Provider{lexicon}, nil, nop),
	}
	if tweak != nil {
		tweak(&deps)
	}

	m := New(nop, deps, Config{Location: time.UTC, InferenceTimeout: time.Second})
	m.now = func() time.Time { return testNow }
	return &harness{m: m, store: deps.Store, memory: deps.Memory}
}

func (h *harness) turn(t *testing.T, dc *DialogueContext, text string) TurnResult {
	t.Helper()
	res := h.m.ProcessTurn(context.Background(), dc, "session-1", text)
	require.Equal(t, AwaitingInput, h.m.State(), "every turn ends awaiting input")
	return res
}

func (h *harness) completionEvents(t *testing.T, id string) int {
	t.Helper()
	n := 0
	for _, ev := range h.store.Events(context.Background()) {
		if ev.AssignmentID == id && ev.Kind == model.EventCompleted {
			n++
		}
	}
	return n
}

// blockingClassifier never answers before its context is done.
type blockingClassifier struct{}

func (blockingClassifier) Classify(ctx context.Context, utterance string, candidates []model.Intent) model.IntentResult {
	<-ctx.Done()
	return model.UnknownIntent
}

// blockingDetector never answers before its context is done.
type blockingDetector struct{}

func (blockingDetector) Detect(ctx context.Context, utterance string) model.EmotionResult {
	<-ctx.Done()
	return model.NeutralEmotion
}

// failingAssignmentRepo loads the fixtures and fails every write.
type failingAssignmentRepo struct{}

func (failingAssignmentRepo) Load(ctx context.Context) ([]model.Assignment, error) {
	return fixtures(), nil
}

func (failingAssignmentRepo) Upsert(ctx context.Context, a model.Assignment) error {
	return errDiskFull
}

func (failingAssignmentRepo) Delete(ctx context.Context, id string) error {
	return errDiskFull
}

// failingHistoryRepo starts empty and fails every write.
type failingHistoryRepo struct{}

func (failingHistoryRepo) Load(ctx context.Context) ([]model.Session, error) {
	return nil, nil
}

func (failingHistoryRepo) CreateSession(ctx context.Context, s model.SessionSummary) error {
	return errDiskFull
}

func (failingHistoryRepo) AppendTurns(ctx context.Context, sessionID string, turns []model.Turn) error {
	return errDiskFull
}
