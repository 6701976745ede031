package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"homework-assistant/internal/model"
	"homework-assistant/pkg/log"
	"homework-assistant/pkg/sqlite"
)

func sampleSessions() []model.Session {
	start := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	tomorrow := model.DateRange{Start: start.Add(15 * time.Hour), End: start.Add(38*time.Hour + 59*time.Minute + 59*time.Second)}
	return []model.Session{
		{
			ID:        "s-1",
			CreatedAt: start,
			Turns: []model.Turn{
				{
					Speaker:   model.SpeakerUser,
					Text:      "What's due tomorrow?",
					Timestamp: start.Add(time.Second),
					Intent:    &model.IntentResult{Intent: model.IntentDueDateQuery, Confidence: 0.82},
					Entities:  &model.Entities{DateRange: &tomorrow, DateExpr: "tomorrow"},
					Emotion:   &model.EmotionResult{Emotion: model.EmotionNeutral, Confidence: 0.75},
				},
				{Speaker: model.SpeakerAssistant, Text: "You have 1 assignment due tomorrow.", Timestamp: start.Add(2 * time.Second)},
				{Speaker: model.SpeakerUser, Text: "thanks", Timestamp: start.Add(time.Minute)},
			},
		},
		{ID: "s-2", CreatedAt: start.Add(time.Hour)},
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "homework.db")

	db, err := sqlite.Open(path)
	require.NoError(t, err)

	want := sampleSessions()
	repo := New(db, log.NewNop())
	for _, s := range want {
		require.NoError(t, repo.CreateSession(ctx, model.SessionSummary{ID: s.ID, CreatedAt: s.CreatedAt}))
		require.NoError(t, repo.AppendTurns(ctx, s.ID, s.Turns))
	}
	require.NoError(t, db.Close())

	db, err = sqlite.Open(path)
	require.NoError(t, err)
	defer db.Close()

	got, err := New(db, log.NewNop()).Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendCreatesSession(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "homework.db"))
	require.NoError(t, err)
	defer db.Close()

	repo := New(db, log.NewNop())
	turns := sampleSessions()[0].Turns
	require.NoError(t, repo.AppendTurns(ctx, "fresh", turns))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Turns, len(turns))
	require.Nil(t, got[0].Turns[1].Intent, "assistant turns carry no annotation")
}
