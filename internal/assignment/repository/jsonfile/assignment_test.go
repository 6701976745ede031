package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"homework-assistant/internal/assignment/repository"
	"homework-assistant/internal/model"
	"homework-assistant/pkg/log"
)

func sampleAssignments() []model.Assignment {
	due := time.Date(2024, 3, 11, 23, 59, 0, 0, time.UTC)
	done := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
	created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	return []model.Assignment{
		{ID: "A1", Name: "Problem set 4", ClassName: "Math", DueDate: due, Priority: model.PriorityHigh, Difficulty: 7, CreatedAt: created, UpdatedAt: created},
		{ID: "A2", Name: "Lab report", ClassName: "Science", DueDate: due.AddDate(0, 0, 2), Priority: model.PriorityLow, Difficulty: 3, Completed: true, CompletedAt: &done, CreatedAt: created, UpdatedAt: done},
		{ID: "A10", Name: "Essay draft", ClassName: "English", DueDate: due.AddDate(0, 0, 5), Priority: model.PriorityMedium, Difficulty: 5, CreatedAt: created, UpdatedAt: created},
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "assignments.json")

	repo := New(path, log.NewNop())
	_, err := repo.Load(ctx)
	require.NoError(t, err)

	want := sampleAssignments()
	for _, a := range want {
		require.NoError(t, repo.Upsert(ctx, a))
	}

	reloaded := New(path, log.NewNop())
	got, err := reloaded.Load(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "assignments.json")
	repo := New(path, log.NewNop())
	for _, a := range sampleAssignments() {
		require.NoError(t, repo.Upsert(ctx, a))
	}

	require.NoError(t, repo.Delete(ctx, "A2"))

	got, err := New(path, log.NewNop()).Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, a := range got {
		require.NotEqual(t, "A2", a.ID)
	}
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "assignments.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"assignments": [{"id": `), 0o644))

	got, err := New(path, log.NewNop()).Load(ctx)
	require.NoError(t, err)
	require.Empty(t, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "assignments.json.corrupted.") {
			backups++
		}
	}
	require.Equal(t, 1, backups, "corrupted file should be backed up")
}

func TestUpsertWriteFailure(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	// The target path is a directory, so the rename cannot replace it.
	path := filepath.Join(dir, "assignments.json")
	require.NoError(t, os.Mkdir(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), nil, 0o644))

	err := New(path, log.NewNop()).Upsert(ctx, sampleAssignments()[0])
	require.Error(t, err)
}

func TestWriteBeforeLoadKeepsFileRecords(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "assignments.json")
	seed := New(path, log.NewNop())
	all := sampleAssignments()
	require.NoError(t, seed.Upsert(ctx, all[0]))
	require.NoError(t, seed.Upsert(ctx, all[1]))

	require.NoError(t, New(path, log.NewNop()).Upsert(ctx, all[2]))

	got, err := New(path, log.NewNop()).Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(all, got); diff != "" {
		t.Errorf("records lost (-want +got):\n%s", diff)
	}
}

func TestUnreadableFileRefusesWrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "assignments.json")
	require.NoError(t, os.Mkdir(path, 0o755))

	repo := New(path, log.NewNop())
	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, repository.ErrFailedToLoad)

	err = repo.Upsert(ctx, sampleAssignments()[0])
	require.ErrorIs(t, err, repository.ErrFailedToUpsert)
	require.ErrorIs(t, repo.Delete(ctx, "A1"), repository.ErrFailedToDelete)
}
