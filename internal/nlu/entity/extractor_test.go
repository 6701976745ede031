package entity

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homework-assistant/internal/model"
	"homework-assistant/pkg/datemath"
	"homework-assistant/pkg/log"
)

var ctx = context.Background()

// Sunday.
var today = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	p, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	return NewExtractor(log.NewNop(), p)
}

var known = Known{
	Classes: []string{"Math", "Science", "English", "History", "AP Physics"},
	Assignments: []model.Assignment{
		{ID: "A1", Name: "Essay draft", ClassName: "English"},
		{ID: "A2", Name: "Lab report", ClassName: "Science"},
		{ID: "A3", Name: "Math lab", ClassName: "Math"},
		{ID: "A7", Name: "Final project", ClassName: "AP Physics"},
	},
}

func TestExtractDates(t *testing.T) {
	x := newTestExtractor(t)

	got := x.Extract(ctx, "What's due tomorrow?", known, today)
	require.NotNil(t, got.DateRange)
	assert.True(t, got.DateRange.Start.Equal(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)))
	assert.True(t, got.DateRange.End.Equal(time.Date(2024, 3, 11, 23, 59, 59, 0, time.UTC)))
	assert.Equal(t, "tomorrow", got.DateExpr)
	assert.Empty(t, got.ClassName)

	got = x.Extract(ctx, "anything due friday", known, today)
	require.NotNil(t, got.DateRange)
	assert.True(t, got.DateRange.Start.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))

	got = x.Extract(ctx, "what is due on 2/30", known, today)
	assert.Nil(t, got.DateRange, "impossible dates are dropped")

	got = x.Extract(ctx, "what's due someday", known, today)
	assert.Nil(t, got.DateRange)
}

func TestExtractClass(t *testing.T) {
	x := newTestExtractor(t)

	tests := []struct {
		utterance string
		want      string
		newClass  bool
	}{
		{"what do I have for math this week", "Math", false},
		{"any sci homework?", "Science", false},
		{"physics tips please", "AP Physics", false},
		{"ENGLISH essays", "English", false},
		{"add essay for Chemistry due Friday", "Chemistry", true},
		{"what's due for tomorrow", "", false},
		{"show my list", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			got := x.Extract(ctx, tt.utterance, known, today)
			assert.Equal(t, tt.want, got.ClassName)
			assert.Equal(t, tt.newClass, got.NewClass)
		})
	}
}

func TestExtractPriorityAndDifficulty(t *testing.T) {
	x := newTestExtractor(t)

	tests := []struct {
		utterance string
		priority  model.Priority
		min, max  int
	}{
		{"show high priority assignments", model.PriorityHigh, 0, 0},
		{"anything urgent?", model.PriorityHigh, 0, 0},
		{"stuff that is not urgent", model.PriorityLow, 0, 0},
		{"medium priority ones", model.PriorityMedium, 0, 0},
		{"list the hard ones", "", 8, 0},
		{"what easy homework do I have", "", 0, 3},
		{"difficulty 12 please", "", 10, 10},
		{"difficulty below 4", "", 0, 4},
		{"difficulty at least 6", "", 6, 0},
	}
	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			got := x.Extract(ctx, tt.utterance, known, today)
			assert.Equal(t, tt.priority, got.Priority)
			assert.Equal(t, tt.min, got.DifficultyMin)
			assert.Equal(t, tt.max, got.DifficultyMax)
		})
	}
}

func TestExtractReferences(t *testing.T) {
	x := newTestExtractor(t)

	got := x.Extract(ctx, "mark A7 as done", known, today)
	assert.Equal(t, "A7", got.AssignmentID)
	assert.Equal(t, "Final project", got.AssignmentName)
	assert.False(t, got.Anaphora)

	got = x.Extract(ctx, "Mark it done", known, today)
	assert.Empty(t, got.AssignmentID)
	assert.True(t, got.Anaphora)

	got = x.Extract(ctx, "when is the essay due", known, today)
	assert.Equal(t, "A1", got.AssignmentID)
	assert.Equal(t, "Essay draft", got.AssignmentName)

	got = x.Extract(ctx, "is the lab due soon", known, today)
	assert.Empty(t, got.AssignmentID)
	assert.Equal(t, []string{"A2", "A3"}, got.Candidates)

	got = x.Extract(ctx, "is the science lab due soon", known, today)
	assert.Equal(t, "A2", got.AssignmentID)
	assert.Empty(t, got.Candidates)

	got = x.Extract(ctx, "which ones are overdue", known, today)
	assert.True(t, got.Overdue)
}

func TestExtractTitle(t *testing.T) {
	x := newTestExtractor(t)

	got := x.Extract(ctx, "add 'Chapter 5 reading' for History due tomorrow", known, today)
	assert.Equal(t, "Chapter 5 reading", got.Title)
	assert.Equal(t, "History", got.ClassName)
	require.NotNil(t, got.DateRange)
	assert.Equal(t, "tomorrow", got.DateExpr)

	got = x.Extract(ctx, "add essay for Chemistry due Friday", known, today)
	assert.Equal(t, "essay", got.Title)

	got = x.Extract(ctx, "create a new assignment called Lab 3 for Science", known, today)
	assert.Equal(t, "Lab 3", got.Title)
	assert.Equal(t, "Science", got.ClassName)

	got = x.Extract(ctx, "add a new assignment", known, today)
	assert.Empty(t, got.Title)

	got = x.Extract(ctx, "add worksheet tomorrow", known, today)
	assert.Equal(t, "worksheet", got.Title)
	require.NotNil(t, got.DateRange)
}

func TestExtractIsDeterministic(t *testing.T) {
	x := newTestExtractor(t)
	in := "add 'Problem set' for math due next friday, high priority, difficulty 7"
	assert.Equal(t, x.Extract(ctx, in, known, today), x.Extract(ctx, in, known, today))
}

// debugRecorder keeps the debug lines of an otherwise silent logger.
type debugRecorder struct {
	log.Logger
	lines []string
}

func (r *debugRecorder) Debugf(ctx context.Context, template string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(template, args...))
}

func TestExtractLogsDroppedDates(t *testing.T) {
	p, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	rec := &debugRecorder{Logger: log.NewNop()}
	x := NewExtractor(rec, p)

	got := x.Extract(ctx, "what is due on 2/30", known, today)
	assert.Nil(t, got.DateRange)
	require.Len(t, rec.lines, 1)
	assert.Contains(t, rec.lines[0], "2/30")

	x.Extract(ctx, "what is due tomorrow", known, today)
	assert.Len(t, rec.lines, 1)
}
