package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Priority is the urgency label of an assignment.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists every priority from most to least urgent.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// ParsePriority accepts any casing of Low, Medium or High.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, nil
	case "medium", "med", "normal":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// Valid reports whether p is one of the defined priorities.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Rank orders priorities, High being the largest.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

const (
	MinDifficulty = 1
	MaxDifficulty = 10

	// HoursPerDifficultyPoint converts difficulty into estimated effort.
	HoursPerDifficultyPoint = 1.5

	// AssignmentIDPrefix precedes the numeric sequence in an assignment id.
	AssignmentIDPrefix = "A"
)

// Assignment is a single piece of homework.
type Assignment struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ClassName   string     `json:"class"`
	DueDate     time.Time  `json:"due_date"`
	Priority    Priority   `json:"priority"`
	Difficulty  int        `json:"difficulty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AssignmentID formats the id for sequence n.
func AssignmentID(n int) string {
	return AssignmentIDPrefix + strconv.Itoa(n)
}

// AssignmentSeq extracts the numeric sequence from an id. It returns 0 for
// ids that do not follow the A<n> format.
func AssignmentSeq(id string) int {
	if !strings.HasPrefix(strings.ToUpper(id), AssignmentIDPrefix) {
		return 0
	}
	n, err := strconv.Atoi(id[len(AssignmentIDPrefix):])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// IsOverdue reports whether an incomplete assignment is past its due time.
func (a Assignment) IsOverdue(now time.Time) bool {
	return !a.Completed && a.DueDate.Before(now)
}

// EstimatedHours is the effort estimate derived from difficulty.
func (a Assignment) EstimatedHours() float64 {
	return float64(a.Difficulty) * HoursPerDifficultyPoint
}

// DaysUntilDue counts calendar days from now's day to the due day in now's
// location. Negative when overdue.
func (a Assignment) DaysUntilDue(now time.Time) int {
	loc := now.Location()
	due := a.DueDate.In(loc)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	to := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, loc)
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// Clone returns a deep copy.
func (a Assignment) Clone() Assignment {
	if a.CompletedAt != nil {
		at := *a.CompletedAt
		a.CompletedAt = &at
	}
	return a
}
