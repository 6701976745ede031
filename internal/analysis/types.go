package analysis

import (
	"time"

	"homework-assistant/internal/model"
)

// DefaultHorizonDays is the workload window when none is configured.
const DefaultHorizonDays = 7

// PriorityGroup holds assignments of one priority ordered by due date.
type PriorityGroup struct {
	Priority    model.Priority     `json:"priority"`
	Assignments []model.Assignment `json:"assignments"`
}

// DayGroup holds the assignments due on one calendar day, grouped by
// priority from High to Low. Empty priorities are omitted.
type DayGroup struct {
	Date       time.Time       `json:"date"`
	ByPriority []PriorityGroup `json:"by_priority"`
}

// WorkloadReport covers incomplete assignments due in [From, To].
type WorkloadReport struct {
	From           time.Time              `json:"from"`
	To             time.Time              `json:"to"`
	HorizonDays    int                    `json:"horizon_days"`
	// Window names an explicit range, such as "tomorrow"; empty means the
	// horizon starting today.
	Window         string                 `json:"window,omitempty"`
	Days           []DayGroup             `json:"days"`
	Counts         map[model.Priority]int `json:"counts"`
	Total          int                    `json:"total"`
	HighDifficulty int                    `json:"high_difficulty"`
	EstimatedHours float64                `json:"estimated_hours"`
}

// ScheduleEntry is one line of a study schedule suggestion.
type ScheduleEntry struct {
	Assignment     model.Assignment `json:"assignment"`
	DaysUntilDue   int              `json:"days_until_due"`
	EstimatedHours float64          `json:"estimated_hours"`
	// DailyHours is zero when the assignment is due today.
	DailyHours float64 `json:"daily_hours"`
	DueToday   bool    `json:"due_today"`
}

// ClassHours is the estimated effort of one class.
type ClassHours struct {
	ClassName string  `json:"class"`
	Count     int     `json:"count"`
	Hours     float64 `json:"hours"`
}
