package analysis

import (
	"sort"
	"time"

	"homework-assistant/internal/model"
)

// MaxScheduleEntries caps the schedule suggestion.
const MaxScheduleEntries = 5

// Schedule suggests what to focus on: future incomplete assignments by
// priority, then due date, with the hours per day needed to finish on time.
func Schedule(items []model.Assignment, now time.Time) []ScheduleEntry {
	var upcoming []model.Assignment
	for _, a := range items {
		if !a.Completed && a.DueDate.After(now) {
			upcoming = append(upcoming, a)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		ri, rj := upcoming[i].Priority.Rank(), upcoming[j].Priority.Rank()
		if ri != rj {
			return ri > rj
		}
		if !upcoming[i].DueDate.Equal(upcoming[j].DueDate) {
			return upcoming[i].DueDate.Before(upcoming[j].DueDate)
		}
		return model.AssignmentSeq(upcoming[i].ID) < model.AssignmentSeq(upcoming[j].ID)
	})
	if len(upcoming) > MaxScheduleEntries {
		upcoming = upcoming[:MaxScheduleEntries]
	}

	entries := make([]ScheduleEntry, 0, len(upcoming))
	for _, a := range upcoming {
		e := ScheduleEntry{
			Assignment:     a,
			DaysUntilDue:   a.DaysUntilDue(now),
			EstimatedHours: a.EstimatedHours(),
		}
		if e.DaysUntilDue <= 0 {
			e.DueToday = true
		} else {
			e.DailyHours = e.EstimatedHours / float64(e.DaysUntilDue)
		}
		entries = append(entries, e)
	}
	return entries
}
