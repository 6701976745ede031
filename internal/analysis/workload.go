package analysis

import (
	"fmt"
	"sort"
	"time"

	"homework-assistant/internal/model"
)

const (
	highPriorityWarnCount   = 3
	highDifficulty          = 8
	highDifficultyWarnCount = 2
	heavyHours              = 30
	moderateHours           = 20
)

// Workload aggregates incomplete assignments due from the start of today to
// the end of the day horizonDays later, grouped by day and then by priority.
// Day boundaries follow now's location.
func Workload(items []model.Assignment, now time.Time, horizonDays int) WorkloadReport {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	from := startOfDay(now)
	until := from.AddDate(0, 0, horizonDays+1)

	report := WorkloadIn(items, from, until.Add(-time.Second), "")
	report.HorizonDays = horizonDays
	return report
}

// WorkloadIn is Workload over the inclusive range [from, to]. window labels
// the range in the summary.
func WorkloadIn(items []model.Assignment, from, to time.Time, window string) WorkloadReport {
	report := WorkloadReport{
		From:        from,
		To:          to,
		HorizonDays: spanDays(from, to),
		Window:      window,
		Counts:      make(map[model.Priority]int, len(model.Priorities)),
	}

	var inWindow []model.Assignment
	for _, a := range items {
		if a.Completed || a.DueDate.Before(from) || a.DueDate.After(to) {
			continue
		}
		inWindow = append(inWindow, a)
		report.Counts[a.Priority]++
		report.Total++
		report.EstimatedHours += a.EstimatedHours()
		if a.Difficulty >= highDifficulty {
			report.HighDifficulty++
		}
	}
	sortByDue(inWindow)

	for _, a := range inWindow {
		d := startOfDay(a.DueDate.In(from.Location()))
		if n := len(report.Days); n == 0 || !report.Days[n-1].Date.Equal(d) {
			report.Days = append(report.Days, DayGroup{Date: d})
		}
		day := &report.Days[len(report.Days)-1]
		day.ByPriority = addToGroup(day.ByPriority, a)
	}
	for i := range report.Days {
		sortGroups(report.Days[i].ByPriority)
	}
	return report
}

// spanDays counts the days after the first one that [from, to] touches.
func spanDays(from, to time.Time) int {
	n := 0
	for d := startOfDay(from).AddDate(0, 0, 1); !d.After(to); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

// Warnings flags a crowded week: many high-priority or hard assignments, or
// a large estimated effort.
func Warnings(r WorkloadReport) []string {
	var warnings []string
	if n := r.Counts[model.PriorityHigh]; n >= highPriorityWarnCount {
		warnings = append(warnings, fmt.Sprintf("⚠️ You have %d high-priority assignments due this week!", n))
	}
	if r.HighDifficulty >= highDifficultyWarnCount {
		warnings = append(warnings, fmt.Sprintf("⚠️ You have %d challenging (difficulty %d+) assignments this week!", r.HighDifficulty, highDifficulty))
	}
	switch {
	case r.EstimatedHours > heavyHours:
		warnings = append(warnings, fmt.Sprintf("⚠️ Heavy workload this week! Estimated %.1f hours needed for assignments.", r.EstimatedHours))
	case r.EstimatedHours > moderateHours:
		warnings = append(warnings, fmt.Sprintf("🔎 Moderate workload this week: Estimated %.1f hours. Plan your time well!", r.EstimatedHours))
	}
	return warnings
}

// PriorityBreakdown groups incomplete assignments by priority, High first.
func PriorityBreakdown(items []model.Assignment) []PriorityGroup {
	var active []model.Assignment
	for _, a := range items {
		if !a.Completed {
			active = append(active, a)
		}
	}
	sortByDue(active)

	var groups []PriorityGroup
	for _, a := range active {
		groups = addToGroup(groups, a)
	}
	sortGroups(groups)
	return groups
}

// HoursByClass sums estimated effort of incomplete assignments due in
// [from, to] per class. A zero bound is open.
func HoursByClass(items []model.Assignment, from, to time.Time) []ClassHours {
	idx := map[string]int{}
	var out []ClassHours
	for _, a := range items {
		if a.Completed {
			continue
		}
		if !from.IsZero() && a.DueDate.Before(from) {
			continue
		}
		if !to.IsZero() && a.DueDate.After(to) {
			continue
		}
		i, ok := idx[a.ClassName]
		if !ok {
			i = len(out)
			idx[a.ClassName] = i
			out = append(out, ClassHours{ClassName: a.ClassName})
		}
		out[i].Count++
		out[i].Hours += a.EstimatedHours()
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hours != out[j].Hours {
			return out[i].Hours > out[j].Hours
		}
		return out[i].ClassName < out[j].ClassName
	})
	return out
}

func addToGroup(groups []PriorityGroup, a model.Assignment) []PriorityGroup {
	for i := range groups {
		if groups[i].Priority == a.Priority {
			groups[i].Assignments = append(groups[i].Assignments, a)
			return groups
		}
	}
	return append(groups, PriorityGroup{Priority: a.Priority, Assignments: []model.Assignment{a}})
}

func sortGroups(groups []PriorityGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Priority.Rank() > groups[j].Priority.Rank()
	})
}

func sortByDue(items []model.Assignment) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].DueDate.Equal(items[j].DueDate) {
			return items[i].DueDate.Before(items[j].DueDate)
		}
		return model.AssignmentSeq(items[i].ID) < model.AssignmentSeq(items[j].ID)
	})
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
