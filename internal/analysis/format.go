package analysis

import (
	"fmt"
	"strings"
	"time"

	"homework-assistant/internal/model"
)

const (
	dayLayout = "Mon Jan 2"
	dueLayout = "2006-01-02 15:04"
)

// FormatWorkload renders a report as chat text.
func FormatWorkload(r WorkloadReport) string {
	window := fmt.Sprintf("in the next %d days", r.HorizonDays)
	if r.Window != "" {
		window = r.Window
	}
	if r.Total == 0 {
		return fmt.Sprintf("You have nothing due %s. Enjoy the breathing room!", window)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Workload %s: %d assignment(s)", window, r.Total)
	var parts []string
	for _, p := range model.Priorities {
		if n := r.Counts[p]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s-priority", n, p))
		}
	}
	fmt.Fprintf(&b, " (%s), about %.1f hours of work.", strings.Join(parts, ", "), r.EstimatedHours)

	for _, d := range r.Days {
		fmt.Fprintf(&b, "\n%s:", d.Date.Format(dayLayout))
		for _, g := range d.ByPriority {
			fmt.Fprintf(&b, "\n  %s:", g.Priority)
			for _, a := range g.Assignments {
				fmt.Fprintf(&b, "\n    - %s (%s) [%s]", a.Name, a.ClassName, a.ID)
			}
		}
	}

	if warnings := Warnings(r); len(warnings) > 0 {
		b.WriteString("\n\n")
		b.WriteString(strings.Join(warnings, "\n"))
	}
	return b.String()
}

// FormatPriorityBreakdown renders the breakdown as chat text.
func FormatPriorityBreakdown(groups []PriorityGroup) string {
	if len(groups) == 0 {
		return "No active assignments to prioritize!"
	}
	lines := []string{"Here's a breakdown of your assignment priorities:"}
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf("- %s priority:", g.Priority))
		for _, a := range g.Assignments {
			lines = append(lines, fmt.Sprintf("  - %s (%s) [%s]", a.Name, a.ClassName, a.ID))
		}
	}
	return strings.Join(lines, "\n")
}

// FormatSchedule renders schedule entries as chat text.
func FormatSchedule(entries []ScheduleEntry) string {
	if len(entries) == 0 {
		return "Your schedule looks clear! No upcoming assignments."
	}
	lines := []string{fmt.Sprintf("📅 Suggested Study Schedule Focus (Top %d):", MaxScheduleEntries)}
	for _, e := range entries {
		a := e.Assignment
		head := fmt.Sprintf("• %s (%s):\n  - Priority: %s, Difficulty: %d/%d", a.Name, a.ClassName, a.Priority, a.Difficulty, model.MaxDifficulty)
		if e.DueToday {
			lines = append(lines, fmt.Sprintf("%s\n  - URGENT: DUE TODAY! Estimated remaining: %.1f hrs. Focus on this!", head, e.EstimatedHours))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s\n  - Due in %d days. Estimated total: %.1f hrs.\n  - Suggestion: Allocate ~%.1f hours/day.",
			head, e.DaysUntilDue, e.EstimatedHours, e.DailyHours))
	}
	return strings.Join(lines, "\n")
}

// FormatAssignments lists assignments one per line with due times shown in
// loc. A nil loc keeps each time's own location.
func FormatAssignments(items []model.Assignment, loc *time.Location) string {
	lines := make([]string, 0, len(items))
	for i, a := range items {
		status := "Incomplete"
		if a.Completed {
			status = "Completed"
		}
		due := a.DueDate
		if loc != nil {
			due = due.In(loc)
		}
		lines = append(lines, fmt.Sprintf("%d. [%s] %s (%s) - due %s, %s priority, %s",
			i+1, a.ID, a.Name, a.ClassName, due.Format(dueLayout), a.Priority, status))
	}
	return strings.Join(lines, "\n")
}
