package dialogue

import (
	"fmt"
	"strings"
	"time"

	"homework-assistant/internal/assignment"
	"homework-assistant/internal/model"
)

// filterFor narrows a query to the slots of e. Only open work is shown.
func filterFor(e model.Entities, now time.Time) assignment.Filter {
	f := assignment.Filter{
		ClassName:     e.ClassName,
		Priority:      e.Priority,
		DifficultyMin: e.DifficultyMin,
		DifficultyMax: e.DifficultyMax,
		Completed:     assignment.Incomplete(),
	}
	if e.DateRange != nil {
		f.DueFrom, f.DueTo = e.DateRange.Start, e.DateRange.End
	}
	if e.Overdue {
		f.OverdueAt = now
	}
	return f
}

// describe renders the slots of e as a suffix for a list header.
func describe(e model.Entities) string {
	var b strings.Builder
	if e.Priority != "" {
		fmt.Fprintf(&b, " with %s priority", e.Priority)
	}
	if e.ClassName != "" {
		fmt.Fprintf(&b, " for %s", e.ClassName)
	}
	switch {
	case e.Overdue:
		b.WriteString(" that are overdue")
	case e.DateRange != nil:
		b.WriteString(" due " + describeRange(e))
	}
	return b.String()
}

// describeWhen names the window of a due-date question.
func describeWhen(e model.Entities, horizonDays int) string {
	var when string
	switch {
	case e.Overdue:
		when = "that is overdue"
	case e.DateRange != nil:
		when = describeRange(e)
	default:
		when = fmt.Sprintf("in the next %d days", horizonDays)
	}
	if e.ClassName != "" {
		when += " for " + e.ClassName
	}
	return when
}

func describeRange(e model.Entities) string {
	r := e.DateRange
	switch expr := strings.ToLower(e.DateExpr); {
	case expr == "today" || expr == "tonight" || expr == "tomorrow" || expr == "yesterday":
		return expr
	case r.End.Sub(r.Start) < 24*time.Hour:
		return "on " + r.Start.Format("Mon Jan 2")
	}
	return fmt.Sprintf("between %s and %s", r.Start.Format("Mon Jan 2"), r.End.Format("Mon Jan 2"))
}

// difficultyFor maps difficulty slots to a value for a new assignment. Zero
// lets the store apply its default.
func difficultyFor(e model.Entities) int {
	switch {
	case e.DifficultyMin != 0 && e.DifficultyMin == e.DifficultyMax:
		return e.DifficultyMin
	case e.DifficultyMin != 0:
		return e.DifficultyMin
	case e.DifficultyMax != 0:
		return e.DifficultyMax
	}
	return 0
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
