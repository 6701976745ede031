package usecase

import (
	"context"
	"fmt"
	"time"

	"homework-assistant/internal/assignment"
	"homework-assistant/internal/model"
	"homework-assistant/pkg/gcalendar"
)

const minEventDuration = 30 * time.Minute

// ExportToCalendar creates one event per incomplete assignment due after
// input.From. Each event ends at the due time and lasts the estimated
// workload. Assignments exported earlier are skipped.
func (uc *implUseCase) ExportToCalendar(ctx context.Context, input assignment.ExportInput) (assignment.ExportOutput, error) {
	if uc.calendar == nil {
		return assignment.ExportOutput{}, assignment.ErrCalendarNotConfigured
	}

	from := input.From
	if from.IsZero() {
		from = uc.now()
	}

	items, err := uc.Query(ctx, assignment.Filter{DueFrom: from, Completed: assignment.Incomplete()})
	if err != nil {
		return assignment.ExportOutput{}, err
	}
	if len(items) == 0 {
		return assignment.ExportOutput{}, nil
	}

	existing, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    earliestStart(items),
		TimeMax:    items[len(items)-1].DueDate.Add(time.Minute),
	})
	if err != nil {
		uc.l.Warnf(ctx, "internal.assignment.usecase.ExportToCalendar: list events: %v", err)
		return assignment.ExportOutput{}, fmt.Errorf("%w: %v", assignment.ErrCalendarExport, err)
	}
	exported := make(map[string]bool, len(existing))
	for _, ev := range existing {
		if ev.PrivateKey != "" {
			exported[ev.PrivateKey] = true
		}
	}

	var out assignment.ExportOutput
	for _, a := range items {
		if exported[a.ID] {
			out.Skipped++
			continue
		}
		start, end := eventWindow(a)
		ev, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.calendarID,
			Summary:     fmt.Sprintf("[%s] %s", a.ClassName, a.Name),
			Description: fmt.Sprintf("Priority: %s\nDifficulty: %d/%d\nEstimated: %.1f hours", a.Priority, a.Difficulty, model.MaxDifficulty, a.EstimatedHours()),
			StartTime:   start.In(uc.location),
			EndTime:     end.In(uc.location),
			Timezone:    uc.timezoneName(),
			PrivateKey:  a.ID,
		})
		if err != nil {
			uc.l.Warnf(ctx, "internal.assignment.usecase.ExportToCalendar: %s: %v", a.ID, err)
			out.Failed++
			continue
		}
		out.Exported++
		if ev.HtmlLink != "" {
			out.Links = append(out.Links, ev.HtmlLink)
		}
	}

	uc.l.Infof(ctx, "internal.assignment.usecase.ExportToCalendar: exported=%d skipped=%d failed=%d", out.Exported, out.Skipped, out.Failed)
	if out.Exported == 0 && out.Failed > 0 {
		return out, assignment.ErrCalendarExport
	}
	return out, nil
}

func eventWindow(a model.Assignment) (time.Time, time.Time) {
	d := time.Duration(a.EstimatedHours() * float64(time.Hour))
	if d < minEventDuration {
		d = minEventDuration
	}
	return a.DueDate.Add(-d), a.DueDate
}

func earliestStart(items []model.Assignment) time.Time {
	earliest, _ := eventWindow(items[0])
	for _, a := range items[1:] {
		if start, _ := eventWindow(a); start.Before(earliest) {
			earliest = start
		}
	}
	return earliest
}

// timezoneName is empty for the process-local zone; RFC3339 offsets carry it.
func (uc *implUseCase) timezoneName() string {
	if uc.location == time.Local || uc.location.String() == "Local" {
		return ""
	}
	return uc.location.String()
}
