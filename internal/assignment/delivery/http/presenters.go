package http

import (
	"errors"
	"strings"
	"time"

	"homework-assistant/internal/analysis"
	"homework-assistant/internal/assignment"
	"homework-assistant/internal/model"
	"homework-assistant/pkg/response"
)

var (
	errInvalidPriority = errors.New("priority must be Low, Medium or High")
	errInvalidDate     = errors.New("dates must be YYYY-MM-DD or RFC3339")
	errInvalidDays     = errors.New("days must be between 1 and 365")
)

// parseDate accepts a calendar date (start of day in loc) or RFC3339.
func parseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation(response.DateFormat, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}

func parsePriority(s string) (model.Priority, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	p, err := model.ParsePriority(s)
	if err != nil {
		return "", errInvalidPriority
	}
	return p, nil
}

// --- Request DTOs ---

type createReq struct {
	Name       string    `json:"name"       binding:"required,max=255"`
	ClassName  string    `json:"class"      binding:"required,max=255"`
	DueDate    time.Time `json:"due_date"   binding:"required"`
	Priority   string    `json:"priority"`
	Difficulty int       `json:"difficulty" binding:"omitempty,min=1,max=10"`
}

func (r createReq) validate() error {
	_, err := parsePriority(r.Priority)
	return err
}

func (r createReq) toInput() assignment.CreateInput {
	p, _ := parsePriority(r.Priority)
	return assignment.CreateInput{
		Name:       r.Name,
		ClassName:  r.ClassName,
		DueDate:    r.DueDate,
		Priority:   p,
		Difficulty: r.Difficulty,
	}
}

// ---

type listReq struct {
	Class     string `form:"class"`
	Priority  string `form:"priority"`
	Completed *bool  `form:"completed"`
	Overdue   bool   `form:"overdue"`
	DueFrom   string `form:"due_from"`
	DueTo     string `form:"due_to"`
	Limit     int    `form:"limit"`
}

func (r listReq) validate() error {
	if _, err := parsePriority(r.Priority); err != nil {
		return err
	}
	for _, d := range []string{r.DueFrom, r.DueTo} {
		if _, err := parseDate(d, time.UTC); err != nil {
			return err
		}
	}
	return nil
}

func (r listReq) toFilter(loc *time.Location, now time.Time) assignment.Filter {
	p, _ := parsePriority(r.Priority)
	from, _ := parseDate(r.DueFrom, loc)
	to, _ := parseDate(r.DueTo, loc)
	if !to.IsZero() && len(strings.TrimSpace(r.DueTo)) == len(response.DateFormat) {
		// A bare date includes the whole day.
		to = to.AddDate(0, 0, 1).Add(-time.Second)
	}
	f := assignment.Filter{
		ClassName: strings.TrimSpace(r.Class),
		Priority:  p,
		Completed: r.Completed,
		DueFrom:   from,
		DueTo:     to,
		Limit:     r.Limit,
	}
	if r.Overdue {
		f.OverdueAt = now
	}
	return f
}

// ---

type updateReq struct {
	ID         string     `json:"-"` // populated from URI param
	Name       *string    `json:"name"       binding:"omitempty,max=255"`
	ClassName  *string    `json:"class"      binding:"omitempty,max=255"`
	DueDate    *time.Time `json:"due_date"`
	Priority   *string    `json:"priority"`
	Difficulty *int       `json:"difficulty"`
	Completed  *bool      `json:"completed"`
}

func (r updateReq) validate() error {
	if r.Priority != nil {
		if _, err := model.ParsePriority(*r.Priority); err != nil {
			return errInvalidPriority
		}
	}
	return nil
}

func (r updateReq) toInput() assignment.UpdateInput {
	in := assignment.UpdateInput{
		ID:         r.ID,
		Name:       r.Name,
		ClassName:  r.ClassName,
		DueDate:    r.DueDate,
		Difficulty: r.Difficulty,
		Completed:  r.Completed,
	}
	if r.Priority != nil {
		p, _ := model.ParsePriority(*r.Priority)
		in.Priority = &p
	}
	return in
}

// ---

type completeReq struct {
	ID        string `json:"-"`
	Completed *bool  `json:"completed"`
}

type workloadReq struct {
	Days  int    `form:"days"`
	Class string `form:"class"`
}

func (r workloadReq) validate() error {
	if r.Days < 0 || r.Days > 365 {
		return errInvalidDays
	}
	return nil
}

type exportReq struct {
	From time.Time `json:"from"`
}

// --- Response DTOs ---

type assignmentResp struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	ClassName    string         `json:"class"`
	DueDate      time.Time      `json:"due_date"`
	DueDay       response.Date  `json:"due_day"`
	Priority     model.Priority `json:"priority"`
	Difficulty   int            `json:"difficulty"`
	Completed    bool           `json:"completed"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	Overdue      bool           `json:"overdue"`
	DaysUntilDue int            `json:"days_until_due"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (h *handler) newAssignmentResp(a model.Assignment, now time.Time) assignmentResp {
	return assignmentResp{
		ID:           a.ID,
		Name:         a.Name,
		ClassName:    a.ClassName,
		DueDate:      a.DueDate,
		DueDay:       response.NewDate(a.DueDate, h.loc),
		Priority:     a.Priority,
		Difficulty:   a.Difficulty,
		Completed:    a.Completed,
		CompletedAt:  a.CompletedAt,
		Overdue:      a.IsOverdue(now),
		DaysUntilDue: a.DaysUntilDue(now),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

type mutationResp struct {
	Assignment assignmentResp `json:"assignment"`
	Changed    bool           `json:"changed"`
}

func (h *handler) newMutationResp(out assignment.MutationOutput) mutationResp {
	return mutationResp{Assignment: h.newAssignmentResp(out.Assignment, h.now()), Changed: out.Changed}
}

type listResp struct {
	Assignments []assignmentResp `json:"assignments"`
	Total       int              `json:"total"`
}

func (h *handler) newListResp(items []model.Assignment) listResp {
	now := h.now()
	out := make([]assignmentResp, len(items))
	for i, a := range items {
		out[i] = h.newAssignmentResp(a, now)
	}
	return listResp{Assignments: out, Total: len(out)}
}

type classesResp struct {
	Classes []string `json:"classes"`
}

type workloadResp struct {
	Report   analysis.WorkloadReport `json:"report"`
	Warnings []string                `json:"warnings"`
	Classes  []analysis.ClassHours   `json:"hours_by_class"`
	Summary  string                  `json:"summary"`
}

func newWorkloadResp(r analysis.WorkloadReport, classes []analysis.ClassHours) workloadResp {
	return workloadResp{
		Report:   r,
		Warnings: analysis.Warnings(r),
		Classes:  classes,
		Summary:  analysis.FormatWorkload(r),
	}
}

type eventResp struct {
	Kind         model.AssignmentEventKind `json:"kind"`
	AssignmentID string                    `json:"assignment_id"`
	At           time.Time                 `json:"at"`
}

type eventsResp struct {
	Events []eventResp `json:"events"`
}

func newEventsResp(events []model.AssignmentEvent) eventsResp {
	out := make([]eventResp, len(events))
	for i, ev := range events {
		out[i] = eventResp{Kind: ev.Kind, AssignmentID: ev.AssignmentID, At: ev.At}
	}
	return eventsResp{Events: out}
}

type exportResp struct {
	Exported int      `json:"exported"`
	Skipped  int      `json:"skipped"`
	Failed   int      `json:"failed"`
	Links    []string `json:"links"`
}

func newExportResp(out assignment.ExportOutput) exportResp {
	return exportResp{Exported: out.Exported, Skipped: out.Skipped, Failed: out.Failed, Links: out.Links}
}
