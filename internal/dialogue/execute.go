package dialogue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"homework-assistant/internal/analysis"
	"homework-assistant/internal/assignment"
	"homework-assistant/internal/model"
	"homework-assistant/pkg/inference"
)

// execution is the result of running a plan.
type execution struct {
	body    string
	failed  bool
	mutated bool
	notices []string
	// assignmentID and className are the references the result introduced.
	assignmentID string
	className    string
	// listed is set when the result showed more than one assignment, which
	// leaves no single referent.
	listed bool
}

func failed(body string) execution {
	return execution{body: body, failed: true}
}

// execute performs the single read or mutation implied by p.
func (m *Manager) execute(ctx context.Context, p plan, text string, now time.Time) execution {
	e := p.entities
	switch p.intent {
	case model.IntentListAssignments:
		return m.listAssignments(ctx, e, now)
	case model.IntentDueDateQuery:
		return m.dueDate(ctx, e, now)
	case model.IntentWorkloadAnalysis:
		return m.workload(ctx, e, now)
	case model.IntentPriorityBreakdown:
		return m.priorities(ctx, e)
	case model.IntentScheduleSuggestion:
		return m.schedule(ctx, e, now)
	case model.IntentStudyTip:
		return m.studyTips(ctx, e, text, now)
	case model.IntentAddAssignment:
		return m.addAssignment(ctx, e)
	case model.IntentMarkComplete:
		return m.markComplete(ctx, e.AssignmentID)
	case model.IntentHelp:
		return execution{body: MsgHelp}
	case model.IntentSmallTalk:
		return execution{body: smallTalk(text)}
	case model.IntentBotStatus:
		return execution{body: m.status()}
	}
	m.l.Warnf(ctx, "%s: no handler for intent %s", LogPrefixExecute, p.intent)
	return failed(MsgFallback)
}

func (m *Manager) query(ctx context.Context, f assignment.Filter) ([]model.Assignment, bool) {
	items, err := m.deps.Store.Query(ctx, f)
	if err != nil {
		m.l.Warnf(ctx, "%s: query: %v", LogPrefixExecute, err)
		return nil, false
	}
	return items, true
}

func (m *Manager) listAssignments(ctx context.Context, e model.Entities, now time.Time) execution {
	items, ok := m.query(ctx, filterFor(e, now))
	if !ok {
		return failed(MsgStoreFailed)
	}
	if len(items) == 0 {
		if e.HasFilter() {
			return execution{body: MsgNoMatches}
		}
		return execution{body: MsgNoAssignments}
	}

	ex := execution{
		body: fmt.Sprintf(MsgListHeader, describe(e)) + "\n" + analysis.FormatAssignments(items, m.cfg.Location),
	}
	if len(items) == 1 {
		ex.assignmentID = items[0].ID
	} else {
		ex.listed = true
	}
	return ex
}

func (m *Manager) dueDate(ctx context.Context, e model.Entities, now time.Time) execution {
	if e.AssignmentID != "" {
		a, err := m.deps.Store.Get(ctx, e.AssignmentID)
		if err != nil {
			return m.storeFailed(ctx, e.AssignmentID, err)
		}
		due := a.DueDate.In(m.cfg.Location).Format(dueLayout)
		body := fmt.Sprintf(MsgDueOne, a.ID, a.Name, a.ClassName, due)
		switch {
		case a.Completed:
			body += MsgDueCompleted
		case a.IsOverdue(now):
			body = fmt.Sprintf(MsgDueOverdue, a.ID, a.Name, a.ClassName, due)
		}
		return execution{body: body, assignmentID: a.ID, className: a.ClassName}
	}

	f := filterFor(e, now)
	when := describeWhen(e, m.cfg.HorizonDays)
	if e.DateRange == nil && !e.Overdue {
		f.DueFrom = now
		f.DueTo = startOfDay(now).AddDate(0, 0, m.cfg.HorizonDays+1).Add(-time.Second)
	}
	items, ok := m.query(ctx, f)
	if !ok {
		return failed(MsgStoreFailed)
	}
	if len(items) == 0 {
		return execution{body: fmt.Sprintf(MsgNothingDue, when)}
	}

	ex := execution{body: fmt.Sprintf(MsgDueHeader, when) + "\n" + analysis.FormatAssignments(items, m.cfg.Location)}
	if len(items) == 1 {
		ex.assignmentID = items[0].ID
	} else {
		ex.listed = true
	}
	return ex
}

func (m *Manager) workload(ctx context.Context, e model.Entities, now time.Time) execution {
	items, ok := m.query(ctx, assignment.Filter{ClassName: e.ClassName, Completed: assignment.Incomplete()})
	if !ok {
		return failed(MsgStoreFailed)
	}
	if e.DateRange == nil || isWeekExpr(e.DateExpr) {
		return execution{body: analysis.FormatWorkload(analysis.Workload(items, now, m.cfg.HorizonDays))}
	}
	// A range that started before today only counts from today on, like the
	// horizon does.
	from := e.DateRange.Start
	if today := startOfDay(now); from.Before(today) && !e.DateRange.End.Before(today) {
		from = today
	}
	return execution{body: analysis.FormatWorkload(analysis.WorkloadIn(items, from, e.DateRange.End, describeRange(e)))}
}

// isWeekExpr reports whether expr names the current week, which for workload
// questions is the horizon.
func isWeekExpr(expr string) bool {
	switch strings.ToLower(strings.TrimSpace(expr)) {
	case "this week", "the week":
		return true
	}
	return false
}

func (m *Manager) priorities(ctx context.Context, e model.Entities) execution {
	items, ok := m.query(ctx, assignment.Filter{ClassName: e.ClassName, Completed: assignment.Incomplete()})
	if !ok {
		return failed(MsgStoreFailed)
	}
	groups := analysis.PriorityBreakdown(items)
	if len(groups) == 0 {
		return execution{body: MsgNoPriorities}
	}
	return execution{body: analysis.FormatPriorityBreakdown(groups)}
}

func (m *Manager) schedule(ctx context.Context, e model.Entities, now time.Time) execution {
	items, ok := m.query(ctx, assignment.Filter{ClassName: e.ClassName, Completed: assignment.Incomplete()})
	if !ok {
		return failed(MsgStoreFailed)
	}
	entries := analysis.Schedule(items, now)
	if len(entries) == 0 {
		return execution{body: MsgScheduleClear}
	}
	return execution{body: analysis.FormatSchedule(entries)}
}

func (m *Manager) studyTips(ctx context.Context, e model.Entities, text string, now time.Time) execution {
	active, ok := m.query(ctx, assignment.Filter{Completed: assignment.Incomplete()})
	if !ok {
		return failed(MsgStoreFailed)
	}

	if e.AssignmentID != "" {
		a, err := m.deps.Store.Get(ctx, e.AssignmentID)
		if err != nil {
			return m.storeFailed(ctx, e.AssignmentID, err)
		}
		tips := analysis.StudyTips(active, a, now)
		return execution{
			body:         fmt.Sprintf(MsgTipsFor, a.ID, a.Name) + "\n- " + strings.Join(tips, "\n- "),
			assignmentID: a.ID,
			className:    a.ClassName,
		}
	}

	if e.ClassName != "" {
		var inClass []model.Assignment
		for _, a := range active {
			if strings.EqualFold(a.ClassName, e.ClassName) {
				inClass = append(inClass, a)
			}
		}
		active = inClass
	}
	if len(active) == 0 {
		return execution{body: MsgNoActive}
	}

	var b strings.Builder
	if warnings := analysis.Warnings(analysis.Workload(active, now, m.cfg.HorizonDays)); len(warnings) > 0 {
		b.WriteString(MsgWorkloadAssessment + strings.Join(warnings, "\n"))
	} else {
		b.WriteString(MsgManageable)
	}
	b.WriteString("\n\n" + MsgGeneralTip + analysis.GeneralTip(inference.Normalize(text)))
	return execution{body: b.String()}
}

func (m *Manager) addAssignment(ctx context.Context, e model.Entities) execution {
	in := assignment.CreateInput{
		Name:       e.Title,
		ClassName:  e.ClassName,
		DueDate:    e.DateRange.End.Truncate(time.Minute),
		Priority:   e.Priority,
		Difficulty: difficultyFor(e),
	}
	out, err := m.deps.Store.Create(ctx, in)
	if err != nil {
		return m.storeFailed(ctx, "", err)
	}

	a := out.Assignment
	ex := execution{
		body: fmt.Sprintf(MsgAdded, a.ID, a.Name, a.ClassName, a.DueDate.In(m.cfg.Location).Format(dueLayout),
			a.Priority, a.Difficulty, model.MaxDifficulty),
		mutated:      true,
		assignmentID: a.ID,
		className:    a.ClassName,
	}
	m.persistNotice(ctx, &ex, out.PersistErr)
	return ex
}

func (m *Manager) markComplete(ctx context.Context, id string) execution {
	out, err := m.deps.Store.MarkComplete(ctx, id)
	if err != nil {
		return m.storeFailed(ctx, id, err)
	}

	a := out.Assignment
	ex := execution{mutated: out.Changed, assignmentID: a.ID, className: a.ClassName}
	if out.Changed {
		ex.body = fmt.Sprintf(MsgMarkedComplete, a.ID, a.Name)
	} else {
		ex.body = fmt.Sprintf(MsgAlreadyComplete, a.ID, a.Name)
	}
	m.persistNotice(ctx, &ex, out.PersistErr)
	return ex
}

// storeFailed turns a store error into a failed-operation reply.
func (m *Manager) storeFailed(ctx context.Context, id string, err error) execution {
	switch {
	case errors.Is(err, assignment.ErrNotFound):
		m.l.Infof(ctx, "%s: %v", LogPrefixExecute, err)
		return failed(fmt.Sprintf(MsgNotFound, id))
	case errors.Is(err, assignment.ErrInvalidMutation):
		m.l.Infof(ctx, "%s: %v", LogPrefixExecute, err)
		return failed(fmt.Sprintf(MsgInvalid, err))
	}
	m.l.Warnf(ctx, "%s: %v", LogPrefixExecute, err)
	return failed(MsgStoreFailed)
}

func (m *Manager) persistNotice(ctx context.Context, ex *execution, err error) {
	if err == nil {
		return
	}
	m.l.Warnf(ctx, "%s: %v", LogPrefixExecute, err)
	ex.notices = append(ex.notices, MsgPersistNotice)
}

func (m *Manager) status() string {
	if m.deps.Status == nil {
		return MsgStatusDegraded
	}
	providers := m.deps.Status.Providers()
	if len(providers) == 0 {
		return MsgStatusDegraded
	}
	return MsgStatusLoaded + fmt.Sprintf(MsgStatusProviders, strings.Join(providers, ", "))
}

func smallTalk(text string) string {
	words := " " + inference.Normalize(text) + " "
	switch {
	case strings.Contains(words, " thank") || strings.Contains(words, " thanks "):
		return MsgThanks
	case strings.Contains(words, " bye ") || strings.Contains(words, " goodbye ") ||
		strings.Contains(words, " good night ") || strings.Contains(words, " see you "):
		return MsgFarewell
	}
	return MsgGreeting
}
