package dialogue

import (
	"context"
	"strings"

	"homework-assistant/internal/assignment"
	"homework-assistant/internal/model"
	"homework-assistant/internal/nlu/entity"
)

// ProcessTurn handles one utterance of sessionID. dc is read to resolve
// references and updated only when the turn executed successfully. Errors
// never escape: they become clarifications, failure replies or notices.
func (m *Manager) ProcessTurn(ctx context.Context, dc *DialogueContext, sessionID, text string) TurnResult {
	m.turnMu.Lock()
	defer m.turnMu.Unlock()
	defer m.state.Store(int32(AwaitingInput))

	if dc == nil {
		dc = &DialogueContext{}
	}
	res := TurnResult{Path: []State{AwaitingInput}}

	text = strings.TrimSpace(text)
	if text == "" {
		m.transition(ctx, &res, Responding)
		res.Outcome = OutcomeClarification
		res.Response = MsgEmptyInput
		return res
	}

	now := m.now().In(m.cfg.Location)
	m.transition(ctx, &res, Resolving)

	sig := m.infer(ctx, text, m.known(ctx), now)
	res.Intent, res.Emotion = sig.intent, sig.emotion

	p := m.fuse(ctx, sig, dc)
	res.Entities = p.entities

	var body string
	if p.clarify != "" {
		res.Outcome = p.outcome
		body = p.clarify
	} else {
		m.transition(ctx, &res, Executing)
		ex := m.execute(ctx, p, text, now)
		body = ex.body
		res.Mutated = ex.mutated
		res.Notices = append(res.Notices, ex.notices...)
		if ex.failed {
			res.Outcome = OutcomeFailed
		} else {
			res.Outcome = OutcomeExecuted
			dc.update(p, ex)
		}
	}

	m.transition(ctx, &res, Responding)
	res.Response = m.compose(res.Emotion, body, res.Notices)
	m.remember(ctx, sessionID, text, &res)

	m.l.Infof(ctx, "%s: session=%s intent=%s (%.2f) outcome=%s", LogPrefixProcessTurn, sessionID, res.Intent.Intent, res.Intent.Confidence, res.Outcome)
	return res
}

func (m *Manager) transition(ctx context.Context, res *TurnResult, to State) {
	m.state.Store(int32(to))
	res.Path = append(res.Path, to)
	m.l.Debugf(ctx, "%s: -> %s", LogPrefixProcessTurn, to)
}

// known snapshots what the store knows for reference resolution.
func (m *Manager) known(ctx context.Context) entity.Known {
	items, err := m.deps.Store.Query(ctx, assignment.Filter{})
	if err != nil {
		m.l.Warnf(ctx, "%s: query known assignments: %v", LogPrefixProcessTurn, err)
	}
	return entity.Known{Classes: m.deps.Store.KnownClasses(ctx), Assignments: items}
}

// update records the references of a successful turn. Fields the turn did
// not mention keep their previous value; a listing of several assignments
// forgets the last one.
func (dc *DialogueContext) update(p plan, ex execution) {
	if !tracksContext(p.intent) {
		return
	}
	dc.LastIntent = p.intent
	switch {
	case ex.assignmentID != "":
		dc.LastAssignmentID = ex.assignmentID
	case ex.listed:
		dc.LastAssignmentID = ""
	}
	if ex.className != "" {
		dc.LastClass = ex.className
	} else if p.entities.ClassName != "" {
		dc.LastClass = p.entities.ClassName
	}
	if p.entities.DateRange != nil {
		r := *p.entities.DateRange
		dc.LastDateRange = &r
	}
}

// tracksContext reports whether an intent talks about assignments.
func tracksContext(i model.Intent) bool {
	switch i {
	case model.IntentHelp, model.IntentSmallTalk, model.IntentBotStatus, model.IntentUnknown:
		return false
	}
	return true
}
