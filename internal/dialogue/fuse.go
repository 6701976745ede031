package dialogue

import (
	"context"
	"fmt"
	"strings"

	"homework-assistant/internal/model"
	pkgErrors "homework-assistant/pkg/errors"
)

// plan is the fused reading of a turn. A non-empty clarify means the turn
// goes straight to Responding without touching the store.
type plan struct {
	intent   model.Intent
	entities model.Entities
	outcome  Outcome
	clarify  string
}

// fuse decides what the turn means. Low confidence continues the previous
// intent when the utterance only adds slots ("what about math?"), else it
// asks. Missing references are filled from dc or clarified.
func (m *Manager) fuse(ctx context.Context, sig signals, dc *DialogueContext) plan {
	ents := sig.entities.Clone()
	in := sig.intent

	if in.Intent == model.IntentUnknown {
		m.l.Debugf(ctx, "%s: unknown intent (%.2f), falling back", LogPrefixFuse, in.Confidence)
		return plan{entities: ents, outcome: OutcomeFallback, clarify: MsgFallback}
	}

	intent := in.Intent
	if in.Confidence < m.cfg.MinConfidence {
		switch {
		case continuesPrevious(ents, dc):
			m.l.Debugf(ctx, "%s: %s (%.2f) read as a follow-up to %s", LogPrefixFuse, in.Intent, in.Confidence, dc.LastIntent)
			intent = dc.LastIntent
			if ents.ClassName == "" {
				ents.ClassName = dc.LastClass
			}
			if ents.DateRange == nil && dc.LastDateRange != nil {
				r := *dc.LastDateRange
				ents.DateRange = &r
			}
		case in.Confidence >= m.cfg.SuggestConfidence:
			m.l.Debugf(ctx, "%s: %s below threshold (%.2f), suggesting", LogPrefixFuse, in.Intent, in.Confidence)
			return plan{entities: ents, outcome: OutcomeClarification, clarify: fmt.Sprintf(MsgSuggest, intentLabels[in.Intent])}
		default:
			m.l.Debugf(ctx, "%s: %s too weak (%.2f), falling back", LogPrefixFuse, in.Intent, in.Confidence)
			return plan{entities: ents, outcome: OutcomeFallback, clarify: MsgFallback}
		}
	}

	p := plan{intent: intent, entities: ents}
	m.require(ctx, &p, sig, dc)
	return p
}

// continuesPrevious reports whether a weak utterance only supplies new
// slots for the previous read-only intent.
func continuesPrevious(ents model.Entities, dc *DialogueContext) bool {
	if dc.LastIntent == "" || !tracksContext(dc.LastIntent) || dc.LastIntent.Mutates() {
		return false
	}
	return ents.HasFilter() || ents.AssignmentID != ""
}

// require checks the slots each intent needs.
func (m *Manager) require(ctx context.Context, p *plan, sig signals, dc *DialogueContext) {
	e := &p.entities
	switch p.intent {
	case model.IntentMarkComplete:
		if e.AssignmentID != "" {
			return
		}
		if len(e.Candidates) > 1 {
			m.ambiguous(ctx, p, sig)
			return
		}
		if dc.LastAssignmentID == "" {
			m.l.Debugf(ctx, "%s: %v: nothing to mark complete", LogPrefixFuse, pkgErrors.ErrAmbiguousReference)
			p.outcome, p.clarify = OutcomeClarification, MsgAskWhichComplete
			return
		}
		e.AssignmentID = dc.LastAssignmentID

	case model.IntentDueDateQuery, model.IntentStudyTip:
		if e.AssignmentID != "" {
			return
		}
		if len(e.Candidates) > 1 {
			m.ambiguous(ctx, p, sig)
			return
		}
		if !e.Anaphora || e.HasFilter() {
			return
		}
		if dc.LastAssignmentID != "" {
			e.AssignmentID = dc.LastAssignmentID
			return
		}
		if p.intent == model.IntentDueDateQuery {
			m.l.Debugf(ctx, "%s: %v: empty context", LogPrefixFuse, pkgErrors.ErrAmbiguousReference)
			p.outcome, p.clarify = OutcomeClarification, MsgAskWhichDue
		}

	case model.IntentAddAssignment:
		if e.ClassName == "" && dc.LastClass != "" {
			e.ClassName = dc.LastClass
		}
		var missing []string
		if e.Title == "" {
			missing = append(missing, "a name")
		}
		if e.ClassName == "" {
			missing = append(missing, "a class")
		}
		if e.DateRange == nil {
			missing = append(missing, "a due date")
		}
		if len(missing) > 0 {
			p.outcome, p.clarify = OutcomeClarification, fmt.Sprintf(MsgAddMissing, joinAnd(missing))
		}
	}
}

func (m *Manager) ambiguous(ctx context.Context, p *plan, sig signals) {
	names := make(map[string]string, len(sig.known.Assignments))
	for _, a := range sig.known.Assignments {
		names[a.ID] = a.Name
	}
	options := make([]string, 0, len(p.entities.Candidates))
	for _, id := range p.entities.Candidates {
		options = append(options, fmt.Sprintf("%s (%s)", id, names[id]))
	}
	m.l.Debugf(ctx, "%s: %v: %v", LogPrefixFuse, pkgErrors.ErrAmbiguousReference, p.entities.Candidates)
	p.outcome, p.clarify = OutcomeClarification, fmt.Sprintf(MsgAmbiguous, strings.Join(options, ", "))
}

func joinAnd(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}
