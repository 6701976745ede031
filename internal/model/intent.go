package model

// Intent is the closed set of user goals the assistant can serve.
type Intent string

const (
	IntentListAssignments    Intent = "list_assignments"
	IntentDueDateQuery       Intent = "due_date_query"
	IntentWorkloadAnalysis   Intent = "workload_analysis"
	IntentPriorityBreakdown  Intent = "priority_breakdown"
	IntentScheduleSuggestion Intent = "schedule_suggestion"
	IntentStudyTip           Intent = "study_tip"
	IntentAddAssignment      Intent = "add_assignment"
	IntentMarkComplete       Intent = "mark_complete"
	IntentHelp               Intent = "help"
	IntentSmallTalk          Intent = "small_talk"
	IntentBotStatus          Intent = "bot_status"
	IntentUnknown            Intent = "unknown"
)

// Intents lists every classifiable intent. Unknown is the fallback label and
// never a candidate.
var Intents = []Intent{
	IntentListAssignments,
	IntentDueDateQuery,
	IntentWorkloadAnalysis,
	IntentPriorityBreakdown,
	IntentScheduleSuggestion,
	IntentStudyTip,
	IntentAddAssignment,
	IntentMarkComplete,
	IntentHelp,
	IntentSmallTalk,
	IntentBotStatus,
}

// Valid reports whether i belongs to the closed set, Unknown included.
func (i Intent) Valid() bool {
	if i == IntentUnknown {
		return true
	}
	for _, known := range Intents {
		if i == known {
			return true
		}
	}
	return false
}

// Mutates reports whether serving the intent changes the store.
func (i Intent) Mutates() bool {
	return i == IntentAddAssignment || i == IntentMarkComplete
}

// IntentResult is a classified label with its confidence in [0, 1].
type IntentResult struct {
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// UnknownIntent is the result used whenever classification cannot decide.
var UnknownIntent = IntentResult{Intent: IntentUnknown, Confidence: 0}
