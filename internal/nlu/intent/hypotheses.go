package intent

import (
	"homework-assistant/internal/model"
	"homework-assistant/pkg/inference"
)

type hypothesis struct {
	text string
	cues []inference.Cue
}

func cue(phrase string, weight float64) inference.Cue {
	return inference.Cue{Phrase: phrase, Weight: weight}
}

// hypotheses is the scoring function of each intent: the statement an
// entailment model is asked about, and the cues the lexicon scorer uses.
var hypotheses = map[model.Intent]hypothesis{
	model.IntentListAssignments: {
		text: "This message asks to list or show assignments.",
		cues: []inference.Cue{
			cue("list", 0.6), cue("show", 0.35), cue("assignments", 0.4), cue("homework", 0.35),
			cue("what do i have", 0.5), cue("all my", 0.3), cue("what s left", 0.45), cue("overdue", 0.4),
			cue("pending", 0.35), cue("to do", 0.3), cue("show me", 0.2),
		},
	},
	model.IntentDueDateQuery: {
		text: "This message asks when something is due.",
		cues: []inference.Cue{
			cue("due", 0.55), cue("what s due", 0.5), cue("deadline", 0.6), cue("deadlines", 0.6),
			cue("when is", 0.4), cue("when s", 0.35), cue("due date", 0.5), cue("what about", 0.35),
			cue("how about", 0.35),
		},
	},
	model.IntentWorkloadAnalysis: {
		text: "This message is about how much work is coming up.",
		cues: []inference.Cue{
			cue("workload", 0.8), cue("busy", 0.6), cue("how much work", 0.7), cue("too much", 0.4),
			cue("overloaded", 0.6), cue("work load", 0.8), cue("how heavy", 0.6),
		},
	},
	model.IntentPriorityBreakdown: {
		text: "This message asks for assignments broken down by priority.",
		cues: []inference.Cue{
			cue("priorities", 0.8), cue("show priorities", 0.9), cue("prioritize", 0.6), cue("priority", 0.35),
			cue("most important", 0.5), cue("breakdown", 0.4),
		},
	},
	model.IntentScheduleSuggestion: {
		text: "This message asks for a suggested study schedule.",
		cues: []inference.Cue{
			cue("schedule", 0.7), cue("check schedule", 0.9), cue("plan", 0.5), cue("study plan", 0.7),
			cue("what should i work on", 0.7), cue("what should i do", 0.4), cue("focus on", 0.4),
			cue("work on first", 0.6),
		},
	},
	model.IntentStudyTip: {
		text: "This message asks for study tips or advice.",
		cues: []inference.Cue{
			cue("tip", 0.7), cue("tips", 0.7), cue("advice", 0.6), cue("how should i study", 0.7),
			cue("study", 0.3), cue("help me study", 0.6), cue("how do i study", 0.7), cue("suggestions", 0.4),
		},
	},
	model.IntentAddAssignment: {
		text: "This message asks to add a new assignment.",
		cues: []inference.Cue{
			cue("add", 0.7), cue("new assignment", 0.6), cue("create", 0.5), cue("remind me", 0.4),
			cue("i have a new", 0.5), cue("put", 0.2),
		},
	},
	model.IntentMarkComplete: {
		text: "This message says an assignment is finished.",
		cues: []inference.Cue{
			cue("mark", 0.4), cue("done", 0.5), cue("finished", 0.6), cue("complete", 0.5),
			cue("completed", 0.5), cue("submitted", 0.5), cue("turned in", 0.5), cue("check off", 0.6),
		},
	},
	model.IntentHelp: {
		text: "This message asks what the assistant can do.",
		cues: []inference.Cue{
			cue("help", 0.6), cue("what can you do", 0.8), cue("commands", 0.6), cue("how do i use", 0.6),
			cue("options", 0.4),
		},
	},
	model.IntentSmallTalk: {
		text: "This message is a greeting, thanks or farewell.",
		cues: []inference.Cue{
			cue("hello", 0.8), cue("hi", 0.7), cue("hey", 0.7), cue("thanks", 0.8), cue("thank you", 0.8),
			cue("bye", 0.8), cue("goodbye", 0.8), cue("good morning", 0.8), cue("good night", 0.8),
			cue("how are you", 0.7),
		},
	},
	model.IntentBotStatus: {
		text: "This message asks about the assistant's own status.",
		cues: []inference.Cue{
			cue("bot status", 0.9), cue("status", 0.6), cue("are you working", 0.8), cue("are you there", 0.6),
			cue("are you online", 0.7),
		},
	},
}

// Hypothesis returns the scoring hypothesis of i. Unknown has none.
func Hypothesis(i model.Intent) (inference.Hypothesis, bool) {
	s, ok := hypotheses[i]
	if !ok {
		return inference.Hypothesis{}, false
	}
	return inference.Hypothesis{Label: string(i), Text: s.text, Cues: s.cues}, true
}
