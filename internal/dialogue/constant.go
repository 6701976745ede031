package dialogue

import (
	"time"

	"homework-assistant/internal/analysis"
	"homework-assistant/internal/model"
)

// Log prefixes
const (
	LogPrefixProcessTurn = "internal.dialogue.ProcessTurn"
	LogPrefixInfer       = "internal.dialogue.infer"
	LogPrefixFuse        = "internal.dialogue.fuse"
	LogPrefixExecute     = "internal.dialogue.execute"
	LogPrefixRemember    = "internal.dialogue.remember"
)

// Defaults
const (
	DefaultMinConfidence     = 0.5
	DefaultSuggestConfidence = 0.3
	DefaultEmotionThreshold  = 0.5
	DefaultInferenceTimeout  = 2 * time.Second
	DefaultHorizonDays       = analysis.DefaultHorizonDays
)

// Clarifications
const (
	MsgFallback         = "I'm not sure how to respond to that. Could you try rephrasing, or type 'help' for a list of commands?"
	MsgSuggest          = "I think you might be asking about '%s', but I'm not entirely sure. Could you try rephrasing or type 'help'?"
	MsgEmptyInput       = "Please type a message and I'll do my best to help."
	MsgAskWhichComplete = "Which assignment should I mark as done? Tell me its id (like A3) or part of its name."
	MsgAskWhichDue      = "Which assignment do you mean? Tell me its id (like A3) or part of its name."
	MsgAmbiguous        = "I found more than one match: %s. Which one do you mean?"
	MsgAddMissing       = "To add an assignment I still need %s. For example: add 'Essay draft' for English due Friday."
)

// Results
const (
	MsgHelp = "I can help you with the following:\n" +
		"- list assignments: e.g. \"show my math homework\"\n" +
		"- due dates: e.g. \"what's due tomorrow?\"\n" +
		"- workload: e.g. \"how busy am I this week?\"\n" +
		"- show priorities: to see a breakdown by priority\n" +
		"- check schedule: for a suggested study plan\n" +
		"- get study tips: for workload assessment and general advice\n" +
		"- add assignment: e.g. \"add 'Essay draft' for English due Friday\"\n" +
		"- mark complete: e.g. \"mark A3 done\" or \"mark it done\"\n" +
		"- bot status: to check my system status\n\n" +
		"You can also use the buttons and tabs in the application for detailed actions!"
	MsgGreeting        = "Hello! How can I help you today?"
	MsgFarewell        = "Goodbye! Have a great day!"
	MsgThanks          = "You're welcome!"
	MsgStatusLoaded    = "I am functioning. My NLU and emotion models are loaded."
	MsgStatusDegraded  = "I am functioning. My NLU and emotion models are not fully loaded."
	MsgStatusProviders = " Scoring with: %s."

	MsgNoAssignments = "You have no assignments. Well done!"
	MsgNoMatches     = "I couldn't find any assignments matching that."
	MsgListHeader    = "Here are your current assignments%s:"
	MsgDueHeader     = "Due %s:"
	MsgNothingDue    = "Nothing is due %s."
	MsgDueOne        = "%s (%s, %s) is due %s."
	MsgDueOverdue    = "%s (%s, %s) was due %s and is overdue."
	MsgDueCompleted  = " It's already complete."

	MsgNoActive           = "You have no active assignments! Great job. Enjoy your free time!"
	MsgNoPriorities       = "No active assignments to prioritize!"
	MsgScheduleClear      = "Your schedule looks clear! No upcoming assignments."
	MsgManageable         = "Your workload seems manageable right now."
	MsgWorkloadAssessment = "Workload Assessment:\n"
	MsgGeneralTip         = "General Tip: "
	MsgTipsFor            = "Study tips for %s (%s):"

	MsgAdded           = "Added %s: %s (%s), due %s, %s priority, difficulty %d/%d."
	MsgMarkedComplete  = "Nice work! I marked %s (%s) as complete."
	MsgAlreadyComplete = "%s (%s) is already marked complete."
	MsgNotFound        = "I couldn't find assignment %s."
	MsgInvalid         = "I couldn't do that: %v."
	MsgStoreFailed     = "Sorry, I couldn't read your assignments right now. Please try again."
)

// Notices
const (
	MsgPersistNotice = "Note: this change is saved for now but could not be written to disk yet. I'll retry with the next change."
	MsgHistoryNotice = "Note: this conversation could not be saved to disk yet."
)

const dueLayout = "Mon Jan 2 15:04"

// tones prefixes a response when the user's emotion is clear enough.
var tones = map[model.Emotion]string{
	model.EmotionJoy:         "That's great to hear! ",
	model.EmotionSadness:     "I'm sorry to hear that. ",
	model.EmotionFrustration: "I understand you might be frustrated. ",
	model.EmotionAnxiety:     "No need to worry, I'm here to help. ",
	model.EmotionSurprise:    "Oh, really? ",
}

// intentLabels is how an intent is named back to the user.
var intentLabels = map[model.Intent]string{
	model.IntentListAssignments:    "list assignments",
	model.IntentDueDateQuery:       "due dates",
	model.IntentWorkloadAnalysis:   "workload",
	model.IntentPriorityBreakdown:  "show priorities",
	model.IntentScheduleSuggestion: "check schedule",
	model.IntentStudyTip:           "get study tips",
	model.IntentAddAssignment:      "add assignment",
	model.IntentMarkComplete:       "mark complete",
	model.IntentHelp:               "ask for help",
	model.IntentSmallTalk:          "small talk",
	model.IntentBotStatus:          "bot status",
}
