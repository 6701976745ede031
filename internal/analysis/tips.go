package analysis

import (
	"hash/fnv"
	"strings"
	"time"

	"homework-assistant/internal/model"
)

const generalTipsPerAnswer = 3

var generalTips = []string{
	"Break down large assignments into smaller, manageable tasks.",
	"Create a study schedule and stick to it.",
	"Minimize distractions: find a quiet study space and turn off notifications.",
	"Take regular short breaks (e.g., 5-10 minutes every hour) to stay fresh.",
	"Review your notes regularly, not just before an exam.",
	"Practice active recall: try to retrieve information without looking at your notes.",
	"Teach the material to someone else to solidify your understanding.",
	"Get enough sleep; it's crucial for memory consolidation.",
	"Stay hydrated and eat nutritious food to keep your brain powered.",
	"Don't be afraid to ask for help from teachers or classmates if you're stuck.",
}

// classTips is keyed by lower-cased class name.
var classTips = map[string][]string{
	"math": {
		"Practice problems regularly. Understanding concepts is key, but practice builds speed and accuracy.",
		"Don't just memorize formulas; understand how they are derived and when to use them.",
		"Draw diagrams or visualize problems to help understand them better.",
		"Check your answers, and if you made a mistake, try to understand why.",
	},
	"science": {
		"Understand the scientific method and how it applies to different topics.",
		"Relate concepts to real-world examples.",
		"For lab work, understand the procedures and safety precautions thoroughly before starting.",
		"Use flashcards for terminology and diagrams for processes.",
	},
	"history": {
		"Create timelines to understand the sequence of events.",
		"Focus on cause and effect relationships rather than just memorizing dates.",
		"Read primary sources when possible to get a deeper understanding.",
		"Try to explain historical events in your own words.",
	},
	"english": {
		"Read widely, both assigned texts and for pleasure, to improve vocabulary and comprehension.",
		"When writing essays, create an outline first to organize your thoughts.",
		"Pay attention to grammar, punctuation, and style.",
		"Practice summarizing texts and identifying main arguments.",
	},
	"programming": {
		"Break down complex problems into smaller, solvable parts.",
		"Write pseudocode before writing actual code.",
		"Test your code frequently as you write it.",
		"Don't be afraid to look up documentation or ask for help on forums (but try to solve it yourself first).",
		"Version control (like Git) is your friend, even for small projects.",
	},
}

// GeneralTip picks one general tip. The same seed always yields the same tip.
func GeneralTip(seed string) string {
	return generalTips[pick(seed, len(generalTips))]
}

// StudyTips returns tips for current in the light of the whole workload.
// The result is deterministic for the same inputs and free of duplicates.
func StudyTips(all []model.Assignment, current model.Assignment, now time.Time) []string {
	var tips []string

	switch {
	case current.Difficulty > 7:
		tips = append(tips,
			"Break this challenging assignment into smaller, manageable tasks.",
			"Schedule dedicated study blocks with breaks for this assignment.",
			"Consider using the Pomodoro Technique (e.g., 25min work / 5min break).",
		)
	case current.Difficulty > 0 && current.Difficulty < 4:
		tips = append(tips, "This seems like a lighter task. Plan to complete it efficiently!")
	}

	start := pick(current.ID+current.Name, len(generalTips))
	for i := 0; i < generalTipsPerAnswer; i++ {
		tips = append(tips, generalTips[(start+i)%len(generalTips)])
	}

	tips = append(tips, classTips[strings.ToLower(strings.TrimSpace(current.ClassName))]...)

	var dueThisWeek int
	for _, a := range all {
		if d := a.DaysUntilDue(now); !a.Completed && d >= 0 && d <= 7 {
			dueThisWeek++
		}
	}
	if dueThisWeek >= 3 {
		tips = append(tips,
			"📅 You have multiple assignments due soon. Create a detailed weekly study schedule.",
			"⏰ Use time blocking techniques to allocate specific time slots for each assignment.",
			"📊 Prioritize your tasks based on due dates, difficulty, and weight.",
		)
	}

	if current.Priority == model.PriorityHigh {
		tips = append(tips,
			"❗ This is a high-priority assignment. Consider starting it before others.",
			"📋 Set specific, achievable daily goals for this assignment.",
			"⚡ Minimize distractions during your dedicated work sessions for this task.",
		)
	}

	if !current.DueDate.IsZero() && !current.Completed {
		switch d := current.DaysUntilDue(now); {
		case d <= 2:
			tips = append(tips,
				"⚠️ This assignment is due very soon! Focus on completing essential parts first.",
				"🕒 Set specific completion milestones for today and tomorrow.",
				"📱 Minimize all distractions and dedicate focused time for completion.",
			)
		case d <= 7:
			tips = append(tips,
				"📆 This assignment is due within a week. Create a daily progress plan.",
				"✅ Break the remaining work into manageable chunks for each day.",
				"📈 Track your progress daily to stay on schedule.",
			)
		}
	}

	return dedupe(tips)
}

func pick(seed string, n int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	return int(h.Sum32() % uint32(n))
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
