package entity

import "regexp"

// titleEnd stops an unquoted title at the first slot keyword.
const titleEnd = `(?:\s+(?:for|due|by|on|in|with|at|tomorrow|today|tonight|next|this|(?:mon|tues|wednes|thurs|fri|satur|sun)day)\b|[.?!,]|$)`

var (
	quotedTitle = regexp.MustCompile(`(?:^|\s)["“']([^"”']{2,80})["”'](?:\s|[.?!,]|$)`)
	namedTitle  = regexp.MustCompile(`(?i)\b(?:called|named|titled)\s+(.+?)` + titleEnd)
	addTitle    = regexp.MustCompile(`(?i)^\s*(?:please\s+)?(?:add|create|new)(?:\s+(?:a|an|the))?(?:\s+new)?(?:\s+(?:assignment|homework|task))?\s+(.+?)` + titleEnd)

	assignmentID = regexp.MustCompile(`(?i)\b(a\d+)\b`)

	highPriority   = regexp.MustCompile(`\b(?:(?:high|top|urgent|important)[- ]priority|priority (?:is )?high|urgent|asap)\b`)
	mediumPriority = regexp.MustCompile(`\b(?:(?:medium|normal|mid)[- ]priority|priority (?:is )?(?:medium|normal))\b`)
	lowPriority    = regexp.MustCompile(`\b(?:low[- ]priority|priority (?:is )?low|not urgent)\b`)

	difficultyExact = regexp.MustCompile(`\bdifficulty (?:of |is |level )?(\d{1,2})\b`)
	difficultyMin   = regexp.MustCompile(`\bdifficulty (?:above|over|at least|more than) (\d{1,2})\b`)
	difficultyMax   = regexp.MustCompile(`\bdifficulty (?:below|under|at most|less than) (\d{1,2})\b`)
	hardWords       = regexp.MustCompile(`\b(?:hard|harder|hardest|difficult|challenging|tough)\b`)
	easyWords       = regexp.MustCompile(`\b(?:easy|easier|easiest|simple)\b`)

	newClass = regexp.MustCompile(`(?i)\bfor\s+([a-z][a-z0-9&+-]*)`)

	anaphora = regexp.MustCompile(`\b(?:it|that|that one|this one|the same one|the last one|that assignment|this assignment)\b`)
	overdue  = regexp.MustCompile(`\b(?:overdue|late|past due|missed)\b`)
)

const (
	hardMinDifficulty = 8
	easyMaxDifficulty = 3
	fuzzyMinLength    = 3
)

// stopwords never count as a class or name fragment.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "my": true, "me": true, "i": true, "is": true, "are": true,
	"for": true, "due": true, "what": true, "when": true, "which": true, "show": true, "list": true,
	"all": true, "any": true, "do": true, "have": true, "has": true, "of": true, "to": true, "in": true,
	"on": true, "by": true, "and": true, "or": true, "it": true, "that": true, "this": true, "one": true,
	"homework": true, "assignment": true, "assignments": true, "task": true, "tasks": true, "mark": true,
	"done": true, "add": true, "new": true, "please": true, "s": true, "about": true, "how": true,
	"next": true, "week": true, "today": true, "tomorrow": true, "tonight": true, "now": true,
	"with": true, "work": true, "be": true, "can": true, "you": true, "there": true, "them": true,
	"his": true, "her": true, "our": true, "get": true, "got": true, "was": true, "had": true,
	"did": true, "not": true, "but": true, "let": true, "see": true, "out": true,
	"off": true, "too": true, "why": true, "who": true, "yes": true, "left": true, "still": true,
}
