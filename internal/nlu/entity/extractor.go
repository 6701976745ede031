package entity

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"homework-assistant/internal/model"
	"homework-assistant/pkg/datemath"
	"homework-assistant/pkg/inference"
	pkgLog "homework-assistant/pkg/log"
)

// Known is what the store knows about, used to resolve references.
type Known struct {
	Classes     []string
	Assignments []model.Assignment
}

// Extractor pulls slots out of an utterance. It is pure: the same input
// always yields the same slots.
type Extractor struct {
	l      pkgLog.Logger
	parser *datemath.Parser
}

func NewExtractor(l pkgLog.Logger, parser *datemath.Parser) *Extractor {
	return &Extractor{l: l, parser: parser}
}

// Extract fills every slot it can find. Date expressions that cannot be
// resolved are dropped and logged at debug level.
func (e *Extractor) Extract(ctx context.Context, utterance string, known Known, today time.Time) model.Entities {
	var ents model.Entities

	rest := utterance
	if title, span := findTitle(utterance); title != "" {
		ents.Title = title
		rest = utterance[:span[0]] + " " + utterance[span[1]:]
	}
	lower := " " + strings.Join(strings.Fields(strings.ToLower(rest)), " ") + " "

	m, ok := e.parser.FindRange(rest, today)
	if ok {
		ents.DateRange = &model.DateRange{Start: m.Range.Start, End: m.Range.End}
		ents.DateExpr = m.Expr
		lower = strings.Replace(lower, m.Expr, " ", 1)
	}
	if len(m.Rejected) > 0 {
		e.l.Debugf(ctx, "internal.nlu.entity.Extract: dropped unresolvable date %q", m.Rejected)
	}

	if m := assignmentID.FindStringSubmatch(lower); m != nil {
		ents.AssignmentID = strings.ToUpper(m[1])
	}

	ents.Priority = findPriority(lower)
	ents.DifficultyMin, ents.DifficultyMax = findDifficulty(lower)
	ents.Overdue = overdue.MatchString(lower)
	ents.Anaphora = anaphora.MatchString(lower)

	words := tokens(lower)
	if class, ok := matchClass(words, known.Classes); ok {
		ents.ClassName = class
	} else if m := newClass.FindStringSubmatch(rest); m != nil && !stopwords[strings.ToLower(m[1])] && !isDateWord(m[1]) {
		ents.ClassName = capitalize(m[1])
		ents.NewClass = true
	}

	if ents.AssignmentID == "" {
		ids, name := matchAssignments(words, ents.ClassName, known.Assignments)
		switch len(ids) {
		case 0:
		case 1:
			ents.AssignmentID = ids[0]
			ents.AssignmentName = name
		default:
			ents.Candidates = ids
		}
	} else {
		for _, a := range known.Assignments {
			if strings.EqualFold(a.ID, ents.AssignmentID) {
				ents.AssignmentName = a.Name
				break
			}
		}
	}

	return ents
}

func findTitle(s string) (string, []int) {
	for _, re := range []*regexp.Regexp{quotedTitle, namedTitle, addTitle} {
		if loc := re.FindStringSubmatchIndex(s); loc != nil {
			title := strings.TrimSpace(s[loc[2]:loc[3]])
			if title == "" || isPlaceholderTitle(title) {
				continue
			}
			return title, []int{loc[2], loc[3]}
		}
	}
	return "", nil
}

func isPlaceholderTitle(t string) bool {
	for _, w := range strings.Fields(strings.ToLower(t)) {
		if !stopwords[w] {
			return false
		}
	}
	return true
}

func findPriority(lower string) model.Priority {
	switch {
	case lowPriority.MatchString(lower):
		return model.PriorityLow
	case mediumPriority.MatchString(lower):
		return model.PriorityMedium
	case highPriority.MatchString(lower):
		return model.PriorityHigh
	}
	return ""
}

func findDifficulty(lower string) (int, int) {
	if m := difficultyExact.FindStringSubmatch(lower); m != nil {
		n := clampDifficulty(m[1])
		return n, n
	}
	lo, hi := 0, 0
	if m := difficultyMin.FindStringSubmatch(lower); m != nil {
		lo = clampDifficulty(m[1])
	}
	if m := difficultyMax.FindStringSubmatch(lower); m != nil {
		hi = clampDifficulty(m[1])
	}
	if lo != 0 || hi != 0 {
		return lo, hi
	}
	switch {
	case hardWords.MatchString(lower):
		return hardMinDifficulty, 0
	case easyWords.MatchString(lower):
		return 0, easyMaxDifficulty
	}
	return 0, 0
}

func clampDifficulty(s string) int {
	n, _ := strconv.Atoi(s)
	if n < model.MinDifficulty {
		return model.MinDifficulty
	}
	if n > model.MaxDifficulty {
		return model.MaxDifficulty
	}
	return n
}

func tokens(s string) []string {
	return strings.Fields(inference.Normalize(s))
}

func isDateWord(w string) bool {
	switch strings.ToLower(w) {
	case "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
		"mon", "tue", "tues", "wed", "thu", "thur", "thurs", "fri", "sat", "sun",
		"tomorrow", "today", "tonight", "next", "this", "weekend", "week":
		return true
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
