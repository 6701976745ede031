package entity

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"homework-assistant/internal/model"
)

// matchClass resolves a class label in three passes: the whole label as a
// phrase, one significant word of a multi-word label, then a fuzzy prefix
// match that must start at the first letter and allows one gap.
func matchClass(words []string, classes []string) (string, bool) {
	if len(classes) == 0 || len(words) == 0 {
		return "", false
	}
	text := " " + strings.Join(words, " ") + " "

	best, bestLen := "", 0
	for _, c := range classes {
		n := strings.Join(tokens(c), " ")
		if n != "" && strings.Contains(text, " "+n+" ") && len(n) > bestLen {
			best, bestLen = c, len(n)
		}
	}
	if best != "" {
		return best, true
	}

	wordSet := make(map[string]bool, len(words))
	for _, w := range words {
		wordSet[w] = true
	}
	for _, c := range classes {
		for _, t := range tokens(c) {
			if len(t) >= fuzzyMinLength && !stopwords[t] && wordSet[t] {
				return c, true
			}
		}
	}

	lowered := make([]string, len(classes))
	for i, c := range classes {
		lowered[i] = strings.ToLower(c)
	}
	var (
		found     bool
		bestScore int
	)
	for _, w := range words {
		if len(w) < fuzzyMinLength || stopwords[w] || isDateWord(w) {
			continue
		}
		for _, m := range fuzzy.Find(w, lowered) {
			if !acceptFuzzy(m) {
				continue
			}
			if !found || m.Score > bestScore {
				found, bestScore, best = true, m.Score, classes[m.Index]
			}
		}
	}
	return best, found
}

func acceptFuzzy(m fuzzy.Match) bool {
	if len(m.MatchedIndexes) == 0 || m.MatchedIndexes[0] != 0 {
		return false
	}
	gaps := 0
	for i := 1; i < len(m.MatchedIndexes); i++ {
		if m.MatchedIndexes[i] != m.MatchedIndexes[i-1]+1 {
			gaps++
		}
	}
	return gaps <= 1
}

// minNameCoverage is the share of an assignment name's significant words
// the utterance must contain.
const minNameCoverage = 0.5

// matchAssignments finds the assignments whose names the utterance refers
// to. One id means a unique best match; several mean a tie.
func matchAssignments(words []string, className string, assignments []model.Assignment) ([]string, string) {
	wordSet := make(map[string]bool, len(words))
	for _, w := range words {
		wordSet[w] = true
	}
	class := strings.Join(tokens(className), " ")

	var (
		ids       []string
		name      string
		bestScore float64
	)
	for _, a := range assignments {
		var significant []string
		for _, t := range tokens(a.Name) {
			if !stopwords[t] && t != class {
				significant = append(significant, t)
			}
		}
		if len(significant) == 0 {
			continue
		}

		hits, wordHit := 0, false
		for _, t := range significant {
			if wordSet[t] {
				hits++
				if !isNumber(t) {
					wordHit = true
				}
			}
		}
		if !wordHit {
			continue
		}
		score := float64(hits) / float64(len(significant))
		switch {
		case score < minNameCoverage:
		case score > bestScore:
			bestScore, ids, name = score, []string{a.ID}, a.Name
		case score == bestScore:
			ids = append(ids, a.ID)
		}
	}

	if len(ids) > 1 && className != "" {
		var inClass []string
		for _, id := range ids {
			for _, a := range assignments {
				if a.ID == id && strings.EqualFold(a.ClassName, className) {
					inClass = append(inClass, id)
				}
			}
		}
		if len(inClass) > 0 {
			ids = inClass
		}
	}
	if len(ids) == 1 {
		for _, a := range assignments {
			if a.ID == ids[0] {
				name = a.Name
			}
		}
		return ids, name
	}
	return ids, ""
}

func isNumber(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
