package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to the start of the day it names.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	r, err := p.ParseRange(relative, baseTime)
	if err != nil {
		return baseTime, err
	}
	return r.Start, nil
}

// ParseRange resolves a whole expression such as "next week" or "in 3 days"
// to an inclusive day-aligned range.
func (p *Parser) ParseRange(expr string, baseTime time.Time) (Range, error) {
	expr = normalize(expr)
	today := p.StartOfDay(baseTime)

	for _, r := range rules {
		m := r.exact.FindStringSubmatch(expr)
		if m == nil {
			continue
		}
		if rng, ok := r.resolve(p, m, today); ok {
			return rng, nil
		}
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidDate, expr)
	}

	return Range{}, fmt.Errorf("%w: %q", ErrUnrecognized, expr)
}

// FindRange scans free text for the first recognizable date expression.
// Rules are tried from most to least specific; expressions that name an
// impossible date are skipped.
func (p *Parser) FindRange(text string, baseTime time.Time) (Match, bool) {
	text = normalize(text)
	today := p.StartOfDay(baseTime)

	var rejected []string
	for _, r := range rules {
		for _, m := range r.find.FindAllStringSubmatch(text, -1) {
			if rng, ok := r.resolve(p, m, today); ok {
				return Match{Range: rng, Expr: m[0], Rule: r.name, Rejected: rejected}, true
			}
			rejected = append(rejected, strings.TrimSpace(m[0]))
		}
	}
	return Match{Rejected: rejected}, false
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// WeekBounds returns Monday and Sunday of the week containing t.
func (p *Parser) WeekBounds(t time.Time) (time.Time, time.Time) {
	today := p.StartOfDay(t)
	offset := (int(today.Weekday()) + 6) % 7
	monday := p.addDays(today, -offset)
	return monday, p.addDays(monday, 6)
}

func (p *Parser) addDays(day time.Time, n int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day()+n, 0, 0, 0, 0, p.location)
}

func (p *Parser) day(start time.Time) Range {
	return Range{Start: start, End: p.EndOfDay(start)}
}

func (p *Parser) span(first, last time.Time) Range {
	return Range{Start: first, End: p.EndOfDay(last)}
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}
