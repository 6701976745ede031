package datemath

import (
	"errors"
	"time"
)

var (
	ErrUnrecognized = errors.New("unrecognized date expression")
	ErrInvalidDate  = errors.New("invalid calendar date")
)

// Rule names reported in Match.Rule.
const (
	RuleISODate     = "iso_date"
	RuleMonthDay    = "month_day"
	RuleWithinDays  = "within_days"
	RuleInDuration  = "in_duration"
	RuleNextWeek    = "next_week"
	RuleThisWeek    = "this_week"
	RuleWeekend     = "weekend"
	RuleNextWeekday = "next_weekday"
	RuleWeekday     = "weekday"
	RuleToday       = "today"
	RuleTomorrow    = "tomorrow"
	RuleYesterday   = "yesterday"
)

// Range is an inclusive, day-aligned interval.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the range, bounds included.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// IsZero reports whether the range is unset.
func (r Range) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// SingleDay reports whether the range covers exactly one calendar day.
func (r Range) SingleDay() bool {
	return r.End.Sub(r.Start) < 24*time.Hour
}

// Match is a date expression found inside free text.
type Match struct {
	Range Range
	Expr  string
	Rule  string
	// Rejected holds expressions a rule recognized but could not resolve,
	// such as "2/30". It is filled whether or not a match was found.
	Rejected []string
}
