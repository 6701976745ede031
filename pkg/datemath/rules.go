package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type rule struct {
	name    string
	pattern string
	resolve func(p *Parser, m []string, today time.Time) (Range, bool)

	exact *regexp.Regexp
	find  *regexp.Regexp
}

const weekdayPattern = `(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// rules is ordered from most to least specific.
var rules = compile([]rule{
	{
		name:    RuleISODate,
		pattern: `(\d{4})-(\d{1,2})-(\d{1,2})`,
		resolve: func(p *Parser, m []string, _ time.Time) (Range, bool) {
			y, _ := strconv.Atoi(m[1])
			mo, _ := strconv.Atoi(m[2])
			d, _ := strconv.Atoi(m[3])
			return p.calendarDay(y, mo, d)
		},
	},
	{
		name:    RuleMonthDay,
		pattern: `(\d{1,2})/(\d{1,2})`,
		resolve: func(p *Parser, m []string, today time.Time) (Range, bool) {
			mo, _ := strconv.Atoi(m[1])
			d, _ := strconv.Atoi(m[2])
			return p.calendarDay(today.Year(), mo, d)
		},
	},
	{
		name:    RuleWithinDays,
		pattern: `(?:within|in the next|next|over the next) (\d+) days?`,
		resolve: func(p *Parser, m []string, today time.Time) (Range, bool) {
			n, err := strconv.Atoi(m[1])
			if err != nil || n < 0 {
				return Range{}, false
			}
			return p.span(today, p.addDays(today, n)), true
		},
	},
	{
		name:    RuleInDuration,
		pattern: `in (\d+) (day|days|week|weeks|month|months)`,
		resolve: func(p *Parser, m []string, today time.Time) (Range, bool) {
			amount, err := strconv.Atoi(m[1])
			if err != nil {
				return Range{}, false
			}
			switch {
			case strings.HasPrefix(m[2], "day"):
				return p.day(p.addDays(today, amount)), true
			case strings.HasPrefix(m[2], "week"):
				return p.day(p.addDays(today, amount*7)), true
			default:
				return p.day(time.Date(today.Year(), today.Month()+time.Month(amount), today.Day(), 0, 0, 0, 0, p.location)), true
			}
		},
	},
	{
		name:    RuleNextWeek,
		pattern: `next week`,
		resolve: func(p *Parser, _ []string, today time.Time) (Range, bool) {
			monday, _ := p.WeekBounds(today)
			return p.span(p.addDays(monday, 7), p.addDays(monday, 13)), true
		},
	},
	{
		name:    RuleThisWeek,
		pattern: `(?:this|the) week`,
		// The days of the week already gone are left out.
		resolve: func(p *Parser, _ []string, today time.Time) (Range, bool) {
			_, sunday := p.WeekBounds(today)
			return p.span(today, sunday), true
		},
	},
	{
		name:    RuleWeekend,
		pattern: `(?:this |the )?weekend`,
		resolve: func(p *Parser, _ []string, today time.Time) (Range, bool) {
			if today.Weekday() == time.Sunday {
				return p.day(today), true
			}
			sat := p.addDays(today, (int(time.Saturday)-int(today.Weekday())+7)%7)
			return p.span(sat, p.addDays(sat, 1)), true
		},
	},
	{
		name:    RuleNextWeekday,
		pattern: `next ` + weekdayPattern,
		resolve: func(p *Parser, m []string, today time.Time) (Range, bool) {
			daysUntil := int(weekdays[m[1]] - today.Weekday())
			if daysUntil <= 0 {
				daysUntil += 7
			}
			return p.day(p.addDays(today, daysUntil)), true
		},
	},
	{
		name:    RuleWeekday,
		pattern: `(?:on |this |by )?` + weekdayPattern,
		resolve: func(p *Parser, m []string, today time.Time) (Range, bool) {
			daysUntil := (int(weekdays[m[1]]-today.Weekday()) + 7) % 7
			return p.day(p.addDays(today, daysUntil)), true
		},
	},
	{
		name:    RuleToday,
		pattern: `(?:today|tonight)`,
		resolve: func(p *Parser, _ []string, today time.Time) (Range, bool) {
			return p.day(today), true
		},
	},
	{
		name:    RuleTomorrow,
		pattern: `(?:tomorrow|tmrw)`,
		resolve: func(p *Parser, _ []string, today time.Time) (Range, bool) {
			return p.day(p.addDays(today, 1)), true
		},
	},
	{
		name:    RuleYesterday,
		pattern: `yesterday`,
		resolve: func(p *Parser, _ []string, today time.Time) (Range, bool) {
			return p.day(p.addDays(today, -1)), true
		},
	},
})

func compile(rs []rule) []rule {
	for i := range rs {
		rs[i].exact = regexp.MustCompile(`^(?:` + rs[i].pattern + `)$`)
		rs[i].find = regexp.MustCompile(`\b(?:` + rs[i].pattern + `)\b`)
	}
	return rs
}

// calendarDay rejects dates that time.Date would normalize, e.g. 2/30.
func (p *Parser) calendarDay(year, month, day int) (Range, bool) {
	if month < 1 || month > 12 || day < 1 {
		return Range{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
	if t.Day() != day || int(t.Month()) != month {
		return Range{}, false
	}
	return p.day(t), true
}
