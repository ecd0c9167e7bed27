package model

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Weekday is one of the seven uppercase English weekday tags used on
// the wire and in storage ("MONDAY" ... "SUNDAY").
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

var weekdayOrder = map[Weekday]int{
	Monday:    0,
	Tuesday:   1,
	Wednesday: 2,
	Thursday:  3,
	Friday:    4,
	Saturday:  5,
	Sunday:    6,
}

var timeWeekdays = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// WeekdayOf returns the weekday tag for a calendar date.
func WeekdayOf(t time.Time) Weekday {
	return timeWeekdays[t.Weekday()]
}

// ParseWeekday converts a wire tag into a Weekday. Input is matched
// case-insensitively so "monday" and "MONDAY" are the same day.
func ParseWeekday(s string) (Weekday, error) {
	w := Weekday(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := weekdayOrder[w]; !ok {
		return "", fmt.Errorf("invalid weekday %q", s)
	}
	return w, nil
}

// ParseWeekdays converts a list of wire tags into a deduplicated,
// Monday-first sorted day set. An empty result is an error: a habit
// scheduled on no day at all is never valid input.
func ParseWeekdays(tags []string) ([]Weekday, error) {
	seen := make(map[Weekday]struct{}, len(tags))
	days := make([]Weekday, 0, len(tags))
	for _, tag := range tags {
		w, err := ParseWeekday(tag)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		days = append(days, w)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("at least one weekday is required")
	}
	sort.Slice(days, func(i, j int) bool {
		return weekdayOrder[days[i]] < weekdayOrder[days[j]]
	})
	return days, nil
}

// FormatWeekdays renders a day set as the comma-separated storage form,
// e.g. "MONDAY,WEDNESDAY,FRIDAY".
func FormatWeekdays(days []Weekday) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = string(d)
	}
	return strings.Join(parts, ",")
}

// SplitWeekdays parses the comma-separated storage form back into a
// day set. Unknown tags are rejected.
func SplitWeekdays(s string) ([]Weekday, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty weekday list")
	}
	return ParseWeekdays(strings.Split(s, ","))
}
