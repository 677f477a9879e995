package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// FallbackCheckinHour is used when an empty schedule still needs an instant
const FallbackCheckinHour = 9

// DefaultCheckinHours is the recommended three-visit schedule
var DefaultCheckinHours = []int{9, 15, 21}

// Schedule is a sorted set of unique check-in hours (0-23)
type Schedule []int

// NewSchedule validates and sorts the given hours
func NewSchedule(hours ...int) (Schedule, error) {
	seen := make(map[int]bool, len(hours))
	out := make(Schedule, 0, len(hours))
	for _, h := range hours {
		if h < 0 || h > 23 {
			return nil, fmt.Errorf("%w: hour %d out of range", ErrInvalidSchedule, h)
		}
		if seen[h] {
			return nil, fmt.Errorf("%w: duplicate hour %d", ErrInvalidSchedule, h)
		}
		seen[h] = true
		out = append(out, h)
	}
	sort.Ints(out)
	return out, nil
}

// ParseSchedule parses a comma separated hour list such as "9,15,21"
func ParseSchedule(s string) (Schedule, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Schedule{}, nil
	}
	var hours []int
	for _, part := range strings.Split(s, ",") {
		h, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an hour", ErrInvalidSchedule, part)
		}
		hours = append(hours, h)
	}
	return NewSchedule(hours...)
}

// String renders the schedule as "09:00, 15:00, 21:00"
func (s Schedule) String() string {
	parts := make([]string, len(s))
	for i, h := range s {
		parts[i] = fmt.Sprintf("%02d:00", h)
	}
	return strings.Join(parts, ", ")
}

// sorted returns the hours in ascending order without modifying s
func (s Schedule) sorted() []int {
	out := make([]int, len(s))
	copy(out, s)
	sort.Ints(out)
	return out
}

// Instants returns every check-in instant on the days now+from .. now+to
// (calendar days in now's location), in ascending order.
func (s Schedule) Instants(now time.Time, from, to int) []time.Time {
	hours := s.sorted()
	y, m, d := now.Date()
	out := make([]time.Time, 0, len(hours)*(to-from+1))
	for offset := from; offset <= to; offset++ {
		for _, h := range hours {
			out = append(out, time.Date(y, m, d+offset, h, 0, 0, 0, now.Location()))
		}
	}
	return out
}

// Next returns the first check-in strictly after now, looking from yesterday
// through tomorrow. The boolean is false for an empty schedule.
func (s Schedule) Next(now time.Time) (time.Time, bool) {
	for _, t := range s.Instants(now, -1, 1) {
		if t.After(now) {
			return t, true
		}
	}
	return time.Time{}, false
}

// Previous returns the last check-in strictly before now, looking from yesterday
// through tomorrow.
func (s Schedule) Previous(now time.Time) (time.Time, bool) {
	instants := s.Instants(now, -1, 1)
	for i := len(instants) - 1; i >= 0; i-- {
		if instants[i].Before(now) {
			return instants[i], true
		}
	}
	return time.Time{}, false
}

// FallbackInstant is the safe "next check-in" used for a degenerate schedule:
// two days after now at the first configured hour (or FallbackCheckinHour).
func (s Schedule) FallbackInstant(now time.Time) time.Time {
	hour := FallbackCheckinHour
	if len(s) > 0 {
		hour = s.sorted()[0]
	}
	y, m, d := now.Date()
	return time.Date(y, m, d+2, hour, 0, 0, 0, now.Location())
}
