package activity

import (
	"fmt"
	"strings"
	"time"
)

// Calendar fixes the day and week boundaries used for streaks and
// weekly goals.
type Calendar struct {
	Location  *time.Location
	WeekStart time.Weekday
}

// DefaultCalendar uses the process local zone and Sunday week starts.
func DefaultCalendar() Calendar {
	return Calendar{Location: time.Local, WeekStart: time.Sunday}
}

// ParseWeekday parses a weekday name such as "sunday" or "Mon".
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || (len(s) == 3 && strings.HasPrefix(name, s)) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// Day returns the calendar day number of t, counted in whole civil days.
// Two timestamps on the same local date share a day number, and adjacent
// dates differ by exactly one regardless of DST shifts.
func (c Calendar) Day(t time.Time) int {
	y, m, d := t.In(c.location()).Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// WeekStartDay returns the day number of the first day of the week that
// contains now.
func (c Calendar) WeekStartDay(now time.Time) int {
	offset := (int(now.In(c.location()).Weekday()) - int(c.WeekStart) + 7) % 7
	return c.Day(now) - offset
}

// WeekStartTime returns local midnight at the start of the current week.
func (c Calendar) WeekStartTime(now time.Time) time.Time {
	local := now.In(c.location())
	offset := (int(local.Weekday()) - int(c.WeekStart) + 7) % 7
	y, m, d := local.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, c.location())
}
