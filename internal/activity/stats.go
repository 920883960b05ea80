package activity

import (
	"math"
	"sort"
	"time"
)

// MinutesPerTopic is the study time credited per learning session when
// no total is stored.
const MinutesPerTopic = 15

// Stats are the dashboard figures derived from the activity log.
type Stats struct {
	TopicsStudied     int `json:"topicsStudied"`
	QuizzesCompleted  int `json:"quizzesCompleted"`
	Streak            int `json:"streak"`
	AverageScore      int `json:"averageScore"`
	TotalStudyTime    int `json:"totalStudyTime"`
	WeeklyGoalPercent int `json:"weeklyGoal"`
}

// DeriveStats computes stats for now using the default calendar.
func DeriveStats(events []Event, snap Snapshot, now time.Time) Stats {
	return DefaultCalendar().DeriveStats(events, snap, now)
}

// DeriveStats combines the activity log with the stored snapshot. Set
// snapshot fields win over derived values except the weekly goal, which
// is always recomputed.
func (c Calendar) DeriveStats(events []Event, snap Snapshot, now time.Time) Stats {
	learned := CountType(events, TypeLearning)
	return Stats{
		TopicsStudied:     snap.TopicsStudied.Or(learned),
		QuizzesCompleted:  snap.QuizzesCompleted.OrElse(func() int { return CountType(events, TypeQuiz) }),
		Streak:            snap.Streak.OrElse(func() int { return c.Streak(events, now) }),
		AverageScore:      AverageScore(events),
		TotalStudyTime:    snap.TotalStudyTime.Or(learned * MinutesPerTopic),
		WeeklyGoalPercent: c.WeeklyGoalPercent(events, now),
	}
}

// AverageScore returns the rounded mean score of scored quiz events, or 0.
func AverageScore(events []Event) int {
	sum, n := 0, 0
	for _, e := range events {
		if e.Type != TypeQuiz || e.Score == nil {
			continue
		}
		sum += *e.Score
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

// Streak counts consecutive active days ending today or yesterday.
func (c Calendar) Streak(events []Event, now time.Time) int {
	days := c.distinctDays(events)
	if len(days) == 0 {
		return 0
	}
	sort.Sort(sort.Reverse(sort.IntSlice(days)))

	if c.Day(now)-days[0] > 1 {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if days[i-1]-days[i] != 1 {
			break
		}
		streak++
	}
	return streak
}

// WeeklyGoalPercent is the share of the week's seven days that have at
// least one event on or after the week start.
func (c Calendar) WeeklyGoalPercent(events []Event, now time.Time) int {
	start := c.WeekStartDay(now)
	active := 0
	for _, d := range c.distinctDays(events) {
		if d >= start {
			active++
		}
	}
	active = min(active, 7)
	return int(math.Round(float64(active) / 7 * 100))
}

func (c Calendar) distinctDays(events []Event) []int {
	seen := make(map[int]struct{}, len(events))
	days := make([]int, 0, len(events))
	for _, e := range events {
		d := c.Day(e.Timestamp)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	return days
}

// SortNewestFirst orders events by descending timestamp in place.
func SortNewestFirst(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
}
