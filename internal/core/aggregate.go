package core

import (
	"math"
	"sort"
	"time"
)

// Aggregation over a user's intake events. All functions are pure
// reductions over the event slice relative to a reference day; callers
// pass time.Now() in production and a fixed day in tests.
//
// Date keys are normalized on write, so comparing keys lexicographically
// is equivalent to comparing calendar days. Keys stored before
// normalization that fail to parse are excluded from day-ranged windows
// rather than matched by string prefix.

// TodayTotal sums amounts for events on the reference calendar day.
func TodayTotal(events []IntakeEvent, now time.Time) int64 {
	today := NewDateKey(now)
	var total int64
	for _, ev := range events {
		if ev.Date == today {
			total += ev.AmountMl
		}
	}
	return total
}

// WeeklyTotal sums amounts for events whose day is on or after seven days
// before the reference day. The window is inclusive on both ends, so it
// spans eight calendar days.
func WeeklyTotal(events []IntakeEvent, now time.Time) int64 {
	return totalSince(events, NewDateKey(now.AddDate(0, 0, -7)))
}

// MonthlyTotal sums amounts for events on or after the first day of the
// reference month.
func MonthlyTotal(events []IntakeEvent, now time.Time) int64 {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return totalSince(events, NewDateKey(first))
}

// WeeklyAverage is WeeklyTotal divided by a fixed seven days, regardless
// of how many days actually have data.
func WeeklyAverage(events []IntakeEvent, now time.Time) float64 {
	return round2(float64(WeeklyTotal(events, now)) / 7)
}

// WeeklyChart groups the weekly window's events by day and sums each
// group, ordered ascending by day. Empty slice when nothing is in range.
func WeeklyChart(events []IntakeEvent, now time.Time) []DayTotal {
	from := NewDateKey(now.AddDate(0, 0, -7))
	byDay := make(map[DateKey]int64)
	for _, ev := range events {
		if inRange(ev.Date, from) {
			byDay[ev.Date] += ev.AmountMl
		}
	}

	chart := make([]DayTotal, 0, len(byDay))
	for day, total := range byDay {
		chart = append(chart, DayTotal{Date: day, TotalMl: total})
	}
	sort.Slice(chart, func(i, j int) bool { return chart[i].Date < chart[j].Date })
	return chart
}

// ProgressPercent reports consumed/goal as a percentage rounded to two
// decimals. A goal of zero or less yields 0 rather than dividing by it.
func ProgressPercent(totalMl, goalMl int64) float64 {
	if goalMl <= 0 {
		return 0
	}
	return round2(float64(totalMl) / float64(goalMl) * 100)
}

func totalSince(events []IntakeEvent, from DateKey) int64 {
	var total int64
	for _, ev := range events {
		if inRange(ev.Date, from) {
			total += ev.AmountMl
		}
	}
	return total
}

// inRange reports whether the key's day is on or after from. Unparseable
// keys never match.
func inRange(k, from DateKey) bool {
	t := k.Time()
	return !t.IsZero() && !t.Before(from.Time())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
