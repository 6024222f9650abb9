package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

func ev(day string, amount int64) IntakeEvent {
	return IntakeEvent{UserID: 1, AmountMl: amount, Date: DateKey(day)}
}

func TestTodayTotalSumsSameDayEvents(t *testing.T) {
	events := []IntakeEvent{
		ev("2024-06-15", 500),
		ev("2024-06-15", 250),
		ev("2024-06-15", 0),
		ev("2024-06-14", 1000),
	}
	assert.Equal(t, int64(750), TodayTotal(events, testNow))
}

func TestTodayTotalEmpty(t *testing.T) {
	assert.Equal(t, int64(0), TodayTotal(nil, testNow))
	assert.Equal(t, int64(0), TodayTotal([]IntakeEvent{ev("2024-06-14", 300)}, testNow))
}

func TestTodayTotalExactDayNotPrefix(t *testing.T) {
	// A malformed legacy key sharing the day prefix must not count.
	events := []IntakeEvent{
		ev("2024-06-15", 500),
		ev("2024-06-15T09:00", 999),
	}
	assert.Equal(t, int64(500), TodayTotal(events, testNow))
}

func TestWeeklyTotalWindow(t *testing.T) {
	events := []IntakeEvent{
		ev("2024-06-15", 500),  // today
		ev("2024-06-08", 300),  // exactly seven days back, inclusive
		ev("2024-06-07", 1000), // outside
		ev("garbage", 1000),    // unparseable, excluded
	}
	assert.Equal(t, int64(800), WeeklyTotal(events, testNow))
}

func TestWeeklyTotalCoversToday(t *testing.T) {
	events := []IntakeEvent{
		ev("2024-06-15", 400),
		ev("2024-06-12", 600),
	}
	assert.GreaterOrEqual(t, WeeklyTotal(events, testNow), TodayTotal(events, testNow))
}

func TestMonthlyTotal(t *testing.T) {
	events := []IntakeEvent{
		ev("2024-06-01", 100),
		ev("2024-06-15", 200),
		ev("2024-05-31", 9000),
	}
	assert.Equal(t, int64(300), MonthlyTotal(events, testNow))
	assert.Equal(t, int64(0), MonthlyTotal(nil, testNow))
}

func TestWeeklyAverageAlwaysDividesBySeven(t *testing.T) {
	// Only two days carry data; the divisor stays 7.
	events := []IntakeEvent{
		ev("2024-06-15", 700),
		ev("2024-06-14", 700),
	}
	assert.InDelta(t, 200.0, WeeklyAverage(events, testNow), 0.001)
	assert.Equal(t, 0.0, WeeklyAverage(nil, testNow))
}

func TestWeeklyChartGroupsAndOrders(t *testing.T) {
	events := []IntakeEvent{
		ev("2024-06-15", 500),
		ev("2024-06-13", 200),
		ev("2024-06-13", 300),
		ev("2024-06-01", 9000), // outside the window
	}
	chart := WeeklyChart(events, testNow)
	assert.Equal(t, []DayTotal{
		{Date: "2024-06-13", TotalMl: 500},
		{Date: "2024-06-15", TotalMl: 500},
	}, chart)
}

func TestWeeklyChartSumsMatchWeeklyTotal(t *testing.T) {
	events := []IntakeEvent{
		ev("2024-06-15", 500),
		ev("2024-06-14", 250),
		ev("2024-06-13", 250),
		ev("2024-06-09", 100),
	}
	var sum int64
	for _, row := range WeeklyChart(events, testNow) {
		sum += row.TotalMl
	}
	assert.Equal(t, WeeklyTotal(events, testNow), sum)
}

func TestWeeklyChartEmpty(t *testing.T) {
	assert.Empty(t, WeeklyChart(nil, testNow))
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 16.67, ProgressPercent(500, 3000))
	assert.Equal(t, 100.0, ProgressPercent(3000, 3000))
	assert.Equal(t, 133.33, ProgressPercent(4000, 3000))
	assert.Equal(t, 0.0, ProgressPercent(500, 0))
	assert.Equal(t, 0.0, ProgressPercent(500, -1))
}

func TestNegativeAmountsReduceVerbatim(t *testing.T) {
	// The store records whatever it is handed; the reduction must not
	// clamp.
	events := []IntakeEvent{
		ev("2024-06-15", 500),
		ev("2024-06-15", -200),
	}
	assert.Equal(t, int64(300), TodayTotal(events, testNow))
}
