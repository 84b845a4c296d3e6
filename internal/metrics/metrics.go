// Package metrics derives dashboard analytics from a user's work sessions
// and monthly earnings. Every function is a pure recomputation over its
// inputs; callers pass "now" already converted to the zone that defines
// calendar days and months.
package metrics

import (
	"math"
	"time"

	"github.com/MKhiriev/go-task-tamer/models"
)

const (
	// RecentWindow is the span of sessions that feed the hour aggregates.
	RecentWindow = 30 * 24 * time.Hour
	// recentWindowDays is the fixed divisor of AvgDailyHours.
	recentWindowDays = 30
	// BaselineDailyHours is the fixed reference HoursChange is measured against.
	BaselineDailyHours = 5.5
	// maxStreakDays bounds the backward walk of the streak.
	maxStreakDays = 365
)

// Round rounds half toward positive infinity: Round(2.5) == 3,
// Round(-2.5) == -2.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Round1 rounds to one decimal place with the same tie rule as [Round].
func Round1(x float64) float64 {
	return Round(x*10) / 10
}

// Compute returns the metrics snapshot at now.
func Compute(sessions []models.WorkSession, earnings []models.MonthlyEarnings, now time.Time) models.Metrics {
	year, month, _ := now.Date()
	prevYear, prevMonth := previousMonth(year, month)

	current := findEarnings(earnings, int(month), year)
	previous := findEarnings(earnings, int(prevMonth), prevYear)

	var incomeChange int64
	if previous != 0 {
		incomeChange = int64(Round(float64(current-previous) / float64(previous) * 100))
	}

	totalHours := float64(recentSeconds(sessions, now)) / 3600
	avgDailyHours := totalHours / recentWindowDays

	return models.Metrics{
		AvgDailyHours:         Round1(avgDailyHours),
		AvgDailyIncome:        int64(Round(current.Float() / float64(daysIn(month, year)))),
		WorkStreak:            WorkStreak(sessions, now),
		MonthlyEarnings:       current,
		PreviousMonthEarnings: previous,
		MonthlyHours:          int64(Round(totalHours)),
		TotalHours:            totalHours,
		IncomeChangePercent:   incomeChange,
		HoursChange:           Round1(avgDailyHours - BaselineDailyHours),
	}
}

// recentSeconds sums the durations of inactive sessions started within
// RecentWindow before now.
func recentSeconds(sessions []models.WorkSession, now time.Time) int64 {
	from := now.Add(-RecentWindow)

	var total int64
	for _, s := range sessions {
		if s.IsActive || s.StartTime.Before(from) {
			continue
		}
		total += s.DurationSeconds()
	}

	return total
}

// WorkStreak counts consecutive calendar days (in now's location) with at
// least one inactive session, walking back from today. An empty today does
// not break the streak; any other empty day ends it.
func WorkStreak(sessions []models.WorkSession, now time.Time) int {
	loc := now.Location()

	worked := make(map[string]struct{}, len(sessions))
	for _, s := range sessions {
		if s.IsActive {
			continue
		}
		worked[s.StartTime.In(loc).Format(journalDateLayout)] = struct{}{}
	}

	today := startOfDay(now)
	streak := 0
	for i := 0; i < maxStreakDays; i++ {
		day := today.AddDate(0, 0, -i).Format(journalDateLayout)
		if _, ok := worked[day]; ok {
			streak++
		} else if i > 0 {
			break
		}
	}

	return streak
}

func findEarnings(earnings []models.MonthlyEarnings, month, year int) models.Money {
	for _, e := range earnings {
		if e.Month == month && e.Year == year {
			return e.Amount
		}
	}

	return 0
}

func previousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}

	return year, month - 1
}

// daysIn returns the number of days of month in year.
func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
