package models

// Metrics is the dashboard snapshot derived from a user's sessions and
// earnings at a point in time.
type Metrics struct {
	// AvgDailyHours is the hours of the last 30 days divided by 30,
	// rounded to one decimal.
	AvgDailyHours float64 `json:"avg_daily_hours"`
	// AvgDailyIncome is this month's earnings divided by the days of the
	// month, in whole currency units.
	AvgDailyIncome int64 `json:"avg_daily_income"`
	// WorkStreak is the number of consecutive days with work, ending today
	// or yesterday.
	WorkStreak int `json:"work_streak"`
	// MonthlyEarnings is this month's earnings.
	MonthlyEarnings Money `json:"monthly_earnings"`
	// PreviousMonthEarnings is last month's earnings.
	PreviousMonthEarnings Money `json:"previous_month_earnings"`
	// MonthlyHours is the rounded hours of the last 30 days.
	MonthlyHours int64 `json:"monthly_hours"`
	// TotalHours is the unrounded hours of the last 30 days.
	TotalHours float64 `json:"total_hours"`
	// IncomeChangePercent compares this month with the previous one.
	// Zero when the previous month has no earnings.
	IncomeChangePercent int64 `json:"income_change_percent"`
	// HoursChange is AvgDailyHours minus the 5.5 h/day baseline.
	HoursChange float64 `json:"hours_change"`
}

// ChartPoint is one month of a chart series.
type ChartPoint struct {
	// Month is the short month name ("Jan").
	Month string  `json:"month"`
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// Charts holds the series rendered on the dashboard.
type Charts struct {
	Hours    []ChartPoint `json:"hours"`
	Earnings []ChartPoint `json:"earnings"`
}

// JournalDay groups the sessions started on one calendar day.
type JournalDay struct {
	// Date is formatted as YYYY-MM-DD.
	Date     string        `json:"date"`
	Sessions []WorkSession `json:"sessions"`
	// TotalDuration is the sum of session durations in seconds.
	TotalDuration int64 `json:"total_duration"`
}
