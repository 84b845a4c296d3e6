package metrics

import (
	"time"

	"github.com/MKhiriev/go-task-tamer/models"
)

// DefaultChartMonths is the series length used when none is requested.
const DefaultChartMonths = 6

// monthSlot is one calendar month [start, end) in now's location.
type monthSlot struct {
	year  int
	month time.Month
	start time.Time
	end   time.Time
}

// lastMonths returns the n calendar months ending with now's month, oldest
// first.
func lastMonths(now time.Time, n int) []monthSlot {
	if n <= 0 {
		n = DefaultChartMonths
	}

	y, m, _ := now.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())

	slots := make([]monthSlot, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := first.AddDate(0, -i, 0)
		slots = append(slots, monthSlot{
			year:  start.Year(),
			month: start.Month(),
			start: start,
			end:   start.AddDate(0, 1, 0),
		})
	}

	return slots
}

// MonthlyHoursSeries returns the rounded hours of inactive sessions started
// in each of the last n months.
func MonthlyHoursSeries(sessions []models.WorkSession, now time.Time, n int) []models.ChartPoint {
	slots := lastMonths(now, n)
	points := make([]models.ChartPoint, len(slots))

	for i, slot := range slots {
		var seconds int64
		for _, s := range sessions {
			if s.IsActive || s.StartTime.Before(slot.start) || !s.StartTime.Before(slot.end) {
				continue
			}
			seconds += s.DurationSeconds()
		}

		points[i] = chartPoint(slot, Round(float64(seconds)/3600))
	}

	return points
}

// MonthlyEarningsSeries returns the recorded amount of each of the last n
// months, zero for months without a record.
func MonthlyEarningsSeries(earnings []models.MonthlyEarnings, now time.Time, n int) []models.ChartPoint {
	slots := lastMonths(now, n)
	points := make([]models.ChartPoint, len(slots))

	for i, slot := range slots {
		amount := findEarnings(earnings, int(slot.month), slot.year)
		points[i] = chartPoint(slot, amount.Float())
	}

	return points
}

func chartPoint(slot monthSlot, value float64) models.ChartPoint {
	return models.ChartPoint{
		Month: slot.month.String()[:3],
		Year:  slot.year,
		Value: value,
	}
}
