package metrics

import (
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-task-tamer/models"
)

const journalDateLayout = "2006-01-02"

// GroupByDay buckets sessions by the calendar day of their start time in
// loc. Days are returned newest first and sessions inside a day newest
// first.
func GroupByDay(sessions []models.WorkSession, loc *time.Location) []models.JournalDay {
	if loc == nil {
		loc = time.UTC
	}

	sorted := slices.Clone(sessions)
	slices.SortStableFunc(sorted, func(a, b models.WorkSession) int {
		return b.StartTime.Compare(a.StartTime)
	})

	days := make([]models.JournalDay, 0)
	index := make(map[string]int)
	for _, s := range sorted {
		date := s.StartTime.In(loc).Format(journalDateLayout)

		i, ok := index[date]
		if !ok {
			i = len(days)
			index[date] = i
			days = append(days, models.JournalDay{Date: date, Sessions: make([]models.WorkSession, 0, 4)})
		}

		days[i].Sessions = append(days[i].Sessions, s)
		days[i].TotalDuration += s.DurationSeconds()
	}

	return days
}

// FormatClock renders seconds as HH:MM:SS. Hours are not wrapped at 24.
func FormatClock(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}

	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}

// FormatDuration renders seconds as "Xh Ym".
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}

	return fmt.Sprintf("%dh %dm", seconds/3600, seconds%3600/60)
}
