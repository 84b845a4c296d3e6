package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-tamer/models"
)

func TestGroupByDay(t *testing.T) {
	a := completed(time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC), 3600)
	a.ID = "a"
	b := completed(time.Date(2024, 5, 3, 14, 0, 0, 0, time.UTC), 1800)
	b.ID = "b"
	c := completed(time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC), 600)
	c.ID = "c"

	days := GroupByDay([]models.WorkSession{a, c, b}, time.UTC)
	require.Len(t, days, 2)

	assert.Equal(t, "2024-05-03", days[0].Date)
	assert.Equal(t, int64(5400), days[0].TotalDuration)
	require.Len(t, days[0].Sessions, 2)
	assert.Equal(t, "b", days[0].Sessions[0].ID)
	assert.Equal(t, "a", days[0].Sessions[1].ID)

	assert.Equal(t, "2024-05-01", days[1].Date)

	// c falls on the next day two hours east of UTC
	shifted := GroupByDay([]models.WorkSession{c}, time.FixedZone("UTC+2", 2*60*60))
	assert.Equal(t, "2024-05-02", shifted[0].Date)
}

func TestGroupByDay_Empty(t *testing.T) {
	days := GroupByDay(nil, nil)
	assert.NotNil(t, days)
	assert.Empty(t, days)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatClock(0))
	assert.Equal(t, "01:01:01", FormatClock(3661))
	assert.Equal(t, "25:00:00", FormatClock(90000))
	assert.Equal(t, "00:00:00", FormatClock(-5))

	assert.Equal(t, "0h 0m", FormatDuration(59))
	assert.Equal(t, "1h 30m", FormatDuration(5400))
	assert.Equal(t, "26h 1m", FormatDuration(93660))
}
