package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-tamer/models"
)

func TestMemoryStorage_Users(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := m.CreateUser(ctx, models.User{ID: "b", Username: "bob", Email: "bob@x.io", CreatedAt: base.Add(time.Hour)})
	require.NoError(t, err)
	_, err = m.CreateUser(ctx, models.User{ID: "a", Username: "alice", Email: "alice@x.io", CreatedAt: base})
	require.NoError(t, err)

	_, err = m.CreateUser(ctx, models.User{ID: "c", Username: "bob", Email: "other@x.io"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	_, err = m.CreateUser(ctx, models.User{ID: "c", Username: "carol", Email: "alice@x.io"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	u, err := m.GetUserByEmail(ctx, "alice@x.io")
	require.NoError(t, err)
	assert.Equal(t, "a", u.ID)

	_, err = m.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	ids, err := m.ListUserIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestMemoryStorage_OneActiveSession(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	_, err := m.CreateWorkSession(ctx, models.WorkSession{ID: "s1", UserID: "u", TaskName: "A", StartTime: now, IsActive: true})
	require.NoError(t, err)

	_, err = m.CreateWorkSession(ctx, models.WorkSession{ID: "s2", UserID: "u", TaskName: "B", StartTime: now, IsActive: true})
	assert.ErrorIs(t, err, ErrActiveSessionExists)

	// another user is unaffected
	_, err = m.CreateWorkSession(ctx, models.WorkSession{ID: "s3", UserID: "v", TaskName: "C", StartTime: now, IsActive: true})
	require.NoError(t, err)

	inactive, active := false, true
	_, err = m.UpdateWorkSession(ctx, "s1", models.WorkSessionUpdate{IsActive: &inactive})
	require.NoError(t, err)

	_, err = m.CreateWorkSession(ctx, models.WorkSession{ID: "s4", UserID: "u", TaskName: "D", StartTime: now.Add(time.Minute), IsActive: true})
	require.NoError(t, err)

	_, err = m.UpdateWorkSession(ctx, "s1", models.WorkSessionUpdate{IsActive: &active})
	assert.ErrorIs(t, err, ErrActiveSessionExists)

	open, err := m.GetLatestOpenWorkSession(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, "s4", open.ID)

	_, err = m.UpdateWorkSession(ctx, "missing", models.WorkSessionUpdate{IsActive: &inactive})
	assert.ErrorIs(t, err, ErrWorkSessionNotFound)
}

func TestMemoryStorage_ConcurrentStarts(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()
	now := time.Now()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := m.CreateWorkSession(ctx, models.WorkSession{
				ID: time.Duration(i).String(), UserID: "u", StartTime: now, IsActive: true,
			})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, created)
}

func TestMemoryStorage_SessionQueries(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	d := int64(3600)

	completed := func(id string, start time.Time) models.WorkSession {
		end := start.Add(time.Hour)
		return models.WorkSession{ID: id, UserID: "u", StartTime: start, EndTime: &end, Duration: &d}
	}

	for _, s := range []models.WorkSession{
		completed("yesterday", day.Add(-2*time.Hour)),
		completed("late", day.Add(15*time.Hour)),
		completed("early", day.Add(8*time.Hour)),
		completed("tomorrow", day.Add(24*time.Hour)),
		{ID: "running", UserID: "u", StartTime: day.Add(16 * time.Hour), IsActive: true},
	} {
		_, err := m.CreateWorkSession(ctx, s)
		require.NoError(t, err)
	}

	today, err := m.GetTodaysWorkSessions(ctx, "u", day.Add(17*time.Hour))
	require.NoError(t, err)
	require.Len(t, today, 2)
	assert.Equal(t, "early", today[0].ID)
	assert.Equal(t, "late", today[1].ID)

	ranged, err := m.GetWorkSessionsByDateRange(ctx, "u", models.DateRange{Start: day.Add(-2 * time.Hour), End: day.Add(24 * time.Hour)})
	require.NoError(t, err)
	require.Len(t, ranged, 4)
	assert.Equal(t, "tomorrow", ranged[0].ID)
	assert.Equal(t, "yesterday", ranged[3].ID)

	all, err := m.GetWorkSessionsByUser(ctx, "u")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	active, err := m.GetActiveWorkSession(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, "running", active.ID)
}

func TestMemoryStorage_Earnings(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStorage()

	first, err := m.UpsertMonthlyEarnings(ctx, models.MonthlyEarnings{ID: "e1", UserID: "u", Month: 3, Year: 2026, Amount: models.FromUnits(100)})
	require.NoError(t, err)
	assert.Equal(t, "e1", first.ID)

	second, err := m.UpsertMonthlyEarnings(ctx, models.MonthlyEarnings{ID: "e2", UserID: "u", Month: 3, Year: 2026, Amount: models.FromUnits(250)})
	require.NoError(t, err)
	assert.Equal(t, "e1", second.ID)
	assert.Equal(t, models.FromUnits(250), second.Amount)

	_, err = m.CreateMonthlyEarnings(ctx, models.MonthlyEarnings{ID: "e3", UserID: "u", Month: 3, Year: 2026})
	assert.ErrorIs(t, err, ErrEarningsAlreadyExist)

	_, err = m.CreateMonthlyEarnings(ctx, models.MonthlyEarnings{ID: "e4", UserID: "u", Month: 12, Year: 2025})
	require.NoError(t, err)

	list, err := m.GetMonthlyEarningsByUser(ctx, "u")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "e1", list[0].ID)
	assert.Equal(t, "e4", list[1].ID)

	_, err = m.GetMonthlyEarnings(ctx, "u", 1, 2026)
	assert.ErrorIs(t, err, ErrEarningsNotFound)
}
