package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-task-tamer/models"
)

// MemoryStorage keeps users, sessions and earnings in maps. It implements
// [UserRepository], [WorkSessionRepository] and [EarningsRepository] with the
// same contracts as the SQL repositories, including the one-active-session
// check, and is safe for concurrent use.
type MemoryStorage struct {
	mu       sync.RWMutex
	users    map[string]models.User
	sessions map[string]models.WorkSession
	earnings map[string]models.MonthlyEarnings
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:    make(map[string]models.User),
		sessions: make(map[string]models.WorkSession),
		earnings: make(map[string]models.MonthlyEarnings),
	}
}

// ── users ─────────────────────────────────────────────────────────────────────

func (m *MemoryStorage) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.ID == user.ID || u.Username == user.Username || u.Email == user.Email {
			return models.User{}, ErrUserAlreadyExists
		}
	}
	m.users[user.ID] = user

	return user, nil
}

func (m *MemoryStorage) GetUser(_ context.Context, id string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return u, nil
}

func (m *MemoryStorage) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	return m.findUser(func(u models.User) bool { return u.Email == email })
}

func (m *MemoryStorage) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	return m.findUser(func(u models.User) bool { return u.Username == username })
}

func (m *MemoryStorage) findUser(match func(models.User) bool) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if match(u) {
			return u, nil
		}
	}

	return models.User{}, ErrNoUserWasFound
}

func (m *MemoryStorage) ListUserIDs(_ context.Context) ([]string, error) {
	m.mu.RLock()
	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	m.mu.RUnlock()

	slices.SortFunc(users, func(a, b models.User) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return compareStrings(a.ID, b.ID)
	})

	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	return ids, nil
}

// ── work sessions ─────────────────────────────────────────────────────────────

func (m *MemoryStorage) CreateWorkSession(_ context.Context, session models.WorkSession) (models.WorkSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session.IsActive && m.hasActiveLocked(session.UserID, "") {
		return models.WorkSession{}, ErrActiveSessionExists
	}
	m.sessions[session.ID] = session

	return session, nil
}

func (m *MemoryStorage) UpdateWorkSession(_ context.Context, id string, update models.WorkSessionUpdate) (models.WorkSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return models.WorkSession{}, ErrWorkSessionNotFound
	}

	if update.Activates() && m.hasActiveLocked(session.UserID, id) {
		return models.WorkSession{}, ErrActiveSessionExists
	}

	update.Apply(&session)
	m.sessions[id] = session

	return session, nil
}

func (m *MemoryStorage) hasActiveLocked(userID, exceptID string) bool {
	for _, s := range m.sessions {
		if s.UserID == userID && s.IsActive && s.ID != exceptID {
			return true
		}
	}

	return false
}

func (m *MemoryStorage) GetWorkSession(_ context.Context, id string) (models.WorkSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return models.WorkSession{}, ErrWorkSessionNotFound
	}

	return s, nil
}

func (m *MemoryStorage) GetWorkSessionsByUser(_ context.Context, userID string) ([]models.WorkSession, error) {
	sessions := m.filterSessions(func(s models.WorkSession) bool { return s.UserID == userID })
	sortByStartDesc(sessions)

	return sessions, nil
}

func (m *MemoryStorage) GetActiveWorkSession(_ context.Context, userID string) (models.WorkSession, error) {
	active := m.filterSessions(func(s models.WorkSession) bool { return s.UserID == userID && s.IsActive })
	if len(active) == 0 {
		return models.WorkSession{}, ErrWorkSessionNotFound
	}

	return active[0], nil
}

func (m *MemoryStorage) GetLatestOpenWorkSession(_ context.Context, userID string) (models.WorkSession, error) {
	open := m.filterSessions(func(s models.WorkSession) bool { return s.UserID == userID && s.EndTime == nil })
	if len(open) == 0 {
		return models.WorkSession{}, ErrWorkSessionNotFound
	}
	sortByStartDesc(open)

	return open[0], nil
}

func (m *MemoryStorage) GetTodaysWorkSessions(_ context.Context, userID string, now time.Time) ([]models.WorkSession, error) {
	start, end := dayBounds(now)
	sessions := m.filterSessions(func(s models.WorkSession) bool {
		return s.UserID == userID && !s.IsActive && !s.StartTime.Before(start) && s.StartTime.Before(end)
	})
	slices.SortStableFunc(sessions, func(a, b models.WorkSession) int {
		return a.StartTime.Compare(b.StartTime)
	})

	return sessions, nil
}

func (m *MemoryStorage) GetWorkSessionsByDateRange(_ context.Context, userID string, dateRange models.DateRange) ([]models.WorkSession, error) {
	sessions := m.filterSessions(func(s models.WorkSession) bool {
		return s.UserID == userID && !s.IsActive && dateRange.Contains(s.StartTime)
	})
	sortByStartDesc(sessions)

	return sessions, nil
}

func (m *MemoryStorage) filterSessions(keep func(models.WorkSession) bool) []models.WorkSession {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]models.WorkSession, 0)
	for _, s := range m.sessions {
		if keep(s) {
			result = append(result, s)
		}
	}

	return result
}

func sortByStartDesc(sessions []models.WorkSession) {
	slices.SortStableFunc(sessions, func(a, b models.WorkSession) int {
		if c := b.StartTime.Compare(a.StartTime); c != 0 {
			return c
		}
		return compareStrings(b.ID, a.ID)
	})
}

// ── earnings ──────────────────────────────────────────────────────────────────

func (m *MemoryStorage) CreateMonthlyEarnings(_ context.Context, earnings models.MonthlyEarnings) (models.MonthlyEarnings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.findEarningsLocked(earnings.UserID, earnings.Month, earnings.Year); ok {
		return models.MonthlyEarnings{}, ErrEarningsAlreadyExist
	}
	m.earnings[earnings.ID] = earnings

	return earnings, nil
}

func (m *MemoryStorage) UpsertMonthlyEarnings(_ context.Context, earnings models.MonthlyEarnings) (models.MonthlyEarnings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.findEarningsLocked(earnings.UserID, earnings.Month, earnings.Year); ok {
		existing.Amount = earnings.Amount
		m.earnings[existing.ID] = existing
		return existing, nil
	}
	m.earnings[earnings.ID] = earnings

	return earnings, nil
}

func (m *MemoryStorage) GetMonthlyEarnings(_ context.Context, userID string, month, year int) (models.MonthlyEarnings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.findEarningsLocked(userID, month, year)
	if !ok {
		return models.MonthlyEarnings{}, ErrEarningsNotFound
	}

	return e, nil
}

func (m *MemoryStorage) GetMonthlyEarningsByUser(_ context.Context, userID string) ([]models.MonthlyEarnings, error) {
	m.mu.RLock()
	result := make([]models.MonthlyEarnings, 0)
	for _, e := range m.earnings {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	m.mu.RUnlock()

	slices.SortFunc(result, func(a, b models.MonthlyEarnings) int {
		return b.Period() - a.Period()
	})

	return result, nil
}

func (m *MemoryStorage) findEarningsLocked(userID string, month, year int) (models.MonthlyEarnings, bool) {
	for _, e := range m.earnings {
		if e.UserID == userID && e.Month == month && e.Year == year {
			return e, true
		}
	}

	return models.MonthlyEarnings{}, false
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
