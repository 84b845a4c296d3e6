package store

import (
	"database/sql"
	"strings"

	"github.com/MKhiriev/go-task-tamer/models"
)

var (
	userColumns        = []string{"id", "username", "email", "password", "name", "created_at"}
	workSessionColumns = []string{"id", "user_id", "task_name", "start_time", "end_time", "duration", "is_active", "created_at"}
	earningsColumns    = []string{"id", "user_id", "month", "year", "amount_cents", "created_at"}
)

var (
	returningWorkSession = "RETURNING " + strings.Join(workSessionColumns, ", ")

	upsertEarningsSuffix = "ON CONFLICT (user_id, month, year) DO UPDATE SET amount_cents = excluded.amount_cents RETURNING " +
		strings.Join(earningsColumns, ", ")
)

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Name, &u.CreatedAt)

	return u, err
}

func scanWorkSession(row rowScanner) (models.WorkSession, error) {
	var (
		s        models.WorkSession
		endTime  sql.NullTime
		duration sql.NullInt64
	)

	err := row.Scan(&s.ID, &s.UserID, &s.TaskName, &s.StartTime, &endTime, &duration, &s.IsActive, &s.CreatedAt)
	if err != nil {
		return models.WorkSession{}, err
	}

	if endTime.Valid {
		end := endTime.Time
		s.EndTime = &end
	}
	if duration.Valid {
		d := duration.Int64
		s.Duration = &d
	}

	return s, nil
}

func scanEarnings(row rowScanner) (models.MonthlyEarnings, error) {
	var (
		e     models.MonthlyEarnings
		cents int64
	)

	err := row.Scan(&e.ID, &e.UserID, &e.Month, &e.Year, &cents, &e.CreatedAt)
	e.Amount = models.Money(cents)

	return e, err
}

func workSessionValues(s models.WorkSession) []any {
	var duration any
	if s.Duration != nil {
		duration = *s.Duration
	}
	var endTime any
	if s.EndTime != nil {
		endTime = dbTime(*s.EndTime)
	}

	return []any{s.ID, s.UserID, s.TaskName, dbTime(s.StartTime), endTime, duration, s.IsActive, dbTime(s.CreatedAt)}
}

func workSessionSetMap(update models.WorkSessionUpdate) map[string]any {
	set := make(map[string]any, 4)
	if update.TaskName != nil {
		set["task_name"] = *update.TaskName
	}
	if update.IsActive != nil {
		set["is_active"] = *update.IsActive
	}
	if update.EndTime != nil {
		set["end_time"] = dbTime(*update.EndTime)
	}
	if update.Duration != nil {
		set["duration"] = *update.Duration
	}

	return set
}
