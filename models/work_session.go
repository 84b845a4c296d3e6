// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SessionStatus is the lifecycle state of a [WorkSession] derived from its
// fields.
type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionPaused    SessionStatus = "paused"
	SessionCompleted SessionStatus = "completed"
)

// WorkSession is a block of time a user spent on one task.
//
// A session is created active with a nil EndTime and Duration. It may be
// paused and resumed any number of times; completing it sets EndTime and
// Duration (whole seconds between StartTime and EndTime) and deactivates it.
// At most one session per user is active at any moment.
type WorkSession struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	TaskName  string     `json:"task_name"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	// Duration in seconds, set on completion.
	Duration  *int64    `json:"duration"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the WorkSession model.
func (s WorkSession) TableName() string {
	return "work_sessions"
}

// Status reports whether the session is active, paused or completed.
func (s WorkSession) Status() SessionStatus {
	switch {
	case s.IsActive:
		return SessionActive
	case s.EndTime != nil:
		return SessionCompleted
	default:
		return SessionPaused
	}
}

// Elapsed returns the recorded duration of a completed session, or the
// time passed since StartTime otherwise. Pauses are not subtracted.
func (s WorkSession) Elapsed(now time.Time) time.Duration {
	if s.Duration != nil {
		return time.Duration(*s.Duration) * time.Second
	}
	if now.Before(s.StartTime) {
		return 0
	}

	return now.Sub(s.StartTime)
}

// DurationSeconds returns Duration or 0 when it is unset.
func (s WorkSession) DurationSeconds() int64 {
	if s.Duration == nil {
		return 0
	}

	return *s.Duration
}

// WorkSessionUpdate is a partial update of a [WorkSession].
// Only non-nil fields are written.
type WorkSessionUpdate struct {
	TaskName *string
	IsActive *bool
	EndTime  *time.Time
	Duration *int64
}

// IsEmpty reports whether the update changes nothing.
func (u WorkSessionUpdate) IsEmpty() bool {
	return u.TaskName == nil && u.IsActive == nil && u.EndTime == nil && u.Duration == nil
}

// Apply copies the non-nil fields of u onto s.
func (u WorkSessionUpdate) Apply(s *WorkSession) {
	if u.TaskName != nil {
		s.TaskName = *u.TaskName
	}
	if u.IsActive != nil {
		s.IsActive = *u.IsActive
	}
	if u.EndTime != nil {
		end := *u.EndTime
		s.EndTime = &end
	}
	if u.Duration != nil {
		d := *u.Duration
		s.Duration = &d
	}
}

// Activates reports whether applying u makes a session active.
func (u WorkSessionUpdate) Activates() bool {
	return u.IsActive != nil && *u.IsActive
}

// DateRange is an inclusive time interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies within the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}
