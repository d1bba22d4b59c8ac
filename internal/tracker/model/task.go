// Package model provides the tracker entities: tasks, team goals and their KPIs.
package model

import (
	"strings"
	"time"
)

// CheckinStatus is the status reported by a check-in.
type CheckinStatus string

// Check-in statuses.
const (
	StatusCompleted  CheckinStatus = "completed"
	StatusInProgress CheckinStatus = "in-progress"
	StatusBlocked    CheckinStatus = "blocked"
)

// Valid reports whether s is one of the known statuses.
func (s CheckinStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusBlocked:
		return true
	}
	return false
}

// Checkin is the latest status snapshot attached to a task.
type Checkin struct {
	Status      CheckinStatus `json:"status"`
	Comment     string        `json:"comment,omitempty"`
	CheckinTime time.Time     `json:"checkinTime"`
}

// Task is a to-do item owned by one user, optionally linked to a team goal.
// Empty Time and TeamGoalID mean the value is absent.
type Task struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Completed  bool      `json:"completed"`
	Time       string    `json:"time,omitempty"`
	TeamGoalID string    `json:"teamGoalId,omitempty"`
	UserID     string    `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
	Checkin    *Checkin  `json:"checkin,omitempty"`
}

// Linked reports whether the task references a goal.
func (t Task) Linked() bool {
	return t.TeamGoalID != ""
}

// Blocked reports whether the latest check-in is blocked.
func (t Task) Blocked() bool {
	return t.Checkin != nil && t.Checkin.Status == StatusBlocked
}

// CreatedDay returns the UTC calendar day of CreatedAt as YYYY-MM-DD.
func (t Task) CreatedDay() string {
	return t.CreatedAt.UTC().Format(time.DateOnly)
}

// Timestamp returns CreatedAt in the ISO-8601 form used for prefix matching.
func (t Task) Timestamp() string {
	return t.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// Clone returns a copy that shares no memory with t.
func (t Task) Clone() Task {
	if t.Checkin != nil {
		checkin := *t.Checkin
		t.Checkin = &checkin
	}
	return t
}

// CloneTasks copies a task collection element by element.
func CloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	for i, task := range tasks {
		out[i] = task.Clone()
	}
	return out
}

// ValidateTitle rejects titles that are empty after trimming.
func ValidateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrInvalidTitle
	}
	return title, nil
}

// ValidateTime accepts an empty value or a 24-hour HH:MM clock time.
func ValidateTime(value string) error {
	if value == "" {
		return nil
	}
	if len(value) != len("15:04") {
		return ErrInvalidTime
	}
	if _, err := time.Parse("15:04", value); err != nil {
		return ErrInvalidTime
	}
	return nil
}
