package model

import "errors"

var (
	// ErrTaskNotFound indicates that no task has the given id.
	ErrTaskNotFound = errors.New("task not found")
	// ErrGoalNotFound indicates that no goal has the given id.
	ErrGoalNotFound = errors.New("goal not found")
	// ErrInvalidTitle indicates an empty task or goal title.
	ErrInvalidTitle = errors.New("title is required")
	// ErrInvalidTime indicates a task time that is not HH:MM.
	ErrInvalidTime = errors.New("time must be HH:MM")
	// ErrInvalidDate indicates a date that is not YYYY-MM-DD, or a due date before the start date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidKPI indicates a KPI whose progress cannot be expressed as a finite percentage.
	ErrInvalidKPI = errors.New("kpi target and current must give a finite progress")
	// ErrInvalidStatus indicates an unknown check-in status.
	ErrInvalidStatus = errors.New("status must be one of completed, in-progress, blocked")
	// ErrInvalidSelection indicates that a goal and the unlinked filter were requested together.
	ErrInvalidSelection = errors.New("goal_id and unlinked are mutually exclusive")
	// ErrUnauthorized indicates that the acting user lacks team-lead capability.
	ErrUnauthorized = errors.New("team lead capability required")
	// ErrCorruptState indicates that a stored collection could not be decoded.
	ErrCorruptState = errors.New("stored state is corrupt")
)
