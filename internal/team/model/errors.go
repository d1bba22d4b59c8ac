package model

import "errors"

var (
	// ErrUserNotFound indicates that the user id is not on the roster.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateMember indicates that a roster lists the same user id twice.
	ErrDuplicateMember = errors.New("duplicate member id")
	// ErrInvalidRoster indicates that a roster failed validation.
	ErrInvalidRoster = errors.New("invalid roster")
)
