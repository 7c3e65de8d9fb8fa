package worksession

import "errors"

// Work session domain errors
var (
	// Clock-in errors
	ErrAlreadyClockedIn = errors.New("employee is already checked in")
	ErrInvalidEmployee  = errors.New("invalid employee")

	// Clock-out errors
	ErrNoActiveSession = errors.New("no active session found")

	// General errors
	ErrSessionNotFound = errors.New("work session not found")
)
