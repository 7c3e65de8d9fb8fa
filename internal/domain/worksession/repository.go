package worksession

import (
	"context"
	"time"
)

// WorkSessionRepository defines data access methods for work sessions.
type WorkSessionRepository interface {
	// Create inserts a new open session. The storage layer enforces at most
	// one open session per employee; a violation surfaces as
	// ErrAlreadyClockedIn.
	Create(ctx context.Context, newSession WorkSession) (WorkSession, error)

	// GetByID retrieves a session by id
	GetByID(ctx context.Context, id int64) (WorkSession, error)

	// ListOpenByEmployee retrieves the employee's open sessions ordered by
	// clock_in ascending, earliest first
	ListOpenByEmployee(ctx context.Context, employeeID int64) ([]WorkSession, error)

	// Close sets clock_out and duration on a still-open session. Returns
	// ErrNoActiveSession when the session is already closed or absent.
	Close(ctx context.Context, id int64, clockOut time.Time, durationSeconds int64) (WorkSession, error)

	// ListByEmployee retrieves sessions newest first by clock_in; limit <= 0
	// means no limit
	ListByEmployee(ctx context.Context, employeeID int64, limit int) ([]WorkSession, error)
}
