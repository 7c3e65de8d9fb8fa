package worksession

import (
	"context"
)

// WorkSessionService defines business logic for the session lifecycle
type WorkSessionService interface {
	// ClockIn opens a session for an employee; at most one open session may
	// exist per employee at any time
	ClockIn(ctx context.Context, req ClockInRequest) (SessionResponse, error)

	// ClockOut closes the employee's open session and derives its duration
	ClockOut(ctx context.Context, req ClockOutRequest) (SessionResponse, error)

	// Sessions lists the employee's sessions newest first; limit <= 0 means
	// the full set
	Sessions(ctx context.Context, employeeID int64, limit int) ([]SessionResponse, error)
}
