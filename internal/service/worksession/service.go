package worksession

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/trackforge/timetracker-backend/internal/domain/employee"
	"github.com/trackforge/timetracker-backend/internal/domain/worksession"
	"github.com/trackforge/timetracker-backend/internal/pkg/database"
	"github.com/trackforge/timetracker-backend/internal/repository/postgresql"
)

type WorkSessionServiceImpl struct {
	db *database.DB
	worksession.WorkSessionRepository
	employee.EmployeeRepository
}

func NewWorkSessionService(
	db *database.DB,
	sessionRepo worksession.WorkSessionRepository,
	employeeRepo employee.EmployeeRepository,
) worksession.WorkSessionService {
	return &WorkSessionServiceImpl{
		db:                    db,
		WorkSessionRepository: sessionRepo,
		EmployeeRepository:    employeeRepo,
	}
}

// inTx runs fn inside a database transaction. A nil db (in-memory test
// repositories) runs fn directly.
func (s *WorkSessionServiceImpl) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, fn)
}

// ClockIn implements worksession.WorkSessionService.
func (s *WorkSessionServiceImpl) ClockIn(ctx context.Context, req worksession.ClockInRequest) (worksession.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return worksession.SessionResponse{}, err
	}

	var created worksession.WorkSession
	err := s.inTx(ctx, func(ctx context.Context) error {
		emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return worksession.ErrInvalidEmployee
			}
			return fmt.Errorf("failed to get employee: %w", err)
		}

		open, err := s.WorkSessionRepository.ListOpenByEmployee(ctx, emp.ID)
		if err != nil {
			return fmt.Errorf("failed to check open sessions: %w", err)
		}
		if len(open) > 0 {
			return worksession.ErrAlreadyClockedIn
		}

		newSession := worksession.WorkSession{
			EmployeeID: emp.ID,
			ProjectID:  emp.ProjectID, // snapshot of the current assignment
			ClockIn:    time.Now().UTC(),
			IPAddress:  optional(req.IPAddress),
			MACAddress: optional(req.MACAddress),
		}

		// The partial unique index backs this up: a concurrent clock-in that
		// slipped past the check above fails the insert with the same error.
		created, err = s.WorkSessionRepository.Create(ctx, newSession)
		if err != nil {
			return err
		}
		created.ProjectName = emp.ProjectName
		return nil
	})
	if err != nil {
		return worksession.SessionResponse{}, err
	}

	return worksession.NewSessionResponse(created), nil
}

// ClockOut implements worksession.WorkSessionService.
func (s *WorkSessionServiceImpl) ClockOut(ctx context.Context, req worksession.ClockOutRequest) (worksession.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return worksession.SessionResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return worksession.SessionResponse{}, err
		}
		return worksession.SessionResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	open, err := s.WorkSessionRepository.ListOpenByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return worksession.SessionResponse{}, fmt.Errorf("failed to list open sessions: %w", err)
	}
	if len(open) == 0 {
		return worksession.SessionResponse{}, worksession.ErrNoActiveSession
	}
	if len(open) > 1 {
		// Structurally impossible with the open-session index in place;
		// close the earliest and leave a trace if it ever happens.
		slog.Warn("multiple open work sessions found, closing earliest",
			"employee_id", req.EmployeeID,
			"open_sessions", len(open),
		)
	}

	target := open[0] // earliest clock_in
	clockOut := time.Now().UTC()
	durationSeconds := int64(clockOut.Sub(target.ClockIn).Seconds())

	closed, err := s.WorkSessionRepository.Close(ctx, target.ID, clockOut, durationSeconds)
	if err != nil {
		return worksession.SessionResponse{}, err
	}

	return worksession.NewSessionResponse(closed), nil
}

// Sessions implements worksession.WorkSessionService.
func (s *WorkSessionServiceImpl) Sessions(ctx context.Context, employeeID int64, limit int) ([]worksession.SessionResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	sessions, err := s.WorkSessionRepository.ListByEmployee(ctx, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return worksession.NewSessionResponses(sessions), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
