package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/trackforge/timetracker-backend/internal/domain/worksession"
	"github.com/trackforge/timetracker-backend/internal/pkg/database"
)

type workSessionRepositoryImpl struct {
	db *database.DB
}

func NewWorkSessionRepository(db *database.DB) worksession.WorkSessionRepository {
	return &workSessionRepositoryImpl{db: db}
}

const workSessionSelect = `
	SELECT ws.id, ws.employee_id, ws.project_id, ws.clock_in, ws.clock_out,
		   ws.duration_seconds, ws.ip_address, ws.mac_address,
		   p.name AS project_name
	FROM work_sessions ws
	LEFT JOIN projects p ON p.id = ws.project_id
`

func scanWorkSession(row pgx.Row) (worksession.WorkSession, error) {
	var s worksession.WorkSession
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.ProjectID, &s.ClockIn, &s.ClockOut,
		&s.Duration, &s.IPAddress, &s.MACAddress,
		&s.ProjectName,
	)
	return s, err
}

// Create implements worksession.WorkSessionRepository. The partial unique
// index uq_work_sessions_open on (employee_id) WHERE clock_out IS NULL turns
// a concurrent duplicate clock-in into a unique violation here, so only one
// open session can ever be committed per employee.
func (w *workSessionRepositoryImpl) Create(ctx context.Context, newSession worksession.WorkSession) (worksession.WorkSession, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO work_sessions (employee_id, project_id, clock_in, ip_address, mac_address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		newSession.EmployeeID,
		newSession.ProjectID,
		newSession.ClockIn,
		newSession.IPAddress,
		newSession.MACAddress,
	).Scan(&newSession.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return worksession.WorkSession{}, worksession.ErrAlreadyClockedIn
		}
		return worksession.WorkSession{}, fmt.Errorf("failed to create work session: %w", err)
	}

	return newSession, nil
}

// GetByID implements worksession.WorkSessionRepository.
func (w *workSessionRepositoryImpl) GetByID(ctx context.Context, id int64) (worksession.WorkSession, error) {
	q := GetQuerier(ctx, w.db)

	s, err := scanWorkSession(q.QueryRow(ctx, workSessionSelect+` WHERE ws.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worksession.WorkSession{}, worksession.ErrSessionNotFound
		}
		return worksession.WorkSession{}, fmt.Errorf("failed to get work session by ID: %w", err)
	}

	return s, nil
}

// ListOpenByEmployee implements worksession.WorkSessionRepository.
func (w *workSessionRepositoryImpl) ListOpenByEmployee(ctx context.Context, employeeID int64) ([]worksession.WorkSession, error) {
	q := GetQuerier(ctx, w.db)

	query := workSessionSelect + `
		WHERE ws.employee_id = $1
		  AND ws.clock_out IS NULL
		ORDER BY ws.clock_in ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list open sessions: %w", err)
	}
	defer rows.Close()

	var sessions []worksession.WorkSession
	for rows.Next() {
		s, err := scanWorkSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// Close implements worksession.WorkSessionRepository. The clock_out IS NULL
// guard makes closing idempotent-safe: a session can be closed exactly once.
func (w *workSessionRepositoryImpl) Close(ctx context.Context, id int64, clockOut time.Time, durationSeconds int64) (worksession.WorkSession, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		UPDATE work_sessions
		SET clock_out = $2, duration_seconds = $3
		WHERE id = $1
		  AND clock_out IS NULL
		RETURNING id
	`

	var closedID int64
	err := q.QueryRow(ctx, query, id, clockOut, durationSeconds).Scan(&closedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worksession.WorkSession{}, worksession.ErrNoActiveSession
		}
		return worksession.WorkSession{}, fmt.Errorf("failed to close work session: %w", err)
	}

	return w.GetByID(ctx, closedID)
}

// ListByEmployee implements worksession.WorkSessionRepository.
func (w *workSessionRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64, limit int) ([]worksession.WorkSession, error) {
	q := GetQuerier(ctx, w.db)

	query := workSessionSelect + `
		WHERE ws.employee_id = $1
		ORDER BY ws.clock_in DESC
	`
	args := []interface{}{employeeID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list work sessions: %w", err)
	}
	defer rows.Close()

	var sessions []worksession.WorkSession
	for rows.Next() {
		s, err := scanWorkSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}
