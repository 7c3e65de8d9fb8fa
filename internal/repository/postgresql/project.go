package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/trackforge/timetracker-backend/internal/domain/project"
	"github.com/trackforge/timetracker-backend/internal/pkg/database"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// Create implements project.ProjectRepository.
func (p *projectRepositoryImpl) Create(ctx context.Context, newProject project.Project) (project.Project, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO projects (name, start_date)
		VALUES ($1, $2)
		RETURNING id
	`

	err := q.QueryRow(ctx, query, newProject.Name, newProject.StartDate).Scan(&newProject.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return project.Project{}, project.ErrNameTaken
		}
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return newProject, nil
}

// GetByID implements project.ProjectRepository.
func (p *projectRepositoryImpl) GetByID(ctx context.Context, id int64) (project.Project, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, name, start_date
		FROM projects
		WHERE id = $1
	`

	var proj project.Project
	err := q.QueryRow(ctx, query, id).Scan(&proj.ID, &proj.Name, &proj.StartDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project by ID: %w", err)
	}

	return proj, nil
}

// List implements project.ProjectRepository.
func (p *projectRepositoryImpl) List(ctx context.Context) ([]project.Project, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, name, start_date
		FROM projects
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var proj project.Project
		if err := rows.Scan(&proj.ID, &proj.Name, &proj.StartDate); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, proj)
	}

	return projects, rows.Err()
}

// Update implements project.ProjectRepository.
func (p *projectRepositoryImpl) Update(ctx context.Context, proj project.Project) (project.Project, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE projects
		SET name = $2, start_date = $3
		WHERE id = $1
		RETURNING id
	`

	err := q.QueryRow(ctx, query, proj.ID, proj.Name, proj.StartDate).Scan(&proj.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		if isUniqueViolation(err) {
			return project.Project{}, project.ErrNameTaken
		}
		return project.Project{}, fmt.Errorf("failed to update project: %w", err)
	}

	return proj, nil
}

// Delete implements project.ProjectRepository.
func (p *projectRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
