package project

import "context"

// ProjectRepository defines data access methods for projects.
type ProjectRepository interface {
	Create(ctx context.Context, newProject Project) (Project, error)
	GetByID(ctx context.Context, id int64) (Project, error)
	List(ctx context.Context) ([]Project, error)
	Update(ctx context.Context, p Project) (Project, error)
	Delete(ctx context.Context, id int64) error
}
