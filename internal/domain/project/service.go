package project

import "context"

// ProjectService defines business logic for project management
type ProjectService interface {
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	Get(ctx context.Context, id int64) (ProjectResponse, error)
	List(ctx context.Context) ([]ProjectResponse, error)
	Update(ctx context.Context, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, id int64) error
}
