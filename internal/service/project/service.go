package project

import (
	"context"
	"fmt"

	"github.com/trackforge/timetracker-backend/internal/domain/project"
)

type ProjectServiceImpl struct {
	project.ProjectRepository
}

func NewProjectService(projectRepo project.ProjectRepository) project.ProjectService {
	return &ProjectServiceImpl{ProjectRepository: projectRepo}
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	startDate, err := req.Validate()
	if err != nil {
		return project.ProjectResponse{}, err
	}

	created, err := s.ProjectRepository.Create(ctx, project.Project{
		Name:      req.Name,
		StartDate: startDate,
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return project.NewProjectResponse(created), nil
}

// Get implements project.ProjectService.
func (s *ProjectServiceImpl) Get(ctx context.Context, id int64) (project.ProjectResponse, error) {
	proj, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return project.NewProjectResponse(proj), nil
}

// List implements project.ProjectService.
func (s *ProjectServiceImpl) List(ctx context.Context) ([]project.ProjectResponse, error) {
	projects, err := s.ProjectRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, proj := range projects {
		responses = append(responses, project.NewProjectResponse(proj))
	}
	return responses, nil
}

// Update implements project.ProjectService.
func (s *ProjectServiceImpl) Update(ctx context.Context, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	startDate, err := req.Validate()
	if err != nil {
		return project.ProjectResponse{}, err
	}

	// Existence check first so a missing project reports NotFound, not a
	// validation conflict.
	if _, err := s.ProjectRepository.GetByID(ctx, req.ID); err != nil {
		return project.ProjectResponse{}, err
	}

	updated, err := s.ProjectRepository.Update(ctx, project.Project{
		ID:        req.ID,
		Name:      req.Name,
		StartDate: startDate,
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return project.NewProjectResponse(updated), nil
}

// Delete implements project.ProjectService.
func (s *ProjectServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.ProjectRepository.Delete(ctx, id)
}
