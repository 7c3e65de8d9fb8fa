package project

import (
	"time"

	"github.com/trackforge/timetracker-backend/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
}

func (r *CreateProjectRequest) Validate() (time.Time, error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	startDate, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return time.Time{}, errs
	}

	return startDate, nil
}

type UpdateProjectRequest struct {
	ID        int64  `json:"-"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
}

func (r *UpdateProjectRequest) Validate() (time.Time, error) {
	req := CreateProjectRequest{Name: r.Name, StartDate: r.StartDate}
	return req.Validate()
}

type ProjectResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
}

func NewProjectResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		StartDate: p.StartDate.Format("2006-01-02"),
	}
}
