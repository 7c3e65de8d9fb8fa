package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/trackforge/timetracker-backend/internal/domain/account"
	"github.com/trackforge/timetracker-backend/internal/domain/employee"
	"github.com/trackforge/timetracker-backend/internal/domain/project"
	"github.com/trackforge/timetracker-backend/internal/domain/screenshot"
	"github.com/trackforge/timetracker-backend/internal/domain/worksession"
	"github.com/trackforge/timetracker-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Validation errors first
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, validationErrs.Error())
		return
	}

	switch {
	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrNameTaken):
		BadRequest(w, "Project with this name already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrAccountAlreadyLinked):
		BadRequest(w, "Account is already linked to an employee")

	// Work session domain errors
	case errors.Is(err, worksession.ErrInvalidEmployee):
		NotFound(w, "Invalid employee")
	case errors.Is(err, worksession.ErrAlreadyClockedIn):
		BadRequest(w, "Employee is already checked in")
	case errors.Is(err, worksession.ErrNoActiveSession):
		BadRequest(w, "No active session found")
	case errors.Is(err, worksession.ErrSessionNotFound):
		NotFound(w, "Invalid work session ID")

	// Screenshot domain errors
	case errors.Is(err, screenshot.ErrInvalidWorkSession):
		NotFound(w, "Invalid work session ID")
	case errors.Is(err, screenshot.ErrFileRequired):
		BadRequest(w, "Screenshot image is required")

	// Account domain errors
	case errors.Is(err, account.ErrUsernameTaken):
		BadRequest(w, "Username already taken")
	case errors.Is(err, account.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, account.ErrActivationInvalid):
		BadRequest(w, "Activation was not successful.")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
