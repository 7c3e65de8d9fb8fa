package account

import (
	"github.com/trackforge/timetracker-backend/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Status     string `json:"status"`
	UserID     int64  `json:"user_id"`
	EmployeeID *int64 `json:"employee_id"`
}

type CreateAccountRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	JobTitle  string `json:"job_title"`
	ProjectID *int64 `json:"project_id"`
}

func (r *CreateAccountRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters of letters, digits, '.', '_' or '-'",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if validator.IsEmpty(r.JobTitle) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_title",
			Message: "job_title is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetPasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r *SetPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if r.Password != r.ConfirmPassword {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "passwords do not match",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
