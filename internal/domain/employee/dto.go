package employee

// EmployeeResponse is the wire shape for employee listings and lookups.
// Username and email come from the linked account; project is the assigned
// project name, null when the employee has no project.
type EmployeeResponse struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	JobTitle string  `json:"job_title"`
	Project  *string `json:"project"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       e.ID,
		Username: e.Username,
		Email:    e.Email,
		JobTitle: e.JobTitle,
		Project:  e.ProjectName,
	}
}
