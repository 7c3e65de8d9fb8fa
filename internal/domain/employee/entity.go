package employee

// Employee links an account to a job title and an optional project. Exactly
// one employee exists per account; deleting the account cascades here.
type Employee struct {
	ID        int64
	AccountID int64
	JobTitle  string
	ProjectID *int64

	// Joined fields
	Username    string
	Email       string
	ProjectName *string
}
