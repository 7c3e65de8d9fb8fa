package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrAccountAlreadyLinked  = errors.New("account already linked to an employee")
	ErrAssignedProjectAbsent = errors.New("assigned project does not exist")
)
