package project

import "time"

// Project represents a tracked project. Employees and work sessions reference
// projects but never own them; deleting a project nulls those references.
type Project struct {
	ID        int64
	Name      string
	StartDate time.Time
}
