package worksession

import "time"

// WorkSession is one clock-in/clock-out interval for an employee. A session
// is open while ClockOut is nil; closing it sets ClockOut and Duration and is
// the only mutation a session ever receives.
type WorkSession struct {
	ID         int64
	EmployeeID int64
	ProjectID  *int64
	ClockIn    time.Time
	ClockOut   *time.Time
	Duration   *int64 // whole seconds, derived at clock-out
	IPAddress  *string
	MACAddress *string

	// Joined fields
	ProjectName *string
}

// IsOpen reports whether the session has not been clocked out yet.
func (s *WorkSession) IsOpen() bool {
	return s.ClockOut == nil
}
