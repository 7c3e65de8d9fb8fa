package worksession

import (
	"time"

	"github.com/trackforge/timetracker-backend/internal/pkg/validator"
)

type ClockInRequest struct {
	EmployeeID int64  `json:"employee_id"`
	MACAddress string `json:"mac_address"`
	IPAddress  string `json:"-"` // taken from the connection, not the body
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.MACAddress != "" && !validator.IsValidMACAddress(r.MACAddress) {
		errs = append(errs, validator.ValidationError{
			Field:   "mac_address",
			Message: "mac_address must be six hex octets",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	EmployeeID int64 `json:"employee_id"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SessionResponse struct {
	ID         int64   `json:"id"`
	Employee   int64   `json:"employee"`
	Project    *string `json:"project"`
	ClockIn    string  `json:"clock_in"`
	ClockOut   *string `json:"clock_out"`
	Duration   *int64  `json:"duration"`
	IPAddress  *string `json:"ip_address"`
	MACAddress *string `json:"mac_address"`
}

func NewSessionResponse(s WorkSession) SessionResponse {
	resp := SessionResponse{
		ID:         s.ID,
		Employee:   s.EmployeeID,
		Project:    s.ProjectName,
		ClockIn:    s.ClockIn.Format(time.RFC3339),
		Duration:   s.Duration,
		IPAddress:  s.IPAddress,
		MACAddress: s.MACAddress,
	}
	if s.ClockOut != nil {
		clockOut := s.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &clockOut
	}
	return resp
}

func NewSessionResponses(sessions []WorkSession) []SessionResponse {
	responses := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		responses = append(responses, NewSessionResponse(s))
	}
	return responses
}
