package http

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"

	"github.com/trackforge/timetracker-backend/internal/domain/worksession"
	"github.com/trackforge/timetracker-backend/internal/handler/http/response"
)

type WorkSessionHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type workSessionHandlerImpl struct {
	sessionService worksession.WorkSessionService
}

func NewWorkSessionHandler(sessionService worksession.WorkSessionService) WorkSessionHandler {
	return &workSessionHandlerImpl{sessionService: sessionService}
}

// clientIP returns the caller's address without the port. The RealIP
// middleware has already folded X-Forwarded-For into RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ClockIn implements WorkSessionHandler.
func (h *workSessionHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req worksession.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.IPAddress = clientIP(r)

	result, err := h.sessionService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result)
}

// ClockOut implements WorkSessionHandler.
func (h *workSessionHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req worksession.ClockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := h.sessionService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements WorkSessionHandler.
func (h *workSessionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(r, "employeeID")
	if !ok {
		response.NotFound(w, "Employee not found")
		return
	}

	// A non-numeric limit is ignored rather than rejected.
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	results, err := h.sessionService.Sessions(r.Context(), employeeID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
