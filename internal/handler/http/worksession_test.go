package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackforge/timetracker-backend/internal/domain/employee"
	"github.com/trackforge/timetracker-backend/internal/domain/worksession"
)

// fakeSessionService answers with canned results and records what it was
// asked, so the tests stay focused on HTTP translation.
type fakeSessionService struct {
	clockInResult  worksession.SessionResponse
	clockInErr     error
	clockOutResult worksession.SessionResponse
	clockOutErr    error
	sessions       []worksession.SessionResponse
	sessionsErr    error

	lastClockIn    worksession.ClockInRequest
	lastEmployeeID int64
	lastLimit      int
}

func (f *fakeSessionService) ClockIn(ctx context.Context, req worksession.ClockInRequest) (worksession.SessionResponse, error) {
	f.lastClockIn = req
	return f.clockInResult, f.clockInErr
}

func (f *fakeSessionService) ClockOut(ctx context.Context, req worksession.ClockOutRequest) (worksession.SessionResponse, error) {
	return f.clockOutResult, f.clockOutErr
}

func (f *fakeSessionService) Sessions(ctx context.Context, employeeID int64, limit int) ([]worksession.SessionResponse, error) {
	f.lastEmployeeID = employeeID
	f.lastLimit = limit
	return f.sessions, f.sessionsErr
}

func newSessionTestRouter(svc worksession.WorkSessionService) *chi.Mux {
	handler := NewWorkSessionHandler(svc)
	r := chi.NewRouter()
	r.Post("/worksession/clock-in", handler.ClockIn)
	r.Post("/worksession/clock-out", handler.ClockOut)
	r.Get("/worksession/{employeeID}", handler.List)
	return r
}

func TestClockInHandler_Created(t *testing.T) {
	svc := &fakeSessionService{
		clockInResult: worksession.SessionResponse{
			ID:       7,
			Employee: 1,
			ClockIn:  time.Now().UTC().Format(time.RFC3339),
		},
	}
	router := newSessionTestRouter(svc)

	body, _ := json.Marshal(map[string]interface{}{
		"employee_id": 1,
		"mac_address": "aa:bb:cc:dd:ee:ff",
	})
	req := httptest.NewRequest(http.MethodPost, "/worksession/clock-in", bytes.NewReader(body))
	req.RemoteAddr = "192.0.2.10:54321"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp worksession.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)

	// the handler pins the IP from the connection, not the body
	assert.Equal(t, "192.0.2.10", svc.lastClockIn.IPAddress)
}

func TestClockInHandler_AlreadyCheckedIn(t *testing.T) {
	svc := &fakeSessionService{clockInErr: worksession.ErrAlreadyClockedIn}
	router := newSessionTestRouter(svc)

	body, _ := json.Marshal(map[string]interface{}{"employee_id": 1})
	req := httptest.NewRequest(http.MethodPost, "/worksession/clock-in", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "Employee is already checked in"}`, rec.Body.String())
}

func TestClockInHandler_InvalidEmployee(t *testing.T) {
	svc := &fakeSessionService{clockInErr: worksession.ErrInvalidEmployee}
	router := newSessionTestRouter(svc)

	body, _ := json.Marshal(map[string]interface{}{"employee_id": 999})
	req := httptest.NewRequest(http.MethodPost, "/worksession/clock-in", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Invalid employee"}`, rec.Body.String())
}

func TestClockOutHandler_NoActiveSession(t *testing.T) {
	svc := &fakeSessionService{clockOutErr: worksession.ErrNoActiveSession}
	router := newSessionTestRouter(svc)

	body, _ := json.Marshal(map[string]interface{}{"employee_id": 1})
	req := httptest.NewRequest(http.MethodPost, "/worksession/clock-out", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "No active session found"}`, rec.Body.String())
}

func TestClockOutHandler_UnknownEmployee(t *testing.T) {
	svc := &fakeSessionService{clockOutErr: employee.ErrEmployeeNotFound}
	router := newSessionTestRouter(svc)

	body, _ := json.Marshal(map[string]interface{}{"employee_id": 999})
	req := httptest.NewRequest(http.MethodPost, "/worksession/clock-out", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Employee not found"}`, rec.Body.String())
}

func TestListSessionsHandler_LimitParsing(t *testing.T) {
	svc := &fakeSessionService{sessions: []worksession.SessionResponse{}}
	router := newSessionTestRouter(svc)

	cases := []struct {
		query     string
		wantLimit int
	}{
		{"", 0},
		{"?limit=3", 3},
		{"?limit=abc", 0}, // non-numeric limits are ignored
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, "/worksession/5"+c.query, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, "query %q", c.query)
		assert.Equal(t, int64(5), svc.lastEmployeeID)
		assert.Equal(t, c.wantLimit, svc.lastLimit, "query %q", c.query)
	}
}

func TestListSessionsHandler_BadEmployeeID(t *testing.T) {
	router := newSessionTestRouter(&fakeSessionService{})

	req := httptest.NewRequest(http.MethodGet, "/worksession/not-a-number", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Employee not found"}`, rec.Body.String())
}
