package worksession

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackforge/timetracker-backend/internal/domain/employee"
	"github.com/trackforge/timetracker-backend/internal/domain/worksession"
)

type fakeEmployeeRepo struct {
	employees map[int64]employee.Employee
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[int64]employee.Employee)}
	for _, e := range employees {
		repo.employees[e.ID] = e
	}
	return repo
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	newEmployee.ID = int64(len(f.employees) + 1)
	f.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByAccountID(ctx context.Context, accountID int64) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.AccountID == accountID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	result := make([]employee.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// fakeSessionRepo mirrors the storage guarantees: at most one open session
// per employee, enforced on insert.
type fakeSessionRepo struct {
	sessions map[int64]worksession.WorkSession
	nextID   int64
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[int64]worksession.WorkSession), nextID: 1}
}

func (f *fakeSessionRepo) Create(ctx context.Context, newSession worksession.WorkSession) (worksession.WorkSession, error) {
	for _, s := range f.sessions {
		if s.EmployeeID == newSession.EmployeeID && s.ClockOut == nil {
			return worksession.WorkSession{}, worksession.ErrAlreadyClockedIn
		}
	}
	newSession.ID = f.nextID
	f.nextID++
	f.sessions[newSession.ID] = newSession
	return newSession, nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id int64) (worksession.WorkSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return worksession.WorkSession{}, worksession.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessionRepo) ListOpenByEmployee(ctx context.Context, employeeID int64) ([]worksession.WorkSession, error) {
	var open []worksession.WorkSession
	for _, s := range f.sessions {
		if s.EmployeeID == employeeID && s.ClockOut == nil {
			open = append(open, s)
		}
	}
	sort.Slice(open, func(i, j int) bool { return open[i].ClockIn.Before(open[j].ClockIn) })
	return open, nil
}

func (f *fakeSessionRepo) Close(ctx context.Context, id int64, clockOut time.Time, durationSeconds int64) (worksession.WorkSession, error) {
	s, ok := f.sessions[id]
	if !ok || s.ClockOut != nil {
		return worksession.WorkSession{}, worksession.ErrNoActiveSession
	}
	s.ClockOut = &clockOut
	s.Duration = &durationSeconds
	f.sessions[id] = s
	return s, nil
}

func (f *fakeSessionRepo) ListByEmployee(ctx context.Context, employeeID int64, limit int) ([]worksession.WorkSession, error) {
	var result []worksession.WorkSession
	for _, s := range f.sessions {
		if s.EmployeeID == employeeID {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ClockIn.After(result[j].ClockIn) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// openCount reports how many open sessions the employee has, bypassing the
// service layer.
func (f *fakeSessionRepo) openCount(employeeID int64) int {
	count := 0
	for _, s := range f.sessions {
		if s.EmployeeID == employeeID && s.ClockOut == nil {
			count++
		}
	}
	return count
}

func newTestService(sessionRepo *fakeSessionRepo, employeeRepo *fakeEmployeeRepo) worksession.WorkSessionService {
	return NewWorkSessionService(nil, sessionRepo, employeeRepo)
}

func testEmployee(id int64) employee.Employee {
	projectName := "Internal Tools"
	projectID := int64(7)
	return employee.Employee{
		ID:          id,
		AccountID:   id + 100,
		JobTitle:    "Developer",
		ProjectID:   &projectID,
		ProjectName: &projectName,
	}
}

func TestClockIn_Success(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessionRepo()
	svc := newTestService(sessions, newFakeEmployeeRepo(testEmployee(1)))

	resp, err := svc.ClockIn(ctx, worksession.ClockInRequest{
		EmployeeID: 1,
		MACAddress: "aa:bb:cc:dd:ee:ff",
		IPAddress:  "10.0.0.5",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.Employee)
	assert.Nil(t, resp.ClockOut)
	assert.Nil(t, resp.Duration)
	require.NotNil(t, resp.Project)
	assert.Equal(t, "Internal Tools", *resp.Project)
	require.NotNil(t, resp.IPAddress)
	assert.Equal(t, "10.0.0.5", *resp.IPAddress)
	assert.Equal(t, 1, sessions.openCount(1))
}

func TestClockIn_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeSessionRepo(), newFakeEmployeeRepo())

	_, err := svc.ClockIn(ctx, worksession.ClockInRequest{EmployeeID: 42})
	assert.ErrorIs(t, err, worksession.ErrInvalidEmployee)
}

func TestClockIn_AlreadyOpen(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessionRepo()
	svc := newTestService(sessions, newFakeEmployeeRepo(testEmployee(1)))

	_, err := svc.ClockIn(ctx, worksession.ClockInRequest{EmployeeID: 1})
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, worksession.ClockInRequest{EmployeeID: 1})
	assert.ErrorIs(t, err, worksession.ErrAlreadyClockedIn)
	assert.Equal(t, 1, sessions.openCount(1))
}

func TestClockIn_InvalidMAC(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeSessionRepo(), newFakeEmployeeRepo(testEmployee(1)))

	_, err := svc.ClockIn(ctx, worksession.ClockInRequest{
		EmployeeID: 1,
		MACAddress: "not-a-mac",
	})
	assert.Error(t, err)
}

func TestClockOut_Success(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessionRepo()
	svc := newTestService(sessions, newFakeEmployeeRepo(testEmployee(1)))

	_, err := svc.ClockIn(ctx, worksession.ClockInRequest{EmployeeID: 1})
	require.NoError(t, err)

	resp, err := svc.ClockOut(ctx, worksession.ClockOutRequest{EmployeeID: 1})
	require.NoError(t, err)

	require.NotNil(t, resp.ClockOut)
	require.NotNil(t, resp.Duration)
	assert.GreaterOrEqual(t, *resp.Duration, int64(0))
	assert.Equal(t, 0, sessions.openCount(1))
}

func TestClockOut_NoActiveSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeSessionRepo(), newFakeEmployeeRepo(testEmployee(1)))

	_, err := svc.ClockOut(ctx, worksession.ClockOutRequest{EmployeeID: 1})
	assert.ErrorIs(t, err, worksession.ErrNoActiveSession)
}

func TestClockOut_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeSessionRepo(), newFakeEmployeeRepo())

	_, err := svc.ClockOut(ctx, worksession.ClockOutRequest{EmployeeID: 99})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

// Closing twice in a row yields success then a conflict, never two closures.
func TestClockOut_SecondCallConflicts(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessionRepo()
	svc := newTestService(sessions, newFakeEmployeeRepo(testEmployee(1)))

	_, err := svc.ClockIn(ctx, worksession.ClockInRequest{EmployeeID: 1})
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, worksession.ClockOutRequest{EmployeeID: 1})
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, worksession.ClockOutRequest{EmployeeID: 1})
	assert.ErrorIs(t, err, worksession.ErrNoActiveSession)
}

// With multiple open sessions planted directly in storage, clock-out closes
// the one with the earliest clock_in.
func TestClockOut_ClosesEarliestOpen(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessionRepo()
	svc := newTestService(sessions, newFakeEmployeeRepo(testEmployee(1)))

	now := time.Now().UTC()
	early := worksession.WorkSession{ID: 10, EmployeeID: 1, ClockIn: now.Add(-2 * time.Hour)}
	late := worksession.WorkSession{ID: 11, EmployeeID: 1, ClockIn: now.Add(-1 * time.Hour)}
	sessions.sessions[early.ID] = early
	sessions.sessions[late.ID] = late
	sessions.nextID = 12

	resp, err := svc.ClockOut(ctx, worksession.ClockOutRequest{EmployeeID: 1})
	require.NoError(t, err)

	assert.Equal(t, early.ID, resp.ID)
	stored, err := sessions.GetByID(ctx, late.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ClockOut)
}

func TestClockOut_DurationWholeSeconds(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessionRepo()
	svc := newTestService(sessions, newFakeEmployeeRepo(testEmployee(1)))

	clockIn := time.Now().UTC().Add(-(90*time.Minute + 500*time.Millisecond))
	sessions.sessions[1] = worksession.WorkSession{ID: 1, EmployeeID: 1, ClockIn: clockIn}
	sessions.nextID = 2

	resp, err := svc.ClockOut(ctx, worksession.ClockOutRequest{EmployeeID: 1})
	require.NoError(t, err)

	require.NotNil(t, resp.Duration)
	// 90 minutes and change, truncated to whole seconds
	assert.GreaterOrEqual(t, *resp.Duration, int64(5400))
	assert.Less(t, *resp.Duration, int64(5402))
}

func TestSessions_NewestFirstAndLimited(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessionRepo()
	svc := newTestService(sessions, newFakeEmployeeRepo(testEmployee(1)))

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		id := int64(i + 1)
		sessions.sessions[id] = worksession.WorkSession{
			ID:         id,
			EmployeeID: 1,
			ClockIn:    now.Add(-time.Duration(5-i) * time.Hour),
		}
	}
	sessions.nextID = 6

	all, err := svc.Sessions(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		prev, err := time.Parse(time.RFC3339, all[i-1].ClockIn)
		require.NoError(t, err)
		cur, err := time.Parse(time.RFC3339, all[i].ClockIn)
		require.NoError(t, err)
		assert.False(t, cur.After(prev))
	}

	limited, err := svc.Sessions(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
	assert.Equal(t, all[0].ID, limited[0].ID)
}

func TestSessions_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeSessionRepo(), newFakeEmployeeRepo())

	_, err := svc.Sessions(ctx, 123, 0)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
