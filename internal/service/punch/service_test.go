package punch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/chronotec/timeclock-backend-go/internal/domain/employee"
	"github.com/chronotec/timeclock-backend-go/internal/domain/punch"
)

type fakePunchRepo struct {
	punches []punch.Punch
}

func (f *fakePunchRepo) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	p.ID = "punch-1"
	f.punches = append(f.punches, p)
	return p, nil
}

func (f *fakePunchRepo) ListByWorkdayRange(ctx context.Context, from, to string) ([]punch.Punch, error) {
	return f.punches, nil
}

func (f *fakePunchRepo) GetJustificationPunch(ctx context.Context, employeeID, workday, kind string) (*punch.Punch, error) {
	return nil, nil
}

func (f *fakePunchRepo) UpdateTimestamp(ctx context.Context, id string, ts time.Time) error {
	return nil
}

func (f *fakePunchRepo) HasDevicePunch(ctx context.Context, employeeID, workday, kind string) (bool, error) {
	for _, p := range f.punches {
		if p.EmployeeID == employeeID && p.Workday == workday && p.Kind == kind && p.Source == punch.SourceDevice {
			return true, nil
		}
	}
	return false, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.Status == employee.StatusActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) UpdateRole(ctx context.Context, id, role string) error     { return nil }
func (f *fakeEmployeeRepo) UpdateStatus(ctx context.Context, id, status string) error { return nil }
func (f *fakeEmployeeRepo) UpdateNIPHash(ctx context.Context, id, nipHash string) error {
	return nil
}

func hashNIP(t *testing.T, nip string) *string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(nip), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(hash)
	return &s
}

func newTestPunchService(t *testing.T, punches *fakePunchRepo, employees *fakeEmployeeRepo) *PunchServiceImpl {
	t.Helper()
	loc := time.FixedZone("CST", -6*3600)
	svc := NewPunchService(punches, employees, loc)
	// 2025-03-17 23:30 UTC is still 2025-03-17 17:30 in the business zone
	svc.now = func() time.Time {
		return time.Date(2025, 3, 17, 23, 30, 0, 0, time.UTC)
	}
	return svc
}

func TestPunchService_Submit_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	punches := &fakePunchRepo{}
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", Email: "ana@example.com", Status: employee.StatusActive, NIPHash: hashNIP(t, "1234")},
		{ID: "emp-2", Email: "bob@example.com", Status: employee.StatusActive, NIPHash: hashNIP(t, "5678")},
	}}
	svc := newTestPunchService(t, punches, employees)

	resp, err := svc.Submit(ctx, punch.SubmitRequest{Kind: punch.KindStartDay, NIP: "5678"})
	require.NoError(t, err)

	assert.Equal(t, "emp-2", resp.EmployeeID)
	assert.Equal(t, punch.KindStartDay, resp.Kind)
	assert.Equal(t, "2025-03-17", resp.Workday)
	assert.Equal(t, punch.SourceDevice, resp.Source)
}

func TestPunchService_Submit_WorkdayCrossesUTCMidnight(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	punches := &fakePunchRepo{}
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", Email: "ana@example.com", Status: employee.StatusActive, NIPHash: hashNIP(t, "1234")},
	}}
	svc := newTestPunchService(t, punches, employees)
	// 02:00 UTC on the 18th is still the 17th at the business offset
	svc.now = func() time.Time {
		return time.Date(2025, 3, 18, 2, 0, 0, 0, time.UTC)
	}

	resp, err := svc.Submit(ctx, punch.SubmitRequest{Kind: punch.KindEndDay, NIP: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-17", resp.Workday)
}

func TestPunchService_Submit_InvalidNIP(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", Email: "ana@example.com", Status: employee.StatusActive, NIPHash: hashNIP(t, "1234")},
	}}
	svc := newTestPunchService(t, &fakePunchRepo{}, employees)

	_, err := svc.Submit(ctx, punch.SubmitRequest{Kind: punch.KindStartDay, NIP: "0000"})
	assert.ErrorIs(t, err, punch.ErrInvalidNIP)
}

func TestPunchService_Submit_DisabledEmployeeRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", Email: "ana@example.com", Status: employee.StatusDisabled, NIPHash: hashNIP(t, "1234")},
	}}
	svc := newTestPunchService(t, &fakePunchRepo{}, employees)

	_, err := svc.Submit(ctx, punch.SubmitRequest{Kind: punch.KindStartDay, NIP: "1234"})
	assert.ErrorIs(t, err, punch.ErrInvalidNIP)
}

func TestPunchService_Submit_DuplicateKindRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", Email: "ana@example.com", Status: employee.StatusActive, NIPHash: hashNIP(t, "1234")},
	}}
	svc := newTestPunchService(t, &fakePunchRepo{}, employees)

	_, err := svc.Submit(ctx, punch.SubmitRequest{Kind: punch.KindStartDay, NIP: "1234"})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, punch.SubmitRequest{Kind: punch.KindStartDay, NIP: "1234"})
	assert.ErrorIs(t, err, punch.ErrDuplicatePunch)
}

func TestPunchService_Submit_ValidationErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestPunchService(t, &fakePunchRepo{}, &fakeEmployeeRepo{})

	_, err := svc.Submit(ctx, punch.SubmitRequest{Kind: "lunch", NIP: "1234"})
	assert.Error(t, err)

	_, err = svc.Submit(ctx, punch.SubmitRequest{Kind: punch.KindStartDay, NIP: "12"})
	assert.Error(t, err)
}
