package justification

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronotec/timeclock-backend-go/internal/domain/employee"
	"github.com/chronotec/timeclock-backend-go/internal/domain/justification"
	"github.com/chronotec/timeclock-backend-go/internal/domain/punch"
)

type fakeTxRunner struct {
	calls int
}

func (f *fakeTxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeJustificationRepo struct {
	items []justification.Justification
}

func (f *fakeJustificationRepo) Create(ctx context.Context, j justification.Justification) (justification.Justification, error) {
	j.ID = "just-1"
	j.CreatedAt = time.Now()
	f.items = append(f.items, j)
	return j, nil
}

func (f *fakeJustificationRepo) ListApproved(ctx context.Context, from, to string, employeeIDs []string) ([]justification.Justification, error) {
	return f.items, nil
}

func (f *fakeJustificationRepo) List(ctx context.Context, filter justification.ListFilter) ([]justification.Justification, error) {
	return f.items, nil
}

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
	for i := range f.punches {
		p := f.punches[i]
		if p.EmployeeID == employeeID && p.Workday == workday && p.Kind == kind && p.Source == punch.SourceJustification {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePunchRepo) UpdateTimestamp(ctx context.Context, id string, ts time.Time) error {
	for i := range f.punches {
		if f.punches[i].ID == id {
			f.punches[i].Timestamp = ts
			return nil
		}
	}
	return punch.ErrPunchNotFound
}

func (f *fakePunchRepo) HasDevicePunch(ctx context.Context, employeeID, workday, kind string) (bool, error) {
	return false, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
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

type fakeStorage struct {
	uploaded map[string][]byte
}

func (f *fakeStorage) Upload(ctx context.Context, file io.Reader, path string) (string, error) {
	if f.uploaded == nil {
		f.uploaded = make(map[string][]byte)
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	f.uploaded[path] = data
	return path, nil
}

func (f *fakeStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.uploaded[path])), nil
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error       { return nil }
func (f *fakeStorage) Exists(ctx context.Context, path string) (bool, error) { return false, nil }

var testLoc = time.FixedZone("CST", -6*3600)

func newTestService(tx *fakeTxRunner, justifications *fakeJustificationRepo, punches *fakePunchRepo, employees *fakeEmployeeRepo, files *fakeStorage) justification.JustificationService {
	return NewJustificationService(tx, justifications, punches, employees, files, testLoc)
}

func validCreateRequest() justification.CreateRequest {
	return justification.CreateRequest{
		EmployeeID: "emp-1",
		Day:        "2025-03-17",
		Field:      punch.KindEndDay,
		NewTime:    "17:00",
		CreatedBy:  "admin-1",
	}
}

func TestJustificationService_Create_InsertsReflectedPunch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tx := &fakeTxRunner{}
	punches := &fakePunchRepo{}
	svc := newTestService(tx, &fakeJustificationRepo{}, punches, &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", Email: "ana@example.com"},
	}}, &fakeStorage{})

	resp, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "inserted", resp.PunchMode)
	assert.Equal(t, justification.StatusApproved, resp.Justification.Status)
	assert.Equal(t, 1, tx.calls)

	require.Len(t, punches.punches, 1)
	reflected := punches.punches[0]
	assert.Equal(t, punch.SourceJustification, reflected.Source)
	assert.Equal(t, "2025-03-17", reflected.Workday)
	assert.Equal(t, "admin-1", reflected.CreatedBy)
	want := time.Date(2025, 3, 17, 17, 0, 0, 0, testLoc)
	assert.Equal(t, want.Unix(), reflected.Timestamp.Unix())
}

func TestJustificationService_Create_UpdatesExistingReflectedPunch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	punches := &fakePunchRepo{punches: []punch.Punch{{
		ID:         "punch-old",
		EmployeeID: "emp-1",
		Kind:       punch.KindEndDay,
		Workday:    "2025-03-17",
		Source:     punch.SourceJustification,
		Timestamp:  time.Date(2025, 3, 17, 16, 0, 0, 0, testLoc),
		CreatedBy:  "admin-0",
	}}}
	svc := newTestService(&fakeTxRunner{}, &fakeJustificationRepo{}, punches, &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", Email: "ana@example.com"},
	}}, &fakeStorage{})

	resp, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "updated", resp.PunchMode)
	assert.Equal(t, "punch-old", resp.PunchID)

	// Only the timestamp moved; the original creator stays
	require.Len(t, punches.punches, 1)
	assert.Equal(t, "admin-0", punches.punches[0].CreatedBy)
	want := time.Date(2025, 3, 17, 17, 0, 0, 0, testLoc)
	assert.Equal(t, want.Unix(), punches.punches[0].Timestamp.Unix())
}

func TestJustificationService_Create_UnknownEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(&fakeTxRunner{}, &fakeJustificationRepo{}, &fakePunchRepo{}, &fakeEmployeeRepo{}, &fakeStorage{})

	_, err := svc.Create(ctx, validCreateRequest())
	assert.ErrorIs(t, err, justification.ErrEmployeeNotFound)
}

func TestJustificationService_Create_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(&fakeTxRunner{}, &fakeJustificationRepo{}, &fakePunchRepo{}, &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", Email: "ana@example.com"},
	}}, &fakeStorage{})

	req := validCreateRequest()
	req.NewTime = "25:99"
	_, err := svc.Create(ctx, req)
	assert.Error(t, err)

	req = validCreateRequest()
	req.Field = "lunch"
	_, err = svc.Create(ctx, req)
	assert.Error(t, err)
}

func TestJustificationService_UploadEvidence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	files := &fakeStorage{}
	svc := newTestService(&fakeTxRunner{}, &fakeJustificationRepo{}, &fakePunchRepo{}, &fakeEmployeeRepo{}, files)

	resp, err := svc.UploadEvidence(ctx, "emp-1", "2025-03-17", "receta.pdf", 128, strings.NewReader("evidence"))
	require.NoError(t, err)
	assert.Contains(t, resp.Path, "justifications/emp-1/2025-03-17-")
	assert.Contains(t, files.uploaded, resp.Path)

	_, err = svc.UploadEvidence(ctx, "emp-1", "2025-03-17", "virus.exe", 128, strings.NewReader("x"))
	assert.ErrorIs(t, err, justification.ErrEvidenceBadType)

	_, err = svc.UploadEvidence(ctx, "emp-1", "2025-03-17", "huge.png", 11<<20, strings.NewReader("x"))
	assert.ErrorIs(t, err, justification.ErrEvidenceTooLarge)
}
