package punch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/chronotec/timeclock-backend-go/internal/domain/employee"
	"github.com/chronotec/timeclock-backend-go/internal/domain/punch"
)

type PunchServiceImpl struct {
	punchRepo    punch.PunchRepository
	employeeRepo employee.EmployeeRepository
	loc          *time.Location
	now          func() time.Time
}

func NewPunchService(punchRepo punch.PunchRepository, employeeRepo employee.EmployeeRepository, loc *time.Location) *PunchServiceImpl {
	return &PunchServiceImpl{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		loc:          loc,
		now:          time.Now,
	}
}

// Submit implements punch.PunchService. The NIP is the kiosk credential:
// the submitting employee is whoever's stored hash matches it.
func (s *PunchServiceImpl) Submit(ctx context.Context, req punch.SubmitRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	emp, err := s.matchByNIP(ctx, req.NIP)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	nowLocal := s.now().In(s.loc)
	workday := nowLocal.Format("2006-01-02")

	exists, err := s.punchRepo.HasDevicePunch(ctx, emp.ID, workday, req.Kind)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to check existing punch: %w", err)
	}
	if exists {
		return punch.PunchResponse{}, punch.ErrDuplicatePunch
	}

	created, err := s.punchRepo.Create(ctx, punch.Punch{
		EmployeeID: emp.ID,
		Kind:       req.Kind,
		Timestamp:  nowLocal,
		Workday:    workday,
		Source:     punch.SourceDevice,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		AccuracyM:  req.AccuracyM,
		DeviceID:   req.DeviceID,
		IP:         optional(req.IP),
		UserAgent:  req.UserAgent,
		CreatedBy:  emp.ID,
	})
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return punch.PunchResponse{
		ID:         created.ID,
		EmployeeID: created.EmployeeID,
		Kind:       created.Kind,
		Timestamp:  created.Timestamp.Format(time.RFC3339),
		Workday:    created.Workday,
		Source:     created.Source,
	}, nil
}

// matchByNIP compares the submitted NIP against every active employee's
// stored hash. The directory is small enough that the linear scan is fine,
// and it keeps plaintext NIPs out of the database.
func (s *PunchServiceImpl) matchByNIP(ctx context.Context, nip string) (employee.Employee, error) {
	active, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to list active employees: %w", err)
	}
	for _, emp := range active {
		if emp.NIPHash == nil {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(*emp.NIPHash), []byte(nip)) == nil {
			return emp, nil
		}
	}
	return employee.Employee{}, punch.ErrInvalidNIP
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
