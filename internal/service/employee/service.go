package employee

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"

	"github.com/chronotec/timeclock-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) (employee.ListResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ListResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := employee.ListResponse{Employees: make([]employee.EmployeeResponse, 0, len(employees))}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, toResponse(e))
	}
	return resp, nil
}

// SetRole implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SetRole(ctx context.Context, req employee.SetRoleRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.UpdateRole(ctx, req.EmployeeID, req.Role); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update role: %w", err)
	}

	updated, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(updated), nil
}

// SetStatus implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SetStatus(ctx context.Context, req employee.SetStatusRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.UpdateStatus(ctx, req.EmployeeID, req.Status); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update status: %w", err)
	}

	updated, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(updated), nil
}

// ResetNIP implements employee.EmployeeService. Only the bcrypt hash is
// stored; the plaintext appears once in the response and is never logged.
func (s *EmployeeServiceImpl) ResetNIP(ctx context.Context, employeeID string) (employee.ResetNIPResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return employee.ResetNIPResponse{}, err
	}

	nip, err := generateNIP()
	if err != nil {
		return employee.ResetNIPResponse{}, fmt.Errorf("failed to generate NIP: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(nip), bcrypt.DefaultCost)
	if err != nil {
		return employee.ResetNIPResponse{}, fmt.Errorf("failed to hash NIP: %w", err)
	}

	if err := s.employeeRepo.UpdateNIPHash(ctx, employeeID, string(hash)); err != nil {
		return employee.ResetNIPResponse{}, fmt.Errorf("failed to store NIP hash: %w", err)
	}

	return employee.ResetNIPResponse{EmployeeID: employeeID, NIP: nip}, nil
}

func generateNIP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:          e.ID,
		Email:       e.Email,
		DisplayName: e.DisplayName,
		Role:        e.Role,
		Status:      e.Status,
		HasNIP:      e.NIPHash != nil,
	}
}
