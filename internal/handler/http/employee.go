package http

import (
	"encoding/json"
	"net/http"

	"github.com/chronotec/timeclock-backend-go/internal/domain/employee"
	"github.com/chronotec/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	SetRole(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	ResetNIP(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// List handles GET /employees
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.employeeService.List(ctx)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SetRole handles PUT /employees/{id}/role
func (h *employeeHandlerImpl) SetRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req employee.SetRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	result, err := h.employeeService.SetRole(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SetStatus handles PUT /employees/{id}/status
func (h *employeeHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req employee.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	result, err := h.employeeService.SetStatus(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ResetNIP handles POST /employees/{id}/reset-nip
func (h *employeeHandlerImpl) ResetNIP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.employeeService.ResetNIP(ctx, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
