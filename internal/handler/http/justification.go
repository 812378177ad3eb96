package http

import (
	"encoding/json"
	"net/http"

	"github.com/chronotec/timeclock-backend-go/internal/domain/justification"
	"github.com/chronotec/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/chronotec/timeclock-backend-go/internal/handler/http/response"
)

const maxEvidenceUpload = 10 << 20 // 10MB

type JustificationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UploadEvidence(w http.ResponseWriter, r *http.Request)
}

type justificationHandlerImpl struct {
	justificationService justification.JustificationService
}

func NewJustificationHandler(justificationService justification.JustificationService) JustificationHandler {
	return &justificationHandlerImpl{
		justificationService: justificationService,
	}
}

// Create handles POST /justifications
func (h *justificationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req justification.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	req.CreatedBy = middleware.Subject(r)

	result, err := h.justificationService.Create(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "justification recorded", result)
}

// List handles GET /justifications
func (h *justificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := justification.ListFilter{
		From: q.Get("from"),
		To:   q.Get("to"),
	}
	if ids, ok := q["employee_id"]; ok {
		filter.EmployeeIDs = ids
	}

	result, err := h.justificationService.List(ctx, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UploadEvidence handles POST /justifications/evidence with a multipart
// "file" field plus "employee_id" and "day" form values
func (h *justificationHandlerImpl) UploadEvidence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxEvidenceUpload); err != nil {
		response.BadRequest(w, "invalid multipart form", nil)
		return
	}

	employeeID := r.FormValue("employee_id")
	day := r.FormValue("day")
	if employeeID == "" || day == "" {
		response.BadRequest(w, "employee_id and day are required", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "missing file field", nil)
		return
	}
	defer file.Close()

	result, err := h.justificationService.UploadEvidence(ctx, employeeID, day, header.Filename, header.Size, file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "evidence stored", result)
}
