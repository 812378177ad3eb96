package http

import (
	"net/http"

	"github.com/chronotec/timeclock-backend-go/internal/domain/schedule"
	"github.com/chronotec/timeclock-backend-go/internal/handler/http/response"
)

const maxImportSize = 5 << 20 // 5MB

type ScheduleHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// Import handles POST /schedules/import with a multipart "file" field
func (h *scheduleHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		response.BadRequest(w, "invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "missing file field", nil)
		return
	}
	defer file.Close()

	result, err := h.scheduleService.Import(ctx, header.Filename, file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List handles GET /schedules
func (h *scheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.scheduleService.List(ctx)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
