package http

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/chronotec/timeclock-backend-go/internal/domain/punch"
	"github.com/chronotec/timeclock-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &punchHandlerImpl{
		punchService: punchService,
	}
}

// Submit handles POST /punches. This is the kiosk endpoint; the caller
// authenticates with a NIP in the body, not a token.
func (h *punchHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req punch.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	req.IP = clientIP(r)
	if req.UserAgent == nil {
		if ua := r.UserAgent(); ua != "" {
			req.UserAgent = &ua
		}
	}

	result, err := h.punchService.Submit(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "punch recorded", result)
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
