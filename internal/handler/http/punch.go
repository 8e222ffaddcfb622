package http

import (
	"encoding/json"
	"net/http"

	"github.com/obraflow/obraflow-backend-go/internal/domain/punch"
	"github.com/obraflow/obraflow-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &punchHandlerImpl{
		punchService: punchService,
	}
}

// Upsert implements PunchHandler. PUT semantics: repeating the call with
// the same (employee, date, type) replaces the previous value.
func (h *punchHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req punch.UpsertPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.punchService.UpsertPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch recorded successfully", result)
}

// Delete implements PunchHandler.
func (h *punchHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	var req punch.DeletePunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.punchService.DeletePunch(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch deleted successfully", nil)
}
