package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/obraflow/obraflow-backend-go/internal/domain/absence"
	"github.com/obraflow/obraflow-backend-go/internal/handler/http/response"
)

type AbsenceHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type absenceHandlerImpl struct {
	absenceService absence.AbsenceService
}

func NewAbsenceHandler(absenceService absence.AbsenceService) AbsenceHandler {
	return &absenceHandlerImpl{
		absenceService: absenceService,
	}
}

// Upsert implements AbsenceHandler. PUT semantics: at most one absence
// per (employee, date); repeating the call replaces the previous record.
func (h *absenceHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req absence.UpsertAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.absenceService.UpsertAbsence(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence recorded successfully", result)
}

// Delete implements AbsenceHandler.
func (h *absenceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "absenceID")

	if err := h.absenceService.DeleteAbsence(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence deleted successfully", nil)
}
