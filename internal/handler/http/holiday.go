package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/obraflow/obraflow-backend-go/internal/domain/holiday"
	"github.com/obraflow/obraflow-backend-go/internal/handler/http/response"
)

type HolidayHandler interface {
	ListByYear(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	provider holiday.Provider
}

func NewHolidayHandler(provider holiday.Provider) HolidayHandler {
	return &holidayHandlerImpl{
		provider: provider,
	}
}

type holidayView struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// ListByYear implements HolidayHandler. Unlike the reconciliation path,
// this endpoint does not degrade: an unreachable source is reported.
func (h *holidayHandlerImpl) ListByYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1900 || year > 2200 {
		response.BadRequest(w, "Year must be a four digit number", nil)
		return
	}

	holidays, err := h.provider.Holidays(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	views := make([]holidayView, 0, len(holidays))
	for _, hd := range holidays {
		views = append(views, holidayView{
			Date: hd.Date.String(),
			Name: hd.Name,
		})
	}

	response.Success(w, views)
}
