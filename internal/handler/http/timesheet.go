package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/obraflow/obraflow-backend-go/internal/domain/timesheet"
	"github.com/obraflow/obraflow-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	GetEmployeeTimesheet(w http.ResponseWriter, r *http.Request)
	GetPayrollAudit(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// GetEmployeeTimesheet implements TimesheetHandler. The month query param
// selects the period; it defaults to the current month when absent, which
// the service resolves.
func (h *timesheetHandlerImpl) GetEmployeeTimesheet(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	month := r.URL.Query().Get("month")

	result, err := h.timesheetService.GetEmployeeTimesheet(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPayrollAudit implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetPayrollAudit(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.timesheetService.GetPayrollAudit(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
