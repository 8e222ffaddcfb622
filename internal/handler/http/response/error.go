package response

import (
	"errors"
	"net/http"

	"github.com/obraflow/obraflow-backend-go/internal/domain/absence"
	"github.com/obraflow/obraflow-backend-go/internal/domain/employee"
	"github.com/obraflow/obraflow-backend-go/internal/domain/holiday"
	"github.com/obraflow/obraflow-backend-go/internal/domain/punch"
	"github.com/obraflow/obraflow-backend-go/internal/domain/schedule"
	"github.com/obraflow/obraflow-backend-go/internal/domain/timesheet"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, schedule.ErrRuleNotFound):
		NotFound(w, "Weekday rule not found")

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch not found")
	case errors.Is(err, punch.ErrInvalidType):
		BadRequest(w, "Invalid punch type", nil)

	// Absence domain errors
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence not found")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrEmployeeRequired):
		BadRequest(w, "Employee is required", nil)
	case errors.Is(err, timesheet.ErrInvalidPeriod):
		BadRequest(w, "Period must be in YYYY-MM format", nil)

	// Holiday provider errors
	case errors.Is(err, holiday.ErrSourceUnavailable):
		ServiceUnavailable(w, "Holiday calendar is unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
