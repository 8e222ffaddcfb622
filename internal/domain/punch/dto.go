package punch

import (
	"github.com/obraflow/obraflow-backend-go/internal/pkg/validator"
)

// UpsertPunchRequest is a manual punch edit routed back from the grid.
// The write is an idempotent upsert keyed on (employee, date, type).
type UpsertPunchRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`      // YYYY-MM-DD
	Type       string `json:"type"`      // entry | break_start | break_end | exit
	Timestamp  string `json:"timestamp"` // RFC3339
}

func (r *UpsertPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of entry, break_start, break_end, exit",
		})
	}

	if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be a valid RFC3339 datetime",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeletePunchRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Type       string `json:"type"`
}

func (r *DeletePunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of entry, break_start, break_end, exit",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	Date           string  `json:"date"`
	Type           string  `json:"type"`
	Timestamp      string  `json:"timestamp"`
	ManuallyEdited bool    `json:"manually_edited"`
	EditedBy       *string `json:"edited_by,omitempty"`
}
