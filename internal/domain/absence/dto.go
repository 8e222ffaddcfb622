package absence

import (
	"github.com/obraflow/obraflow-backend-go/internal/pkg/validator"
)

type UpsertAbsenceRequest struct {
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"` // YYYY-MM-DD
	AbsenceTypeID string  `json:"absence_type_id"`
	CreditedHours float64 `json:"credited_hours"`
}

func (r *UpsertAbsenceRequest) Validate() error {
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

	if validator.IsEmpty(r.AbsenceTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "absence_type_id",
			Message: "absence_type_id is required",
		})
	}

	if r.CreditedHours < 0 || r.CreditedHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "credited_hours",
			Message: "credited_hours must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AbsenceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	AbsenceTypeID string  `json:"absence_type_id"`
	CreditedHours float64 `json:"credited_hours"`
	CreatedBy     string  `json:"created_by"`
}
