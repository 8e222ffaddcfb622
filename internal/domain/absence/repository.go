package absence

import (
	"context"

	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
)

// AbsenceRepository defines data access methods for the absence registry.
// All methods include companyID to prevent cross-company data access.
type AbsenceRepository interface {
	// Upsert inserts or replaces the absence keyed on (employee, date).
	Upsert(ctx context.Context, a Absence) (Absence, error)

	// ListByEmployeePeriod returns the employee's absences inside the
	// period, ordered by date.
	ListByEmployeePeriod(ctx context.Context, employeeID string, companyID string, period calendar.Period) ([]Absence, error)

	// Delete removes an absence by id.
	Delete(ctx context.Context, id string, companyID string) error
}
