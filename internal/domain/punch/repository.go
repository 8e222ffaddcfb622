package punch

import (
	"context"

	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
)

// PunchRepository defines data access methods for the punch ledger.
// All methods include companyID to prevent cross-company data access.
type PunchRepository interface {
	// Upsert inserts or replaces the punch identified by its natural key
	// (employee, date, type). Repeated or out-of-order writes converge on
	// the last write.
	Upsert(ctx context.Context, p Punch) (Punch, error)

	// ListByEmployeePeriod returns every punch of the employee inside the
	// period, ordered by date then type.
	ListByEmployeePeriod(ctx context.Context, employeeID string, companyID string, period calendar.Period) ([]Punch, error)

	// ListByCompanyDate returns every punch of the company on one day.
	// Used by the nightly missing-punch sweep.
	ListByCompanyDate(ctx context.Context, companyID string, date calendar.Date) ([]Punch, error)

	// Delete removes the punch identified by its natural key.
	Delete(ctx context.Context, employeeID string, companyID string, date calendar.Date, punchType Type) error
}
