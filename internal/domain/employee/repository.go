package employee

import "context"

// EmployeeRepository defines data access methods for employees.
// All methods include companyID to prevent cross-company data access.
type EmployeeRepository interface {
	// GetByID retrieves an employee with company isolation
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	// GetActiveByCompanyID retrieves every active employee of the company,
	// ordered by full name. Used by the payroll audit view.
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)

	// ListCompanyIDs returns the distinct companies that have at least one
	// active employee. Used by cron jobs that walk every tenant.
	ListCompanyIDs(ctx context.Context) ([]string, error)
}
