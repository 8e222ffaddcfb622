package timesheet

import "context"

// TimesheetService defines the read side of the reconciliation engine:
// everything is recomputed from a fresh snapshot on each call.
type TimesheetService interface {
	// GetEmployeeTimesheet reconciles one employee over a calendar month
	// ("YYYY-MM") and returns the per-day grid plus the projection.
	GetEmployeeTimesheet(ctx context.Context, employeeID string, month string) (TimesheetResponse, error)

	// GetPayrollAudit reconciles every active employee of the company over
	// a calendar month and returns one audit row per employee.
	GetPayrollAudit(ctx context.Context, month string) (PayrollAuditResponse, error)
}
