package schedule

import "context"

// WorkScheduleRepository defines data access methods for weekday rules.
// All methods include companyID to prevent cross-company data access.
type WorkScheduleRepository interface {
	// GetByEmployeeID returns the employee's schedule. A schedule with no
	// rules is returned as-is; callers decide how to degrade.
	GetByEmployeeID(ctx context.Context, employeeID string, companyID string) (WorkSchedule, error)

	// ReplaceRules replaces the employee's weekly rule set atomically.
	ReplaceRules(ctx context.Context, employeeID string, companyID string, rules []WeekdayRule) (WorkSchedule, error)

	// DeleteRule removes a single weekday rule.
	DeleteRule(ctx context.Context, employeeID string, companyID string, weekday int) error
}
