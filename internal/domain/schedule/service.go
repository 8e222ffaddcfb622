package schedule

import "context"

// ScheduleService defines business logic for work schedules
type ScheduleService interface {
	// GetSchedule retrieves the weekly rule set for an employee
	GetSchedule(ctx context.Context, employeeID string) (WorkScheduleResponse, error)

	// UpsertSchedule replaces the weekly rule set for an employee
	UpsertSchedule(ctx context.Context, req UpsertScheduleRequest) (WorkScheduleResponse, error)

	// DeleteRule removes a single weekday rule from the employee's schedule
	DeleteRule(ctx context.Context, employeeID string, weekday int) error
}
