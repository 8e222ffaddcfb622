package timesheet

import "errors"

// Timesheet domain errors. Only identity problems are fatal; every other
// condition degrades into a warning on the result.
var (
	ErrEmployeeRequired = errors.New("employee identity is required")
	ErrInvalidPeriod    = errors.New("invalid reconciliation period")
)

// Warning texts attached to degraded results.
const (
	WarnMissingSchedule    = "employee has no work schedule; all days treated as not applicable"
	WarnHolidaysUnavailable = "holiday calendar unavailable; assuming no holidays"
)
