package schedule

import "errors"

// Schedule domain errors
var (
	ErrScheduleNotFound = errors.New("work schedule not found")
	ErrRuleNotFound     = errors.New("weekday rule not found")
)
