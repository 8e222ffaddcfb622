package punch

import "errors"

// Punch domain errors
var (
	ErrPunchNotFound = errors.New("punch record not found")
	ErrInvalidType   = errors.New("invalid punch type")
)
