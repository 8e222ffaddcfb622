package absence

import "errors"

// Absence domain errors
var (
	ErrAbsenceNotFound = errors.New("absence record not found")
)
