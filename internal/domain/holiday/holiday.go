package holiday

import (
	"context"
	"errors"

	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
)

// ErrSourceUnavailable signals that the external calendar could not be
// reached. Callers degrade to an empty set and surface a warning; the
// reconciliation itself never fails because of it.
var ErrSourceUnavailable = errors.New("holiday source unavailable")

// Holiday is one public holiday date as supplied by the external calendar.
type Holiday struct {
	Date calendar.Date
	Name string
}

// Set answers "is this date a holiday" for the dates it was built from.
type Set map[calendar.Date]Holiday

func NewSet(holidays []Holiday) Set {
	s := make(Set, len(holidays))
	for _, h := range holidays {
		s[h.Date] = h
	}
	return s
}

// Contains reports whether the date is a public holiday.
func (s Set) Contains(d calendar.Date) bool {
	if s == nil {
		return false
	}
	_, ok := s[d]
	return ok
}

// Provider supplies the public holidays of a calendar year.
type Provider interface {
	Holidays(ctx context.Context, year int) ([]Holiday, error)
}
