package timesheet

import (
	"time"

	"github.com/obraflow/obraflow-backend-go/internal/domain/absence"
	"github.com/obraflow/obraflow-backend-go/internal/domain/holiday"
	"github.com/obraflow/obraflow-backend-go/internal/domain/punch"
	"github.com/obraflow/obraflow-backend-go/internal/domain/schedule"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
)

// Snapshot is the read-only input of one reconciliation run: one employee,
// one period, everything fetched up front. Reconcile and Project are pure
// functions of it, so reconciling the same snapshot twice yields identical
// results.
type Snapshot struct {
	EmployeeID string
	Period     calendar.Period

	// Today anchors the past/pending decision. It is a calendar date, never
	// a timestamp; callers derive it from the company timezone.
	Today calendar.Date

	// Location converts punch timestamps to minute-of-day values.
	Location *time.Location

	Schedule *schedule.WorkSchedule
	Punches  []punch.Punch
	Absences []absence.Absence
	Holidays holiday.Set

	// Warnings accumulated while assembling the snapshot (missing schedule,
	// holiday source down). Carried through to the projection.
	Warnings []string
}

// punchesByDay groups punches into per-date, per-type maps. The natural key
// guarantees at most one punch per slot; if the store ever returns
// duplicates, the last one wins, matching the upsert semantics.
func (s *Snapshot) punchesByDay() map[calendar.Date]map[punch.Type]punch.Punch {
	byDay := make(map[calendar.Date]map[punch.Type]punch.Punch)
	for _, p := range s.Punches {
		slots, ok := byDay[p.Date]
		if !ok {
			slots = make(map[punch.Type]punch.Punch, 4)
			byDay[p.Date] = slots
		}
		slots[p.Type] = p
	}
	return byDay
}

func (s *Snapshot) absencesByDay() map[calendar.Date]absence.Absence {
	byDay := make(map[calendar.Date]absence.Absence, len(s.Absences))
	for _, a := range s.Absences {
		byDay[a.Date] = a
	}
	return byDay
}
