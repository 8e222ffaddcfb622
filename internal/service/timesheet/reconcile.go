package timesheet

import (
	"github.com/obraflow/obraflow-backend-go/internal/domain/absence"
	"github.com/obraflow/obraflow-backend-go/internal/domain/punch"
	"github.com/obraflow/obraflow-backend-go/internal/domain/timesheet"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
)

// punchOrder is the canonical slot order of a day's punches. Ledger output
// and audit notes follow it so repeated runs are byte-identical.
var punchOrder = []punch.Type{
	punch.TypeEntry,
	punch.TypeBreakStart,
	punch.TypeBreakEnd,
	punch.TypeExit,
}

// Reconcile classifies every calendar day of the snapshot's period and
// computes its worked duration. It never returns an error: degraded inputs
// (no schedule, no holidays) were already turned into warnings upstream.
func Reconcile(s *Snapshot) []timesheet.DayLedger {
	punches := s.punchesByDay()
	absences := s.absencesByDay()

	days := s.Period.Days()
	ledgers := make([]timesheet.DayLedger, 0, len(days))
	for _, day := range days {
		ledgers = append(ledgers, reconcileDay(s, day, punches[day], absences))
	}
	return ledgers
}

func reconcileDay(s *Snapshot, day calendar.Date, slots map[punch.Type]punch.Punch, absences map[calendar.Date]absence.Absence) timesheet.DayLedger {
	ledger := timesheet.DayLedger{
		Date:      day,
		Weekday:   day.Weekday(),
		IsWeekend: day.IsWeekend(),
		IsHoliday: s.Holidays.Contains(day),
	}

	for _, t := range punchOrder {
		if p, ok := slots[t]; ok {
			ledger.Punches = append(ledger.Punches, p)
		}
	}
	if a, ok := absences[day]; ok {
		ledger.Absence = &a
	}

	rule := s.Schedule.RuleFor(ledger.Weekday)
	_, _, windowOK := rule.Window()
	ledger.IsRequiredWorkday = !ledger.IsWeekend && !ledger.IsHoliday && windowOK

	worked, overtime := punchArithmetic(s, &ledger, slots, rule)
	ledger.WorkedMinutes = worked
	ledger.OvertimeMinutes = overtime

	switch {
	case !ledger.IsRequiredWorkday:
		// Weekends, holidays and rule-less days are never flagged.
		ledger.Status = timesheet.StatusNotApplicable
		ledger.ScheduledMinutes = 0
	case ledger.Absence != nil:
		ledger.Status = timesheet.StatusSatisfied
		ledger.ExcusedByAbsence = true
		ledger.ScheduledMinutes = rule.ScheduledMinutes()
	case punchesComplete(slots, rule):
		ledger.Status = timesheet.StatusSatisfied
		ledger.ScheduledMinutes = rule.ScheduledMinutes()
	case day.Before(s.Today):
		ledger.Status = timesheet.StatusMissing
		ledger.ScheduledMinutes = rule.ScheduledMinutes()
	default:
		// Today or future: not yet due.
		ledger.Status = timesheet.StatusPending
		ledger.ScheduledMinutes = rule.ScheduledMinutes()
	}

	ledger.Observations = append(ledger.Observations, auditNotes(ledger.Punches)...)

	return ledger
}

// punchAt returns the day's punch of the given type, treating a punch with
// a zero timestamp as absent rather than failing the day.
func punchAt(slots map[punch.Type]punch.Punch, t punch.Type) (punch.Punch, bool) {
	p, ok := slots[t]
	if !ok || p.PunchedAt.IsZero() {
		return punch.Punch{}, false
	}
	return p, true
}

// punchesComplete implements the completeness rule: entry and exit present,
// and when the rule defines a break window, both break punches present too.
func punchesComplete(slots map[punch.Type]punch.Punch, rule ruleWindower) bool {
	if _, ok := punchAt(slots, punch.TypeEntry); !ok {
		return false
	}
	if _, ok := punchAt(slots, punch.TypeExit); !ok {
		return false
	}
	if _, _, breakRequired := rule.BreakWindow(); breakRequired {
		if _, ok := punchAt(slots, punch.TypeBreakStart); !ok {
			return false
		}
		if _, ok := punchAt(slots, punch.TypeBreakEnd); !ok {
			return false
		}
	}
	return true
}

// ruleWindower is the slice of the WeekdayRule surface the arithmetic needs.
type ruleWindower interface {
	Window() (calendar.Clock, calendar.Clock, bool)
	BreakWindow() (calendar.Clock, calendar.Clock, bool)
	ScheduledMinutes() int
}

// punchArithmetic computes the worked and overtime minutes of one day.
//
// Worked minutes need an entry and an exit; the break span is subtracted
// only when both break punches exist, and the result is clamped at zero.
// Cross-midnight pairs (exit at or before entry) are rejected: worked stays
// zero and the day carries an observation. Overtime is the punched duration
// outside the required window, or the whole punched duration on a day that
// is not a required workday.
func punchArithmetic(s *Snapshot, ledger *timesheet.DayLedger, slots map[punch.Type]punch.Punch, rule ruleWindower) (worked, overtime int) {
	entryPunch, hasEntry := punchAt(slots, punch.TypeEntry)
	exitPunch, hasExit := punchAt(slots, punch.TypeExit)

	var entryMin, exitMin int
	if hasEntry {
		entryMin = calendar.ClockOf(entryPunch.PunchedAt, s.Location).Minutes()
	}
	if hasExit {
		exitMin = calendar.ClockOf(exitPunch.PunchedAt, s.Location).Minutes()
	}

	if hasEntry && hasExit {
		if exitMin <= entryMin {
			ledger.Observations = append(ledger.Observations, timesheet.AuditNote{
				Note: "saída anterior à entrada; dia desconsiderado no cálculo de horas",
			})
		} else {
			worked = exitMin - entryMin
			bs, hasBS := punchAt(slots, punch.TypeBreakStart)
			be, hasBE := punchAt(slots, punch.TypeBreakEnd)
			if hasBS && hasBE {
				bsMin := calendar.ClockOf(bs.PunchedAt, s.Location).Minutes()
				beMin := calendar.ClockOf(be.PunchedAt, s.Location).Minutes()
				worked -= beMin - bsMin
				if worked < 0 {
					worked = 0
				}
			}
		}
	}

	schedEntry, schedExit, windowOK := rule.Window()
	requiredDay := !ledger.IsWeekend && !ledger.IsHoliday && windowOK

	if !requiredDay {
		// Any punched duration on a free day is overtime.
		overtime = worked
		return worked, overtime
	}

	if hasEntry && entryMin < schedEntry.Minutes() {
		overtime += schedEntry.Minutes() - entryMin
	}
	if hasExit && exitMin > schedExit.Minutes() {
		overtime += exitMin - schedExit.Minutes()
	}
	return worked, overtime
}

// auditNotes builds the observation log for manually edited punches in
// canonical order, skipping duplicates.
func auditNotes(punches []punch.Punch) []timesheet.AuditNote {
	var notes []timesheet.AuditNote
	seen := map[string]bool{}
	for _, p := range punches {
		if !p.ManuallyEdited {
			continue
		}
		note := timesheet.AuditNote{Field: p.Type.FieldLabel()}
		if p.EditedBy != nil {
			note.EditedBy = *p.EditedBy
		}
		rendered := note.String()
		if seen[rendered] {
			continue
		}
		seen[rendered] = true
		notes = append(notes, note)
	}
	return notes
}
