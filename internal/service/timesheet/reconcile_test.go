package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obraflow/obraflow-backend-go/internal/domain/absence"
	"github.com/obraflow/obraflow-backend-go/internal/domain/holiday"
	"github.com/obraflow/obraflow-backend-go/internal/domain/punch"
	"github.com/obraflow/obraflow-backend-go/internal/domain/schedule"
	"github.com/obraflow/obraflow-backend-go/internal/domain/timesheet"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
)

func strPtr(s string) *string { return &s }

// weekdaySchedule builds a Monday-Friday 08:00-17:00 schedule with a
// 12:00-13:00 break.
func weekdaySchedule() *schedule.WorkSchedule {
	s := &schedule.WorkSchedule{EmployeeID: "emp-1", CompanyID: "co-1"}
	for wd := 1; wd <= 5; wd++ {
		s.Rules = append(s.Rules, schedule.WeekdayRule{
			Weekday:    wd,
			Entry:      strPtr("08:00"),
			Exit:       strPtr("17:00"),
			BreakStart: strPtr("12:00"),
			BreakEnd:   strPtr("13:00"),
		})
	}
	return s
}

// punchOn builds a punch at the given local "HH:MM" on a date (UTC).
func punchOn(d calendar.Date, pt punch.Type, hhmm string) punch.Punch {
	c, ok := calendar.ParseClock(hhmm)
	if !ok {
		panic("bad clock in test: " + hhmm)
	}
	return punch.Punch{
		CompanyID:  "co-1",
		EmployeeID: "emp-1",
		Date:       d,
		Type:       pt,
		PunchedAt:  time.Date(d.Year, d.Month, d.Day, c.Minutes()/60, c.Minutes()%60, 0, 0, time.UTC),
	}
}

func fullDay(d calendar.Date, entry, breakStart, breakEnd, exit string) []punch.Punch {
	return []punch.Punch{
		punchOn(d, punch.TypeEntry, entry),
		punchOn(d, punch.TypeBreakStart, breakStart),
		punchOn(d, punch.TypeBreakEnd, breakEnd),
		punchOn(d, punch.TypeExit, exit),
	}
}

func marchSnapshot(today calendar.Date) *Snapshot {
	return &Snapshot{
		EmployeeID: "emp-1",
		Period:     calendar.MonthPeriod(2025, time.March),
		Today:      today,
		Location:   time.UTC,
		Schedule:   weekdaySchedule(),
		Holidays:   holiday.Set{},
	}
}

func ledgerFor(t *testing.T, days []timesheet.DayLedger, d calendar.Date) timesheet.DayLedger {
	t.Helper()
	for _, l := range days {
		if l.Date.Equal(d) {
			return l
		}
	}
	t.Fatalf("no ledger for %s", d)
	return timesheet.DayLedger{}
}

func TestReconcileWorkedMinutesWithBreak(t *testing.T) {
	monday := calendar.NewDate(2025, time.March, 3)
	s := marchSnapshot(calendar.NewDate(2025, time.March, 15))
	s.Punches = fullDay(monday, "08:05", "12:00", "13:10", "17:00")

	days := Reconcile(s)
	day := ledgerFor(t, days, monday)

	// 08:05 to 17:00 is 535 minutes; the punched break 12:00-13:10 removes 70.
	assert.Equal(t, 465, day.WorkedMinutes)
	assert.Equal(t, timesheet.StatusSatisfied, day.Status)
	assert.True(t, day.IsRequiredWorkday)
	assert.Equal(t, 480, day.ScheduledMinutes)
}

func TestReconcileWorkedMinutesWithoutBreakPunches(t *testing.T) {
	// No break punches at all: nothing is deducted even though the rule
	// defines a break, but the day stays incomplete.
	monday := calendar.NewDate(2025, time.March, 3)
	s := marchSnapshot(calendar.NewDate(2025, time.March, 15))
	s.Punches = []punch.Punch{
		punchOn(monday, punch.TypeEntry, "09:10"),
		punchOn(monday, punch.TypeExit, "13:00"),
	}

	day := ledgerFor(t, Reconcile(s), monday)
	assert.Equal(t, 230, day.WorkedMinutes)
	assert.Equal(t, timesheet.StatusMissing, day.Status)
}

func TestReconcileBreakRequiredForCompleteness(t *testing.T) {
	monday := calendar.NewDate(2025, time.March, 3)
	s := marchSnapshot(calendar.NewDate(2025, time.March, 15))
	s.Punches = []punch.Punch{
		punchOn(monday, punch.TypeEntry, "08:00"),
		punchOn(monday, punch.TypeBreakStart, "12:00"),
		punchOn(monday, punch.TypeExit, "17:00"),
	}

	day := ledgerFor(t, Reconcile(s), monday)
	// Break end missing: half a break pair deducts nothing and the day is
	// incomplete.
	assert.Equal(t, 540, day.WorkedMinutes)
	assert.Equal(t, timesheet.StatusMissing, day.Status)
}

func TestReconcileWeekendAndHolidayNotApplicable(t *testing.T) {
	saturday := calendar.NewDate(2025, time.March, 1)
	carnival := calendar.NewDate(2025, time.March, 4) // Tuesday

	s := marchSnapshot(calendar.NewDate(2025, time.March, 15))
	s.Holidays = holiday.NewSet([]holiday.Holiday{{Date: carnival, Name: "Carnaval"}})

	days := Reconcile(s)

	sat := ledgerFor(t, days, saturday)
	assert.Equal(t, timesheet.StatusNotApplicable, sat.Status)
	assert.True(t, sat.IsWeekend)
	assert.False(t, sat.IsRequiredWorkday)

	hol := ledgerFor(t, days, carnival)
	assert.Equal(t, timesheet.StatusNotApplicable, hol.Status)
	assert.True(t, hol.IsHoliday)
	assert.False(t, hol.IsRequiredWorkday)
	assert.Zero(t, hol.ScheduledMinutes)
}

func TestReconcileAbsenceExcusesDay(t *testing.T) {
	wednesday := calendar.NewDate(2025, time.March, 5)
	s := marchSnapshot(calendar.NewDate(2025, time.March, 15))
	s.Absences = []absence.Absence{{
		ID:            "abs-1",
		EmployeeID:    "emp-1",
		Date:          wednesday,
		AbsenceTypeID: "atestado",
		CreditedHours: 8,
	}}

	day := ledgerFor(t, Reconcile(s), wednesday)
	assert.Equal(t, timesheet.StatusSatisfied, day.Status)
	assert.True(t, day.ExcusedByAbsence)
	assert.False(t, day.PunchSatisfied())
	assert.Zero(t, day.WorkedMinutes)
}

func TestReconcilePastVersusFuture(t *testing.T) {
	today := calendar.NewDate(2025, time.March, 12) // Wednesday
	s := marchSnapshot(today)

	days := Reconcile(s)

	past := ledgerFor(t, days, calendar.NewDate(2025, time.March, 10)) // Monday
	assert.Equal(t, timesheet.StatusMissing, past.Status)

	// Today itself is not yet due.
	cur := ledgerFor(t, days, today)
	assert.Equal(t, timesheet.StatusPending, cur.Status)

	future := ledgerFor(t, days, calendar.NewDate(2025, time.March, 17)) // Monday
	assert.Equal(t, timesheet.StatusPending, future.Status)
}

func TestReconcileNoScheduleAllDaysNotApplicable(t *testing.T) {
	s := marchSnapshot(calendar.NewDate(2025, time.March, 15))
	s.Schedule = nil
	s.Punches = fullDay(calendar.NewDate(2025, time.March, 3), "08:00", "12:00", "13:00", "17:00")

	days := Reconcile(s)
	require.Len(t, days, 31)
	for _, d := range days {
		assert.Equal(t, timesheet.StatusNotApplicable, d.Status, "day %s", d.Date)
		assert.False(t, d.IsRequiredWorkday)
	}

	// Punched time on a rule-less day still counts, all of it as overtime.
	worked := ledgerFor(t, days, calendar.NewDate(2025, time.March, 3))
	assert.Equal(t, 480, worked.WorkedMinutes)
	assert.Equal(t, 480, worked.OvertimeMinutes)
}

func TestReconcileCrossMidnightRejected(t *testing.T) {
	monday := calendar.NewDate(2025, time.March, 3)
	s := marchSnapshot(calendar.NewDate(2025, time.March, 15))
	s.Punches = []punch.Punch{
		punchOn(monday, punch.TypeEntry, "22:00"),
		punchOn(monday, punch.TypeExit, "02:00"),
	}

	day := ledgerFor(t, Reconcile(s), monday)
	assert.Zero(t, day.WorkedMinutes)

	require.NotEmpty(t, day.Observations)
	assert.Contains(t, day.Observations[0].String(), "saída anterior à entrada")
}

func TestReconcileOvertimeOutsideWindow(t *testing.T) {
	monday := calendar.NewDate(2025, time.March, 3)
	s := marchSnapshot(calendar.NewDate(2025, time.March, 15))
	// 30 early + 45 late around the 08:00-17:00 window.
	s.Punches = fullDay(monday, "07:30", "12:00", "13:00", "17:45")

	day := ledgerFor(t, Reconcile(s), monday)
	assert.Equal(t, 75, day.OvertimeMinutes)
	assert.Equal(t, timesheet.StatusSatisfied, day.Status)
}

func TestReconcileWeekendPunchesAllOvertime(t *testing.T) {
	saturday := calendar.NewDate(2025, time.March, 8)
	s := marchSnapshot(calendar.NewDate(2025, time.March, 15))
	s.Punches = []punch.Punch{
		punchOn(saturday, punch.TypeEntry, "08:00"),
		punchOn(saturday, punch.TypeExit, "12:00"),
	}

	day := ledgerFor(t, Reconcile(s), saturday)
	assert.Equal(t, timesheet.StatusNotApplicable, day.Status)
	assert.Equal(t, 240, day.WorkedMinutes)
	assert.Equal(t, 240, day.OvertimeMinutes)
}

func TestReconcileManualEditObservations(t *testing.T) {
	monday := calendar.NewDate(2025, time.March, 3)
	s := marchSnapshot(calendar.NewDate(2025, time.March, 15))

	edited := punchOn(monday, punch.TypeEntry, "08:00")
	edited.ManuallyEdited = true
	edited.EditedBy = strPtr("user-9")
	s.Punches = []punch.Punch{edited, punchOn(monday, punch.TypeExit, "17:00")}

	day := ledgerFor(t, Reconcile(s), monday)
	require.Len(t, day.Observations, 1)
	assert.Equal(t, "entrada ajustado manualmente por user-9", day.Observations[0].String())
}

func TestReconcileIdempotent(t *testing.T) {
	s := marchSnapshot(calendar.NewDate(2025, time.March, 15))
	s.Punches = append(
		fullDay(calendar.NewDate(2025, time.March, 3), "08:05", "12:00", "13:10", "17:00"),
		punchOn(calendar.NewDate(2025, time.March, 8), punch.TypeEntry, "09:00"),
	)
	s.Absences = []absence.Absence{{
		ID: "abs-1", EmployeeID: "emp-1",
		Date: calendar.NewDate(2025, time.March, 5), AbsenceTypeID: "folga",
	}}

	first := Reconcile(s)
	second := Reconcile(s)
	assert.Equal(t, first, second)
}

func TestReconcileCoversWholePeriod(t *testing.T) {
	s := marchSnapshot(calendar.NewDate(2025, time.March, 15))
	days := Reconcile(s)
	require.Len(t, days, 31)
	assert.True(t, days[0].Date.Equal(calendar.NewDate(2025, time.March, 1)))
	assert.True(t, days[30].Date.Equal(calendar.NewDate(2025, time.March, 31)))
}
