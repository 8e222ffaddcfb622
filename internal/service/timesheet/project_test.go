package timesheet

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/obraflow/obraflow-backend-go/internal/domain/employee"
	"github.com/obraflow/obraflow-backend-go/internal/domain/punch"
	"github.com/obraflow/obraflow-backend-go/internal/domain/timesheet"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
)

func dailyRate(amount int64) employee.Compensation {
	return employee.Compensation{
		Kind:        employee.CompensationDailyRate,
		DailyAmount: decimal.NewFromInt(amount),
	}
}

func salaried(amount int64) employee.Compensation {
	return employee.Compensation{
		Kind:       employee.CompensationSalaried,
		BaseAmount: decimal.NewFromInt(amount),
	}
}

// workWeekdays punches full days on the first n weekdays of March 2025.
func workWeekdays(s *Snapshot, n int) {
	count := 0
	for _, d := range s.Period.Days() {
		if count == n {
			break
		}
		if d.IsWeekend() {
			continue
		}
		s.Punches = append(s.Punches, fullDay(d, "08:00", "12:00", "13:00", "17:00")...)
		count++
	}
}

func TestProjectDailyRateCost(t *testing.T) {
	cases := []struct {
		workedDays int
		wantCost   string
	}{
		{20, "2000.00"},
		{18, "1800.00"},
		{0, "0.00"},
	}

	for _, c := range cases {
		s := marchSnapshot(calendar.NewDate(2025, time.March, 31))
		workWeekdays(s, c.workedDays)

		days := Reconcile(s)
		proj := Project(dailyRate(100), s, days)

		assert.Equal(t, c.workedDays, proj.WorkedDays)
		assert.Equal(t, c.wantCost, proj.ProjectedCost.StringFixed(2), "workedDays=%d", c.workedDays)
	}
}

func TestProjectSalariedCostIsFlat(t *testing.T) {
	// Salaried employees cost the monthly base no matter how many days
	// they actually delivered.
	s := marchSnapshot(calendar.NewDate(2025, time.March, 31))
	workWeekdays(s, 3)

	days := Reconcile(s)
	proj := Project(salaried(3000), s, days)

	assert.Equal(t, 3, proj.WorkedDays)
	assert.Equal(t, "3000.00", proj.ProjectedCost.StringFixed(2))
}

func TestProjectAbsenceDaysDoNotEarnDailyRate(t *testing.T) {
	s := marchSnapshot(calendar.NewDate(2025, time.March, 31))
	workWeekdays(s, 5)

	days := Reconcile(s)
	// Turn the sixth required day into an excused absence by hand.
	for i := range days {
		if days[i].IsRequiredWorkday && days[i].Status == timesheet.StatusMissing {
			days[i].Status = timesheet.StatusSatisfied
			days[i].ExcusedByAbsence = true
			break
		}
	}

	proj := Project(dailyRate(100), s, days)
	assert.Equal(t, 5, proj.WorkedDays)
	assert.Equal(t, 1, proj.AbsenceDays)
	assert.Equal(t, "500.00", proj.ProjectedCost.StringFixed(2))
}

func TestProjectExpectedMinutesStopAtToday(t *testing.T) {
	// Monday March 10: required days so far are Mar 3-7 and Mar 10.
	s := marchSnapshot(calendar.NewDate(2025, time.March, 10))

	proj := Project(salaried(3000), s, Reconcile(s))

	assert.Equal(t, 6, proj.RequiredWorkdaysToDate)
	assert.Equal(t, 6*480, proj.ExpectedMinutes)
}

func TestProjectOvertimePayDailyRate(t *testing.T) {
	s := marchSnapshot(calendar.NewDate(2025, time.March, 31))
	monday := calendar.NewDate(2025, time.March, 3)
	// One hour past the window.
	s.Punches = fullDay(monday, "08:00", "12:00", "13:00", "18:00")

	days := Reconcile(s)
	proj := Project(dailyRate(120), s, days)

	assert.Equal(t, 60, proj.OvertimeMinutes)
	assert.Equal(t, 1, proj.OvertimeDays)
	// 120/480 per minute * 60 minutes * 1.5 = 22.50, reported separately.
	assert.Equal(t, "22.50", proj.OvertimePay.StringFixed(2))
	assert.Equal(t, "120.00", proj.ProjectedCost.StringFixed(2))
}

func TestProjectOvertimePaySalaried(t *testing.T) {
	s := marchSnapshot(calendar.NewDate(2025, time.March, 31))
	saturday := calendar.NewDate(2025, time.March, 8)
	s.Punches = []punch.Punch{
		punchOn(saturday, punch.TypeEntry, "08:00"),
		punchOn(saturday, punch.TypeExit, "10:00"),
	}

	days := Reconcile(s)
	proj := Project(salaried(7200), s, days)

	assert.Equal(t, 120, proj.OvertimeMinutes)
	// 7200/30/480 = 0.50 per minute; 120 * 0.50 * 1.5 = 90.00.
	assert.Equal(t, "90.00", proj.OvertimePay.StringFixed(2))
}

func TestProjectCarriesSnapshotWarnings(t *testing.T) {
	s := marchSnapshot(calendar.NewDate(2025, time.March, 31))
	s.Warnings = []string{timesheet.WarnHolidaysUnavailable}

	proj := Project(salaried(3000), s, Reconcile(s))
	assert.Equal(t, []string{timesheet.WarnHolidaysUnavailable}, proj.Warnings)
}
