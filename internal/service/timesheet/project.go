package timesheet

import (
	"github.com/obraflow/obraflow-backend-go/internal/domain/employee"
	"github.com/obraflow/obraflow-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

var (
	overtimeFactor = decimal.NewFromFloat(1.5)
	salariedDays   = decimal.NewFromInt(30)
)

// Project folds a period's DayLedgers into the payroll projection. It is
// stateless: all classification already happened during reconciliation.
func Project(comp employee.Compensation, s *Snapshot, days []timesheet.DayLedger) timesheet.PayrollProjection {
	proj := timesheet.PayrollProjection{
		EmployeeID:    s.EmployeeID,
		Period:        s.Period,
		ProjectedCost: decimal.Zero,
		OvertimePay:   decimal.Zero,
		Warnings:      append([]string(nil), s.Warnings...),
	}

	scheduledTotal := 0
	scheduledDays := 0

	for i := range days {
		d := &days[i]

		if d.IsRequiredWorkday {
			if d.ScheduledMinutes > 0 {
				scheduledTotal += d.ScheduledMinutes
				scheduledDays++
			}
			if !d.Date.After(s.Today) {
				proj.RequiredWorkdaysToDate++
				proj.ExpectedMinutes += d.ScheduledMinutes
			}
		}

		switch {
		case d.PunchSatisfied():
			proj.WorkedDays++
			proj.WorkedMinutes += d.WorkedMinutes
		case d.ExcusedByAbsence:
			proj.AbsenceDays++
		}

		// Overtime: punches outside the required window, or any punches on
		// a day that is not a required workday.
		if d.OvertimeMinutes > 0 || (!d.IsRequiredWorkday && len(d.Punches) > 0) {
			proj.OvertimeDays++
			proj.OvertimeMinutes += d.OvertimeMinutes
		}
	}

	switch comp.Kind {
	case employee.CompensationDailyRate:
		proj.ProjectedCost = comp.DailyAmount.Mul(decimal.NewFromInt(int64(proj.WorkedDays)))
	case employee.CompensationSalaried:
		// The flat monthly base, not prorated by absences.
		proj.ProjectedCost = comp.BaseAmount
	}

	proj.OvertimePay = overtimePay(comp, scheduledTotal, scheduledDays, proj.OvertimeMinutes)

	return proj
}

// overtimePay prices overtime minutes at 1.5x the per-minute rate derived
// from the compensation model and the scheduled day length. It is reported
// as a separate line, never folded into the projected cost.
func overtimePay(comp employee.Compensation, scheduledTotal, scheduledDays, overtimeMinutes int) decimal.Decimal {
	if overtimeMinutes == 0 || scheduledDays == 0 || scheduledTotal == 0 {
		return decimal.Zero
	}

	// Average scheduled day length over the period's required days.
	dailyMinutes := decimal.NewFromInt(int64(scheduledTotal)).Div(decimal.NewFromInt(int64(scheduledDays)))
	if dailyMinutes.IsZero() {
		return decimal.Zero
	}

	var minuteRate decimal.Decimal
	switch comp.Kind {
	case employee.CompensationDailyRate:
		minuteRate = comp.DailyAmount.Div(dailyMinutes)
	case employee.CompensationSalaried:
		minuteRate = comp.BaseAmount.Div(salariedDays).Div(dailyMinutes)
	default:
		return decimal.Zero
	}

	return minuteRate.Mul(decimal.NewFromInt(int64(overtimeMinutes))).Mul(overtimeFactor)
}
