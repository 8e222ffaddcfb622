package timesheet

import (
	"fmt"
	"time"

	"github.com/obraflow/obraflow-backend-go/internal/domain/absence"
	"github.com/obraflow/obraflow-backend-go/internal/domain/punch"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
)

// DayStatus classifies one calendar day of the reconciled period.
type DayStatus string

const (
	// StatusNotApplicable - weekend, holiday or no required window; the day
	// is never flagged regardless of punches.
	StatusNotApplicable DayStatus = "not_applicable"
	// StatusSatisfied - required day covered by complete punches or an abono.
	StatusSatisfied DayStatus = "satisfied"
	// StatusPending - required day, incomplete punches, but not yet due.
	StatusPending DayStatus = "pending"
	// StatusMissing - required day strictly in the past with incomplete
	// punches and no abono.
	StatusMissing DayStatus = "missing"
)

// AuditNote is one entry of the append-only observation log of a day.
// Notes are derived from manually edited punches (field + editor) and from
// punch data the engine refused to use; they are never persisted.
type AuditNote struct {
	Field    string
	EditedBy string
	Note     string // free-text observation, used when Field/EditedBy do not apply
}

func (n AuditNote) String() string {
	if n.Note != "" {
		return n.Note
	}
	if n.EditedBy == "" {
		return fmt.Sprintf("%s ajustado manualmente", n.Field)
	}
	return fmt.Sprintf("%s ajustado manualmente por %s", n.Field, n.EditedBy)
}

// DayLedger is the reconciled view of one employee-day. It is a pure
// function of the snapshot and is recomputed on every read.
type DayLedger struct {
	Date              calendar.Date
	Weekday           time.Weekday
	Punches           []punch.Punch
	Absence           *absence.Absence
	IsHoliday         bool
	IsWeekend         bool
	IsRequiredWorkday bool
	Status            DayStatus
	ExcusedByAbsence  bool
	WorkedMinutes     int
	ScheduledMinutes  int
	OvertimeMinutes   int
	Observations      []AuditNote
}

// PunchSatisfied reports whether the day counts as a worked day: satisfied
// by complete punches, not by an abono.
func (d *DayLedger) PunchSatisfied() bool {
	return d.Status == StatusSatisfied && !d.ExcusedByAbsence
}

// PayrollProjection aggregates a period of DayLedgers for one employee.
type PayrollProjection struct {
	EmployeeID             string
	Period                 calendar.Period
	ExpectedMinutes        int
	WorkedMinutes          int
	WorkedDays             int
	RequiredWorkdaysToDate int
	AbsenceDays            int
	OvertimeDays           int
	OvertimeMinutes        int

	// ProjectedCost follows the compensation model: workedDays x dailyAmount
	// for diaristas, the flat monthly base for salaried employees.
	ProjectedCost decimal.Decimal

	// OvertimePay is surfaced as a separate line for manual decision and is
	// never folded into ProjectedCost.
	OvertimePay decimal.Decimal

	// Warnings carries non-fatal degradations (missing schedule, holiday
	// source unavailable).
	Warnings []string
}
