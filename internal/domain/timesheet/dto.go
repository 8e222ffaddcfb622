package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

type PunchView struct {
	Type           string  `json:"type"`
	Timestamp      string  `json:"timestamp"`
	ManuallyEdited bool    `json:"manually_edited"`
	EditedBy       *string `json:"edited_by,omitempty"`
}

type AbsenceView struct {
	ID            string  `json:"id"`
	AbsenceTypeID string  `json:"absence_type_id"`
	CreditedHours float64 `json:"credited_hours"`
	CreatedBy     string  `json:"created_by"`
}

type DayLedgerView struct {
	Date              string       `json:"date"`
	Weekday           int          `json:"weekday"`
	Status            string       `json:"status"`
	IsHoliday         bool         `json:"is_holiday"`
	IsWeekend         bool         `json:"is_weekend"`
	IsRequiredWorkday bool         `json:"is_required_workday"`
	ExcusedByAbsence  bool         `json:"excused_by_absence"`
	WorkedMinutes     int          `json:"worked_minutes"`
	OvertimeMinutes   int          `json:"overtime_minutes"`
	Punches           []PunchView  `json:"punches"`
	Absence           *AbsenceView `json:"absence,omitempty"`
	Observations      []string     `json:"observations,omitempty"`
}

type ProjectionView struct {
	ExpectedMinutes        int      `json:"expected_minutes"`
	WorkedMinutes          int      `json:"worked_minutes"`
	WorkedDays             int      `json:"worked_days"`
	RequiredWorkdaysToDate int      `json:"required_workdays_to_date"`
	AbsenceDays            int      `json:"absence_days"`
	OvertimeDays           int      `json:"overtime_days"`
	OvertimeMinutes        int      `json:"overtime_minutes"`
	ProjectedCost          string   `json:"projected_cost"`
	OvertimePay            string   `json:"overtime_pay"`
	Warnings               []string `json:"warnings,omitempty"`
}

// TimesheetResponse is the per-employee grid consumed by the presentation
// layer: one DayLedger per calendar day plus the projection.
type TimesheetResponse struct {
	EmployeeID string          `json:"employee_id"`
	Period     string          `json:"period"` // YYYY-MM
	Days       []DayLedgerView `json:"days"`
	Projection ProjectionView  `json:"projection"`
}

// PayrollAuditRow is one row of the tabular payroll-audit view.
type PayrollAuditRow struct {
	EmployeeID       string   `json:"employee_id"`
	EmployeeName     string   `json:"employee_name"`
	CompensationKind string   `json:"compensation_kind"`
	RequiredMinutes  int      `json:"required_minutes"`
	RequiredWorkdays int      `json:"required_workdays"`
	WorkedDays       int      `json:"worked_days"`
	WorkedMinutes    int      `json:"worked_minutes"`
	AbsenceDays      int      `json:"absence_days"`
	OvertimeDays     int      `json:"overtime_days"`
	OvertimeMinutes  int      `json:"overtime_minutes"`
	ProjectedCost    string   `json:"projected_cost"`
	OvertimePay      string   `json:"overtime_pay"`
	Warnings         []string `json:"warnings,omitempty"`
}

type PayrollAuditResponse struct {
	Period        string            `json:"period"`
	Rows          []PayrollAuditRow `json:"rows"`
	TotalCost     string            `json:"total_cost"`
	GeneratedAt   string            `json:"generated_at"`
	EmployeeCount int               `json:"employee_count"`
}

// MapDayToView converts a DayLedger entity to its response view.
func MapDayToView(d DayLedger) DayLedgerView {
	view := DayLedgerView{
		Date:              d.Date.String(),
		Weekday:           int(d.Weekday),
		Status:            string(d.Status),
		IsHoliday:         d.IsHoliday,
		IsWeekend:         d.IsWeekend,
		IsRequiredWorkday: d.IsRequiredWorkday,
		ExcusedByAbsence:  d.ExcusedByAbsence,
		WorkedMinutes:     d.WorkedMinutes,
		OvertimeMinutes:   d.OvertimeMinutes,
		Punches:           make([]PunchView, 0, len(d.Punches)),
	}
	for _, p := range d.Punches {
		view.Punches = append(view.Punches, PunchView{
			Type:           string(p.Type),
			Timestamp:      p.PunchedAt.UTC().Format(time.RFC3339),
			ManuallyEdited: p.ManuallyEdited,
			EditedBy:       p.EditedBy,
		})
	}
	if d.Absence != nil {
		view.Absence = &AbsenceView{
			ID:            d.Absence.ID,
			AbsenceTypeID: d.Absence.AbsenceTypeID,
			CreditedHours: d.Absence.CreditedHours,
			CreatedBy:     d.Absence.CreatedBy,
		}
	}
	for _, note := range d.Observations {
		view.Observations = append(view.Observations, note.String())
	}
	return view
}

// MapProjectionToView converts a PayrollProjection to its response view.
func MapProjectionToView(p PayrollProjection) ProjectionView {
	return ProjectionView{
		ExpectedMinutes:        p.ExpectedMinutes,
		WorkedMinutes:          p.WorkedMinutes,
		WorkedDays:             p.WorkedDays,
		RequiredWorkdaysToDate: p.RequiredWorkdaysToDate,
		AbsenceDays:            p.AbsenceDays,
		OvertimeDays:           p.OvertimeDays,
		OvertimeMinutes:        p.OvertimeMinutes,
		ProjectedCost:          formatAmount(p.ProjectedCost),
		OvertimePay:            formatAmount(p.OvertimePay),
		Warnings:               p.Warnings,
	}
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
