package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/obraflow/obraflow-backend-go/internal/domain/absence"
	"github.com/obraflow/obraflow-backend-go/internal/domain/employee"
	"github.com/obraflow/obraflow-backend-go/internal/domain/holiday"
	"github.com/obraflow/obraflow-backend-go/internal/domain/punch"
	"github.com/obraflow/obraflow-backend-go/internal/domain/schedule"
	"github.com/obraflow/obraflow-backend-go/internal/domain/timesheet"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// defaultWorkers bounds the per-employee fan-out of the payroll audit.
const defaultWorkers = 8

type TimesheetServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	scheduleRepo schedule.WorkScheduleRepository
	punchRepo    punch.PunchRepository
	absenceRepo  absence.AbsenceRepository
	holidays     holiday.Provider
	location     *time.Location
	workers      int
}

func NewTimesheetService(
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.WorkScheduleRepository,
	punchRepo punch.PunchRepository,
	absenceRepo absence.AbsenceRepository,
	holidays holiday.Provider,
	location *time.Location,
) timesheet.TimesheetService {
	if location == nil {
		location = time.UTC
	}
	return &TimesheetServiceImpl{
		employeeRepo: employeeRepo,
		scheduleRepo: scheduleRepo,
		punchRepo:    punchRepo,
		absenceRepo:  absenceRepo,
		holidays:     holidays,
		location:     location,
		workers:      defaultWorkers,
	}
}

// GetEmployeeTimesheet implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) GetEmployeeTimesheet(ctx context.Context, employeeID string, month string) (timesheet.TimesheetResponse, error) {
	companyID, err := companyFromClaims(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	if employeeID == "" {
		return timesheet.TimesheetResponse{}, timesheet.ErrEmployeeRequired
	}

	if month == "" {
		month = calendar.Today(t.location).MonthString()
	}
	period, err := calendar.ParseMonth(month)
	if err != nil {
		return timesheet.TimesheetResponse{}, timesheet.ErrInvalidPeriod
	}

	emp, err := t.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, employee.ErrEmployeeNotFound) {
			return timesheet.TimesheetResponse{}, employee.ErrEmployeeNotFound
		}
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	today := calendar.Today(t.location)
	snap, err := t.buildSnapshot(ctx, employeeID, companyID, period, today)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	days := Reconcile(snap)
	proj := Project(emp.Compensation, snap, days)

	resp := timesheet.TimesheetResponse{
		EmployeeID: employeeID,
		Period:     month,
		Days:       make([]timesheet.DayLedgerView, 0, len(days)),
		Projection: timesheet.MapProjectionToView(proj),
	}
	for _, d := range days {
		resp.Days = append(resp.Days, timesheet.MapDayToView(d))
	}
	return resp, nil
}

// GetPayrollAudit implements timesheet.TimesheetService.
// Each employee's fold is independent, so they run on a bounded worker pool
// and are merged by employee id afterwards.
func (t *TimesheetServiceImpl) GetPayrollAudit(ctx context.Context, month string) (timesheet.PayrollAuditResponse, error) {
	companyID, err := companyFromClaims(ctx)
	if err != nil {
		return timesheet.PayrollAuditResponse{}, err
	}

	if month == "" {
		month = calendar.Today(t.location).MonthString()
	}
	period, err := calendar.ParseMonth(month)
	if err != nil {
		return timesheet.PayrollAuditResponse{}, timesheet.ErrInvalidPeriod
	}

	employees, err := t.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return timesheet.PayrollAuditResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	today := calendar.Today(t.location)

	projections := make(map[string]timesheet.PayrollProjection, len(employees))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)

	resultCh := make(chan timesheet.PayrollProjection, len(employees))
	for _, emp := range employees {
		emp := emp
		g.Go(func() error {
			snap, err := t.buildSnapshot(gctx, emp.ID, companyID, period, today)
			if err != nil {
				return fmt.Errorf("employee %s: %w", emp.ID, err)
			}
			days := Reconcile(snap)
			resultCh <- Project(emp.Compensation, snap, days)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return timesheet.PayrollAuditResponse{}, fmt.Errorf("failed to reconcile company: %w", err)
	}
	close(resultCh)

	for proj := range resultCh {
		projections[proj.EmployeeID] = proj
	}

	resp := timesheet.PayrollAuditResponse{
		Period:        month,
		Rows:          make([]timesheet.PayrollAuditRow, 0, len(employees)),
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		EmployeeCount: len(employees),
	}

	total := decimal.Zero
	for _, emp := range employees {
		proj, ok := projections[emp.ID]
		if !ok {
			continue
		}
		total = total.Add(proj.ProjectedCost)
		resp.Rows = append(resp.Rows, timesheet.PayrollAuditRow{
			EmployeeID:       emp.ID,
			EmployeeName:     emp.FullName,
			CompensationKind: string(emp.Compensation.Kind),
			RequiredMinutes:  proj.ExpectedMinutes,
			RequiredWorkdays: proj.RequiredWorkdaysToDate,
			WorkedDays:       proj.WorkedDays,
			WorkedMinutes:    proj.WorkedMinutes,
			AbsenceDays:      proj.AbsenceDays,
			OvertimeDays:     proj.OvertimeDays,
			OvertimeMinutes:  proj.OvertimeMinutes,
			ProjectedCost:    proj.ProjectedCost.StringFixed(2),
			OvertimePay:      proj.OvertimePay.StringFixed(2),
			Warnings:         proj.Warnings,
		})
	}
	resp.TotalCost = total.StringFixed(2)

	return resp, nil
}

// buildSnapshot fetches the read-only inputs of one employee's
// reconciliation. Missing schedule and holiday failures degrade to
// warnings; repository errors are real failures.
func (t *TimesheetServiceImpl) buildSnapshot(ctx context.Context, employeeID, companyID string, period calendar.Period, today calendar.Date) (*Snapshot, error) {
	snap := &Snapshot{
		EmployeeID: employeeID,
		Period:     period,
		Today:      today,
		Location:   t.location,
		Holidays:   holiday.Set{},
	}

	sched, err := t.scheduleRepo.GetByEmployeeID(ctx, employeeID, companyID)
	switch {
	case err == nil && len(sched.Rules) > 0:
		snap.Schedule = &sched
	case err == nil || errors.Is(err, schedule.ErrScheduleNotFound) || errors.Is(err, pgx.ErrNoRows):
		snap.Warnings = append(snap.Warnings, timesheet.WarnMissingSchedule)
	default:
		return nil, fmt.Errorf("failed to get work schedule: %w", err)
	}

	snap.Punches, err = t.punchRepo.ListByEmployeePeriod(ctx, employeeID, companyID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}

	snap.Absences, err = t.absenceRepo.ListByEmployeePeriod(ctx, employeeID, companyID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}

	holidaysDown := false
	for _, year := range period.Years() {
		yearHolidays, err := t.holidays.Holidays(ctx, year)
		if err != nil {
			holidaysDown = true
			continue
		}
		for _, h := range yearHolidays {
			snap.Holidays[h.Date] = h
		}
	}
	if holidaysDown {
		snap.Warnings = append(snap.Warnings, timesheet.WarnHolidaysUnavailable)
	}

	return snap, nil
}

func companyFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}
