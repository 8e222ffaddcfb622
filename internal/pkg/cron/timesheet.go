package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/obraflow/obraflow-backend-go/internal/domain/employee"
	"github.com/obraflow/obraflow-backend-go/internal/domain/holiday"
	"github.com/obraflow/obraflow-backend-go/internal/domain/punch"
	"github.com/obraflow/obraflow-backend-go/internal/domain/schedule"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
)

// HolidayRefresher is the slice of the holiday client the cron needs.
type HolidayRefresher interface {
	Refresh(ctx context.Context, year int) error
}

type TimesheetJobs struct {
	employeeRepo employee.EmployeeRepository
	scheduleRepo schedule.WorkScheduleRepository
	punchRepo    punch.PunchRepository
	holidays     holiday.Provider
	refresher    HolidayRefresher
	location     *time.Location
}

func NewTimesheetJobs(
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.WorkScheduleRepository,
	punchRepo punch.PunchRepository,
	holidays holiday.Provider,
	refresher HolidayRefresher,
	location *time.Location,
) *TimesheetJobs {
	return &TimesheetJobs{
		employeeRepo: employeeRepo,
		scheduleRepo: scheduleRepo,
		punchRepo:    punchRepo,
		holidays:     holidays,
		refresher:    refresher,
		location:     location,
	}
}

func (j *TimesheetJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("refresh_holiday_cache", 12*time.Hour, j.RefreshHolidayCache)
	scheduler.AddJob("report_missing_punches", 1*time.Hour, j.ReportMissingPunches)
}

// RefreshHolidayCache warms the current and next year so reconciliations
// keep answering from cache even when the external calendar flaps.
func (j *TimesheetJobs) RefreshHolidayCache(ctx context.Context) error {
	year := calendar.Today(j.location).Year

	for _, y := range []int{year, year + 1} {
		if err := j.refresher.Refresh(ctx, y); err != nil {
			return fmt.Errorf("failed to refresh holiday cache for %d: %w", y, err)
		}
	}

	slog.Info("Cron: Holiday cache refreshed", "years", []int{year, year + 1})
	return nil
}

// ReportMissingPunches logs every active employee who owed a full punch
// set yesterday and did not deliver one. The day grid already shows this
// per employee; the sweep gives foremen a single overnight signal.
func (j *TimesheetJobs) ReportMissingPunches(ctx context.Context) error {
	// Only run in the first hour after midnight local time
	if time.Now().In(j.location).Hour() != 1 {
		return nil
	}

	yesterday := calendar.Today(j.location).AddDays(-1)
	if yesterday.IsWeekend() {
		return nil
	}

	holidaySet, err := j.yesterdayHolidays(ctx, yesterday)
	if err != nil {
		slog.Warn("Cron: Holiday calendar unavailable, sweeping without it", "error", err)
	}
	if holidaySet.Contains(yesterday) {
		return nil
	}

	companyIDs, err := j.employeeRepo.ListCompanyIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}

	flagged := 0
	for _, companyID := range companyIDs {
		employees, err := j.employeeRepo.GetActiveByCompanyID(ctx, companyID)
		if err != nil {
			slog.Error("Cron: Failed to list employees", "company_id", companyID, "error", err)
			continue
		}

		punches, err := j.punchRepo.ListByCompanyDate(ctx, companyID, yesterday)
		if err != nil {
			slog.Error("Cron: Failed to list punches", "company_id", companyID, "error", err)
			continue
		}

		complete := completePunchSets(punches)

		for _, emp := range employees {
			if complete[emp.ID] {
				continue
			}
			if !j.requiredYesterday(ctx, emp, yesterday) {
				continue
			}

			slog.Warn("Cron: Employee missing punches",
				"company_id", companyID,
				"employee_id", emp.ID,
				"employee", emp.FullName,
				"date", yesterday.String())
			flagged++
		}
	}

	slog.Info("Cron: Missing punch sweep finished", "date", yesterday.String(), "flagged", flagged)
	return nil
}

func (j *TimesheetJobs) yesterdayHolidays(ctx context.Context, d calendar.Date) (holiday.Set, error) {
	holidays, err := j.holidays.Holidays(ctx, d.Year)
	if err != nil {
		return nil, err
	}
	return holiday.NewSet(holidays), nil
}

// requiredYesterday reports whether the employee had a complete work
// window scheduled on the given day.
func (j *TimesheetJobs) requiredYesterday(ctx context.Context, emp employee.Employee, d calendar.Date) bool {
	sched, err := j.scheduleRepo.GetByEmployeeID(ctx, emp.ID, emp.CompanyID)
	if err != nil {
		if !errors.Is(err, schedule.ErrScheduleNotFound) {
			slog.Error("Cron: Failed to load schedule", "employee_id", emp.ID, "error", err)
		}
		return false
	}

	rule := sched.RuleFor(d.Weekday())
	if rule == nil {
		return false
	}
	_, _, ok := rule.Window()
	return ok
}

func completePunchSets(punches []punch.Punch) map[string]bool {
	byEmployee := make(map[string]map[punch.Type]bool)
	for _, p := range punches {
		if byEmployee[p.EmployeeID] == nil {
			byEmployee[p.EmployeeID] = make(map[punch.Type]bool)
		}
		byEmployee[p.EmployeeID][p.Type] = true
	}

	complete := make(map[string]bool, len(byEmployee))
	for id, types := range byEmployee {
		complete[id] = types[punch.TypeEntry] && types[punch.TypeExit]
	}
	return complete
}
