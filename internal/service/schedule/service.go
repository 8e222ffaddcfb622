package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/obraflow/obraflow-backend-go/internal/domain/employee"
	"github.com/obraflow/obraflow-backend-go/internal/domain/schedule"
)

type ScheduleServiceImpl struct {
	scheduleRepo schedule.WorkScheduleRepository
	employeeRepo employee.EmployeeRepository
}

func NewScheduleService(scheduleRepo schedule.WorkScheduleRepository, employeeRepo employee.EmployeeRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
	}
}

// GetSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetSchedule(ctx context.Context, employeeID string) (schedule.WorkScheduleResponse, error) {
	companyID, err := companyFromClaims(ctx)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	sched, err := s.scheduleRepo.GetByEmployeeID(ctx, employeeID, companyID)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return schedule.WorkScheduleResponse{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	return schedule.MapToResponse(sched), nil
}

// UpsertSchedule implements schedule.ScheduleService. The weekly rule set
// is replaced as a whole so the grid edit is atomic.
func (s *ScheduleServiceImpl) UpsertSchedule(ctx context.Context, req schedule.UpsertScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	companyID, err := companyFromClaims(ctx)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return schedule.WorkScheduleResponse{}, employee.ErrEmployeeNotFound
		}
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	rules := make([]schedule.WeekdayRule, 0, len(req.Rules))
	for _, input := range req.Rules {
		rules = append(rules, schedule.WeekdayRule{
			Weekday:    input.Weekday,
			Entry:      input.Entry,
			Exit:       input.Exit,
			BreakStart: input.BreakStart,
			BreakEnd:   input.BreakEnd,
		})
	}

	sched, err := s.scheduleRepo.ReplaceRules(ctx, req.EmployeeID, companyID, rules)
	if err != nil {
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to replace weekday rules: %w", err)
	}

	return schedule.MapToResponse(sched), nil
}

// DeleteRule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) DeleteRule(ctx context.Context, employeeID string, weekday int) error {
	if weekday < 0 || weekday > 6 {
		return schedule.ErrRuleNotFound
	}

	companyID, err := companyFromClaims(ctx)
	if err != nil {
		return err
	}

	if err := s.scheduleRepo.DeleteRule(ctx, employeeID, companyID, weekday); err != nil {
		if errors.Is(err, schedule.ErrRuleNotFound) {
			return schedule.ErrRuleNotFound
		}
		return fmt.Errorf("failed to delete weekday rule: %w", err)
	}

	return nil
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
