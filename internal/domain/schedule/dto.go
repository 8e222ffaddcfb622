package schedule

import (
	"fmt"

	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/validator"
)

type WeekdayRuleInput struct {
	Weekday    int     `json:"weekday"`
	Entry      *string `json:"entry,omitempty"`
	Exit       *string `json:"exit,omitempty"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
}

type UpsertScheduleRequest struct {
	EmployeeID string             `json:"employee_id"`
	Rules      []WeekdayRuleInput `json:"rules"`
}

func (r *UpsertScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(r.Rules) > 7 {
		errs = append(errs, validator.ValidationError{
			Field:   "rules",
			Message: "at most 7 weekday rules are allowed",
		})
	}

	seen := map[int]bool{}
	for i, rule := range r.Rules {
		field := fmt.Sprintf("rules[%d]", i)
		if rule.Weekday < 0 || rule.Weekday > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".weekday",
				Message: "weekday must be between 0 (Sunday) and 6 (Saturday)",
			})
			continue
		}
		if seen[rule.Weekday] {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".weekday",
				Message: "duplicate weekday rule",
			})
		}
		seen[rule.Weekday] = true

		for name, value := range map[string]*string{
			".entry":       rule.Entry,
			".exit":        rule.Exit,
			".break_start": rule.BreakStart,
			".break_end":   rule.BreakEnd,
		} {
			if value == nil {
				continue
			}
			if _, ok := calendar.ParseClock(*value); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field + name,
					Message: "time must be in HH:MM format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WeekdayRuleResponse struct {
	Weekday    int     `json:"weekday"`
	Entry      *string `json:"entry,omitempty"`
	Exit       *string `json:"exit,omitempty"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`

	// ScheduledMinutes is the derived net day length (window minus break).
	ScheduledMinutes int `json:"scheduled_minutes"`
}

type WorkScheduleResponse struct {
	EmployeeID string                `json:"employee_id"`
	Rules      []WeekdayRuleResponse `json:"rules"`
}

// MapToResponse converts a WorkSchedule entity to its response DTO.
func MapToResponse(s WorkSchedule) WorkScheduleResponse {
	resp := WorkScheduleResponse{
		EmployeeID: s.EmployeeID,
		Rules:      make([]WeekdayRuleResponse, 0, len(s.Rules)),
	}
	for _, rule := range s.Rules {
		resp.Rules = append(resp.Rules, WeekdayRuleResponse{
			Weekday:          rule.Weekday,
			Entry:            rule.Entry,
			Exit:             rule.Exit,
			BreakStart:       rule.BreakStart,
			BreakEnd:         rule.BreakEnd,
			ScheduledMinutes: rule.ScheduledMinutes(),
		})
	}
	return resp
}
