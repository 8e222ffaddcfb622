package schedule

import (
	"time"

	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
)

// WorkSchedule is the jornada of one employee: up to seven weekday rules
// describing the required entry/exit times and an optional break window.
type WorkSchedule struct {
	EmployeeID string
	CompanyID  string
	Rules      []WeekdayRule
}

// WeekdayRule holds "HH:MM" strings as entered by the back office. A value
// that is missing or does not parse leaves the corresponding field unset;
// it never fails reconciliation.
type WeekdayRule struct {
	ID         string
	Weekday    int // 0=Sunday ... 6=Saturday
	Entry      *string
	Exit       *string
	BreakStart *string
	BreakEnd   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RuleFor returns the rule matching the weekday, or nil.
func (s *WorkSchedule) RuleFor(weekday time.Weekday) *WeekdayRule {
	if s == nil {
		return nil
	}
	for i := range s.Rules {
		if s.Rules[i].Weekday == int(weekday) {
			return &s.Rules[i]
		}
	}
	return nil
}

// Window returns the parsed entry and exit clocks. ok is false when either
// side is missing or malformed, which makes the day not a required workday.
func (r *WeekdayRule) Window() (entry, exit calendar.Clock, ok bool) {
	if r == nil {
		return 0, 0, false
	}
	entry, entryOK := parseOptional(r.Entry)
	exit, exitOK := parseOptional(r.Exit)
	return entry, exit, entryOK && exitOK
}

// BreakWindow returns the parsed break clocks. ok is false unless both the
// break start and break end are present and well formed.
func (r *WeekdayRule) BreakWindow() (start, end calendar.Clock, ok bool) {
	if r == nil {
		return 0, 0, false
	}
	start, startOK := parseOptional(r.BreakStart)
	end, endOK := parseOptional(r.BreakEnd)
	return start, end, startOK && endOK
}

// ScheduledMinutes returns the theoretical working minutes of the rule:
// (exit - entry) minus the break span, never negative. Zero when the rule
// has no usable window.
func (r *WeekdayRule) ScheduledMinutes() int {
	entry, exit, ok := r.Window()
	if !ok {
		return 0
	}
	minutes := exit.Minutes() - entry.Minutes()
	if start, end, hasBreak := r.BreakWindow(); hasBreak {
		minutes -= end.Minutes() - start.Minutes()
	}
	if minutes < 0 {
		return 0
	}
	return minutes
}

func parseOptional(s *string) (calendar.Clock, bool) {
	if s == nil {
		return 0, false
	}
	return calendar.ParseClock(*s)
}
