package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/obraflow/obraflow-backend-go/internal/domain/schedule"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/database"
)

type workScheduleRepository struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepository{db: db}
}

// GetByEmployeeID implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) GetByEmployeeID(ctx context.Context, employeeID string, companyID string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, weekday, entry_time, exit_time, break_start_time, break_end_time,
			   created_at, updated_at
		FROM work_schedule_rules
		WHERE employee_id = $1 AND company_id = $2
		ORDER BY weekday
	`

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}
	defer rows.Close()

	sched := schedule.WorkSchedule{
		EmployeeID: employeeID,
		CompanyID:  companyID,
	}
	for rows.Next() {
		var rule schedule.WeekdayRule
		if err := rows.Scan(
			&rule.ID, &rule.Weekday, &rule.Entry, &rule.Exit,
			&rule.BreakStart, &rule.BreakEnd, &rule.CreatedAt, &rule.UpdatedAt,
		); err != nil {
			return schedule.WorkSchedule{}, fmt.Errorf("failed to scan weekday rule: %w", err)
		}
		sched.Rules = append(sched.Rules, rule)
	}
	if err := rows.Err(); err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to iterate weekday rules: %w", err)
	}

	if len(sched.Rules) == 0 {
		return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
	}

	return sched, nil
}

// ReplaceRules implements schedule.WorkScheduleRepository. The rule set is
// swapped inside one transaction so readers never observe a half-edited
// week.
func (r *workScheduleRepository) ReplaceRules(ctx context.Context, employeeID string, companyID string, rules []schedule.WeekdayRule) (schedule.WorkSchedule, error) {
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx, `
			DELETE FROM work_schedule_rules
			WHERE employee_id = $1 AND company_id = $2
		`, employeeID, companyID); err != nil {
			return fmt.Errorf("failed to clear weekday rules: %w", err)
		}

		insert := `
			INSERT INTO work_schedule_rules (
				id, company_id, employee_id, weekday,
				entry_time, exit_time, break_start_time, break_end_time,
				created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		`
		for _, rule := range rules {
			if _, err := q.Exec(txCtx, insert,
				uuid.NewString(), companyID, employeeID, rule.Weekday,
				rule.Entry, rule.Exit, rule.BreakStart, rule.BreakEnd,
			); err != nil {
				return fmt.Errorf("failed to insert weekday rule: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return schedule.WorkSchedule{}, err
	}

	if len(rules) == 0 {
		// Cleared schedule: the employee simply has no required workdays.
		return schedule.WorkSchedule{EmployeeID: employeeID, CompanyID: companyID}, nil
	}

	return r.GetByEmployeeID(ctx, employeeID, companyID)
}

// DeleteRule implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) DeleteRule(ctx context.Context, employeeID string, companyID string, weekday int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM work_schedule_rules
		WHERE employee_id = $1 AND company_id = $2 AND weekday = $3
	`, employeeID, companyID, weekday)
	if err != nil {
		return fmt.Errorf("failed to delete weekday rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrRuleNotFound
	}
	return nil
}
