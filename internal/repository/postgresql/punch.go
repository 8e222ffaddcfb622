package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/obraflow/obraflow-backend-go/internal/domain/punch"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}

// Upsert implements punch.PunchRepository. The unique index on
// (employee_id, date, type) makes the write idempotent; concurrent editors
// converge on the last write.
func (r *punchRepository) Upsert(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (
			id, company_id, employee_id, date, type, punched_at,
			manually_edited, edited_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (employee_id, date, type) DO UPDATE SET
			punched_at = EXCLUDED.punched_at,
			manually_edited = EXCLUDED.manually_edited,
			edited_by = EXCLUDED.edited_by,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(), p.CompanyID, p.EmployeeID, p.Date.Time(), p.Type,
		p.PunchedAt, p.ManuallyEdited, p.EditedBy,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to upsert punch: %w", err)
	}

	return p, nil
}

// ListByEmployeePeriod implements punch.PunchRepository.
func (r *punchRepository) ListByEmployeePeriod(ctx context.Context, employeeID string, companyID string, period calendar.Period) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, date, type, punched_at,
			   manually_edited, edited_by, created_at, updated_at
		FROM punches
		WHERE employee_id = $1 AND company_id = $2
		  AND date BETWEEN $3 AND $4
		ORDER BY date, type
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, period.Start.Time(), period.End.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows)
}

// ListByCompanyDate implements punch.PunchRepository.
func (r *punchRepository) ListByCompanyDate(ctx context.Context, companyID string, date calendar.Date) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, date, type, punched_at,
			   manually_edited, edited_by, created_at, updated_at
		FROM punches
		WHERE company_id = $1 AND date = $2
		ORDER BY employee_id, type
	`

	rows, err := q.Query(ctx, query, companyID, date.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to list punches by date: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows)
}

// Delete implements punch.PunchRepository.
func (r *punchRepository) Delete(ctx context.Context, employeeID string, companyID string, date calendar.Date, punchType punch.Type) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM punches
		WHERE employee_id = $1 AND company_id = $2 AND date = $3 AND type = $4
	`, employeeID, companyID, date.Time(), punchType)
	if err != nil {
		return fmt.Errorf("failed to delete punch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return punch.ErrPunchNotFound
	}
	return nil
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanPunches(rows rowScanner) ([]punch.Punch, error) {
	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		var date time.Time
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.EmployeeID, &date, &p.Type, &p.PunchedAt,
			&p.ManuallyEdited, &p.EditedBy, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		p.Date = calendar.DateOf(date)
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punches: %w", err)
	}
	return punches, nil
}
