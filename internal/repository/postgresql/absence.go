package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/obraflow/obraflow-backend-go/internal/domain/absence"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/database"
)

type absenceRepository struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepository{db: db}
}

// Upsert implements absence.AbsenceRepository. The unique index on
// (employee_id, date) keeps at most one abono per employee-day.
func (r *absenceRepository) Upsert(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absences (
			id, company_id, employee_id, date, absence_type_id,
			credited_hours, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (employee_id, date) DO UPDATE SET
			absence_type_id = EXCLUDED.absence_type_id,
			credited_hours = EXCLUDED.credited_hours,
			created_by = EXCLUDED.created_by,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(), a.CompanyID, a.EmployeeID, a.Date.Time(),
		a.AbsenceTypeID, a.CreditedHours, a.CreatedBy,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		return absence.Absence{}, fmt.Errorf("failed to upsert absence: %w", err)
	}

	return a, nil
}

// ListByEmployeePeriod implements absence.AbsenceRepository.
func (r *absenceRepository) ListByEmployeePeriod(ctx context.Context, employeeID string, companyID string, period calendar.Period) ([]absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, date, absence_type_id,
			   credited_hours, created_by, created_at, updated_at
		FROM absences
		WHERE employee_id = $1 AND company_id = $2
		  AND date BETWEEN $3 AND $4
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, period.Start.Time(), period.End.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}
	defer rows.Close()

	var absences []absence.Absence
	for rows.Next() {
		var a absence.Absence
		var date time.Time
		if err := rows.Scan(
			&a.ID, &a.CompanyID, &a.EmployeeID, &date, &a.AbsenceTypeID,
			&a.CreditedHours, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}
		a.Date = calendar.DateOf(date)
		absences = append(absences, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate absences: %w", err)
	}

	return absences, nil
}

// Delete implements absence.AbsenceRepository.
func (r *absenceRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM absences
		WHERE id = $1 AND company_id = $2
	`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete absence: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return absence.ErrAbsenceNotFound
	}
	return nil
}
