package absence

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/obraflow/obraflow-backend-go/internal/domain/absence"
	"github.com/obraflow/obraflow-backend-go/internal/domain/employee"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
)

type AbsenceServiceImpl struct {
	absenceRepo  absence.AbsenceRepository
	employeeRepo employee.EmployeeRepository
}

func NewAbsenceService(absenceRepo absence.AbsenceRepository, employeeRepo employee.EmployeeRepository) absence.AbsenceService {
	return &AbsenceServiceImpl{
		absenceRepo:  absenceRepo,
		employeeRepo: employeeRepo,
	}
}

// UpsertAbsence implements absence.AbsenceService. Keyed on (employee,
// date): re-approving the same day replaces the earlier record.
func (s *AbsenceServiceImpl) UpsertAbsence(ctx context.Context, req absence.UpsertAbsenceRequest) (absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	companyID, userID, err := claimsFromContext(ctx)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return absence.AbsenceResponse{}, employee.ErrEmployeeNotFound
		}
		return absence.AbsenceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.Active {
		return absence.AbsenceResponse{}, employee.ErrEmployeeInactive
	}

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	record := absence.Absence{
		CompanyID:     companyID,
		EmployeeID:    req.EmployeeID,
		Date:          date,
		AbsenceTypeID: req.AbsenceTypeID,
		CreditedHours: req.CreditedHours,
		CreatedBy:     userID,
	}

	saved, err := s.absenceRepo.Upsert(ctx, record)
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to upsert absence: %w", err)
	}

	return absence.AbsenceResponse{
		ID:            saved.ID,
		EmployeeID:    saved.EmployeeID,
		Date:          saved.Date.String(),
		AbsenceTypeID: saved.AbsenceTypeID,
		CreditedHours: saved.CreditedHours,
		CreatedBy:     saved.CreatedBy,
	}, nil
}

// DeleteAbsence implements absence.AbsenceService.
func (s *AbsenceServiceImpl) DeleteAbsence(ctx context.Context, id string) error {
	companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.absenceRepo.Delete(ctx, id, companyID); err != nil {
		if errors.Is(err, absence.ErrAbsenceNotFound) {
			return absence.ErrAbsenceNotFound
		}
		return fmt.Errorf("failed to delete absence: %w", err)
	}
	return nil
}

func claimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, ok = claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return companyID, userID, nil
}
