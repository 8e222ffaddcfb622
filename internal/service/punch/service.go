package punch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/obraflow/obraflow-backend-go/internal/domain/employee"
	"github.com/obraflow/obraflow-backend-go/internal/domain/punch"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
)

type PunchServiceImpl struct {
	punchRepo    punch.PunchRepository
	employeeRepo employee.EmployeeRepository
}

func NewPunchService(punchRepo punch.PunchRepository, employeeRepo employee.EmployeeRepository) punch.PunchService {
	return &PunchServiceImpl{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
	}
}

// UpsertPunch implements punch.PunchService. The write is an idempotent
// upsert on (employee, date, type): repeated or out-of-order edits converge
// on the last write, and the editing user is recorded for the audit trail.
func (s *PunchServiceImpl) UpsertPunch(ctx context.Context, req punch.UpsertPunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	companyID, userID, err := claimsFromContext(ctx)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return punch.PunchResponse{}, employee.ErrEmployeeNotFound
		}
		return punch.PunchResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.Active {
		return punch.PunchResponse{}, employee.ErrEmployeeInactive
	}

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		return punch.PunchResponse{}, err
	}
	punchedAt, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("invalid timestamp: %w", err)
	}

	record := punch.Punch{
		CompanyID:      companyID,
		EmployeeID:     req.EmployeeID,
		Date:           date,
		Type:           punch.Type(req.Type),
		PunchedAt:      punchedAt.UTC(),
		ManuallyEdited: true,
		EditedBy:       &userID,
	}

	saved, err := s.punchRepo.Upsert(ctx, record)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to upsert punch: %w", err)
	}

	return mapPunchToResponse(saved), nil
}

// DeletePunch implements punch.PunchService.
func (s *PunchServiceImpl) DeletePunch(ctx context.Context, req punch.DeletePunchRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		return err
	}

	if err := s.punchRepo.Delete(ctx, req.EmployeeID, companyID, date, punch.Type(req.Type)); err != nil {
		if errors.Is(err, punch.ErrPunchNotFound) {
			return punch.ErrPunchNotFound
		}
		return fmt.Errorf("failed to delete punch: %w", err)
	}
	return nil
}

func mapPunchToResponse(p punch.Punch) punch.PunchResponse {
	return punch.PunchResponse{
		ID:             p.ID,
		EmployeeID:     p.EmployeeID,
		Date:           p.Date.String(),
		Type:           string(p.Type),
		Timestamp:      p.PunchedAt.UTC().Format(time.RFC3339),
		ManuallyEdited: p.ManuallyEdited,
		EditedBy:       p.EditedBy,
	}
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
