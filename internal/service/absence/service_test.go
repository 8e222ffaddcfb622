package absence

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obraflow/obraflow-backend-go/internal/domain/absence"
	"github.com/obraflow/obraflow-backend-go/internal/domain/employee"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/validator"
)

func authedContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"company_id": "co-1",
		"user_id":    "user-1",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeEmployeeRepo struct{}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id, _ string) (employee.Employee, error) {
	if id != "emp-1" {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id, CompanyID: "co-1", Active: true}, nil
}

func (f *fakeEmployeeRepo) GetActiveByCompanyID(context.Context, string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListCompanyIDs(context.Context) ([]string, error) {
	return []string{"co-1"}, nil
}

type fakeAbsenceRepo struct {
	// keyed on employee|date: at most one absence per employee-day
	store map[string]absence.Absence
}

func absenceKey(employeeID string, date calendar.Date) string {
	return employeeID + "|" + date.String()
}

func (f *fakeAbsenceRepo) Upsert(_ context.Context, a absence.Absence) (absence.Absence, error) {
	if f.store == nil {
		f.store = make(map[string]absence.Absence)
	}
	a.ID = "abs-1"
	f.store[absenceKey(a.EmployeeID, a.Date)] = a
	return a, nil
}

func (f *fakeAbsenceRepo) ListByEmployeePeriod(context.Context, string, string, calendar.Period) ([]absence.Absence, error) {
	return nil, nil
}

func (f *fakeAbsenceRepo) Delete(_ context.Context, id, _ string) error {
	for key, a := range f.store {
		if a.ID == id {
			delete(f.store, key)
			return nil
		}
	}
	return absence.ErrAbsenceNotFound
}

func TestUpsertAbsence(t *testing.T) {
	repo := &fakeAbsenceRepo{}
	svc := NewAbsenceService(repo, &fakeEmployeeRepo{})

	resp, err := svc.UpsertAbsence(authedContext(t), absence.UpsertAbsenceRequest{
		EmployeeID:    "emp-1",
		Date:          "2025-03-05",
		AbsenceTypeID: "atestado",
		CreditedHours: 8,
	})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "2025-03-05", resp.Date)
	assert.Equal(t, "atestado", resp.AbsenceTypeID)
	assert.Equal(t, 8.0, resp.CreditedHours)
	assert.Equal(t, "user-1", resp.CreatedBy)
}

func TestUpsertAbsenceReplacesSameDay(t *testing.T) {
	repo := &fakeAbsenceRepo{}
	svc := NewAbsenceService(repo, &fakeEmployeeRepo{})
	ctx := authedContext(t)

	req := absence.UpsertAbsenceRequest{
		EmployeeID:    "emp-1",
		Date:          "2025-03-05",
		AbsenceTypeID: "atestado",
		CreditedHours: 8,
	}
	_, err := svc.UpsertAbsence(ctx, req)
	require.NoError(t, err)

	req.AbsenceTypeID = "folga"
	resp, err := svc.UpsertAbsence(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "folga", resp.AbsenceTypeID)
	assert.Len(t, repo.store, 1)
}

func TestUpsertAbsenceValidation(t *testing.T) {
	svc := NewAbsenceService(&fakeAbsenceRepo{}, &fakeEmployeeRepo{})
	ctx := authedContext(t)

	cases := []struct {
		name string
		req  absence.UpsertAbsenceRequest
	}{
		{"missing employee", absence.UpsertAbsenceRequest{Date: "2025-03-05", AbsenceTypeID: "atestado"}},
		{"bad date", absence.UpsertAbsenceRequest{EmployeeID: "emp-1", Date: "05/03/2025", AbsenceTypeID: "atestado"}},
		{"missing type", absence.UpsertAbsenceRequest{EmployeeID: "emp-1", Date: "2025-03-05"}},
		{"hours out of range", absence.UpsertAbsenceRequest{EmployeeID: "emp-1", Date: "2025-03-05", AbsenceTypeID: "atestado", CreditedHours: 30}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.UpsertAbsence(ctx, c.req)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestUpsertAbsenceUnknownEmployee(t *testing.T) {
	svc := NewAbsenceService(&fakeAbsenceRepo{}, &fakeEmployeeRepo{})

	_, err := svc.UpsertAbsence(authedContext(t), absence.UpsertAbsenceRequest{
		EmployeeID:    "ghost",
		Date:          "2025-03-05",
		AbsenceTypeID: "atestado",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteAbsence(t *testing.T) {
	repo := &fakeAbsenceRepo{}
	svc := NewAbsenceService(repo, &fakeEmployeeRepo{})
	ctx := authedContext(t)

	resp, err := svc.UpsertAbsence(ctx, absence.UpsertAbsenceRequest{
		EmployeeID:    "emp-1",
		Date:          "2025-03-05",
		AbsenceTypeID: "atestado",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAbsence(ctx, resp.ID))
	assert.Empty(t, repo.store)

	assert.ErrorIs(t, svc.DeleteAbsence(ctx, resp.ID), absence.ErrAbsenceNotFound)
}
