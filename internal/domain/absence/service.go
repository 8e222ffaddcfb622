package absence

import "context"

// AbsenceService defines business logic for absence (abono) records
type AbsenceService interface {
	// UpsertAbsence applies an approved excuse as an idempotent upsert
	// keyed on (employee, date), recording the creating user
	UpsertAbsence(ctx context.Context, req UpsertAbsenceRequest) (AbsenceResponse, error)

	// DeleteAbsence removes an absence by id
	DeleteAbsence(ctx context.Context, id string) error
}
