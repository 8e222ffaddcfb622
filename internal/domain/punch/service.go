package punch

import "context"

// PunchService defines business logic for manual punch edits
type PunchService interface {
	// UpsertPunch applies a manual edit as an idempotent upsert, recording
	// the editing user for the audit trail
	UpsertPunch(ctx context.Context, req UpsertPunchRequest) (PunchResponse, error)

	// DeletePunch removes a punch by its natural key
	DeletePunch(ctx context.Context, req DeletePunchRequest) error
}
