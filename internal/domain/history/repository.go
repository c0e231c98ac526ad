package history

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines operations for the dispatch audit trail. Records are
// append-only; there are no update or delete operations.
type Repository interface {
	Append(ctx context.Context, rec *DispatchRecord) error
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*DispatchRecord, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*DispatchRecord, error)
}
