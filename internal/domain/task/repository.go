package task

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the operations for persisting and retrieving reminder tasks.
type Repository interface {
	Create(ctx context.Context, t *ReminderTask) error
	GetByID(ctx context.Context, id uuid.UUID) (*ReminderTask, error)
	Update(ctx context.Context, t *ReminderTask) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context) ([]*ReminderTask, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ReminderTask, error)
	ListAll(ctx context.Context) ([]*ReminderTask, error) // For admin purposes
}
