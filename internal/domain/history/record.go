package history

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Status is the outcome of a single dispatch attempt.
type Status string

const (
	StatusSent   Status = "SENT"
	StatusFailed Status = "FAILED"
)

// DispatchRecord is an immutable audit row created once per dispatch attempt.
// Task fields are denormalized at dispatch time so the record stays meaningful
// after the task is edited or deleted. Corresponds to the 'dispatch_records'
// table.
type DispatchRecord struct {
	ID        uuid.UUID
	TaskID    uuid.UUID
	OwnerID   uuid.UUID
	Recipient string
	Status    Status
	Error     sql.NullString // Present only for FAILED records
	SentAt    time.Time
}
