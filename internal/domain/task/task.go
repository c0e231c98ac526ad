package task

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Frequency is the recurrence cadence of a reminder task. Each known value
// maps to a fixed number of calendar months between occurrences.
type Frequency string

const (
	FrequencyMonthly    Frequency = "MONTHLY"
	FrequencyQuarterly  Frequency = "QUARTERLY"
	FrequencyHalfYearly Frequency = "HALF_YEARLY"
	FrequencyYearly     Frequency = "YEARLY"
)

// StepMonths returns the number of calendar months between occurrences.
// Unrecognized frequencies return 0, which makes the task inert rather than
// an error inside the dispatch batch.
func (f Frequency) StepMonths() int {
	switch f {
	case FrequencyMonthly:
		return 1
	case FrequencyQuarterly:
		return 3
	case FrequencyHalfYearly:
		return 6
	case FrequencyYearly:
		return 12
	default:
		return 0
	}
}

// ReminderTask is a recurring compliance reminder definition.
// Corresponds to the 'reminder_tasks' table.
type ReminderTask struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID // Owning admin; referential only, no cascade
	Recipient  string
	Frequency  Frequency // Immutable after creation
	StartDate  time.Time // Anchors the day-of-month for all occurrences
	Subject    string    // Falls back to the configured default when empty
	Message    string
	Active     bool
	LastSentAt sql.NullTime // Set only on successful dispatch
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
