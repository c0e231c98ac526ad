package database

import (
	"context"
	"database/sql"
	"fmt"

	"compliance_reminder_service/internal/domain/task"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// Custom errors
var ErrTaskNotFound = fmt.Errorf("reminder task not found")

type PostgresTaskRepository struct {
	db *sql.DB
}

func NewPostgresTaskRepository(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

const taskColumns = `id, owner_id, recipient, frequency, start_date, subject, message, active, last_sent_at, created_at, updated_at`

func (r *PostgresTaskRepository) Create(ctx context.Context, t *task.ReminderTask) error {
	query := `INSERT INTO reminder_tasks (id, owner_id, recipient, frequency, start_date, subject, message, active)
               VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
               RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		t.ID, t.OwnerID, t.Recipient, t.Frequency, t.StartDate, t.Subject, t.Message, t.Active,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating reminder task: %w", err)
	}
	return nil
}

func (r *PostgresTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*task.ReminderTask, error) {
	query := `SELECT ` + taskColumns + ` FROM reminder_tasks WHERE id = $1`
	t := &task.ReminderTask{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.OwnerID, &t.Recipient, &t.Frequency, &t.StartDate,
		&t.Subject, &t.Message, &t.Active, &t.LastSentAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("error getting reminder task by ID: %w", err)
	}
	return t, nil
}

// Update persists the mutable fields of a task. Frequency and start date are
// immutable after creation and deliberately excluded from the statement.
func (r *PostgresTaskRepository) Update(ctx context.Context, t *task.ReminderTask) error {
	query := `UPDATE reminder_tasks
               SET recipient = $1, subject = $2, message = $3, active = $4, last_sent_at = $5, updated_at = NOW()
               WHERE id = $6
               RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		t.Recipient, t.Subject, t.Message, t.Active, t.LastSentAt, t.ID,
	).Scan(&t.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrTaskNotFound
		}
		return fmt.Errorf("error updating reminder task: %w", err)
	}
	return nil
}

func (r *PostgresTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reminder_tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting reminder task: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading delete result: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *PostgresTaskRepository) ListActive(ctx context.Context) ([]*task.ReminderTask, error) {
	query := `SELECT ` + taskColumns + ` FROM reminder_tasks WHERE active = TRUE ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing active reminder tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *PostgresTaskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*task.ReminderTask, error) {
	query := `SELECT ` + taskColumns + ` FROM reminder_tasks WHERE owner_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing reminder tasks by owner: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *PostgresTaskRepository) ListAll(ctx context.Context) ([]*task.ReminderTask, error) {
	query := `SELECT ` + taskColumns + ` FROM reminder_tasks ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing all reminder tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

// Helper to scan multiple rows
func scanTasks(rows *sql.Rows) ([]*task.ReminderTask, error) {
	tasks := make([]*task.ReminderTask, 0)
	for rows.Next() {
		t := &task.ReminderTask{}
		if err := rows.Scan(
			&t.ID, &t.OwnerID, &t.Recipient, &t.Frequency, &t.StartDate,
			&t.Subject, &t.Message, &t.Active, &t.LastSentAt, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning reminder task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reminder task rows: %w", err)
	}
	return tasks, nil
}
