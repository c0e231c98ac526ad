package database

import (
	"context"
	"database/sql"
	"fmt"

	"compliance_reminder_service/internal/domain/history"

	"github.com/google/uuid"
)

type PostgresHistoryRepository struct {
	db *sql.DB
}

func NewPostgresHistoryRepository(db *sql.DB) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{db: db}
}

func (r *PostgresHistoryRepository) Append(ctx context.Context, rec *history.DispatchRecord) error {
	query := `INSERT INTO dispatch_records (id, task_id, owner_id, recipient, status, error, sent_at)
               VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.TaskID, rec.OwnerID, rec.Recipient, rec.Status, rec.Error, rec.SentAt,
	)
	if err != nil {
		return fmt.Errorf("error appending dispatch record: %w", err)
	}
	return nil
}

func (r *PostgresHistoryRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*history.DispatchRecord, error) {
	query := `SELECT id, task_id, owner_id, recipient, status, error, sent_at
               FROM dispatch_records WHERE task_id = $1 ORDER BY sent_at DESC`

	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("error querying dispatch records by task: %w", err)
	}
	defer rows.Close()
	return scanDispatchRecords(rows)
}

func (r *PostgresHistoryRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*history.DispatchRecord, error) {
	query := `SELECT id, task_id, owner_id, recipient, status, error, sent_at
               FROM dispatch_records WHERE owner_id = $1 ORDER BY sent_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error querying dispatch records by owner: %w", err)
	}
	defer rows.Close()
	return scanDispatchRecords(rows)
}

// Helper to scan multiple rows
func scanDispatchRecords(rows *sql.Rows) ([]*history.DispatchRecord, error) {
	records := make([]*history.DispatchRecord, 0)
	for rows.Next() {
		rec := &history.DispatchRecord{}
		if err := rows.Scan(
			&rec.ID, &rec.TaskID, &rec.OwnerID, &rec.Recipient, &rec.Status, &rec.Error, &rec.SentAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning dispatch record row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dispatch record rows: %w", err)
	}
	return records, nil
}
