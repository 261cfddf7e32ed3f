package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/goodhome/models"
)

// ErrorJournalRepository handles error journal persistence
type ErrorJournalRepository interface {
	Create(ctx context.Context, record *models.ErrorRecord) error
	Recent(ctx context.Context, limit int) ([]models.ErrorRecord, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
	Ping(ctx context.Context) error
}

type sqliteErrorJournalRepository struct {
	db *sql.DB
}

// NewErrorJournalRepository creates a new error journal repository
func NewErrorJournalRepository(db *sql.DB) ErrorJournalRepository {
	return &sqliteErrorJournalRepository{db: db}
}

// Create inserts a new error record
func (r *sqliteErrorJournalRepository) Create(ctx context.Context, record *models.ErrorRecord) error {
	query := `
		INSERT INTO error_journal (id, request_id, timestamp, method, path, status, message, user_agent, ip_address)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.RequestID,
		record.Timestamp.UTC(),
		record.Method,
		record.Path,
		record.Status,
		record.Message,
		record.UserAgent,
		record.IPAddress,
	)
	if err != nil {
		return fmt.Errorf("failed to create error record: %w", err)
	}

	return nil
}

// Recent retrieves the newest error records first
func (r *sqliteErrorJournalRepository) Recent(ctx context.Context, limit int) ([]models.ErrorRecord, error) {
	query := `
		SELECT id, request_id, timestamp, method, path, status, message, user_agent, ip_address
		FROM error_journal
		ORDER BY timestamp DESC, id ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query error records: %w", err)
	}
	defer rows.Close()

	var records []models.ErrorRecord
	for rows.Next() {
		var record models.ErrorRecord

		err := rows.Scan(
			&record.ID,
			&record.RequestID,
			&record.Timestamp,
			&record.Method,
			&record.Path,
			&record.Status,
			&record.Message,
			&record.UserAgent,
			&record.IPAddress,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan error record: %w", err)
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating error records: %w", err)
	}

	return records, nil
}

// DeleteBefore removes records older than cutoff and returns how many were removed
func (r *sqliteErrorJournalRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM error_journal WHERE timestamp < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete error records: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

// Ping checks that the database is reachable
func (r *sqliteErrorJournalRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
