package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tempo/internal/models"
)

type sqliteSessionRepo struct {
	db *sql.DB
}

func (r *sqliteSessionRepo) Create(ctx context.Context, record *SessionRecord) error {
	query := `
		INSERT INTO sessions (id, project_id, start_time, end_time, duration, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.ProjectID,
		record.StartTime, record.EndTime,
		record.Duration, record.Notes, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *sqliteSessionRepo) GetByID(ctx context.Context, id string) (*SessionRecord, error) {
	query := `
		SELECT id, project_id, start_time, end_time, duration, notes, created_at
		FROM sessions WHERE id = ?
	`
	record := &SessionRecord{}
	var endTime, notes sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&record.ID, &record.ProjectID,
		&record.StartTime, &endTime,
		&record.Duration, &notes, &record.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session by id: %w", err)
	}
	if endTime.Valid {
		record.EndTime = &endTime.String
	}
	if notes.Valid {
		record.Notes = &notes.String
	}
	return record, nil
}

func (r *sqliteSessionRepo) ListByProject(ctx context.Context, projectID string) ([]*SessionRecord, error) {
	query := `
		SELECT id, project_id, start_time, end_time, duration, notes, created_at
		FROM sessions WHERE project_id = ? ORDER BY start_time DESC
	`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var records []*SessionRecord
	for rows.Next() {
		record := &SessionRecord{}
		var endTime, notes sql.NullString
		err := rows.Scan(
			&record.ID, &record.ProjectID,
			&record.StartTime, &endTime,
			&record.Duration, &notes, &record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if endTime.Valid {
			record.EndTime = &endTime.String
		}
		if notes.Valid {
			record.Notes = &notes.String
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *sqliteSessionRepo) Update(ctx context.Context, record *SessionRecord) error {
	query := `
		UPDATE sessions SET start_time = ?, end_time = ?, duration = ?, notes = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		record.StartTime, record.EndTime,
		record.Duration, record.Notes,
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return models.ErrSessionNotFound
	}
	return nil
}

func (r *sqliteSessionRepo) DeleteByProject(ctx context.Context, projectID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE project_id = ?", projectID); err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}
	return nil
}
