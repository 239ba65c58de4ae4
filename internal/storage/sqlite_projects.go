package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tempo/internal/models"
)

type sqliteProjectRepo struct {
	db *sql.DB
}

func (r *sqliteProjectRepo) Create(ctx context.Context, record *ProjectRecord) error {
	query := `
		INSERT INTO projects (id, name, description, total_time, rate_per_hour, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.Name, record.Description,
		record.TotalTime, record.RatePerHour,
		record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *sqliteProjectRepo) GetByID(ctx context.Context, id string) (*ProjectRecord, error) {
	query := `
		SELECT id, name, description, total_time, rate_per_hour, created_at, updated_at
		FROM projects WHERE id = ?
	`
	record := &ProjectRecord{}
	var description sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&record.ID, &record.Name, &description,
		&record.TotalTime, &record.RatePerHour,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project by id: %w", err)
	}
	if description.Valid {
		record.Description = &description.String
	}
	return record, nil
}

func (r *sqliteProjectRepo) List(ctx context.Context) ([]*ProjectRecord, error) {
	query := `
		SELECT id, name, description, total_time, rate_per_hour, created_at, updated_at
		FROM projects ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var records []*ProjectRecord
	for rows.Next() {
		record := &ProjectRecord{}
		var description sql.NullString
		err := rows.Scan(
			&record.ID, &record.Name, &description,
			&record.TotalTime, &record.RatePerHour,
			&record.CreatedAt, &record.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		if description.Valid {
			record.Description = &description.String
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *sqliteProjectRepo) Update(ctx context.Context, record *ProjectRecord) error {
	query := `
		UPDATE projects SET name = ?, description = ?, total_time = ?, rate_per_hour = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		record.Name, record.Description,
		record.TotalTime, record.RatePerHour, record.UpdatedAt,
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return models.ErrProjectNotFound
	}
	return nil
}

func (r *sqliteProjectRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
