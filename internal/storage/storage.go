package storage

import (
	"context"
)

// The store server is deliberately dumb: it persists rows and hands them
// back. Timestamps stay ISO-8601 strings end to end; all interpretation
// happens on the client.

// ProjectRecord mirrors a row of the projects table.
type ProjectRecord struct {
	ID          string
	Name        string
	Description *string
	TotalTime   int64
	RatePerHour int64
	CreatedAt   string
	UpdatedAt   string
}

// SessionRecord mirrors a row of the sessions table.
type SessionRecord struct {
	ID        string
	ProjectID string
	StartTime string
	EndTime   *string
	Duration  int64
	Notes     *string
	CreatedAt string
}

// ProjectRepository persists project rows.
type ProjectRepository interface {
	Create(ctx context.Context, record *ProjectRecord) error
	GetByID(ctx context.Context, id string) (*ProjectRecord, error)
	// List returns all projects ordered by creation descending.
	List(ctx context.Context) ([]*ProjectRecord, error)
	Update(ctx context.Context, record *ProjectRecord) error
	// Delete removes a project row. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id string) error
}

// SessionRepository persists session rows.
type SessionRepository interface {
	Create(ctx context.Context, record *SessionRecord) error
	GetByID(ctx context.Context, id string) (*SessionRecord, error)
	// ListByProject returns a project's sessions ordered by start time
	// descending.
	ListByProject(ctx context.Context, projectID string) ([]*SessionRecord, error)
	Update(ctx context.Context, record *SessionRecord) error
	// DeleteByProject removes all of a project's session rows.
	DeleteByProject(ctx context.Context, projectID string) error
}

// Storage bundles the repositories over one database.
type Storage interface {
	Projects() ProjectRepository
	Sessions() SessionRepository
	Close() error
}
