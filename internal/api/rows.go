package api

import (
	"fmt"
	"time"

	"tempo/internal/models"
)

// Row representations of the two store tables. Timestamps cross the wire
// as ISO-8601 strings; money amounts are whole currency units.

type projectRow struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	TotalTime   int64   `json:"total_time"`
	RatePerHour int64   `json:"rate_per_hour"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type sessionRow struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"project_id"`
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time,omitempty"`
	Duration  int64   `json:"duration"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type projectPatchRow struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	TotalTime   *int64  `json:"total_time,omitempty"`
	RatePerHour *int64  `json:"rate_per_hour,omitempty"`
	UpdatedAt   string  `json:"updated_at"`
}

type sessionPatchRow struct {
	EndTime  *string `json:"end_time,omitempty"`
	Duration *int64  `json:"duration,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

const timeFormat = time.RFC3339Nano

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

// projectToRow converts a project to its row representation. Sessions are
// stored separately and never travel inside the project row.
func projectToRow(project *models.Project, now time.Time) projectRow {
	row := projectRow{
		ID:          project.ID,
		Name:        project.Name,
		TotalTime:   project.TotalTime,
		RatePerHour: project.RatePerHour,
		CreatedAt:   formatTimestamp(project.CreatedAt),
		UpdatedAt:   formatTimestamp(now),
	}
	if project.Description != "" {
		row.Description = &project.Description
	}
	return row
}

// projectFromRow converts a row back to a project. Sessions come back
// empty; they are loaded separately.
func projectFromRow(row projectRow) (*models.Project, error) {
	createdAt, err := parseTimestamp(row.CreatedAt)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		ID:          row.ID,
		Name:        row.Name,
		TotalTime:   row.TotalTime,
		RatePerHour: row.RatePerHour,
		CreatedAt:   createdAt,
	}
	if row.Description != nil {
		project.Description = *row.Description
	}
	return project, nil
}

func sessionToRow(session *models.TimeSession, now time.Time) sessionRow {
	row := sessionRow{
		ID:        session.ID,
		ProjectID: session.ProjectID,
		StartTime: formatTimestamp(session.StartTime),
		Duration:  session.Duration,
		CreatedAt: formatTimestamp(now),
	}
	if session.EndTime != nil {
		end := formatTimestamp(*session.EndTime)
		row.EndTime = &end
	}
	if session.Notes != "" {
		row.Notes = &session.Notes
	}
	return row
}

func sessionFromRow(row sessionRow) (models.TimeSession, error) {
	startTime, err := parseTimestamp(row.StartTime)
	if err != nil {
		return models.TimeSession{}, err
	}

	session := models.TimeSession{
		ID:        row.ID,
		ProjectID: row.ProjectID,
		StartTime: startTime,
		Duration:  row.Duration,
		IsActive:  false,
	}
	if row.EndTime != nil {
		endTime, err := parseTimestamp(*row.EndTime)
		if err != nil {
			return models.TimeSession{}, err
		}
		session.EndTime = &endTime
	}
	if row.Notes != nil {
		session.Notes = *row.Notes
	}
	return session, nil
}
