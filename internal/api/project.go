package api

import (
	"errors"
	"fmt"
	"time"

	"tempo/internal/models"
)

// LoadProjects fetches all projects ordered by creation descending, then
// each project's sessions ordered by start time descending. One query per
// project; acceptable at this scale.
func (c *Client) LoadProjects() ([]*models.Project, error) {
	var projectRows []projectRow
	if err := c.do("GET", "/api/projects", nil, &projectRows); err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}

	projects := make([]*models.Project, 0, len(projectRows))
	for _, row := range projectRows {
		project, err := projectFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("load projects: %w", err)
		}

		var sessionRows []sessionRow
		if err := c.do("GET", "/api/projects/"+project.ID+"/sessions", nil, &sessionRows); err != nil {
			return nil, fmt.Errorf("load sessions for project %s: %w", project.ID, err)
		}

		sessions := make([]models.TimeSession, 0, len(sessionRows))
		for _, sr := range sessionRows {
			session, err := sessionFromRow(sr)
			if err != nil {
				return nil, fmt.Errorf("load sessions for project %s: %w", project.ID, err)
			}
			sessions = append(sessions, session)
		}
		project.Sessions = sessions

		projects = append(projects, project)
	}

	return projects, nil
}

// CreateProject persists a new project row.
func (c *Client) CreateProject(project *models.Project) error {
	row := projectToRow(project, time.Now())
	if err := c.do("POST", "/api/projects", row, nil); err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

// UpdateProject applies a partial field patch to a project row, stamping
// updated_at.
func (c *Client) UpdateProject(id string, patch models.ProjectPatch) error {
	row := projectPatchRow{
		Name:        patch.Name,
		Description: patch.Description,
		TotalTime:   patch.TotalTime,
		RatePerHour: patch.RatePerHour,
		UpdatedAt:   formatTimestamp(time.Now()),
	}
	if err := c.do("PATCH", "/api/projects/"+id, row, nil); err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// DeleteProject deletes a project's sessions and then the project row.
// The ordering satisfies the sessions.project_id foreign key.
func (c *Client) DeleteProject(id string) error {
	if err := c.do("DELETE", "/api/projects/"+id+"/sessions", nil, nil); err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}
	if err := c.do("DELETE", "/api/projects/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// SyncProject pushes a project's current state and upserts each of its
// sessions: sessions already present in the store are updated, the rest
// are inserted. Idempotent.
func (c *Client) SyncProject(project *models.Project) error {
	patch := models.ProjectPatch{
		Name:        &project.Name,
		Description: &project.Description,
		TotalTime:   &project.TotalTime,
		RatePerHour: &project.RatePerHour,
	}
	if err := c.UpdateProject(project.ID, patch); err != nil {
		return fmt.Errorf("sync project: %w", err)
	}

	for i := range project.Sessions {
		session := &project.Sessions[i]

		_, err := c.GetSession(session.ID)
		if errors.Is(err, models.ErrSessionNotFound) {
			if err := c.AddSession(session); err != nil {
				return fmt.Errorf("sync session %s: %w", session.ID, err)
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("sync session %s: %w", session.ID, err)
		}

		patch := models.SessionPatch{
			EndTime:  session.EndTime,
			Duration: &session.Duration,
		}
		if session.Notes != "" {
			patch.Notes = &session.Notes
		}
		if err := c.UpdateSession(session.ID, patch); err != nil {
			return fmt.Errorf("sync session %s: %w", session.ID, err)
		}
	}

	return nil
}
