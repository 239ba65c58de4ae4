package api

import (
	"errors"
	"fmt"
	"time"

	"tempo/internal/models"
)

// AddSession persists a completed session row.
func (c *Client) AddSession(session *models.TimeSession) error {
	row := sessionToRow(session, time.Now())
	if err := c.do("POST", "/api/sessions", row, nil); err != nil {
		return fmt.Errorf("add session: %w", err)
	}
	return nil
}

// UpdateSession applies a partial field patch to a session row.
func (c *Client) UpdateSession(id string, patch models.SessionPatch) error {
	row := sessionPatchRow{
		Duration: patch.Duration,
		Notes:    patch.Notes,
	}
	if patch.EndTime != nil {
		end := formatTimestamp(*patch.EndTime)
		row.EndTime = &end
	}
	if err := c.do("PATCH", "/api/sessions/"+id, row, nil); err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

// GetSession fetches a single session by id. Returns
// models.ErrSessionNotFound when the store has no such row.
func (c *Client) GetSession(id string) (*models.TimeSession, error) {
	var row sessionRow
	if err := c.do("GET", "/api/sessions/"+id, nil, &row); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, models.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	session, err := sessionFromRow(row)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &session, nil
}
