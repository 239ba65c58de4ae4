package models

import (
	"time"
)

// Project represents a billable unit of work with an hourly rate.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	TotalTime   int64         `json:"total_time"` // accumulated milliseconds across committed sessions
	RatePerHour int64         `json:"rate_per_hour"`
	Sessions    []TimeSession `json:"sessions,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ProjectPatch is a partial update of a Project. A nil field means
// "leave unchanged".
type ProjectPatch struct {
	Name        *string
	Description *string
	TotalTime   *int64
	RatePerHour *int64
}

// Apply merges the patch into the project. Sessions are never touched.
func (p ProjectPatch) Apply(project *Project) {
	if p.Name != nil {
		project.Name = *p.Name
	}
	if p.Description != nil {
		project.Description = *p.Description
	}
	if p.TotalTime != nil {
		project.TotalTime = *p.TotalTime
	}
	if p.RatePerHour != nil {
		project.RatePerHour = *p.RatePerHour
	}
}
