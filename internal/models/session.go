package models

import (
	"time"
)

// TimeSession represents one contiguous interval of tracked time against
// a project. A session exists only in memory between Start and Stop; it is
// persisted and folded into its project's total time at stop.
type TimeSession struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"project_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Duration  int64      `json:"duration"` // milliseconds, 0 until stopped
	IsActive  bool       `json:"is_active"`
	Notes     string     `json:"notes,omitempty"`

	// Run-segment bookkeeping for the current (uncommitted) session.
	// Accumulated holds the milliseconds of completed run segments and
	// SegmentStart the start of the segment currently running. Paused
	// time is excluded from the committed duration through these two
	// fields. Neither is persisted.
	Accumulated  int64     `json:"-"`
	SegmentStart time.Time `json:"-"`
}

// ActiveDuration returns the tracked milliseconds as of now, excluding
// paused intervals.
func (s *TimeSession) ActiveDuration(now time.Time) int64 {
	total := s.Accumulated
	if s.IsActive {
		total += now.Sub(s.SegmentStart).Milliseconds()
	}
	return total
}

// SessionPatch is a partial update of a TimeSession. A nil field means
// "leave unchanged".
type SessionPatch struct {
	EndTime  *time.Time
	Duration *int64
	Notes    *string
}

// Apply merges the patch into the session.
func (p SessionPatch) Apply(session *TimeSession) {
	if p.EndTime != nil {
		session.EndTime = p.EndTime
	}
	if p.Duration != nil {
		session.Duration = *p.Duration
	}
	if p.Notes != nil {
		session.Notes = *p.Notes
	}
}
