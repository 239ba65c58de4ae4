package store

import (
	"time"

	"github.com/google/uuid"

	"tempo/internal/models"
)

// Timer state machine: Idle (no current session) -> Running -> Paused ->
// Running, or -> Idle via StopTimer, which commits the session. The
// current session lives only in memory until Stop.

// StartTimer begins a new session against the selected project. Valid
// only when no session is in progress; an empty selection is a
// validation failure and no session is created.
func (s *Store) StartTimer() error {
	if s.SelectedProject == "" {
		return models.ErrNoProjectSelected
	}
	if s.CurrentSession != nil {
		return nil
	}

	now := s.now()
	s.CurrentSession = &models.TimeSession{
		ID:           uuid.NewString(),
		ProjectID:    s.SelectedProject,
		StartTime:    now,
		Duration:     0,
		IsActive:     true,
		SegmentStart: now,
	}
	s.CurrentTime = now
	return nil
}

// PauseTimer suspends accrual. The elapsed run segment is banked into the
// session's accumulated total; paused time will not count toward the
// committed duration. No persistence call.
func (s *Store) PauseTimer() {
	session := s.CurrentSession
	if session == nil || !session.IsActive {
		return
	}

	now := s.now()
	session.Accumulated += now.Sub(session.SegmentStart).Milliseconds()
	session.IsActive = false
}

// ResumeTimer restarts accrual after a pause.
func (s *Store) ResumeTimer() {
	session := s.CurrentSession
	if session == nil || session.IsActive {
		return
	}

	session.SegmentStart = s.now()
	session.IsActive = true
}

// FinishSession returns the committed form of the current session as of
// now, without changing any state. Nil when no session is in progress.
func (s *Store) FinishSession() *models.TimeSession {
	if s.CurrentSession == nil {
		return nil
	}

	now := s.now()
	end := now

	committed := *s.CurrentSession
	committed.EndTime = &end
	committed.Duration = s.CurrentSession.ActiveDuration(now)
	committed.IsActive = false
	committed.Accumulated = 0
	committed.SegmentStart = time.Time{}
	return &committed
}

// PersistSession writes a finished session through the gateway without
// touching state.
func (s *Store) PersistSession(session *models.TimeSession) error {
	return s.gateway.AddSession(session)
}

// CommitSession folds a persisted session into its project and closes the
// timer. Returns a detached copy of the project for a follow-up sync, or
// nil when the project is no longer in the list.
func (s *Store) CommitSession(committed *models.TimeSession) *models.Project {
	project := s.findProject(committed.ProjectID)
	if project != nil {
		project.Sessions = append([]models.TimeSession{*committed}, project.Sessions...)
		project.TotalTime += committed.Duration
	}
	s.CurrentSession = nil
	s.SelectedProject = ""

	if project == nil {
		return nil
	}
	snapshot := *project
	snapshot.Sessions = append([]models.TimeSession(nil), project.Sessions...)
	return &snapshot
}

// SyncProject pushes a project snapshot through the gateway without
// touching state.
func (s *Store) SyncProject(project *models.Project) error {
	return s.gateway.SyncProject(project)
}

// StopTimer closes the current session and commits it: the session is
// persisted first, and only on success is it appended to the owning
// project and folded into its total time. A failed write leaves the
// session in progress so stop can be retried. The follow-up full-project
// sync is best-effort; its failure only sets Err.
func (s *Store) StopTimer() {
	committed := s.FinishSession()
	if committed == nil {
		return
	}

	if err := s.PersistSession(committed); err != nil {
		s.Err = "Error stopping timer: " + err.Error()
		return
	}

	if project := s.CommitSession(committed); project != nil {
		if err := s.SyncProject(project); err != nil {
			s.Err = "Error syncing project: " + err.Error()
		}
	}
}

// Tick refreshes the displayed current time. Driven once per second by
// the UI; performs no state transition and touches no persisted data.
func (s *Store) Tick() {
	s.CurrentTime = s.now()
}

// CurrentDuration returns the tracked milliseconds of the in-progress
// session as of the last tick, excluding paused intervals.
func (s *Store) CurrentDuration() int64 {
	if s.CurrentSession == nil {
		return 0
	}
	d := s.CurrentSession.ActiveDuration(s.CurrentTime)
	if d < 0 {
		return 0
	}
	return d
}
