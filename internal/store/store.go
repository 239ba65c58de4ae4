package store

import (
	"time"

	"github.com/google/uuid"

	"tempo/internal/models"
)

// Gateway is the persistence boundary the store writes through. The HTTP
// client in internal/api implements it.
type Gateway interface {
	LoadProjects() ([]*models.Project, error)
	CreateProject(project *models.Project) error
	UpdateProject(id string, patch models.ProjectPatch) error
	DeleteProject(id string) error
	AddSession(session *models.TimeSession) error
	UpdateSession(id string, patch models.SessionPatch) error
	SyncProject(project *models.Project) error
}

// Store holds the process-wide application state: the project list, the
// current timer session, the selection, and transient flags. In-memory
// state is the source of truth for the running process; the remote store
// is a durability sink. All mutation happens through the action methods,
// from a single goroutine, so the store takes no locks. The Fetch*,
// Persist*, and Sync* methods only call the gateway and touch no state;
// they are the only methods safe to call from another goroutine.
type Store struct {
	Projects        []*models.Project
	CurrentSession  *models.TimeSession
	SelectedProject string
	CurrentTime     time.Time
	IsLoading       bool
	Err             string

	gateway Gateway
	now     func() time.Time
}

// New creates a store backed by the given gateway.
func New(gateway Gateway) *Store {
	return NewWithClock(gateway, time.Now)
}

// NewWithClock creates a store with an injected clock.
func NewWithClock(gateway Gateway, now func() time.Time) *Store {
	return &Store{
		gateway:     gateway,
		now:         now,
		CurrentTime: now(),
	}
}

// FetchProjects reads the project list through the gateway without
// touching state, so it may run off the update loop. Pair with
// ApplyProjects on the loop.
func (s *Store) FetchProjects() ([]*models.Project, error) {
	return s.gateway.LoadProjects()
}

// ApplyProjects folds a FetchProjects result into the store. On failure
// the previous list is kept and Err is set.
func (s *Store) ApplyProjects(projects []*models.Project, err error) {
	if err != nil {
		s.Err = "Error loading projects: " + err.Error()
		s.IsLoading = false
		return
	}

	s.Projects = projects
	s.IsLoading = false
}

// LoadProjects replaces the in-memory project list from the store.
func (s *Store) LoadProjects() {
	s.IsLoading = true
	s.Err = ""

	projects, err := s.FetchProjects()
	s.ApplyProjects(projects, err)
}

// AddProject creates a project and prepends it to the list. Input
// validation is the caller's responsibility.
func (s *Store) AddProject(name, description string, ratePerHour int64) {
	s.IsLoading = true
	s.Err = ""

	project := &models.Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		RatePerHour: ratePerHour,
		TotalTime:   0,
		Sessions:    []models.TimeSession{},
		CreatedAt:   s.now(),
	}

	if err := s.gateway.CreateProject(project); err != nil {
		s.Err = "Error creating project: " + err.Error()
		s.IsLoading = false
		return
	}

	s.Projects = append([]*models.Project{project}, s.Projects...)
	s.IsLoading = false
}

// UpdateProject persists a partial update and merges it into the matching
// in-memory project. Sessions are never touched by the merge.
func (s *Store) UpdateProject(id string, patch models.ProjectPatch) {
	s.IsLoading = true
	s.Err = ""

	if err := s.gateway.UpdateProject(id, patch); err != nil {
		s.Err = "Error updating project: " + err.Error()
		s.IsLoading = false
		return
	}

	if project := s.findProject(id); project != nil {
		patch.Apply(project)
	}
	s.IsLoading = false
}

// DeleteProject deletes a project and its sessions, remote first. On
// success the project leaves the list and a matching selection is
// cleared. Deleting an id that is not in the list is a no-op remotely
// and locally.
func (s *Store) DeleteProject(id string) {
	s.IsLoading = true
	s.Err = ""

	if err := s.gateway.DeleteProject(id); err != nil {
		s.Err = "Error deleting project: " + err.Error()
		s.IsLoading = false
		return
	}

	kept := s.Projects[:0]
	for _, project := range s.Projects {
		if project.ID != id {
			kept = append(kept, project)
		}
	}
	s.Projects = kept

	if s.SelectedProject == id {
		s.SelectedProject = ""
	}
	s.IsLoading = false
}

// PersistNote writes a note patch for a session through the gateway
// without touching state. Validation is the caller's responsibility.
func (s *Store) PersistNote(sessionID, note string) error {
	return s.gateway.UpdateSession(sessionID, models.SessionPatch{Notes: &note})
}

// ApplyNote records a persisted note on the matching in-memory session.
func (s *Store) ApplyNote(sessionID, note string) {
	for _, project := range s.Projects {
		for i := range project.Sessions {
			if project.Sessions[i].ID == sessionID {
				project.Sessions[i].Notes = note
			}
		}
	}
}

// AddSessionNote attaches a note to a committed session. An empty note is
// a validation failure returned to the caller before any persistence
// call; persistence failures are reported through Err.
func (s *Store) AddSessionNote(sessionID, note string) error {
	if err := models.ValidateNote(note); err != nil {
		return err
	}

	s.IsLoading = true
	s.Err = ""

	if err := s.PersistNote(sessionID, note); err != nil {
		s.Err = "Error adding note: " + err.Error()
		s.IsLoading = false
		return nil
	}

	s.ApplyNote(sessionID, note)
	s.IsLoading = false
	return nil
}

// SetSelectedProject records the selection. Pure in-memory, never fails;
// StartTimer rejects an empty selection.
func (s *Store) SetSelectedProject(id string) {
	s.SelectedProject = id
}

// ClearError clears the last error message.
func (s *Store) ClearError() {
	s.Err = ""
}

func (s *Store) findProject(id string) *models.Project {
	for _, project := range s.Projects {
		if project.ID == id {
			return project
		}
	}
	return nil
}
