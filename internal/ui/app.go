package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tempo/internal/models"
	"tempo/internal/store"
	"tempo/internal/ui/components"
	"tempo/internal/util"
)

type mode int

const (
	modePick mode = iota
	modeTrack
	modeNote
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	timerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true).
			Padding(1, 2)

	timerPausedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")).
				Bold(true).
				Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)
)

// Model represents the tracking UI
type Model struct {
	Store     *store.Store
	Projects  components.ProjectListModel
	Spinner   spinner.Model
	NoteInput textinput.Model

	mode        mode
	lastSession string
	Width       int
	Height      int
	Ready       bool
}

// NewModel creates a new tracking UI model
func NewModel(st *store.Store) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	input := textinput.New()
	input.Placeholder = "What did you work on? (enter to save, esc to skip)"
	input.CharLimit = 200

	return Model{
		Store:     st,
		Spinner:   s,
		NoteInput: input,
		mode:      modePick,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, loadProjects(m.Store), tick())
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		m.Store.Tick()
		return m, tick()

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		if !m.Ready {
			m.Projects = components.NewProjectListModel(msg.Width, msg.Height-6)
			m.Projects.SetProjects(m.Store.Projects)
			m.Ready = true
		} else {
			m.Projects.List.SetSize(msg.Width, msg.Height-6)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		cmds = append(cmds, cmd)

	case projectsLoadedMsg:
		m.Store.ApplyProjects(msg.projects, msg.err)
		if m.Ready {
			m.Projects.SetProjects(m.Store.Projects)
		}
		return m, nil

	case sessionPersistedMsg:
		m.Store.IsLoading = false
		if msg.err != nil {
			// The session stays in progress so stop can be retried.
			// Stay on the tracking screen.
			m.Store.Err = "Error stopping timer: " + msg.err.Error()
			return m, nil
		}
		snapshot := m.Store.CommitSession(msg.committed)
		m.lastSession = msg.committed.ID
		m.mode = modeNote
		m.NoteInput.SetValue("")
		cmds = append(cmds, m.NoteInput.Focus())
		if snapshot != nil {
			cmds = append(cmds, syncProject(m.Store, snapshot))
		}
		return m, tea.Batch(cmds...)

	case projectSyncedMsg:
		if msg.err != nil {
			m.Store.Err = "Error syncing project: " + msg.err.Error()
		}
		return m, nil

	case noteSavedMsg:
		m.Store.IsLoading = false
		if msg.err != nil {
			m.Store.Err = "Error adding note: " + msg.err.Error()
		} else {
			m.Store.ApplyNote(msg.sessionID, msg.note)
		}
		m.mode = modePick
		if m.Ready {
			m.Projects.SetProjects(m.Store.Projects)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.Ready && m.mode == modePick {
		var cmd tea.Cmd
		m.Projects, cmd = m.Projects.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modePick:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.Store.IsLoading = true
			m.Store.Err = ""
			return m, loadProjects(m.Store)
		case "enter":
			if m.Projects.Selected == nil {
				return m, nil
			}
			m.Store.SetSelectedProject(m.Projects.Selected.ID)
			if err := m.Store.StartTimer(); err != nil {
				m.Store.Err = err.Error()
				return m, nil
			}
			m.mode = modeTrack
			return m, nil
		}

		var cmd tea.Cmd
		m.Projects, cmd = m.Projects.Update(msg)
		return m, cmd

	case modeTrack:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "p", " ":
			if m.Store.CurrentSession != nil && m.Store.CurrentSession.IsActive {
				m.Store.PauseTimer()
			} else {
				m.Store.ResumeTimer()
			}
			return m, nil
		case "s", "enter":
			committed := m.Store.FinishSession()
			if committed == nil {
				return m, nil
			}
			m.Store.IsLoading = true
			m.Store.Err = ""
			return m, persistSession(m.Store, committed)
		}

	case modeNote:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.mode = modePick
			return m, nil
		case "enter":
			if models.ValidateNote(m.NoteInput.Value()) != nil {
				// An empty note means skip.
				m.mode = modePick
				return m, nil
			}
			m.Store.IsLoading = true
			m.Store.Err = ""
			return m, saveNote(m.Store, m.lastSession, m.NoteInput.Value())
		}

		var cmd tea.Cmd
		m.NoteInput, cmd = m.NoteInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if !m.Ready {
		return "Initializing..."
	}

	title := titleStyle.Render("tempo")

	var body string
	switch m.mode {
	case modePick:
		body = m.Projects.View()
	case modeTrack:
		body = m.trackView()
	case modeNote:
		body = labelStyle.Render("Session saved. Add a note?") + "\n\n" + m.NoteInput.View()
	}

	var status string
	if m.Store.IsLoading {
		status = fmt.Sprintf("%s Saving...", m.Spinner.View())
	}

	errorView := ""
	if m.Store.Err != "" {
		errorView = errorStyle.Render(m.Store.Err)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		body,
		status,
		errorView,
		m.helpView(),
	)
}

func (m Model) trackView() string {
	session := m.Store.CurrentSession
	if session == nil {
		return labelStyle.Render("No session in progress")
	}

	var project string
	var earned int64
	for _, p := range m.Store.Projects {
		if p.ID == session.ProjectID {
			project = p.Name
			earned = util.CalculateEarnings(m.Store.CurrentDuration(), p.RatePerHour)
		}
	}

	clock := util.FormatTime(m.Store.CurrentDuration())
	style := timerStyle
	state := "tracking"
	if !session.IsActive {
		style = timerPausedStyle
		state = "paused"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		labelStyle.Render(fmt.Sprintf("%s · %s", project, state)),
		style.Render(clock),
		labelStyle.Render(fmt.Sprintf("earned so far: %s", util.FormatCurrency(earned))),
	)
}

func (m Model) helpView() string {
	switch m.mode {
	case modeTrack:
		return helpStyle.Render("p pause/resume · s stop · ctrl+c quit")
	case modeNote:
		return helpStyle.Render("enter save · esc skip")
	default:
		return helpStyle.Render("enter start timer · r refresh · q quit")
	}
}

// Messages
type tickMsg time.Time

type projectsLoadedMsg struct {
	projects []*models.Project
	err      error
}

type sessionPersistedMsg struct {
	committed *models.TimeSession
	err       error
}

type projectSyncedMsg struct {
	err error
}

type noteSavedMsg struct {
	sessionID string
	note      string
	err       error
}

// Commands. These run on bubbletea's command goroutines, so they only do
// gateway I/O and hand the result back in a message; the store is mutated
// in Update, on the program loop.
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func loadProjects(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		projects, err := st.FetchProjects()
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

func persistSession(st *store.Store, committed *models.TimeSession) tea.Cmd {
	return func() tea.Msg {
		return sessionPersistedMsg{committed: committed, err: st.PersistSession(committed)}
	}
}

func syncProject(st *store.Store, snapshot *models.Project) tea.Cmd {
	return func() tea.Msg {
		return projectSyncedMsg{err: st.SyncProject(snapshot)}
	}
}

func saveNote(st *store.Store, sessionID, note string) tea.Cmd {
	return func() tea.Msg {
		return noteSavedMsg{sessionID: sessionID, note: note, err: st.PersistNote(sessionID, note)}
	}
}
