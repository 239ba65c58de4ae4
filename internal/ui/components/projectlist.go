package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tempo/internal/models"
	"tempo/internal/util"
)

// ProjectItem represents a project in the picker list
type ProjectItem struct {
	Project *models.Project
}

// FilterValue returns the filter value for the project item
func (i ProjectItem) FilterValue() string {
	return i.Project.Name
}

// Title returns the title for the project item
func (i ProjectItem) Title() string {
	return i.Project.Name
}

// Description returns the description for the project item
func (i ProjectItem) Description() string {
	return fmt.Sprintf("%s/h · %s tracked · %s earned",
		util.FormatCurrency(i.Project.RatePerHour),
		util.FormatDuration(i.Project.TotalTime),
		util.FormatCurrency(util.CalculateEarnings(i.Project.TotalTime, i.Project.RatePerHour)),
	)
}

// ProjectListModel represents the project picker
type ProjectListModel struct {
	List     list.Model
	Projects []*models.Project
	Selected *models.Project
}

// NewProjectListModel creates a new project picker
func NewProjectListModel(width, height int) ProjectListModel {
	listModel := list.New([]list.Item{}, list.NewDefaultDelegate(), width, height)
	listModel.Title = "Projects"
	listModel.SetShowStatusBar(false)
	listModel.SetFilteringEnabled(true)
	listModel.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true).
		MarginLeft(2)

	return ProjectListModel{
		List:     listModel,
		Projects: []*models.Project{},
	}
}

// SetProjects sets the projects in the list, keeping the store's
// creation-descending order.
func (m *ProjectListModel) SetProjects(projects []*models.Project) {
	m.Projects = projects

	items := make([]list.Item, len(projects))
	for i, project := range projects {
		items[i] = ProjectItem{Project: project}
	}

	m.List.SetItems(items)
}

// Update handles picker updates
func (m ProjectListModel) Update(msg tea.Msg) (ProjectListModel, tea.Cmd) {
	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)

	// Update selected project
	if item, ok := m.List.SelectedItem().(ProjectItem); ok {
		m.Selected = item.Project
	} else {
		m.Selected = nil
	}

	return m, cmd
}

// View renders the picker
func (m ProjectListModel) View() string {
	return m.List.View()
}
