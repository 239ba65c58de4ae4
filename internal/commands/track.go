package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tempo/internal/ui"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Open the interactive tracking view",
	Long:  "Open the full-screen view: pick a project, then start, pause, and stop the timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		st.LoadProjects()
		if st.Err != "" {
			fmt.Println("Error loading projects:", st.Err)
			return nil
		}
		if len(st.Projects) == 0 {
			fmt.Println("No projects yet. Use 'tempo project add' to create one.")
			return nil
		}

		p := tea.NewProgram(ui.NewModel(st), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running tracking view: %w", err)
		}

		return nil
	},
}
