package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note <session-id> <text>",
	Short: "Annotate a recorded session",
	Long:  "Attach or overwrite the free-text note on an already recorded session",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]
		text := strings.Join(args[1:], " ")

		st := newStore()
		st.LoadProjects()
		if st.Err != "" {
			fmt.Println("Error loading projects:", st.Err)
			return nil
		}

		if err := st.AddSessionNote(sessionID, text); err != nil {
			fmt.Println("Error:", err)
			return nil
		}
		if st.Err != "" {
			fmt.Println("Error adding note:", st.Err)
			return nil
		}

		color.Green("Note saved.")
		return nil
	},
}
