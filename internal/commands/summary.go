package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tempo/internal/util"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show tracked time and earnings",
	Long:  "Show per-project totals, recent sessions, and overall earnings",
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

		showSessions, _ := cmd.Flags().GetInt("sessions")

		var totalTime, totalEarned int64
		bold := color.New(color.Bold)

		for _, project := range st.Projects {
			earned := util.CalculateEarnings(project.TotalTime, project.RatePerHour)
			totalTime += project.TotalTime
			totalEarned += earned

			bold.Println(project.Name)
			fmt.Printf("  %s tracked · %s/h · %s earned · %d sessions\n",
				util.FormatDuration(project.TotalTime),
				util.FormatCurrency(project.RatePerHour),
				util.FormatCurrency(earned),
				len(project.Sessions),
			)

			for i, session := range project.Sessions {
				if i >= showSessions {
					break
				}
				line := fmt.Sprintf("    %s  %s  %s",
					util.FormatDateTime(session.StartTime),
					util.FormatTime(session.Duration),
					session.Notes,
				)
				fmt.Println(line)
			}
		}

		fmt.Println()
		bold.Printf("Total: %s tracked · %s earned\n",
			util.FormatDuration(totalTime),
			util.FormatCurrency(totalEarned),
		)

		return nil
	},
}

func init() {
	summaryCmd.Flags().Int("sessions", 3, "Recent sessions to show per project")
}
