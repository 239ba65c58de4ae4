package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tempo/internal/models"
	"tempo/internal/store"
	"tempo/internal/util"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
	Long:  "Create, list, update, and delete billable projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new project",
	Long:  "Create a new billable project with an hourly rate",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")
		rate, _ := cmd.Flags().GetInt64("rate")

		// If name wasn't provided via flag, prompt for it
		if name == "" {
			fmt.Print("Project name: ")
			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				name = scanner.Text()
			}
		}

		if !cmd.Flags().Changed("rate") {
			fmt.Print("Hourly rate: ")
			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				parsed, err := strconv.ParseInt(strings.TrimSpace(scanner.Text()), 10, 64)
				if err != nil {
					fmt.Println("Error: rate must be a whole number")
					return nil
				}
				rate = parsed
			}
		}

		// Validation happens here, before the store is touched
		if err := models.ValidateProjectName(name); err != nil {
			fmt.Println("Error:", err)
			return nil
		}
		if err := models.ValidateDescription(description); err != nil {
			fmt.Println("Error:", err)
			return nil
		}
		if err := models.ValidateRate(rate); err != nil {
			fmt.Println("Error:", err)
			return nil
		}

		st := newStore()
		st.AddProject(strings.TrimSpace(name), description, rate)
		if st.Err != "" {
			fmt.Println("Error creating project:", st.Err)
			return nil
		}

		project := st.Projects[0]
		color.Green("Project created successfully!")
		fmt.Printf("ID: %s\n", project.ID)
		fmt.Printf("Name: %s\n", project.Name)
		fmt.Printf("Rate: %s/h\n", util.FormatCurrency(project.RatePerHour))

		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	Long:  "List all projects with tracked time and earnings",
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

		header := color.New(color.FgCyan, color.Bold)
		header.Printf("%-38s %-20s %10s %12s %12s\n", "ID", "NAME", "RATE", "TRACKED", "EARNED")

		for _, project := range st.Projects {
			fmt.Printf("%-38s %-20s %10s %12s %12s\n",
				project.ID,
				project.Name,
				util.FormatCurrency(project.RatePerHour),
				util.FormatDuration(project.TotalTime),
				util.FormatCurrency(util.CalculateEarnings(project.TotalTime, project.RatePerHour)),
			)
		}

		return nil
	},
}

var projectEditCmd = &cobra.Command{
	Use:   "edit <project>",
	Short: "Update a project",
	Long:  "Update a project's name, description, or hourly rate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		st.LoadProjects()
		if st.Err != "" {
			fmt.Println("Error loading projects:", st.Err)
			return nil
		}

		project := resolveProject(st, args[0])
		if project == nil {
			fmt.Printf("Project %q not found\n", args[0])
			return nil
		}

		var patch models.ProjectPatch
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			if err := models.ValidateProjectName(name); err != nil {
				fmt.Println("Error:", err)
				return nil
			}
			trimmed := strings.TrimSpace(name)
			patch.Name = &trimmed
		}
		if cmd.Flags().Changed("description") {
			description, _ := cmd.Flags().GetString("description")
			if err := models.ValidateDescription(description); err != nil {
				fmt.Println("Error:", err)
				return nil
			}
			patch.Description = &description
		}
		if cmd.Flags().Changed("rate") {
			rate, _ := cmd.Flags().GetInt64("rate")
			if err := models.ValidateRate(rate); err != nil {
				fmt.Println("Error:", err)
				return nil
			}
			patch.RatePerHour = &rate
		}

		if patch.Name == nil && patch.Description == nil && patch.RatePerHour == nil {
			fmt.Println("Nothing to update. Pass --name, --description, or --rate.")
			return nil
		}

		st.UpdateProject(project.ID, patch)
		if st.Err != "" {
			fmt.Println("Error updating project:", st.Err)
			return nil
		}

		color.Green("Project updated.")
		return nil
	},
}

var projectRemoveCmd = &cobra.Command{
	Use:   "rm <project>",
	Short: "Delete a project",
	Long:  "Delete a project and all of its recorded sessions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		st.LoadProjects()
		if st.Err != "" {
			fmt.Println("Error loading projects:", st.Err)
			return nil
		}

		project := resolveProject(st, args[0])
		if project == nil {
			fmt.Printf("Project %q not found\n", args[0])
			return nil
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("Delete %q and its %d sessions? [y/N] ", project.Name, len(project.Sessions))
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		st.DeleteProject(project.ID)
		if st.Err != "" {
			fmt.Println("Error deleting project:", st.Err)
			return nil
		}

		color.Green("Project deleted.")
		return nil
	},
}

// resolveProject finds a project by id or exact name
func resolveProject(st *store.Store, arg string) *models.Project {
	for _, project := range st.Projects {
		if project.ID == arg || project.Name == arg {
			return project
		}
	}
	return nil
}

func init() {
	projectAddCmd.Flags().String("name", "", "Project name (2-50 characters)")
	projectAddCmd.Flags().String("description", "", "Optional description")
	projectAddCmd.Flags().Int64("rate", 0, "Hourly rate in whole currency units")

	projectEditCmd.Flags().String("name", "", "New project name")
	projectEditCmd.Flags().String("description", "", "New description")
	projectEditCmd.Flags().Int64("rate", 0, "New hourly rate")

	projectRemoveCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectEditCmd)
	projectCmd.AddCommand(projectRemoveCmd)
}
