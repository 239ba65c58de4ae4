package commands

import (
	"tempo/internal/api"
	"tempo/internal/config"
	"tempo/internal/store"

	"github.com/spf13/cobra"
)

var globalConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "tempo",
	Short: "tempo - single-user time tracking and billing",
	Long: `tempo tracks the time you spend on billable projects. Create projects
with an hourly rate, run a timer against one of them, and tempo turns the
tracked time into earnings. Data is kept in a tempod store server.`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute(cfg *config.Config) error {
	globalConfig = cfg
	return rootCmd.Execute()
}

// newStore builds an application store backed by the configured server
func newStore() *store.Store {
	return store.New(api.NewClient(globalConfig.ServerURL))
}

func init() {
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(summaryCmd)
}
