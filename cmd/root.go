package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studyplan",
	Short: "AI study planner with oral assessments",
	Long: "Studyplan — terminal study planner that designs a module roadmap for " +
		"your learning goal, maps it onto a weekly calendar, and gates progress " +
		"behind scored oral assessments.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYPLAN_DB env var)")
	rootCmd.PersistentFlags().String("owner", "local", "Learner whose schedule to operate on")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(vivaCmd)
	rootCmd.AddCommand(retakeCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then STUDYPLAN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func ownerID(cmd *cobra.Command) string {
	owner, _ := cmd.Flags().GetString("owner")
	if owner == "" {
		owner = "local"
	}
	return owner
}
