package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ritwika/khel/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "khel",
	Short: "Playful learning terminal app for young kids",
	Long:  "Khel — a terminal app where young children explore festivals, road safety and everyday skills through talking, tappable activities.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KHEL_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then KHEL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
