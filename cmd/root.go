package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/wordwave/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wordwave",
	Short: "Adaptive vocabulary stage tests from the terminal",
	Long:  "WordWave — client for academy stage tests: repeated-exposure vocabulary drilling with wave-based word admission and per-word mastery tracking.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A .env beside the binary is optional; real env always wins.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORDWAVE_DB env var)")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WORDWAVE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
