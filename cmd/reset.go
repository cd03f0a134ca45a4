package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the local attempt history",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to delete without --yes")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		if err := os.Remove(dbPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("No attempt history found.")
				return nil
			}
			return fmt.Errorf("remove database: %w", err)
		}
		// WAL sidecars, if present.
		_ = os.Remove(dbPath + "-wal")
		_ = os.Remove(dbPath + "-shm")

		fmt.Println("Attempt history deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
