package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordwave/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show attempt history",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}

		ctx := context.Background()

		mastered, skipped, err := repo.OutcomeTotals(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Lifetime: %d words mastered, %d skipped\n\n", mastered, skipped)

		sessions, err := repo.RecentSessions(ctx, 10)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No completed sessions yet.")
			return nil
		}

		fmt.Println("Recent sessions:")
		for _, s := range sessions {
			accuracy := 0.0
			if s.TotalAnswered > 0 {
				accuracy = float64(s.CorrectAnswers) / float64(s.TotalAnswered) * 100
			}
			fmt.Printf("  %s  %-10s %2d/%2d mastered  %3.0f%% accuracy  best run %d\n",
				s.Timestamp.Format("2006-01-02 15:04"),
				s.TestCode,
				s.MasteredCount, s.TotalWords,
				accuracy,
				s.BestCombo)
		}
		return nil
	},
}
