package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"trivia-quiz/internal/config"
	"trivia-quiz/internal/history"
)

func newHistoryCmd(configPath *string) *cobra.Command {
	var limit int
	var dbPath string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent game results",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			path := cfg.History.Path
			if dbPath != "" {
				path = dbPath
			}
			store, err := history.NewStore(path)
			if err != nil {
				return err
			}
			defer store.Close()

			results, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No games played yet.")
				return nil
			}
			for _, result := range results {
				fmt.Fprintf(out, "%s  %d/%d  difficulty=%s type=%s category=%d\n",
					result.PlayedAt.Format("2006-01-02 15:04"),
					result.Score, result.Total,
					result.Difficulty, result.Type, result.Category)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "number of results to show")
	cmd.Flags().StringVar(&dbPath, "db", "", "path to history database")
	return cmd
}
