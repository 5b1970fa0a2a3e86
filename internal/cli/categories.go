package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"trivia-quiz/internal/config"
	"trivia-quiz/internal/opentdb"
)

func newCategoriesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List trivia categories and their ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			client := opentdb.NewClientWithBaseURL(&http.Client{Timeout: 10 * time.Second}, cfg.API.BaseURL)
			cache := opentdb.NewCategoryCache(client, config.TTLDuration(cfg.API.CategoryTTL, 10*time.Minute))

			categories, err := cache.Categories(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, category := range categories {
				fmt.Fprintf(out, "%4d  %s\n", category.ID, category.Name)
			}
			return nil
		},
	}
}
