package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jbeshir/idea-feed/internal/app"
	"github.com/jbeshir/idea-feed/internal/command"
	"github.com/jbeshir/idea-feed/internal/domain"
	"github.com/spf13/cobra"
)

var errRefreshUnsuccessful = errors.New("hotness refresh exceeded its error budget")

func newRefreshHotnessCmd() *cobra.Command {
	var (
		batchSize int
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "refresh-hotness",
		Short: "Recompute hotness scores for stale ideas",
		Long: "Pages through public ideas, and private ideas still carrying a score, " +
			"recomputing each score from current favorites and views.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := domain.LoggerFromContext(ctx)

			repo, err := app.SetupIdeaRepository(ctx)
			if err != nil {
				return fmt.Errorf("setting up idea repository: %w", err)
			}

			refreshCmd := command.NewRefreshAllHotness(repo, app.HotnessRefreshConfig(ctx), nil)
			result, err := refreshCmd.Execute(ctx, command.RefreshAllHotnessRequest{
				BatchSize:   batchSize,
				ForceUpdate: force,
			})
			if err != nil {
				return fmt.Errorf("refreshing hotness after %d ideas: %w", result.ProcessedCount, err)
			}

			if err := json.NewEncoder(cmd.OutOrStdout()).Encode(result); err != nil {
				return fmt.Errorf("writing result: %w", err)
			}

			if !result.Success {
				return errRefreshUnsuccessful
			}
			logger.InfoContext(ctx, "hotness refresh completed",
				"processed_count", result.ProcessedCount,
				"error_count", result.ErrorCount)
			return nil
		},
	}

	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "ideas per page (default from HOTNESS_REFRESH_BATCH_SIZE or 100, max 1000)")
	cmd.Flags().BoolVar(&force, "force", false, "rescore every candidate, not only stale ones")
	return cmd
}
