package app

import (
	"context"

	"github.com/jbeshir/idea-feed/internal/command"
)

// HotnessRefreshConfig returns the batch refresh tuning, with the default batch size
// overridable through HOTNESS_REFRESH_BATCH_SIZE.
func HotnessRefreshConfig(ctx context.Context) command.RefreshAllHotnessConfig {
	config := command.DefaultRefreshAllHotnessConfig()
	config.DefaultBatchSize = GetEnvAsIntOrDefault(ctx, "HOTNESS_REFRESH_BATCH_SIZE", config.DefaultBatchSize)
	config.StalenessWindow = GetEnvAsDurationOrDefault(ctx, "HOTNESS_STALENESS_WINDOW", config.StalenessWindow)
	return config
}
