package server

import (
	"log/slog"

	appgames "github.com/preston-bernstein/nhl-shot-chart-service/internal/app/games"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/config"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/snapshots"
)

// buildDumper returns the raw JSON writer, or nil when dumps are off or games
// already come from local files.
func buildDumper(cfg config.Config, sources sourceSet, logger *slog.Logger) appgames.Dumper {
	if !cfg.Dumps.Enabled || sources.local {
		return nil
	}
	writer := snapshots.NewWriter(cfg.Dumps.Dir)
	if logger != nil {
		logger.Debug("raw dumps enabled", slog.String("dir", writer.BasePath()))
	}
	return writer
}
