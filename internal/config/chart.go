package config

import "strings"

// ChartConfig holds request defaults and rendering options for shot charts.
type ChartConfig struct {
	DefaultSource     string
	DefaultGameID     string
	DefaultEdgeGameID string
	DefaultTeamID     string
	DefaultSeasonID   string
	DefaultTimezone   string
	ShowShotAttempts  bool
	QRDir             string
}

func loadChart() ChartConfig {
	source := strings.ToLower(envOrDefault(envDefaultSource, defaultSource))
	if source != "legacy" && source != "edge" {
		source = defaultSource
	}
	return ChartConfig{
		DefaultSource:     source,
		DefaultGameID:     envOrDefault(envDefaultGameID, defaultGameID),
		DefaultEdgeGameID: envOrDefault(envDefaultEdgeGame, defaultEdgeGameID),
		DefaultTeamID:     envOrDefault(envDefaultTeamID, defaultTeamID),
		DefaultSeasonID:   envOrDefault(envDefaultSeasonID, defaultSeasonID),
		DefaultTimezone:   envOrDefault(envDefaultTimezone, defaultTimezone),
		ShowShotAttempts:  boolEnvOrDefault(envShowAttempts, false),
		QRDir:             envOrDefault(envQRDir, defaultQRDir),
	}
}
