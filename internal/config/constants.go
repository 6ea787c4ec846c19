package config

import "time"

const (
	envPort             = "PORT"
	envDotEnvPath       = "DOTENV_PATH"
	envLegacyBaseURL    = "NHL_LEGACY_BASE_URL"
	envEdgeBaseURL      = "NHL_EDGE_BASE_URL"
	envSourceDir        = "NHL_SOURCE_DIR"
	envDefaultSource    = "DEFAULT_CHART_SOURCE"
	envDefaultGameID    = "DEFAULT_GAME_ID"
	envDefaultEdgeGame  = "DEFAULT_EDGE_GAME_ID"
	envDefaultTeamID    = "DEFAULT_TEAM_ID"
	envDefaultSeasonID  = "DEFAULT_SEASON_ID"
	envDefaultTimezone  = "DEFAULT_TIMEZONE"
	envShowAttempts     = "SHOW_SHOT_ATTEMPTS_ANNOTATION"
	envStaticDir        = "STATIC_DIR"
	envQRDir            = "QR_CODE_DIR"
	envPublicBaseURL    = "PUBLIC_BASE_URL"
	envDumpsEnabled     = "RAW_DUMPS_ENABLED"
	envDumpsDir         = "RAW_DUMPS_DIR"
	envPlatformMarker   = "VERCEL"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envShutdownDeadline = "SHUTDOWN_TIMEOUT"

	defaultPort          = "8000"
	defaultLegacyBaseURL = "https://statsapi.web.nhl.com/api/v1"
	defaultEdgeBaseURL   = "https://api-web.nhle.com/v1"
	defaultSource        = "legacy"
	// 2023.05.13 Round 2 Game 6 of the 2023 Stanley Cup Playoffs.
	defaultGameID = "2022030236"
	// Seattle's first shootout win in 579 days, eight rounds over the Islanders.
	defaultEdgeGameID = "2023020248"
	// Seattle Kraken.
	defaultTeamID      = "55"
	defaultSeasonID    = "20222023"
	defaultTimezone    = "UTC"
	defaultStaticDir   = "static"
	defaultQRDir       = "tmp"
	defaultDumpsDir    = "data/raw"
	defaultMetricsPort = "9090"
	defaultServiceName = "nhl-shot-chart-service"

	defaultShutdownTimeout = 10 * time.Second
)
