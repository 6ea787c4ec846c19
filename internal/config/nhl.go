package config

// NHLConfig controls how we reach the upstream NHL APIs.
type NHLConfig struct {
	LegacyBaseURL string
	EdgeBaseURL   string
	// SourceDir, when set, serves Edge games from previously dumped JSON files instead of the network.
	SourceDir string
}

func loadNHL() NHLConfig {
	return NHLConfig{
		LegacyBaseURL: envOrDefault(envLegacyBaseURL, defaultLegacyBaseURL),
		EdgeBaseURL:   envOrDefault(envEdgeBaseURL, defaultEdgeBaseURL),
		SourceDir:     envOrDefault(envSourceDir, ""),
	}
}
