package config

// DumpsConfig controls the raw upstream JSON debug dumps.
type DumpsConfig struct {
	Enabled bool
	Dir     string
}

func loadDumps() DumpsConfig {
	// Managed platforms mount a read-only filesystem, so dumps are never attempted there.
	enabled := boolEnvOrDefault(envDumpsEnabled, true) && !platformManaged()
	return DumpsConfig{
		Enabled: enabled,
		Dir:     envOrDefault(envDumpsDir, defaultDumpsDir),
	}
}
