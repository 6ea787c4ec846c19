package server

import "time"

const (
	readTimeout = 10 * time.Second
	// Chart pages wait on up to three upstream documents plus rendering.
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout applies when the config carries no SHUTDOWN_TIMEOUT.
var shutdownTimeout = 10 * time.Second
