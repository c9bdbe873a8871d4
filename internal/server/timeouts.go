package server

import "time"

const (
	readTimeout = 10 * time.Second
	// An aggregation issues a few dozen throttled upstream calls.
	writeTimeout = 3 * time.Minute
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
