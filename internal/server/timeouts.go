package server

import "time"

const (
	readTimeout = 10 * time.Second
	// A page fans out one fetch per entry, so writes get more room than reads.
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
