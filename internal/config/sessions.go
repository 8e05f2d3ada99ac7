package config

// SessionsConfig bounds the browsing sessions the server keeps in memory.
type SessionsConfig struct {
	// Max is the number of live sessions; creating one more evicts the oldest.
	Max int
}

func loadSessions() SessionsConfig {
	return SessionsConfig{
		Max: intEnvOrDefault(envMaxSessions, defaultMaxSessions),
	}
}
