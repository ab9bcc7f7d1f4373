package session

import "time"

// Config holds session controller configuration.
type Config struct {
	// PersistDebounce is how long after the last answer the progress
	// snapshot is written. Zero persists on every answer.
	PersistDebounce time.Duration

	// ReturnPath is where the sign-in flow sends the user back to when a
	// completed result is waiting for an account.
	ReturnPath string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		PersistDebounce: 2 * time.Second,
		ReturnPath:      "/quiz",
	}
}
