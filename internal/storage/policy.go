package storage

import "time"

// MaxEntriesPerKind caps how many live entries of one kind may exist after
// a Cleanup pass. When exceeded, the oldest entries by write timestamp are
// evicted first.
const MaxEntriesPerKind = 100

// Policy bounds one entry kind.
type Policy struct {
	// TTL makes entries older than this invisible on read (lazy expiry).
	// Zero means reads never expire the kind.
	TTL time.Duration

	// MaxAge is the cleanup sweep threshold: entries older than this are
	// deleted by Cleanup. Zero means the sweep skips the kind.
	MaxAge time.Duration

	// Cap limits live entries of the kind after Cleanup. Zero means
	// MaxEntriesPerKind.
	Cap int
}

// Config holds the per-kind policy table.
type Config struct {
	Policies map[string]Policy
}

// DefaultConfig returns the standard policy table: temp and pending
// results expire after a day, progress never expires on read but is swept
// after a week, and the auth-flow marker goes stale in minutes.
func DefaultConfig() Config {
	return Config{
		Policies: map[string]Policy{
			KindProgress: {
				MaxAge: 7 * 24 * time.Hour,
			},
			KindTempResult: {
				TTL:    24 * time.Hour,
				MaxAge: 24 * time.Hour,
			},
			KindPendingResult: {
				TTL:    24 * time.Hour,
				MaxAge: 24 * time.Hour,
			},
			KindAuthFlow: {
				TTL:    10 * time.Minute,
				MaxAge: time.Hour,
			},
		},
	}
}

// policy returns the kind's policy, zero-valued for unknown kinds.
func (c Config) policy(kind string) Policy {
	return c.Policies[kind]
}

// cap returns the effective capacity for a policy.
func (p Policy) cap() int {
	if p.Cap > 0 {
		return p.Cap
	}
	return MaxEntriesPerKind
}
