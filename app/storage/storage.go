// Package storage keeps message history, the review queue of escalated messages and the moderation log.
// Each table is a struct with business-level methods on top of engine.SQL, working with both sqlite and postgres.
package storage

import (
	"errors"
	"time"
)

// ErrNotInitialized is returned by Messages methods called before Init
var ErrNotInitialized = errors.New("storage not initialized")

// ErrNotFound is returned for a missing record
var ErrNotFound = errors.New("not found")

// utc drops location and monotonic clock, so stored timestamps compare correctly as text in sqlite
func utc(t time.Time) time.Time {
	return t.UTC()
}
