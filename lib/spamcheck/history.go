package spamcheck

import (
	"container/ring"
	"sync"
)

// Check is a checked message with its verdict
type Check struct {
	Msg     Message `json:"message"`
	Verdict Verdict `json:"verdict"`
}

// LastChecks keeps track of last N checks, thread-safe.
type LastChecks struct {
	checks *ring.Ring
	size   int
	lock   sync.RWMutex
}

// NewLastChecks creates new checks tracker
func NewLastChecks(size int) *LastChecks {
	// minimum size is 1
	if size < 1 {
		size = 1
	}
	return &LastChecks{
		checks: ring.New(size),
		size:   size,
	}
}

// Push adds new check to the history, the oldest one is dropped if full
func (h *LastChecks) Push(c Check) {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.checks.Value = c
	h.checks = h.checks.Next()
}

// Last returns up to n most recent checks in chronological order (oldest to newest)
func (h *LastChecks) Last(n int) []Check {
	if n < 1 {
		return []Check{}
	}

	h.lock.RLock()
	defer h.lock.RUnlock()

	// current position is the oldest slot, iteration goes oldest to newest
	all := make([]Check, 0, h.size)
	h.checks.Do(func(v any) {
		if c, ok := v.(Check); ok {
			all = append(all, c)
		}
	})

	if len(all) > n {
		all = all[len(all)-n:]
	}
	return all
}

// Size returns the capacity of checks history
func (h *LastChecks) Size() int {
	return h.size
}
