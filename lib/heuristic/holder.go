package heuristic

import (
	"errors"
	"sync/atomic"

	"github.com/GregHolmes/discord-bot-spam-detector/lib/spamcheck"
)

// ErrNoScorer is returned by Holder.Set for a nil scorer.
var ErrNoScorer = errors.New("no scorer")

// Holder keeps the active Scorer and allows replacing it at runtime, e.g. on rules file reload.
// In-flight Analyze calls finish with the scorer they started with.
type Holder struct {
	scorer atomic.Pointer[Scorer]
}

// NewHolder makes a Holder with the initial scorer, default rules used if s is nil.
func NewHolder(s *Scorer) *Holder {
	if s == nil {
		s = defaultScorer
	}
	h := &Holder{}
	h.scorer.Store(s)
	return h
}

// Set replaces the active scorer.
func (h *Holder) Set(s *Scorer) error {
	if s == nil {
		return ErrNoScorer
	}
	h.scorer.Store(s)
	return nil
}

// Scorer returns the active scorer.
func (h *Holder) Scorer() *Scorer {
	return h.scorer.Load()
}

// Analyze scores text with the active scorer.
func (h *Holder) Analyze(text string) spamcheck.HeuristicResult {
	return h.scorer.Load().Analyze(text)
}
