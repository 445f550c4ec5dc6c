package detector

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Config is a set of parameters for Detector.
type Config struct {
	HeuristicThreshold  int     // heuristic score counted as spam, the fast path fires at twice this value
	AIThreshold         float64 // minimal AI confidence to count its spam classification, 0.0 - 1.0
	SimilarityThreshold float64 // minimal combined similarity to count a history record as a match, 0.0 - 1.0
	HistoryDays         int     // lookback window for the similarity scan, in days
}

// DefaultConfig returns the default detector parameters
func DefaultConfig() Config {
	return Config{HeuristicThreshold: 5, AIThreshold: 0.7, SimilarityThreshold: 0.7, HistoryDays: 7}
}

// Validate checks all parameters and returns all problems found
func (c Config) Validate() error {
	var errs error
	if c.HeuristicThreshold < 1 {
		errs = multierror.Append(errs, fmt.Errorf("heuristic threshold must be at least 1, got %d", c.HeuristicThreshold))
	}
	if c.AIThreshold < 0 || c.AIThreshold > 1 {
		errs = multierror.Append(errs, fmt.Errorf("ai threshold must be in [0, 1], got %v", c.AIThreshold))
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		errs = multierror.Append(errs, fmt.Errorf("similarity threshold must be in [0, 1], got %v", c.SimilarityThreshold))
	}
	if c.HistoryDays < 1 {
		errs = multierror.Append(errs, fmt.Errorf("history days must be at least 1, got %d", c.HistoryDays))
	}
	if errs != nil {
		return fmt.Errorf("invalid detector config: %w", errs)
	}
	return nil
}
