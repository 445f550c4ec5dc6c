// Package events processes incoming chat messages: keeps them in the history, runs spam detection
// and escalates spam to the review queue. It also runs the history retention cleanup.
package events

import (
	"context"
	"time"

	"github.com/GregHolmes/discord-bot-spam-detector/lib/detector"
	"github.com/GregHolmes/discord-bot-spam-detector/lib/spamcheck"
)

//go:generate moq --out mocks/detector.go --pkg mocks --with-resets --skip-ensure . Detector
//go:generate moq --out mocks/history.go --pkg mocks --with-resets --skip-ensure . History
//go:generate moq --out mocks/reviewer.go --pkg mocks --with-resets --skip-ensure . Reviewer
//go:generate moq --out mocks/spam_logger.go --pkg mocks --with-resets --skip-ensure . SpamLogger

// Detector checks a message for spam
type Detector interface {
	Detect(ctx context.Context, req detector.Request) (spamcheck.Verdict, error)
}

// History keeps recent messages
type History interface {
	Save(ctx context.Context, msg spamcheck.StoredMessage) error
	Cleanup(ctx context.Context, olderThan time.Time) (int64, error)
}

// Reviewer accepts spam verdicts for moderator review
type Reviewer interface {
	Submit(ctx context.Context, req detector.Request, verdict spamcheck.Verdict) (int64, error)
}

// SpamLogger is an interface for spam logger
type SpamLogger interface {
	Save(req detector.Request, verdict spamcheck.Verdict)
}

// SpamLoggerFunc is a function that implements SpamLogger interface
type SpamLoggerFunc func(req detector.Request, verdict spamcheck.Verdict)

// Save is a function that implements SpamLogger interface
func (f SpamLoggerFunc) Save(req detector.Request, verdict spamcheck.Verdict) {
	f(req, verdict)
}
