package events

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/GregHolmes/discord-bot-spam-detector/lib/detector"
	"github.com/GregHolmes/discord-bot-spam-detector/lib/spamcheck"
)

// Incoming is a message received from the chat platform with its author flags
type Incoming struct {
	detector.Request
	FromBot       bool // author is a bot
	FromModerator bool // author has moderation permissions
}

// Processor runs the message pipeline: history save, detection and escalation.
// A failure on one message never stops processing of others.
type Processor struct {
	Detector   Detector
	History    History
	Reviewer   Reviewer
	SpamLogger SpamLogger
	Recent     *spamcheck.LastChecks // optional, keeps last checked messages
}

// NewProcessor makes a Processor. SpamLogger and Recent are optional.
func NewProcessor(p Processor) (*Processor, error) {
	if p.Detector == nil || p.History == nil || p.Reviewer == nil {
		return nil, errors.New("detector, history and reviewer are required")
	}
	if p.SpamLogger == nil {
		p.SpamLogger = SpamLoggerFunc(func(detector.Request, spamcheck.Verdict) {})
	}
	return &p, nil
}

// Process handles a single incoming message and returns the verdict.
// Returns nil for skipped messages and for messages detection failed on, the latter are treated as not spam.
func (p *Processor) Process(ctx context.Context, in Incoming) *spamcheck.Verdict {
	msg := in.Msg
	switch {
	case strings.TrimSpace(msg.Text) == "":
		log.Printf("[DEBUG] skip empty message %s", msg.ID)
		return nil
	case in.FromBot:
		log.Printf("[DEBUG] skip message %s from bot %s", msg.ID, msg.AuthorID)
		return nil
	case in.FromModerator:
		log.Printf("[DEBUG] skip message %s from moderator %s", msg.ID, msg.AuthorID)
		return nil
	}

	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
		in.Msg = msg
	}

	// saved before detection, the detector excludes the message itself by id
	if err := p.History.Save(ctx, msg.Stored()); err != nil {
		log.Printf("[WARN] failed to save message %s to history: %v", msg.ID, err)
	}

	verdict, err := p.Detector.Detect(ctx, in.Request)
	if err != nil {
		log.Printf("[WARN] failed to check message %s, treated as not spam: %v", msg.ID, err)
		return nil
	}
	if p.Recent != nil {
		p.Recent.Push(spamcheck.Check{Msg: msg, Verdict: verdict})
	}

	if !verdict.IsSpam {
		log.Printf("[DEBUG] message %s from %s is not spam: %s", msg.ID, msg.AuthorID, verdict)
		return &verdict
	}

	log.Printf("[INFO] spam detected, message %s from %s: %s", msg.ID, msg.AuthorID, verdict)
	p.SpamLogger.Save(in.Request, verdict)
	if _, err := p.Reviewer.Submit(ctx, in.Request, verdict); err != nil {
		log.Printf("[WARN] failed to submit message %s for review: %v", msg.ID, err)
	}
	return &verdict
}

// RunCleanup removes history messages older than historyDays, once at start and then every interval.
// Blocks until the context is canceled.
func (p *Processor) RunCleanup(ctx context.Context, interval time.Duration, historyDays int) {
	log.Printf("[DEBUG] history cleanup every %v, keep %d days", interval, historyDays)
	cleanup := func() {
		olderThan := time.Now().AddDate(0, 0, -historyDays)
		count, err := p.History.Cleanup(ctx, olderThan)
		if err != nil {
			log.Printf("[WARN] history cleanup failed: %v", err)
			return
		}
		if count > 0 {
			log.Printf("[INFO] history cleanup removed %d messages", count)
		}
	}

	cleanup()
	if interval <= 0 {
		log.Printf("[WARN] invalid history cleanup interval %v, periodic cleanup disabled", interval)
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cleanup()
		}
	}
}
