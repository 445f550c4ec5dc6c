// Package review is the moderator workflow for escalated messages. Spam verdicts are queued for review,
// moderators resolve them by approving the message, warning the author or kicking the author.
package review

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/GregHolmes/discord-bot-spam-detector/app/storage"
	"github.com/GregHolmes/discord-bot-spam-detector/lib/detector"
	"github.com/GregHolmes/discord-bot-spam-detector/lib/spamcheck"
)

//go:generate moq --out mocks/queue.go --pkg mocks --skip-ensure . Queue:QueueMock
//go:generate moq --out mocks/moderation_log.go --pkg mocks --skip-ensure . ModerationLog:ModerationLogMock
//go:generate moq --out mocks/message_store.go --pkg mocks --skip-ensure . MessageStore:MessageStoreMock
//go:generate moq --out mocks/enforcer.go --pkg mocks --skip-ensure . Enforcer:EnforcerMock

// Queue is a persistent queue of escalated messages
type Queue interface {
	Add(ctx context.Context, item storage.ReviewItem) (int64, error)
	Get(ctx context.Context, id int64) (storage.ReviewItem, error)
	List(ctx context.Context, status storage.ReviewStatus, limit int) ([]storage.ReviewItem, error)
	Resolve(ctx context.Context, id int64, status storage.ReviewStatus, moderatorID string) error
}

// ModerationLog keeps moderator decisions
type ModerationLog interface {
	Add(ctx context.Context, entry storage.LogEntry) error
	List(ctx context.Context, limit int) ([]storage.LogEntry, error)
}

// MessageStore is a message history, spam messages are removed from it
type MessageStore interface {
	Delete(ctx context.Context, id string) error
}

// Action is a moderator decision on a review item
type Action string

// enum of all actions
const (
	ActionApprove Action = "approve"
	ActionWarn    Action = "warn"
	ActionKick    Action = "kick"
)

// ErrUnknownAction is returned for an action not in the enum
var ErrUnknownAction = errors.New("unknown action")

// ParseAction converts a string to Action
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionApprove, ActionWarn, ActionKick:
		return a, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownAction, s)
}

func (a Action) status() storage.ReviewStatus {
	switch a {
	case ActionWarn:
		return storage.StatusSpam
	case ActionKick:
		return storage.StatusSpamKick
	}
	return storage.StatusApproved
}

func (a Action) logAction() storage.Action {
	switch a {
	case ActionWarn:
		return storage.ActionSpam
	case ActionKick:
		return storage.ActionSpamKick
	}
	return storage.ActionApproved
}

// Service submits spam verdicts for review and applies moderator decisions
type Service struct {
	Params
}

// Params defines Service dependencies, Enforcer is optional
type Params struct {
	Queue       Queue
	Log         ModerationLog
	Messages    MessageStore
	Enforcer    Enforcer
	ServerName  string // used in user notifications
	KickReason  string // reason passed to Enforcer.Kick
	ReviewLimit int    // default limit for listings
}

// NewService makes a review Service. Missing Enforcer set to noop.
func NewService(p Params) (*Service, error) {
	if p.Queue == nil || p.Log == nil || p.Messages == nil {
		return nil, errors.New("queue, moderation log and message store are required")
	}
	if p.Enforcer == nil {
		p.Enforcer = NewNoopEnforcer()
	}
	if p.KickReason == "" {
		p.KickReason = "Spam/self-promotion"
	}
	if p.ReviewLimit <= 0 {
		p.ReviewLimit = 100
	}
	return &Service{Params: p}, nil
}

// Submit puts a spam verdict to the review queue and returns the item id
func (s *Service) Submit(ctx context.Context, req detector.Request, verdict spamcheck.Verdict) (int64, error) {
	item := storage.ReviewItem{
		Message:     req.Msg.Stored(),
		AuthorName:  req.AuthorName,
		ChannelName: req.ChannelName,
		Confidence:  verdict.Confidence,
		Score:       verdict.Heuristics.Score,
		Reasons:     verdict.Reasons,
		AIAnalysis:  verdict.AIAnalysis,
		Similar:     verdict.SimilarMatches,
		CreatedAt:   time.Now(),
	}
	id, err := s.Queue.Add(ctx, item)
	if err != nil {
		return 0, fmt.Errorf("failed to submit %s for review: %w", req.Msg.ID, err)
	}
	log.Printf("[INFO] message %s from %s submitted for review as %d, confidence %.2f",
		req.Msg.ID, req.Msg.AuthorID, id, verdict.Confidence)
	return id, nil
}

// List returns items with the status, all items for empty status
func (s *Service) List(ctx context.Context, status storage.ReviewStatus) ([]storage.ReviewItem, error) {
	res, err := s.Queue.List(ctx, status, s.ReviewLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list review items: %w", err)
	}
	return res, nil
}

// History returns up to limit moderation log entries, newest first
func (s *Service) History(ctx context.Context, limit int) ([]storage.LogEntry, error) {
	res, err := s.Log.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get moderation history: %w", err)
	}
	return res, nil
}

// Resolve applies the moderator decision to the review item and returns the resolved item.
// An item can be resolved only once. Once the item is marked resolved the decision stands,
// failures of enforcement, stored message removal and moderation logging are logged only.
func (s *Service) Resolve(ctx context.Context, id int64, action Action, moderatorID string) (storage.ReviewItem, error) {
	if _, err := ParseAction(string(action)); err != nil {
		return storage.ReviewItem{}, err
	}

	item, err := s.Queue.Get(ctx, id)
	if err != nil {
		return storage.ReviewItem{}, fmt.Errorf("failed to get review item %d: %w", id, err)
	}
	if err := s.Queue.Resolve(ctx, id, action.status(), moderatorID); err != nil {
		return storage.ReviewItem{}, fmt.Errorf("failed to resolve review item %d: %w", id, err)
	}
	item.Status, item.ModeratorID = action.status(), moderatorID
	now := time.Now()
	item.ResolvedAt = &now

	msg := item.Message
	errs := new(multierror.Error)
	if action != ActionApprove {
		s.enforce(ctx, item, action)
		if err := s.Messages.Delete(ctx, msg.ID); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("failed to delete stored message %s: %w", msg.ID, err))
		}
	}
	entry := storage.LogEntry{MessageID: msg.ID, UserID: msg.UserID, GroupID: msg.GroupID,
		Action: action.logAction(), ModeratorID: moderatorID, Reason: firstReason(item.Reasons)}
	if err := s.Log.Add(ctx, entry); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("failed to log moderation action: %w", err))
	}

	if err := errs.ErrorOrNil(); err != nil {
		log.Printf("[WARN] review item %d resolved with errors: %v", id, err)
	}
	log.Printf("[INFO] review item %d (message %s from %s) resolved as %s by %s",
		id, msg.ID, msg.UserID, item.Status, moderatorID)
	return item, nil
}

// enforce notifies the author, deletes the platform message and kicks the author for ActionKick.
// Errors are logged, the decision stands regardless.
func (s *Service) enforce(ctx context.Context, item storage.ReviewItem, action Action) {
	msg := item.Message
	channel := "the server"
	if item.ChannelName != "" {
		channel = "#" + item.ChannelName
	}
	server := s.ServerName
	if server == "" {
		server = "the server"
	}

	text := fmt.Sprintf("Your message in %s on %s was removed as it appears to be spam or unwanted self-promotion.\n\n"+
		"Please review the server rules before posting again. If you believe this was a mistake, "+
		"please contact a server moderator.", channel, server)
	if action == ActionKick {
		text = fmt.Sprintf("You have been removed from %s due to spam or unwanted self-promotion in %s.\n\n"+
			"Your message violated our server rules against spam. If you believe this was a mistake, "+
			"you may contact a server administrator.", server, channel)
	}

	if err := s.Enforcer.Notify(ctx, msg.UserID, text); err != nil {
		log.Printf("[WARN] can't notify user %s: %v", msg.UserID, err)
	}
	if err := s.Enforcer.DeleteMessage(ctx, msg.ChannelID, msg.ID); err != nil {
		log.Printf("[WARN] can't delete message %s: %v", msg.ID, err)
	}
	if action != ActionKick {
		return
	}
	if err := s.Enforcer.Kick(ctx, msg.GroupID, msg.UserID, s.KickReason); err != nil {
		log.Printf("[WARN] can't kick user %s: %v", msg.UserID, err)
	}
}

func firstReason(reasons []string) string {
	if len(reasons) == 0 {
		return ""
	}
	return reasons[0]
}
