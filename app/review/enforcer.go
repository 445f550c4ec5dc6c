package review

import (
	"context"
	"log"
)

// Enforcer applies moderator decisions on the chat platform
type Enforcer interface {
	Notify(ctx context.Context, userID, text string) error
	DeleteMessage(ctx context.Context, channelID, messageID string) error
	Kick(ctx context.Context, groupID, userID, reason string) error
}

// NewNoopEnforcer makes an Enforcer doing nothing but logging, for setups without a platform client
func NewNoopEnforcer() Enforcer {
	return noopEnforcer{}
}

type noopEnforcer struct{}

func (noopEnforcer) Notify(_ context.Context, userID, _ string) error {
	log.Printf("[DEBUG] noop enforcer, notify user %s", userID)
	return nil
}

func (noopEnforcer) DeleteMessage(_ context.Context, channelID, messageID string) error {
	log.Printf("[DEBUG] noop enforcer, delete message %s in %s", messageID, channelID)
	return nil
}

func (noopEnforcer) Kick(_ context.Context, groupID, userID, _ string) error {
	log.Printf("[DEBUG] noop enforcer, kick user %s from %s", userID, groupID)
	return nil
}
