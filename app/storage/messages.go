package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/GregHolmes/discord-bot-spam-detector/app/storage/engine"
	"github.com/GregHolmes/discord-bot-spam-detector/lib/spamcheck"
)

// Messages is a history of recent messages, used to find near-duplicates of a new message.
// Init must be called before any other method.
type Messages struct {
	*engine.SQL
	engine.RWLocker
	ready atomic.Bool
}

// messages-related command constants
const (
	CmdCreateMessagesTable engine.DBCmd = iota + 100
	CmdCreateMessagesIndexes
	CmdSaveMessage
	CmdRecentMessages
	CmdDeleteMessage
	CmdCleanupMessages
)

var messagesQueries = engine.NewQueryMap().
	Add(CmdCreateMessagesTable, engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS messages (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			channel_id TEXT NOT NULL DEFAULT '',
			group_id TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL
		)`,
		Postgres: `CREATE TABLE IF NOT EXISTS messages (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			channel_id TEXT NOT NULL DEFAULT '',
			group_id TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		)`,
	}).
	AddSame(CmdCreateMessagesIndexes, `
		CREATE INDEX IF NOT EXISTS idx_messages_user_group_time ON messages(user_id, group_id, created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_messages_created_at ON messages(created_at)
	`).
	AddSame(CmdSaveMessage, `INSERT INTO messages (id, user_id, channel_id, group_id, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET user_id = excluded.user_id, channel_id = excluded.channel_id,
		group_id = excluded.group_id, content = excluded.content, created_at = excluded.created_at`).
	AddSame(CmdRecentMessages, `SELECT id, user_id, channel_id, group_id, content, created_at FROM messages
		WHERE user_id = ? AND group_id = ? AND created_at > ? ORDER BY created_at DESC`).
	AddSame(CmdDeleteMessage, "DELETE FROM messages WHERE id = ?").
	AddSame(CmdCleanupMessages, "DELETE FROM messages WHERE created_at < ?")

// NewMessages makes a Messages history on the db. Call Init before use.
func NewMessages(db *engine.SQL) (*Messages, error) {
	if db == nil {
		return nil, errors.New("db connection is nil")
	}
	return &Messages{SQL: db, RWLocker: db.MakeLock()}, nil
}

// Init creates the messages table and indexes if missing
func (m *Messages) Init(ctx context.Context) error {
	m.Lock()
	defer m.Unlock()
	cfg := engine.TableConfig{Name: "messages", CreateTable: CmdCreateMessagesTable,
		CreateIndexes: CmdCreateMessagesIndexes, QueriesMap: messagesQueries}
	if err := engine.InitTable(ctx, m.SQL, cfg); err != nil {
		return fmt.Errorf("failed to init messages storage: %w", err)
	}
	m.ready.Store(true)
	return nil
}

// Save adds the message or replaces the stored one with the same id
func (m *Messages) Save(ctx context.Context, msg spamcheck.StoredMessage) error {
	query, err := m.query(CmdSaveMessage)
	if err != nil {
		return err
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}

	m.Lock()
	defer m.Unlock()
	if _, err := m.ExecContext(ctx, query, msg.ID, msg.UserID, msg.ChannelID, msg.GroupID, msg.Content,
		utc(msg.CreatedAt)); err != nil {
		return fmt.Errorf("failed to save message %s: %w", msg.ID, err)
	}
	return nil
}

// Recent returns messages of the user in the group created strictly after since, most recent first
func (m *Messages) Recent(ctx context.Context, userID, groupID string, since time.Time) ([]spamcheck.StoredMessage, error) {
	query, err := m.query(CmdRecentMessages)
	if err != nil {
		return nil, err
	}

	m.RLock()
	defer m.RUnlock()
	res := []spamcheck.StoredMessage{}
	if err := m.SelectContext(ctx, &res, query, userID, groupID, utc(since)); err != nil {
		return nil, fmt.Errorf("failed to get recent messages of %s: %w", userID, err)
	}
	return res, nil
}

// Delete removes the message, missing message is not an error
func (m *Messages) Delete(ctx context.Context, id string) error {
	query, err := m.query(CmdDeleteMessage)
	if err != nil {
		return err
	}

	m.Lock()
	defer m.Unlock()
	if _, err := m.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete message %s: %w", id, err)
	}
	return nil
}

// Cleanup removes messages created before olderThan and returns the number of removed ones
func (m *Messages) Cleanup(ctx context.Context, olderThan time.Time) (int64, error) {
	query, err := m.query(CmdCleanupMessages)
	if err != nil {
		return 0, err
	}

	m.Lock()
	defer m.Unlock()
	res, err := m.ExecContext(ctx, query, utc(olderThan))
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup messages: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get cleaned up messages count: %w", err)
	}
	if count > 0 {
		log.Printf("[DEBUG] cleaned up %d messages older than %s", count, olderThan.Format(time.RFC3339))
	}
	return count, nil
}

func (m *Messages) query(cmd engine.DBCmd) (string, error) {
	if !m.ready.Load() {
		return "", ErrNotInitialized
	}
	query, err := messagesQueries.Pick(m.Type(), cmd)
	if err != nil {
		return "", fmt.Errorf("failed to get query: %w", err)
	}
	return m.Adopt(query), nil
}
