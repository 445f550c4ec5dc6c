package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GregHolmes/discord-bot-spam-detector/app/storage/engine"
)

// ModerationLog keeps moderator decisions on reviewed messages
type ModerationLog struct {
	*engine.SQL
	engine.RWLocker
}

// Action is a moderator decision
type Action string

// enum of all moderation actions
const (
	ActionApproved Action = "approved"
	ActionSpam     Action = "spam"
	ActionSpamKick Action = "spam_kick"
)

// LogEntry is a single moderation log record
type LogEntry struct {
	ID          int64     `db:"id" json:"id"`
	MessageID   string    `db:"message_id" json:"message_id"`
	UserID      string    `db:"user_id" json:"user_id"`
	GroupID     string    `db:"group_id" json:"group_id"`
	Action      Action    `db:"action" json:"action"`
	ModeratorID string    `db:"moderator_id" json:"moderator_id"`
	Reason      string    `db:"reason" json:"reason"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// moderation log command constants
const (
	CmdCreateModerationLogTable engine.DBCmd = iota + 200
	CmdCreateModerationLogIndexes
	CmdAddModerationLog
	CmdListModerationLog
)

var moderationLogQueries = engine.NewQueryMap().
	Add(CmdCreateModerationLogTable, engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS moderation_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			message_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			group_id TEXT NOT NULL DEFAULT '',
			action TEXT NOT NULL,
			moderator_id TEXT NOT NULL DEFAULT '',
			reason TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL
		)`,
		Postgres: `CREATE TABLE IF NOT EXISTS moderation_log (
			id SERIAL PRIMARY KEY,
			message_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			group_id TEXT NOT NULL DEFAULT '',
			action TEXT NOT NULL,
			moderator_id TEXT NOT NULL DEFAULT '',
			reason TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		)`,
	}).
	AddSame(CmdCreateModerationLogIndexes, `
		CREATE INDEX IF NOT EXISTS idx_moderation_log_created_at ON moderation_log(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_moderation_log_user_id ON moderation_log(user_id)
	`).
	AddSame(CmdAddModerationLog, `INSERT INTO moderation_log
		(message_id, user_id, group_id, action, moderator_id, reason, created_at)
		VALUES (:message_id, :user_id, :group_id, :action, :moderator_id, :reason, :created_at)`).
	AddSame(CmdListModerationLog, `SELECT id, message_id, user_id, group_id, action, moderator_id, reason, created_at
		FROM moderation_log ORDER BY created_at DESC, id DESC LIMIT ?`)

// NewModerationLog makes a ModerationLog and creates its table if missing
func NewModerationLog(ctx context.Context, db *engine.SQL) (*ModerationLog, error) {
	if db == nil {
		return nil, errors.New("db connection is nil")
	}
	res := &ModerationLog{SQL: db, RWLocker: db.MakeLock()}
	cfg := engine.TableConfig{Name: "moderation_log", CreateTable: CmdCreateModerationLogTable,
		CreateIndexes: CmdCreateModerationLogIndexes, QueriesMap: moderationLogQueries}
	if err := engine.InitTable(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init moderation log storage: %w", err)
	}
	return res, nil
}

// Add writes a moderation log entry, created time set to now if missing
func (l *ModerationLog) Add(ctx context.Context, entry LogEntry) error {
	switch entry.Action {
	case ActionApproved, ActionSpam, ActionSpamKick:
	default:
		return fmt.Errorf("unknown moderation action %q", entry.Action)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entry.CreatedAt = utc(entry.CreatedAt)

	query, err := moderationLogQueries.Pick(l.Type(), CmdAddModerationLog)
	if err != nil {
		return fmt.Errorf("failed to get add query: %w", err)
	}

	l.Lock()
	defer l.Unlock()
	if _, err := l.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("failed to add moderation log entry for %s: %w", entry.MessageID, err)
	}
	return nil
}

// List returns up to limit entries, newest first
func (l *ModerationLog) List(ctx context.Context, limit int) ([]LogEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	query, err := moderationLogQueries.Pick(l.Type(), CmdListModerationLog)
	if err != nil {
		return nil, fmt.Errorf("failed to get list query: %w", err)
	}

	l.RLock()
	defer l.RUnlock()
	res := []LogEntry{}
	if err := l.SelectContext(ctx, &res, l.Adopt(query), limit); err != nil {
		return nil, fmt.Errorf("failed to list moderation log: %w", err)
	}
	return res, nil
}
