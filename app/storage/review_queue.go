package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/GregHolmes/discord-bot-spam-detector/app/storage/engine"
	"github.com/GregHolmes/discord-bot-spam-detector/lib/spamcheck"
)

// ErrAlreadyResolved is returned on attempt to resolve a review item twice
var ErrAlreadyResolved = errors.New("review item already resolved")

// ReviewQueue keeps messages escalated to moderators
type ReviewQueue struct {
	*engine.SQL
	engine.RWLocker
}

// ReviewStatus is a state of a review item
type ReviewStatus string

// enum of all review statuses
const (
	StatusPending  ReviewStatus = "pending"
	StatusApproved ReviewStatus = "approved"
	StatusSpam     ReviewStatus = "spam"
	StatusSpamKick ReviewStatus = "spam_kick"
)

// ReviewItem is an escalated message with the verdict details
type ReviewItem struct {
	ID          int64                       `db:"id" json:"id"`
	Message     spamcheck.StoredMessage     `db:"-" json:"message"`
	AuthorName  string                      `db:"author_name" json:"author_name"`
	ChannelName string                      `db:"channel_name" json:"channel_name"`
	Confidence  float64                     `db:"confidence" json:"confidence"`
	Score       int                         `db:"score" json:"score"`
	Reasons     []string                    `db:"-" json:"reasons"`
	AIAnalysis  *spamcheck.AIResult         `db:"-" json:"ai_analysis,omitempty"`
	Similar     []spamcheck.SimilarityMatch `db:"-" json:"similar"`
	Status      ReviewStatus                `db:"status" json:"status"`
	ModeratorID string                      `db:"moderator_id" json:"moderator_id,omitempty"`
	CreatedAt   time.Time                   `db:"created_at" json:"created_at"`
	ResolvedAt  *time.Time                  `db:"resolved_at" json:"resolved_at,omitempty"`
}

// reviewRow is a flat db shape of ReviewItem with json-encoded collections
type reviewRow struct {
	ReviewItem
	MessageID   string    `db:"message_id"`
	UserID      string    `db:"user_id"`
	ChannelID   string    `db:"channel_id"`
	GroupID     string    `db:"group_id"`
	Content     string    `db:"content"`
	MessageTime time.Time `db:"message_time"`
	ReasonsJSON string    `db:"reasons"`
	AIJSON      string    `db:"ai_analysis"`
	SimilarJSON string    `db:"similar"`
}

// review queue command constants
const (
	CmdCreateReviewTable engine.DBCmd = iota + 300
	CmdCreateReviewIndexes
	CmdAddReviewItem
	CmdGetReviewItem
	CmdListReviewItems
	CmdListAllReviewItems
	CmdResolveReviewItem
)

const reviewColumns = `id, message_id, user_id, channel_id, group_id, content, message_time, author_name, channel_name,
	confidence, score, reasons, ai_analysis, similar, status, moderator_id, created_at, resolved_at`

var reviewQueries = engine.NewQueryMap().
	Add(CmdCreateReviewTable, engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS review_queue (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			message_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			channel_id TEXT NOT NULL DEFAULT '',
			group_id TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			message_time DATETIME NOT NULL,
			author_name TEXT NOT NULL DEFAULT '',
			channel_name TEXT NOT NULL DEFAULT '',
			confidence REAL NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			reasons TEXT NOT NULL DEFAULT '[]',
			ai_analysis TEXT NOT NULL DEFAULT '',
			similar TEXT NOT NULL DEFAULT '[]',
			status TEXT NOT NULL DEFAULT 'pending',
			moderator_id TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL,
			resolved_at DATETIME
		)`,
		Postgres: `CREATE TABLE IF NOT EXISTS review_queue (
			id SERIAL PRIMARY KEY,
			message_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			channel_id TEXT NOT NULL DEFAULT '',
			group_id TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			message_time TIMESTAMPTZ NOT NULL,
			author_name TEXT NOT NULL DEFAULT '',
			channel_name TEXT NOT NULL DEFAULT '',
			confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			reasons TEXT NOT NULL DEFAULT '[]',
			ai_analysis TEXT NOT NULL DEFAULT '',
			similar TEXT NOT NULL DEFAULT '[]',
			status TEXT NOT NULL DEFAULT 'pending',
			moderator_id TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			resolved_at TIMESTAMPTZ
		)`,
	}).
	AddSame(CmdCreateReviewIndexes, `
		CREATE INDEX IF NOT EXISTS idx_review_queue_status_created ON review_queue(status, created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_review_queue_message_id ON review_queue(message_id)
	`).
	AddSame(CmdAddReviewItem, `INSERT INTO review_queue (message_id, user_id, channel_id, group_id, content, message_time,
		author_name, channel_name, confidence, score, reasons, ai_analysis, similar, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`).
	AddSame(CmdGetReviewItem, "SELECT "+reviewColumns+" FROM review_queue WHERE id = ?").
	AddSame(CmdListReviewItems, "SELECT "+reviewColumns+
		" FROM review_queue WHERE status = ? ORDER BY created_at DESC, id DESC LIMIT ?").
	AddSame(CmdListAllReviewItems, "SELECT "+reviewColumns+
		" FROM review_queue ORDER BY created_at DESC, id DESC LIMIT ?").
	AddSame(CmdResolveReviewItem, `UPDATE review_queue SET status = ?, moderator_id = ?, resolved_at = ?
		WHERE id = ? AND status = 'pending'`)

// NewReviewQueue makes a ReviewQueue and creates its table if missing
func NewReviewQueue(ctx context.Context, db *engine.SQL) (*ReviewQueue, error) {
	if db == nil {
		return nil, errors.New("db connection is nil")
	}
	res := &ReviewQueue{SQL: db, RWLocker: db.MakeLock()}
	cfg := engine.TableConfig{Name: "review_queue", CreateTable: CmdCreateReviewTable,
		CreateIndexes: CmdCreateReviewIndexes, QueriesMap: reviewQueries}
	if err := engine.InitTable(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init review queue storage: %w", err)
	}
	return res, nil
}

// Add puts a pending item to the queue and returns its id
func (q *ReviewQueue) Add(ctx context.Context, item ReviewItem) (int64, error) {
	reasons, err := json.Marshal(nonNil(item.Reasons))
	if err != nil {
		return 0, fmt.Errorf("failed to marshal reasons: %w", err)
	}
	similar, err := json.Marshal(nonNil(item.Similar))
	if err != nil {
		return 0, fmt.Errorf("failed to marshal similar messages: %w", err)
	}
	aiAnalysis := ""
	if item.AIAnalysis != nil {
		data, err := json.Marshal(item.AIAnalysis)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal ai analysis: %w", err)
		}
		aiAnalysis = string(data)
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	query, err := reviewQueries.Pick(q.Type(), CmdAddReviewItem)
	if err != nil {
		return 0, fmt.Errorf("failed to get add query: %w", err)
	}

	q.Lock()
	defer q.Unlock()
	var id int64
	msg := item.Message
	err = q.GetContext(ctx, &id, q.Adopt(query), msg.ID, msg.UserID, msg.ChannelID, msg.GroupID, msg.Content,
		utc(msg.CreatedAt), item.AuthorName, item.ChannelName, item.Confidence, item.Score, string(reasons),
		aiAnalysis, string(similar), StatusPending, utc(item.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("failed to add review item for %s: %w", msg.ID, err)
	}
	log.Printf("[DEBUG] review item %d added for message %s", id, msg.ID)
	return id, nil
}

// Get returns the item by id, ErrNotFound if missing
func (q *ReviewQueue) Get(ctx context.Context, id int64) (ReviewItem, error) {
	query, err := reviewQueries.Pick(q.Type(), CmdGetReviewItem)
	if err != nil {
		return ReviewItem{}, fmt.Errorf("failed to get query: %w", err)
	}

	q.RLock()
	defer q.RUnlock()
	var row reviewRow
	if err := q.GetContext(ctx, &row, q.Adopt(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReviewItem{}, fmt.Errorf("review item %d: %w", id, ErrNotFound)
		}
		return ReviewItem{}, fmt.Errorf("failed to get review item %d: %w", id, err)
	}
	return row.item()
}

// List returns up to limit items with the status, newest first. Empty status lists all items.
func (q *ReviewQueue) List(ctx context.Context, status ReviewStatus, limit int) ([]ReviewItem, error) {
	if limit <= 0 {
		limit = 100
	}
	cmd, args := CmdListReviewItems, []any{status, limit}
	if status == "" {
		cmd, args = CmdListAllReviewItems, []any{limit}
	}
	query, err := reviewQueries.Pick(q.Type(), cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to get list query: %w", err)
	}

	q.RLock()
	defer q.RUnlock()
	var rows []reviewRow
	if err := q.SelectContext(ctx, &rows, q.Adopt(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list review items: %w", err)
	}
	res := make([]ReviewItem, 0, len(rows))
	for _, row := range rows {
		item, err := row.item()
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}

// Resolve sets the final status of a pending item.
// Returns ErrNotFound for a missing item and ErrAlreadyResolved if the item is not pending.
func (q *ReviewQueue) Resolve(ctx context.Context, id int64, status ReviewStatus, moderatorID string) error {
	switch status {
	case StatusApproved, StatusSpam, StatusSpamKick:
	default:
		return fmt.Errorf("invalid resolution status %q", status)
	}
	query, err := reviewQueries.Pick(q.Type(), CmdResolveReviewItem)
	if err != nil {
		return fmt.Errorf("failed to get resolve query: %w", err)
	}

	q.Lock()
	res, err := q.ExecContext(ctx, q.Adopt(query), status, moderatorID, utc(time.Now()), id)
	q.Unlock()
	if err != nil {
		return fmt.Errorf("failed to resolve review item %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows for %d: %w", id, err)
	}
	if affected > 0 {
		return nil
	}

	// nothing updated, either no such item or it is already resolved
	if _, err := q.Get(ctx, id); err != nil {
		return err
	}
	return fmt.Errorf("review item %d: %w", id, ErrAlreadyResolved)
}

func (r reviewRow) item() (ReviewItem, error) {
	res := r.ReviewItem
	res.Message = spamcheck.StoredMessage{ID: r.MessageID, UserID: r.UserID, ChannelID: r.ChannelID,
		GroupID: r.GroupID, Content: r.Content, CreatedAt: r.MessageTime}
	if err := json.Unmarshal([]byte(r.ReasonsJSON), &res.Reasons); err != nil {
		return ReviewItem{}, fmt.Errorf("failed to unmarshal reasons of %d: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(r.SimilarJSON), &res.Similar); err != nil {
		return ReviewItem{}, fmt.Errorf("failed to unmarshal similar messages of %d: %w", r.ID, err)
	}
	if r.AIJSON != "" {
		res.AIAnalysis = &spamcheck.AIResult{}
		if err := json.Unmarshal([]byte(r.AIJSON), res.AIAnalysis); err != nil {
			return ReviewItem{}, fmt.Errorf("failed to unmarshal ai analysis of %d: %w", r.ID, err)
		}
	}
	return res, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
