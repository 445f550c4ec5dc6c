// Package spamcheck defines the data model shared by the detection pipeline: the incoming message,
// stored history records and every intermediate and final result produced by the detector.
package spamcheck

import (
	"fmt"
	"strings"
	"time"
)

// Message is an incoming chat message to check. It is owned by the chat source and never modified by the detector.
type Message struct {
	ID        string    `json:"id"`         // message id
	AuthorID  string    `json:"author_id"`  // author (user) id
	ChannelID string    `json:"channel_id"` // channel id
	GroupID   string    `json:"group_id"`   // group (server) id
	Text      string    `json:"text"`       // text body
	CreatedAt time.Time `json:"created_at"` // creation timestamp
}

// StoredMessage is a message record kept by the history store.
type StoredMessage struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	ChannelID string    `json:"channel_id" db:"channel_id"`
	GroupID   string    `json:"group_id" db:"group_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Stored converts a message to the history record shape.
func (m Message) Stored() StoredMessage {
	return StoredMessage{ID: m.ID, UserID: m.AuthorID, ChannelID: m.ChannelID, GroupID: m.GroupID,
		Content: m.Text, CreatedAt: m.CreatedAt}
}

func (m Message) String() string {
	return fmt.Sprintf("{id:%s, author:%s, channel:%s, group:%s, text:%q}", m.ID, m.AuthorID, m.ChannelID, m.GroupID, m.Text)
}

// HeuristicResult is a suspicion score with the reasons justifying it, in detection order.
type HeuristicResult struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// SimilarityMatch is a history record similar to the checked message.
type SimilarityMatch struct {
	Message    StoredMessage `json:"message"`
	Similarity float64       `json:"similarity"` // combined similarity, 0.0 - 1.0
}

// Classification is a closed set of adjudicator verdicts.
type Classification string

// enum of all classifications
const (
	ClassSpam       Classification = "spam"
	ClassLikelySpam Classification = "likely_spam"
	ClassUncertain  Classification = "uncertain"
	ClassLegitimate Classification = "legitimate"
)

// Valid reports whether the classification is one of the known values.
func (c Classification) Valid() bool {
	switch c {
	case ClassSpam, ClassLikelySpam, ClassUncertain, ClassLegitimate:
		return true
	}
	return false
}

// IsSpam reports whether the classification counts as a spam signal, i.e. spam or likely_spam.
func (c Classification) IsSpam() bool {
	return c == ClassSpam || c == ClassLikelySpam
}

// AIResult is the outcome of AI adjudication.
type AIResult struct {
	Classification  Classification `json:"classification"`
	Confidence      float64        `json:"confidence"`
	Reasoning       string         `json:"reasoning"`
	ChannelRelevant bool           `json:"channelRelevant"`
}

func (r AIResult) String() string {
	return fmt.Sprintf("%s (%.0f%%): %s, relevant: %v", r.Classification, r.Confidence*100, r.Reasoning, r.ChannelRelevant)
}

// Verdict is the final result of the detection pipeline for a single message.
type Verdict struct {
	IsSpam         bool              `json:"is_spam"`
	Confidence     float64           `json:"confidence"` // clamped to 0.0 - 1.0
	Reasons        []string          `json:"reasons"`    // heuristic reasons first, then contextual ones
	Heuristics     HeuristicResult   `json:"heuristics"`
	AIAnalysis     *AIResult         `json:"ai_analysis,omitempty"` // nil if AI was not consulted
	SimilarMatches []SimilarityMatch `json:"similar_messages"`
}

func (v Verdict) String() string {
	spamOrHam := "ham"
	if v.IsSpam {
		spamOrHam = "spam"
	}
	ai := "skipped"
	if v.AIAnalysis != nil {
		ai = v.AIAnalysis.String()
	}
	return fmt.Sprintf("%s, confidence: %.2f, score: %d, similar: %d, ai: %s, reasons: [%s]",
		spamOrHam, v.Confidence, v.Heuristics.Score, len(v.SimilarMatches), ai, strings.Join(v.Reasons, "; "))
}
