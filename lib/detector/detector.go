// Package detector fuses heuristic score, near-duplicate history matches and AI adjudication into a
// single spam verdict.
//
// Detection runs as a staged state machine: the heuristic score is computed first and overwhelmingly high
// scores short-circuit to spam. Otherwise the sender's recent history is scanned for similar messages,
// the AI adjudicator is consulted for the ambiguous score band or when similar messages were found,
// and the final verdict is any of the fusion rules. Detector keeps no state between calls.
package detector

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/GregHolmes/discord-bot-spam-detector/lib/adjudicator"
	"github.com/GregHolmes/discord-bot-spam-detector/lib/heuristic"
	"github.com/GregHolmes/discord-bot-spam-detector/lib/similarity"
	"github.com/GregHolmes/discord-bot-spam-detector/lib/spamcheck"
)

//go:generate moq --out mocks/history_lookup.go --pkg mocks --skip-ensure --with-resets . HistoryLookup
//go:generate moq --out mocks/ai_analyzer.go --pkg mocks --skip-ensure --with-resets . AIAnalyzer
//go:generate moq --out mocks/scorer.go --pkg mocks --skip-ensure --with-resets . Scorer

// contextual reasons added to the heuristic ones
const (
	reasonSimilarFmt   = "Found %d similar message(s) in the past %d days"
	reasonNotRelevant  = "Message not relevant to channel topic"
	reasonAIRationale  = "AI: "
	fastPathConfidence = 15.0 // score giving full confidence on the fast path
)

// HistoryLookup provides recent messages of a user, most recent first. Must be safe for concurrent use.
type HistoryLookup interface {
	Recent(ctx context.Context, userID, groupID string, since time.Time) ([]spamcheck.StoredMessage, error)
}

// AIAnalyzer classifies a message with AI. It never fails, errors degrade to an uncertain result.
type AIAnalyzer interface {
	Analyze(ctx context.Context, req adjudicator.Request) spamcheck.AIResult
}

// Scorer computes the heuristic score of a text.
type Scorer interface {
	Analyze(text string) spamcheck.HeuristicResult
}

// Request is a message to check with the channel context used by AI adjudication
type Request struct {
	Msg          spamcheck.Message
	ChannelName  string
	ChannelTopic string
	AuthorName   string
}

// Detector makes spam verdicts, thread-safe.
type Detector struct {
	Config
	scorer  Scorer
	history HistoryLookup
	ai      AIAnalyzer
	now     func() time.Time
}

// NewDetector makes a Detector with the given config and the default heuristic rules.
// Without history and AI the verdict relies on the heuristic score only.
func NewDetector(p Config) *Detector {
	return &Detector{Config: p, scorer: heuristic.NewHolder(nil), now: time.Now}
}

// WithScorer sets the heuristic scorer, e.g. a heuristic.Holder with custom rules.
func (d *Detector) WithScorer(s Scorer) *Detector {
	d.scorer = s
	return d
}

// WithHistory sets the history lookup used for the similarity scan.
func (d *Detector) WithHistory(h HistoryLookup) *Detector {
	d.history = h
	return d
}

// WithAI sets the AI adjudicator. An analyzer reporting Enabled() == false is not set,
// verdicts have no AI analysis then.
func (d *Detector) WithAI(a AIAnalyzer) *Detector {
	if e, ok := a.(interface{ Enabled() bool }); ok && !e.Enabled() {
		log.Printf("[DEBUG] ai analyzer disabled, not used")
		d.ai = nil
		return d
	}
	d.ai = a
	return d
}

// Detect checks the message and returns the verdict. The only error is a failed history lookup.
func (d *Detector) Detect(ctx context.Context, req Request) (spamcheck.Verdict, error) {
	h := d.scorer.Analyze(req.Msg.Text)
	res := spamcheck.Verdict{
		Heuristics:     h,
		Reasons:        append([]string{}, h.Reasons...),
		SimilarMatches: []spamcheck.SimilarityMatch{},
	}

	// fast path, obvious spam doesn't need history or AI
	if h.Score >= 2*d.HeuristicThreshold {
		res.IsSpam = true
		res.Confidence = math.Min(float64(h.Score)/fastPathConfidence, 1)
		log.Printf("[DEBUG] fast path spam %s: %s", req.Msg.ID, res)
		return res, nil
	}

	matches, err := d.similar(ctx, req.Msg)
	if err != nil {
		return spamcheck.Verdict{}, fmt.Errorf("can't check history of %s: %w", req.Msg.AuthorID, err)
	}
	res.SimilarMatches = matches
	if len(matches) > 0 {
		res.Reasons = append(res.Reasons, fmt.Sprintf(reasonSimilarFmt, len(matches), d.HistoryDays))
	}

	// the upper bound of the ambiguous band is guaranteed by the fast path
	if d.ai != nil && (d.halfThreshold(h.Score) || len(matches) > 0) {
		ai := d.ai.Analyze(ctx, adjudicator.Request{Text: req.Msg.Text, ChannelName: req.ChannelName,
			ChannelTopic: req.ChannelTopic, AuthorName: req.AuthorName, HeuristicReasons: h.Reasons})
		res.AIAnalysis = &ai
		if !ai.ChannelRelevant {
			res.Reasons = append(res.Reasons, reasonNotRelevant)
		}
		if ai.Classification.IsSpam() {
			res.Reasons = append(res.Reasons, reasonAIRationale+ai.Reasoning)
		}
	}

	res.IsSpam = d.fuse(h.Score, len(matches), res.AIAnalysis)
	res.Confidence = d.confidence(h.Score, len(matches), res.AIAnalysis)
	log.Printf("[DEBUG] verdict %s: %s", req.Msg.ID, res)
	return res, nil
}

// similar returns history records of the sender similar to the message, excluding the message itself
func (d *Detector) similar(ctx context.Context, msg spamcheck.Message) ([]spamcheck.SimilarityMatch, error) {
	res := []spamcheck.SimilarityMatch{}
	if d.history == nil {
		return res, nil
	}

	since := d.now().Add(-time.Duration(d.HistoryDays) * 24 * time.Hour)
	recent, err := d.history.Recent(ctx, msg.AuthorID, msg.GroupID, since)
	if err != nil {
		return nil, err
	}
	for _, m := range recent {
		if m.ID == msg.ID {
			continue
		}
		if sim := similarity.Combined(msg.Text, m.Content); sim >= d.SimilarityThreshold {
			res = append(res, spamcheck.SimilarityMatch{Message: m, Similarity: sim})
		}
	}
	return res, nil
}

// fuse returns true if any of the spam rules holds
func (d *Detector) fuse(score, matches int, ai *spamcheck.AIResult) bool {
	switch {
	case score >= d.HeuristicThreshold:
		return true
	case ai != nil && ai.Classification.IsSpam() && ai.Confidence >= d.AIThreshold:
		return true
	case matches >= 2:
		return true
	case d.halfThreshold(score) && matches >= 1 && (ai == nil || ai.Classification != spamcheck.ClassLegitimate):
		return true
	case ai != nil && !ai.ChannelRelevant && d.halfThreshold(score):
		return true
	}
	return false
}

// confidence blends all signals, independent of the verdict
func (d *Detector) confidence(score, matches int, ai *spamcheck.AIResult) float64 {
	res := math.Min(float64(score)/12, 0.4)
	if ai != nil && ai.Classification.IsSpam() {
		res += ai.Confidence * 0.4
	}
	res += math.Min(float64(matches)*0.1, 0.2)
	return math.Max(0, math.Min(res, 1))
}

// halfThreshold checks score against half of the heuristic threshold, not rounded
func (d *Detector) halfThreshold(score int) bool {
	return float64(score) >= float64(d.HeuristicThreshold)/2
}
