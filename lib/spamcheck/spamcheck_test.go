package spamcheck

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		class Classification
		valid bool
		spam  bool
	}{
		{ClassSpam, true, true},
		{ClassLikelySpam, true, true},
		{ClassUncertain, true, false},
		{ClassLegitimate, true, false},
		{Classification("maybe"), false, false},
		{Classification(""), false, false},
		{Classification("SPAM"), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.class.Valid())
			assert.Equal(t, tt.spam, tt.class.IsSpam())
		})
	}
}

func TestMessage_Stored(t *testing.T) {
	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	msg := Message{ID: "m1", AuthorID: "u1", ChannelID: "c1", GroupID: "g1", Text: "hello", CreatedAt: ts}
	assert.Equal(t, StoredMessage{ID: "m1", UserID: "u1", ChannelID: "c1", GroupID: "g1", Content: "hello", CreatedAt: ts},
		msg.Stored())
	assert.Equal(t, `{id:m1, author:u1, channel:c1, group:g1, text:"hello"}`, msg.String())
}

func TestVerdict_String(t *testing.T) {
	tests := []struct {
		name     string
		input    Verdict
		expected string
	}{
		{
			name: "spam without ai",
			input: Verdict{IsSpam: true, Confidence: 0.8, Heuristics: HeuristicResult{Score: 12},
				Reasons: []string{"r1", "r2"}},
			expected: "spam, confidence: 0.80, score: 12, similar: 0, ai: skipped, reasons: [r1; r2]",
		},
		{
			name: "ham with ai",
			input: Verdict{Confidence: 0.1, Heuristics: HeuristicResult{Score: 3},
				AIAnalysis: &AIResult{Classification: ClassLegitimate, Confidence: 0.9, Reasoning: "fine", ChannelRelevant: true},
				SimilarMatches: []SimilarityMatch{{Similarity: 0.9}}},
			expected: "ham, confidence: 0.10, score: 3, similar: 1, ai: legitimate (90%): fine, relevant: true, reasons: []",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.String())
		})
	}
}
