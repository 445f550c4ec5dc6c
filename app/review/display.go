package review

import (
	"fmt"
	"strings"

	"github.com/GregHolmes/discord-bot-spam-detector/app/storage"
	"github.com/GregHolmes/discord-bot-spam-detector/lib/spamcheck"
)

// display limits
const (
	maxPreview        = 1000
	maxReasons        = 10
	maxFieldLen       = 1024
	maxSimilar        = 3
	maxSimilarPreview = 100
)

// confidence colors, RGB
const (
	ColorRed    = 0xff0000
	ColorOrange = 0xff8800
	ColorYellow = 0xffff00
	ColorGreen  = 0x00ff00
)

// Card is a review item prepared for display to moderators
type Card struct {
	storage.ReviewItem
	Color         int    `json:"color"`
	ConfidencePct int    `json:"confidence_pct"`
	Preview       string `json:"preview"`
	ReasonsText   string `json:"reasons_text"`
	AIText        string `json:"ai_text,omitempty"`
	OffTopic      bool   `json:"off_topic"`
	SimilarTitle  string `json:"similar_title,omitempty"`
	SimilarText   string `json:"similar_text,omitempty"`
}

// NewCard makes a display Card for the review item
func NewCard(item storage.ReviewItem) Card {
	res := Card{
		ReviewItem:    item,
		Color:         ConfidenceColor(item.Confidence),
		ConfidencePct: percent(item.Confidence),
		Preview:       truncate(item.Message.Content, maxPreview),
		ReasonsText:   FormatReasons(item.Reasons),
		SimilarText:   FormatSimilar(item.Similar),
	}
	if ai := item.AIAnalysis; ai != nil {
		res.AIText = fmt.Sprintf("%s (%d%%)\n%s", ai.Classification, percent(ai.Confidence), ai.Reasoning)
		res.OffTopic = !ai.ChannelRelevant
	}
	if len(item.Similar) > 0 {
		res.SimilarTitle = fmt.Sprintf("Similar Messages (%d found)", len(item.Similar))
	}
	return res
}

// ConfidenceColor returns red for confidence 0.8+, orange for 0.6+, yellow for 0.4+ and green otherwise
func ConfidenceColor(confidence float64) int {
	switch {
	case confidence >= 0.8:
		return ColorRed
	case confidence >= 0.6:
		return ColorOrange
	case confidence >= 0.4:
		return ColorYellow
	default:
		return ColorGreen
	}
}

// FormatReasons makes a bullet list of the first reasons, limited in length
func FormatReasons(reasons []string) string {
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	lines := make([]string, 0, len(reasons))
	for _, r := range reasons {
		lines = append(lines, "• "+r)
	}
	return cut(strings.Join(lines, "\n"), maxFieldLen)
}

// FormatSimilar makes a bullet list of the first similar messages with short previews
func FormatSimilar(matches []spamcheck.SimilarityMatch) string {
	if len(matches) > maxSimilar {
		matches = matches[:maxSimilar]
	}
	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		lines = append(lines, fmt.Sprintf("• %s in <#%s>: %q", m.Message.CreatedAt.Format("2006-01-02"),
			m.Message.ChannelID, truncate(m.Message.Content, maxSimilarPreview)))
	}
	return cut(strings.Join(lines, "\n"), maxFieldLen)
}

// truncate limits text by max runes, adding ellipsis if truncated
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// cut limits text by max runes
func cut(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

func percent(v float64) int {
	return int(v*100 + 0.5)
}
