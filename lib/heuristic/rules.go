package heuristic

import (
	"encoding/json"
	"fmt"
	"io"
)

// Rule is a single scoring rule: a phrase (or a regular expression for pattern categories),
// the reason reported when it matches and the score it adds.
type Rule struct {
	Pattern string `json:"pattern"`
	Reason  string `json:"reason"`
	Weight  int    `json:"weight"`
}

// CountRule fires once when the number of occurrences exceeds Max.
// Reason is a format string with a single %d verb for the count.
type CountRule struct {
	Max    int    `json:"max"`
	Reason string `json:"reason"`
	Weight int    `json:"weight"`
}

// LengthRule fires when the text is longer than Chars characters (runes).
type LengthRule struct {
	Chars  int    `json:"chars"`
	Reason string `json:"reason"`
	Weight int    `json:"weight"`
}

// TechRule counts distinct technology names found in the text.
type TechRule struct {
	Names []string `json:"names"`
	CountRule
}

// Rules is the complete, ordered ruleset of the scorer. Categories are evaluated in the field order,
// and rules within a category in slice order, which defines the order of reported reasons.
type Rules struct {
	Keywords   []Rule       `json:"keywords"`    // case-insensitive phrases
	HighWeight []Rule       `json:"high_weight"` // case-insensitive phrases, scored on top of keywords
	Promo      []Rule       `json:"promo"`       // regular expressions
	Contact    []Rule       `json:"contact"`     // regular expressions
	Length     []LengthRule `json:"length"`      // all matching thresholds fire
	Emoji      CountRule    `json:"emoji"`
	Bullets    CountRule    `json:"bullets"`
	Tech       TechRule     `json:"tech"`
}

// default weights per category
const (
	keywordWeight    = 1
	highWeightWeight = 2
	promoWeight      = 2
	contactWeight    = 1
)

var spamKeywords = []string{
	// job and work offers
	"remote work",
	"work from home",
	"daily pay",
	"flexible hours",
	"hiring",
	"freelancer",
	"freelancers needed",
	"job opportunity",
	"work opportunities",
	"overtime",
	"morning shift",
	"typing job",
	"copy and paste",

	// self-promotion
	"i'm a developer",
	"i'm an engineer",
	"my services",
	"years of experience",
	"years experience",
	"i can help you",
	"let's talk",
	"let's connect",
	"dm me",
	"reach out",
	"contact me",
	"book a call",
	"jump on a call",

	// ai and tech buzzwords in promotional framing
	"ai automation",
	"ai agent",
	"custom ai",
	"llm integration",
	"production-ready solutions",
	"ai-powered",

	// looking for work
	"looking for projects",
	"looking for opportunities",
	"available for hire",
	"open for work",
	"if you're looking",
	"i specialize in",
	"my expertise",
	"key projects",
}

var highWeightPhrases = []string{
	"daily pay",
	"freelancers needed",
	"freelance work",
	"dm me for",
	"book a call",
	"available for hire",
	"looking for clients",
}

var techNames = []string{
	"react", "node", "python", "javascript", "typescript", "aws", "docker", "kubernetes", "openai", "claude", "gpt",
}

// DefaultRules returns the built-in ruleset.
func DefaultRules() Rules {
	phrases := func(reason string, weight int, list []string) []Rule {
		res := make([]Rule, 0, len(list))
		for _, p := range list {
			res = append(res, Rule{Pattern: p, Reason: fmt.Sprintf(reason, p), Weight: weight})
		}
		return res
	}

	return Rules{
		Keywords:   phrases("Contains keyword: %q", keywordWeight, spamKeywords),
		HighWeight: phrases("Contains high-weight phrase: %q", highWeightWeight, highWeightPhrases),
		Promo: []Rule{
			{Pattern: `(?i)\d+\s*\+?\s*years?\s*(of\s*)?(experience|exp)`, Reason: "Matches promotional pattern: years of experience", Weight: promoWeight},
			{Pattern: `(?i)(?:morning|evening|night)\s*shift`, Reason: "Matches promotional pattern: shift time", Weight: promoWeight},
			{Pattern: `(?i)(?:am|pm)\s*to\s*(?:am|pm)`, Reason: "Matches promotional pattern: working hours range", Weight: promoWeight},
			{Pattern: `(?i)\$\d+(?:/hr|/hour|/day|k)?`, Reason: "Matches promotional pattern: rate or price", Weight: promoWeight},
			{Pattern: `(?i)(?:senior|junior|lead)\s+(?:developer|engineer|designer)`, Reason: "Matches promotional pattern: seniority and role", Weight: promoWeight},
		},
		Contact: []Rule{
			{Pattern: `[\w.+-]+@[\w-]+\.[\w.-]+`, Reason: "Contains contact information: email", Weight: contactWeight},
			{Pattern: `(?i)(?:discord|telegram|whatsapp)\s*[:#]?\s*[\w@#]+`, Reason: "Contains contact information: messenger handle", Weight: contactWeight},
		},
		Length: []LengthRule{
			{Chars: 500, Reason: "Long message (>500 chars)", Weight: 1},
			{Chars: 1000, Reason: "Very long message (>1000 chars)", Weight: 1},
		},
		Emoji:   CountRule{Max: 5, Reason: "Excessive emojis (%d)", Weight: 1},
		Bullets: CountRule{Max: 3, Reason: "List formatting (%d bullets)", Weight: 1},
		Tech: TechRule{
			Names:     techNames,
			CountRule: CountRule{Max: 4, Reason: "Tech stack listing (%d technologies)", Weight: 2},
		},
	}
}

// LoadRules reads a JSON ruleset. Categories missing in the input keep their default values,
// present categories replace the defaults entirely.
func LoadRules(r io.Reader) (Rules, error) {
	var file struct {
		Keywords   *[]Rule       `json:"keywords"`
		HighWeight *[]Rule       `json:"high_weight"`
		Promo      *[]Rule       `json:"promo"`
		Contact    *[]Rule       `json:"contact"`
		Length     *[]LengthRule `json:"length"`
		Emoji      *CountRule    `json:"emoji"`
		Bullets    *CountRule    `json:"bullets"`
		Tech       *TechRule     `json:"tech"`
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return Rules{}, fmt.Errorf("can't decode rules: %w", err)
	}

	res := DefaultRules()
	if file.Keywords != nil {
		res.Keywords = *file.Keywords
	}
	if file.HighWeight != nil {
		res.HighWeight = *file.HighWeight
	}
	if file.Promo != nil {
		res.Promo = *file.Promo
	}
	if file.Contact != nil {
		res.Contact = *file.Contact
	}
	if file.Length != nil {
		res.Length = *file.Length
	}
	if file.Emoji != nil {
		res.Emoji = *file.Emoji
	}
	if file.Bullets != nil {
		res.Bullets = *file.Bullets
	}
	if file.Tech != nil {
		res.Tech = *file.Tech
	}
	return res, nil
}
