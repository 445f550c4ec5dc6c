// Package heuristic scores a single message text for spam and self-promotion with a fixed, data-driven ruleset.
// Scoring is a pure function of the text: case-insensitive, deterministic and side-effect free.
// Every rule category runs unconditionally, the score is the sum of all triggered weights and
// each triggered rule adds a reason in evaluation order.
package heuristic

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/forPelevin/gomoji"
	"github.com/hashicorp/go-multierror"

	"github.com/GregHolmes/discord-bot-spam-detector/lib/spamcheck"
)

var bulletRe = regexp.MustCompile(`(?m)^\s*[-•*]\s`)

// Scorer applies compiled Rules to a message text. Safe for concurrent use.
type Scorer struct {
	rules   Rules
	promo   []*regexp.Regexp
	contact []*regexp.Regexp
	tech    *regexp.Regexp
}

var defaultScorer = MustScorer(DefaultRules())

// Analyze scores text with the default ruleset.
func Analyze(text string) spamcheck.HeuristicResult {
	return defaultScorer.Analyze(text)
}

// NewScorer compiles rules into a Scorer. Weights must be non-negative and all patterns valid.
func NewScorer(rules Rules) (*Scorer, error) {
	errs := new(multierror.Error)

	checkWeight := func(name string, w int) {
		if w < 0 {
			errs = multierror.Append(errs, fmt.Errorf("negative weight %d for %s", w, name))
		}
	}
	compile := func(list []Rule) []*regexp.Regexp {
		res := make([]*regexp.Regexp, 0, len(list))
		for _, r := range list {
			checkWeight(r.Pattern, r.Weight)
			re, err := regexp.Compile(r.Pattern)
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("invalid pattern %q: %w", r.Pattern, err))
				continue
			}
			res = append(res, re)
		}
		return res
	}

	for _, r := range rules.Keywords {
		checkWeight(r.Pattern, r.Weight)
	}
	for _, r := range rules.HighWeight {
		checkWeight(r.Pattern, r.Weight)
	}
	for _, r := range rules.Length {
		checkWeight(r.Reason, r.Weight)
	}
	checkWeight("emoji", rules.Emoji.Weight)
	checkWeight("bullets", rules.Bullets.Weight)
	checkWeight("tech", rules.Tech.Weight)

	res := &Scorer{rules: rules, promo: compile(rules.Promo), contact: compile(rules.Contact)}

	if len(rules.Tech.Names) > 0 {
		names := make([]string, 0, len(rules.Tech.Names))
		for _, n := range rules.Tech.Names {
			names = append(names, regexp.QuoteMeta(strings.ToLower(n)))
		}
		res.tech = regexp.MustCompile(`(?:` + strings.Join(names, "|") + `)`)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	return res, nil
}

// MustScorer is like NewScorer but panics on invalid rules.
func MustScorer(rules Rules) *Scorer {
	s, err := NewScorer(rules)
	if err != nil {
		panic(err)
	}
	return s
}

// Rules returns the ruleset the scorer was built from.
func (s *Scorer) Rules() Rules {
	return s.rules
}

// Analyze scores text. Empty text always scores 0 with no reasons.
func (s *Scorer) Analyze(text string) spamcheck.HeuristicResult {
	res := spamcheck.HeuristicResult{Reasons: []string{}}
	if s == nil {
		return res
	}
	add := func(weight int, reason string) {
		res.Score += weight
		res.Reasons = append(res.Reasons, reason)
	}
	content := strings.ToLower(text)

	for _, r := range s.rules.Keywords {
		if r.Pattern != "" && strings.Contains(content, strings.ToLower(r.Pattern)) {
			add(r.Weight, r.Reason)
		}
	}

	for _, r := range s.rules.HighWeight {
		if r.Pattern != "" && strings.Contains(content, strings.ToLower(r.Pattern)) {
			add(r.Weight, r.Reason)
		}
	}

	for i, re := range s.promo {
		if re.MatchString(content) {
			add(s.rules.Promo[i].Weight, s.rules.Promo[i].Reason)
		}
	}

	for i, re := range s.contact {
		if re.MatchString(content) {
			add(s.rules.Contact[i].Weight, s.rules.Contact[i].Reason)
		}
	}

	length := utf8.RuneCountInString(text)
	for _, r := range s.rules.Length {
		if length > r.Chars {
			add(r.Weight, r.Reason)
		}
	}

	if count := countEmoji(text); count > s.rules.Emoji.Max {
		add(s.rules.Emoji.Weight, fmt.Sprintf(s.rules.Emoji.Reason, count))
	}

	if count := len(bulletRe.FindAllStringIndex(text, -1)); count > s.rules.Bullets.Max {
		add(s.rules.Bullets.Weight, fmt.Sprintf(s.rules.Bullets.Reason, count))
	}

	if s.tech != nil {
		distinct := map[string]struct{}{}
		for _, m := range s.tech.FindAllString(content, -1) {
			distinct[m] = struct{}{}
		}
		if len(distinct) > s.rules.Tech.Max {
			add(s.rules.Tech.Weight, fmt.Sprintf(s.rules.Tech.Reason, len(distinct)))
		}
	}

	return res
}

func countEmoji(s string) int {
	return len(gomoji.CollectAll(s))
}
