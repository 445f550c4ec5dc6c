// Package adjudicator asks a language model to classify a borderline message. Analyze never fails:
// transport errors, timeouts and unusable answers degrade to an "uncertain" result.
package adjudicator

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"
	"github.com/go-pkgz/repeater"
	tokenizer "github.com/sandwich-go/gpt3-encoder"

	"github.com/GregHolmes/discord-bot-spam-detector/lib/spamcheck"
)

//go:generate moq --out mocks/client.go --pkg mocks --skip-ensure . Client:ClientMock

// Client sends a prompt to a language model and returns the raw text answer.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// fallback reasonings
const (
	ReasonDisabled = "AI analysis disabled"
	ReasonFailed   = "AI analysis failed"
	ReasonNoParse  = "Failed to parse AI response"
)

const fallbackConfidence = 0.5

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// errBadJSON is returned by parseAnswer for a json object that can't be decoded
var errBadJSON = errors.New("malformed json")

// Config defines adjudicator parameters
type Config struct {
	Timeout           time.Duration // per attempt, 30s if not set
	Retry             bool          // retry once on transport error
	RetryDelay        time.Duration // delay before retry, 500ms if not set
	CacheTTL          time.Duration // cache successful results, disabled if 0
	CacheSize         int           // max cached results, 1000 if not set
	MaxTokensRequest  int           // message text limit in tokens, 1024 if not set
	MaxSymbolsRequest int           // fallback limit in symbols if tokenizer fails, 8192 if not set
}

// Request is a message with its channel context and already found heuristic reasons
type Request struct {
	Text             string
	ChannelName      string
	ChannelTopic     string
	AuthorName       string
	HeuristicReasons []string
}

// Adjudicator wraps a Client with prompt building, response parsing and fallback policy.
// Safe for concurrent use if the Client is.
type Adjudicator struct {
	client  Client
	params  Config
	cache   cache.Cache[string, spamcheck.AIResult]
	encoder *tokenizer.Encoder
}

// New makes an Adjudicator. Nil client makes a disabled adjudicator returning the uncertain fallback.
func New(client Client, params Config) *Adjudicator {
	if params.Timeout <= 0 {
		params.Timeout = 30 * time.Second
	}
	if params.RetryDelay <= 0 {
		params.RetryDelay = 500 * time.Millisecond
	}
	if params.CacheSize <= 0 {
		params.CacheSize = 1000
	}
	if params.MaxTokensRequest <= 0 {
		params.MaxTokensRequest = 1024
	}
	if params.MaxSymbolsRequest <= 0 {
		params.MaxSymbolsRequest = 8192
	}

	res := &Adjudicator{client: client, params: params}
	if params.CacheTTL > 0 {
		res.cache = cache.NewCache[string, spamcheck.AIResult]().WithTTL(params.CacheTTL).WithMaxKeys(params.CacheSize)
	}
	encoder, err := tokenizer.NewEncoder()
	if err != nil {
		log.Printf("[WARN] can't make tokenizer, message text limited by %d symbols: %v", params.MaxSymbolsRequest, err)
	} else {
		res.encoder = encoder
	}
	return res
}

// Enabled returns true if the adjudicator has a client to ask
func (a *Adjudicator) Enabled() bool {
	return a != nil && a.client != nil
}

// Analyze classifies the message. It always returns a result with a valid classification.
func (a *Adjudicator) Analyze(ctx context.Context, req Request) spamcheck.AIResult {
	if !a.Enabled() {
		return fallback(ReasonDisabled)
	}

	key := req.key()
	if a.cache != nil {
		if res, ok := a.cache.Get(key); ok {
			log.Printf("[DEBUG] ai result for %q from cache: %s", req.Text, res)
			return res
		}
	}

	prompt := a.prompt(req)
	var answer string
	call := func() error {
		callCtx, cancel := context.WithTimeout(ctx, a.params.Timeout)
		defer cancel()
		resp, err := a.client.Complete(callCtx, prompt)
		if err != nil {
			return err
		}
		answer = resp
		return nil
	}

	var err error
	if a.params.Retry {
		err = repeater.NewDefault(2, a.params.RetryDelay).Do(ctx, call)
	} else {
		err = call()
	}
	if err != nil {
		log.Printf("[WARN] ai analysis failed: %v", err)
		return fallback(ReasonFailed)
	}

	res, err := parseAnswer(answer)
	if err != nil {
		log.Printf("[WARN] can't parse ai response %q: %v", answer, err)
		if errors.Is(err, errBadJSON) {
			return fallback(ReasonFailed)
		}
		return fallback(ReasonNoParse)
	}

	if a.cache != nil {
		a.cache.Set(key, res, 0)
	}
	return res
}

func (a *Adjudicator) prompt(req Request) string {
	channel := req.ChannelName
	if channel == "" {
		channel = "unknown"
	}
	topic := req.ChannelTopic
	if topic == "" {
		topic = "No topic set"
	}

	flags := make([]string, 0, len(req.HeuristicReasons))
	for _, r := range req.HeuristicReasons {
		flags = append(flags, "- "+r)
	}

	return fmt.Sprintf(promptTemplate, channel, topic, req.AuthorName, a.reduce(req.Text), strings.Join(flags, "\n"))
}

// reduce limits the message text by the number of tokens, falls back to symbols if tokenizer fails
func (a *Adjudicator) reduce(text string) string {
	bySymbols := func(text string) string {
		runes := []rune(text)
		if len(runes) <= a.params.MaxSymbolsRequest {
			return text
		}
		return string(runes[:a.params.MaxSymbolsRequest])
	}

	if a.encoder == nil {
		return bySymbols(text)
	}
	tokens, err := a.encoder.Encode(text)
	if err != nil {
		return bySymbols(text)
	}
	if len(tokens) <= a.params.MaxTokensRequest {
		return text
	}
	return a.encoder.Decode(tokens[:a.params.MaxTokensRequest])
}

// parseAnswer extracts the outermost JSON object from the model answer and validates it.
// An object failing to decode returns errBadJSON.
func parseAnswer(answer string) (spamcheck.AIResult, error) {
	obj := jsonObjectRe.FindString(answer)
	if obj == "" {
		return spamcheck.AIResult{}, errors.New("no json object in response")
	}

	var res spamcheck.AIResult
	if err := json.Unmarshal([]byte(obj), &res); err != nil {
		return spamcheck.AIResult{}, fmt.Errorf("%w: %v", errBadJSON, err)
	}
	if !res.Classification.Valid() {
		return spamcheck.AIResult{}, fmt.Errorf("unknown classification %q", res.Classification)
	}
	if res.Confidence < 0 || res.Confidence > 1 {
		return spamcheck.AIResult{}, fmt.Errorf("confidence %v out of range", res.Confidence)
	}
	return res, nil
}

func fallback(reason string) spamcheck.AIResult {
	return spamcheck.AIResult{
		Classification:  spamcheck.ClassUncertain,
		Confidence:      fallbackConfidence,
		Reasoning:       reason,
		ChannelRelevant: true,
	}
}

// key is a hash of the message text and its channel context. Heuristic reasons are derived from the text.
func (r Request) key() string {
	h := sha256.New()
	for _, s := range []string{r.Text, r.ChannelName, r.ChannelTopic} {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

const promptTemplate = `You are a chat moderation assistant. Analyze this message for spam/self-promotion.

Channel: #%s
Channel Topic: %s
Author: %s
Message:
"""
%s
"""

Heuristic flags already detected:
%s

Analyze this message and determine:
1. Is this spam or unwanted self-promotion?
2. Is this message relevant to the channel's stated purpose?

Common spam patterns in chat servers:
- Job postings in non-job channels
- Self-promotional introductions listing services/skills for hire
- Copy-paste promotional content posted across multiple channels
- "DM me" or "let's talk" calls to action for services

Respond with JSON only:
{
  "classification": "spam" | "likely_spam" | "uncertain" | "legitimate",
  "confidence": 0.0-1.0,
  "reasoning": "Brief explanation",
  "channelRelevant": true/false
}`
