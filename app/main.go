package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/sashabaranov/go-openai"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/GregHolmes/discord-bot-spam-detector/app/events"
	"github.com/GregHolmes/discord-bot-spam-detector/app/review"
	"github.com/GregHolmes/discord-bot-spam-detector/app/rules"
	"github.com/GregHolmes/discord-bot-spam-detector/app/storage"
	"github.com/GregHolmes/discord-bot-spam-detector/app/storage/engine"
	"github.com/GregHolmes/discord-bot-spam-detector/app/webapi"
	"github.com/GregHolmes/discord-bot-spam-detector/lib/adjudicator"
	"github.com/GregHolmes/discord-bot-spam-detector/lib/detector"
	"github.com/GregHolmes/discord-bot-spam-detector/lib/heuristic"
	"github.com/GregHolmes/discord-bot-spam-detector/lib/spamcheck"
)

type options struct {
	Detector struct {
		HeuristicThreshold  int     `long:"heuristic-threshold" env:"HEURISTIC_THRESHOLD" default:"5" description:"heuristic score to consider a message suspicious"`
		AIThreshold         float64 `long:"ai-threshold" env:"AI_THRESHOLD" default:"0.7" description:"min AI confidence to trust a spam classification"`
		SimilarityThreshold float64 `long:"similarity-threshold" env:"SIMILARITY_THRESHOLD" default:"0.7" description:"min similarity to count a past message as a duplicate"`
		HistoryDays         int     `long:"history-days" env:"HISTORY_DAYS" default:"7" description:"days of message history to check and keep"`
	} `group:"detector" namespace:"detector" env-namespace:"DETECTOR"`

	OpenAI struct {
		Token             string `long:"token" env:"TOKEN" description:"openai token, disabled if not set"`
		APIBase           string `long:"apibase" env:"API_BASE" description:"custom openai API base, default is https://api.openai.com/v1"`
		Model             string `long:"model" env:"MODEL" default:"gpt-4o-mini" description:"openai model"`
		MaxTokensResponse int    `long:"max-tokens-response" env:"MAX_TOKENS_RESPONSE" default:"300" description:"openai max tokens in response"`
	} `group:"openai" namespace:"openai" env-namespace:"OPENAI"`

	Gemini struct {
		Token             string `long:"token" env:"TOKEN" description:"gemini API key, disabled if not set"`
		Model             string `long:"model" env:"MODEL" default:"gemini-2.5-flash" description:"gemini model"`
		MaxTokensResponse int32  `long:"max-tokens-response" env:"MAX_TOKENS_RESPONSE" default:"300" description:"gemini max tokens in response"`
	} `group:"gemini" namespace:"gemini" env-namespace:"GEMINI"`

	AI struct {
		Timeout           time.Duration `long:"timeout" env:"TIMEOUT" default:"30s" description:"AI request timeout"`
		Retry             bool          `long:"retry" env:"RETRY" description:"retry failed AI request once"`
		CacheTTL          time.Duration `long:"cache-ttl" env:"CACHE_TTL" default:"1h" description:"AI results cache TTL, 0 to disable"`
		MaxTokensRequest  int           `long:"max-tokens-request" env:"MAX_TOKENS_REQUEST" default:"1024" description:"max tokens of message text in AI request"`
		MaxSymbolsRequest int           `long:"max-symbols-request" env:"MAX_SYMBOLS_REQUEST" default:"8192" description:"max symbols in request, fallback if tokenizer failed"`
	} `group:"ai" namespace:"ai" env-namespace:"AI"`

	DB struct {
		URL string `long:"url" env:"URL" default:"spam-detector.db" description:"database URL, sqlite file or postgres://"`
	} `group:"db" namespace:"db" env-namespace:"DB"`

	Logger struct {
		Enabled    bool   `long:"enabled" env:"ENABLED" description:"enable spam rotated logs"`
		FileName   string `long:"file" env:"FILE"  default:"spam-detector.log" description:"location of spam log"`
		MaxSize    string `long:"max-size" env:"MAX_SIZE" default:"100M" description:"maximum size before it gets rotated"`
		MaxBackups int    `long:"max-backups" env:"MAX_BACKUPS" default:"10" description:"maximum number of old log files to retain"`
	} `group:"logger" namespace:"logger" env-namespace:"LOGGER"`

	Server struct {
		ListenAddr string  `long:"listen" env:"LISTEN" default:":8080" description:"listen address"`
		AuthPasswd string  `long:"auth" env:"AUTH" description:"basic auth password for user spam-detector"`
		RateLimit  float64 `long:"rate-limit" env:"RATE_LIMIT" default:"50" description:"max requests per second"`
	} `group:"server" namespace:"server" env-namespace:"SERVER"`

	Files struct {
		Rules string `long:"rules" env:"RULES" description:"heuristic rules file, built-in rules if not set"`
	} `group:"files" namespace:"files" env-namespace:"FILES"`

	ServerName      string        `long:"server-name" env:"SERVER_NAME" description:"chat server name used in user notifications"`
	CleanupInterval time.Duration `long:"cleanup-interval" env:"CLEANUP_INTERVAL" default:"24h" description:"history cleanup interval"`
	RecentSize      int           `long:"recent-size" env:"RECENT_SIZE" default:"100" description:"number of last checked messages to keep in memory"`
	Dbg             bool          `long:"dbg" env:"DEBUG" description:"debug mode"`
}

var revision = "local"

func main() {
	fmt.Printf("spam-detector %s\n", revision)
	var opts options
	p := flags.NewParser(&opts, flags.PrintErrors|flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if !errors.As(err, &flagsErr) || flagsErr.Type != flags.ErrHelp {
			log.Printf("[ERROR] cli error: %v", err)
		}
		os.Exit(2)
	}

	setupLog(opts.Dbg, opts.OpenAI.Token, opts.Gemini.Token, opts.Server.AuthPasswd)
	log.Printf("[DEBUG] options: %+v", opts)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		// catch signal and invoke graceful termination
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Printf("[WARN] interrupt signal")
		cancel()
	}()

	if err := execute(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

func execute(ctx context.Context, opts options) error {
	detectorCfg := detector.Config{
		HeuristicThreshold:  opts.Detector.HeuristicThreshold,
		AIThreshold:         opts.Detector.AIThreshold,
		SimilarityThreshold: opts.Detector.SimilarityThreshold,
		HistoryDays:         opts.Detector.HistoryDays,
	}
	if err := detectorCfg.Validate(); err != nil {
		return err
	}
	if opts.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup interval must be positive, got %v", opts.CleanupInterval)
	}

	db, err := engine.New(ctx, opts.DB.URL)
	if err != nil {
		return fmt.Errorf("can't make db %s: %w", opts.DB.URL, err)
	}
	defer db.Close()

	messages, err := storage.NewMessages(db)
	if err != nil {
		return fmt.Errorf("can't make messages store: %w", err)
	}
	if err = messages.Init(ctx); err != nil {
		return fmt.Errorf("can't init messages store: %w", err)
	}
	modLog, err := storage.NewModerationLog(ctx, db)
	if err != nil {
		return fmt.Errorf("can't make moderation log: %w", err)
	}
	queue, err := storage.NewReviewQueue(ctx, db)
	if err != nil {
		return fmt.Errorf("can't make review queue: %w", err)
	}

	scorer, err := makeScorer(ctx, opts)
	if err != nil {
		return err
	}

	aiClient, err := makeAIClient(ctx, opts)
	if err != nil {
		return err
	}
	adj := adjudicator.New(aiClient, adjudicator.Config{
		Timeout:           opts.AI.Timeout,
		Retry:             opts.AI.Retry,
		CacheTTL:          opts.AI.CacheTTL,
		MaxTokensRequest:  opts.AI.MaxTokensRequest,
		MaxSymbolsRequest: opts.AI.MaxSymbolsRequest,
	})

	det := detector.NewDetector(detectorCfg).WithScorer(scorer).WithHistory(messages).WithAI(adj)
	log.Printf("[INFO] detector: %+v, ai enabled: %v", detectorCfg, adj.Enabled())

	reviewer, err := review.NewService(review.Params{Queue: queue, Log: modLog, Messages: messages,
		Enforcer: review.NewNoopEnforcer(), ServerName: opts.ServerName})
	if err != nil {
		return fmt.Errorf("can't make review service: %w", err)
	}

	spamLogWr, err := makeSpamLogWriter(opts)
	if err != nil {
		return fmt.Errorf("can't make spam log writer: %w", err)
	}
	defer spamLogWr.Close()

	recent := spamcheck.NewLastChecks(opts.RecentSize)
	proc, err := events.NewProcessor(events.Processor{Detector: det, History: messages, Reviewer: reviewer,
		SpamLogger: makeSpamLogger(spamLogWr), Recent: recent})
	if err != nil {
		return fmt.Errorf("can't make processor: %w", err)
	}
	go proc.RunCleanup(ctx, opts.CleanupInterval, opts.Detector.HistoryDays)

	srv := webapi.NewServer(webapi.Config{
		Version:    revision,
		ListenAddr: opts.Server.ListenAddr,
		Detector:   det,
		Processor:  proc,
		Reviewer:   reviewer,
		Recent:     recent,
		AuthPasswd: opts.Server.AuthPasswd,
		RateLimit:  opts.Server.RateLimit,
		Dbg:        opts.Dbg,
	})
	return srv.Run(ctx)
}

// makeScorer returns heuristic scorer holder, with rules from the file if set.
// The file is watched and reloaded on changes.
func makeScorer(ctx context.Context, opts options) (*heuristic.Holder, error) {
	holder := heuristic.NewHolder(nil)
	if opts.Files.Rules == "" {
		rules := holder.Scorer().Rules()
		log.Printf("[INFO] built-in heuristic rules, %d keywords, %d high-weight phrases, %d promo patterns",
			len(rules.Keywords), len(rules.HighWeight), len(rules.Promo))
		return holder, nil
	}
	watcher, err := rules.NewWatcher(opts.Files.Rules, holder)
	if err != nil {
		return nil, fmt.Errorf("can't make rules watcher: %w", err)
	}
	if err := watcher.Load(); err != nil {
		return nil, fmt.Errorf("can't load rules: %w", err)
	}
	go func() {
		if err := watcher.Run(ctx); err != nil {
			log.Printf("[WARN] rules watcher failed: %v", err)
		}
	}()
	return holder, nil
}

// makeAIClient returns an LLM client for the adjudicator, nil if no provider configured.
// OpenAI is preferred if both providers are set.
func makeAIClient(ctx context.Context, opts options) (adjudicator.Client, error) {
	if opts.OpenAI.Token != "" {
		if opts.Gemini.Token != "" {
			log.Printf("[WARN] both openai and gemini set, gemini ignored")
		}
		config := openai.DefaultConfig(opts.OpenAI.Token)
		if opts.OpenAI.APIBase != "" {
			config.BaseURL = opts.OpenAI.APIBase
		}
		log.Printf("[INFO] ai adjudicator with openai, model %s", opts.OpenAI.Model)
		return adjudicator.NewOpenAI(openai.NewClientWithConfig(config), adjudicator.OpenAIConfig{
			Model: opts.OpenAI.Model, MaxTokensResponse: opts.OpenAI.MaxTokensResponse}), nil
	}

	if opts.Gemini.Token != "" {
		client, err := adjudicator.NewGeminiClient(ctx, opts.Gemini.Token, adjudicator.GeminiConfig{
			Model: opts.Gemini.Model, MaxTokensResponse: opts.Gemini.MaxTokensResponse})
		if err != nil {
			return nil, fmt.Errorf("can't make gemini client: %w", err)
		}
		log.Printf("[INFO] ai adjudicator with gemini, model %s", opts.Gemini.Model)
		return client, nil
	}

	log.Printf("[INFO] ai adjudicator disabled")
	return nil, nil
}

// makeSpamLogger creates spam logger to keep reports about spam messages
// it writes json lines to wr
func makeSpamLogger(wr io.Writer) events.SpamLogger {
	return events.SpamLoggerFunc(func(req detector.Request, verdict spamcheck.Verdict) {
		text := strings.ReplaceAll(req.Msg.Text, "\n", " ")
		text = strings.TrimSpace(text)
		log.Printf("[DEBUG] spam message: %s", text)
		m := struct {
			TimeStamp   string   `json:"ts"`
			MessageID   string   `json:"message_id"`
			UserID      string   `json:"user_id"`
			DisplayName string   `json:"display_name"`
			ChannelID   string   `json:"channel_id"`
			Channel     string   `json:"channel"`
			Text        string   `json:"text"`
			Confidence  float64  `json:"confidence"`
			Reasons     []string `json:"reasons"`
		}{
			TimeStamp:   time.Now().In(time.Local).Format(time.RFC3339),
			MessageID:   req.Msg.ID,
			UserID:      req.Msg.AuthorID,
			DisplayName: req.AuthorName,
			ChannelID:   req.Msg.ChannelID,
			Channel:     req.ChannelName,
			Text:        text,
			Confidence:  verdict.Confidence,
			Reasons:     verdict.Reasons,
		}
		line, err := json.Marshal(&m)
		if err != nil {
			log.Printf("[WARN] can't marshal json, %v", err)
			return
		}
		if _, err := wr.Write(append(line, '\n')); err != nil {
			log.Printf("[WARN] can't write to log, %v", err)
		}
	})
}

// makeSpamLogWriter creates spam log writer to keep reports about spam messages
// it parses options and makes lumberjack logger with rotation
func makeSpamLogWriter(opts options) (accessLog io.WriteCloser, err error) {
	if !opts.Logger.Enabled {
		return nopWriteCloser{io.Discard}, nil
	}

	sizeParse := func(inp string) (uint64, error) {
		if inp == "" {
			return 0, errors.New("empty value")
		}
		for i, sfx := range []string{"k", "m", "g", "t"} {
			if strings.HasSuffix(inp, strings.ToUpper(sfx)) || strings.HasSuffix(inp, strings.ToLower(sfx)) {
				val, err := strconv.Atoi(inp[:len(inp)-1])
				if err != nil {
					return 0, fmt.Errorf("can't parse %s: %w", inp, err)
				}
				return uint64(float64(val) * math.Pow(float64(1024), float64(i+1))), nil
			}
		}
		return strconv.ParseUint(inp, 10, 64)
	}

	maxSize, perr := sizeParse(opts.Logger.MaxSize)
	if perr != nil {
		return nil, fmt.Errorf("can't parse logger MaxSize: %w", perr)
	}

	maxSize /= 1048576

	log.Printf("[INFO] logger enabled for %s, max size %dM", opts.Logger.FileName, maxSize)
	return &lumberjack.Logger{
		Filename:   opts.Logger.FileName,
		MaxSize:    int(maxSize), // in MB
		MaxBackups: opts.Logger.MaxBackups,
		Compress:   true,
		LocalTime:  true,
	}, nil
}

type nopWriteCloser struct{ io.Writer }

func (n nopWriteCloser) Close() error { return nil }

func setupLog(dbg bool, secrets ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	nonEmpty := make([]string, 0, len(secrets))
	for _, s := range secrets {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	if len(nonEmpty) > 0 {
		logOpts = append(logOpts, lgr.Secret(nonEmpty...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
