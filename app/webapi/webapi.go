// Package webapi provides HTTP API of the spam detection service: message ingest, dry checks,
// the review queue with moderator actions and the moderation log.
package webapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/didip/tollbooth/v8/limiter"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/GregHolmes/discord-bot-spam-detector/app/events"
	"github.com/GregHolmes/discord-bot-spam-detector/app/review"
	"github.com/GregHolmes/discord-bot-spam-detector/app/storage"
	"github.com/GregHolmes/discord-bot-spam-detector/lib/detector"
	"github.com/GregHolmes/discord-bot-spam-detector/lib/spamcheck"
)

//go:generate moq --out mocks/detector.go --pkg mocks --with-resets --skip-ensure . Detector
//go:generate moq --out mocks/processor.go --pkg mocks --with-resets --skip-ensure . Processor
//go:generate moq --out mocks/reviewer.go --pkg mocks --with-resets --skip-ensure . Reviewer

// authUser is the basic auth user name
const authUser = "spam-detector"

// Server is a web API server.
type Server struct {
	Config
}

// Config defines server parameters
type Config struct {
	Version    string    // version to show in /ping
	ListenAddr string    // listen address
	Detector   Detector  // spam detector, used for dry checks
	Processor  Processor // message processor, used for ingest
	Reviewer   Reviewer  // review queue and moderation log
	Recent     Recent    // last checked messages, optional
	AuthPasswd string    // basic auth password for user "spam-detector", no auth if empty
	RateLimit  float64   // requests per second, 50 if not set
	Dbg        bool      // debug mode
}

// Recent provides last checked messages
type Recent interface {
	Last(n int) []spamcheck.Check
}

// Detector checks a message for spam without side effects
type Detector interface {
	Detect(ctx context.Context, req detector.Request) (spamcheck.Verdict, error)
}

// Processor handles an incoming message: saves, checks and escalates it
type Processor interface {
	Process(ctx context.Context, in events.Incoming) *spamcheck.Verdict
}

// Reviewer is the moderator workflow
type Reviewer interface {
	List(ctx context.Context, status storage.ReviewStatus) ([]storage.ReviewItem, error)
	Resolve(ctx context.Context, id int64, action review.Action, moderatorID string) (storage.ReviewItem, error)
	History(ctx context.Context, limit int) ([]storage.LogEntry, error)
}

// messageRequest is a body of /check and /messages requests
type messageRequest struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ChannelID    string    `json:"channel_id"`
	GroupID      string    `json:"group_id"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
	ChannelName  string    `json:"channel_name"`
	ChannelTopic string    `json:"channel_topic"`
	AuthorName   string    `json:"author_name"`
	FromBot      bool      `json:"is_bot"`
	FromMod      bool      `json:"is_moderator"`
}

func (m messageRequest) detectorRequest() detector.Request {
	return detector.Request{
		Msg: spamcheck.Message{ID: m.ID, AuthorID: m.UserID, ChannelID: m.ChannelID, GroupID: m.GroupID,
			Text: m.Text, CreatedAt: m.CreatedAt},
		ChannelName:  m.ChannelName,
		ChannelTopic: m.ChannelTopic,
		AuthorName:   m.AuthorName,
	}
}

// NewServer creates a new web API server.
func NewServer(config Config) *Server {
	if config.RateLimit <= 0 {
		config.RateLimit = 50
	}
	return &Server{Config: config}
}

// Run starts server and accepts requests until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	if s.AuthPasswd != "" {
		log.Printf("[INFO] basic auth enabled for webapi server")
	} else {
		log.Printf("[WARN] basic auth disabled, access to webapi is not protected")
	}

	srv := &http.Server{Addr: s.ListenAddr, Handler: s.router(), ReadTimeout: 5 * time.Second,
		WriteTimeout: 60 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] failed to shutdown webapi server: %v", err)
		} else {
			log.Printf("[INFO] webapi server stopped")
		}
	}()

	log.Printf("[INFO] start webapi server on %s", s.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to run server: %w", err)
	}
	return nil
}

func (s *Server) router() http.Handler {
	lmt := tollbooth.NewLimiter(s.RateLimit, nil)
	lmt.SetIPLookup(limiter.IPLookup{Name: "RemoteAddr"})

	router := routegroup.New(http.NewServeMux())
	router.Use(rest.Recoverer(lgr.Default()))
	router.Use(rest.Throttle(1000))
	router.Use(rest.AppInfo("spam-detector", "GregHolmes", s.Version), rest.Ping)
	router.Use(func(next http.Handler) http.Handler { return tollbooth.LimitHandler(lmt, next) })
	router.Use(rest.SizeLimit(1024 * 1024)) // 1M max request size

	api := router.Group()
	api.Use(s.authMiddleware(rest.BasicAuthWithUserPasswd(authUser, s.AuthPasswd)))
	api.HandleFunc("POST /check", s.checkHandler)                 // dry check, no history and no escalation
	api.HandleFunc("POST /messages", s.messageHandler)            // ingest a message
	api.HandleFunc("GET /queue", s.queueHandler)                  // list review items
	api.HandleFunc("POST /queue/{id}/{action}", s.resolveHandler) // approve, warn or kick
	api.HandleFunc("GET /log", s.logHandler)                      // moderation log
	api.HandleFunc("GET /recent", s.recentHandler)                // last checked messages
	return router
}

// checkHandler handles POST /check request.
// it runs detection for the message and returns the verdict, the message is not stored.
func (s *Server) checkHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeMessage(w, r)
	if !ok {
		return
	}
	verdict, err := s.Detector.Detect(r.Context(), req.detectorRequest())
	if err != nil {
		log.Printf("[WARN] can't check message: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		rest.RenderJSON(w, rest.JSON{"error": "can't check message", "details": err.Error()})
		return
	}
	rest.RenderJSON(w, rest.JSON{"spam": verdict.IsSpam, "verdict": verdict})
}

// messageHandler handles POST /messages request.
// it passes the message to the processor, spam is escalated to the review queue.
func (s *Server) messageHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeMessage(w, r)
	if !ok {
		return
	}
	if req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "message id is required"})
		return
	}
	in := events.Incoming{Request: req.detectorRequest(), FromBot: req.FromBot, FromModerator: req.FromMod}
	verdict := s.Processor.Process(r.Context(), in)
	if verdict == nil {
		rest.RenderJSON(w, rest.JSON{"processed": false, "spam": false})
		return
	}
	rest.RenderJSON(w, rest.JSON{"processed": true, "spam": verdict.IsSpam, "verdict": verdict})
}

// queueHandler handles GET /queue?status=pending request.
// status "all" lists items in any status, missing status means pending.
func (s *Server) queueHandler(w http.ResponseWriter, r *http.Request) {
	status := storage.ReviewStatus(r.URL.Query().Get("status"))
	switch status {
	case "":
		status = storage.StatusPending
	case "all":
		status = ""
	case storage.StatusPending, storage.StatusApproved, storage.StatusSpam, storage.StatusSpamKick:
	default:
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "invalid status", "details": string(status)})
		return
	}

	items, err := s.Reviewer.List(r.Context(), status)
	if err != nil {
		log.Printf("[WARN] can't list review items: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		rest.RenderJSON(w, rest.JSON{"error": "can't list review items", "details": err.Error()})
		return
	}
	cards := make([]review.Card, 0, len(items))
	for _, item := range items {
		cards = append(cards, review.NewCard(item))
	}
	rest.RenderJSON(w, rest.JSON{"items": cards, "count": len(cards)})
}

// resolveHandler handles POST /queue/{id}/{action} request with {"moderator_id": "..."} body
func (s *Server) resolveHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "invalid item id", "details": err.Error()})
		return
	}
	action, err := review.ParseAction(r.PathValue("action"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "invalid action", "details": err.Error()})
		return
	}
	req := struct {
		ModeratorID string `json:"moderator_id"`
	}{}
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "can't decode request", "details": err.Error()})
		return
	}
	if req.ModeratorID == "" {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "moderator id is required"})
		return
	}

	item, err := s.Reviewer.Resolve(r.Context(), id, action, req.ModeratorID)
	if err != nil {
		log.Printf("[WARN] can't resolve review item %d: %v", id, err)
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, storage.ErrNotFound):
			code = http.StatusNotFound
		case errors.Is(err, storage.ErrAlreadyResolved):
			code = http.StatusConflict
		}
		w.WriteHeader(code)
		rest.RenderJSON(w, rest.JSON{"error": "can't resolve review item", "details": err.Error()})
		return
	}
	rest.RenderJSON(w, rest.JSON{"id": item.ID, "status": item.Status, "item": review.NewCard(item)})
}

// logHandler handles GET /log?limit=N request
func (s *Server) logHandler(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			rest.RenderJSON(w, rest.JSON{"error": "invalid limit", "details": v})
			return
		}
		limit = l
	}
	entries, err := s.Reviewer.History(r.Context(), limit)
	if err != nil {
		log.Printf("[WARN] can't get moderation log: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		rest.RenderJSON(w, rest.JSON{"error": "can't get moderation log", "details": err.Error()})
		return
	}
	rest.RenderJSON(w, rest.JSON{"entries": entries, "count": len(entries)})
}

// recentHandler handles GET /recent?limit=N request, returns last checked messages, newest last
func (s *Server) recentHandler(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			rest.RenderJSON(w, rest.JSON{"error": "invalid limit", "details": v})
			return
		}
		limit = l
	}
	checks := []spamcheck.Check{}
	if s.Recent != nil {
		checks = s.Recent.Last(limit)
	}
	rest.RenderJSON(w, rest.JSON{"checks": checks, "count": len(checks)})
}

func (s *Server) decodeMessage(w http.ResponseWriter, r *http.Request) (messageRequest, bool) {
	req := messageRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "can't decode request", "details": err.Error()})
		log.Printf("[WARN] can't decode request: %v", err)
		return req, false
	}
	if req.UserID == "" {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "user id is required"})
		return req, false
	}
	return req, true
}

// authMiddleware is a middleware for basic auth, skipped if no password set
func (s *Server) authMiddleware(mw func(next http.Handler) http.Handler) func(next http.Handler) http.Handler {
	if s.AuthPasswd == "" {
		return func(next http.Handler) http.Handler { return next }
	}
	return mw
}
