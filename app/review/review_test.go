package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GregHolmes/discord-bot-spam-detector/app/review/mocks"
	"github.com/GregHolmes/discord-bot-spam-detector/app/storage"
	"github.com/GregHolmes/discord-bot-spam-detector/lib/detector"
	"github.com/GregHolmes/discord-bot-spam-detector/lib/spamcheck"
)

type env struct {
	queue    *mocks.QueueMock
	mlog     *mocks.ModerationLogMock
	messages *mocks.MessageStoreMock
	enforcer *mocks.EnforcerMock
	svc      *Service
}

func newEnv(t *testing.T, item storage.ReviewItem) *env {
	t.Helper()
	res := &env{
		queue: &mocks.QueueMock{
			AddFunc: func(ctx context.Context, item storage.ReviewItem) (int64, error) { return 42, nil },
			GetFunc: func(ctx context.Context, id int64) (storage.ReviewItem, error) {
				if id != item.ID {
					return storage.ReviewItem{}, storage.ErrNotFound
				}
				return item, nil
			},
			ListFunc: func(ctx context.Context, status storage.ReviewStatus, limit int) ([]storage.ReviewItem, error) {
				return []storage.ReviewItem{item}, nil
			},
			ResolveFunc: func(ctx context.Context, id int64, status storage.ReviewStatus, moderatorID string) error {
				return nil
			},
		},
		mlog: &mocks.ModerationLogMock{
			AddFunc:  func(ctx context.Context, entry storage.LogEntry) error { return nil },
			ListFunc: func(ctx context.Context, limit int) ([]storage.LogEntry, error) { return nil, nil },
		},
		messages: &mocks.MessageStoreMock{DeleteFunc: func(ctx context.Context, id string) error { return nil }},
		enforcer: &mocks.EnforcerMock{
			NotifyFunc:        func(ctx context.Context, userID, text string) error { return nil },
			DeleteMessageFunc: func(ctx context.Context, channelID, messageID string) error { return nil },
			KickFunc:          func(ctx context.Context, groupID, userID, reason string) error { return nil },
		},
	}
	svc, err := NewService(Params{Queue: res.queue, Log: res.mlog, Messages: res.messages, Enforcer: res.enforcer,
		ServerName: "Dev Hangout"})
	require.NoError(t, err)
	res.svc = svc
	return res
}

func testItem() storage.ReviewItem {
	return storage.ReviewItem{
		ID: 7,
		Message: spamcheck.StoredMessage{ID: "m1", UserID: "u1", ChannelID: "c1", GroupID: "g1",
			Content: "DM me for freelance work"},
		ChannelName: "general",
		Confidence:  0.9,
		Reasons:     []string{`Contains keyword: "dm me"`},
		Status:      storage.StatusPending,
	}
}

func TestNewService(t *testing.T) {
	_, err := NewService(Params{})
	require.Error(t, err)

	svc, err := NewService(Params{Queue: &mocks.QueueMock{}, Log: &mocks.ModerationLogMock{},
		Messages: &mocks.MessageStoreMock{}})
	require.NoError(t, err)
	assert.NotNil(t, svc.Enforcer, "noop enforcer set")
	assert.Equal(t, "Spam/self-promotion", svc.KickReason)
	assert.Equal(t, 100, svc.ReviewLimit)
}

func TestService_Submit(t *testing.T) {
	e := newEnv(t, testItem())
	req := detector.Request{
		Msg: spamcheck.Message{ID: "m1", AuthorID: "u1", ChannelID: "c1", GroupID: "g1", Text: "promo",
			CreatedAt: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)},
		ChannelName: "general", AuthorName: "bob",
	}
	verdict := spamcheck.Verdict{IsSpam: true, Confidence: 0.8, Reasons: []string{"r1", "r2"},
		Heuristics: spamcheck.HeuristicResult{Score: 6, Reasons: []string{"r1"}},
		AIAnalysis: &spamcheck.AIResult{Classification: spamcheck.ClassSpam, Confidence: 0.9}}

	id, err := e.svc.Submit(context.Background(), req, verdict)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	require.Len(t, e.queue.AddCalls(), 1)
	item := e.queue.AddCalls()[0].Item
	assert.Equal(t, req.Msg.Stored(), item.Message)
	assert.Equal(t, "bob", item.AuthorName)
	assert.Equal(t, "general", item.ChannelName)
	assert.InDelta(t, 0.8, item.Confidence, 0.0001)
	assert.Equal(t, 6, item.Score)
	assert.Equal(t, []string{"r1", "r2"}, item.Reasons)
	assert.Equal(t, verdict.AIAnalysis, item.AIAnalysis)
	assert.False(t, item.CreatedAt.IsZero())

	t.Run("queue error", func(t *testing.T) {
		e.queue.AddFunc = func(ctx context.Context, item storage.ReviewItem) (int64, error) {
			return 0, errors.New("db is down")
		}
		_, err := e.svc.Submit(context.Background(), req, verdict)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db is down")
	})
}

func TestService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("approve", func(t *testing.T) {
		e := newEnv(t, testItem())
		res, err := e.svc.Resolve(ctx, 7, ActionApprove, "mod1")
		require.NoError(t, err)
		assert.Equal(t, storage.StatusApproved, res.Status)
		assert.Equal(t, "mod1", res.ModeratorID)
		assert.NotNil(t, res.ResolvedAt)

		require.Len(t, e.queue.ResolveCalls(), 1)
		assert.Equal(t, storage.StatusApproved, e.queue.ResolveCalls()[0].Status)
		require.Len(t, e.mlog.AddCalls(), 1)
		assert.Equal(t, storage.LogEntry{MessageID: "m1", UserID: "u1", GroupID: "g1", Action: storage.ActionApproved,
			ModeratorID: "mod1", Reason: `Contains keyword: "dm me"`}, e.mlog.AddCalls()[0].Entry)
		assert.Empty(t, e.messages.DeleteCalls(), "approved message stays in history")
		assert.Empty(t, e.enforcer.NotifyCalls())
		assert.Empty(t, e.enforcer.DeleteMessageCalls())
		assert.Empty(t, e.enforcer.KickCalls())
	})

	t.Run("warn", func(t *testing.T) {
		e := newEnv(t, testItem())
		res, err := e.svc.Resolve(ctx, 7, ActionWarn, "mod1")
		require.NoError(t, err)
		assert.Equal(t, storage.StatusSpam, res.Status)

		require.Len(t, e.enforcer.NotifyCalls(), 1)
		assert.Equal(t, "u1", e.enforcer.NotifyCalls()[0].UserID)
		assert.Contains(t, e.enforcer.NotifyCalls()[0].Text, "Your message in #general on Dev Hangout was removed")
		require.Len(t, e.enforcer.DeleteMessageCalls(), 1)
		assert.Equal(t, "c1", e.enforcer.DeleteMessageCalls()[0].ChannelID)
		assert.Equal(t, "m1", e.enforcer.DeleteMessageCalls()[0].MessageID)
		assert.Empty(t, e.enforcer.KickCalls())

		require.Len(t, e.messages.DeleteCalls(), 1)
		assert.Equal(t, "m1", e.messages.DeleteCalls()[0].Id)
		require.Len(t, e.mlog.AddCalls(), 1)
		assert.Equal(t, storage.ActionSpam, e.mlog.AddCalls()[0].Entry.Action)
	})

	t.Run("kick", func(t *testing.T) {
		e := newEnv(t, testItem())
		res, err := e.svc.Resolve(ctx, 7, ActionKick, "mod2")
		require.NoError(t, err)
		assert.Equal(t, storage.StatusSpamKick, res.Status)

		require.Len(t, e.enforcer.NotifyCalls(), 1)
		assert.Contains(t, e.enforcer.NotifyCalls()[0].Text, "You have been removed from Dev Hangout")
		require.Len(t, e.enforcer.DeleteMessageCalls(), 1)
		require.Len(t, e.enforcer.KickCalls(), 1)
		assert.Equal(t, "g1", e.enforcer.KickCalls()[0].GroupID)
		assert.Equal(t, "u1", e.enforcer.KickCalls()[0].UserID)
		assert.Equal(t, "Spam/self-promotion", e.enforcer.KickCalls()[0].Reason)
		require.Len(t, e.messages.DeleteCalls(), 1)
		require.Len(t, e.mlog.AddCalls(), 1)
		assert.Equal(t, storage.ActionSpamKick, e.mlog.AddCalls()[0].Entry.Action)
		assert.Equal(t, "mod2", e.mlog.AddCalls()[0].Entry.ModeratorID)
	})

	t.Run("enforcer failures are not fatal", func(t *testing.T) {
		e := newEnv(t, testItem())
		e.enforcer.NotifyFunc = func(ctx context.Context, userID, text string) error { return errors.New("dm closed") }
		e.enforcer.DeleteMessageFunc = func(ctx context.Context, channelID, messageID string) error {
			return errors.New("no permission")
		}
		e.enforcer.KickFunc = func(ctx context.Context, groupID, userID, reason string) error {
			return errors.New("no permission")
		}
		res, err := e.svc.Resolve(ctx, 7, ActionKick, "mod1")
		require.NoError(t, err)
		assert.Equal(t, storage.StatusSpamKick, res.Status)
		assert.Len(t, e.enforcer.KickCalls(), 1)
		assert.Len(t, e.messages.DeleteCalls(), 1)
		assert.Len(t, e.mlog.AddCalls(), 1)
	})

	t.Run("storage failures don't fail committed resolution", func(t *testing.T) {
		e := newEnv(t, testItem())
		e.messages.DeleteFunc = func(ctx context.Context, id string) error { return errors.New("delete failed") }
		e.mlog.AddFunc = func(ctx context.Context, entry storage.LogEntry) error { return errors.New("log failed") }
		res, err := e.svc.Resolve(ctx, 7, ActionWarn, "mod1")
		require.NoError(t, err)
		assert.Equal(t, storage.StatusSpam, res.Status)
		assert.Equal(t, "mod1", res.ModeratorID)
		assert.Len(t, e.queue.ResolveCalls(), 1)
		assert.Len(t, e.messages.DeleteCalls(), 1)
		assert.Len(t, e.mlog.AddCalls(), 1)
	})

	t.Run("already resolved", func(t *testing.T) {
		e := newEnv(t, testItem())
		e.queue.ResolveFunc = func(ctx context.Context, id int64, status storage.ReviewStatus, moderatorID string) error {
			return storage.ErrAlreadyResolved
		}
		_, err := e.svc.Resolve(ctx, 7, ActionKick, "mod1")
		require.ErrorIs(t, err, storage.ErrAlreadyResolved)
		assert.Empty(t, e.enforcer.KickCalls(), "no enforcement on second resolution")
		assert.Empty(t, e.mlog.AddCalls())
	})

	t.Run("missing item", func(t *testing.T) {
		e := newEnv(t, testItem())
		_, err := e.svc.Resolve(ctx, 8, ActionApprove, "mod1")
		require.ErrorIs(t, err, storage.ErrNotFound)
		assert.Empty(t, e.queue.ResolveCalls())
	})

	t.Run("unknown action", func(t *testing.T) {
		e := newEnv(t, testItem())
		_, err := e.svc.Resolve(ctx, 7, Action("ban"), "mod1")
		require.ErrorIs(t, err, ErrUnknownAction)
		assert.Empty(t, e.queue.GetCalls())
	})

	t.Run("no channel name and server name", func(t *testing.T) {
		item := testItem()
		item.ChannelName = ""
		e := newEnv(t, item)
		e.svc.ServerName = ""
		_, err := e.svc.Resolve(ctx, 7, ActionWarn, "mod1")
		require.NoError(t, err)
		assert.Contains(t, e.enforcer.NotifyCalls()[0].Text, "Your message in the server on the server was removed")
	})
}

func TestService_Listing(t *testing.T) {
	e := newEnv(t, testItem())
	e.mlog.ListFunc = func(ctx context.Context, limit int) ([]storage.LogEntry, error) {
		return []storage.LogEntry{{MessageID: "m1", Action: storage.ActionSpam}}, nil
	}

	items, err := e.svc.List(context.Background(), storage.StatusPending)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	require.Len(t, e.queue.ListCalls(), 1)
	assert.Equal(t, storage.StatusPending, e.queue.ListCalls()[0].Status)
	assert.Equal(t, 100, e.queue.ListCalls()[0].Limit)

	entries, err := e.svc.History(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, 5, e.mlog.ListCalls()[0].Limit)

	e.queue.ListFunc = func(ctx context.Context, status storage.ReviewStatus, limit int) ([]storage.ReviewItem, error) {
		return nil, errors.New("failed")
	}
	_, err = e.svc.List(context.Background(), "")
	require.Error(t, err)
}

func TestParseAction(t *testing.T) {
	for _, s := range []string{"approve", "warn", "kick"} {
		a, err := ParseAction(s)
		require.NoError(t, err)
		assert.Equal(t, Action(s), a)
	}
	_, err := ParseAction("spam")
	require.ErrorIs(t, err, ErrUnknownAction)
}

func TestNoopEnforcer(t *testing.T) {
	e := NewNoopEnforcer()
	ctx := context.Background()
	assert.NoError(t, e.Notify(ctx, "u1", "text"))
	assert.NoError(t, e.DeleteMessage(ctx, "c1", "m1"))
	assert.NoError(t, e.Kick(ctx, "g1", "u1", "spam"))
}
