package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/GregHolmes/discord-bot-spam-detector/lib/spamcheck"
)

func (s *StorageTestSuite) TestMessages_Init() {
	ctx := context.Background()
	for _, db := range s.getTestDB() {
		s.Run(fmt.Sprintf("with %s", db.Type()), func() {
			defer s.dropTables(db, "messages")

			s.Run("nil db connection", func() {
				_, err := NewMessages(nil)
				s.Require().Error(err)
				s.Contains(err.Error(), "db connection is nil")
			})

			msgs, err := NewMessages(db)
			s.Require().NoError(err)

			s.Run("not initialized", func() {
				err := msgs.Save(ctx, spamcheck.StoredMessage{ID: "m1", UserID: "u1"})
				s.Require().ErrorIs(err, ErrNotInitialized)
				_, err = msgs.Recent(ctx, "u1", "g1", time.Now())
				s.Require().ErrorIs(err, ErrNotInitialized)
				s.Require().ErrorIs(msgs.Delete(ctx, "m1"), ErrNotInitialized)
				_, err = msgs.Cleanup(ctx, time.Now())
				s.Require().ErrorIs(err, ErrNotInitialized)
			})

			s.Run("init twice", func() {
				s.Require().NoError(msgs.Init(ctx))
				s.Require().NoError(msgs.Init(ctx))
				var count int
				s.Require().NoError(db.Get(&count, "SELECT COUNT(*) FROM messages"))
				s.Equal(0, count)
			})
		})
	}
}

func (s *StorageTestSuite) TestMessages_SaveAndRecent() {
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)
	for _, db := range s.getTestDB() {
		s.Run(fmt.Sprintf("with %s", db.Type()), func() {
			defer s.dropTables(db, "messages")
			msgs, err := NewMessages(db)
			s.Require().NoError(err)
			s.Require().NoError(msgs.Init(ctx))

			for _, m := range []spamcheck.StoredMessage{
				{ID: "m1", UserID: "u1", ChannelID: "c1", GroupID: "g1", Content: "first", CreatedAt: now.Add(-3 * time.Hour)},
				{ID: "m2", UserID: "u1", ChannelID: "c2", GroupID: "g1", Content: "second", CreatedAt: now.Add(-time.Hour)},
				{ID: "m3", UserID: "u1", ChannelID: "c1", GroupID: "g1", Content: "old", CreatedAt: now.Add(-10 * 24 * time.Hour)},
				{ID: "m4", UserID: "u2", ChannelID: "c1", GroupID: "g1", Content: "other user", CreatedAt: now},
				{ID: "m5", UserID: "u1", ChannelID: "c1", GroupID: "g2", Content: "other group", CreatedAt: now},
			} {
				s.Require().NoError(msgs.Save(ctx, m))
			}

			s.Run("most recent first within window", func() {
				res, err := msgs.Recent(ctx, "u1", "g1", now.Add(-7*24*time.Hour))
				s.Require().NoError(err)
				s.Require().Len(res, 2)
				s.Equal("m2", res[0].ID)
				s.Equal("second", res[0].Content)
				s.Equal("c2", res[0].ChannelID)
				s.True(now.Add(-time.Hour).Equal(res[0].CreatedAt), "got %v", res[0].CreatedAt)
				s.Equal("m1", res[1].ID)
			})

			s.Run("since is exclusive", func() {
				res, err := msgs.Recent(ctx, "u1", "g1", now.Add(-time.Hour))
				s.Require().NoError(err)
				s.Empty(res)
			})

			s.Run("since in other timezone", func() {
				loc := time.FixedZone("test", 5*3600)
				res, err := msgs.Recent(ctx, "u1", "g1", now.Add(-2*time.Hour).In(loc))
				s.Require().NoError(err)
				s.Require().Len(res, 1)
				s.Equal("m2", res[0].ID)
			})

			s.Run("unknown user", func() {
				res, err := msgs.Recent(ctx, "u100", "g1", now.Add(-7*24*time.Hour))
				s.Require().NoError(err)
				s.Empty(res)
			})

			s.Run("save replaces by id", func() {
				s.Require().NoError(msgs.Save(ctx, spamcheck.StoredMessage{ID: "m2", UserID: "u1", ChannelID: "c2",
					GroupID: "g1", Content: "edited", CreatedAt: now.Add(-time.Hour)}))
				res, err := msgs.Recent(ctx, "u1", "g1", now.Add(-7*24*time.Hour))
				s.Require().NoError(err)
				s.Require().Len(res, 2)
				s.Equal("edited", res[0].Content)
			})

			s.Run("zero created time set to now", func() {
				s.Require().NoError(msgs.Save(ctx, spamcheck.StoredMessage{ID: "m6", UserID: "u3", GroupID: "g1", Content: "x"}))
				res, err := msgs.Recent(ctx, "u3", "g1", time.Now().Add(-time.Minute))
				s.Require().NoError(err)
				s.Require().Len(res, 1)
			})
		})
	}
}

func (s *StorageTestSuite) TestMessages_DeleteAndCleanup() {
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)
	for _, db := range s.getTestDB() {
		s.Run(fmt.Sprintf("with %s", db.Type()), func() {
			defer s.dropTables(db, "messages")
			msgs, err := NewMessages(db)
			s.Require().NoError(err)
			s.Require().NoError(msgs.Init(ctx))

			for i := range 5 {
				s.Require().NoError(msgs.Save(ctx, spamcheck.StoredMessage{ID: fmt.Sprintf("m%d", i), UserID: "u1",
					GroupID: "g1", Content: "text", CreatedAt: now.Add(-time.Duration(i) * 24 * time.Hour)}))
			}

			s.Require().NoError(msgs.Delete(ctx, "m0"))
			s.Require().NoError(msgs.Delete(ctx, "not-there"))

			count, err := msgs.Cleanup(ctx, now.Add(-2*24*time.Hour-time.Minute))
			s.Require().NoError(err)
			s.Equal(int64(2), count) // m3 and m4

			res, err := msgs.Recent(ctx, "u1", "g1", now.Add(-30*24*time.Hour))
			s.Require().NoError(err)
			s.Require().Len(res, 2)
			s.Equal("m1", res[0].ID)
			s.Equal("m2", res[1].ID)

			count, err = msgs.Cleanup(ctx, now.Add(-30*24*time.Hour))
			s.Require().NoError(err)
			s.Zero(count)
		})
	}
}
