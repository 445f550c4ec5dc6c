package storage

import (
	"context"
	"fmt"
	"time"
)

func (s *StorageTestSuite) TestModerationLog() {
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)
	for _, db := range s.getTestDB() {
		s.Run(fmt.Sprintf("with %s", db.Type()), func() {
			defer s.dropTables(db, "moderation_log")

			s.Run("nil db connection", func() {
				_, err := NewModerationLog(ctx, nil)
				s.Require().Error(err)
			})

			mlog, err := NewModerationLog(ctx, db)
			s.Require().NoError(err)

			s.Run("empty", func() {
				res, err := mlog.List(ctx, 10)
				s.Require().NoError(err)
				s.Empty(res)
			})

			s.Run("add and list newest first", func() {
				s.Require().NoError(mlog.Add(ctx, LogEntry{MessageID: "m1", UserID: "u1", GroupID: "g1",
					Action: ActionApproved, ModeratorID: "mod1", CreatedAt: now.Add(-2 * time.Minute)}))
				s.Require().NoError(mlog.Add(ctx, LogEntry{MessageID: "m2", UserID: "u2", GroupID: "g1",
					Action: ActionSpam, ModeratorID: "mod1", Reason: "promo", CreatedAt: now.Add(-time.Minute)}))
				s.Require().NoError(mlog.Add(ctx, LogEntry{MessageID: "m3", UserID: "u3", GroupID: "g1",
					Action: ActionSpamKick, ModeratorID: "mod2", CreatedAt: now}))

				res, err := mlog.List(ctx, 10)
				s.Require().NoError(err)
				s.Require().Len(res, 3)
				s.Equal("m3", res[0].MessageID)
				s.Equal(ActionSpamKick, res[0].Action)
				s.Equal("mod2", res[0].ModeratorID)
				s.True(now.Equal(res[0].CreatedAt))
				s.Equal("m2", res[1].MessageID)
				s.Equal("promo", res[1].Reason)
				s.Equal("m1", res[2].MessageID)
				s.Positive(res[2].ID)
			})

			s.Run("limit", func() {
				res, err := mlog.List(ctx, 2)
				s.Require().NoError(err)
				s.Len(res, 2)
			})

			s.Run("unknown action", func() {
				err := mlog.Add(ctx, LogEntry{MessageID: "m4", UserID: "u4", Action: "ban"})
				s.Require().Error(err)
				s.Contains(err.Error(), `unknown moderation action "ban"`)
			})

			s.Run("created time set if missing", func() {
				s.Require().NoError(mlog.Add(ctx, LogEntry{MessageID: "m5", UserID: "u5", Action: ActionApproved}))
				res, err := mlog.List(ctx, 1)
				s.Require().NoError(err)
				s.Require().Len(res, 1)
				s.Equal("m5", res[0].MessageID)
				s.WithinDuration(time.Now(), res[0].CreatedAt, time.Minute)
			})
		})
	}
}
