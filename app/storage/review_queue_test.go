package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/GregHolmes/discord-bot-spam-detector/lib/spamcheck"
)

func (s *StorageTestSuite) TestReviewQueue_AddGet() {
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)
	for _, db := range s.getTestDB() {
		s.Run(fmt.Sprintf("with %s", db.Type()), func() {
			defer s.dropTables(db, "review_queue")

			s.Run("nil db connection", func() {
				_, err := NewReviewQueue(ctx, nil)
				s.Require().Error(err)
			})

			q, err := NewReviewQueue(ctx, db)
			s.Require().NoError(err)

			item := ReviewItem{
				Message: spamcheck.StoredMessage{ID: "m1", UserID: "u1", ChannelID: "c1", GroupID: "g1",
					Content: "DM me for freelance work", CreatedAt: now.Add(-time.Minute)},
				AuthorName:  "bob",
				ChannelName: "general",
				Confidence:  0.85,
				Score:       7,
				Reasons:     []string{`Contains keyword: "dm me"`, "AI: promo"},
				AIAnalysis: &spamcheck.AIResult{Classification: spamcheck.ClassSpam, Confidence: 0.9,
					Reasoning: "promo", ChannelRelevant: false},
				Similar: []spamcheck.SimilarityMatch{{Message: spamcheck.StoredMessage{ID: "m0", UserID: "u1",
					Content: "DM me for freelance work!"}, Similarity: 0.92}},
				CreatedAt: now,
			}

			id, err := q.Add(ctx, item)
			s.Require().NoError(err)
			s.Positive(id)

			res, err := q.Get(ctx, id)
			s.Require().NoError(err)
			s.Equal(id, res.ID)
			s.Equal(StatusPending, res.Status)
			s.Equal("m1", res.Message.ID)
			s.Equal("u1", res.Message.UserID)
			s.Equal("c1", res.Message.ChannelID)
			s.Equal("g1", res.Message.GroupID)
			s.Equal("DM me for freelance work", res.Message.Content)
			s.True(now.Add(-time.Minute).Equal(res.Message.CreatedAt))
			s.Equal("bob", res.AuthorName)
			s.Equal("general", res.ChannelName)
			s.InDelta(0.85, res.Confidence, 0.0001)
			s.Equal(7, res.Score)
			s.Equal(item.Reasons, res.Reasons)
			s.Equal(item.AIAnalysis, res.AIAnalysis)
			s.Require().Len(res.Similar, 1)
			s.Equal("m0", res.Similar[0].Message.ID)
			s.InDelta(0.92, res.Similar[0].Similarity, 0.0001)
			s.True(now.Equal(res.CreatedAt))
			s.Nil(res.ResolvedAt)
			s.Empty(res.ModeratorID)

			s.Run("no ai analysis and no reasons", func() {
				id, err := q.Add(ctx, ReviewItem{Message: spamcheck.StoredMessage{ID: "m2", UserID: "u2"}, Score: 12})
				s.Require().NoError(err)
				res, err := q.Get(ctx, id)
				s.Require().NoError(err)
				s.Nil(res.AIAnalysis)
				s.Empty(res.Reasons)
				s.Empty(res.Similar)
			})

			s.Run("not found", func() {
				_, err := q.Get(ctx, 12345)
				s.Require().ErrorIs(err, ErrNotFound)
			})
		})
	}
}

func (s *StorageTestSuite) TestReviewQueue_ListResolve() {
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)
	for _, db := range s.getTestDB() {
		s.Run(fmt.Sprintf("with %s", db.Type()), func() {
			defer s.dropTables(db, "review_queue")
			q, err := NewReviewQueue(ctx, db)
			s.Require().NoError(err)

			ids := make([]int64, 0, 3)
			for i := range 3 {
				id, err := q.Add(ctx, ReviewItem{Message: spamcheck.StoredMessage{ID: fmt.Sprintf("m%d", i), UserID: "u1"},
					CreatedAt: now.Add(time.Duration(i) * time.Minute)})
				s.Require().NoError(err)
				ids = append(ids, id)
			}

			pending, err := q.List(ctx, StatusPending, 10)
			s.Require().NoError(err)
			s.Require().Len(pending, 3)
			s.Equal("m2", pending[0].Message.ID, "newest first")

			s.Require().NoError(q.Resolve(ctx, ids[0], StatusApproved, "mod1"))
			s.Require().NoError(q.Resolve(ctx, ids[1], StatusSpamKick, "mod2"))

			s.Run("resolved item", func() {
				res, err := q.Get(ctx, ids[1])
				s.Require().NoError(err)
				s.Equal(StatusSpamKick, res.Status)
				s.Equal("mod2", res.ModeratorID)
				s.Require().NotNil(res.ResolvedAt)
				s.WithinDuration(time.Now(), *res.ResolvedAt, time.Minute)
			})

			s.Run("list by status", func() {
				pending, err := q.List(ctx, StatusPending, 10)
				s.Require().NoError(err)
				s.Require().Len(pending, 1)
				s.Equal("m2", pending[0].Message.ID)

				approved, err := q.List(ctx, StatusApproved, 10)
				s.Require().NoError(err)
				s.Require().Len(approved, 1)
				s.Equal("m0", approved[0].Message.ID)

				all, err := q.List(ctx, "", 10)
				s.Require().NoError(err)
				s.Len(all, 3)

				limited, err := q.List(ctx, "", 2)
				s.Require().NoError(err)
				s.Len(limited, 2)
			})

			s.Run("resolve twice", func() {
				err := q.Resolve(ctx, ids[0], StatusSpam, "mod3")
				s.Require().ErrorIs(err, ErrAlreadyResolved)
				res, err := q.Get(ctx, ids[0])
				s.Require().NoError(err)
				s.Equal(StatusApproved, res.Status, "status unchanged")
				s.Equal("mod1", res.ModeratorID)
			})

			s.Run("resolve missing", func() {
				s.Require().ErrorIs(q.Resolve(ctx, 12345, StatusSpam, "mod1"), ErrNotFound)
			})

			s.Run("resolve to pending", func() {
				err := q.Resolve(ctx, ids[2], StatusPending, "mod1")
				s.Require().Error(err)
				s.Contains(err.Error(), "invalid resolution status")
			})
		})
	}
}
