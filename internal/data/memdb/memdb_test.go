package memdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
)

func TestAccountsNormalizeAndConflict(t *testing.T) {
	db := Open()
	ctx := context.Background()

	acc, err := db.CreateAccount(ctx, "  Ada@Campus.EDU ", "hash")
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if acc.Email != "ada@campus.edu" {
		t.Fatalf("email not normalized: %q", acc.Email)
	}
	if _, err := db.CreateAccount(ctx, "ada@campus.edu", "x"); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	got, err := db.GetAccountByEmail(ctx, "ADA@campus.edu")
	if err != nil || got.ID != acc.ID {
		t.Fatalf("lookup by email: %v %+v", err, got)
	}
	if _, err := db.GetAccountByID(ctx, bson.NewObjectID()); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestExpiredSessionIsGone(t *testing.T) {
	db := Open()
	ctx := context.Background()

	_ = db.CreateSession(ctx, &data.Session{ID: "old", ExpiresAt: time.Now().Add(-time.Minute)})
	if _, err := db.GetSession(ctx, "old"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected expired session to be not found, got %v", err)
	}
}

func TestFollowCounters(t *testing.T) {
	db := Open()
	ctx := context.Background()
	a, b := bson.NewObjectID(), bson.NewObjectID()
	_ = db.CreateProfile(ctx, &data.Profile{ID: a, FullName: "A"})
	_ = db.CreateProfile(ctx, &data.Profile{ID: b, FullName: "B"})

	if err := db.Follow(ctx, a, b); err != nil {
		t.Fatalf("Follow: %v", err)
	}
	if err := db.Follow(ctx, a, b); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	pb, _ := db.GetProfile(ctx, b)
	pa, _ := db.GetProfile(ctx, a)
	if pb.FollowersCount != 1 || pa.FollowingCount != 1 {
		t.Fatalf("counters: followers=%d following=%d", pb.FollowersCount, pa.FollowingCount)
	}

	removed, _ := db.Unfollow(ctx, a, b)
	again, _ := db.Unfollow(ctx, a, b)
	if !removed || again {
		t.Fatalf("unfollow results: %v %v", removed, again)
	}
	pb, _ = db.GetProfile(ctx, b)
	if pb.FollowersCount != 0 {
		t.Fatalf("followers after unfollow = %d", pb.FollowersCount)
	}
}

func TestPopularFeedOrder(t *testing.T) {
	db := Open()
	ctx := context.Background()
	u := bson.NewObjectID()

	first, _ := db.CreatePost(ctx, &data.Post{UserID: u, Content: "first"})
	second, _ := db.CreatePost(ctx, &data.Post{UserID: u, Content: "second"})
	_ = db.LikePost(ctx, first.ID, u)

	popular, _ := db.ListPosts(ctx, data.SortPopular, 0)
	if popular[0].ID != first.ID {
		t.Fatalf("most liked post should lead the popular feed")
	}
	latest, _ := db.ListPosts(ctx, data.SortLatest, 1)
	if len(latest) != 1 || latest[0].ID != second.ID {
		t.Fatalf("latest feed should start with the newest post")
	}

	if err := db.DeletePost(ctx, first.ID); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	liked, _ := db.LikedPostIDs(ctx, u, []bson.ObjectID{first.ID})
	if liked[first.ID] {
		t.Fatalf("likes should be removed with the post")
	}
}

func TestMarkReadSkipsOwnMessages(t *testing.T) {
	db := Open()
	ctx := context.Background()
	x, y := bson.NewObjectID(), bson.NewObjectID()
	conv, _ := db.CreateConversation(ctx)

	own, _ := db.InsertMessage(ctx, &data.Message{ConversationID: conv.ID, SenderID: x, Content: "hi"})
	_, _ = db.InsertMessage(ctx, &data.Message{ConversationID: conv.ID, SenderID: y, Content: "hey"})

	n, _ := db.MarkConversationRead(ctx, conv.ID, x)
	if n != 1 {
		t.Fatalf("expected 1 message marked, got %d", n)
	}
	if ok, _ := db.MarkMessageRead(ctx, own.ID, x); ok {
		t.Fatalf("a sender cannot mark their own message read")
	}
	got, _ := db.GetMessage(ctx, own.ID)
	if got.IsRead {
		t.Fatalf("own message flipped to read")
	}
}

func TestOtherParticipants(t *testing.T) {
	db := Open()
	ctx := context.Background()
	x, y := bson.NewObjectID(), bson.NewObjectID()

	withY, _ := db.CreateConversation(ctx)
	_ = db.AddParticipant(ctx, withY.ID, x)
	_ = db.AddParticipant(ctx, withY.ID, y)
	alone, _ := db.CreateConversation(ctx)
	_ = db.AddParticipant(ctx, alone.ID, x)

	if err := db.AddParticipant(ctx, withY.ID, y); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict on repeated participant, got %v", err)
	}

	ids, _ := db.ConversationIDsForUser(ctx, x)
	others, _ := db.OtherParticipants(ctx, ids, x)
	if len(others) != 1 || others[withY.ID] != y {
		t.Fatalf("unexpected counterparts: %v", others)
	}
}
