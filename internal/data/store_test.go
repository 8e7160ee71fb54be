package data

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/db"
)

// setupDB connects to a throwaway database; tests skip without MONGODB_URI.
func setupDB(t *testing.T) *db.Client {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set; skipping integration test")
	}

	ctx := context.Background()
	c, err := db.New(ctx, uri, "campus_db_test_data")
	if err != nil {
		t.Fatalf("db.New failed: %v", err)
	}

	// ensure clean collections in case previous runs left data
	_ = c.Drop(ctx)
	if err := c.CreateIndexes(ctx); err != nil {
		t.Fatalf("CreateIndexes failed: %v", err)
	}
	t.Cleanup(func() {
		_ = c.Drop(context.Background())
		_ = c.Close(context.Background())
	})
	return c
}

func TestAccountsCreateAndGet(t *testing.T) {
	c := setupDB(t)
	accounts := NewAccountsStore(c.Collection(db.Accounts))
	ctx := context.Background()

	email := time.Now().UTC().Format("20060102-150405") + "-Integration@Example.com"

	acc, err := accounts.CreateAccount(ctx, email, "hashed-password")
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	// duplicate (even with different casing) is a conflict
	if _, err := accounts.CreateAccount(ctx, "  "+email, "x"); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	got, err := accounts.GetAccountByID(ctx, acc.ID)
	if err != nil {
		t.Fatalf("GetAccountByID failed: %v", err)
	}
	if got.Email != acc.Email {
		t.Fatalf("GetAccountByID returned wrong email: %s", got.Email)
	}

	if _, err := accounts.GetAccountByEmail(ctx, "nobody@example.com"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMessagesReadFlags(t *testing.T) {
	c := setupDB(t)
	convs := NewConversationsStore(c.Collection(db.Conversations), c.Collection(db.ConversationMember))
	msgs := NewMessagesStore(c.Collection(db.Messages))
	ctx := context.Background()

	alice, bob := bson.NewObjectID(), bson.NewObjectID()
	conv, err := convs.CreateConversation(ctx)
	if err != nil {
		t.Fatalf("CreateConversation failed: %v", err)
	}
	_ = convs.AddParticipant(ctx, conv.ID, alice)
	_ = convs.AddParticipant(ctx, conv.ID, bob)
	if err := convs.AddParticipant(ctx, conv.ID, bob); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected participant conflict, got %v", err)
	}

	now := time.Now()
	if _, err := msgs.InsertMessage(ctx, &Message{ConversationID: conv.ID, SenderID: alice, Content: "hi bob", CreatedAt: now}); err != nil {
		t.Fatalf("InsertMessage failed: %v", err)
	}
	if _, err := msgs.InsertMessage(ctx, &Message{ConversationID: conv.ID, SenderID: bob, Content: "hello alice", CreatedAt: now.Add(time.Second)}); err != nil {
		t.Fatalf("InsertMessage 2 failed: %v", err)
	}

	n, err := msgs.MarkConversationRead(ctx, conv.ID, bob)
	if err != nil || n != 1 {
		t.Fatalf("MarkConversationRead: n=%d err=%v", n, err)
	}

	history, err := msgs.ListMessages(ctx, conv.ID)
	if err != nil || len(history) != 2 {
		t.Fatalf("ListMessages: %d %v", len(history), err)
	}
	if !history[0].IsRead || history[1].IsRead {
		t.Fatalf("only alice's message should be read: %+v %+v", history[0], history[1])
	}

	last, err := msgs.LastMessage(ctx, conv.ID)
	if err != nil || last == nil || last.Content != "hello alice" {
		t.Fatalf("LastMessage: %+v %v", last, err)
	}

	others, err := convs.OtherParticipants(ctx, []bson.ObjectID{conv.ID}, alice)
	if err != nil || others[conv.ID] != bob {
		t.Fatalf("OtherParticipants: %v %v", others, err)
	}
}

func TestCommunityJoinLeaveCounts(t *testing.T) {
	c := setupDB(t)
	coms := NewCommunitiesStore(c.Collection(db.Communities), c.Collection(db.CommunityMembers))
	ctx := context.Background()

	com, err := coms.CreateCommunity(ctx, &Community{Name: "Robotics", Icon: "tech"})
	if err != nil {
		t.Fatalf("CreateCommunity failed: %v", err)
	}
	user := bson.NewObjectID()

	if err := coms.JoinCommunity(ctx, com.ID, user); err != nil {
		t.Fatalf("JoinCommunity failed: %v", err)
	}
	if err := coms.JoinCommunity(ctx, com.ID, user); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict on double join, got %v", err)
	}
	got, _ := coms.GetCommunity(ctx, com.ID)
	if got.MemberCount != 1 {
		t.Fatalf("member_count after join = %d", got.MemberCount)
	}

	if left, err := coms.LeaveCommunity(ctx, com.ID, user); err != nil || !left {
		t.Fatalf("LeaveCommunity: %v %v", left, err)
	}
	if left, _ := coms.LeaveCommunity(ctx, com.ID, user); left {
		t.Fatalf("second leave should be a no-op")
	}
	got, _ = coms.GetCommunity(ctx, com.ID)
	if got.MemberCount != 0 {
		t.Fatalf("member_count after leave = %d", got.MemberCount)
	}
}
