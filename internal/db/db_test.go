package db

import (
	"context"
	"os"
	"testing"
)

// These tests are integration tests and require a running MongoDB instance.
// Set MONGODB_URI in the environment before running them.

func TestNewAndCreateIndexes(t *testing.T) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set; skipping integration test")
	}

	ctx := context.Background()
	c, err := New(ctx, uri, "campus_db_test_indexes")
	if err != nil {
		t.Fatalf("failed to connect to DB: %v", err)
	}
	defer func() {
		_ = c.Drop(context.Background())
		_ = c.Close(context.Background())
	}()

	// should be able to create indexes without error, twice (idempotent)
	if err := c.CreateIndexes(ctx); err != nil {
		t.Fatalf("CreateIndexes failed: %v", err)
	}
	if err := c.CreateIndexes(ctx); err != nil {
		t.Fatalf("CreateIndexes (second run) failed: %v", err)
	}
}

func TestIndexSpecCoversCollections(t *testing.T) {
	for _, name := range []string{Accounts, Sessions, Follows, Likes, CommunityMembers, ConversationMember, Messages} {
		if len(indexSpec[name]) == 0 {
			t.Fatalf("collection %s has no indexes declared", name)
		}
	}
}
