// Package db manages MongoDB connections and collections.
package db

import (
	"context" // For connection timeout/cancellation
	"fmt"     // Error formatting
	"time"    // Duration for timeouts

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"          // MongoDB driver
	"go.mongodb.org/mongo-driver/v2/mongo/options"  // MongoDB options
	"go.mongodb.org/mongo-driver/v2/mongo/readpref" // MongoDB read preference
)

// Collection names, one per table of the campus schema.
const (
	Accounts           = "accounts"
	Sessions           = "sessions"
	UserRoles          = "user_roles"
	Profiles           = "profiles"
	Follows            = "follows"
	Posts              = "posts"
	Likes              = "likes"
	Events             = "events"
	Communities        = "communities"
	CommunityMembers   = "community_members"
	Conversations      = "conversations"
	ConversationMember = "conversation_participants"
	Messages           = "messages"
)

// Client wraps mongo.Client and exposes collections.
type Client struct {
	// client is the underlying MongoDB connection (thread-safe, can be reused)
	client *mongo.Client

	// db is the campus database all collections live in
	db *mongo.Database
}

// New connects to MongoDB and returns a Client bound to database name.
func New(ctx context.Context, mongoURI, name string) (*Client, error) {
	// SetConnectTimeout: fail fast if MongoDB is unreachable
	opts := options.Client().
		ApplyURI(mongoURI).
		SetConnectTimeout(10 * time.Second)

	// This doesn't actually connect yet, just creates the client
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// If ping doesn't complete in 5 seconds, fail
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	if name == "" {
		name = "campus_db"
	}
	return &Client{client: client, db: client.Database(name)}, nil
}

// Collection returns the named collection (created lazily on first write).
func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Drop removes the whole database. Used by integration tests.
func (c *Client) Drop(ctx context.Context) error {
	return c.db.Drop(ctx)
}

// Close disconnects from MongoDB.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// indexSpec lists the indexes each collection needs. Keys use bson.D so
// compound index field order is preserved.
var indexSpec = map[string][]mongo.IndexModel{
	Accounts: {
		// no two accounts can share the same (normalized) email
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	Sessions: {
		// TTL index: MongoDB removes sessions once expires_at has passed
		{Keys: bson.D{{Key: "expires_at", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(0)},
	},
	UserRoles: {
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "role", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	Profiles: {
		{Keys: bson.D{{Key: "full_name", Value: 1}}},
	},
	Follows: {
		{Keys: bson.D{{Key: "follower_id", Value: 1}, {Key: "following_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "following_id", Value: 1}}},
	},
	Posts: {
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "likes_count", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	},
	Likes: {
		{Keys: bson.D{{Key: "post_id", Value: 1}, {Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	Events: {
		{Keys: bson.D{{Key: "event_date", Value: 1}}},
	},
	Communities: {
		{Keys: bson.D{{Key: "member_count", Value: -1}}},
	},
	CommunityMembers: {
		{Keys: bson.D{{Key: "community_id", Value: 1}, {Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	},
	ConversationMember: {
		// one membership row per (conversation, user)
		{Keys: bson.D{{Key: "conversation_id", Value: 1}, {Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	},
	Messages: {
		// history and last-message lookups are per conversation ordered by time
		{Keys: bson.D{{Key: "conversation_id", Value: 1}, {Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "conversation_id", Value: 1}, {Key: "is_read", Value: 1}}},
	},
}

// CreateIndexes creates the indexes every store relies on.
func (c *Client) CreateIndexes(ctx context.Context) error {
	for coll, models := range indexSpec {
		if _, err := c.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", coll, err)
		}
	}
	return nil
}
