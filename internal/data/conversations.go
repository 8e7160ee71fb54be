package data

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
)

// ConversationsStore provides conversation and participant operations.
type ConversationsStore struct {
	// coll is reference to "conversations" collection
	coll *mongo.Collection
	// participants is reference to "conversation_participants" collection
	participants *mongo.Collection
}

// NewConversationsStore returns a ConversationsStore using given collections.
func NewConversationsStore(coll, participants *mongo.Collection) *ConversationsStore {
	return &ConversationsStore{coll: coll, participants: participants}
}

// CreateConversation inserts an empty conversation record.
func (c *ConversationsStore) CreateConversation(ctx context.Context) (*Conversation, error) {
	conv := &Conversation{CreatedAt: time.Now()}
	result, err := c.coll.InsertOne(ctx, conv)
	if err != nil {
		return nil, err
	}
	conv.ID = result.InsertedID.(bson.ObjectID)
	return conv, nil
}

// AddParticipant inserts the (conversation, user) membership row. The
// unique index makes a repeated insert a conflict.
func (c *ConversationsStore) AddParticipant(ctx context.Context, conversationID, userID bson.ObjectID) error {
	_, err := c.participants.InsertOne(ctx, Participant{
		ConversationID: conversationID,
		UserID:         userID,
		JoinedAt:       time.Now(),
	})
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict("participant")
	}
	return err
}

// ConversationIDsForUser returns every conversation userID takes part in,
// in the order the memberships were created.
func (c *ConversationsStore) ConversationIDsForUser(ctx context.Context, userID bson.ObjectID) ([]bson.ObjectID, error) {
	opts := options.Find().SetSort(bson.D{{Key: "joined_at", Value: 1}})
	cursor, err := c.participants.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []Participant
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	ids := make([]bson.ObjectID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ConversationID)
	}
	return ids, nil
}

// IsParticipant reports whether userID is a member of conversationID.
func (c *ConversationsStore) IsParticipant(ctx context.Context, conversationID, userID bson.ObjectID) (bool, error) {
	n, err := c.participants.CountDocuments(ctx, bson.M{"conversation_id": conversationID, "user_id": userID})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// OtherParticipants maps each of conversationIDs to its first participant
// that is not userID. Conversations with no counterpart are absent.
func (c *ConversationsStore) OtherParticipants(ctx context.Context, conversationIDs []bson.ObjectID, userID bson.ObjectID) (map[bson.ObjectID]bson.ObjectID, error) {
	out := make(map[bson.ObjectID]bson.ObjectID)
	if len(conversationIDs) == 0 {
		return out, nil
	}
	filter := bson.M{
		"conversation_id": bson.M{"$in": conversationIDs},
		"user_id":         bson.M{"$ne": userID},
	}
	opts := options.Find().SetSort(bson.D{{Key: "joined_at", Value: 1}})
	cursor, err := c.participants.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []Participant
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if _, seen := out[r.ConversationID]; !seen {
			out[r.ConversationID] = r.UserID
		}
	}
	return out, nil
}
