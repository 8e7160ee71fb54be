package data

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
)

// MessagesStore provides message database operations.
type MessagesStore struct {
	// coll is reference to "messages" collection in MongoDB
	coll *mongo.Collection
}

// NewMessagesStore returns a MessagesStore using given collection.
func NewMessagesStore(coll *mongo.Collection) *MessagesStore {
	return &MessagesStore{coll: coll}
}

// InsertMessage stores an unread message and returns it with its id.
func (m *MessagesStore) InsertMessage(ctx context.Context, msg *Message) (*Message, error) {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	msg.IsRead = false

	result, err := m.coll.InsertOne(ctx, msg)
	if err != nil {
		return nil, err
	}
	// This ID is what realtime subscribers dedupe on
	msg.ID = result.InsertedID.(bson.ObjectID)
	return msg, nil
}

// GetMessage finds a single message by id.
func (m *MessagesStore) GetMessage(ctx context.Context, id bson.ObjectID) (*Message, error) {
	var msg Message
	if err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&msg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("message")
		}
		return nil, err
	}
	return &msg, nil
}

// ListMessages returns a conversation's messages ordered oldest→newest.
func (m *MessagesStore) ListMessages(ctx context.Context, conversationID bson.ObjectID) ([]*Message, error) {
	// _id breaks ties between messages created in the same instant
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := m.coll.Find(ctx, bson.M{"conversation_id": conversationID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []*Message
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// LastMessage returns the newest message of a conversation, or nil when the
// conversation has none.
func (m *MessagesStore) LastMessage(ctx context.Context, conversationID bson.ObjectID) (*Message, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	var msg Message
	err := m.coll.FindOne(ctx, bson.M{"conversation_id": conversationID}, opts).Decode(&msg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &msg, nil
}

// MarkConversationRead flips is_read on every unread message of the
// conversation that readerID did not send, in one update.
func (m *MessagesStore) MarkConversationRead(ctx context.Context, conversationID, readerID bson.ObjectID) (int64, error) {
	filter := bson.M{
		"conversation_id": conversationID,
		"sender_id":       bson.M{"$ne": readerID},
		"is_read":         false,
	}
	// is_read only ever moves false -> true
	res, err := m.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// MarkMessageRead flips is_read on one message unless readerID sent it.
func (m *MessagesStore) MarkMessageRead(ctx context.Context, messageID, readerID bson.ObjectID) (bool, error) {
	filter := bson.M{"_id": messageID, "sender_id": bson.M{"$ne": readerID}, "is_read": false}
	res, err := m.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}
