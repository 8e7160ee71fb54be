package data

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
)

// SessionsStore keeps one row per issued token so sign-out can revoke it.
// Expired rows are removed by the TTL index on expires_at.
type SessionsStore struct {
	coll *mongo.Collection
}

func NewSessionsStore(coll *mongo.Collection) *SessionsStore {
	return &SessionsStore{coll: coll}
}

func (s *SessionsStore) CreateSession(ctx context.Context, sess *Session) error {
	_, err := s.coll.InsertOne(ctx, sess)
	return err
}

func (s *SessionsStore) GetSession(ctx context.Context, id string) (*Session, error) {
	var sess Session
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&sess); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("session")
		}
		return nil, err
	}
	return &sess, nil
}

// DeleteSession removes the session; deleting an unknown id is not an error.
func (s *SessionsStore) DeleteSession(ctx context.Context, id string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
