package data

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// RolesStore manages user_roles grants (admin, professor, student).
type RolesStore struct {
	coll *mongo.Collection
}

func NewRolesStore(coll *mongo.Collection) *RolesStore {
	return &RolesStore{coll: coll}
}

// GrantRole upserts the (user, role) grant so repeated grants are harmless.
func (r *RolesStore) GrantRole(ctx context.Context, userID bson.ObjectID, role string) error {
	filter := bson.M{"user_id": userID, "role": role}
	// filter fields are copied into the inserted document
	update := bson.M{"$setOnInsert": bson.M{"created_at": time.Now()}}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	return err
}

func (r *RolesStore) HasRole(ctx context.Context, userID bson.ObjectID, role string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"user_id": userID, "role": role})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
