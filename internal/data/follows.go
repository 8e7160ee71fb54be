package data

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
)

// FollowsStore manages the follow graph and the cached counters on profiles.
type FollowsStore struct {
	coll     *mongo.Collection // "follows"
	profiles *mongo.Collection // "profiles", for followers_count / following_count
}

func NewFollowsStore(coll, profiles *mongo.Collection) *FollowsStore {
	return &FollowsStore{coll: coll, profiles: profiles}
}

// Follow records follower -> following and bumps both counters by one.
// Following twice is a conflict and leaves the counters alone.
func (f *FollowsStore) Follow(ctx context.Context, follower, following bson.ObjectID) error {
	_, err := f.coll.InsertOne(ctx, Follow{FollowerID: follower, FollowingID: following, CreatedAt: time.Now()})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Conflict("follow")
		}
		return err
	}
	return f.bump(ctx, follower, following, 1)
}

// Unfollow removes the edge; it reports whether one existed. Counters only
// move when a row was actually deleted.
func (f *FollowsStore) Unfollow(ctx context.Context, follower, following bson.ObjectID) (bool, error) {
	res, err := f.coll.DeleteOne(ctx, bson.M{"follower_id": follower, "following_id": following})
	if err != nil {
		return false, err
	}
	if res.DeletedCount == 0 {
		return false, nil
	}
	return true, f.bump(ctx, follower, following, -1)
}

func (f *FollowsStore) bump(ctx context.Context, follower, following bson.ObjectID, by int64) error {
	if _, err := f.profiles.UpdateOne(ctx, bson.M{"_id": following}, bson.M{"$inc": bson.M{"followers_count": by}}); err != nil {
		return err
	}
	_, err := f.profiles.UpdateOne(ctx, bson.M{"_id": follower}, bson.M{"$inc": bson.M{"following_count": by}})
	return err
}

func (f *FollowsStore) IsFollowing(ctx context.Context, follower, following bson.ObjectID) (bool, error) {
	n, err := f.coll.CountDocuments(ctx, bson.M{"follower_id": follower, "following_id": following})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// FollowerIDs returns who follows userID.
func (f *FollowsStore) FollowerIDs(ctx context.Context, userID bson.ObjectID) ([]bson.ObjectID, error) {
	return f.ids(ctx, bson.M{"following_id": userID}, func(x Follow) bson.ObjectID { return x.FollowerID })
}

// FollowingIDs returns who userID follows.
func (f *FollowsStore) FollowingIDs(ctx context.Context, userID bson.ObjectID) ([]bson.ObjectID, error) {
	return f.ids(ctx, bson.M{"follower_id": userID}, func(x Follow) bson.ObjectID { return x.FollowingID })
}

func (f *FollowsStore) ids(ctx context.Context, filter bson.M, pick func(Follow) bson.ObjectID) ([]bson.ObjectID, error) {
	cursor, err := f.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []Follow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	out := make([]bson.ObjectID, 0, len(rows))
	for _, r := range rows {
		out = append(out, pick(r))
	}
	return out, nil
}
