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

// CommunitiesStore provides community and membership operations.
type CommunitiesStore struct {
	coll    *mongo.Collection // "communities"
	members *mongo.Collection // "community_members"
}

func NewCommunitiesStore(coll, members *mongo.Collection) *CommunitiesStore {
	return &CommunitiesStore{coll: coll, members: members}
}

func (c *CommunitiesStore) CreateCommunity(ctx context.Context, com *Community) (*Community, error) {
	com.MemberCount = 0
	com.CreatedAt = time.Now()
	result, err := c.coll.InsertOne(ctx, com)
	if err != nil {
		return nil, err
	}
	com.ID = result.InsertedID.(bson.ObjectID)
	return com, nil
}

// UpdateCommunity overwrites name, description and icon. member_count is
// owned by Join/Leave and never written here.
func (c *CommunitiesStore) UpdateCommunity(ctx context.Context, com *Community) error {
	set := bson.M{"name": com.Name, "description": com.Description, "icon": com.Icon}
	res, err := c.coll.UpdateOne(ctx, bson.M{"_id": com.ID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("community")
	}
	return nil
}

// DeleteCommunity removes the community and all of its memberships.
func (c *CommunitiesStore) DeleteCommunity(ctx context.Context, id bson.ObjectID) error {
	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("community")
	}
	_, err = c.members.DeleteMany(ctx, bson.M{"community_id": id})
	return err
}

func (c *CommunitiesStore) GetCommunity(ctx context.Context, id bson.ObjectID) (*Community, error) {
	var com Community
	if err := c.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&com); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("community")
		}
		return nil, err
	}
	return &com, nil
}

// ListCommunities returns communities by member_count descending; limit 0
// means all.
func (c *CommunitiesStore) ListCommunities(ctx context.Context, limit int64) ([]*Community, error) {
	opts := options.Find().SetSort(bson.D{{Key: "member_count", Value: -1}, {Key: "name", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := c.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*Community
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// JoinCommunity adds the membership row and increments member_count by
// exactly one. An existing membership is a conflict and the count is left
// unchanged.
func (c *CommunitiesStore) JoinCommunity(ctx context.Context, communityID, userID bson.ObjectID) error {
	_, err := c.members.InsertOne(ctx, CommunityMember{CommunityID: communityID, UserID: userID, JoinedAt: time.Now()})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Conflict("membership")
		}
		return err
	}
	_, err = c.coll.UpdateOne(ctx, bson.M{"_id": communityID}, bson.M{"$inc": bson.M{"member_count": 1}})
	return err
}

// LeaveCommunity removes the membership; member_count only drops when a row
// was deleted.
func (c *CommunitiesStore) LeaveCommunity(ctx context.Context, communityID, userID bson.ObjectID) (bool, error) {
	res, err := c.members.DeleteOne(ctx, bson.M{"community_id": communityID, "user_id": userID})
	if err != nil {
		return false, err
	}
	if res.DeletedCount == 0 {
		return false, nil
	}
	_, err = c.coll.UpdateOne(ctx, bson.M{"_id": communityID}, bson.M{"$inc": bson.M{"member_count": -1}})
	return true, err
}

func (c *CommunitiesStore) IsMember(ctx context.Context, communityID, userID bson.ObjectID) (bool, error) {
	n, err := c.members.CountDocuments(ctx, bson.M{"community_id": communityID, "user_id": userID})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemberIDs returns the user ids of a community's members, oldest first.
func (c *CommunitiesStore) MemberIDs(ctx context.Context, communityID bson.ObjectID) ([]bson.ObjectID, error) {
	rows, err := c.memberRows(ctx, bson.M{"community_id": communityID})
	if err != nil {
		return nil, err
	}
	out := make([]bson.ObjectID, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.UserID)
	}
	return out, nil
}

// CommunityIDsForUser returns the communities userID belongs to.
func (c *CommunitiesStore) CommunityIDsForUser(ctx context.Context, userID bson.ObjectID) ([]bson.ObjectID, error) {
	rows, err := c.memberRows(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	out := make([]bson.ObjectID, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.CommunityID)
	}
	return out, nil
}

func (c *CommunitiesStore) memberRows(ctx context.Context, filter bson.M) ([]CommunityMember, error) {
	cursor, err := c.members.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "joined_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []CommunityMember
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
