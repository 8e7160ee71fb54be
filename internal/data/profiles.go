package data

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
)

// ProfilesStore performs profile DB operations.
type ProfilesStore struct {
	coll *mongo.Collection
}

// NewProfilesStore returns a ProfilesStore using the provided collection.
func NewProfilesStore(coll *mongo.Collection) *ProfilesStore {
	return &ProfilesStore{coll: coll}
}

// CreateProfile inserts the profile created at sign-up. The id must already
// be set to the account id.
func (p *ProfilesStore) CreateProfile(ctx context.Context, prof *Profile) error {
	now := time.Now()
	prof.CreatedAt, prof.UpdatedAt = now, now
	if _, err := p.coll.InsertOne(ctx, prof); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Conflict("profile")
		}
		return err
	}
	return nil
}

// GetProfile finds a profile by user id.
func (p *ProfilesStore) GetProfile(ctx context.Context, id bson.ObjectID) (*Profile, error) {
	var prof Profile
	if err := p.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&prof); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("profile")
		}
		return nil, err
	}
	return &prof, nil
}

// GetProfiles returns the profiles of ids that exist, in no particular order.
func (p *ProfilesStore) GetProfiles(ctx context.Context, ids []bson.ObjectID) ([]*Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := p.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*Profile
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProfile applies the non-nil fields of upd and returns the new profile.
func (p *ProfilesStore) UpdateProfile(ctx context.Context, id bson.ObjectID, upd ProfileUpdate) (*Profile, error) {
	set := bson.M{"updated_at": time.Now()}
	// Only touch the fields the caller actually supplied
	fields := map[string]*string{
		"full_name":  upd.FullName,
		"avatar_url": upd.AvatarURL,
		"bio":        upd.Bio,
		"department": upd.Department,
		"year":       upd.Year,
		"subject":    upd.Subject,
	}
	for k, v := range fields {
		if v != nil {
			set[k] = *v
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var prof Profile
	err := p.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&prof)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("profile")
		}
		return nil, err
	}
	return &prof, nil
}

// SearchProfiles does a case-insensitive substring match on full_name.
func (p *ProfilesStore) SearchProfiles(ctx context.Context, query string, limit int64) ([]*Profile, error) {
	// QuoteMeta so user input is matched literally, like an ILIKE %q%
	filter := bson.M{"full_name": bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}}
	opts := options.Find().SetSort(bson.D{{Key: "full_name", Value: 1}}).SetLimit(limit)

	cursor, err := p.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*Profile
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
