package memdb

import (
	"context"
	"slices"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
)

func (db *DB) CreateProfile(_ context.Context, prof *data.Profile) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.profiles[prof.ID]; ok {
		return apperr.Conflict("profile")
	}
	now := time.Now()
	prof.CreatedAt, prof.UpdatedAt = now, now
	db.profiles[prof.ID] = cp(prof)
	return nil
}

func (db *DB) GetProfile(_ context.Context, id bson.ObjectID) (*data.Profile, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if p, ok := db.profiles[id]; ok {
		return cp(p), nil
	}
	return nil, apperr.NotFound("profile")
}

func (db *DB) GetProfiles(_ context.Context, ids []bson.ObjectID) ([]*data.Profile, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var out []*data.Profile
	for _, id := range ids {
		if p, ok := db.profiles[id]; ok {
			out = append(out, cp(p))
		}
	}
	return out, nil
}

func (db *DB) UpdateProfile(_ context.Context, id bson.ObjectID, upd data.ProfileUpdate) (*data.Profile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	p, ok := db.profiles[id]
	if !ok {
		return nil, apperr.NotFound("profile")
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&p.FullName, upd.FullName)
	set(&p.AvatarURL, upd.AvatarURL)
	set(&p.Bio, upd.Bio)
	set(&p.Department, upd.Department)
	set(&p.Year, upd.Year)
	set(&p.Subject, upd.Subject)
	p.UpdatedAt = time.Now()
	return cp(p), nil
}

func (db *DB) SearchProfiles(_ context.Context, query string, limit int64) ([]*data.Profile, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	q := strings.ToLower(query)
	var out []*data.Profile
	for _, p := range db.profiles {
		if strings.Contains(strings.ToLower(p.FullName), q) {
			out = append(out, cp(p))
		}
	}
	slices.SortFunc(out, func(a, b *data.Profile) int { return strings.Compare(a.FullName, b.FullName) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (db *DB) Follow(_ context.Context, follower, following bson.ObjectID) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	k := pair{follower, following}
	if _, ok := db.follows[k]; ok {
		return apperr.Conflict("follow")
	}
	db.follows[k] = &data.Follow{ID: bson.NewObjectID(), FollowerID: follower, FollowingID: following, CreatedAt: time.Now()}
	db.bumpFollows(follower, following, 1)
	return nil
}

func (db *DB) Unfollow(_ context.Context, follower, following bson.ObjectID) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	k := pair{follower, following}
	if _, ok := db.follows[k]; !ok {
		return false, nil
	}
	delete(db.follows, k)
	db.bumpFollows(follower, following, -1)
	return true, nil
}

func (db *DB) bumpFollows(follower, following bson.ObjectID, by int64) {
	if p, ok := db.profiles[following]; ok {
		p.FollowersCount += by
	}
	if p, ok := db.profiles[follower]; ok {
		p.FollowingCount += by
	}
}

func (db *DB) IsFollowing(_ context.Context, follower, following bson.ObjectID) (bool, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	_, ok := db.follows[pair{follower, following}]
	return ok, nil
}

func (db *DB) FollowerIDs(_ context.Context, userID bson.ObjectID) ([]bson.ObjectID, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var out []*data.Follow
	for k, f := range db.follows {
		if k.b == userID {
			out = append(out, f)
		}
	}
	return followIDs(out, func(f *data.Follow) bson.ObjectID { return f.FollowerID }), nil
}

func (db *DB) FollowingIDs(_ context.Context, userID bson.ObjectID) ([]bson.ObjectID, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var out []*data.Follow
	for k, f := range db.follows {
		if k.a == userID {
			out = append(out, f)
		}
	}
	return followIDs(out, func(f *data.Follow) bson.ObjectID { return f.FollowingID }), nil
}

func followIDs(rows []*data.Follow, pick func(*data.Follow) bson.ObjectID) []bson.ObjectID {
	slices.SortFunc(rows, func(a, b *data.Follow) int { return strings.Compare(a.ID.Hex(), b.ID.Hex()) })
	ids := make([]bson.ObjectID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, pick(r))
	}
	return ids
}
