package memdb

import (
	"cmp"
	"context"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
)

func (db *DB) CreateCommunity(_ context.Context, com *data.Community) (*data.Community, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	com.ID = bson.NewObjectID()
	com.MemberCount = 0
	com.CreatedAt = time.Now()
	db.communities[com.ID] = cp(com)
	return com, nil
}

func (db *DB) UpdateCommunity(_ context.Context, com *data.Community) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	cur, ok := db.communities[com.ID]
	if !ok {
		return apperr.NotFound("community")
	}
	cur.Name, cur.Description, cur.Icon = com.Name, com.Description, com.Icon
	return nil
}

func (db *DB) DeleteCommunity(_ context.Context, id bson.ObjectID) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.communities[id]; !ok {
		return apperr.NotFound("community")
	}
	delete(db.communities, id)
	for k := range db.members {
		if k.a == id {
			delete(db.members, k)
		}
	}
	return nil
}

func (db *DB) GetCommunity(_ context.Context, id bson.ObjectID) (*data.Community, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if c, ok := db.communities[id]; ok {
		return cp(c), nil
	}
	return nil, apperr.NotFound("community")
}

func (db *DB) ListCommunities(_ context.Context, limit int64) ([]*data.Community, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var out []*data.Community
	for _, c := range db.communities {
		out = append(out, cp(c))
	}
	slices.SortFunc(out, func(a, b *data.Community) int {
		return cmp.Or(cmp.Compare(b.MemberCount, a.MemberCount), cmp.Compare(a.Name, b.Name))
	})
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (db *DB) JoinCommunity(_ context.Context, communityID, userID bson.ObjectID) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	k := pair{communityID, userID}
	if _, ok := db.members[k]; ok {
		return apperr.Conflict("membership")
	}
	db.members[k] = &data.CommunityMember{ID: bson.NewObjectID(), CommunityID: communityID, UserID: userID, JoinedAt: time.Now()}
	if c, ok := db.communities[communityID]; ok {
		c.MemberCount++
	}
	return nil
}

func (db *DB) LeaveCommunity(_ context.Context, communityID, userID bson.ObjectID) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	k := pair{communityID, userID}
	if _, ok := db.members[k]; !ok {
		return false, nil
	}
	delete(db.members, k)
	if c, ok := db.communities[communityID]; ok {
		c.MemberCount--
	}
	return true, nil
}

func (db *DB) IsMember(_ context.Context, communityID, userID bson.ObjectID) (bool, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	_, ok := db.members[pair{communityID, userID}]
	return ok, nil
}

func (db *DB) MemberIDs(_ context.Context, communityID bson.ObjectID) ([]bson.ObjectID, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.membershipIDs(
		func(m *data.CommunityMember) bool { return m.CommunityID == communityID },
		func(m *data.CommunityMember) bson.ObjectID { return m.UserID },
	), nil
}

func (db *DB) CommunityIDsForUser(_ context.Context, userID bson.ObjectID) ([]bson.ObjectID, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.membershipIDs(
		func(m *data.CommunityMember) bool { return m.UserID == userID },
		func(m *data.CommunityMember) bson.ObjectID { return m.CommunityID },
	), nil
}

func (db *DB) membershipIDs(keep func(*data.CommunityMember) bool, pick func(*data.CommunityMember) bson.ObjectID) []bson.ObjectID {
	var rows []*data.CommunityMember
	for _, m := range db.members {
		if keep(m) {
			rows = append(rows, m)
		}
	}
	slices.SortFunc(rows, func(a, b *data.CommunityMember) int {
		return cmp.Or(a.JoinedAt.Compare(b.JoinedAt), cmp.Compare(a.ID.Hex(), b.ID.Hex()))
	})
	out := make([]bson.ObjectID, 0, len(rows))
	for _, r := range rows {
		out = append(out, pick(r))
	}
	return out
}
