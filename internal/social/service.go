// Package social implements the campus screens around messaging: the feed,
// profiles and the follow graph, communities, the events calendar and admin
// moderation.
package social

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/auth"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/logger"
)

type PostStore interface {
	CreatePost(ctx context.Context, post *data.Post) (*data.Post, error)
	GetPost(ctx context.Context, id bson.ObjectID) (*data.Post, error)
	ListPosts(ctx context.Context, sort data.PostSort, limit int64) ([]*data.Post, error)
	ListPostsByUser(ctx context.Context, userID bson.ObjectID) ([]*data.Post, error)
	DeletePost(ctx context.Context, id bson.ObjectID) error
	LikePost(ctx context.Context, postID, userID bson.ObjectID) error
	UnlikePost(ctx context.Context, postID, userID bson.ObjectID) (bool, error)
	LikedPostIDs(ctx context.Context, userID bson.ObjectID, postIDs []bson.ObjectID) (map[bson.ObjectID]bool, error)
}

type ProfileStore interface {
	GetProfile(ctx context.Context, id bson.ObjectID) (*data.Profile, error)
	GetProfiles(ctx context.Context, ids []bson.ObjectID) ([]*data.Profile, error)
	UpdateProfile(ctx context.Context, id bson.ObjectID, upd data.ProfileUpdate) (*data.Profile, error)
	SearchProfiles(ctx context.Context, query string, limit int64) ([]*data.Profile, error)
}

type FollowStore interface {
	Follow(ctx context.Context, follower, following bson.ObjectID) error
	Unfollow(ctx context.Context, follower, following bson.ObjectID) (bool, error)
	IsFollowing(ctx context.Context, follower, following bson.ObjectID) (bool, error)
	FollowerIDs(ctx context.Context, userID bson.ObjectID) ([]bson.ObjectID, error)
	FollowingIDs(ctx context.Context, userID bson.ObjectID) ([]bson.ObjectID, error)
}

type CommunityStore interface {
	CreateCommunity(ctx context.Context, com *data.Community) (*data.Community, error)
	UpdateCommunity(ctx context.Context, com *data.Community) error
	DeleteCommunity(ctx context.Context, id bson.ObjectID) error
	GetCommunity(ctx context.Context, id bson.ObjectID) (*data.Community, error)
	ListCommunities(ctx context.Context, limit int64) ([]*data.Community, error)
	JoinCommunity(ctx context.Context, communityID, userID bson.ObjectID) error
	LeaveCommunity(ctx context.Context, communityID, userID bson.ObjectID) (bool, error)
	IsMember(ctx context.Context, communityID, userID bson.ObjectID) (bool, error)
	MemberIDs(ctx context.Context, communityID bson.ObjectID) ([]bson.ObjectID, error)
	CommunityIDsForUser(ctx context.Context, userID bson.ObjectID) ([]bson.ObjectID, error)
}

type EventStore interface {
	CreateEvent(ctx context.Context, ev *data.Event) (*data.Event, error)
	UpdateEvent(ctx context.Context, ev *data.Event) error
	DeleteEvent(ctx context.Context, id bson.ObjectID) error
	GetEvent(ctx context.Context, id bson.ObjectID) (*data.Event, error)
	ListEvents(ctx context.Context) ([]*data.Event, error)
	ListEventsFrom(ctx context.Context, fromDate string, limit int64) ([]*data.Event, error)
}

type Stores struct {
	Posts       PostStore
	Profiles    ProfileStore
	Follows     FollowStore
	Communities CommunityStore
	Events      EventStore
}

type Service struct {
	st  Stores
	log logger.Logger
	now func() time.Time
}

func NewService(st Stores, log logger.Logger) *Service {
	return &Service{st: st, log: log, now: time.Now}
}

func requireSession(sess *auth.Session) error {
	if sess == nil {
		return apperr.ErrUnauthenticated
	}
	return nil
}

// requireAdmin guards every moderation operation.
func requireAdmin(sess *auth.Session) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	if !sess.IsAdmin {
		return apperr.Forbidden("admin only")
	}
	return nil
}

// profilesByID loads the given profiles in one batch.
func (s *Service) profilesByID(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]*data.Profile, error) {
	out := make(map[bson.ObjectID]*data.Profile, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	profs, err := s.st.Profiles.GetProfiles(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range profs {
		out[p.ID] = p
	}
	return out, nil
}

// orderedProfiles returns the profiles of ids in the order of ids, skipping
// missing ones.
func (s *Service) orderedProfiles(ctx context.Context, ids []bson.ObjectID) ([]*data.Profile, error) {
	byID, err := s.profilesByID(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]*data.Profile, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
