package social

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/auth"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/validation"
)

// CommunityView is a community page: the community, its members and whether
// the viewer is one of them.
type CommunityView struct {
	Community *data.Community
	Members   []*data.Profile
	IsMember  bool
}

// CommunityInput is the admin form for creating and editing communities.
type CommunityInput struct {
	Name        string `json:"name" validate:"notblank,max=100"`
	Description string `json:"description" validate:"max=1000"`
	Icon        string `json:"icon" validate:"omitempty,oneof=civil tech sports cultural"`
}

func (in CommunityInput) community(id bson.ObjectID) *data.Community {
	return &data.Community{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Icon:        in.Icon,
	}
}

// ListCommunities returns communities by size; limit 0 means all.
func (s *Service) ListCommunities(ctx context.Context, sess *auth.Session, limit int64) ([]*data.Community, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	return s.st.Communities.ListCommunities(ctx, limit)
}

func (s *Service) GetCommunity(ctx context.Context, sess *auth.Session, id bson.ObjectID) (*CommunityView, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	com, err := s.st.Communities.GetCommunity(ctx, id)
	if err != nil {
		return nil, err
	}
	memberIDs, err := s.st.Communities.MemberIDs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	members, err := s.orderedProfiles(ctx, memberIDs)
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}

	v := &CommunityView{Community: com, Members: members}
	for _, m := range memberIDs {
		if m == sess.UserID {
			v.IsMember = true
			break
		}
	}
	return v, nil
}

// ListMyCommunityIDs returns the communities the viewer belongs to.
func (s *Service) ListMyCommunityIDs(ctx context.Context, sess *auth.Session) ([]bson.ObjectID, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	return s.st.Communities.CommunityIDsForUser(ctx, sess.UserID)
}

// JoinCommunity adds the viewer; joining twice is a conflict and leaves the
// member count alone.
func (s *Service) JoinCommunity(ctx context.Context, sess *auth.Session, id bson.ObjectID) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	if _, err := s.st.Communities.GetCommunity(ctx, id); err != nil {
		return err
	}
	return s.st.Communities.JoinCommunity(ctx, id, sess.UserID)
}

// LeaveCommunity is a no-op for non-members.
func (s *Service) LeaveCommunity(ctx context.Context, sess *auth.Session, id bson.ObjectID) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	_, err := s.st.Communities.LeaveCommunity(ctx, id, sess.UserID)
	return err
}

func (s *Service) CreateCommunity(ctx context.Context, sess *auth.Session, in CommunityInput) (*data.Community, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return s.st.Communities.CreateCommunity(ctx, in.community(bson.NilObjectID))
}

func (s *Service) UpdateCommunity(ctx context.Context, sess *auth.Session, id bson.ObjectID, in CommunityInput) (*data.Community, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := s.st.Communities.UpdateCommunity(ctx, in.community(id)); err != nil {
		return nil, err
	}
	return s.st.Communities.GetCommunity(ctx, id)
}

// DeleteCommunity removes the community together with its memberships.
func (s *Service) DeleteCommunity(ctx context.Context, sess *auth.Session, id bson.ObjectID) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if err := s.st.Communities.DeleteCommunity(ctx, id); err != nil {
		return err
	}
	s.log.Info("community deleted", "community_id", id.Hex(), "admin_id", sess.UserID.Hex())
	return nil
}
