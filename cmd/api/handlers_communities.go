package main

import (
	"context"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/social"
	v1 "github.com/PaulBabatuyi/campusnet-gRPC/proto/campus/v1"
)

func communityInput(in *v1.CommunityInput) social.CommunityInput {
	return social.CommunityInput{Name: in.GetName(), Description: in.GetDescription(), Icon: in.GetIcon()}
}

func (s *Server) ListCommunities(ctx context.Context, req *v1.ListCommunitiesRequest) (*v1.CommunityList, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	coms, err := s.social.ListCommunities(ctx, sess, req.GetLimit())
	if err != nil {
		return nil, err
	}
	out := &v1.CommunityList{Communities: make([]*v1.Community, 0, len(coms))}
	for _, c := range coms {
		out.Communities = append(out.Communities, toCommunity(c))
	}
	return out, nil
}

func (s *Server) GetCommunity(ctx context.Context, req *v1.CommunityRequest) (*v1.CommunityView, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID("community_id", req.GetCommunityId())
	if err != nil {
		return nil, err
	}
	v, err := s.social.GetCommunity(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	return &v1.CommunityView{
		Community: toCommunity(v.Community),
		Members:   toProfileList(v.Members).Profiles,
		IsMember:  v.IsMember,
	}, nil
}

func (s *Server) ListMyCommunities(ctx context.Context, _ *v1.Empty) (*v1.IDList, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := s.social.ListMyCommunityIDs(ctx, sess)
	if err != nil {
		return nil, err
	}
	return &v1.IDList{Ids: hexIDs(ids)}, nil
}

func (s *Server) JoinCommunity(ctx context.Context, req *v1.CommunityRequest) (*v1.Empty, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID("community_id", req.GetCommunityId())
	if err != nil {
		return nil, err
	}
	if err := s.social.JoinCommunity(ctx, sess, id); err != nil {
		return nil, err
	}
	return &v1.Empty{}, nil
}

func (s *Server) LeaveCommunity(ctx context.Context, req *v1.CommunityRequest) (*v1.Empty, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID("community_id", req.GetCommunityId())
	if err != nil {
		return nil, err
	}
	if err := s.social.LeaveCommunity(ctx, sess, id); err != nil {
		return nil, err
	}
	return &v1.Empty{}, nil
}

// Admin only.
func (s *Server) CreateCommunity(ctx context.Context, req *v1.CommunityInput) (*v1.Community, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.social.CreateCommunity(ctx, sess, communityInput(req))
	if err != nil {
		return nil, err
	}
	return toCommunity(c), nil
}

func (s *Server) UpdateCommunity(ctx context.Context, req *v1.UpdateCommunityRequest) (*v1.Community, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID("community_id", req.GetCommunityId())
	if err != nil {
		return nil, err
	}
	c, err := s.social.UpdateCommunity(ctx, sess, id, communityInput(req.GetCommunity()))
	if err != nil {
		return nil, err
	}
	return toCommunity(c), nil
}

func (s *Server) DeleteCommunity(ctx context.Context, req *v1.CommunityRequest) (*v1.Empty, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID("community_id", req.GetCommunityId())
	if err != nil {
		return nil, err
	}
	if err := s.social.DeleteCommunity(ctx, sess, id); err != nil {
		return nil, err
	}
	return &v1.Empty{}, nil
}
