package main

import (
	"context"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
	v1 "github.com/PaulBabatuyi/campusnet-gRPC/proto/campus/v1"
)

func (s *Server) GetProfile(ctx context.Context, req *v1.UserRequest) (*v1.ProfileView, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	v, err := s.social.GetProfile(ctx, sess, userID)
	if err != nil {
		return nil, err
	}
	return &v1.ProfileView{
		Profile:     toProfile(v.Profile),
		IsFollowing: v.IsFollowing,
		IsSelf:      v.IsSelf,
	}, nil
}

// UpdateProfile edits the caller's own profile, or any profile for admins.
// Unset fields are left as they are.
func (s *Server) UpdateProfile(ctx context.Context, req *v1.UpdateProfileRequest) (*v1.Profile, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	p, err := s.social.UpdateProfile(ctx, sess, userID, data.ProfileUpdate{
		FullName:   req.FullName,
		AvatarURL:  req.AvatarUrl,
		Bio:        req.Bio,
		Department: req.Department,
		Year:       req.Year,
		Subject:    req.Subject,
	})
	if err != nil {
		return nil, err
	}
	return toProfile(p), nil
}

func (s *Server) Follow(ctx context.Context, req *v1.UserRequest) (*v1.Empty, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	if err := s.social.Follow(ctx, sess, userID); err != nil {
		return nil, err
	}
	return &v1.Empty{}, nil
}

func (s *Server) Unfollow(ctx context.Context, req *v1.UserRequest) (*v1.Empty, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	if err := s.social.Unfollow(ctx, sess, userID); err != nil {
		return nil, err
	}
	return &v1.Empty{}, nil
}

func (s *Server) ListFollowers(ctx context.Context, req *v1.UserRequest) (*v1.ProfileList, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	ps, err := s.social.ListFollowers(ctx, sess, userID)
	if err != nil {
		return nil, err
	}
	return toProfileList(ps), nil
}

func (s *Server) ListFollowing(ctx context.Context, req *v1.UserRequest) (*v1.ProfileList, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	ps, err := s.social.ListFollowing(ctx, sess, userID)
	if err != nil {
		return nil, err
	}
	return toProfileList(ps), nil
}

// SearchUsers matches people by name. Queries shorter than two characters
// return nothing.
func (s *Server) SearchUsers(ctx context.Context, req *v1.SearchRequest) (*v1.ProfileList, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	ps, err := s.social.SearchUsers(ctx, sess, req.GetQuery())
	if err != nil {
		return nil, err
	}
	return toProfileList(ps), nil
}
