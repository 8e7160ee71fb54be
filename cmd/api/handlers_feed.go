package main

import (
	"context"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/social"
	v1 "github.com/PaulBabatuyi/campusnet-gRPC/proto/campus/v1"
)

func (s *Server) CreatePost(ctx context.Context, req *v1.CreatePostRequest) (*v1.Post, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	post, err := s.social.CreatePost(ctx, sess, req.GetContent())
	if err != nil {
		return nil, err
	}
	return toPost(social.FeedItem{Post: post, Author: sess.Profile}), nil
}

func (s *Server) ListFeed(ctx context.Context, req *v1.ListFeedRequest) (*v1.PostList, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.social.ListFeed(ctx, sess, data.PostSort(req.GetSort()), req.GetLimit())
	if err != nil {
		return nil, err
	}
	return toPostList(items), nil
}

func (s *Server) ListUserPosts(ctx context.Context, req *v1.UserRequest) (*v1.PostList, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	items, err := s.social.ListUserPosts(ctx, sess, userID)
	if err != nil {
		return nil, err
	}
	return toPostList(items), nil
}

func (s *Server) LikePost(ctx context.Context, req *v1.PostRequest) (*v1.Empty, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	postID, err := parseID("post_id", req.GetPostId())
	if err != nil {
		return nil, err
	}
	if err := s.social.LikePost(ctx, sess, postID); err != nil {
		return nil, err
	}
	return &v1.Empty{}, nil
}

func (s *Server) UnlikePost(ctx context.Context, req *v1.PostRequest) (*v1.Empty, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	postID, err := parseID("post_id", req.GetPostId())
	if err != nil {
		return nil, err
	}
	if err := s.social.UnlikePost(ctx, sess, postID); err != nil {
		return nil, err
	}
	return &v1.Empty{}, nil
}

// DeletePost is allowed for the author and for admins.
func (s *Server) DeletePost(ctx context.Context, req *v1.PostRequest) (*v1.Empty, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	postID, err := parseID("post_id", req.GetPostId())
	if err != nil {
		return nil, err
	}
	if err := s.social.DeletePost(ctx, sess, postID); err != nil {
		return nil, err
	}
	return &v1.Empty{}, nil
}

func (s *Server) ListAllPosts(ctx context.Context, _ *v1.Empty) (*v1.PostList, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.social.ListAllPosts(ctx, sess)
	if err != nil {
		return nil, err
	}
	return toPostList(items), nil
}
