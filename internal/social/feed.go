package social

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/auth"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/normalize"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/validation"
)

const (
	DefaultFeedLimit = 50
	MaxFeedLimit     = 100
)

// FeedItem is a post as shown to one viewer.
type FeedItem struct {
	Post      *data.Post
	Author    *data.Profile // nil if the author's profile is gone
	LikedByMe bool
}

type postInput struct {
	Content string `json:"content" validate:"required,max=1000"`
}

// CreatePost publishes a post authored by the session user. Hashtags are
// taken from the content.
func (s *Service) CreatePost(ctx context.Context, sess *auth.Session, content string) (*data.Post, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	content = normalize.Content(content)
	if err := validation.Struct(postInput{Content: content}); err != nil {
		return nil, err
	}
	return s.st.Posts.CreatePost(ctx, &data.Post{
		UserID:   sess.UserID,
		Content:  content,
		Hashtags: normalize.Hashtags(content),
	})
}

// ListFeed returns posts in the requested order with author and like state.
func (s *Service) ListFeed(ctx context.Context, sess *auth.Session, sort data.PostSort, limit int64) ([]FeedItem, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	if sort != data.SortPopular {
		sort = data.SortLatest
	}
	switch {
	case limit <= 0:
		limit = DefaultFeedLimit
	case limit > MaxFeedLimit:
		limit = MaxFeedLimit
	}

	posts, err := s.st.Posts.ListPosts(ctx, sort, limit)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return s.decorate(ctx, sess, posts)
}

// ListUserPosts returns one user's posts newest first.
func (s *Service) ListUserPosts(ctx context.Context, sess *auth.Session, userID bson.ObjectID) ([]FeedItem, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	posts, err := s.st.Posts.ListPostsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user posts: %w", err)
	}
	return s.decorate(ctx, sess, posts)
}

func (s *Service) decorate(ctx context.Context, sess *auth.Session, posts []*data.Post) ([]FeedItem, error) {
	if len(posts) == 0 {
		return nil, nil
	}

	var authorIDs, postIDs []bson.ObjectID
	seen := make(map[bson.ObjectID]bool)
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
		if !seen[p.UserID] {
			seen[p.UserID] = true
			authorIDs = append(authorIDs, p.UserID)
		}
	}
	authors, err := s.profilesByID(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}
	liked, err := s.st.Posts.LikedPostIDs(ctx, sess.UserID, postIDs)
	if err != nil {
		return nil, fmt.Errorf("load likes: %w", err)
	}

	items := make([]FeedItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, FeedItem{Post: p, Author: authors[p.UserID], LikedByMe: liked[p.ID]})
	}
	return items, nil
}

// LikePost adds the viewer's like; liking twice is a conflict.
func (s *Service) LikePost(ctx context.Context, sess *auth.Session, postID bson.ObjectID) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	if _, err := s.st.Posts.GetPost(ctx, postID); err != nil {
		return err
	}
	return s.st.Posts.LikePost(ctx, postID, sess.UserID)
}

// UnlikePost removes the viewer's like, if any.
func (s *Service) UnlikePost(ctx context.Context, sess *auth.Session, postID bson.ObjectID) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	_, err := s.st.Posts.UnlikePost(ctx, postID, sess.UserID)
	return err
}

// DeletePost is allowed for the author and for admins.
func (s *Service) DeletePost(ctx context.Context, sess *auth.Session, postID bson.ObjectID) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	post, err := s.st.Posts.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != sess.UserID && !sess.IsAdmin {
		return apperr.Forbidden("only the author or an admin can delete a post")
	}
	if err := s.st.Posts.DeletePost(ctx, postID); err != nil {
		return err
	}
	if post.UserID != sess.UserID {
		s.log.Info("post removed by admin", "post_id", postID.Hex(), "admin_id", sess.UserID.Hex())
	}
	return nil
}

// ListAllPosts is the moderation listing: every post, newest first.
func (s *Service) ListAllPosts(ctx context.Context, sess *auth.Session) ([]FeedItem, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	posts, err := s.st.Posts.ListPosts(ctx, data.SortLatest, 0)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return s.decorate(ctx, sess, posts)
}
