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

// PostsStore provides post and like database operations.
type PostsStore struct {
	coll  *mongo.Collection // "posts"
	likes *mongo.Collection // "likes"
}

func NewPostsStore(coll, likes *mongo.Collection) *PostsStore {
	return &PostsStore{coll: coll, likes: likes}
}

// CreatePost inserts a post with zeroed counters.
func (p *PostsStore) CreatePost(ctx context.Context, post *Post) (*Post, error) {
	post.LikesCount, post.CommentsCount = 0, 0
	post.CreatedAt = time.Now()

	result, err := p.coll.InsertOne(ctx, post)
	if err != nil {
		return nil, err
	}
	post.ID = result.InsertedID.(bson.ObjectID)
	return post, nil
}

func (p *PostsStore) GetPost(ctx context.Context, id bson.ObjectID) (*Post, error) {
	var post Post
	if err := p.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("post")
		}
		return nil, err
	}
	return &post, nil
}

// ListPosts returns the feed newest-first or most-liked-first.
func (p *PostsStore) ListPosts(ctx context.Context, sort PostSort, limit int64) ([]*Post, error) {
	order := bson.D{{Key: "created_at", Value: -1}}
	if sort == SortPopular {
		// ties on likes fall back to recency
		order = bson.D{{Key: "likes_count", Value: -1}, {Key: "created_at", Value: -1}}
	}
	opts := options.Find().SetSort(order)
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return p.find(ctx, bson.M{}, opts)
}

// ListPostsByUser returns a user's posts newest first.
func (p *PostsStore) ListPostsByUser(ctx context.Context, userID bson.ObjectID) ([]*Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return p.find(ctx, bson.M{"user_id": userID}, opts)
}

func (p *PostsStore) find(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder) ([]*Post, error) {
	cursor, err := p.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []*Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// DeletePost removes the post and its likes.
func (p *PostsStore) DeletePost(ctx context.Context, id bson.ObjectID) error {
	res, err := p.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("post")
	}
	_, err = p.likes.DeleteMany(ctx, bson.M{"post_id": id})
	return err
}

// LikePost inserts the like row and bumps likes_count. Liking twice is a
// conflict.
func (p *PostsStore) LikePost(ctx context.Context, postID, userID bson.ObjectID) error {
	_, err := p.likes.InsertOne(ctx, Like{PostID: postID, UserID: userID, CreatedAt: time.Now()})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Conflict("like")
		}
		return err
	}
	_, err = p.coll.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$inc": bson.M{"likes_count": 1}})
	return err
}

// UnlikePost deletes the like row and reports whether there was one.
func (p *PostsStore) UnlikePost(ctx context.Context, postID, userID bson.ObjectID) (bool, error) {
	res, err := p.likes.DeleteOne(ctx, bson.M{"post_id": postID, "user_id": userID})
	if err != nil {
		return false, err
	}
	if res.DeletedCount == 0 {
		return false, nil
	}
	_, err = p.coll.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$inc": bson.M{"likes_count": -1}})
	return true, err
}

// LikedPostIDs reports which of postIDs userID has liked.
func (p *PostsStore) LikedPostIDs(ctx context.Context, userID bson.ObjectID, postIDs []bson.ObjectID) (map[bson.ObjectID]bool, error) {
	out := make(map[bson.ObjectID]bool)
	if len(postIDs) == 0 {
		return out, nil
	}
	cursor, err := p.likes.Find(ctx, bson.M{"user_id": userID, "post_id": bson.M{"$in": postIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var likes []Like
	if err := cursor.All(ctx, &likes); err != nil {
		return nil, err
	}
	for _, l := range likes {
		out[l.PostID] = true
	}
	return out, nil
}
