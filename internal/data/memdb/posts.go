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

func (db *DB) CreatePost(_ context.Context, post *data.Post) (*data.Post, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	post.ID = bson.NewObjectID()
	post.LikesCount, post.CommentsCount = 0, 0
	post.CreatedAt = time.Now()
	db.posts[post.ID] = cp(post)
	return post, nil
}

func (db *DB) GetPost(_ context.Context, id bson.ObjectID) (*data.Post, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if p, ok := db.posts[id]; ok {
		return cp(p), nil
	}
	return nil, apperr.NotFound("post")
}

func byRecency(a, b *data.Post) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID.Hex(), a.ID.Hex())
}

func (db *DB) ListPosts(_ context.Context, sort data.PostSort, limit int64) ([]*data.Post, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := db.postsWhere(func(*data.Post) bool { return true })
	if sort == data.SortPopular {
		slices.SortStableFunc(out, func(a, b *data.Post) int {
			if c := cmp.Compare(b.LikesCount, a.LikesCount); c != 0 {
				return c
			}
			return byRecency(a, b)
		})
	}
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (db *DB) ListPostsByUser(_ context.Context, userID bson.ObjectID) ([]*data.Post, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.postsWhere(func(p *data.Post) bool { return p.UserID == userID }), nil
}

// postsWhere returns copies of matching posts newest first.
func (db *DB) postsWhere(keep func(*data.Post) bool) []*data.Post {
	var out []*data.Post
	for _, p := range db.posts {
		if keep(p) {
			out = append(out, cp(p))
		}
	}
	slices.SortFunc(out, byRecency)
	return out
}

func (db *DB) DeletePost(_ context.Context, id bson.ObjectID) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.posts[id]; !ok {
		return apperr.NotFound("post")
	}
	delete(db.posts, id)
	for k := range db.likes {
		if k.a == id {
			delete(db.likes, k)
		}
	}
	return nil
}

func (db *DB) LikePost(_ context.Context, postID, userID bson.ObjectID) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	k := pair{postID, userID}
	if _, ok := db.likes[k]; ok {
		return apperr.Conflict("like")
	}
	db.likes[k] = &data.Like{ID: bson.NewObjectID(), PostID: postID, UserID: userID, CreatedAt: time.Now()}
	if p, ok := db.posts[postID]; ok {
		p.LikesCount++
	}
	return nil
}

func (db *DB) UnlikePost(_ context.Context, postID, userID bson.ObjectID) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	k := pair{postID, userID}
	if _, ok := db.likes[k]; !ok {
		return false, nil
	}
	delete(db.likes, k)
	if p, ok := db.posts[postID]; ok {
		p.LikesCount--
	}
	return true, nil
}

func (db *DB) LikedPostIDs(_ context.Context, userID bson.ObjectID, postIDs []bson.ObjectID) (map[bson.ObjectID]bool, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make(map[bson.ObjectID]bool)
	for _, id := range postIDs {
		if _, ok := db.likes[pair{id, userID}]; ok {
			out[id] = true
		}
	}
	return out, nil
}
