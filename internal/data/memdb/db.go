// Package memdb is an in-memory backend implementing the same store methods
// as package data. It backs unit tests and the STORAGE=memory dev mode.
package memdb

import (
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
)

type (
	pair struct{ a, b bson.ObjectID }

	// DB holds every table behind one lock; operations that touch two tables
	// (a like and its counter) are therefore atomic here, unlike on MongoDB.
	DB struct {
		mu sync.RWMutex

		accounts      map[bson.ObjectID]*data.Account
		sessions      map[string]*data.Session
		roles         map[pair]map[string]bool
		profiles      map[bson.ObjectID]*data.Profile
		follows       map[pair]*data.Follow // follower, following
		posts         map[bson.ObjectID]*data.Post
		likes         map[pair]*data.Like // post, user
		events        map[bson.ObjectID]*data.Event
		communities   map[bson.ObjectID]*data.Community
		members       map[pair]*data.CommunityMember // community, user
		conversations map[bson.ObjectID]*data.Conversation
		participants  map[pair]*data.Participant // conversation, user
		messages      map[bson.ObjectID]*data.Message
	}
)

func Open() *DB {
	return &DB{
		accounts:      make(map[bson.ObjectID]*data.Account),
		sessions:      make(map[string]*data.Session),
		roles:         make(map[pair]map[string]bool),
		profiles:      make(map[bson.ObjectID]*data.Profile),
		follows:       make(map[pair]*data.Follow),
		posts:         make(map[bson.ObjectID]*data.Post),
		likes:         make(map[pair]*data.Like),
		events:        make(map[bson.ObjectID]*data.Event),
		communities:   make(map[bson.ObjectID]*data.Community),
		members:       make(map[pair]*data.CommunityMember),
		conversations: make(map[bson.ObjectID]*data.Conversation),
		participants:  make(map[pair]*data.Participant),
		messages:      make(map[bson.ObjectID]*data.Message),
	}
}

func cp[T any](v *T) *T {
	c := *v
	return &c
}

