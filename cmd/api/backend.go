package main

import (
	"context"
	"fmt"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/auth"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data/memdb"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/db"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/messaging"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/social"
)

// backend is the storage the services run on, either MongoDB or memory.
type backend struct {
	auth          auth.Stores
	social        social.Stores
	conversations messaging.ConversationStore
	messages      messaging.MessageStore
	profiles      messaging.ProfileStore
	close         func(context.Context) error
}

// mongoBackend connects to MongoDB, ensures indexes and builds one store
// per collection.
func mongoBackend(ctx context.Context, uri, name string) (*backend, error) {
	client, err := db.New(ctx, uri, name)
	if err != nil {
		return nil, err
	}
	if err := client.CreateIndexes(ctx); err != nil {
		_ = client.Close(ctx)
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	profiles := data.NewProfilesStore(client.Collection(db.Profiles))
	return &backend{
		auth: auth.Stores{
			Accounts: data.NewAccountsStore(client.Collection(db.Accounts)),
			Sessions: data.NewSessionsStore(client.Collection(db.Sessions)),
			Roles:    data.NewRolesStore(client.Collection(db.UserRoles)),
			Profiles: profiles,
		},
		social: social.Stores{
			Posts:       data.NewPostsStore(client.Collection(db.Posts), client.Collection(db.Likes)),
			Profiles:    profiles,
			Follows:     data.NewFollowsStore(client.Collection(db.Follows), client.Collection(db.Profiles)),
			Communities: data.NewCommunitiesStore(client.Collection(db.Communities), client.Collection(db.CommunityMembers)),
			Events:      data.NewEventsStore(client.Collection(db.Events)),
		},
		conversations: data.NewConversationsStore(client.Collection(db.Conversations), client.Collection(db.ConversationMember)),
		messages:      data.NewMessagesStore(client.Collection(db.Messages)),
		profiles:      profiles,
		close:         client.Close,
	}, nil
}

// memoryBackend keeps everything in process. Data is lost on restart.
func memoryBackend() *backend {
	m := memdb.Open()
	return &backend{
		auth:          auth.Stores{Accounts: m, Sessions: m, Roles: m, Profiles: m},
		social:        social.Stores{Posts: m, Profiles: m, Follows: m, Communities: m, Events: m},
		conversations: m,
		messages:      m,
		profiles:      m,
		close:         func(context.Context) error { return nil },
	}
}
