package main

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/auth"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/badge"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/social"
	v1 "github.com/PaulBabatuyi/campusnet-gRPC/proto/campus/v1"
)

func toAuthResponse(sess *auth.Session, withToken bool) *v1.AuthResponse {
	resp := &v1.AuthResponse{
		ExpiresAt: timestamppb.New(sess.ExpiresAt),
		UserId:    sess.UserID.Hex(),
		Email:     sess.Email,
		IsAdmin:   sess.IsAdmin,
		Profile:   toProfile(sess.Profile),
	}
	if withToken {
		resp.Token = sess.Token
	}
	return resp
}

func toBadge(d badge.Descriptor) *v1.Badge {
	return &v1.Badge{Label: d.Label, Color: d.Color, Icon: d.Icon}
}

// toProfile is the only place profile badges are derived.
func toProfile(p *data.Profile) *v1.Profile {
	if p == nil {
		return nil
	}
	return &v1.Profile{
		Id:              p.ID.Hex(),
		FullName:        p.FullName,
		AvatarUrl:       p.AvatarURL,
		Bio:             p.Bio,
		Role:            p.Role,
		Department:      p.Department,
		Year:            p.Year,
		Subject:         p.Subject,
		FollowersCount:  p.FollowersCount,
		FollowingCount:  p.FollowingCount,
		DepartmentBadge: toBadge(badge.Department(p.Department).Badge()),
		RoleBadge:       toBadge(badge.Role(p.Role).Badge()),
	}
}

func toProfileList(ps []*data.Profile) *v1.ProfileList {
	out := &v1.ProfileList{Profiles: make([]*v1.Profile, 0, len(ps))}
	for _, p := range ps {
		out.Profiles = append(out.Profiles, toProfile(p))
	}
	return out
}

func toMessage(m *data.Message) *v1.Message {
	if m == nil {
		return nil
	}
	return &v1.Message{
		Id:             m.ID.Hex(),
		ConversationId: m.ConversationID.Hex(),
		SenderId:       m.SenderID.Hex(),
		Content:        m.Content,
		CreatedAt:      timestamppb.New(m.CreatedAt),
		IsRead:         m.IsRead,
	}
}

func toPost(item social.FeedItem) *v1.Post {
	p := item.Post
	return &v1.Post{
		Id:            p.ID.Hex(),
		UserId:        p.UserID.Hex(),
		Content:       p.Content,
		Hashtags:      p.Hashtags,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		CreatedAt:     timestamppb.New(p.CreatedAt),
		Author:        toProfile(item.Author),
		LikedByMe:     item.LikedByMe,
	}
}

func toPostList(items []social.FeedItem) *v1.PostList {
	out := &v1.PostList{Posts: make([]*v1.Post, 0, len(items))}
	for _, it := range items {
		out.Posts = append(out.Posts, toPost(it))
	}
	return out
}

func toCommunity(c *data.Community) *v1.Community {
	return &v1.Community{
		Id:          c.ID.Hex(),
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		IconBadge:   toBadge(badge.CommunityIcon(c.Icon).Badge()),
		MemberCount: c.MemberCount,
		CreatedAt:   timestamppb.New(c.CreatedAt),
	}
}

func toEvent(e *data.Event) *v1.Event {
	return &v1.Event{
		Id:          e.ID.Hex(),
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		EventDate:   e.EventDate,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		EventType:   e.EventType,
		TypeBadge:   toBadge(badge.EventType(e.EventType).Badge()),
		CreatedBy:   e.CreatedBy.Hex(),
		CreatedAt:   timestamppb.New(e.CreatedAt),
	}
}

func toEventList(es []*data.Event) *v1.EventList {
	out := &v1.EventList{Events: make([]*v1.Event, 0, len(es))}
	for _, e := range es {
		out.Events = append(out.Events, toEvent(e))
	}
	return out
}

func hexIDs(ids []bson.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}
