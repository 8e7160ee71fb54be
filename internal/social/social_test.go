package social

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/auth"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data/memdb"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/logger"
)

func newTestService() (*Service, *memdb.DB) {
	db := memdb.Open()
	st := Stores{Posts: db, Profiles: db, Follows: db, Communities: db, Events: db}
	return NewService(st, logger.Nop{}), db
}

func newUser(t *testing.T, db *memdb.DB, name string, admin bool) *auth.Session {
	t.Helper()
	prof := &data.Profile{ID: bson.NewObjectID(), FullName: name, Role: "student", Department: "comp"}
	if err := db.CreateProfile(context.Background(), prof); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	return &auth.Session{UserID: prof.ID, Profile: prof, IsAdmin: admin}
}

func TestCreatePostAndFeed(t *testing.T) {
	svc, db := newTestService()
	ctx := context.Background()
	me := newUser(t, db, "Me", false)

	if _, err := svc.CreatePost(ctx, me, "   "); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for blank post, got %v", err)
	}
	post, err := svc.CreatePost(ctx, me, "  Exams week #study #library ")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.Content != "Exams week #study #library" || len(post.Hashtags) != 2 || post.Hashtags[0] != "study" {
		t.Fatalf("unexpected post: %+v", post)
	}
	plain, _ := svc.CreatePost(ctx, me, "no tags here")
	if plain.Hashtags != nil {
		t.Fatalf("expected nil hashtags, got %v", plain.Hashtags)
	}

	if err := svc.LikePost(ctx, me, post.ID); err != nil {
		t.Fatalf("LikePost: %v", err)
	}
	if err := svc.LikePost(ctx, me, post.ID); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict on double like, got %v", err)
	}

	feed, err := svc.ListFeed(ctx, me, data.SortPopular, 0)
	if err != nil {
		t.Fatalf("ListFeed: %v", err)
	}
	if len(feed) != 2 || feed[0].Post.ID != post.ID || !feed[0].LikedByMe || feed[0].Author.FullName != "Me" {
		t.Fatalf("unexpected popular feed: %+v", feed)
	}
	if feed[0].Post.LikesCount != 1 {
		t.Fatalf("likes_count = %d", feed[0].Post.LikesCount)
	}

	_ = svc.UnlikePost(ctx, me, post.ID)
	_ = svc.UnlikePost(ctx, me, post.ID)
	got, _ := db.GetPost(ctx, post.ID)
	if got.LikesCount != 0 {
		t.Fatalf("likes_count after unlike = %d", got.LikesCount)
	}
}

func TestDeletePostPermissions(t *testing.T) {
	svc, db := newTestService()
	ctx := context.Background()
	author := newUser(t, db, "Author", false)
	other := newUser(t, db, "Other", false)
	admin := newUser(t, db, "Admin", true)

	p1, _ := svc.CreatePost(ctx, author, "one")
	p2, _ := svc.CreatePost(ctx, author, "two")

	if err := svc.DeletePost(ctx, other, p1.ID); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expected permission denied, got %v", err)
	}
	if err := svc.DeletePost(ctx, author, p1.ID); err != nil {
		t.Fatalf("author delete: %v", err)
	}
	if err := svc.DeletePost(ctx, admin, p2.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}

	if _, err := svc.ListAllPosts(ctx, other); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("moderation listing should be admin only, got %v", err)
	}
}

func TestFollowGraph(t *testing.T) {
	svc, db := newTestService()
	ctx := context.Background()
	a := newUser(t, db, "Alice", false)
	b := newUser(t, db, "Bob", false)

	if err := svc.Follow(ctx, a, a.UserID); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for self follow, got %v", err)
	}
	if err := svc.Follow(ctx, a, b.UserID); err != nil {
		t.Fatalf("Follow: %v", err)
	}
	if err := svc.Follow(ctx, a, b.UserID); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	view, err := svc.GetProfile(ctx, a, b.UserID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if !view.IsFollowing || view.Profile.FollowersCount != 1 || view.Profile.Department != "comp" {
		t.Fatalf("unexpected profile view: %+v", view)
	}

	followers, _ := svc.ListFollowers(ctx, a, b.UserID)
	if len(followers) != 1 || followers[0].ID != a.UserID {
		t.Fatalf("unexpected followers: %+v", followers)
	}

	_ = svc.Unfollow(ctx, a, b.UserID)
	if err := svc.Unfollow(ctx, a, b.UserID); err != nil {
		t.Fatalf("second unfollow should be a no-op: %v", err)
	}
	view, _ = svc.GetProfile(ctx, a, b.UserID)
	if view.IsFollowing || view.Profile.FollowersCount != 0 {
		t.Fatalf("follow state not cleared: %+v", view)
	}

	if _, err := svc.GetProfile(ctx, a, bson.NewObjectID()); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, db := newTestService()
	ctx := context.Background()
	me := newUser(t, db, "Me", false)
	other := newUser(t, db, "Other", false)

	bio := "  third year  "
	got, err := svc.UpdateProfile(ctx, me, me.UserID, data.ProfileUpdate{Bio: &bio})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got.Bio != "third year" || got.FullName != "Me" {
		t.Fatalf("unexpected profile: %+v", got)
	}

	blank := " "
	if _, err := svc.UpdateProfile(ctx, me, me.UserID, data.ProfileUpdate{FullName: &blank}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	dept := "law"
	if _, err := svc.UpdateProfile(ctx, me, me.UserID, data.ProfileUpdate{Department: &dept}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for unknown department, got %v", err)
	}
	if _, err := svc.UpdateProfile(ctx, other, me.UserID, data.ProfileUpdate{Bio: &bio}); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expected permission denied, got %v", err)
	}
}

func TestUpdateProfileRoleFields(t *testing.T) {
	svc, db := newTestService()
	ctx := context.Background()
	student := newUser(t, db, "Student", false)

	prof := &data.Profile{ID: bson.NewObjectID(), FullName: "Prof", Role: "professor", Subject: "Mechanics"}
	if err := db.CreateProfile(ctx, prof); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	professor := &auth.Session{UserID: prof.ID, Profile: prof}

	subject, year := "Thermodynamics", "TE"
	if _, err := svc.UpdateProfile(ctx, student, student.UserID, data.ProfileUpdate{Subject: &subject}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for a student subject, got %v", err)
	}
	if _, err := svc.UpdateProfile(ctx, professor, professor.UserID, data.ProfileUpdate{Year: &year}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for a professor year, got %v", err)
	}

	got, err := svc.UpdateProfile(ctx, student, student.UserID, data.ProfileUpdate{Year: &year})
	if err != nil || got.Year != "TE" {
		t.Fatalf("student year update: %+v, %v", got, err)
	}
	got, err = svc.UpdateProfile(ctx, professor, professor.UserID, data.ProfileUpdate{Subject: &subject})
	if err != nil || got.Subject != "Thermodynamics" {
		t.Fatalf("professor subject update: %+v, %v", got, err)
	}
	// an unrelated edit leaves the professor's subject alone
	bio := "office hours on friday"
	if _, err := svc.UpdateProfile(ctx, professor, professor.UserID, data.ProfileUpdate{Bio: &bio}); err != nil {
		t.Fatalf("bio update: %v", err)
	}
}

func TestSearchUsers(t *testing.T) {
	svc, db := newTestService()
	ctx := context.Background()
	me := newUser(t, db, "Priya Sharma", false)
	for i := 0; i < 12; i++ {
		newUser(t, db, "Student Sharma", false)
	}

	if got, _ := svc.SearchUsers(ctx, me, " s "); got != nil {
		t.Fatalf("short queries must return nothing")
	}
	got, err := svc.SearchUsers(ctx, me, "SHARMA")
	if err != nil {
		t.Fatalf("SearchUsers: %v", err)
	}
	if len(got) != searchLimit {
		t.Fatalf("expected %d results, got %d", searchLimit, len(got))
	}
}

func TestCommunityMembershipCounts(t *testing.T) {
	svc, db := newTestService()
	ctx := context.Background()
	admin := newUser(t, db, "Admin", true)
	me := newUser(t, db, "Me", false)

	if _, err := svc.CreateCommunity(ctx, me, CommunityInput{Name: "Robotics"}); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expected permission denied, got %v", err)
	}
	if _, err := svc.CreateCommunity(ctx, admin, CommunityInput{Name: "Robotics", Icon: "space"}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for unknown icon, got %v", err)
	}
	com, err := svc.CreateCommunity(ctx, admin, CommunityInput{Name: "Robotics", Icon: "tech"})
	if err != nil {
		t.Fatalf("CreateCommunity: %v", err)
	}

	if err := svc.JoinCommunity(ctx, me, com.ID); err != nil {
		t.Fatalf("JoinCommunity: %v", err)
	}
	view, _ := svc.GetCommunity(ctx, me, com.ID)
	if view.Community.MemberCount != 1 || !view.IsMember || len(view.Members) != 1 {
		t.Fatalf("after join: %+v", view)
	}
	if err := svc.JoinCommunity(ctx, me, com.ID); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict on second join, got %v", err)
	}

	_ = svc.LeaveCommunity(ctx, me, com.ID)
	_ = svc.LeaveCommunity(ctx, me, com.ID)
	view, _ = svc.GetCommunity(ctx, me, com.ID)
	if view.Community.MemberCount != 0 || view.IsMember {
		t.Fatalf("after leave: %+v", view)
	}

	if err := svc.DeleteCommunity(ctx, admin, com.ID); err != nil {
		t.Fatalf("DeleteCommunity: %v", err)
	}
	if err := svc.JoinCommunity(ctx, me, com.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestEventsCalendar(t *testing.T) {
	svc, db := newTestService()
	ctx := context.Background()
	admin := newUser(t, db, "Admin", true)
	me := newUser(t, db, "Me", false)
	svc.now = func() time.Time { return time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC) }

	bad := EventInput{Title: "Fest", EventDate: "10/05/2026", EventType: "cultural"}
	if _, err := svc.CreateEvent(ctx, admin, bad); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for date format, got %v", err)
	}
	if _, err := svc.CreateEvent(ctx, me, EventInput{Title: "x", EventDate: "2026-05-11", EventType: "other"}); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expected permission denied, got %v", err)
	}

	for _, d := range []string{"2026-05-01", "2026-05-10", "2026-05-12", "2026-05-12", "2026-06-01", "2026-06-02", "2026-07-01"} {
		if _, err := svc.CreateEvent(ctx, admin, EventInput{Title: "Event " + d, EventDate: d, StartTime: "09:30", EventType: "academic"}); err != nil {
			t.Fatalf("CreateEvent %s: %v", d, err)
		}
	}

	upcoming, err := svc.ListUpcomingEvents(ctx, me, 0)
	if err != nil {
		t.Fatalf("ListUpcomingEvents: %v", err)
	}
	if len(upcoming) != DefaultUpcomingLimit || upcoming[0].EventDate != "2026-05-10" {
		t.Fatalf("unexpected upcoming events: %d first=%s", len(upcoming), upcoming[0].EventDate)
	}

	day, _ := svc.ListEventsOn(ctx, me, "2026-05-12")
	if len(day) != 2 {
		t.Fatalf("expected 2 events on 2026-05-12, got %d", len(day))
	}

	ev := upcoming[0]
	upd, err := svc.UpdateEvent(ctx, admin, ev.ID, EventInput{Title: "Renamed", EventDate: ev.EventDate, EventType: "official"})
	if err != nil {
		t.Fatalf("UpdateEvent: %v", err)
	}
	if upd.Title != "Renamed" || upd.CreatedBy != admin.UserID {
		t.Fatalf("unexpected updated event: %+v", upd)
	}
	if err := svc.DeleteEvent(ctx, admin, ev.ID); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	if _, err := svc.GetEvent(ctx, me, ev.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
