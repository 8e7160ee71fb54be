package main

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/auth"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/logger"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/messaging"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/realtime"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/social"
	v1 "github.com/PaulBabatuyi/campusnet-gRPC/proto/campus/v1"
)

// newTestServer wires a Server over in-memory storage.
func newTestServer(t *testing.T, admins ...string) *Server {
	t.Helper()
	be := memoryBackend()
	hub := realtime.NewHub(0)
	provider := auth.NewProvider(be.auth, auth.NewJWTManager("test-secret", time.Hour), admins, logger.Nop{})
	msgs := messaging.NewService(be.conversations, be.messages, be.profiles, hub, hub, logger.Nop{})
	return newServer(provider, msgs, social.NewService(be.social, logger.Nop{}), logger.Nop{})
}

// signUp creates a student and returns a context carrying its session.
func signUp(t *testing.T, s *Server, email string) (context.Context, *auth.Session) {
	t.Helper()
	sess, err := s.auth.SignUp(context.Background(), auth.SignUpInput{
		Email: email, Password: "password1", FullName: "User " + email, Role: "student", Department: "comp",
	})
	if err != nil {
		t.Fatalf("SignUp %s: %v", email, err)
	}
	return auth.WithSession(context.Background(), sess), sess
}

// fakeStream implements grpc.ServerStreamingServer[T] and records what is sent.
type fakeStream[T any] struct {
	ctx  context.Context
	sent chan *T
	fail error
}

func newFakeStream[T any](ctx context.Context) *fakeStream[T] {
	return &fakeStream[T]{ctx: ctx, sent: make(chan *T, 64)}
}

func (f *fakeStream[T]) Send(m *T) error {
	if f.fail != nil {
		return f.fail
	}
	f.sent <- m
	return nil
}
func (f *fakeStream[T]) Context() context.Context     { return f.ctx }
func (f *fakeStream[T]) SetHeader(metadata.MD) error  { return nil }
func (f *fakeStream[T]) SendHeader(metadata.MD) error { return nil }
func (f *fakeStream[T]) SetTrailer(metadata.MD)       {}
func (f *fakeStream[T]) SendMsg(m interface{}) error  { return nil }
func (f *fakeStream[T]) RecvMsg(m interface{}) error  { return nil }

func (f *fakeStream[T]) next(t *testing.T) *T {
	t.Helper()
	select {
	case m := <-f.sent:
		return m
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for a stream message")
		return nil
	}
}

func TestSignUpReturnsTokenAndMeDoesNot(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.SignUp(context.Background(), &v1.SignUpRequest{
		Email: "Me@Campus.edu", Password: "password1", FullName: "Me", Role: "professor", Subject: "Physics",
	})
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if resp.Token == "" || resp.Email != "me@campus.edu" {
		t.Fatalf("unexpected sign-up response: %+v", resp)
	}
	if resp.Profile == nil || resp.Profile.RoleBadge.Label != "professor" {
		t.Fatalf("expected professor profile, got %+v", resp.Profile)
	}

	sess, err := s.auth.Load(context.Background(), resp.Token)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	me, err := s.Me(auth.WithSession(context.Background(), sess), &v1.Empty{})
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if me.Token != "" || me.UserId != resp.UserId {
		t.Fatalf("unexpected Me response: %+v", me)
	}
}

func TestHandlersRequireSession(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	if _, err := s.SendMessage(ctx, &v1.SendMessageRequest{}); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("SendMessage without session: got %v", err)
	}
	if _, err := s.ListFeed(ctx, &v1.ListFeedRequest{}); status.Code(toStatus(err)) != codes.Unauthenticated {
		t.Fatalf("ListFeed without session: got %v", err)
	}

	calls := map[string]func() error{
		"GetProfile": func() error {
			_, err := s.GetProfile(ctx, &v1.UserRequest{UserId: bson.NewObjectID().Hex()})
			return err
		},
		"Follow": func() error {
			_, err := s.Follow(ctx, &v1.UserRequest{UserId: bson.NewObjectID().Hex()})
			return err
		},
		"JoinCommunity": func() error {
			_, err := s.JoinCommunity(ctx, &v1.CommunityRequest{CommunityId: bson.NewObjectID().Hex()})
			return err
		},
		"ListEvents": func() error {
			_, err := s.ListEvents(ctx, &v1.ListEventsRequest{})
			return err
		},
	}
	for name, call := range calls {
		if err := call(); status.Code(err) != codes.Unauthenticated {
			t.Fatalf("%s without session: got %v", name, err)
		}
	}
}

func TestInvalidIDIsInvalidArgument(t *testing.T) {
	s := newTestServer(t)
	ctx, _ := signUp(t, s, "a@campus.edu")

	_, err := s.SendMessage(ctx, &v1.SendMessageRequest{ConversationId: "not-an-id", Content: "hi"})
	st := status.Convert(toStatus(err))
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", st.Code())
	}
	var found bool
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok && len(br.FieldViolations) == 1 && br.FieldViolations[0].Field == "conversation_id" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a conversation_id field violation, got %v", st.Details())
	}
}

func TestToStatus(t *testing.T) {
	cases := []struct {
		err  error
		want codes.Code
	}{
		{apperr.NotFound("post"), codes.NotFound},
		{apperr.Conflict("like"), codes.AlreadyExists},
		{apperr.Forbidden("admin only"), codes.PermissionDenied},
		{fmt.Errorf("load: %w", apperr.ErrUnauthenticated), codes.Unauthenticated},
		{apperr.NewValidationError("bad"), codes.InvalidArgument},
		{status.Error(codes.ResourceExhausted, "slow down"), codes.ResourceExhausted},
		{errors.New("mongo exploded"), codes.Internal},
	}
	for _, c := range cases {
		if got := status.Code(toStatus(c.err)); got != c.want {
			t.Errorf("toStatus(%v) = %v, want %v", c.err, got, c.want)
		}
	}
	if st := status.Convert(toStatus(errors.New("secret detail"))); st.Message() != "internal server error" {
		t.Fatalf("internal causes must not leak, got %q", st.Message())
	}
	if toStatus(nil) != nil {
		t.Fatalf("nil must stay nil")
	}
}

func TestNeedsSession(t *testing.T) {
	cases := map[string]bool{
		v1.CampusService_SignUp_FullMethodName:           false,
		v1.CampusService_SignIn_FullMethodName:           false,
		v1.CampusService_SendMessage_FullMethodName:      true,
		v1.CampusService_OpenConversation_FullMethodName: true,
		"/grpc.health.v1.Health/Check":          false,
	}
	for method, want := range cases {
		if got := needsSession(method); got != want {
			t.Errorf("needsSession(%s) = %v, want %v", method, got, want)
		}
	}
}

func TestOpenConversationStreamsHistoryThenLive(t *testing.T) {
	s := newTestServer(t)
	xCtx, _ := signUp(t, s, "x@campus.edu")
	yCtx, y := signUp(t, s, "y@campus.edu")

	ref, err := s.FindOrCreateConversation(xCtx, &v1.UserRequest{UserId: y.UserID.Hex()})
	if err != nil {
		t.Fatalf("FindOrCreateConversation: %v", err)
	}
	if _, err := s.SendMessage(xCtx, &v1.SendMessageRequest{ConversationId: ref.ConversationId, Content: "first"}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	ctx, cancel := context.WithCancel(yCtx)
	stream := newFakeStream[v1.ConversationEvent](ctx)
	done := make(chan error, 1)
	go func() {
		done <- s.OpenConversation(&v1.ConversationRequest{ConversationId: ref.ConversationId}, stream)
	}()

	ev := stream.next(t)
	if ev.Live || ev.Message.Content != "first" {
		t.Fatalf("expected history message, got %+v", ev)
	}

	if _, err := s.SendMessage(xCtx, &v1.SendMessageRequest{ConversationId: ref.ConversationId, Content: "second"}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	ev = stream.next(t)
	if !ev.Live || ev.Message.Content != "second" {
		t.Fatalf("expected live message, got %+v", ev)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("OpenConversation returned %v after cancel", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("OpenConversation did not return after cancel")
	}
}

func TestOpenConversationRejectsOutsider(t *testing.T) {
	s := newTestServer(t)
	xCtx, _ := signUp(t, s, "x@campus.edu")
	_, y := signUp(t, s, "y@campus.edu")
	zCtx, _ := signUp(t, s, "z@campus.edu")

	ref, err := s.FindOrCreateConversation(xCtx, &v1.UserRequest{UserId: y.UserID.Hex()})
	if err != nil {
		t.Fatalf("FindOrCreateConversation: %v", err)
	}
	stream := newFakeStream[v1.ConversationEvent](zCtx)
	err = s.OpenConversation(&v1.ConversationRequest{ConversationId: ref.ConversationId}, stream)
	if status.Code(toStatus(err)) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}
}

func TestListConversationsStream(t *testing.T) {
	s := newTestServer(t)
	xCtx, _ := signUp(t, s, "x@campus.edu")
	_, y := signUp(t, s, "y@campus.edu")
	_, z := signUp(t, s, "z@campus.edu")

	older, _ := s.FindOrCreateConversation(xCtx, &v1.UserRequest{UserId: y.UserID.Hex()})
	newer, _ := s.FindOrCreateConversation(xCtx, &v1.UserRequest{UserId: z.UserID.Hex()})
	if _, err := s.SendMessage(xCtx, &v1.SendMessageRequest{ConversationId: older.ConversationId, Content: "one"}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	if _, err := s.SendMessage(xCtx, &v1.SendMessageRequest{ConversationId: newer.ConversationId, Content: "two"}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	stream := newFakeStream[v1.ConversationSummary](xCtx)
	if err := s.ListConversations(&v1.Empty{}, stream); err != nil {
		t.Fatalf("ListConversations: %v", err)
	}
	first, second := stream.next(t), stream.next(t)
	if first.ConversationId != newer.ConversationId || second.ConversationId != older.ConversationId {
		t.Fatalf("unexpected order: %s, %s", first.ConversationId, second.ConversationId)
	}
	if first.LastMessage == nil || first.LastMessage.Content != "two" || first.Unread {
		t.Fatalf("unexpected summary: %+v", first)
	}
}

func TestListMessagesStopsOnSendError(t *testing.T) {
	s := newTestServer(t)
	xCtx, _ := signUp(t, s, "x@campus.edu")
	_, y := signUp(t, s, "y@campus.edu")
	ref, _ := s.FindOrCreateConversation(xCtx, &v1.UserRequest{UserId: y.UserID.Hex()})
	if _, err := s.SendMessage(xCtx, &v1.SendMessageRequest{ConversationId: ref.ConversationId, Content: "hi"}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	stream := newFakeStream[v1.Message](xCtx)
	stream.fail = errors.New("broken")
	if err := s.ListMessages(&v1.ConversationRequest{ConversationId: ref.ConversationId}, stream); err == nil {
		t.Fatalf("expected send error to propagate")
	}
}

func TestAdminOnlyRPCs(t *testing.T) {
	s := newTestServer(t, "admin@campus.edu")
	userCtx, _ := signUp(t, s, "user@campus.edu")
	adminCtx, _ := signUp(t, s, "admin@campus.edu")

	in := &v1.EventInput{Title: "Fest", EventDate: "2026-12-01", EventType: "cultural"}
	if _, err := s.CreateEvent(userCtx, in); status.Code(toStatus(err)) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied for a regular user, got %v", err)
	}
	ev, err := s.CreateEvent(adminCtx, in)
	if err != nil {
		t.Fatalf("CreateEvent as admin: %v", err)
	}
	if ev.TypeBadge.Label != "Cultural" {
		t.Fatalf("unexpected badge: %+v", ev.TypeBadge)
	}

	list, err := s.ListEvents(userCtx, &v1.ListEventsRequest{Date: "2026-12-01"})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(list.Events) != 1 || list.Events[0].Id != ev.Id {
		t.Fatalf("expected the created event on its day, got %+v", list.Events)
	}

	com, err := s.CreateCommunity(adminCtx, &v1.CommunityInput{Name: "Robotics", Icon: "tech"})
	if err != nil {
		t.Fatalf("CreateCommunity: %v", err)
	}
	if _, err := s.JoinCommunity(userCtx, &v1.CommunityRequest{CommunityId: com.Id}); err != nil {
		t.Fatalf("JoinCommunity: %v", err)
	}
	mine, err := s.ListMyCommunities(userCtx, &v1.Empty{})
	if err != nil || len(mine.Ids) != 1 || mine.Ids[0] != com.Id {
		t.Fatalf("ListMyCommunities = %+v, %v", mine, err)
	}
}

func TestFeedRoundTrip(t *testing.T) {
	s := newTestServer(t)
	aCtx, a := signUp(t, s, "a@campus.edu")
	bCtx, _ := signUp(t, s, "b@campus.edu")

	post, err := s.CreatePost(aCtx, &v1.CreatePostRequest{Content: "hello #campus"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.Author == nil || post.Author.Id != a.UserID.Hex() {
		t.Fatalf("expected author on created post, got %+v", post.Author)
	}
	if _, err := s.LikePost(bCtx, &v1.PostRequest{PostId: post.Id}); err != nil {
		t.Fatalf("LikePost: %v", err)
	}
	feed, err := s.ListFeed(bCtx, &v1.ListFeedRequest{Sort: "popular"})
	if err != nil {
		t.Fatalf("ListFeed: %v", err)
	}
	if len(feed.Posts) != 1 || !feed.Posts[0].LikedByMe || feed.Posts[0].LikesCount != 1 {
		t.Fatalf("unexpected feed: %+v", feed.Posts)
	}
	if _, err := s.DeletePost(bCtx, &v1.PostRequest{PostId: post.Id}); status.Code(toStatus(err)) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied deleting someone else's post, got %v", err)
	}
	if _, err := s.GetProfile(bCtx, &v1.UserRequest{UserId: bson.NewObjectID().Hex()}); status.Code(toStatus(err)) != codes.NotFound {
		t.Fatalf("expected NotFound for an unknown profile, got %v", err)
	}

	view, err := s.GetProfile(bCtx, &v1.UserRequest{UserId: a.UserID.Hex()})
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got := view.Profile.GetDepartmentBadge(); got.GetLabel() != "Computer Engineering" || got.GetColor() != "badge-comp" {
		t.Fatalf("unexpected department badge: %+v", got)
	}
}
