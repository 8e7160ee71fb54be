package main

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/config"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/logger"
	v1 "github.com/PaulBabatuyi/campusnet-gRPC/proto/campus/v1"
)

const bufSize = 1024 * 1024

// startServer runs a memory-backed app on a bufconn listener and returns a
// connection to it.
func startServer(t *testing.T, cfg *config.Config) *grpc.ClientConn {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{
			Storage:             config.StorageMemory,
			JWTSecret:           "test-secret",
			TokenTTL:            time.Hour,
			RateLimitRPM:        600,
			MessageRateLimitRPM: 600,
		}
	}

	a, err := newApp(context.Background(), cfg, logger.Nop{})
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	lis := bufconn.Listen(bufSize)
	go func() {
		_ = a.grpc.Serve(lis)
	}()
	t.Cleanup(func() {
		a.grpc.Stop()
		a.close()
	})

	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("failed to dial bufnet: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func withToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func TestSignUpSignInAndAuth(t *testing.T) {
	client := v1.NewCampusServiceClient(startServer(t, nil))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	up, err := client.SignUp(ctx, &v1.SignUpRequest{
		Email: "int@campus.edu", Password: "password1", FullName: "Integration", Role: "student", Year: "SE",
	})
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if up.Token == "" {
		t.Fatalf("expected token on sign-up")
	}

	// duplicate email
	_, err = client.SignUp(ctx, &v1.SignUpRequest{
		Email: "INT@campus.edu", Password: "password1", FullName: "Again", Role: "student",
	})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists, got %v", err)
	}

	in, err := client.SignIn(ctx, &v1.SignInRequest{Email: "int@campus.edu", Password: "password1"})
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if _, err := client.SignIn(ctx, &v1.SignInRequest{Email: "int@campus.edu", Password: "nope-nope"}); status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied for a wrong password, got %v", err)
	}

	// no token
	if _, err := client.Me(ctx, &v1.Empty{}); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated without token, got %v", err)
	}

	var header metadata.MD
	me, err := client.Me(withToken(ctx, in.Token), &v1.Empty{}, grpc.Header(&header))
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if me.Email != "int@campus.edu" || me.Profile == nil || me.Profile.Year != "SE" {
		t.Fatalf("unexpected Me: %+v", me)
	}
	if len(header.Get("x-request-id")) != 1 {
		t.Fatalf("expected a request id header, got %v", header)
	}

	if _, err := client.SignOut(withToken(ctx, in.Token), &v1.Empty{}); err != nil {
		t.Fatalf("SignOut failed: %v", err)
	}
	if _, err := client.Me(withToken(ctx, in.Token), &v1.Empty{}); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated after sign-out, got %v", err)
	}
}

func TestConversationEndToEnd(t *testing.T) {
	client := v1.NewCampusServiceClient(startServer(t, nil))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	x, err := client.SignUp(ctx, &v1.SignUpRequest{Email: "x@campus.edu", Password: "password1", FullName: "X", Role: "student"})
	if err != nil {
		t.Fatalf("SignUp x: %v", err)
	}
	y, err := client.SignUp(ctx, &v1.SignUpRequest{Email: "y@campus.edu", Password: "password1", FullName: "Y", Role: "professor"})
	if err != nil {
		t.Fatalf("SignUp y: %v", err)
	}
	xCtx, yCtx := withToken(ctx, x.Token), withToken(ctx, y.Token)

	ref, err := client.FindOrCreateConversation(xCtx, &v1.UserRequest{UserId: y.UserId})
	if err != nil {
		t.Fatalf("FindOrCreateConversation: %v", err)
	}
	again, err := client.FindOrCreateConversation(yCtx, &v1.UserRequest{UserId: x.UserId})
	if err != nil || again.ConversationId != ref.ConversationId {
		t.Fatalf("expected the same conversation from both sides, got %v, %v", again, err)
	}

	if _, err := client.SendMessage(xCtx, &v1.SendMessageRequest{ConversationId: ref.ConversationId, Content: "hello"}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if _, err := client.SendMessage(xCtx, &v1.SendMessageRequest{ConversationId: ref.ConversationId, Content: "   "}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for blank content, got %v", err)
	}

	// y's list shows the unread message
	list, err := client.ListConversations(yCtx, &v1.Empty{})
	if err != nil {
		t.Fatalf("ListConversations: %v", err)
	}
	sum, err := list.Recv()
	if err != nil {
		t.Fatalf("ListConversations Recv: %v", err)
	}
	if !sum.Unread || sum.Other == nil || sum.Other.Id != x.UserId {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if _, err := list.Recv(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected a single conversation, got %v", err)
	}

	// y opens the conversation: history first, then live messages
	sctx, scancel := context.WithCancel(yCtx)
	defer scancel()
	stream, err := client.OpenConversation(sctx, &v1.ConversationRequest{ConversationId: ref.ConversationId})
	if err != nil {
		t.Fatalf("OpenConversation: %v", err)
	}
	ev, err := stream.Recv()
	if err != nil {
		t.Fatalf("OpenConversation Recv: %v", err)
	}
	if ev.Live || ev.Message.Content != "hello" {
		t.Fatalf("expected history first, got %+v", ev)
	}

	if _, err := client.SendMessage(xCtx, &v1.SendMessageRequest{ConversationId: ref.ConversationId, Content: "are you there?"}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	ev, err = stream.Recv()
	if err != nil {
		t.Fatalf("OpenConversation Recv: %v", err)
	}
	if !ev.Live || ev.Message.Content != "are you there?" || ev.Message.SenderId != x.UserId {
		t.Fatalf("expected live message, got %+v", ev)
	}
	scancel()

	// opening marked the history read
	detail, err := client.GetConversation(xCtx, &v1.ConversationRequest{ConversationId: ref.ConversationId})
	if err != nil {
		t.Fatalf("GetConversation: %v", err)
	}
	if len(detail.Messages) != 2 || !detail.Messages[0].IsRead {
		t.Fatalf("unexpected detail: %+v", detail.Messages)
	}
}

func TestSendMessageRateLimited(t *testing.T) {
	cfg := &config.Config{
		Storage:             config.StorageMemory,
		JWTSecret:           "test-secret",
		TokenTTL:            time.Hour,
		RateLimitRPM:        600,
		MessageRateLimitRPM: 1,
	}
	client := v1.NewCampusServiceClient(startServer(t, cfg))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	x, _ := client.SignUp(ctx, &v1.SignUpRequest{Email: "x@campus.edu", Password: "password1", FullName: "X", Role: "student"})
	y, _ := client.SignUp(ctx, &v1.SignUpRequest{Email: "y@campus.edu", Password: "password1", FullName: "Y", Role: "student"})
	if x == nil || y == nil {
		t.Fatalf("sign-up failed")
	}
	xCtx := withToken(ctx, x.Token)
	ref, err := client.FindOrCreateConversation(xCtx, &v1.UserRequest{UserId: y.UserId})
	if err != nil {
		t.Fatalf("FindOrCreateConversation: %v", err)
	}

	var limited bool
	for i := 0; i < 20; i++ {
		_, err := client.SendMessage(xCtx, &v1.SendMessageRequest{ConversationId: ref.ConversationId, Content: "spam"})
		if status.Code(err) == codes.ResourceExhausted {
			limited = true
			break
		}
	}
	if !limited {
		t.Fatalf("expected SendMessage to be rate limited")
	}
}

func TestRequestValidation(t *testing.T) {
	client := v1.NewCampusServiceClient(startServer(t, nil))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.SignUp(ctx, &v1.SignUpRequest{Email: "v@campus.edu", Password: "password1", FullName: "V", Role: "janitor"})
	if !violated(t, err)["role"] {
		t.Fatalf("expected a role violation, got %v", err)
	}

	up, err := client.SignUp(ctx, &v1.SignUpRequest{Email: "v@campus.edu", Password: "password1", FullName: "V", Role: "student"})
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	vCtx := withToken(ctx, up.Token)

	_, err = client.GetConversation(vCtx, &v1.ConversationRequest{ConversationId: "not-an-id"})
	if !violated(t, err)["conversation_id"] {
		t.Fatalf("expected a conversation_id violation, got %v", err)
	}

	// streams are checked on receive
	stream, err := client.OpenConversation(vCtx, &v1.ConversationRequest{ConversationId: "nope"})
	if err == nil {
		_, err = stream.Recv()
	}
	if !violated(t, err)["conversation_id"] {
		t.Fatalf("expected a conversation_id violation on the stream, got %v", err)
	}

	// auth runs before validation
	_, err = client.GetConversation(ctx, &v1.ConversationRequest{ConversationId: "not-an-id"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated before validation, got %v", err)
	}
}

// violated returns the fields named by the BadRequest detail of an
// InvalidArgument error.
func violated(t *testing.T, err error) map[string]bool {
	t.Helper()
	st := status.Convert(err)
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	fields := map[string]bool{}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			for _, fv := range br.GetFieldViolations() {
				fields[fv.GetField()] = true
			}
		}
	}
	return fields
}

func TestHealthCheck(t *testing.T) {
	conn := startServer(t, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: v1.CampusService_ServiceDesc.ServiceName})
	if err != nil {
		t.Fatalf("health check: %v", err)
	}
	if resp.Status != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("expected SERVING, got %v", resp.Status)
	}
}
