package middleware

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/auth"
)

type dummy struct{ email string }

func (d dummy) GetEmail() string { return d.email }

func TestLimiterStore_AllowAndCleanup(t *testing.T) {
	// allow 5 events immediately then the 6th should be rejected
	s := NewLimiterStore(5, 5, time.Hour)
	defer s.Stop()

	key := "test@example.com"
	for i := 0; i < 5; i++ {
		if !s.Allow(key) {
			t.Fatalf("expected allow at iteration %d", i)
		}
	}

	if s.Allow(key) {
		t.Fatalf("expected limiter to block after burst consumed")
	}

	// idle entries are dropped by the cleanup pass
	s.evictIdle(time.Now().Add(time.Second))
	s.mu.Lock()
	_, ok := s.clients[key]
	s.mu.Unlock()
	if ok {
		t.Fatalf("expected idle limiter to be evicted")
	}
	if !s.Allow(key) {
		t.Fatalf("a fresh limiter should allow again")
	}
}

func TestRateLimitInterceptor(t *testing.T) {
	store := NewLimiterStore(60, 1, time.Hour)
	defer store.Stop()

	const method = "/campus.v1.CampusService/SignIn"
	intercept := RateLimitUnaryInterceptor(map[string]Rule{method: {Store: store, Key: KeyByEmail}})
	handler := func(ctx context.Context, req interface{}) (interface{}, error) { return "ok", nil }
	info := &grpc.UnaryServerInfo{FullMethod: method}
	ctx := context.Background()

	if _, err := intercept(ctx, dummy{email: "a@campus.edu"}, info, handler); err != nil {
		t.Fatalf("first call should pass: %v", err)
	}
	_, err := intercept(ctx, dummy{email: "a@campus.edu"}, info, handler)
	st, _ := status.FromError(err)
	if st.Code() != codes.ResourceExhausted {
		t.Fatalf("expected ResourceExhausted, got %v", err)
	}
	var retry *errdetails.RetryInfo
	for _, d := range st.Details() {
		if r, ok := d.(*errdetails.RetryInfo); ok {
			retry = r
		}
	}
	if retry == nil || retry.GetRetryDelay().AsDuration() != time.Second {
		t.Fatalf("expected a one second RetryInfo, got %v", st.Details())
	}

	// another account is not affected
	if _, err := intercept(ctx, dummy{email: "b@campus.edu"}, info, handler); err != nil {
		t.Fatalf("other key should pass: %v", err)
	}
	// unlisted methods are never limited
	other := &grpc.UnaryServerInfo{FullMethod: "/campus.v1.CampusService/ListFeed"}
	for i := 0; i < 3; i++ {
		if _, err := intercept(ctx, dummy{email: "a@campus.edu"}, other, handler); err != nil {
			t.Fatalf("unlisted method limited: %v", err)
		}
	}
}

func TestKeyByEmailIgnoresCaseAndSpaces(t *testing.T) {
	store := NewLimiterStore(1, 1, time.Hour)
	defer store.Stop()

	spellings := []string{"a@campus.edu", "A@campus.edu", "a@CAMPUS.EDU", " a@campus.edu", "A@Campus.Edu "}
	allowed := 0
	for _, e := range spellings {
		if store.Allow(KeyByEmail(context.Background(), dummy{email: e})) {
			allowed++
		}
	}
	if allowed != 1 {
		t.Fatalf("expected one attempt allowed across spellings, got %d", allowed)
	}
	if got := KeyByEmail(context.Background(), dummy{email: "   "}); got != "unknown" {
		t.Fatalf("blank email should fall back to the peer, got %q", got)
	}
}

func TestKeyBySession(t *testing.T) {
	id := bson.NewObjectID()
	ctx := auth.WithSession(context.Background(), &auth.Session{UserID: id})
	if got := KeyBySession(ctx, nil); got != "user:"+id.Hex() {
		t.Fatalf("unexpected key %q", got)
	}
	if got := KeyBySession(context.Background(), nil); got != "unknown" {
		t.Fatalf("expected peer fallback, got %q", got)
	}
}
