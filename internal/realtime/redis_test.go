package realtime

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/logger"
)

// Requires a running Redis; set REDIS_ADDR to run it.
func TestRedisRelayRoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping integration test")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	hub := NewHub(4)
	relay := NewRedisRelay(client, "campus_test:", hub, logger.Nop{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := relay.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	topic := MessagesIn(bson.NewObjectID())
	sub := hub.Subscribe(topic)
	defer sub.Close()

	// Start waited for the subscription, so a single publish is enough
	if err := relay.Publish(ctx, mustChange(t, topic, "via redis")); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	select {
	case c := <-sub.C():
		var r row
		if err := c.Decode(&r); err != nil || r.Content != "via redis" {
			t.Fatalf("decode: %v %+v", err, r)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("change not relayed through redis")
	}

	cancel()
	select {
	case <-relay.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("relay did not stop after cancel")
	}
}

func TestRedisRelayStartFailsWithoutRedis(t *testing.T) {
	// nothing listens on this port
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond, MaxRetries: -1})
	defer client.Close()

	relay := NewRedisRelay(client, "campus_test:", NewHub(4), logger.Nop{})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := relay.Start(ctx); err == nil {
		t.Fatalf("expected Start to fail when redis is unreachable")
	}
	if relay.Done() != nil {
		t.Fatalf("a relay that never started has no done channel")
	}
}
