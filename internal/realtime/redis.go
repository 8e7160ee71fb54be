package realtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/logger"
)

// RedisRelay publishes changes through Redis pub/sub so that every API
// instance can deliver them to its own local subscribers.
type RedisRelay struct {
	client *redis.Client
	prefix string
	local  *Hub
	log    logger.Logger
	done   chan struct{}
}

func NewRedisRelay(client *redis.Client, prefix string, local *Hub, log logger.Logger) *RedisRelay {
	return &RedisRelay{client: client, prefix: prefix, local: local, log: log}
}

// Publish sends c to the Redis channel <prefix><topic>. Delivery to local
// subscribers happens when the relay receives it back.
func (r *RedisRelay) Publish(ctx context.Context, c Change) error {
	payload, err := bson.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode change: %w", err)
	}
	if err := r.client.Publish(ctx, r.prefix+c.Topic, payload).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Start pattern-subscribes to every relay channel and returns once Redis
// has confirmed the subscription, so nothing published afterwards is missed.
// Received changes are republished into the local hub until ctx is
// cancelled.
func (r *RedisRelay) Start(ctx context.Context) error {
	pubsub := r.client.PSubscribe(ctx, r.prefix+"*")
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}
	r.log.Info("realtime relay subscribed", "pattern", r.prefix+"*")

	r.done = make(chan struct{})
	go r.run(ctx, pubsub)
	return nil
}

// Done is closed when the relay stops delivering. It is nil before Start.
func (r *RedisRelay) Done() <-chan struct{} {
	return r.done
}

func (r *RedisRelay) run(ctx context.Context, pubsub *redis.PubSub) {
	defer close(r.done)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				r.log.Error("realtime relay channel closed", "pattern", r.prefix+"*")
				return
			}
			var c Change
			if err := bson.Unmarshal([]byte(msg.Payload), &c); err != nil {
				r.log.Warn("dropping undecodable change", "channel", msg.Channel, "err", err)
				continue
			}
			if c.Topic == "" {
				c.Topic = strings.TrimPrefix(msg.Channel, r.prefix)
			}
			_ = r.local.Publish(ctx, c)
		}
	}
}
