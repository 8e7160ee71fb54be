// Package realtime fans out row-level change events to subscribers of a topic.
package realtime

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ChangeType is the kind of row change carried by a Change.
type ChangeType string

const (
	Insert ChangeType = "INSERT"
	Update ChangeType = "UPDATE"
)

// Topic identifies a filtered change feed, e.g. messages where
// conversation_id equals a given id.
type Topic struct {
	Table  string
	Column string
	Value  string
}

// String renders the topic as table:column=eq.value.
func (t Topic) String() string {
	return fmt.Sprintf("%s:%s=eq.%s", t.Table, t.Column, t.Value)
}

// MessagesIn returns the topic of inserts into one conversation.
func MessagesIn(conversationID bson.ObjectID) Topic {
	return Topic{Table: "messages", Column: "conversation_id", Value: conversationID.Hex()}
}

// Change is a single row change. Record holds the BSON-encoded row.
type Change struct {
	Table      string     `bson:"table"`
	Type       ChangeType `bson:"type"`
	Topic      string     `bson:"topic"`
	Record     bson.Raw   `bson:"record"`
	CommitTime time.Time  `bson:"commit_time"`
}

// NewChange encodes row into a Change for topic.
func NewChange(topic Topic, typ ChangeType, row any) (Change, error) {
	raw, err := bson.Marshal(row)
	if err != nil {
		return Change{}, fmt.Errorf("encode %s change: %w", topic.Table, err)
	}
	return Change{
		Table:      topic.Table,
		Type:       typ,
		Topic:      topic.String(),
		Record:     raw,
		CommitTime: time.Now(),
	}, nil
}

// Decode unmarshals the changed row into v.
func (c Change) Decode(v any) error {
	return bson.Unmarshal(c.Record, v)
}

// Publisher accepts changes for delivery. Both Hub and RedisRelay implement it.
type Publisher interface {
	Publish(ctx context.Context, c Change) error
}

const defaultBuffer = 64

// Hub manages active subscriptions keyed by topic.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[int64]*Subscription
	nextID int64
	buffer int
}

// NewHub creates a hub whose subscriptions buffer up to buffer events;
// buffer <= 0 uses the default.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Hub{subs: make(map[string]map[int64]*Subscription), buffer: buffer}
}

// Subscription receives the changes published on one topic until closed.
type Subscription struct {
	hub   *Hub
	topic string
	id    int64
	ch    chan Change
	once  sync.Once
}

// C is closed when the subscription is closed or evicted.
func (s *Subscription) C() <-chan Change { return s.ch }

// Close unregisters the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.hub.remove(s.topic, s.id)
}

// Subscribe registers a new subscription on topic.
func (h *Hub) Subscribe(topic Topic) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := topic.String()
	if _, ok := h.subs[key]; !ok {
		h.subs[key] = make(map[int64]*Subscription)
	}
	h.nextID++
	s := &Subscription{hub: h, topic: key, id: h.nextID, ch: make(chan Change, h.buffer)}
	h.subs[key][s.id] = s
	return s
}

func (h *Hub) remove(topic string, id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.subs[topic]
	if !ok {
		return
	}
	if s, ok := conns[id]; ok {
		delete(conns, id)
		s.once.Do(func() { close(s.ch) })
	}
	if len(conns) == 0 {
		delete(h.subs, topic)
	}
}

// Publish delivers c to every subscriber of c.Topic without blocking.
// Subscribers whose buffer is full are evicted so one stuck reader cannot
// hold up the others. Publishing to a topic nobody listens on is not an error.
func (h *Hub) Publish(_ context.Context, c Change) error {
	h.mu.RLock()
	var stale []int64
	for id, s := range h.subs[c.Topic] {
		select {
		case s.ch <- c:
		default:
			stale = append(stale, id)
		}
	}
	h.mu.RUnlock()

	for _, id := range stale {
		h.remove(c.Topic, id)
	}
	return nil
}

// Subscribers returns the number of live subscriptions on topic.
func (h *Hub) Subscribers(topic Topic) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[topic.String()])
}
