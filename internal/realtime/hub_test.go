package realtime

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type row struct {
	ID      bson.ObjectID `bson:"_id"`
	Content string        `bson:"content"`
}

func mustChange(t *testing.T, topic Topic, content string) Change {
	t.Helper()
	c, err := NewChange(topic, Insert, row{ID: bson.NewObjectID(), Content: content})
	if err != nil {
		t.Fatalf("NewChange: %v", err)
	}
	return c
}

func TestTopicString(t *testing.T) {
	id := bson.NewObjectID()
	want := "messages:conversation_id=eq." + id.Hex()
	if got := MessagesIn(id).String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestHub_SubscribeAndPublish(t *testing.T) {
	hub := NewHub(4)
	topic := MessagesIn(bson.NewObjectID())

	subA := hub.Subscribe(topic)
	subB := hub.Subscribe(topic)
	other := hub.Subscribe(MessagesIn(bson.NewObjectID()))

	if err := hub.Publish(context.Background(), mustChange(t, topic, "hello")); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	for _, s := range []*Subscription{subA, subB} {
		select {
		case c := <-s.C():
			var r row
			if err := c.Decode(&r); err != nil || r.Content != "hello" {
				t.Fatalf("decode: %v %+v", err, r)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber did not receive change")
		}
	}
	select {
	case <-other.C():
		t.Fatalf("subscriber on another topic received the change")
	default:
	}

	// a closed subscription no longer receives and its channel is closed
	subA.Close()
	subA.Close()
	if _, ok := <-subA.C(); ok {
		t.Fatalf("expected closed channel")
	}
	if n := hub.Subscribers(topic); n != 1 {
		t.Fatalf("expected 1 subscriber left, got %d", n)
	}
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	hub := NewHub(0)
	if err := hub.Publish(context.Background(), mustChange(t, MessagesIn(bson.NewObjectID()), "x")); err != nil {
		t.Fatalf("publishing to an idle topic should not fail: %v", err)
	}
}

func TestHub_SlowSubscriberEvicted(t *testing.T) {
	hub := NewHub(1)
	topic := MessagesIn(bson.NewObjectID())

	slow := hub.Subscribe(topic)
	fast := hub.Subscribe(topic)

	_ = hub.Publish(context.Background(), mustChange(t, topic, "1"))
	<-fast.C()
	// slow never read "1": its buffer is full and the next publish evicts it
	_ = hub.Publish(context.Background(), mustChange(t, topic, "2"))

	<-slow.C() // buffered "1"
	if _, ok := <-slow.C(); ok {
		t.Fatalf("slow subscriber should have been evicted")
	}
	if c, ok := <-fast.C(); !ok || c.Type != Insert {
		t.Fatalf("healthy subscriber should still receive changes")
	}
}
