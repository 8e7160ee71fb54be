package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/realtime"
)

func receive(t *testing.T, v *View) data.Message {
	t.Helper()
	select {
	case m, ok := <-v.Events():
		if !ok {
			t.Fatalf("events closed unexpectedly")
		}
		return m
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for a live message")
	}
	return data.Message{}
}

func TestViewLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, b := f.user(t, "A"), f.user(t, "B")
	conv, _ := f.svc.FindOrCreateConversation(ctx, a, b)
	_, _ = f.svc.SendMessage(ctx, b, conv, "before open")

	v, err := f.svc.OpenView(ctx, a, conv)
	if err != nil {
		t.Fatalf("OpenView: %v", err)
	}
	if v.State() != Open {
		t.Fatalf("state = %s, want open", v.State())
	}
	if h := v.History(); len(h) != 1 || h[0].Content != "before open" {
		t.Fatalf("unexpected history: %+v", h)
	}

	sent, _ := f.svc.SendMessage(ctx, b, conv, "live")
	if m := receive(t, v); m.ID != sent.ID {
		t.Fatalf("got %s want %s", m.ID.Hex(), sent.ID.Hex())
	}
	own, _ := f.svc.SendMessage(ctx, a, conv, "mine")
	if m := receive(t, v); m.ID != own.ID {
		t.Fatalf("own message should also arrive through the feed")
	}

	v.Close()
	v.Close()
	if v.State() != Closed {
		t.Fatalf("state = %s, want closed", v.State())
	}
	if _, ok := <-v.Events(); ok {
		t.Fatalf("events should be closed")
	}
	if n := f.hub.Subscribers(realtime.MessagesIn(conv)); n != 0 {
		t.Fatalf("subscription leaked: %d", n)
	}

	// Close waits for the asynchronous mark-read of the incoming message
	if m, _ := f.db.GetMessage(ctx, sent.ID); !m.IsRead {
		t.Fatalf("incoming live message should be marked read")
	}
	if m, _ := f.db.GetMessage(ctx, own.ID); m.IsRead {
		t.Fatalf("own live message must stay unread")
	}
	if got := v.Messages(); len(got) != 3 {
		t.Fatalf("expected 3 messages in the view, got %d", len(got))
	}
}

func TestViewIgnoresDuplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, b := f.user(t, "A"), f.user(t, "B")
	conv, _ := f.svc.FindOrCreateConversation(ctx, a, b)

	v, err := f.svc.OpenView(ctx, a, conv)
	if err != nil {
		t.Fatalf("OpenView: %v", err)
	}
	defer v.Close()

	msg := data.Message{ID: bson.NewObjectID(), ConversationID: conv, SenderID: a, Content: "once"}
	change, _ := realtime.NewChange(realtime.MessagesIn(conv), realtime.Insert, msg)
	_ = f.hub.Publish(ctx, change)
	_ = f.hub.Publish(ctx, change)
	next, _ := f.svc.SendMessage(ctx, a, conv, "next")

	if m := receive(t, v); m.ID != msg.ID {
		t.Fatalf("first event should be the duplicated message")
	}
	if m := receive(t, v); m.ID != next.ID {
		t.Fatalf("duplicate was delivered twice")
	}
}

func TestViewClosesWithContext(t *testing.T) {
	f := newFixture(t)
	a, b := f.user(t, "A"), f.user(t, "B")
	conv, _ := f.svc.FindOrCreateConversation(context.Background(), a, b)

	ctx, cancel := context.WithCancel(context.Background())
	v, err := f.svc.OpenView(ctx, a, conv)
	if err != nil {
		t.Fatalf("OpenView: %v", err)
	}
	cancel()

	select {
	case _, ok := <-v.Events():
		if ok {
			t.Fatalf("no events expected")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("view did not close on context cancellation")
	}
	v.Close()
}

func TestViewEvictedWhenNotDrained(t *testing.T) {
	f := newFixture(t)
	f.hub = realtime.NewHub(1)
	f.svc.sub, f.svc.pub = f.hub, f.hub
	ctx := context.Background()
	a, b := f.user(t, "A"), f.user(t, "B")
	conv, _ := f.svc.FindOrCreateConversation(ctx, a, b)

	v, err := f.svc.OpenView(ctx, a, conv)
	if err != nil {
		t.Fatalf("OpenView: %v", err)
	}
	defer v.Close()

	// more than the view and hub can buffer together
	for i := 0; i < 40; i++ {
		_, _ = f.svc.SendMessage(ctx, a, conv, "flood")
	}

	deadline := time.After(2 * time.Second)
	for got := 0; ; got++ {
		select {
		case _, ok := <-v.Events():
			if !ok {
				if got >= 40 {
					t.Fatalf("view drained everything; expected eviction")
				}
				return
			}
		case <-deadline:
			t.Fatalf("view was not evicted")
		}
	}
}

func TestOpenViewRequiresParticipant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, b := f.user(t, "A"), f.user(t, "B")
	conv, _ := f.svc.FindOrCreateConversation(ctx, a, b)

	if _, err := f.svc.OpenView(ctx, f.user(t, "C"), conv); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expected permission denied for an outsider, got %v", err)
	}
}
