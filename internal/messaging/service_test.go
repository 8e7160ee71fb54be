package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data/memdb"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/logger"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/realtime"
)

type fixture struct {
	db  *memdb.DB
	hub *realtime.Hub
	svc *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := memdb.Open()
	hub := realtime.NewHub(0)
	return &fixture{db: db, hub: hub, svc: NewService(db, db, db, hub, hub, logger.Nop{})}
}

func (f *fixture) user(t *testing.T, name string) bson.ObjectID {
	t.Helper()
	id := bson.NewObjectID()
	if err := f.db.CreateProfile(context.Background(), &data.Profile{ID: id, FullName: name, Role: "student"}); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	return id
}

// countingMessages records whether any message store method was reached.
type countingMessages struct {
	MessageStore
	calls int
}

func (c *countingMessages) InsertMessage(ctx context.Context, msg *data.Message) (*data.Message, error) {
	c.calls++
	return c.MessageStore.InsertMessage(ctx, msg)
}

type countingConvs struct {
	ConversationStore
	calls int
}

func (c *countingConvs) IsParticipant(ctx context.Context, conv, user bson.ObjectID) (bool, error) {
	c.calls++
	return c.ConversationStore.IsParticipant(ctx, conv, user)
}

func TestFindOrCreateConversationIsStable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, b := f.user(t, "A"), f.user(t, "B")

	first, err := f.svc.FindOrCreateConversation(ctx, a, b)
	if err != nil {
		t.Fatalf("FindOrCreateConversation: %v", err)
	}
	second, err := f.svc.FindOrCreateConversation(ctx, a, b)
	if err != nil {
		t.Fatalf("FindOrCreateConversation (again): %v", err)
	}
	reverse, _ := f.svc.FindOrCreateConversation(ctx, b, a)
	if first != second || first != reverse {
		t.Fatalf("expected one conversation, got %s %s %s", first.Hex(), second.Hex(), reverse.Hex())
	}

	if _, err := f.svc.FindOrCreateConversation(ctx, a, a); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for self conversation, got %v", err)
	}
	if _, err := f.svc.FindOrCreateConversation(ctx, a, bson.NilObjectID); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for missing user, got %v", err)
	}
}

func TestSendMessageRejectsBlankBeforeStore(t *testing.T) {
	f := newFixture(t)
	msgs := &countingMessages{MessageStore: f.db}
	convs := &countingConvs{ConversationStore: f.db}
	svc := NewService(convs, msgs, f.db, f.hub, f.hub, logger.Nop{})

	for _, content := range []string{"", "   ", "\n\t "} {
		_, err := svc.SendMessage(context.Background(), bson.NewObjectID(), bson.NewObjectID(), content)
		if !apperr.IsValidation(err) {
			t.Fatalf("content %q: expected validation error, got %v", content, err)
		}
	}
	if msgs.calls != 0 || convs.calls != 0 {
		t.Fatalf("store was called for blank content: messages=%d conversations=%d", msgs.calls, convs.calls)
	}
}

func TestSendMessageRequiresParticipant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, b, outsider := f.user(t, "A"), f.user(t, "B"), f.user(t, "C")
	conv, _ := f.svc.FindOrCreateConversation(ctx, a, b)

	if _, err := f.svc.SendMessage(ctx, outsider, conv, "hi"); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expected permission denied, got %v", err)
	}
	msg, err := f.svc.SendMessage(ctx, a, conv, "  hello  ")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if msg.Content != "hello" || msg.IsRead {
		t.Fatalf("unexpected stored message: %+v", msg)
	}
}

func TestMarkConversationReadLeavesOwnMessages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, b := f.user(t, "A"), f.user(t, "B")
	conv, _ := f.svc.FindOrCreateConversation(ctx, a, b)

	own, _ := f.svc.SendMessage(ctx, a, conv, "from a")
	theirs1, _ := f.svc.SendMessage(ctx, b, conv, "from b")
	theirs2, _ := f.svc.SendMessage(ctx, b, conv, "from b again")

	n, err := f.svc.MarkConversationRead(ctx, a, conv)
	if err != nil || n != 2 {
		t.Fatalf("MarkConversationRead: n=%d err=%v", n, err)
	}
	for _, id := range []bson.ObjectID{theirs1.ID, theirs2.ID} {
		if m, _ := f.db.GetMessage(ctx, id); !m.IsRead {
			t.Fatalf("counterpart message %s should be read", id.Hex())
		}
	}
	if m, _ := f.db.GetMessage(ctx, own.ID); m.IsRead {
		t.Fatalf("own message must stay unread")
	}

	if ok, _ := f.svc.MarkMessageRead(ctx, a, own.ID); ok {
		t.Fatalf("marking an own message read should be a no-op")
	}
}

func TestListConversationsOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	me := f.user(t, "Me")
	older, newer, empty := f.user(t, "Older"), f.user(t, "Newer"), f.user(t, "Empty")

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	send := func(other bson.ObjectID, at time.Time) bson.ObjectID {
		conv, err := f.svc.FindOrCreateConversation(ctx, me, other)
		if err != nil {
			t.Fatalf("FindOrCreateConversation: %v", err)
		}
		if at.IsZero() {
			return conv
		}
		f.svc.now = func() time.Time { return at }
		if _, err := f.svc.SendMessage(ctx, other, conv, "hi"); err != nil {
			t.Fatalf("SendMessage: %v", err)
		}
		return conv
	}
	emptyConv := send(empty, time.Time{})
	olderConv := send(older, base)
	newerConv := send(newer, base.Add(time.Hour))

	// a conversation whose counterpart has no profile is skipped
	ghost := bson.NewObjectID()
	_, _ = f.svc.FindOrCreateConversation(ctx, me, ghost)

	list, err := f.svc.ListConversations(ctx, me)
	if err != nil {
		t.Fatalf("ListConversations: %v", err)
	}
	want := []bson.ObjectID{newerConv, olderConv, emptyConv}
	if len(list) != len(want) {
		t.Fatalf("expected %d conversations, got %d", len(want), len(list))
	}
	for i, s := range list {
		if s.ConversationID != want[i] {
			t.Fatalf("position %d: got %s want %s", i, s.ConversationID.Hex(), want[i].Hex())
		}
	}
	if !list[0].Unread || list[2].Unread || list[2].LastMessage != nil {
		t.Fatalf("unexpected unread flags: %+v", list)
	}
}

// X sends Y the first message; only Y sees it as unread until Y opens the
// conversation.
func TestFirstMessageScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	x, y := f.user(t, "X"), f.user(t, "Y")

	conv, err := f.svc.FindOrCreateConversation(ctx, x, y)
	if err != nil {
		t.Fatalf("FindOrCreateConversation: %v", err)
	}
	if _, err := f.svc.SendMessage(ctx, x, conv, "hello Y"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	for _, u := range []bson.ObjectID{x, y} {
		ids, _ := f.db.ConversationIDsForUser(ctx, u)
		if len(ids) != 1 || ids[0] != conv {
			t.Fatalf("user %s should have exactly one conversation, got %v", u.Hex(), ids)
		}
	}
	if msgs, _ := f.db.ListMessages(ctx, conv); len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}

	xs, _ := f.svc.ListConversations(ctx, x)
	ys, _ := f.svc.ListConversations(ctx, y)
	if len(xs) != 1 || xs[0].Other.ID != y || xs[0].Unread {
		t.Fatalf("X's list: %+v", xs)
	}
	if len(ys) != 1 || ys[0].Other.ID != x || !ys[0].Unread {
		t.Fatalf("Y's list: %+v", ys)
	}

	view, err := f.svc.OpenView(ctx, y, conv)
	if err != nil {
		t.Fatalf("OpenView: %v", err)
	}
	view.Close()

	ys, _ = f.svc.ListConversations(ctx, y)
	if ys[0].Unread {
		t.Fatalf("opening the conversation should clear unread for Y")
	}
}

func TestGetConversation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, b := f.user(t, "A"), f.user(t, "B")
	conv, _ := f.svc.FindOrCreateConversation(ctx, a, b)
	_, _ = f.svc.SendMessage(ctx, a, conv, "one")
	_, _ = f.svc.SendMessage(ctx, b, conv, "two")

	d, err := f.svc.GetConversation(ctx, a, conv)
	if err != nil {
		t.Fatalf("GetConversation: %v", err)
	}
	if d.Other == nil || d.Other.ID != b {
		t.Fatalf("unexpected counterpart: %+v", d.Other)
	}
	if len(d.Messages) != 2 || d.Messages[0].Content != "one" {
		t.Fatalf("unexpected history: %+v", d.Messages)
	}

	if _, err := f.svc.GetConversation(ctx, f.user(t, "C"), conv); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expected permission denied, got %v", err)
	}
}
