package messaging

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/realtime"
)

// ViewState is the lifecycle of a View's subscription.
type ViewState int32

const (
	Closed ViewState = iota
	Subscribing
	Open
)

func (s ViewState) String() string {
	switch s {
	case Closed:
		return "closed"
	case Subscribing:
		return "subscribing"
	case Open:
		return "open"
	}
	return fmt.Sprintf("ViewState(%d)", int32(s))
}

const markReadTimeout = 5 * time.Second

// View is one user's live window on a conversation: the history fetched at
// open time plus every message inserted while it stays open. Missed events
// are not replayed; re-open to refetch.
type View struct {
	svc            *Service
	userID         bson.ObjectID
	conversationID bson.ObjectID
	sub            *realtime.Subscription

	state atomic.Int32

	history []data.Message // as fetched at open time

	mu       sync.Mutex
	messages []data.Message
	seen     map[bson.ObjectID]bool

	events   chan data.Message
	stop     chan struct{}
	stopOnce sync.Once
	exited   chan struct{}
	marks    sync.WaitGroup
}

// OpenView subscribes to the conversation before fetching its history so
// that nothing inserted in between is lost, then marks the counterpart's
// messages read. The view closes when ctx is done, on Close, or when the
// hub evicts it for falling behind.
func (s *Service) OpenView(ctx context.Context, userID, conversationID bson.ObjectID) (*View, error) {
	if err := s.requireParticipant(ctx, conversationID, userID); err != nil {
		return nil, err
	}

	v := &View{
		svc:            s,
		userID:         userID,
		conversationID: conversationID,
		seen:           make(map[bson.ObjectID]bool),
		events:         make(chan data.Message, 16),
		stop:           make(chan struct{}),
		exited:         make(chan struct{}),
	}
	v.state.Store(int32(Subscribing))
	v.sub = s.sub.Subscribe(realtime.MessagesIn(conversationID))

	history, err := s.msgs.ListMessages(ctx, conversationID)
	if err != nil {
		v.sub.Close()
		v.state.Store(int32(Closed))
		return nil, fmt.Errorf("list messages: %w", err)
	}
	for _, m := range history {
		v.appendLocked(*m)
	}
	v.history = append([]data.Message(nil), v.messages...)

	if _, err := s.msgs.MarkConversationRead(ctx, conversationID, userID); err != nil {
		s.log.Warn("mark conversation read failed", "conversation_id", conversationID.Hex(), "err", err)
	}

	v.state.Store(int32(Open))
	go v.pump(ctx)
	return v, nil
}

// appendLocked adds m unless its id was seen already. Callers hold mu or own
// v exclusively.
func (v *View) appendLocked(m data.Message) bool {
	if v.seen[m.ID] {
		return false
	}
	v.seen[m.ID] = true
	v.messages = append(v.messages, m)
	return true
}

func (v *View) pump(ctx context.Context) {
	defer func() {
		v.sub.Close()
		v.marks.Wait()
		v.state.Store(int32(Closed))
		close(v.events)
		close(v.exited)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-v.stop:
			return
		case c, ok := <-v.sub.C():
			if !ok {
				v.svc.log.Debug("conversation view evicted", "conversation_id", v.conversationID.Hex())
				return
			}
			if c.Type != realtime.Insert {
				continue
			}
			var m data.Message
			if err := c.Decode(&m); err != nil {
				v.svc.log.Warn("undecodable message change", "topic", c.Topic, "err", err)
				continue
			}

			v.mu.Lock()
			added := v.appendLocked(m)
			v.mu.Unlock()
			if !added {
				continue
			}
			if m.SenderID != v.userID {
				v.markRead(ctx, m.ID)
			}

			select {
			case v.events <- m:
			case <-ctx.Done():
				return
			case <-v.stop:
				return
			}
		}
	}
}

// markRead flags an incoming message read without holding up delivery.
func (v *View) markRead(ctx context.Context, id bson.ObjectID) {
	v.marks.Add(1)
	go func() {
		defer v.marks.Done()
		mctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), markReadTimeout)
		defer cancel()
		if _, err := v.svc.msgs.MarkMessageRead(mctx, id, v.userID); err != nil {
			v.svc.log.Warn("mark message read failed", "message_id", id.Hex(), "err", err)
		}
	}()
}

// History returns the messages fetched when the view opened. Everything
// after them arrives on Events.
func (v *View) History() []data.Message { return v.history }

// Messages returns a snapshot of the ordered message list.
func (v *View) Messages() []data.Message {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]data.Message(nil), v.messages...)
}

// Events delivers messages inserted after the view opened. It is closed
// when the view closes.
func (v *View) Events() <-chan data.Message { return v.events }

func (v *View) State() ViewState { return ViewState(v.state.Load()) }

func (v *View) ConversationID() bson.ObjectID { return v.conversationID }

// Close tears down the subscription and waits until Events is closed.
func (v *View) Close() {
	v.stopOnce.Do(func() { close(v.stop) })
	<-v.exited
}
