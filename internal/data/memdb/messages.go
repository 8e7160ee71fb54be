package memdb

import (
	"cmp"
	"context"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
)

func (db *DB) CreateConversation(_ context.Context) (*data.Conversation, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	conv := &data.Conversation{ID: bson.NewObjectID(), CreatedAt: time.Now()}
	db.conversations[conv.ID] = cp(conv)
	return conv, nil
}

func (db *DB) AddParticipant(_ context.Context, conversationID, userID bson.ObjectID) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	k := pair{conversationID, userID}
	if _, ok := db.participants[k]; ok {
		return apperr.Conflict("participant")
	}
	db.participants[k] = &data.Participant{
		ID:             bson.NewObjectID(),
		ConversationID: conversationID,
		UserID:         userID,
		JoinedAt:       time.Now(),
	}
	return nil
}

// participantRows returns matching rows in join order.
func (db *DB) participantRows(keep func(*data.Participant) bool) []*data.Participant {
	var rows []*data.Participant
	for _, p := range db.participants {
		if keep(p) {
			rows = append(rows, p)
		}
	}
	slices.SortFunc(rows, func(a, b *data.Participant) int {
		return cmp.Or(a.JoinedAt.Compare(b.JoinedAt), cmp.Compare(a.ID.Hex(), b.ID.Hex()))
	})
	return rows
}

func (db *DB) ConversationIDsForUser(_ context.Context, userID bson.ObjectID) ([]bson.ObjectID, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows := db.participantRows(func(p *data.Participant) bool { return p.UserID == userID })
	ids := make([]bson.ObjectID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ConversationID)
	}
	return ids, nil
}

func (db *DB) IsParticipant(_ context.Context, conversationID, userID bson.ObjectID) (bool, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	_, ok := db.participants[pair{conversationID, userID}]
	return ok, nil
}

func (db *DB) OtherParticipants(_ context.Context, conversationIDs []bson.ObjectID, userID bson.ObjectID) (map[bson.ObjectID]bson.ObjectID, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make(map[bson.ObjectID]bson.ObjectID)
	rows := db.participantRows(func(p *data.Participant) bool {
		return p.UserID != userID && slices.Contains(conversationIDs, p.ConversationID)
	})
	for _, r := range rows {
		if _, seen := out[r.ConversationID]; !seen {
			out[r.ConversationID] = r.UserID
		}
	}
	return out, nil
}

func (db *DB) InsertMessage(_ context.Context, msg *data.Message) (*data.Message, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	msg.IsRead = false
	msg.ID = bson.NewObjectID()
	db.messages[msg.ID] = cp(msg)
	return msg, nil
}

func (db *DB) GetMessage(_ context.Context, id bson.ObjectID) (*data.Message, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if m, ok := db.messages[id]; ok {
		return cp(m), nil
	}
	return nil, apperr.NotFound("message")
}

func chronological(a, b *data.Message) int {
	return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID.Hex(), b.ID.Hex()))
}

func (db *DB) ListMessages(_ context.Context, conversationID bson.ObjectID) ([]*data.Message, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var out []*data.Message
	for _, m := range db.messages {
		if m.ConversationID == conversationID {
			out = append(out, cp(m))
		}
	}
	slices.SortFunc(out, chronological)
	return out, nil
}

func (db *DB) LastMessage(ctx context.Context, conversationID bson.ObjectID) (*data.Message, error) {
	msgs, _ := db.ListMessages(ctx, conversationID)
	if len(msgs) == 0 {
		return nil, nil
	}
	return msgs[len(msgs)-1], nil
}

func (db *DB) MarkConversationRead(_ context.Context, conversationID, readerID bson.ObjectID) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var n int64
	for _, m := range db.messages {
		if m.ConversationID == conversationID && m.SenderID != readerID && !m.IsRead {
			m.IsRead = true
			n++
		}
	}
	return n, nil
}

func (db *DB) MarkMessageRead(_ context.Context, messageID, readerID bson.ObjectID) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	m, ok := db.messages[messageID]
	if !ok || m.SenderID == readerID || m.IsRead {
		return false, nil
	}
	m.IsRead = true
	return true, nil
}
