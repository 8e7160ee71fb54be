// Package messaging implements direct conversations between two users:
// conversation resolution, sending, read receipts, the conversation list and
// live conversation views.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/logger"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/normalize"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/realtime"
)

type ConversationStore interface {
	CreateConversation(ctx context.Context) (*data.Conversation, error)
	AddParticipant(ctx context.Context, conversationID, userID bson.ObjectID) error
	ConversationIDsForUser(ctx context.Context, userID bson.ObjectID) ([]bson.ObjectID, error)
	IsParticipant(ctx context.Context, conversationID, userID bson.ObjectID) (bool, error)
	OtherParticipants(ctx context.Context, conversationIDs []bson.ObjectID, userID bson.ObjectID) (map[bson.ObjectID]bson.ObjectID, error)
}

type MessageStore interface {
	InsertMessage(ctx context.Context, msg *data.Message) (*data.Message, error)
	GetMessage(ctx context.Context, id bson.ObjectID) (*data.Message, error)
	ListMessages(ctx context.Context, conversationID bson.ObjectID) ([]*data.Message, error)
	LastMessage(ctx context.Context, conversationID bson.ObjectID) (*data.Message, error)
	MarkConversationRead(ctx context.Context, conversationID, readerID bson.ObjectID) (int64, error)
	MarkMessageRead(ctx context.Context, messageID, readerID bson.ObjectID) (bool, error)
}

type ProfileStore interface {
	GetProfile(ctx context.Context, id bson.ObjectID) (*data.Profile, error)
	GetProfiles(ctx context.Context, ids []bson.ObjectID) ([]*data.Profile, error)
}

// Subscriber opens local subscriptions on the change feed.
type Subscriber interface {
	Subscribe(topic realtime.Topic) *realtime.Subscription
}

// Service is the messaging API used by the transport.
type Service struct {
	convs    ConversationStore
	msgs     MessageStore
	profiles ProfileStore
	pub      realtime.Publisher
	sub      Subscriber
	log      logger.Logger
	now      func() time.Time
}

func NewService(convs ConversationStore, msgs MessageStore, profiles ProfileStore, pub realtime.Publisher, sub Subscriber, log logger.Logger) *Service {
	return &Service{
		convs:    convs,
		msgs:     msgs,
		profiles: profiles,
		pub:      pub,
		sub:      sub,
		log:      log,
		now:      time.Now,
	}
}

// FindOrCreateConversation returns the conversation shared by the two users,
// creating it (self first, then other) when there is none. Two concurrent
// first calls can both create one; nothing on the server prevents it.
func (s *Service) FindOrCreateConversation(ctx context.Context, currentUserID, otherUserID bson.ObjectID) (bson.ObjectID, error) {
	if currentUserID.IsZero() || otherUserID.IsZero() {
		return bson.NilObjectID, apperr.NewValidationError("both users are required")
	}
	if currentUserID == otherUserID {
		return bson.NilObjectID, apperr.NewValidationError("cannot start a conversation with yourself",
			apperr.FieldError{Field: "user_id", Error: "must be another user"})
	}

	ids, err := s.convs.ConversationIDsForUser(ctx, currentUserID)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("list conversations: %w", err)
	}
	for _, id := range ids {
		ok, err := s.convs.IsParticipant(ctx, id, otherUserID)
		if err != nil {
			return bson.NilObjectID, fmt.Errorf("check participant: %w", err)
		}
		if ok {
			return id, nil
		}
	}

	conv, err := s.convs.CreateConversation(ctx)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("create conversation: %w", err)
	}
	for _, uid := range []bson.ObjectID{currentUserID, otherUserID} {
		if err := s.convs.AddParticipant(ctx, conv.ID, uid); err != nil {
			return bson.NilObjectID, fmt.Errorf("add participant: %w", err)
		}
	}
	s.log.Debug("conversation created", "conversation_id", conv.ID.Hex())
	return conv.ID, nil
}

func (s *Service) requireParticipant(ctx context.Context, conversationID, userID bson.ObjectID) error {
	ok, err := s.convs.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return fmt.Errorf("check participant: %w", err)
	}
	if !ok {
		return apperr.Forbidden("not a participant of this conversation")
	}
	return nil
}

// SendMessage stores a message and announces it on the conversation topic.
// The sender sees it through the same realtime event as the recipient.
func (s *Service) SendMessage(ctx context.Context, senderID, conversationID bson.ObjectID, content string) (*data.Message, error) {
	content = normalize.Content(content)
	if content == "" {
		return nil, apperr.NewValidationError("message is empty",
			apperr.FieldError{Field: "content", Error: "this field cannot be blank"})
	}
	if err := s.requireParticipant(ctx, conversationID, senderID); err != nil {
		return nil, err
	}

	msg, err := s.msgs.InsertMessage(ctx, &data.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		CreatedAt:      s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	// the row is stored; a failed publish only delays delivery until the
	// next fetch
	change, err := realtime.NewChange(realtime.MessagesIn(conversationID), realtime.Insert, msg)
	if err == nil {
		err = s.pub.Publish(ctx, change)
	}
	if err != nil {
		s.log.Warn("publish message failed", "message_id", msg.ID.Hex(), "err", err)
	}
	return msg, nil
}

// MarkConversationRead marks every message from the counterpart as read.
func (s *Service) MarkConversationRead(ctx context.Context, userID, conversationID bson.ObjectID) (int64, error) {
	if err := s.requireParticipant(ctx, conversationID, userID); err != nil {
		return 0, err
	}
	return s.msgs.MarkConversationRead(ctx, conversationID, userID)
}

// MarkMessageRead marks a single message read; it is a no-op for the
// reader's own messages.
func (s *Service) MarkMessageRead(ctx context.Context, userID, messageID bson.ObjectID) (bool, error) {
	msg, err := s.msgs.GetMessage(ctx, messageID)
	if err != nil {
		return false, err
	}
	if err := s.requireParticipant(ctx, msg.ConversationID, userID); err != nil {
		return false, err
	}
	return s.msgs.MarkMessageRead(ctx, messageID, userID)
}

// Summary is one row of the conversation list.
type Summary struct {
	ConversationID bson.ObjectID
	Other          *data.Profile
	LastMessage    *data.Message // nil when the conversation is empty
	Unread         bool
}

// ListConversations returns the user's conversations, most recent message
// first. Conversations without messages come last; those whose counterpart
// or profile is missing are left out.
func (s *Service) ListConversations(ctx context.Context, userID bson.ObjectID) ([]Summary, error) {
	ids, err := s.convs.ConversationIDsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	others, err := s.convs.OtherParticipants(ctx, ids, userID)
	if err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}
	otherIDs := make([]bson.ObjectID, 0, len(others))
	for _, id := range others {
		otherIDs = append(otherIDs, id)
	}
	profs, err := s.profiles.GetProfiles(ctx, otherIDs)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	byID := make(map[bson.ObjectID]*data.Profile, len(profs))
	for _, p := range profs {
		byID[p.ID] = p
	}

	out := make([]Summary, 0, len(ids))
	for _, convID := range ids {
		otherID, ok := others[convID]
		if !ok {
			continue
		}
		prof, ok := byID[otherID]
		if !ok {
			continue
		}
		// one query per conversation
		last, err := s.msgs.LastMessage(ctx, convID)
		if err != nil {
			return nil, fmt.Errorf("last message: %w", err)
		}
		out = append(out, Summary{
			ConversationID: convID,
			Other:          prof,
			LastMessage:    last,
			Unread:         last != nil && !last.IsRead && last.SenderID != userID,
		})
	}

	slices.SortStableFunc(out, func(a, b Summary) int {
		return lastAt(b).Compare(lastAt(a))
	})
	return out, nil
}

// lastAt is the sort key of a summary; empty conversations sort as the zero
// time, after every real message.
func lastAt(s Summary) time.Time {
	if s.LastMessage == nil {
		return time.Time{}
	}
	return s.LastMessage.CreatedAt
}

// Detail is a conversation header plus its full history.
type Detail struct {
	ConversationID bson.ObjectID
	Other          *data.Profile // nil when the counterpart has no profile
	Messages       []*data.Message
}

func (s *Service) GetConversation(ctx context.Context, userID, conversationID bson.ObjectID) (*Detail, error) {
	if err := s.requireParticipant(ctx, conversationID, userID); err != nil {
		return nil, err
	}

	d := &Detail{ConversationID: conversationID}
	others, err := s.convs.OtherParticipants(ctx, []bson.ObjectID{conversationID}, userID)
	if err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}
	if otherID, ok := others[conversationID]; ok {
		prof, err := s.profiles.GetProfile(ctx, otherID)
		if err != nil && !isNotFound(err) {
			return nil, fmt.Errorf("load profile: %w", err)
		}
		d.Other = prof
	}

	if d.Messages, err = s.msgs.ListMessages(ctx, conversationID); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return d, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, apperr.ErrNotFound)
}
