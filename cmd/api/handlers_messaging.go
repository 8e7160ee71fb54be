package main

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/PaulBabatuyi/campusnet-gRPC/proto/campus/v1"
)

// FindOrCreateConversation returns the direct conversation between the
// caller and user_id, creating it on first contact.
func (s *Server) FindOrCreateConversation(ctx context.Context, req *v1.UserRequest) (*v1.ConversationRef, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	other, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	id, err := s.msgs.FindOrCreateConversation(ctx, sess.UserID, other)
	if err != nil {
		return nil, err
	}
	return &v1.ConversationRef{ConversationId: id.Hex()}, nil
}

// SendMessage stores the message and fans it out to open conversation
// streams.
func (s *Server) SendMessage(ctx context.Context, req *v1.SendMessageRequest) (*v1.Message, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	convID, err := parseID("conversation_id", req.GetConversationId())
	if err != nil {
		return nil, err
	}
	msg, err := s.msgs.SendMessage(ctx, sess.UserID, convID, req.GetContent())
	if err != nil {
		return nil, err
	}
	return toMessage(msg), nil
}

func (s *Server) MarkConversationRead(ctx context.Context, req *v1.ConversationRequest) (*v1.MarkReadResponse, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	convID, err := parseID("conversation_id", req.GetConversationId())
	if err != nil {
		return nil, err
	}
	n, err := s.msgs.MarkConversationRead(ctx, sess.UserID, convID)
	if err != nil {
		return nil, err
	}
	return &v1.MarkReadResponse{Updated: n}, nil
}

func (s *Server) MarkMessageRead(ctx context.Context, req *v1.MessageRequest) (*v1.MarkReadResponse, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	msgID, err := parseID("message_id", req.GetMessageId())
	if err != nil {
		return nil, err
	}
	ok, err := s.msgs.MarkMessageRead(ctx, sess.UserID, msgID)
	if err != nil {
		return nil, err
	}
	resp := &v1.MarkReadResponse{}
	if ok {
		resp.Updated = 1
	}
	return resp, nil
}

func (s *Server) GetConversation(ctx context.Context, req *v1.ConversationRequest) (*v1.ConversationDetail, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	convID, err := parseID("conversation_id", req.GetConversationId())
	if err != nil {
		return nil, err
	}
	d, err := s.msgs.GetConversation(ctx, sess.UserID, convID)
	if err != nil {
		return nil, err
	}
	out := &v1.ConversationDetail{
		ConversationId: d.ConversationID.Hex(),
		Other:          toProfile(d.Other),
		Messages:       make([]*v1.Message, 0, len(d.Messages)),
	}
	for _, m := range d.Messages {
		out.Messages = append(out.Messages, toMessage(m))
	}
	return out, nil
}

// ListConversations streams the caller's conversation list, most recent
// first.
func (s *Server) ListConversations(_ *v1.Empty, stream grpc.ServerStreamingServer[v1.ConversationSummary]) error {
	ctx := stream.Context()
	sess, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	summaries, err := s.msgs.ListConversations(ctx, sess.UserID)
	if err != nil {
		return err
	}
	for _, sum := range summaries {
		if err := stream.Send(&v1.ConversationSummary{
			ConversationId: sum.ConversationID.Hex(),
			Other:          toProfile(sum.Other),
			LastMessage:    toMessage(sum.LastMessage),
			Unread:         sum.Unread,
		}); err != nil {
			return err
		}
	}
	return nil
}

// ListMessages streams a conversation's history in chronological order.
func (s *Server) ListMessages(req *v1.ConversationRequest, stream grpc.ServerStreamingServer[v1.Message]) error {
	ctx := stream.Context()
	sess, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	convID, err := parseID("conversation_id", req.GetConversationId())
	if err != nil {
		return err
	}
	d, err := s.msgs.GetConversation(ctx, sess.UserID, convID)
	if err != nil {
		return err
	}
	for _, m := range d.Messages {
		if err := stream.Send(toMessage(m)); err != nil {
			return err
		}
	}
	return nil
}

// OpenConversation streams the history of a conversation and then every
// message inserted into it until the client goes away. A stream that falls
// behind is ended with Unavailable so the client can reopen it.
func (s *Server) OpenConversation(req *v1.ConversationRequest, stream grpc.ServerStreamingServer[v1.ConversationEvent]) error {
	ctx := stream.Context()
	sess, err := sessionFrom(ctx)
	if err != nil {
		return err
	}
	convID, err := parseID("conversation_id", req.GetConversationId())
	if err != nil {
		return err
	}

	view, err := s.msgs.OpenView(ctx, sess.UserID, convID)
	if err != nil {
		return err
	}
	defer view.Close()

	history := view.History()
	for i := range history {
		if err := stream.Send(&v1.ConversationEvent{Message: toMessage(&history[i])}); err != nil {
			return err
		}
	}

	for m := range view.Events() {
		if err := stream.Send(&v1.ConversationEvent{Message: toMessage(&m), Live: true}); err != nil {
			return err
		}
	}
	if ctx.Err() != nil {
		return nil
	}
	s.log.Warn("conversation stream ended by hub", "conversation_id", convID.Hex(), "user_id", sess.UserID.Hex())
	return status.Error(codes.Unavailable, "conversation stream fell behind; reopen it")
}
