package main

import (
	"context"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/social"
	v1 "github.com/PaulBabatuyi/campusnet-gRPC/proto/campus/v1"
)

func eventInput(in *v1.EventInput) social.EventInput {
	return social.EventInput{
		Title:       in.GetTitle(),
		Description: in.GetDescription(),
		Location:    in.GetLocation(),
		EventDate:   in.GetEventDate(),
		StartTime:   in.GetStartTime(),
		EndTime:     in.GetEndTime(),
		EventType:   in.GetEventType(),
	}
}

// ListEvents returns the calendar, or a single day when date is set.
func (s *Server) ListEvents(ctx context.Context, req *v1.ListEventsRequest) (*v1.EventList, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	var events []*data.Event
	if date := req.GetDate(); date != "" {
		events, err = s.social.ListEventsOn(ctx, sess, date)
	} else {
		events, err = s.social.ListEvents(ctx, sess)
	}
	if err != nil {
		return nil, err
	}
	return toEventList(events), nil
}

func (s *Server) ListUpcomingEvents(ctx context.Context, req *v1.ListUpcomingEventsRequest) (*v1.EventList, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.social.ListUpcomingEvents(ctx, sess, req.GetLimit())
	if err != nil {
		return nil, err
	}
	return toEventList(events), nil
}

func (s *Server) GetEvent(ctx context.Context, req *v1.EventRequest) (*v1.Event, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID("event_id", req.GetEventId())
	if err != nil {
		return nil, err
	}
	e, err := s.social.GetEvent(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	return toEvent(e), nil
}

func (s *Server) CreateEvent(ctx context.Context, req *v1.EventInput) (*v1.Event, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	e, err := s.social.CreateEvent(ctx, sess, eventInput(req))
	if err != nil {
		return nil, err
	}
	return toEvent(e), nil
}

func (s *Server) UpdateEvent(ctx context.Context, req *v1.UpdateEventRequest) (*v1.Event, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID("event_id", req.GetEventId())
	if err != nil {
		return nil, err
	}
	e, err := s.social.UpdateEvent(ctx, sess, id, eventInput(req.GetEvent()))
	if err != nil {
		return nil, err
	}
	return toEvent(e), nil
}

func (s *Server) DeleteEvent(ctx context.Context, req *v1.EventRequest) (*v1.Empty, error) {
	sess, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID("event_id", req.GetEventId())
	if err != nil {
		return nil, err
	}
	if err := s.social.DeleteEvent(ctx, sess, id); err != nil {
		return nil, err
	}
	return &v1.Empty{}, nil
}
