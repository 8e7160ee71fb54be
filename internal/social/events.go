package social

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/auth"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/validation"
)

const (
	DateLayout = "2006-01-02"

	DefaultUpcomingLimit = 5
)

// EventInput is the admin form for calendar events.
type EventInput struct {
	Title       string `json:"title" validate:"notblank,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Location    string `json:"location" validate:"max=200"`
	EventDate   string `json:"event_date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"omitempty,datetime=15:04"`
	EventType   string `json:"event_type" validate:"required,oneof=official sports academic cultural other"`
}

func (in EventInput) event(id bson.ObjectID) *data.Event {
	return &data.Event{
		ID:          id,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		EventDate:   in.EventDate,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		EventType:   in.EventType,
	}
}

// ListEvents returns the whole calendar by date.
func (s *Service) ListEvents(ctx context.Context, sess *auth.Session) ([]*data.Event, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	return s.st.Events.ListEvents(ctx)
}

// ListUpcomingEvents returns events from today on, DefaultUpcomingLimit
// when limit is not positive.
func (s *Service) ListUpcomingEvents(ctx context.Context, sess *auth.Session, limit int64) ([]*data.Event, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	return s.st.Events.ListEventsFrom(ctx, s.now().Format(DateLayout), limit)
}

// ListEventsOn returns the events of one calendar day.
func (s *Service) ListEventsOn(ctx context.Context, sess *auth.Session, date string) ([]*data.Event, error) {
	events, err := s.ListEvents(ctx, sess)
	if err != nil {
		return nil, err
	}
	return EventsOn(events, date), nil
}

// EventsOn filters events down to those on date (YYYY-MM-DD), keeping order.
func EventsOn(events []*data.Event, date string) []*data.Event {
	var out []*data.Event
	for _, ev := range events {
		if ev.EventDate == date {
			out = append(out, ev)
		}
	}
	return out
}

func (s *Service) GetEvent(ctx context.Context, sess *auth.Session, id bson.ObjectID) (*data.Event, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	return s.st.Events.GetEvent(ctx, id)
}

func (s *Service) CreateEvent(ctx context.Context, sess *auth.Session, in EventInput) (*data.Event, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	ev := in.event(bson.NilObjectID)
	ev.CreatedBy = sess.UserID
	return s.st.Events.CreateEvent(ctx, ev)
}

func (s *Service) UpdateEvent(ctx context.Context, sess *auth.Session, id bson.ObjectID, in EventInput) (*data.Event, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := s.st.Events.UpdateEvent(ctx, in.event(id)); err != nil {
		return nil, err
	}
	return s.st.Events.GetEvent(ctx, id)
}

func (s *Service) DeleteEvent(ctx context.Context, sess *auth.Session, id bson.ObjectID) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	return s.st.Events.DeleteEvent(ctx, id)
}
