package data

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
)

// EventsStore provides campus calendar operations.
type EventsStore struct {
	coll *mongo.Collection
}

func NewEventsStore(coll *mongo.Collection) *EventsStore {
	return &EventsStore{coll: coll}
}

var eventOrder = bson.D{{Key: "event_date", Value: 1}, {Key: "start_time", Value: 1}}

func (e *EventsStore) CreateEvent(ctx context.Context, ev *Event) (*Event, error) {
	ev.CreatedAt = time.Now()
	result, err := e.coll.InsertOne(ctx, ev)
	if err != nil {
		return nil, err
	}
	ev.ID = result.InsertedID.(bson.ObjectID)
	return ev, nil
}

// UpdateEvent overwrites the editable fields of ev.ID; creator and creation
// time are kept.
func (e *EventsStore) UpdateEvent(ctx context.Context, ev *Event) error {
	set := bson.M{
		"title":       ev.Title,
		"description": ev.Description,
		"location":    ev.Location,
		"event_date":  ev.EventDate,
		"start_time":  ev.StartTime,
		"end_time":    ev.EndTime,
		"event_type":  ev.EventType,
	}
	res, err := e.coll.UpdateOne(ctx, bson.M{"_id": ev.ID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("event")
	}
	return nil
}

func (e *EventsStore) DeleteEvent(ctx context.Context, id bson.ObjectID) error {
	res, err := e.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("event")
	}
	return nil
}

func (e *EventsStore) GetEvent(ctx context.Context, id bson.ObjectID) (*Event, error) {
	var ev Event
	if err := e.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ev); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("event")
		}
		return nil, err
	}
	return &ev, nil
}

// ListEvents returns every event by date ascending.
func (e *EventsStore) ListEvents(ctx context.Context) ([]*Event, error) {
	return e.find(ctx, bson.M{}, options.Find().SetSort(eventOrder))
}

// ListEventsFrom returns events on or after fromDate (YYYY-MM-DD).
func (e *EventsStore) ListEventsFrom(ctx context.Context, fromDate string, limit int64) ([]*Event, error) {
	opts := options.Find().SetSort(eventOrder)
	if limit > 0 {
		opts.SetLimit(limit)
	}
	// dates are stored as YYYY-MM-DD so string comparison is date comparison
	return e.find(ctx, bson.M{"event_date": bson.M{"$gte": fromDate}}, opts)
}

func (e *EventsStore) find(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder) ([]*Event, error) {
	cursor, err := e.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*Event
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
