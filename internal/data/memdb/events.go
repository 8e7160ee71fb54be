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

func (db *DB) CreateEvent(_ context.Context, ev *data.Event) (*data.Event, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	ev.ID = bson.NewObjectID()
	ev.CreatedAt = time.Now()
	db.events[ev.ID] = cp(ev)
	return ev, nil
}

func (db *DB) UpdateEvent(_ context.Context, ev *data.Event) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	cur, ok := db.events[ev.ID]
	if !ok {
		return apperr.NotFound("event")
	}
	upd := cp(ev)
	upd.CreatedBy, upd.CreatedAt = cur.CreatedBy, cur.CreatedAt
	db.events[ev.ID] = upd
	return nil
}

func (db *DB) DeleteEvent(_ context.Context, id bson.ObjectID) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.events[id]; !ok {
		return apperr.NotFound("event")
	}
	delete(db.events, id)
	return nil
}

func (db *DB) GetEvent(_ context.Context, id bson.ObjectID) (*data.Event, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if ev, ok := db.events[id]; ok {
		return cp(ev), nil
	}
	return nil, apperr.NotFound("event")
}

func (db *DB) ListEvents(ctx context.Context) ([]*data.Event, error) {
	return db.ListEventsFrom(ctx, "", 0)
}

func (db *DB) ListEventsFrom(_ context.Context, fromDate string, limit int64) ([]*data.Event, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var out []*data.Event
	for _, ev := range db.events {
		if ev.EventDate >= fromDate {
			out = append(out, cp(ev))
		}
	}
	slices.SortFunc(out, func(a, b *data.Event) int {
		return cmp.Or(cmp.Compare(a.EventDate, b.EventDate), cmp.Compare(a.StartTime, b.StartTime))
	})
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}
