package memdb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/normalize"
)

func (db *DB) CreateAccount(_ context.Context, email, hashedPassword string) (*data.Account, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	email = normalize.Email(email)
	for _, a := range db.accounts {
		if a.Email == email {
			return nil, apperr.Conflict("account")
		}
	}
	now := time.Now()
	acc := &data.Account{ID: bson.NewObjectID(), Email: email, Password: hashedPassword, CreatedAt: now, UpdatedAt: now}
	db.accounts[acc.ID] = acc
	return cp(acc), nil
}

func (db *DB) GetAccountByEmail(_ context.Context, email string) (*data.Account, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	email = normalize.Email(email)
	for _, a := range db.accounts {
		if a.Email == email {
			return cp(a), nil
		}
	}
	return nil, apperr.NotFound("account")
}

func (db *DB) GetAccountByID(_ context.Context, id bson.ObjectID) (*data.Account, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if a, ok := db.accounts[id]; ok {
		return cp(a), nil
	}
	return nil, apperr.NotFound("account")
}

func (db *DB) CreateSession(_ context.Context, sess *data.Session) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.sessions[sess.ID]; ok {
		return apperr.Conflict("session")
	}
	db.sessions[sess.ID] = cp(sess)
	return nil
}

// GetSession treats expired rows as gone, like the TTL index does eventually.
func (db *DB) GetSession(_ context.Context, id string) (*data.Session, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	s, ok := db.sessions[id]
	if !ok || time.Now().After(s.ExpiresAt) {
		return nil, apperr.NotFound("session")
	}
	return cp(s), nil
}

func (db *DB) DeleteSession(_ context.Context, id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	delete(db.sessions, id)
	return nil
}

func (db *DB) GrantRole(_ context.Context, userID bson.ObjectID, role string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	k := pair{a: userID}
	if db.roles[k] == nil {
		db.roles[k] = make(map[string]bool)
	}
	db.roles[k][role] = true
	return nil
}

func (db *DB) HasRole(_ context.Context, userID bson.ObjectID, role string) (bool, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.roles[pair{a: userID}][role], nil
}
