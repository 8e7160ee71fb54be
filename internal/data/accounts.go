// Package data provides DB models and stores.
package data

import (
	"context" // Used for cancellation and timeouts
	"errors"  // Error handling
	"time"    // Timestamps

	"go.mongodb.org/mongo-driver/v2/bson"  // MongoDB document queries
	"go.mongodb.org/mongo-driver/v2/mongo" // MongoDB driver

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/normalize"
)

// AccountsStore performs account DB operations.
type AccountsStore struct {
	// coll is reference to "accounts" collection in MongoDB
	coll *mongo.Collection
}

// NewAccountsStore returns an AccountsStore using the provided collection.
func NewAccountsStore(coll *mongo.Collection) *AccountsStore {
	return &AccountsStore{coll: coll}
}

// CreateAccount inserts a new account document with hashed password.
func (a *AccountsStore) CreateAccount(ctx context.Context, email, hashedPassword string) (*Account, error) {
	now := time.Now()
	acc := &Account{
		Email:     normalize.Email(email), // unique index is on the normalized form
		Password:  hashedPassword,         // Already hashed by auth.HashPassword()
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := a.coll.InsertOne(ctx, acc)
	if err != nil {
		// Duplicate email (unique constraint violation)
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Conflict("account")
		}
		return nil, err
	}

	// MongoDB auto-generates the _id field; it becomes the user id everywhere else
	acc.ID = result.InsertedID.(bson.ObjectID)
	return acc, nil
}

// GetAccountByEmail finds an account by email.
func (a *AccountsStore) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	var acc Account
	err := a.coll.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&acc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("account")
		}
		return nil, err
	}
	return &acc, nil
}

// GetAccountByID finds an account by ObjectID.
func (a *AccountsStore) GetAccountByID(ctx context.Context, id bson.ObjectID) (*Account, error) {
	var acc Account
	err := a.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&acc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("account")
		}
		return nil, err
	}
	return &acc, nil
}
