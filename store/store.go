// Package store is the MongoDB implementation of the social graph and
// content index contracts consumed by the feed and content services.
// Counters derived from sets (likes, reposts, followers) are kept as the
// set itself; per-entity updates use single-document operators so
// concurrent writers cannot lose increments.
package store

import (
	pkgerr "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"

	"chirp/apperr"
)

type Store struct {
	users    *mongo.Collection
	posts    *mongo.Collection
	hashtags *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		users:    db.Collection("users"),
		posts:    db.Collection("posts"),
		hashtags: db.Collection("hashtags"),
	}
}

// storeErr tags a driver failure as StoreUnavailable; the cause stays
// attached for logging but never reaches a client.
func storeErr(err error, op string) error {
	return apperr.Wrap(apperr.ErrStoreUnavailable, pkgerr.WithStack(err), op)
}
