package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"chirp/apperr"
	"chirp/models"
)

// Relationships resolves the viewer's follow/block/mute edges. Pure
// lookup; NotFound when the viewer is absent, deactivated or soft-deleted.
func (s *Store) Relationships(ctx context.Context, viewerID primitive.ObjectID) (models.Relationships, error) {
	var u models.User
	err := s.users.FindOne(ctx, bson.M{
		"_id":       viewerID,
		"active":    true,
		"isDeleted": false,
	}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return models.Relationships{}, apperr.New(apperr.ErrNotFound, "user not found")
	}
	if err != nil {
		return models.Relationships{}, storeErr(err, "resolve relationships")
	}

	return models.Relationships{
		Following: u.FollowingUsers,
		Blocking:  u.BlockingUsers,
		Muting:    u.MutedUsers,
	}, nil
}

// UserByID fetches a user document regardless of its soft-delete state.
func (s *Store) UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.New(apperr.ErrNotFound, "user not found")
	}
	if err != nil {
		return nil, storeErr(err, "fetch user by id")
	}
	return &u, nil
}

// UserByUsername fetches a visible (active, non-deleted) user.
func (s *Store) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.users.FindOne(ctx, bson.M{
		"username":  username,
		"active":    true,
		"isDeleted": false,
	}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.New(apperr.ErrNotFound, "user not found")
	}
	if err != nil {
		return nil, storeErr(err, "fetch user by username")
	}
	return &u, nil
}
