package store

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"chirp/apperr"
	"chirp/models"
)

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	if _, err := s.users.InsertOne(ctx, u); err != nil {
		return storeErr(err, "insert user")
	}
	return nil
}

// UserByEmail fetches a visible user by email, for login.
func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.users.FindOne(ctx, bson.M{
		"email":     email,
		"active":    true,
		"isDeleted": false,
	}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.New(apperr.ErrNotFound, "user not found")
	}
	if err != nil {
		return nil, storeErr(err, "fetch user by email")
	}
	return &u, nil
}

// UsernameTaken reports whether any account, including deactivated ones,
// already holds username.
func (s *Store) UsernameTaken(ctx context.Context, username string) (bool, error) {
	n, err := s.users.CountDocuments(ctx, bson.M{"username": username})
	if err != nil {
		return false, storeErr(err, "count username")
	}
	return n > 0, nil
}

// Follow adds the edge on both documents: target into the viewer's
// followingUsers, viewer into the target's followersUsers. The two
// updates are independent per-document writes.
func (s *Store) Follow(ctx context.Context, viewerID, targetID primitive.ObjectID) error {
	if _, err := s.users.UpdateOne(ctx,
		bson.M{"_id": viewerID},
		bson.M{"$addToSet": bson.M{"followingUsers": targetID}},
	); err != nil {
		return storeErr(err, "add following")
	}
	if _, err := s.users.UpdateOne(ctx,
		bson.M{"_id": targetID},
		bson.M{"$addToSet": bson.M{"followersUsers": viewerID}},
	); err != nil {
		return storeErr(err, "add follower")
	}
	return nil
}

func (s *Store) Unfollow(ctx context.Context, viewerID, targetID primitive.ObjectID) error {
	if _, err := s.users.UpdateOne(ctx,
		bson.M{"_id": viewerID},
		bson.M{"$pull": bson.M{"followingUsers": targetID}},
	); err != nil {
		return storeErr(err, "remove following")
	}
	if _, err := s.users.UpdateOne(ctx,
		bson.M{"_id": targetID},
		bson.M{"$pull": bson.M{"followersUsers": viewerID}},
	); err != nil {
		return storeErr(err, "remove follower")
	}
	return nil
}

// Block hides content in both directions; the edge itself lives only on
// the blocker's document.
func (s *Store) Block(ctx context.Context, viewerID, targetID primitive.ObjectID) error {
	if _, err := s.users.UpdateOne(ctx,
		bson.M{"_id": viewerID},
		bson.M{"$addToSet": bson.M{"blockingUsers": targetID}},
	); err != nil {
		return storeErr(err, "add block")
	}
	return nil
}

func (s *Store) Unblock(ctx context.Context, viewerID, targetID primitive.ObjectID) error {
	if _, err := s.users.UpdateOne(ctx,
		bson.M{"_id": viewerID},
		bson.M{"$pull": bson.M{"blockingUsers": targetID}},
	); err != nil {
		return storeErr(err, "remove block")
	}
	return nil
}

func (s *Store) Mute(ctx context.Context, viewerID, targetID primitive.ObjectID) error {
	if _, err := s.users.UpdateOne(ctx,
		bson.M{"_id": viewerID},
		bson.M{"$addToSet": bson.M{"mutedUsers": targetID}},
	); err != nil {
		return storeErr(err, "add mute")
	}
	return nil
}

func (s *Store) Unmute(ctx context.Context, viewerID, targetID primitive.ObjectID) error {
	if _, err := s.users.UpdateOne(ctx,
		bson.M{"_id": viewerID},
		bson.M{"$pull": bson.M{"mutedUsers": targetID}},
	); err != nil {
		return storeErr(err, "remove mute")
	}
	return nil
}

// AppendMention appends a post to the user's mentionList. The list is
// append-only; post deletion never prunes it.
func (s *Store) AppendMention(ctx context.Context, userID, postID primitive.ObjectID) error {
	if _, err := s.users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"mentionList": postID}},
	); err != nil {
		return storeErr(err, "append mention")
	}
	return nil
}

// SearchUsers returns visible users whose username or nickname contains
// word, case-insensitive.
func (s *Store) SearchUsers(ctx context.Context, word string) ([]models.User, error) {
	pattern := bson.M{"$regex": regexp.QuoteMeta(word), "$options": "i"}
	cursor, err := s.users.Find(ctx, bson.M{
		"active":    true,
		"isDeleted": false,
		"$or": []bson.M{
			{"username": pattern},
			{"nickname": pattern},
		},
	})
	if err != nil {
		return nil, storeErr(err, "search users")
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, storeErr(err, "decode users")
	}
	return users, nil
}
