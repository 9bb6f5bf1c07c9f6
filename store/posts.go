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

// postsWithOwner runs the shared candidate pipeline: match, newest first,
// author joined in as "owner". Soft-deleted posts and invisible authors
// are NOT excluded here; that is the visibility filter's job, one shared
// contract for every read path.
func (s *Store) postsWithOwner(ctx context.Context, match bson.M) ([]models.Post, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "userId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$owner"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cursor, err := s.posts.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr(err, "aggregate posts")
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, storeErr(err, "decode posts")
	}
	return posts, nil
}

// PostsByAuthor returns the author's posts, newest first. A positive
// since bounds the stream to posts created at or after that unix time.
func (s *Store) PostsByAuthor(ctx context.Context, authorID primitive.ObjectID, since int64) ([]models.Post, error) {
	match := bson.M{"userId": authorID}
	if since > 0 {
		match["createdAt"] = bson.M{"$gte": since}
	}
	return s.postsWithOwner(ctx, match)
}

// PostsByHashtag returns the posts referencing the tag, via the hashtag's
// tweet_list. NotFound when no such hashtag exists.
func (s *Store) PostsByHashtag(ctx context.Context, title string) ([]models.Post, error) {
	var tag models.Hashtag
	err := s.hashtags.FindOne(ctx, bson.M{"title": title}).Decode(&tag)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.New(apperr.ErrNotFound, "hashtag not found")
	}
	if err != nil {
		return nil, storeErr(err, "fetch hashtag")
	}
	if len(tag.TweetList) == 0 {
		return nil, nil
	}
	return s.postsWithOwner(ctx, bson.M{"_id": bson.M{"$in": tag.TweetList}})
}

// PostsMentioning returns the posts referenced by the user's mentionList.
// The list is append-only, so entries may point at deleted posts; the
// visibility filter drops those at read time.
func (s *Store) PostsMentioning(ctx context.Context, userID primitive.ObjectID) ([]models.Post, error) {
	u, err := s.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(u.MentionList) == 0 {
		return nil, nil
	}
	return s.postsWithOwner(ctx, bson.M{"_id": bson.M{"$in": u.MentionList}})
}

// PostsLikedBy returns the posts in the user's likedTweets set.
func (s *Store) PostsLikedBy(ctx context.Context, userID primitive.ObjectID) ([]models.Post, error) {
	u, err := s.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(u.LikedTweets) == 0 {
		return nil, nil
	}
	return s.postsWithOwner(ctx, bson.M{"_id": bson.M{"$in": u.LikedTweets}})
}

// SearchPosts returns posts whose body contains word, case-insensitive.
func (s *Store) SearchPosts(ctx context.Context, word string) ([]models.Post, error) {
	return s.postsWithOwner(ctx, bson.M{
		"description": bson.M{"$regex": regexp.QuoteMeta(word), "$options": "i"},
	})
}

// PostByID fetches a post document, deleted or not.
func (s *Store) PostByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var p models.Post
	err := s.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.New(apperr.ErrNotFound, "post not found")
	}
	if err != nil {
		return nil, storeErr(err, "fetch post")
	}
	return &p, nil
}

func (s *Store) InsertPost(ctx context.Context, p *models.Post) error {
	if _, err := s.posts.InsertOne(ctx, p); err != nil {
		return storeErr(err, "insert post")
	}
	return nil
}

// MarkPostDeleted soft-deletes a post. It reports whether this call did
// the marking, so a concurrent or repeated delete cannot decrement the
// hashtag index twice.
func (s *Store) MarkPostDeleted(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.posts.UpdateOne(ctx,
		bson.M{"_id": id, "isDeleted": false},
		bson.M{"$set": bson.M{"isDeleted": true}},
	)
	if err != nil {
		return false, storeErr(err, "mark post deleted")
	}
	return res.ModifiedCount == 1, nil
}

// IncReplies bumps the maintained repliesCount counter on reply creation.
func (s *Store) IncReplies(ctx context.Context, postID primitive.ObjectID) error {
	if _, err := s.posts.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$inc": bson.M{"repliesCount": 1}},
	); err != nil {
		return storeErr(err, "increment replies")
	}
	return nil
}

// AddLiker records a like on both sides: the post's likersList and the
// user's likedTweets. The two documents are updated independently.
func (s *Store) AddLiker(ctx context.Context, postID, userID primitive.ObjectID) error {
	if _, err := s.posts.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$addToSet": bson.M{"likersList": userID}},
	); err != nil {
		return storeErr(err, "add liker")
	}
	if _, err := s.users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"likedTweets": postID}},
	); err != nil {
		return storeErr(err, "add liked tweet")
	}
	return nil
}

func (s *Store) RemoveLiker(ctx context.Context, postID, userID primitive.ObjectID) error {
	if _, err := s.posts.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"likersList": userID}},
	); err != nil {
		return storeErr(err, "remove liker")
	}
	if _, err := s.users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"likedTweets": postID}},
	); err != nil {
		return storeErr(err, "remove liked tweet")
	}
	return nil
}

func (s *Store) AddRetweeter(ctx context.Context, postID, userID primitive.ObjectID) error {
	if _, err := s.posts.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$addToSet": bson.M{"retweetList": userID}},
	); err != nil {
		return storeErr(err, "add retweeter")
	}
	return nil
}

func (s *Store) RemoveRetweeter(ctx context.Context, postID, userID primitive.ObjectID) error {
	if _, err := s.posts.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"retweetList": userID}},
	); err != nil {
		return storeErr(err, "remove retweeter")
	}
	return nil
}

// PushTweetRef appends an entry to the author's tweetList.
func (s *Store) PushTweetRef(ctx context.Context, userID primitive.ObjectID, ref models.TweetRef) error {
	if _, err := s.users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"tweetList": ref}},
	); err != nil {
		return storeErr(err, "push tweet ref")
	}
	return nil
}
