package store

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chirp/models"
)

// UpsertHashtag registers one new referencing post for title, creating
// the hashtag on first use. Count and tweet_list move in a single update,
// so the count == len(tweet_list) invariant holds under concurrent
// writers. The extractor deduplicates tokens per post, which keeps the
// $addToSet and the $inc in step.
func (s *Store) UpsertHashtag(ctx context.Context, title string, postID primitive.ObjectID) error {
	_, err := s.hashtags.UpdateOne(ctx,
		bson.M{"title": title},
		bson.M{
			"$inc":      bson.M{"count": 1},
			"$addToSet": bson.M{"tweet_list": postID},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return storeErr(err, "upsert hashtag")
	}
	return nil
}

// RemoveHashtagRef drops one referencing post from title and prunes the
// hashtag entirely when its count reaches zero. The filter requires the
// post to still be listed, so repeating the removal is a no-op rather
// than a double decrement.
func (s *Store) RemoveHashtagRef(ctx context.Context, title string, postID primitive.ObjectID) error {
	res, err := s.hashtags.UpdateOne(ctx,
		bson.M{"title": title, "tweet_list": postID},
		bson.M{
			"$inc":  bson.M{"count": -1},
			"$pull": bson.M{"tweet_list": postID},
		},
	)
	if err != nil {
		return storeErr(err, "remove hashtag ref")
	}
	if res.ModifiedCount == 0 {
		return nil
	}

	// Zero-count hashtags are deleted, not kept as empty records.
	if _, err := s.hashtags.DeleteOne(ctx,
		bson.M{"title": title, "count": bson.M{"$lte": 0}},
	); err != nil {
		return storeErr(err, "prune hashtag")
	}
	return nil
}

// HashtagsByPopularity lists all hashtags, most referenced first,
// projected to title and count. An empty store yields an empty list.
func (s *Store) HashtagsByPopularity(ctx context.Context) ([]models.HashtagSummary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "count", Value: -1}, {Key: "title", Value: 1}}).
		SetProjection(bson.M{"title": 1, "count": 1})

	cursor, err := s.hashtags.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storeErr(err, "list hashtags")
	}
	defer cursor.Close(ctx)

	var tags []models.HashtagSummary
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, storeErr(err, "decode hashtags")
	}
	return tags, nil
}

// SearchHashtags returns hashtags whose title contains word,
// case-insensitive, most referenced first.
func (s *Store) SearchHashtags(ctx context.Context, word string) ([]models.HashtagSummary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "count", Value: -1}, {Key: "title", Value: 1}}).
		SetProjection(bson.M{"title": 1, "count": 1})

	cursor, err := s.hashtags.Find(ctx, bson.M{
		"title": bson.M{"$regex": regexp.QuoteMeta(word), "$options": "i"},
	}, opts)
	if err != nil {
		return nil, storeErr(err, "search hashtags")
	}
	defer cursor.Close(ctx)

	var tags []models.HashtagSummary
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, storeErr(err, "decode hashtags")
	}
	return tags, nil
}
