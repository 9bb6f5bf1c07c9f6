package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Hashtag indexes the posts referencing one tag. Count always equals
// len(TweetList); the write path keeps both in one update and prunes the
// document when the count reaches zero.
type Hashtag struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title     string               `bson:"title" json:"title"`
	Count     int                  `bson:"count" json:"count"`
	TweetList []primitive.ObjectID `bson:"tweet_list" json:"-"`
}

// HashtagSummary is the trends projection: title and count only.
type HashtagSummary struct {
	Title string `bson:"title" json:"title"`
	Count int    `bson:"count" json:"count"`
}
