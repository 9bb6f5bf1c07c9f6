package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Post types. "tweet" is an original post; replies, retweets and quotes
// carry the parent in ReferredPostID.
const (
	TypeTweet   = "tweet"
	TypeReply   = "reply"
	TypeRetweet = "retweet"
	TypeQuote   = "quote"
)

// ValidPostType reports whether t is one of the known post types.
func ValidPostType(t string) bool {
	switch t {
	case TypeTweet, TypeReply, TypeRetweet, TypeQuote:
		return true
	}
	return false
}

type Media struct {
	Data string `bson:"data" json:"data"`
	Type string `bson:"type" json:"type"`
}

type Post struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	Description    string             `bson:"description" json:"description"`
	Media          []Media            `bson:"media" json:"media"`
	Type           string             `bson:"type" json:"type"`
	ReferredPostID primitive.ObjectID `bson:"referredPostId,omitempty" json:"referredPostId,omitempty"`

	// Like and repost counts are always derived from these sets at read
	// time; only RepliesCount is a maintained counter, incremented when a
	// reply is created.
	LikersList   []primitive.ObjectID `bson:"likersList" json:"-"`
	RetweetList  []primitive.ObjectID `bson:"retweetList" json:"-"`
	RepliesCount int                  `bson:"repliesCount" json:"-"`

	CreatedAt int64 `bson:"createdAt" json:"createdAt"`
	IsDeleted bool  `bson:"isDeleted" json:"-"`

	// Owner is populated by the store's $lookup join, never persisted on
	// the post document.
	Owner *User `bson:"owner,omitempty" json:"-"`
}

func (p *Post) LikeCount() int   { return len(p.LikersList) }
func (p *Post) RepostCount() int { return len(p.RetweetList) }
