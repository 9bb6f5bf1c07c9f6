package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TweetRef is one entry of a user's tweetList: the post plus the way it
// got there (authored, reply, retweet, quote).
type TweetRef struct {
	PostID primitive.ObjectID `bson:"postId" json:"postId"`
	Type   string             `bson:"type" json:"type"`
	At     int64              `bson:"at" json:"at"`
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Nickname     string             `bson:"nickname" json:"nickname"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`

	Bio          string `bson:"bio" json:"bio"`
	ProfileImage string `bson:"profileImage" json:"profileImage"`
	BannerImage  string `bson:"bannerImage" json:"bannerImage"`
	Location     string `bson:"location" json:"location"`
	Website      string `bson:"website" json:"website"`
	BirthDate    int64  `bson:"birthDate" json:"birthDate"`
	JoinedAt     int64  `bson:"joinedAt" json:"joinedAt"`

	// Relationship sets. A user never appears in its own sets; the write
	// path rejects self-edges before they reach the store.
	FollowingUsers []primitive.ObjectID `bson:"followingUsers" json:"followingUsers"`
	FollowersUsers []primitive.ObjectID `bson:"followersUsers" json:"followersUsers"`
	BlockingUsers  []primitive.ObjectID `bson:"blockingUsers" json:"blockingUsers"`
	MutedUsers     []primitive.ObjectID `bson:"mutedUsers" json:"mutedUsers"`

	TweetList   []TweetRef           `bson:"tweetList" json:"tweetList"`
	LikedTweets []primitive.ObjectID `bson:"likedTweets" json:"likedTweets"`

	// MentionList is append-only; entries pointing at deleted posts stay
	// and are filtered out at read time.
	MentionList []primitive.ObjectID `bson:"mentionList" json:"mentionList"`

	Active    bool `bson:"active" json:"active"`
	IsDeleted bool `bson:"isDeleted" json:"-"`
}

// Visible reports whether the account should be treated as existing by
// read paths. Soft-deleted or deactivated users are invisible, not absent.
func (u *User) Visible() bool {
	return u != nil && u.Active && !u.IsDeleted
}

// Relationships is the read-side view of a viewer's social edges.
type Relationships struct {
	Following []primitive.ObjectID
	Blocking  []primitive.ObjectID
	Muting    []primitive.ObjectID
}

// ContainsID reports whether id is a member of set.
func ContainsID(set []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range set {
		if v == id {
			return true
		}
	}
	return false
}
