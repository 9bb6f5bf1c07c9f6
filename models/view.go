package models

// OwnerSummary is the author block embedded in every enriched post view.
// Follower and following counts are derived from set length at read time.
type OwnerSummary struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Nickname     string `json:"nickname"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
	FollowersNum int    `json:"followers_num"`
	FollowingNum int    `json:"following_num"`
}

// PostView is the enriched post returned by every feed: derived counters
// plus flags computed against the requesting viewer.
type PostView struct {
	ID             string       `json:"id"`
	Description    string       `json:"description"`
	Media          []Media      `json:"media"`
	Type           string       `json:"type"`
	ReferredPostID string       `json:"referredPostId,omitempty"`
	CreatedAt      int64        `json:"creation_time"`
	LikesNum       int          `json:"likesNum"`
	RepliesNum     int          `json:"repliesNum"`
	RepostsNum     int          `json:"repostsNum"`
	Owner          OwnerSummary `json:"tweet_owner"`
	IsLiked        bool         `json:"isLiked"`
	IsRetweeted    bool         `json:"isRetweeted"`
	IsFollowed     bool         `json:"isFollowed"`
	IsFollowingMe  bool         `json:"isFollowingMe"`
}

// ProfileView is the account summary returned by the profile endpoint.
// Follower, following and tweet counts are derived from set length.
type ProfileView struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Nickname      string `json:"nickname"`
	Bio           string `json:"bio"`
	ProfileImage  string `json:"profile_image"`
	BannerImage   string `json:"banner_image"`
	Location      string `json:"location"`
	Website       string `json:"website"`
	BirthDate     int64  `json:"birth_date"`
	JoinedAt      int64  `json:"joined_at"`
	FollowersNum  int    `json:"followers_num"`
	FollowingNum  int    `json:"following_num"`
	TweetsNum     int    `json:"tweets_num"`
	IsFollowed    bool   `json:"isFollowed"`
	IsFollowingMe bool   `json:"isFollowingMe"`
	IsMuted       bool   `json:"isMuted"`
}

// UserSummary is the search projection for user results.
type UserSummary struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Nickname     string `json:"nickname"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
}
