package feed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirp/feed"
	"chirp/models"
)

func idList(n int) []primitive.ObjectID {
	out := make([]primitive.ObjectID, n)
	for i := range out {
		out[i] = primitive.NewObjectID()
	}
	return out
}

func TestRankPostsNewerAlwaysWins(t *testing.T) {
	older := models.Post{ID: primitive.NewObjectID(), CreatedAt: 100, LikersList: idList(50)}
	newer := models.Post{ID: primitive.NewObjectID(), CreatedAt: 200}

	posts := []models.Post{older, newer}
	feed.RankPosts(posts)

	assert.Equal(t, newer.ID, posts[0].ID)
	assert.Equal(t, older.ID, posts[1].ID)
}

func TestRankPostsLikesBreakTimestampTies(t *testing.T) {
	fiveLikes := models.Post{ID: primitive.NewObjectID(), CreatedAt: 100, LikersList: idList(5)}
	threeLikes := models.Post{ID: primitive.NewObjectID(), CreatedAt: 100, LikersList: idList(3)}

	posts := []models.Post{threeLikes, fiveLikes}
	feed.RankPosts(posts)

	assert.Equal(t, fiveLikes.ID, posts[0].ID)
}

func TestRankPostsFullTieBreakOrder(t *testing.T) {
	// Same timestamp and likes: replies decide before reposts.
	manyReposts := models.Post{ID: primitive.NewObjectID(), CreatedAt: 100, RepliesCount: 1, RetweetList: idList(9)}
	manyReplies := models.Post{ID: primitive.NewObjectID(), CreatedAt: 100, RepliesCount: 2}

	posts := []models.Post{manyReposts, manyReplies}
	feed.RankPosts(posts)
	assert.Equal(t, manyReplies.ID, posts[0].ID)

	// All else equal: reposts decide.
	reposted := models.Post{ID: primitive.NewObjectID(), CreatedAt: 100, RetweetList: idList(2)}
	plain := models.Post{ID: primitive.NewObjectID(), CreatedAt: 100}

	posts = []models.Post{plain, reposted}
	feed.RankPosts(posts)
	assert.Equal(t, reposted.ID, posts[0].ID)
}

func TestRankPostsStable(t *testing.T) {
	a := models.Post{ID: primitive.NewObjectID(), CreatedAt: 100}
	b := models.Post{ID: primitive.NewObjectID(), CreatedAt: 100}

	posts := []models.Post{a, b}
	feed.RankPosts(posts)

	assert.Equal(t, a.ID, posts[0].ID)
	assert.Equal(t, b.ID, posts[1].ID)
}

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	// 25 candidates, page 3 of 10: the final 5, not an error.
	got := feed.Paginate(items, feed.Page{Number: 3, Size: 10})
	require.Len(t, got, 5)
	assert.Equal(t, 20, got[0])
	assert.Equal(t, 24, got[4])

	// Beyond the end: empty page.
	assert.Empty(t, feed.Paginate(items, feed.Page{Number: 4, Size: 10}))

	// Exact fit.
	assert.Len(t, feed.Paginate(items, feed.Page{Number: 1, Size: 25}), 25)

	// Empty input.
	assert.Empty(t, feed.Paginate([]int{}, feed.Page{Number: 1, Size: 10}))
}
