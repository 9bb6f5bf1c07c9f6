package feed_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirp/apperr"
	"chirp/feed"
	"chirp/models"
)

func TestSearchValidation(t *testing.T) {
	graph, index := newFakes()
	svc := feed.NewService(graph, index, feed.Options{})
	viewer := primitive.NewObjectID()

	_, err := svc.Search(context.Background(), viewer, "", "word", feed.Page{})
	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)

	_, err = svc.Search(context.Background(), viewer, "tweet", "", feed.Page{})
	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)

	_, err = svc.Search(context.Background(), viewer, "moment", "word", feed.Page{})
	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)
}

func TestSearchUsers(t *testing.T) {
	graph, index := newFakes()
	svc := feed.NewService(graph, index, feed.Options{})
	viewer := primitive.NewObjectID()

	_, err := svc.Search(context.Background(), viewer, "user", "sara", feed.Page{})
	assert.ErrorIs(t, err, apperr.ErrEmptyResult)

	graph.matches = []models.User{*visibleUser(primitive.NewObjectID(), "sara")}
	res, err := svc.Search(context.Background(), viewer, "user", "sara", feed.Page{})
	require.NoError(t, err)
	require.Len(t, res.Users, 1)
	assert.Equal(t, "sara", res.Users[0].Username)
}

func TestSearchTweetsAppliesVisibility(t *testing.T) {
	graph, index := newFakes()
	svc := feed.NewService(graph, index, feed.Options{})

	viewer := primitive.NewObjectID()
	author := visibleUser(primitive.NewObjectID(), "sara")
	post := authoredPost(author, time.Now().Unix())

	graph.rels[viewer] = models.Relationships{}
	index.postHits = []models.Post{post}

	res, err := svc.Search(context.Background(), viewer, "tweet", "hello", feed.Page{})
	require.NoError(t, err)
	require.Len(t, res.Posts, 1)

	// The same search comes up empty once the viewer blocks the author.
	graph.rels[viewer] = models.Relationships{Blocking: []primitive.ObjectID{author.ID}}
	_, err = svc.Search(context.Background(), viewer, "tweet", "hello", feed.Page{})
	assert.ErrorIs(t, err, apperr.ErrEmptyResult)
}

func TestSearchHashtags(t *testing.T) {
	graph, index := newFakes()
	svc := feed.NewService(graph, index, feed.Options{})
	viewer := primitive.NewObjectID()

	index.tagHits = []models.HashtagSummary{{Title: "#Gaza", Count: 2}}
	res, err := svc.Search(context.Background(), viewer, "hashtag", "Gaza", feed.Page{})
	require.NoError(t, err)
	require.Len(t, res.Hashtags, 1)
	assert.Equal(t, "#Gaza", res.Hashtags[0].Title)
}
