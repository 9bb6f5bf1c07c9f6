package feed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirp/feed"
	"chirp/models"
)

func TestVisibleDropsDeletedPosts(t *testing.T) {
	viewer := primitive.NewObjectID()
	author := visibleUser(primitive.NewObjectID(), "sara")
	live := authoredPost(author, 100)
	dead := authoredPost(author, 100)
	dead.IsDeleted = true

	out := feed.Visible([]models.Post{live, dead}, viewer, models.Relationships{}, feed.FilterOptions{})
	assert.Len(t, out, 1)
	assert.Equal(t, live.ID, out[0].ID)
}

func TestVisibleReplyExclusionIsOptional(t *testing.T) {
	viewer := primitive.NewObjectID()
	author := visibleUser(primitive.NewObjectID(), "sara")
	reply := authoredPost(author, 100)
	reply.Type = models.TypeReply

	out := feed.Visible([]models.Post{reply}, viewer, models.Relationships{}, feed.FilterOptions{ExcludeReplies: true})
	assert.Empty(t, out)

	out = feed.Visible([]models.Post{reply}, viewer, models.Relationships{}, feed.FilterOptions{})
	assert.Len(t, out, 1)
}

func TestVisibleBlockSymmetry(t *testing.T) {
	viewer := primitive.NewObjectID()
	author := visibleUser(primitive.NewObjectID(), "sara")
	post := authoredPost(author, 100)

	// Viewer blocks the author.
	out := feed.Visible([]models.Post{post}, viewer,
		models.Relationships{Blocking: []primitive.ObjectID{author.ID}}, feed.FilterOptions{})
	assert.Empty(t, out)

	// Author blocks the viewer.
	author.BlockingUsers = []primitive.ObjectID{viewer}
	out = feed.Visible([]models.Post{post}, viewer, models.Relationships{}, feed.FilterOptions{})
	assert.Empty(t, out)
}

func TestVisibleMuteOnlyHidesFromMuter(t *testing.T) {
	muter := primitive.NewObjectID()
	other := primitive.NewObjectID()
	author := visibleUser(primitive.NewObjectID(), "sara")
	post := authoredPost(author, 100)

	out := feed.Visible([]models.Post{post}, muter,
		models.Relationships{Muting: []primitive.ObjectID{author.ID}}, feed.FilterOptions{})
	assert.Empty(t, out)

	out = feed.Visible([]models.Post{post}, other, models.Relationships{}, feed.FilterOptions{})
	assert.Len(t, out, 1)
}

func TestVisibleDropsInvisibleAuthors(t *testing.T) {
	viewer := primitive.NewObjectID()

	deactivated := visibleUser(primitive.NewObjectID(), "gone")
	deactivated.Active = false
	softDeleted := visibleUser(primitive.NewObjectID(), "erased")
	softDeleted.IsDeleted = true

	posts := []models.Post{
		authoredPost(deactivated, 100),
		authoredPost(softDeleted, 100),
	}
	// Post with no joined owner at all.
	orphan := models.Post{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), Type: models.TypeTweet}
	posts = append(posts, orphan)

	out := feed.Visible(posts, viewer, models.Relationships{}, feed.FilterOptions{})
	assert.Empty(t, out)
}
