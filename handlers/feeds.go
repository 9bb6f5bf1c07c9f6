package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chirp/apperr"
	"chirp/metrics"
)

// HomeTimeline returns the viewer's recent posts merged with posts from
// the accounts they follow.
func HomeTimeline(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext()
	defer cancel()

	posts, err := feedSvc.HomeTimeline(ctx, viewer, parsePage(c))
	metrics.ObserveFeed("home", errors.Is(err, apperr.ErrEmptyResult))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// MentionFeed returns posts that mention the viewer.
func MentionFeed(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext()
	defer cancel()

	posts, err := feedSvc.MentionFeed(ctx, viewer, parsePage(c))
	metrics.ObserveFeed("mentions", errors.Is(err, apperr.ErrEmptyResult))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// HashtagFeed returns posts carrying the hashtag in the :trend param.
func HashtagFeed(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext()
	defer cancel()

	posts, err := feedSvc.HashtagFeed(ctx, c.Param("trend"), viewer, parsePage(c))
	metrics.ObserveFeed("hashtag", errors.Is(err, apperr.ErrEmptyResult))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// Trends lists hashtags by popularity.
func Trends(c *gin.Context) {
	ctx, cancel := requestContext()
	defer cancel()

	trends, err := feedSvc.TrendingHashtags(ctx, parsePage(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trends": trends})
}

// Search dispatches on the type query param: user, tweet or hashtag.
func Search(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext()
	defer cancel()

	result, err := feedSvc.Search(ctx, viewer, c.Query("type"), c.Query("word"), parsePage(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}
