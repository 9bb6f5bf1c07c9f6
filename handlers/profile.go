package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the account summary for the :username param.
func GetProfile(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext()
	defer cancel()

	profile, err := feedSvc.Profile(ctx, c.Param("username"), viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": profile})
}

// GetUserTweets returns the target user's posts as seen by the viewer.
func GetUserTweets(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext()
	defer cancel()

	posts, err := feedSvc.ProfileFeed(ctx, c.Param("username"), viewer, parsePage(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetUserLikes returns the posts the target user liked, as seen by the
// viewer.
func GetUserLikes(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext()
	defer cancel()

	posts, err := feedSvc.ProfileLikes(ctx, c.Param("username"), viewer, parsePage(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
