package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirp/content"
	"chirp/models"
)

type createPostRequest struct {
	Description    string         `json:"description"`
	Media          []models.Media `json:"media"`
	Type           string         `json:"type"`
	ReferredPostID string         `json:"referredPostId"`
}

// tweetIDParam parses the :tweetId path param.
func tweetIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("tweetId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tweet ID"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// CreatePost stores a new tweet, reply, retweet or quote.
func CreatePost(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := content.CreatePostInput{
		Description: req.Description,
		Media:       req.Media,
		Type:        req.Type,
	}
	if req.ReferredPostID != "" {
		ref, err := primitive.ObjectIDFromHex(req.ReferredPostID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid referred tweet ID"})
			return
		}
		in.ReferredPostID = ref
	}

	ctx, cancel := requestContext()
	defer cancel()

	id, err := contentSvc.CreatePost(ctx, viewer, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Tweet created", "tweetId": id.Hex()})
}

// DeletePost soft-deletes the viewer's own tweet.
func DeletePost(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	id, ok := tweetIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := contentSvc.DeletePost(ctx, id, viewer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tweet deleted"})
}

// Like adds the viewer to the tweet's likers.
func Like(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	id, ok := tweetIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := contentSvc.Like(ctx, id, viewer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tweet liked"})
}

// Unlike removes the viewer from the tweet's likers.
func Unlike(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	id, ok := tweetIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := contentSvc.Unlike(ctx, id, viewer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tweet unliked"})
}

// Retweet creates a retweet record referring to the tweet in the path.
func Retweet(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	id, ok := tweetIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	retweetID, err := contentSvc.CreatePost(ctx, viewer, content.CreatePostInput{
		Type:           models.TypeRetweet,
		ReferredPostID: id,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tweet retweeted", "tweetId": retweetID.Hex()})
}

// Unretweet removes the viewer from the tweet's retweeters.
func Unretweet(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	id, ok := tweetIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := contentSvc.Unretweet(ctx, id, viewer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tweet unretweeted"})
}
