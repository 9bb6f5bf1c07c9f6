package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// socialEdge runs one relationship write against the :username param. It
// resolves the target, rejects self-edges and answers with message on
// success.
func socialEdge(c *gin.Context, apply func(context.Context, primitive.ObjectID, primitive.ObjectID) error, message string) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	target, err := st.UserByUsername(ctx, c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	if target.ID == viewer {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You can't do this to yourself"})
		return
	}

	if err := apply(ctx, viewer, target.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Follow adds the target to the viewer's following set and the viewer to
// the target's followers.
func Follow(c *gin.Context) {
	socialEdge(c, st.Follow, "User followed")
}

func Unfollow(c *gin.Context) {
	socialEdge(c, st.Unfollow, "User unfollowed")
}

// Block hides the target's posts from the viewer and vice versa. Existing
// follow edges are left in place; visibility filtering handles the rest.
func Block(c *gin.Context) {
	socialEdge(c, st.Block, "User blocked")
}

func Unblock(c *gin.Context) {
	socialEdge(c, st.Unblock, "User unblocked")
}

// Mute hides the target's posts from the viewer only.
func Mute(c *gin.Context) {
	socialEdge(c, st.Mute, "User muted")
}

func Unmute(c *gin.Context) {
	socialEdge(c, st.Unmute, "User unmuted")
}
