package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirp/apperr"
	"chirp/config"
	"chirp/content"
	"chirp/feed"
	"chirp/store"
)

// Shared service handles, set once from main before the router starts.
var (
	cfg        *config.Config
	feedSvc    *feed.Service
	contentSvc *content.Service
	st         *store.Store
)

// Init wires the handler package to its services.
func Init(c *config.Config, f *feed.Service, w *content.Service, s *store.Store) {
	cfg = c
	feedSvc = f
	contentSvc = w
	st = s
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// viewerID reads the authenticated user id set by the JWT middleware.
func viewerID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// parsePage reads page/count query params, 1-indexed with the configured
// default size.
func parsePage(c *gin.Context) feed.Page {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	count, _ := strconv.Atoi(c.DefaultQuery("count", "0"))
	if count < 1 {
		count = cfg.DefaultPageSize
	}
	return feed.Page{Number: page, Size: count}
}

// respondError maps the service error taxonomy onto HTTP. Empty results
// are expected outcomes and answered without logging; store failures are
// logged with their cause and answered with a generic message.
func respondError(c *gin.Context, err error) {
	var blocked *apperr.Blocked
	switch {
	case errors.As(err, &blocked):
		c.JSON(http.StatusOK, gin.H{"message": blocked.Error()})
	case errors.Is(err, apperr.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrEmptyResult):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}
