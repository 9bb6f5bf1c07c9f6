package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"chirp/config"
	"chirp/handlers"
	"chirp/metrics"
	"chirp/middleware"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(metrics.Middleware())
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimitPerSec, cfg.RateLimitBurst))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080", "http://127.0.0.1:8080", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})
	router.GET("/metrics", metrics.Handler())

	// Public routes (no auth required)
	router.POST("/api/signup", handlers.Signup)
	router.POST("/api/login", handlers.Login)

	// Protected routes group
	protected := router.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	// Timelines
	protected.GET("/homepage/following", handlers.HomeTimeline)
	protected.GET("/homepage/mentions", handlers.MentionFeed)

	// Trends
	protected.GET("/trends", handlers.Trends)
	protected.GET("/trends/:trend", handlers.HashtagFeed)

	// Search
	protected.GET("/search", handlers.Search)

	// Tweets
	protected.POST("/tweets", handlers.CreatePost)
	protected.DELETE("/tweets/:tweetId", handlers.DeletePost)
	protected.POST("/tweets/:tweetId/like", handlers.Like)
	protected.POST("/tweets/:tweetId/unlike", handlers.Unlike)
	protected.PATCH("/tweets/:tweetId/retweet", handlers.Retweet)
	protected.PATCH("/tweets/:tweetId/unretweet", handlers.Unretweet)

	// Profiles
	protected.GET("/user/:username", handlers.GetProfile)
	protected.GET("/user/:username/tweets", handlers.GetUserTweets)
	protected.GET("/user/:username/likes", handlers.GetUserLikes)

	// Social edges
	protected.POST("/user/:username/follow", handlers.Follow)
	protected.DELETE("/user/:username/follow", handlers.Unfollow)
	protected.POST("/user/:username/block", handlers.Block)
	protected.DELETE("/user/:username/block", handlers.Unblock)
	protected.POST("/user/:username/mute", handlers.Mute)
	protected.DELETE("/user/:username/mute", handlers.Unmute)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
