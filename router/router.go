package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"reddit-insights-service/config"
	"reddit-insights-service/handler"
	"reddit-insights-service/middleware"
	"reddit-insights-service/service"
)

func Setup(svc *service.Service, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(middleware.PrometheusMiddleware("reddit-insights-service"))

	h := handler.New(svc, cfg)

	r.GET("/api/subreddit/:name/posts", h.GetSubredditPosts)
	r.GET("/api/subreddit/:name/posts/export", h.ExportSubredditPosts)
	r.GET("/api/subreddit/:name/wordcloud", h.SubredditWordCloud)
	r.GET("/api/post", h.GetPost)
	r.GET("/api/post/analytics", h.GetPostAnalytics)
	r.GET("/api/post/comments/export", h.ExportPostComments)
	r.GET("/api/post/wordcloud", h.PostWordCloud)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoints
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "reddit-insights-service"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "reddit-insights-service"})
	})

	return r
}
