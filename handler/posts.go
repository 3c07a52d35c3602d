package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reddit-insights-service/analysis"
	"reddit-insights-service/model"
	"reddit-insights-service/service"
)

// GetSubredditPosts serves the post table for a subreddit with per-title
// sentiment and aggregate counts. A failed fetch keeps the table empty
// and carries a message; the session stays usable for a new attempt.
func (h *Handler) GetSubredditPosts(c *gin.Context) {
	req, ok := h.topPostsRequest(c)
	if !ok {
		return
	}
	label, ok := sentimentFilter(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sentiment must be one of positive, neutral, negative"})
		return
	}

	log.Printf("[INFO] GetSubredditPosts called for r/%s (limit=%d, window=%s)", req.Subreddit, req.Limit, req.Window)

	posts, err := h.svc.TopPosts(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, model.PostListResponse{
			Subreddit: req.Subreddit,
			Window:    req.Window,
			Posts:     []model.AnnotatedPost{},
			Message:   "error fetching subreddit posts: " + err.Error(),
		})
		return
	}

	annotated := analysis.AnnotatePosts(posts)
	sentiments := make([]model.Sentiment, len(annotated))
	for i, p := range annotated {
		sentiments[i] = p.Sentiment
	}
	filtered := analysis.FilterPosts(annotated, label)

	resp := model.PostListResponse{
		Subreddit: req.Subreddit,
		Window:    req.Window,
		Count:     len(filtered),
		Posts:     filtered,
		Summary:   analysis.Summarize(sentiments),
	}
	if len(posts) == 0 {
		resp.Message = "no posts found for r/" + req.Subreddit
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) topPostsRequest(c *gin.Context) (model.TopPostsRequest, bool) {
	limit, err := positiveInt(c.DefaultQuery("limit", "5"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit " + err.Error()})
		return model.TopPostsRequest{}, false
	}
	return model.TopPostsRequest{
		Subreddit: c.Param("name"),
		Limit:     limit,
		Window:    c.DefaultQuery("window", "month"),
	}, true
}
