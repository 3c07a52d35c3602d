package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reddit-insights-service/analysis"
	"reddit-insights-service/fetcher"
	"reddit-insights-service/model"
	"reddit-insights-service/service"
)

// GetPost serves one submission and its flattened comment table with
// sentiment annotations. Zero comments on a resolved post is a warning,
// not a failure; only a fetch error empties both tables.
func (h *Handler) GetPost(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}
	sortBy, order, ok := commentSortParams(c)
	if !ok {
		return
	}
	label, ok := sentimentFilter(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sentiment must be one of positive, neutral, negative"})
		return
	}

	log.Printf("[INFO] GetPost called for %s", url)

	post, comments, err := h.svc.PostWithComments(c.Request.Context(), url)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) || errors.Is(err, fetcher.ErrInvalidPostURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, model.PostDetailResponse{
			Comments: []model.AnnotatedComment{},
			Message:  "error fetching post: " + err.Error(),
		})
		return
	}

	sorted := service.SortComments(comments, sortBy, order == "asc")
	annotated := analysis.AnnotateComments(sorted)
	sentiments := make([]model.Sentiment, len(annotated))
	for i, cm := range annotated {
		sentiments[i] = cm.Sentiment
	}
	filtered := analysis.FilterComments(annotated, label)

	annotatedPost := model.AnnotatedPost{Post: *post, Sentiment: analysis.Score(post.Title)}
	resp := model.PostDetailResponse{
		Post:     &annotatedPost,
		Count:    len(filtered),
		Comments: filtered,
		Summary:  analysis.Summarize(sentiments),
	}
	if len(comments) == 0 {
		resp.Message = "post has no comments"
	}
	c.JSON(http.StatusOK, resp)
}

// GetPostAnalytics serves aggregate comment statistics for a post
func (h *Handler) GetPostAnalytics(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	log.Printf("[INFO] GetPostAnalytics called for %s", url)

	_, comments, err := h.svc.PostWithComments(c.Request.Context(), url)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) || errors.Is(err, fetcher.ErrInvalidPostURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "error fetching post: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, service.CommentStats(comments))
}

func commentSortParams(c *gin.Context) (string, string, bool) {
	sortBy := c.DefaultQuery("sort", model.SortByScore)
	switch sortBy {
	case model.SortByScore, model.SortByCreated, model.SortByAuthor:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "sort must be one of score, created, author"})
		return "", "", false
	}

	order := c.DefaultQuery("order", "desc")
	if order != "asc" && order != "desc" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order must be asc or desc"})
		return "", "", false
	}
	return sortBy, order, true
}
