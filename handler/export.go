package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reddit-insights-service/export"
	"reddit-insights-service/fetcher"
	"reddit-insights-service/service"
)

// ExportSubredditPosts serves the post table as a CSV download
func (h *Handler) ExportSubredditPosts(c *gin.Context) {
	req, ok := h.topPostsRequest(c)
	if !ok {
		return
	}

	log.Printf("[INFO] ExportSubredditPosts called for r/%s", req.Subreddit)

	posts, err := h.svc.TopPosts(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "error fetching subreddit posts: " + err.Error()})
		return
	}

	data, err := export.PostsCSV(posts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("%s_posts.csv", req.Subreddit)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// ExportPostComments serves the comment table of a post as a CSV
// download, sorted the same way the comments endpoint would deliver it
func (h *Handler) ExportPostComments(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}
	sortBy, order, ok := commentSortParams(c)
	if !ok {
		return
	}

	log.Printf("[INFO] ExportPostComments called for %s", url)

	_, comments, err := h.svc.PostWithComments(c.Request.Context(), url)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) || errors.Is(err, fetcher.ErrInvalidPostURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "error fetching post: " + err.Error()})
		return
	}

	sorted := service.SortComments(comments, sortBy, order == "asc")
	data, err := export.CommentsCSV(sorted)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="comments.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
