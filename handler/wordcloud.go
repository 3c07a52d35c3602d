package handler

import (
	"bytes"
	"errors"
	"image/png"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reddit-insights-service/analysis"
	"reddit-insights-service/fetcher"
	"reddit-insights-service/metrics"
	"reddit-insights-service/service"
)

// SubredditWordCloud renders a PNG word cloud from the post titles of a
// subreddit
func (h *Handler) SubredditWordCloud(c *gin.Context) {
	req, ok := h.topPostsRequest(c)
	if !ok {
		return
	}
	opts, err := h.cloudOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Printf("[INFO] SubredditWordCloud called for r/%s", req.Subreddit)

	posts, err := h.svc.TopPosts(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "error fetching subreddit posts: " + err.Error()})
		return
	}

	texts := make([]string, len(posts))
	for i, p := range posts {
		texts[i] = p.Title
	}
	h.renderCloud(c, texts, opts)
}

// PostWordCloud renders a PNG word cloud from the comment bodies of a
// post
func (h *Handler) PostWordCloud(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}
	opts, err := h.cloudOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Printf("[INFO] PostWordCloud called for %s", url)

	_, comments, err := h.svc.PostWithComments(c.Request.Context(), url)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) || errors.Is(err, fetcher.ErrInvalidPostURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "error fetching post: " + err.Error()})
		return
	}

	texts := make([]string, len(comments))
	for i, cm := range comments {
		texts[i] = cm.Text
	}
	h.renderCloud(c, texts, opts)
}

func (h *Handler) renderCloud(c *gin.Context, texts []string, opts analysis.CloudOptions) {
	freqs := analysis.TermFrequencies(texts, analysis.MaxTerms)
	if len(freqs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no text available to render"})
		return
	}

	img, err := analysis.RenderCloud(freqs, opts)
	if err != nil {
		metrics.WordCloudsRendered.WithLabelValues("error").Inc()
		log.Printf("[ERROR] Word cloud rendering failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		metrics.WordCloudsRendered.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.WordCloudsRendered.WithLabelValues("success").Inc()
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
