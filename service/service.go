package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	gocache "github.com/patrickmn/go-cache"

	"reddit-insights-service/metrics"
	"reddit-insights-service/model"
)

// ErrInvalidRequest wraps validation failures on fetch parameters
var ErrInvalidRequest = errors.New("invalid fetch request")

// RedditFetcher is the upstream dependency surface the service consumes
type RedditFetcher interface {
	TopPosts(ctx context.Context, subreddit string, limit int, window string) ([]model.Post, error)
	PostWithComments(ctx context.Context, url string) (*model.Post, []model.Comment, error)
}

// Service orchestrates fetching and memoizes results. Identical inputs
// within the TTL window are answered from cache without a network call;
// the cache key is built from the arguments only, never the client
// handle. Concurrent misses for one key may race into two upstream
// calls, which is redundant but harmless.
type Service struct {
	fetcher  RedditFetcher
	cache    *gocache.Cache
	validate *validator.Validate
}

type postDetail struct {
	post     model.Post
	comments []model.Comment
}

// New builds a Service with the given memoization TTL
func New(f RedditFetcher, ttl, cleanupInterval time.Duration) *Service {
	return &Service{
		fetcher:  f,
		cache:    gocache.New(ttl, cleanupInterval),
		validate: validator.New(),
	}
}

// TopPosts returns the top posts of a subreddit in delivered order.
// Fetch failures are returned as errors for the caller to surface; the
// result set is empty in that case, never partial.
func (s *Service) TopPosts(ctx context.Context, req model.TopPostsRequest) ([]model.Post, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	key := fmt.Sprintf("top:%s:%d:%s", req.Subreddit, req.Limit, req.Window)
	if cached, ok := s.cache.Get(key); ok {
		metrics.CacheHits.WithLabelValues("top_posts").Inc()
		log.Printf("[INFO] Cache hit for r/%s (limit=%d, window=%s)", req.Subreddit, req.Limit, req.Window)
		return cached.([]model.Post), nil
	}
	metrics.CacheMisses.WithLabelValues("top_posts").Inc()

	posts, err := s.fetcher.TopPosts(ctx, req.Subreddit, req.Limit, req.Window)
	if err != nil {
		metrics.PostsFetched.WithLabelValues(req.Subreddit, "error").Inc()
		log.Printf("[ERROR] Fetching top posts for r/%s failed: %v", req.Subreddit, err)
		return nil, err
	}

	metrics.PostsFetched.WithLabelValues(req.Subreddit, "success").Add(float64(len(posts)))
	s.cache.Set(key, posts, gocache.DefaultExpiration)
	log.Printf("[INFO] Fetched %d posts for r/%s (limit=%d, window=%s)", len(posts), req.Subreddit, req.Limit, req.Window)
	return posts, nil
}

// PostWithComments resolves one submission and its flattened comment
// set. A successful fetch with zero comments returns a populated post
// and an empty comment slice, which callers must treat differently from
// a failed fetch.
func (s *Service) PostWithComments(ctx context.Context, url string) (*model.Post, []model.Comment, error) {
	if url == "" {
		return nil, nil, fmt.Errorf("%w: post url is required", ErrInvalidRequest)
	}

	key := "post:" + url
	if cached, ok := s.cache.Get(key); ok {
		metrics.CacheHits.WithLabelValues("post_comments").Inc()
		log.Printf("[INFO] Cache hit for post %s", url)
		detail := cached.(postDetail)
		post := detail.post
		return &post, detail.comments, nil
	}
	metrics.CacheMisses.WithLabelValues("post_comments").Inc()

	post, comments, err := s.fetcher.PostWithComments(ctx, url)
	if err != nil {
		metrics.CommentsFetched.WithLabelValues("error").Inc()
		log.Printf("[ERROR] Fetching post %s failed: %v", url, err)
		return nil, nil, err
	}

	metrics.CommentsFetched.WithLabelValues("success").Add(float64(len(comments)))
	s.cache.Set(key, postDetail{post: *post, comments: comments}, gocache.DefaultExpiration)
	log.Printf("[INFO] Fetched post %s with %d comments", url, len(comments))
	return post, comments, nil
}
