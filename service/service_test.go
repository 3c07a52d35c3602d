package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reddit-insights-service/model"
)

type mockFetcher struct {
	topCalls  int
	postCalls int
	posts     []model.Post
	post      *model.Post
	comments  []model.Comment
	err       error
}

func (m *mockFetcher) TopPosts(ctx context.Context, subreddit string, limit int, window string) ([]model.Post, error) {
	m.topCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.posts, nil
}

func (m *mockFetcher) PostWithComments(ctx context.Context, url string) (*model.Post, []model.Comment, error) {
	m.postCalls++
	if m.err != nil {
		return nil, nil, m.err
	}
	return m.post, m.comments, nil
}

func fivePosts() []model.Post {
	return []model.Post{
		{Title: "first", ID: "a1", Score: 100, CommentCount: 10, URL: "https://example.com/a1"},
		{Title: "second", ID: "a2", Score: 80, CommentCount: 8, URL: "https://example.com/a2"},
		{Title: "third", ID: "a3", Score: 60, CommentCount: 6, URL: "https://example.com/a3"},
		{Title: "fourth", ID: "a4", Score: 40, CommentCount: 4, URL: "https://example.com/a4"},
		{Title: "fifth", ID: "a5", Score: 20, CommentCount: 2, URL: "https://example.com/a5"},
	}
}

func newTestService(f RedditFetcher) *Service {
	return New(f, time.Hour, time.Minute)
}

func TestTopPostsValidation(t *testing.T) {
	cases := []struct {
		name string
		req  model.TopPostsRequest
	}{
		{"empty subreddit", model.TopPostsRequest{Subreddit: "", Limit: 5, Window: "month"}},
		{"zero limit", model.TopPostsRequest{Subreddit: "funny", Limit: 0, Window: "month"}},
		{"limit too high", model.TopPostsRequest{Subreddit: "funny", Limit: 101, Window: "month"}},
		{"bad window", model.TopPostsRequest{Subreddit: "funny", Limit: 5, Window: "fortnight"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := &mockFetcher{posts: fivePosts()}
			svc := newTestService(mock)

			_, err := svc.TopPosts(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidRequest)
			assert.Zero(t, mock.topCalls, "invalid requests must not reach the fetcher")
		})
	}
}

func TestTopPostsDeliveredOrder(t *testing.T) {
	mock := &mockFetcher{posts: fivePosts()}
	svc := newTestService(mock)

	posts, err := svc.TopPosts(context.Background(), model.TopPostsRequest{Subreddit: "funny", Limit: 5, Window: "month"})
	require.NoError(t, err)
	require.Len(t, posts, 5)

	scores := make([]int, len(posts))
	for i, p := range posts {
		scores[i] = p.Score
	}
	assert.Equal(t, []int{100, 80, 60, 40, 20}, scores)
}

func TestTopPostsMemoization(t *testing.T) {
	mock := &mockFetcher{posts: fivePosts()}
	svc := newTestService(mock)
	req := model.TopPostsRequest{Subreddit: "funny", Limit: 5, Window: "month"}

	first, err := svc.TopPosts(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.TopPosts(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, mock.topCalls, "second identical call must be served from cache")
	assert.Equal(t, first, second)
}

func TestTopPostsDistinctArgumentsBypassCache(t *testing.T) {
	mock := &mockFetcher{posts: fivePosts()}
	svc := newTestService(mock)

	_, err := svc.TopPosts(context.Background(), model.TopPostsRequest{Subreddit: "funny", Limit: 5, Window: "month"})
	require.NoError(t, err)
	_, err = svc.TopPosts(context.Background(), model.TopPostsRequest{Subreddit: "funny", Limit: 5, Window: "week"})
	require.NoError(t, err)
	_, err = svc.TopPosts(context.Background(), model.TopPostsRequest{Subreddit: "funny", Limit: 6, Window: "month"})
	require.NoError(t, err)

	assert.Equal(t, 3, mock.topCalls)
}

func TestTopPostsFetchErrorNotCached(t *testing.T) {
	mock := &mockFetcher{err: errors.New("connection reset")}
	svc := newTestService(mock)
	req := model.TopPostsRequest{Subreddit: "funny", Limit: 5, Window: "month"}

	posts, err := svc.TopPosts(context.Background(), req)
	assert.Error(t, err)
	assert.Empty(t, posts)

	// a new attempt after a failure must hit the upstream again
	_, err = svc.TopPosts(context.Background(), req)
	assert.Error(t, err)
	assert.Equal(t, 2, mock.topCalls)
}

func TestPostWithCommentsZeroCommentsIsNotAFailure(t *testing.T) {
	mock := &mockFetcher{
		post:     &model.Post{Title: "lonely post", ID: "p1", Score: 3},
		comments: []model.Comment{},
	}
	svc := newTestService(mock)

	post, comments, err := svc.PostWithComments(context.Background(), "https://www.reddit.com/r/funny/comments/p1/lonely/")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "lonely post", post.Title)
	assert.Empty(t, comments)
}

func TestPostWithCommentsFailure(t *testing.T) {
	mock := &mockFetcher{err: errors.New("timeout")}
	svc := newTestService(mock)

	post, comments, err := svc.PostWithComments(context.Background(), "https://www.reddit.com/r/funny/comments/p1/gone/")
	assert.Error(t, err)
	assert.Nil(t, post)
	assert.Empty(t, comments)
}

func TestPostWithCommentsMemoization(t *testing.T) {
	mock := &mockFetcher{
		post: &model.Post{Title: "cached post", ID: "p2", Score: 42},
		comments: []model.Comment{
			{Text: "nice", Score: 5, Author: "alice", CreatedUTC: 1700000000},
			{Text: "meh", Score: -2, Author: "bob", CreatedUTC: 1700000100},
		},
	}
	svc := newTestService(mock)
	url := "https://www.reddit.com/r/funny/comments/p2/cached/"

	post1, comments1, err := svc.PostWithComments(context.Background(), url)
	require.NoError(t, err)
	post2, comments2, err := svc.PostWithComments(context.Background(), url)
	require.NoError(t, err)

	assert.Equal(t, 1, mock.postCalls)
	assert.Equal(t, post1, post2)
	assert.Equal(t, comments1, comments2)
}

func TestPostWithCommentsEmptyURL(t *testing.T) {
	mock := &mockFetcher{}
	svc := newTestService(mock)

	_, _, err := svc.PostWithComments(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Zero(t, mock.postCalls)
}
