package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"reddit-insights-service/config"
	"reddit-insights-service/model"
)

var (
	// ErrAuthentication covers missing or rejected Reddit credentials
	ErrAuthentication = errors.New("reddit authentication failed")

	// ErrInvalidPostURL is returned when a post URL cannot be resolved
	// to a submission permalink
	ErrInvalidPostURL = errors.New("invalid reddit post URL")
)

// morechildren accepts at most 100 comment IDs per call
const moreChildrenBatchSize = 100

// Client is an authenticated Reddit API client. Tokens are obtained via
// the OAuth2 client-credentials flow and refreshed transparently.
type Client struct {
	apiBase string
	client  *http.Client
}

// NewClient builds a Reddit client from the configured credentials.
// Rejected credentials only surface on the first request; missing ones
// fail here.
func NewClient(cfg *config.Config) (*Client, error) {
	r := cfg.Reddit
	if r.ClientID == "" || r.ClientSecret == "" || r.UserAgent == "" {
		return nil, fmt.Errorf("%w: missing credentials", ErrAuthentication)
	}

	cc := &clientcredentials.Config{
		ClientID:     r.ClientID,
		ClientSecret: r.ClientSecret,
		TokenURL:     r.TokenURL,
	}

	// Reddit rejects requests without a descriptive User-Agent, the
	// token endpoint included, so the base client sets it on every call.
	base := &http.Client{
		Timeout: r.FetchTimeout,
		Transport: &userAgentTransport{
			agent: r.UserAgent,
			base:  http.DefaultTransport,
		},
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)

	httpClient := cc.Client(ctx)
	httpClient.Timeout = r.FetchTimeout

	return &Client{
		apiBase: strings.TrimSuffix(r.APIBaseURL, "/"),
		client:  httpClient,
	}, nil
}

type userAgentTransport struct {
	agent string
	base  http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.agent)
	return t.base.RoundTrip(clone)
}

// TopPosts fetches the top posts of a subreddit for the given ranking
// window, in the order the API delivers them.
func (c *Client) TopPosts(ctx context.Context, subreddit string, limit int, window string) ([]model.Post, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("t", window)
	q.Set("raw_json", "1")
	endpoint := fmt.Sprintf("%s/r/%s/top.json?%s", c.apiBase, url.PathEscape(subreddit), q.Encode())

	var listing model.Listing
	if err := c.get(ctx, endpoint, &listing); err != nil {
		return nil, fmt.Errorf("fetching top posts for r/%s: %w", subreddit, err)
	}

	posts := make([]model.Post, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		if child.Kind != model.KindPost {
			continue
		}
		var data model.PostData
		if err := json.Unmarshal(child.Data, &data); err != nil {
			log.Printf("[WARN] Skipping malformed post in r/%s listing: %v", subreddit, err)
			continue
		}
		posts = append(posts, mapPost(data))
	}

	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// PostWithComments resolves a submission from its URL and returns the
// post plus its flattened comment forest, with every "load more"
// placeholder expanded. Tree structure is discarded.
func (c *Client) PostWithComments(ctx context.Context, postURL string) (*model.Post, []model.Comment, error) {
	path, err := permalinkPath(postURL)
	if err != nil {
		return nil, nil, err
	}

	var pages []model.Listing
	endpoint := fmt.Sprintf("%s%s.json?raw_json=1&limit=500", c.apiBase, path)
	if err := c.get(ctx, endpoint, &pages); err != nil {
		return nil, nil, fmt.Errorf("fetching post %s: %w", postURL, err)
	}
	if len(pages) < 2 || len(pages[0].Data.Children) == 0 {
		return nil, nil, fmt.Errorf("unexpected response shape for %s", postURL)
	}

	var data model.PostData
	if err := json.Unmarshal(pages[0].Data.Children[0].Data, &data); err != nil {
		return nil, nil, fmt.Errorf("decoding submission for %s: %w", postURL, err)
	}
	post := mapPost(data)

	comments, pending := flattenComments(pages[1].Data.Children)

	expanded, err := c.expandMore(ctx, "t3_"+post.ID, pending)
	if err != nil {
		return nil, nil, err
	}
	comments = append(comments, expanded...)

	return &post, comments, nil
}

// expandMore resolves deferred comment IDs until none remain. There is
// no depth limit; newly discovered placeholders are queued as well.
func (c *Client) expandMore(ctx context.Context, linkID string, pending []string) ([]model.Comment, error) {
	var comments []model.Comment
	for len(pending) > 0 {
		n := moreChildrenBatchSize
		if len(pending) < n {
			n = len(pending)
		}
		batch := pending[:n]
		pending = pending[n:]

		q := url.Values{}
		q.Set("api_type", "json")
		q.Set("link_id", linkID)
		q.Set("children", strings.Join(batch, ","))
		q.Set("limit_children", "false")
		q.Set("raw_json", "1")

		var resp model.MoreChildrenResponse
		endpoint := c.apiBase + "/api/morechildren.json?" + q.Encode()
		if err := c.get(ctx, endpoint, &resp); err != nil {
			return nil, fmt.Errorf("expanding comments for %s: %w", linkID, err)
		}

		batchComments, more := flattenComments(resp.JSON.Data.Things)
		comments = append(comments, batchComments...)
		pending = append(pending, more...)
	}
	return comments, nil
}

// flattenComments walks a comment forest, collecting comments in
// delivery order and the IDs of any "more" placeholders encountered.
func flattenComments(children []model.Thing) ([]model.Comment, []string) {
	var comments []model.Comment
	var moreIDs []string

	for _, child := range children {
		switch child.Kind {
		case model.KindComment:
			var data model.CommentData
			if err := json.Unmarshal(child.Data, &data); err != nil {
				log.Printf("[WARN] Skipping malformed comment: %v", err)
				continue
			}
			comments = append(comments, model.Comment{
				Text:       data.Body,
				Score:      data.Score,
				Author:     data.Author,
				CreatedUTC: data.CreatedUTC,
			})
			// Replies is an empty string when there are none
			if len(data.Replies) > 0 && data.Replies[0] == '{' {
				var replies model.Listing
				if err := json.Unmarshal(data.Replies, &replies); err != nil {
					log.Printf("[WARN] Skipping malformed reply listing: %v", err)
					continue
				}
				nested, nestedMore := flattenComments(replies.Data.Children)
				comments = append(comments, nested...)
				moreIDs = append(moreIDs, nestedMore...)
			}
		case model.KindMore:
			var data model.MoreData
			if err := json.Unmarshal(child.Data, &data); err != nil {
				log.Printf("[WARN] Skipping malformed more placeholder: %v", err)
				continue
			}
			moreIDs = append(moreIDs, data.Children...)
		}
	}
	return comments, moreIDs
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return fmt.Errorf("%w: token request rejected (HTTP %d)", ErrAuthentication, retrieveErr.Response.StatusCode)
		}
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: HTTP %d", ErrAuthentication, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("reddit API HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// permalinkPath extracts the submission path from a full post URL
func permalinkPath(postURL string) (string, error) {
	u, err := url.Parse(postURL)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidPostURL, postURL)
	}
	path := strings.TrimSuffix(u.Path, "/")
	path = strings.TrimSuffix(path, ".json")
	if path == "" || !strings.Contains(path, "/comments/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidPostURL, postURL)
	}
	return path, nil
}

func mapPost(data model.PostData) model.Post {
	return model.Post{
		Title:        data.Title,
		Body:         data.Selftext,
		ID:           data.ID,
		Score:        data.Score,
		CommentCount: data.NumComments,
		URL:          data.URL,
	}
}
