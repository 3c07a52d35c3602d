package model

import "encoding/json"

// Reddit API response structures. Listings wrap every collection the API
// returns; a Thing's payload depends on its kind ("t3" submission,
// "t1" comment, "more" deferred comment placeholder).

const (
	KindListing = "Listing"
	KindPost    = "t3"
	KindComment = "t1"
	KindMore    = "more"
)

type Listing struct {
	Kind string      `json:"kind"`
	Data ListingData `json:"data"`
}

type ListingData struct {
	After    string  `json:"after"`
	Children []Thing `json:"children"`
}

type Thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type PostData struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	URL         string  `json:"url"`
	Permalink   string  `json:"permalink"`
	CreatedUTC  float64 `json:"created_utc"`
}

// CommentData holds one comment. Replies is left raw because the API
// sends an empty string instead of a listing when there are none.
type CommentData struct {
	ID         string          `json:"id"`
	Body       string          `json:"body"`
	Score      int             `json:"score"`
	Author     string          `json:"author"`
	CreatedUTC float64         `json:"created_utc"`
	Replies    json.RawMessage `json:"replies"`
}

// MoreData is a "load more comments" placeholder; Children are the
// comment IDs still to be resolved via /api/morechildren.
type MoreData struct {
	Count    int      `json:"count"`
	Children []string `json:"children"`
}

// MoreChildrenResponse is the /api/morechildren envelope
type MoreChildrenResponse struct {
	JSON struct {
		Data struct {
			Things []Thing `json:"things"`
		} `json:"data"`
	} `json:"json"`
}
