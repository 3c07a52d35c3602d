package model

// Post represents one row of the post table. CSV column order matches
// the exported artifact.
type Post struct {
	Title        string `json:"title" csv:"Title"`
	Body         string `json:"body" csv:"Post Text"`
	ID           string `json:"id" csv:"ID"`
	Score        int    `json:"score" csv:"Score"`
	CommentCount int    `json:"comment_count" csv:"Total Comments"`
	URL          string `json:"url" csv:"Post URL"`
}

// Comment represents one row of the comment table. CreatedUTC is epoch
// seconds as delivered by the API.
type Comment struct {
	Text       string  `json:"text" csv:"Comment Text"`
	Score      int     `json:"score" csv:"Score"`
	Author     string  `json:"author" csv:"Author"`
	CreatedUTC float64 `json:"created_utc" csv:"Created UTC"`
}

// Sentiment labels
const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

// Sentiment is the per-text annotation: polarity in [-1, 1],
// subjectivity in [0, 1], label partitioned at polarity = 0.
type Sentiment struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
	Label        string  `json:"label"`
}

// TopPostsRequest is a validated subreddit fetch request
type TopPostsRequest struct {
	Subreddit string `json:"subreddit" validate:"required"`
	Limit     int    `json:"limit" validate:"required,min=1,max=100"`
	Window    string `json:"window" validate:"required,oneof=day week month year all"`
}

// Comment sort keys accepted by the comments endpoint
const (
	SortByScore   = "score"
	SortByCreated = "created"
	SortByAuthor  = "author"
)
