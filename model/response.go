package model

// Response structures for the HTTP API

type AnnotatedPost struct {
	Post
	Sentiment Sentiment `json:"sentiment"`
}

type AnnotatedComment struct {
	Comment
	Sentiment Sentiment `json:"sentiment"`
}

// SentimentSummary aggregates labels across one table
type SentimentSummary struct {
	Positive     int     `json:"positive"`
	Neutral      int     `json:"neutral"`
	Negative     int     `json:"negative"`
	MeanPolarity float64 `json:"mean_polarity"`
}

type PostListResponse struct {
	Subreddit string           `json:"subreddit"`
	Window    string           `json:"window"`
	Count     int              `json:"count"`
	Posts     []AnnotatedPost  `json:"posts"`
	Summary   SentimentSummary `json:"sentiment_summary"`
	Message   string           `json:"message,omitempty"`
}

type PostDetailResponse struct {
	Post     *AnnotatedPost     `json:"post"`
	Count    int                `json:"count"`
	Comments []AnnotatedComment `json:"comments"`
	Summary  SentimentSummary   `json:"sentiment_summary"`
	Message  string             `json:"message,omitempty"`
}

// CommentStats summarizes the comment table of a single post
type CommentStats struct {
	TotalComments int           `json:"total_comments"`
	AverageScore  float64       `json:"average_score"`
	UniqueAuthors int           `json:"unique_authors"`
	TopCommenters []AuthorCount `json:"top_commenters"`
}

type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}
