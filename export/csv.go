package export

import (
	"github.com/gocarina/gocsv"

	"reddit-insights-service/model"
)

// PostsCSV renders the post table with its fixed column ordering:
// Title, Post Text, ID, Score, Total Comments, Post URL.
func PostsCSV(posts []model.Post) ([]byte, error) {
	return gocsv.MarshalBytes(&posts)
}

// CommentsCSV renders the comment table with its fixed column ordering:
// Comment Text, Score, Author, Created UTC.
func CommentsCSV(comments []model.Comment) ([]byte, error) {
	return gocsv.MarshalBytes(&comments)
}
