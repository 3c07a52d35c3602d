package service

import (
	"sort"

	"reddit-insights-service/model"
)

const topCommenterCount = 10

// SortComments returns a sorted copy; the input is left untouched so
// cached slices are never reordered. Unknown keys sort by score.
func SortComments(comments []model.Comment, by string, ascending bool) []model.Comment {
	sorted := make([]model.Comment, len(comments))
	copy(sorted, comments)

	var less func(i, j int) bool
	switch by {
	case model.SortByCreated:
		less = func(i, j int) bool { return sorted[i].CreatedUTC < sorted[j].CreatedUTC }
	case model.SortByAuthor:
		less = func(i, j int) bool { return sorted[i].Author < sorted[j].Author }
	default:
		less = func(i, j int) bool { return sorted[i].Score < sorted[j].Score }
	}
	if !ascending {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}

	sort.SliceStable(sorted, less)
	return sorted
}

// CommentStats summarizes a comment table: totals, average score,
// distinct authors and the ten most active commenters.
func CommentStats(comments []model.Comment) model.CommentStats {
	stats := model.CommentStats{TotalComments: len(comments)}
	if len(comments) == 0 {
		return stats
	}

	var scoreSum int
	authorCounts := make(map[string]int)
	for _, c := range comments {
		scoreSum += c.Score
		authorCounts[c.Author]++
	}
	stats.AverageScore = float64(scoreSum) / float64(len(comments))
	stats.UniqueAuthors = len(authorCounts)

	commenters := make([]model.AuthorCount, 0, len(authorCounts))
	for author, count := range authorCounts {
		commenters = append(commenters, model.AuthorCount{Author: author, Count: count})
	}
	sort.Slice(commenters, func(i, j int) bool {
		if commenters[i].Count != commenters[j].Count {
			return commenters[i].Count > commenters[j].Count
		}
		return commenters[i].Author < commenters[j].Author
	})
	if len(commenters) > topCommenterCount {
		commenters = commenters[:topCommenterCount]
	}
	stats.TopCommenters = commenters
	return stats
}
