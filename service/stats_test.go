package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reddit-insights-service/model"
)

func sampleComments() []model.Comment {
	return []model.Comment{
		{Text: "first", Score: 5, Author: "carol", CreatedUTC: 300},
		{Text: "second", Score: 12, Author: "alice", CreatedUTC: 100},
		{Text: "third", Score: -3, Author: "bob", CreatedUTC: 200},
	}
}

func TestSortCommentsByScore(t *testing.T) {
	sorted := SortComments(sampleComments(), model.SortByScore, false)
	assert.Equal(t, []int{12, 5, -3}, []int{sorted[0].Score, sorted[1].Score, sorted[2].Score})

	sorted = SortComments(sampleComments(), model.SortByScore, true)
	assert.Equal(t, []int{-3, 5, 12}, []int{sorted[0].Score, sorted[1].Score, sorted[2].Score})
}

func TestSortCommentsByCreated(t *testing.T) {
	sorted := SortComments(sampleComments(), model.SortByCreated, true)
	assert.Equal(t, "second", sorted[0].Text)
	assert.Equal(t, "third", sorted[1].Text)
	assert.Equal(t, "first", sorted[2].Text)
}

func TestSortCommentsByAuthor(t *testing.T) {
	sorted := SortComments(sampleComments(), model.SortByAuthor, true)
	assert.Equal(t, []string{"alice", "bob", "carol"}, []string{sorted[0].Author, sorted[1].Author, sorted[2].Author})

	sorted = SortComments(sampleComments(), model.SortByAuthor, false)
	assert.Equal(t, "carol", sorted[0].Author)
}

func TestSortCommentsLeavesInputUntouched(t *testing.T) {
	comments := sampleComments()
	_ = SortComments(comments, model.SortByScore, false)
	assert.Equal(t, sampleComments(), comments)
}

func TestCommentStats(t *testing.T) {
	comments := []model.Comment{
		{Score: 4, Author: "alice"},
		{Score: 2, Author: "alice"},
		{Score: 6, Author: "bob"},
		{Score: 0, Author: "carol"},
	}
	stats := CommentStats(comments)

	assert.Equal(t, 4, stats.TotalComments)
	assert.InDelta(t, 3.0, stats.AverageScore, 1e-9)
	assert.Equal(t, 3, stats.UniqueAuthors)
	require.NotEmpty(t, stats.TopCommenters)
	assert.Equal(t, model.AuthorCount{Author: "alice", Count: 2}, stats.TopCommenters[0])
}

func TestCommentStatsTopCommenterCap(t *testing.T) {
	var comments []model.Comment
	for i := 0; i < 12; i++ {
		comments = append(comments, model.Comment{Author: fmt.Sprintf("user%02d", i)})
	}
	stats := CommentStats(comments)
	assert.Equal(t, 12, stats.UniqueAuthors)
	assert.Len(t, stats.TopCommenters, 10)
}

func TestCommentStatsEmpty(t *testing.T) {
	stats := CommentStats(nil)
	assert.Zero(t, stats.TotalComments)
	assert.Zero(t, stats.AverageScore)
	assert.Empty(t, stats.TopCommenters)
}
