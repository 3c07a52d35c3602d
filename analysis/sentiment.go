package analysis

import (
	"strings"

	"github.com/jonreiter/govader"

	"reddit-insights-service/model"
)

// Sentiment runs on raw, un-normalized text: case and punctuation carry
// signal for the VADER lexicon. Word cloud input is normalized instead.
var analyzer = govader.NewSentimentIntensityAnalyzer()

// Score derives polarity, subjectivity and a label for one text.
// Polarity is the VADER compound score in [-1, 1]; subjectivity is the
// non-neutral proportion of the text in [0, 1].
func Score(text string) model.Sentiment {
	if strings.TrimSpace(text) == "" {
		return model.Sentiment{Label: model.LabelNeutral}
	}

	scores := analyzer.PolarityScores(text)

	subjectivity := scores.Positive + scores.Negative
	if subjectivity > 1 {
		subjectivity = 1
	}

	return model.Sentiment{
		Polarity:     scores.Compound,
		Subjectivity: subjectivity,
		Label:        Label(scores.Compound),
	}
}

// Label partitions polarity strictly at zero
func Label(polarity float64) string {
	switch {
	case polarity > 0:
		return model.LabelPositive
	case polarity < 0:
		return model.LabelNegative
	default:
		return model.LabelNeutral
	}
}

// AnnotatePosts scores each post title
func AnnotatePosts(posts []model.Post) []model.AnnotatedPost {
	annotated := make([]model.AnnotatedPost, 0, len(posts))
	for _, p := range posts {
		annotated = append(annotated, model.AnnotatedPost{
			Post:      p,
			Sentiment: Score(p.Title),
		})
	}
	return annotated
}

// AnnotateComments scores each comment body
func AnnotateComments(comments []model.Comment) []model.AnnotatedComment {
	annotated := make([]model.AnnotatedComment, 0, len(comments))
	for _, c := range comments {
		annotated = append(annotated, model.AnnotatedComment{
			Comment:   c,
			Sentiment: Score(c.Text),
		})
	}
	return annotated
}

// Summarize aggregates label counts and mean polarity
func Summarize(sentiments []model.Sentiment) model.SentimentSummary {
	var summary model.SentimentSummary
	var total float64
	for _, s := range sentiments {
		switch s.Label {
		case model.LabelPositive:
			summary.Positive++
		case model.LabelNegative:
			summary.Negative++
		default:
			summary.Neutral++
		}
		total += s.Polarity
	}
	if n := len(sentiments); n > 0 {
		summary.MeanPolarity = total / float64(n)
	}
	return summary
}

// FilterPosts keeps posts whose label matches; an empty label keeps all
func FilterPosts(posts []model.AnnotatedPost, label string) []model.AnnotatedPost {
	if label == "" {
		return posts
	}
	filtered := make([]model.AnnotatedPost, 0, len(posts))
	for _, p := range posts {
		if p.Sentiment.Label == label {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterComments keeps comments whose label matches; an empty label keeps all
func FilterComments(comments []model.AnnotatedComment, label string) []model.AnnotatedComment {
	if label == "" {
		return comments
	}
	filtered := make([]model.AnnotatedComment, 0, len(comments))
	for _, c := range comments {
		if c.Sentiment.Label == label {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
