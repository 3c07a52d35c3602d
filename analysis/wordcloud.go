package analysis

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"sort"
	"strings"

	"github.com/psykhi/wordclouds"
)

// MaxTerms caps the number of distinct terms in a word cloud
const MaxTerms = 200

// viridis-inspired palette
var cloudPalette = []color.Color{
	color.RGBA{R: 0x44, G: 0x01, B: 0x54, A: 0xff},
	color.RGBA{R: 0x3b, G: 0x52, B: 0x8b, A: 0xff},
	color.RGBA{R: 0x21, G: 0x91, B: 0x8c, A: 0xff},
	color.RGBA{R: 0x5e, G: 0xc9, B: 0x62, A: 0xff},
	color.RGBA{R: 0xfd, G: 0xe7, B: 0x25, A: 0xff},
}

// CloudOptions configures word cloud rendering
type CloudOptions struct {
	Width      int
	Height     int
	Background color.Color
	FontFile   string
}

// TermFrequencies normalizes and concatenates the given texts, then
// counts terms, keeping at most max distinct terms by frequency. Ties
// break alphabetically so the result is deterministic.
func TermFrequencies(texts []string, max int) map[string]int {
	counts := make(map[string]int)
	for _, text := range texts {
		for _, term := range strings.Fields(Normalize(text)) {
			counts[term]++
		}
	}
	if max <= 0 || len(counts) <= max {
		return counts
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	top := make(map[string]int, max)
	for _, term := range terms[:max] {
		top[term] = counts[term]
	}
	return top
}

// RenderCloud draws a frequency-weighted word cloud image
func RenderCloud(freqs map[string]int, opts CloudOptions) (image.Image, error) {
	if len(freqs) == 0 {
		return nil, fmt.Errorf("no terms to render")
	}
	if _, err := os.Stat(opts.FontFile); err != nil {
		return nil, fmt.Errorf("word cloud font not available: %w", err)
	}

	cloud := wordclouds.NewWordcloud(
		freqs,
		wordclouds.FontFile(opts.FontFile),
		wordclouds.Width(opts.Width),
		wordclouds.Height(opts.Height),
		wordclouds.BackgroundColor(opts.Background),
		wordclouds.Colors(cloudPalette),
		wordclouds.FontMaxSize(96),
		wordclouds.FontMinSize(10),
	)
	return cloud.Draw(), nil
}

// ParseHexColor parses "#RRGGBB" (or "RRGGBB") into an opaque color
func ParseHexColor(s string) (color.Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return nil, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, fmt.Errorf("invalid hex color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
