package emoji

import (
	"context"
	"strings"

	"github.com/poiesic/marquee/core"
	"github.com/rivo/uniseg"
)

// Length is the number of symbols in every summary.
const Length = 5

const (
	// MockEmojis is the fixed answer of the mock summarizer.
	MockEmojis = "⛄🏰👸🏔️🥶"

	// EmojisNotFound is the agreed "no result" marker for callers that have
	// no movie to summarize. Summarizers never return it themselves.
	EmojisNotFound = "❓❓❓❓❓"
)

// Summarizer turns a movie into a short emoji string.
// Implementations must be safe for concurrent use.
type Summarizer interface {
	// MovieToEmojis returns at most Length symbols summarizing the movie.
	MovieToEmojis(ctx context.Context, movie core.Movie) (string, error)
}

// Truncate returns the first n grapheme clusters of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	g := uniseg.NewGraphemes(s)
	end := 0
	for count := 0; count < n && g.Next(); count++ {
		_, end = g.Positions()
	}
	return s[:end]
}

// Normalize trims surrounding whitespace and keeps the first Length symbols.
func Normalize(s string) string {
	return Truncate(strings.TrimSpace(s), Length)
}

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
