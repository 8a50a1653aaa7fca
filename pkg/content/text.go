package content

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// WordsPerMinute used for reading time estimation
const WordsPerMinute = 200

// MaxSummaryLength is the max number of runes in a summary
const MaxSummaryLength = 300

var textPolicy = func() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true)
	return p
}()

// PlainText strips tags and collapses whitespace
func PlainText(htmlStr string) string {
	if htmlStr == "" {
		return ""
	}
	text := html.UnescapeString(textPolicy.Sanitize(htmlStr))
	return strings.Join(strings.Fields(text), " ")
}

// WordCount counts words of the html text
func WordCount(htmlStr string) int {
	return len(strings.Fields(PlainText(htmlStr)))
}

// ReadingTime returns reading time in minutes, rounded up. Zero words means zero minutes.
func ReadingTime(words int) int {
	if words <= 0 {
		return 0
	}
	return (words + WordsPerMinute - 1) / WordsPerMinute
}

// Summary makes a plain-text excerpt of at most MaxSummaryLength runes, cut on a word boundary if possible
func Summary(htmlStr string) string {
	text := PlainText(htmlStr)
	runes := []rune(text)
	if len(runes) <= MaxSummaryLength {
		return text
	}
	cut := string(runes[:MaxSummaryLength-1])
	if idx := strings.LastIndex(cut, " "); idx > MaxSummaryLength/2 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
