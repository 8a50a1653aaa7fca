// Package diff detects which leading items of a freshly parsed feed are new relative to
// the most recently stored articles of the same source.
package diff

import (
	"strings"
	"time"

	"github.com/umputun/feedsync/pkg/domain"
)

// RecentWindow is how many stored articles per source are compared against parsed items
const RecentWindow = 20

// sameTitleWindow is the max publish time difference for title-equal items to be the same article
const sameTitleWindow = 60 * time.Second

// FindNewItemBoundary walks parsed items from the top (newest first) and returns the index of the first
// item already known to the store. Everything before it is new. If nothing matches, all items are new.
func FindNewItemBoundary(items []domain.ParsedItem, recent []domain.StoredArticleRef) int {
	if len(recent) == 0 {
		return len(items)
	}
	for i, item := range items {
		for _, ref := range recent {
			if matches(item, ref) {
				return i
			}
		}
	}
	return len(items)
}

// NewItems returns leading new items capped by maxArticles. Non-positive maxArticles means the default cap.
func NewItems(items []domain.ParsedItem, recent []domain.StoredArticleRef, maxArticles int) []domain.ParsedItem {
	boundary := FindNewItemBoundary(items, recent)
	if maxArticles <= 0 {
		maxArticles = domain.DefaultMaxArticles
	}
	if boundary > maxArticles {
		boundary = maxArticles
	}
	return items[:boundary]
}

func matches(item domain.ParsedItem, ref domain.StoredArticleRef) bool {
	link := strings.TrimSpace(item.Link)
	if link != "" && link == strings.TrimSpace(ref.URL) {
		return true
	}

	title := strings.TrimSpace(item.Title)
	if title == "" || title != strings.TrimSpace(ref.Title) {
		return false
	}
	if item.Published.IsZero() || ref.PublishedAt.IsZero() {
		return false
	}
	delta := item.Published.Sub(ref.PublishedAt)
	if delta < 0 {
		delta = -delta
	}
	return delta < sameTitleWindow
}
