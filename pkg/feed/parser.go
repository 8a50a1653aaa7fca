package feed

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"

	"github.com/umputun/feedsync/pkg/domain"
)

// challengeMarkers are fragments of CDN/WAF interstitial pages returned instead of the feed
var challengeMarkers = []string{
	"just a moment",
	"attention required",
	"cf-browser-verification",
	"challenge-platform",
	"captcha",
	"ddos-guard",
	"checking your browser",
}

// ParseFeed converts raw RSS/Atom bytes into a parsed feed. Items keep document order.
// All returned errors wrap ErrFeedFormat.
func ParseFeed(raw []byte) (*domain.ParsedFeed, error) {
	body := bytes.TrimSpace(raw)
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	if err := detectNonFeed(body); err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		if errors.Is(err, gofeed.ErrFeedTypeNotDetected) {
			return nil, fmt.Errorf("%w: content is neither RSS nor Atom, check the feed URL", ErrNotFeed)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err) //nolint:errorlint // keep format sentinel as the wrapped error
	}

	result := &domain.ParsedFeed{
		Title:       strings.TrimSpace(feed.Title),
		Description: feed.Description,
		Link:        feed.Link,
		Items:       make([]domain.ParsedItem, 0, len(feed.Items)),
	}

	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		result.Items = append(result.Items, convertItem(feed.Title, item))
	}
	return result, nil
}

func convertItem(feedTitle string, item *gofeed.Item) domain.ParsedItem {
	parsed := domain.ParsedItem{
		Title:       strings.TrimSpace(item.Title),
		Link:        strings.TrimSpace(item.Link),
		Description: item.Description,
		Content:     item.Content,
		Categories:  item.Categories,
	}

	// guid falls back to link, then to feed and item titles
	switch {
	case strings.TrimSpace(item.GUID) != "":
		parsed.GUID = strings.TrimSpace(item.GUID)
	case parsed.Link != "":
		parsed.GUID = parsed.Link
	default:
		parsed.GUID = fmt.Sprintf("%s-%s", feedTitle, item.Title)
	}

	if item.Author != nil {
		parsed.Author = item.Author.Name
		if parsed.Author == "" {
			parsed.Author = item.Author.Email
		}
	}

	if item.PublishedParsed != nil {
		parsed.Published = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		parsed.Published = *item.UpdatedParsed
	}

	for _, enc := range item.Enclosures {
		if enc == nil || enc.URL == "" {
			continue
		}
		length, _ := strconv.ParseInt(strings.TrimSpace(enc.Length), 10, 64)
		parsed.Enclosures = append(parsed.Enclosures, domain.Enclosure{URL: enc.URL, Type: enc.Type, Length: length})
	}

	parsed.Media = extractMedia(item.Extensions)

	// gofeed maps itunes:image and atom logos to item.Image, use it as a thumbnail of last resort
	if item.Image != nil && item.Image.URL != "" && len(parsed.Media.Thumbnails) == 0 {
		parsed.Media.Thumbnails = append(parsed.Media.Thumbnails, domain.MediaThumbnail{URL: item.Image.URL})
	}
	return parsed
}

// extractMedia pulls Media RSS elements from item extensions, including media:group children
func extractMedia(exts ext.Extensions) domain.Media {
	var res domain.Media
	media, ok := exts["media"]
	if !ok {
		return res
	}

	res.Title = firstValue(media["title"])
	res.Description = firstValue(media["description"])
	res.Credit = firstValue(media["credit"])

	addContents := func(list []ext.Extension) {
		for _, c := range list {
			mc := mediaContent(c)
			if mc.URL == "" {
				continue
			}
			res.Contents = append(res.Contents, mc)
		}
	}
	addThumbs := func(list []ext.Extension) {
		for _, t := range list {
			if u := t.Attrs["url"]; u != "" {
				res.Thumbnails = append(res.Thumbnails, domain.MediaThumbnail{URL: u, Width: atoi(t.Attrs["width"]), Height: atoi(t.Attrs["height"])})
			}
		}
	}

	addContents(media["content"])
	addThumbs(media["thumbnail"])

	for _, g := range media["group"] {
		addContents(g.Children["content"])
		addThumbs(g.Children["thumbnail"])
		if res.Description == "" {
			res.Description = firstValue(g.Children["description"])
		}
		if res.Credit == "" {
			res.Credit = firstValue(g.Children["credit"])
		}
		if res.Title == "" {
			res.Title = firstValue(g.Children["title"])
		}
	}

	// thumbnails nested in media:content count as item thumbnails too
	for _, c := range media["content"] {
		addThumbs(c.Children["thumbnail"])
	}
	return res
}

func mediaContent(e ext.Extension) domain.MediaContent {
	return domain.MediaContent{
		URL:         e.Attrs["url"],
		Medium:      strings.ToLower(e.Attrs["medium"]),
		Type:        strings.ToLower(e.Attrs["type"]),
		Width:       atoi(e.Attrs["width"]),
		Height:      atoi(e.Attrs["height"]),
		Title:       firstValue(e.Children["title"]),
		Description: firstValue(e.Children["description"]),
		Credit:      firstValue(e.Children["credit"]),
	}
}

func firstValue(list []ext.Extension) string {
	for _, e := range list {
		if v := strings.TrimSpace(e.Value); v != "" {
			return v
		}
	}
	return ""
}

func atoi(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// detectNonFeed recognizes html pages and anti-bot challenges served in place of a feed
func detectNonFeed(body []byte) error {
	head := body
	if len(head) > 4096 {
		head = head[:4096]
	}
	lower := strings.ToLower(string(head))

	// strip xml declaration so "<?xml ...?><html" is still detected
	start := strings.TrimSpace(lower)
	if strings.HasPrefix(start, "<?xml") {
		if idx := strings.Index(start, "?>"); idx >= 0 {
			start = strings.TrimSpace(start[idx+2:])
		}
	}
	isHTML := strings.HasPrefix(start, "<!doctype html") || strings.HasPrefix(start, "<html")
	if !isHTML {
		return nil
	}

	for _, m := range challengeMarkers {
		if strings.Contains(lower, m) {
			return fmt.Errorf("%w: the site returned an anti-bot challenge page (%q), try again later or use a relay", ErrNotFeed, m)
		}
	}
	return fmt.Errorf("%w: the URL points to an HTML page, use the site's RSS or Atom link instead", ErrNotFeed)
}
