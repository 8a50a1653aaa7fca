// Package images selects a representative image for a feed item and validates it with a HEAD request.
package images

import (
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedsync/pkg/domain"
)

// placeholderMarkers are url fragments of spacers, lazy-load stubs and default pictures
var placeholderMarkers = []string{
	"placeholder", "spacer", "blank", "dummy", "pixel", "transparent", "loading", "no-image", "default-image",
}

// sizeInName matches dimensions in file names like 1x1.gif or icon-16x16.png
var sizeInName = regexp.MustCompile(`(\d{1,5})x(\d{1,5})`)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".avif", ".bmp"}

// ExtractBestImage picks the best image candidate of the item without any network calls.
// Preference: media:content (medium image first), media:thumbnail, image enclosure,
// figure with figcaption, any figure, then the first img of the item body.
func ExtractBestImage(item domain.ParsedItem) (domain.ImageResult, bool) {
	if res, ok := fromMediaContent(item.Media); ok {
		return res, true
	}
	if res, ok := fromThumbnails(item.Media); ok {
		return res, true
	}
	if res, ok := fromEnclosures(item.Enclosures); ok {
		return res, true
	}
	return fromHTML(item.Body())
}

// IsPlaceholder reports whether url is known to point to a placeholder or a tiny image
func IsPlaceholder(imageURL string) bool {
	u := strings.ToLower(strings.TrimSpace(imageURL))
	if u == "" || strings.HasPrefix(u, "data:") {
		return true
	}
	for _, m := range placeholderMarkers {
		if strings.Contains(u, m) {
			return true
		}
	}

	name := u
	if idx := strings.IndexAny(name, "?#"); idx >= 0 {
		name = name[:idx]
	}
	name = path.Base(name)
	for _, m := range sizeInName.FindAllStringSubmatch(name, -1) {
		w, errW := strconv.Atoi(m[1])
		h, errH := strconv.Atoi(m[2])
		if errW == nil && errH == nil && w < 100 && h < 100 {
			return true
		}
	}
	return false
}

func fromMediaContent(m domain.Media) (domain.ImageResult, bool) {
	build := func(c domain.MediaContent) domain.ImageResult {
		return domain.ImageResult{
			URL:     c.URL,
			Caption: firstNonEmpty(c.Description, m.Description, c.Title, m.Title),
			Credit:  firstNonEmpty(c.Credit, m.Credit),
			Source:  domain.ImageFromMediaContent,
		}
	}

	for _, c := range m.Contents {
		if c.Medium == "image" && usable(c.URL) {
			return build(c), true
		}
	}
	// no explicit medium, accept by mime type or file extension
	for _, c := range m.Contents {
		if c.Medium != "" || !usable(c.URL) {
			continue
		}
		if strings.HasPrefix(c.Type, "image/") || (c.Type == "" && hasImageExtension(c.URL)) {
			return build(c), true
		}
	}
	return domain.ImageResult{}, false
}

func fromThumbnails(m domain.Media) (domain.ImageResult, bool) {
	for _, t := range m.Thumbnails {
		if usable(t.URL) {
			return domain.ImageResult{URL: t.URL, Caption: firstNonEmpty(m.Description, m.Title), Credit: m.Credit,
				Source: domain.ImageFromMediaThumbnail}, true
		}
	}
	return domain.ImageResult{}, false
}

func fromEnclosures(encs []domain.Enclosure) (domain.ImageResult, bool) {
	for _, e := range encs {
		t := strings.ToLower(e.Type)
		isImage := strings.HasPrefix(t, "image/") || (t == "" && hasImageExtension(e.URL))
		if isImage && usable(e.URL) {
			return domain.ImageResult{URL: e.URL, Source: domain.ImageFromEnclosure}, true
		}
	}
	return domain.ImageResult{}, false
}

func fromHTML(body string) (domain.ImageResult, bool) {
	if !strings.Contains(body, "<img") {
		return domain.ImageResult{}, false
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		lgr.Printf("[DEBUG] can't parse item body for images: %v", err)
		return domain.ImageResult{}, false
	}

	type figure struct{ url, caption string }
	var figures []figure
	doc.Find("figure").Each(func(_ int, s *goquery.Selection) {
		s.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
			src, _ := img.Attr("src")
			if !usable(src) {
				return true
			}
			caption := strings.Join(strings.Fields(s.Find("figcaption").First().Text()), " ")
			figures = append(figures, figure{url: strings.TrimSpace(src), caption: caption})
			return false
		})
	})

	for _, f := range figures {
		if f.caption != "" {
			return domain.ImageResult{URL: f.url, Caption: f.caption, Source: domain.ImageFromFigure}, true
		}
	}
	if len(figures) > 0 {
		return domain.ImageResult{URL: figures[0].url, Source: domain.ImageFromFigure}, true
	}

	var res domain.ImageResult
	found := false
	doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src, _ := img.Attr("src")
		if !usable(src) {
			return true
		}
		alt, _ := img.Attr("alt")
		res = domain.ImageResult{URL: strings.TrimSpace(src), Caption: strings.TrimSpace(alt), Source: domain.ImageFromImg}
		found = true
		return false
	})
	return res, found
}

// usable checks url is absolute http(s) and not a placeholder
func usable(u string) bool {
	u = strings.TrimSpace(u)
	lu := strings.ToLower(u)
	if !strings.HasPrefix(lu, "http://") && !strings.HasPrefix(lu, "https://") && !strings.HasPrefix(lu, "//") {
		return false
	}
	return !IsPlaceholder(u)
}

func hasImageExtension(u string) bool {
	lu := strings.ToLower(u)
	if idx := strings.IndexAny(lu, "?#"); idx >= 0 {
		lu = lu[:idx]
	}
	ext := path.Ext(lu)
	for _, e := range imageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
