package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/feedsync/pkg/domain"
)

// OPMLEntry is a subscription read from an OPML document
type OPMLEntry struct {
	Title    string
	URL      string
	Category string
}

type opmlOutline struct {
	Text     string        `xml:"text,attr"`
	Title    string        `xml:"title,attr,omitempty"`
	Type     string        `xml:"type,attr,omitempty"`
	XMLURL   string        `xml:"xmlUrl,attr,omitempty"`
	HTMLURL  string        `xml:"htmlUrl,attr,omitempty"`
	Outlines []opmlOutline `xml:"outline"`
}

type opmlDoc struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    struct {
		Title       string `xml:"title"`
		DateCreated string `xml:"dateCreated,omitempty"`
	} `xml:"head"`
	Body struct {
		Outlines []opmlOutline `xml:"outline"`
	} `xml:"body"`
}

// GenerateOPML creates an OPML document with active, not deleted sources in the given order
func GenerateOPML(sources []domain.Source) (string, error) {
	doc := opmlDoc{Version: "2.0"}
	doc.Head.Title = "feedsync subscriptions"
	doc.Head.DateCreated = time.Now().Format(time.RFC1123Z)

	for _, s := range sources {
		if !s.IsActive || s.DeletedAt != nil {
			continue
		}
		doc.Body.Outlines = append(doc.Body.Outlines, opmlOutline{
			Text:   s.Name(),
			Title:  s.Name(),
			Type:   "rss",
			XMLURL: s.URL,
		})
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal OPML: %w", err)
	}
	return xml.Header + string(output), nil
}

// ParseOPML reads subscriptions from OPML, flattening nested outlines.
// The name of the enclosing outline becomes the entry category.
func ParseOPML(data []byte) ([]OPMLEntry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("parse OPML: empty document")
	}
	var doc opmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse OPML: %w", err)
	}

	var res []OPMLEntry
	seen := map[string]bool{}
	var walk func(outlines []opmlOutline, category string)
	walk = func(outlines []opmlOutline, category string) {
		for _, o := range outlines {
			if u := strings.TrimSpace(o.XMLURL); u != "" {
				if !seen[u] {
					seen[u] = true
					title := o.Title
					if title == "" {
						title = o.Text
					}
					res = append(res, OPMLEntry{Title: title, URL: u, Category: category})
				}
				continue
			}
			name := o.Text
			if name == "" {
				name = o.Title
			}
			walk(o.Outlines, name)
		}
	}
	walk(doc.Body.Outlines, "")
	return res, nil
}
