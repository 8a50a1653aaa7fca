package content

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pkgz/lgr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// lazyAttrs hold the real image url on lazy-loaded pages, in lookup order
var lazyAttrs = []string{"data-src", "data-original", "data-url", "data-lazy-src"}

// strippedElements never carry article content
var strippedElements = "nav, header, footer, script, style, aside, form, noscript, iframe"

// NormalizeExcerpt rewrites a feed-provided html fragment: lazy-load attributes are promoted to src
// and relative src/href resolved against the article url. Returns the input unchanged if it can't be parsed.
func NormalizeExcerpt(fragment, articleURL string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	base, err := url.Parse(articleURL)
	if err != nil || base.Host == "" {
		base = nil
	}

	ctxNode := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctxNode)
	if err != nil {
		lgr.Printf("[DEBUG] can't parse excerpt of %s: %v", articleURL, err)
		return fragment
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		walk(n, func(el *html.Node) {
			promoteLazySrc(el)
			if base != nil {
				resolveAttr(el, "src", base)
				resolveAttr(el, "href", base)
			}
		})
		if err := html.Render(&buf, n); err != nil {
			lgr.Printf("[DEBUG] can't render excerpt of %s: %v", articleURL, err)
			return fragment
		}
	}
	return buf.String()
}

// CleanPage removes non-content elements from a full page, fixes lazy images and makes
// root-relative and relative src absolute using the page url. Returns the cleaned html document.
func CleanPage(page []byte, base *url.URL) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", err
	}

	doc.Find(strippedElements).Remove()

	doc.Find("img, source, video, audio").Each(func(_ int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			promoteLazySrc(n)
			if base != nil {
				resolveAttr(n, "src", base)
			}
		}
	})
	if base != nil {
		doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
			for _, n := range s.Nodes {
				resolveAttr(n, "href", base)
			}
		})
	}

	return doc.Html()
}

func walk(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

// promoteLazySrc sets src from the first lazy attribute when src is missing or a placeholder data uri
func promoteLazySrc(n *html.Node) {
	if n.Type != html.ElementNode {
		return
	}
	switch n.DataAtom {
	case atom.Img, atom.Source, atom.Video, atom.Audio, atom.Iframe:
	default:
		return
	}

	src, hasSrc := getAttr(n, "src")
	if hasSrc && strings.TrimSpace(src) != "" && !strings.HasPrefix(strings.TrimSpace(src), "data:") {
		return
	}
	for _, name := range lazyAttrs {
		if v, ok := getAttr(n, name); ok && strings.TrimSpace(v) != "" {
			setAttr(n, "src", strings.TrimSpace(v))
			return
		}
	}
}

func resolveAttr(n *html.Node, name string, base *url.URL) {
	v, ok := getAttr(n, name)
	if !ok {
		return
	}
	v = strings.TrimSpace(v)
	if v == "" || strings.HasPrefix(v, "#") || strings.HasPrefix(v, "data:") ||
		strings.HasPrefix(v, "mailto:") || strings.HasPrefix(v, "javascript:") {
		return
	}
	ref, err := url.Parse(v)
	if err != nil || ref.IsAbs() {
		return
	}
	setAttr(n, name, base.ResolveReference(ref).String())
}

func getAttr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, name, val string) {
	for i, a := range n.Attr {
		if a.Key == name {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: val})
}
