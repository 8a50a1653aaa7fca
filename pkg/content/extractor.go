// Package content normalizes feed excerpts and, when an excerpt is too short, fetches the article page
// and extracts its main content.
package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/markusmobius/go-trafilatura"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/time/rate"

	"github.com/umputun/feedsync/pkg/domain"
)

// DefaultMinExcerptLength is the plain-text length below which the full page is fetched
const DefaultMinExcerptLength = 200

// maxPageSize limits the size of a fetched article page
const maxPageSize = 5 * 1024 * 1024

// ErrExtraction is returned when the page was fetched but no usable content was found
var ErrExtraction = errors.New("content extraction failed")

// Extractor builds article content from feed excerpts and original pages
type Extractor struct {
	client           *http.Client
	timeout          time.Duration
	userAgent        string
	minExcerptLength int
	limiter          *rate.Limiter
	policy           *bluemonday.Policy
}

// Params defines extractor parameters
type Params struct {
	Timeout          time.Duration // per page request, default 15s
	UserAgent        string        // default is a random mobile browser
	MinExcerptLength int           // default 200
	RateLimit        time.Duration // min interval between page requests, 0 disables limiting
	Client           *http.Client
}

// NewExtractor creates a content extractor
func NewExtractor(params Params) *Extractor {
	if params.Timeout <= 0 {
		params.Timeout = 15 * time.Second
	}
	if params.MinExcerptLength <= 0 {
		params.MinExcerptLength = DefaultMinExcerptLength
	}
	client := params.Client
	if client == nil {
		client = &http.Client{}
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if params.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Every(params.RateLimit), 1)
	}
	return &Extractor{
		client:           client,
		timeout:          params.Timeout,
		userAgent:        params.UserAgent,
		minExcerptLength: params.MinExcerptLength,
		limiter:          limiter,
		policy:           bluemonday.UGCPolicy(),
	}
}

// Extract returns html content for an article. The feed excerpt is always normalized against articleURL.
// If its text is shorter than the threshold the original page is fetched and its main content used instead.
// Any failure of the page path is logged and the normalized excerpt returned.
func (e *Extractor) Extract(ctx context.Context, rawContent, articleURL string, contentType domain.ContentType) string {
	excerpt := e.policy.Sanitize(NormalizeExcerpt(rawContent, articleURL))
	excerptLen := len([]rune(PlainText(excerpt)))
	if excerptLen >= e.minExcerptLength {
		return excerpt
	}

	full, err := e.FetchArticle(ctx, articleURL, contentType)
	if err != nil {
		lgr.Printf("[WARN] full content for %s not extracted, using feed excerpt: %v", articleURL, err)
		return excerpt
	}
	if len([]rune(PlainText(full))) <= excerptLen {
		lgr.Printf("[DEBUG] extracted content for %s is not longer than the excerpt, keeping excerpt", articleURL)
		return excerpt
	}
	return full
}

// FetchArticle retrieves the page and extracts its main content as sanitized html.
// Images are kept only for image_text content.
func (e *Extractor) FetchArticle(ctx context.Context, urlStr string, contentType domain.ContentType) (string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %q", urlStr)
	}

	if err = e.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	ua := e.userAgent
	if ua == "" {
		ua = randomMobileUserAgent()
	}
	req.Header.Set("User-Agent", ua)
	addBrowserHeaders(req)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	page, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return "", fmt.Errorf("read page %s: %w", urlStr, err)
	}

	// the final url after redirects is the base for relative links
	base := parsedURL
	if resp.Request != nil && resp.Request.URL != nil {
		base = resp.Request.URL
	}

	cleaned, err := CleanPage(page, base)
	if err != nil {
		return "", fmt.Errorf("clean page %s: %w", urlStr, err)
	}

	withImages := contentType == domain.ContentImageText
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   false,
		IncludeImages:   withImages,
		IncludeLinks:    true,
		Deduplicate:     true,
		OriginalURL:     base,
	}

	result, err := trafilatura.Extract(strings.NewReader(cleaned), opts)
	if err != nil {
		return "", fmt.Errorf("extract content from %s: %w", urlStr, err)
	}
	if result == nil || strings.TrimSpace(result.ContentText) == "" {
		return "", fmt.Errorf("%w: no text content in %s", ErrExtraction, urlStr)
	}

	rendered := renderNode(result.ContentNode)
	if rendered == "" {
		// no node tree, keep text split into paragraphs
		rendered = textToHTML(result.ContentText)
	}

	sanitized := strings.TrimSpace(e.policy.Sanitize(rendered))
	if sanitized == "" {
		return "", fmt.Errorf("%w: empty content after sanitizing %s", ErrExtraction, urlStr)
	}
	return sanitized, nil
}

func renderNode(node *html.Node) string {
	if node == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, node); err != nil {
		lgr.Printf("[DEBUG] can't render extracted node: %v", err)
		return ""
	}
	return buf.String()
}

func textToHTML(text string) string {
	var sb strings.Builder
	for _, para := range strings.Split(text, "\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		sb.WriteString("<p>")
		sb.WriteString(html.EscapeString(para))
		sb.WriteString("</p>")
	}
	return sb.String()
}
