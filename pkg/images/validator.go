package images

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/feed"
)

// size bounds of an acceptable image
const (
	MinImageSize = 5000
	MaxImageSize = 10_000_000
	MinGIFSize   = 20_000
)

// Validator checks image urls with a HEAD request
type Validator struct {
	client      *http.Client
	timeout     time.Duration
	antiHotlink []string
}

// NewValidator makes a validator. Hosts matching antiHotlink domains (suffix match) are accepted
// without a request because they reject direct HEAD requests.
func NewValidator(client *http.Client, timeout time.Duration, antiHotlink []string) *Validator {
	if client == nil {
		client = &http.Client{}
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Validator{client: client, timeout: timeout, antiHotlink: antiHotlink}
}

// Validate reports whether the image is reachable and looks like real content
func (v *Validator) Validate(ctx context.Context, imageURL string) bool {
	if IsPlaceholder(imageURL) {
		return false
	}
	u, err := url.Parse(strings.TrimSpace(imageURL))
	if err != nil || u.Host == "" {
		return false
	}
	if u.Scheme == "" {
		u.Scheme = "https"
	}
	if feed.MatchDomain(u.Hostname(), v.antiHotlink) {
		return true
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, u.String(), http.NoBody)
	if err != nil {
		return false
	}
	resp, err := v.client.Do(req)
	if err != nil {
		lgr.Printf("[DEBUG] image %s head request failed: %v", imageURL, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		lgr.Printf("[DEBUG] image %s rejected, status %d", imageURL, resp.StatusCode)
		return false
	}

	ctype := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.HasPrefix(ctype, "image/") {
		lgr.Printf("[DEBUG] image %s rejected, content type %q", imageURL, ctype)
		return false
	}

	size := resp.ContentLength
	if size < 0 {
		return true // unknown length
	}
	if size < MinImageSize || size > MaxImageSize {
		lgr.Printf("[DEBUG] image %s rejected, size %d", imageURL, size)
		return false
	}
	if strings.HasPrefix(ctype, "image/gif") && size < MinGIFSize {
		lgr.Printf("[DEBUG] gif %s rejected, size %d", imageURL, size)
		return false
	}
	return true
}

// Pipeline selects and validates the representative image of an item
type Pipeline struct {
	validator *Validator
}

// NewPipeline makes a pipeline, nil validator disables network validation
func NewPipeline(validator *Validator) *Pipeline {
	return &Pipeline{validator: validator}
}

// Select returns the best candidate if it passes validation. Only the top candidate is validated,
// a rejected candidate means no image for the item.
func (p *Pipeline) Select(ctx context.Context, item domain.ParsedItem) (domain.ImageResult, bool) {
	res, ok := ExtractBestImage(item)
	if !ok {
		return domain.ImageResult{}, false
	}
	if strings.HasPrefix(res.URL, "//") {
		res.URL = "https:" + res.URL
	}
	if p.validator == nil {
		return res, true
	}
	if !p.validator.Validate(ctx, res.URL) {
		lgr.Printf("[DEBUG] image %s from %s failed validation, item %q left without image", res.URL, res.Source, item.Title)
		return domain.ImageResult{}, false
	}
	return res, true
}
