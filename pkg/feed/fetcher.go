package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
)

// MaxBodySize limits the size of a feed response
const MaxBodySize = 10 * 1024 * 1024

// DefaultUserAgent used for feed requests when none configured
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// RelayConfig defines the CORS relay used for hosts refusing direct requests.
// URL is a template with {url} placeholder replaced by the escaped feed URL.
type RelayConfig struct {
	URL     string
	Domains []string
}

// Fetcher retrieves raw feed bytes over HTTP
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	relay     RelayConfig
}

// FetcherParams defines fetcher parameters
type FetcherParams struct {
	Timeout   time.Duration
	UserAgent string
	Relay     RelayConfig
	Client    *http.Client // optional, default client made if nil
}

// NewFetcher makes a feed fetcher
func NewFetcher(params FetcherParams) *Fetcher {
	if params.Timeout <= 0 {
		params.Timeout = 15 * time.Second
	}
	if params.UserAgent == "" {
		params.UserAgent = DefaultUserAgent
	}
	client := params.Client
	if client == nil {
		client = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return &Fetcher{client: client, timeout: params.Timeout, userAgent: params.UserAgent, relay: params.Relay}
}

// Fetch gets the feed body. Transport failures and non-2xx responses are returned as *NetworkError,
// oversized bodies as ErrBodyTooLarge.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	target := f.requestURL(feedURL)
	if target != feedURL {
		lgr.Printf("[DEBUG] fetching %s via relay", feedURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	addBrowserHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: feedURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
		return nil, &NetworkError{URL: feedURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("status %s", resp.Status)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, &NetworkError{URL: feedURL, Err: fmt.Errorf("read body: %w", err)}
	}
	if len(body) > MaxBodySize {
		return nil, fmt.Errorf("%w: more than %d bytes from %s", ErrBodyTooLarge, MaxBodySize, feedURL)
	}
	return body, nil
}

// requestURL returns the relay url for hosts listed in the relay policy, the original url otherwise
func (f *Fetcher) requestURL(feedURL string) string {
	if f.relay.URL == "" || len(f.relay.Domains) == 0 {
		return feedURL
	}
	u, err := url.Parse(feedURL)
	if err != nil {
		return feedURL
	}
	if !MatchDomain(u.Hostname(), f.relay.Domains) {
		return feedURL
	}
	return strings.ReplaceAll(f.relay.URL, "{url}", url.QueryEscape(feedURL))
}

// MatchDomain reports whether host equals one of domains or is a subdomain of it
func MatchDomain(host string, domains []string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(d), "."))
		if d == "" {
			continue
		}
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
