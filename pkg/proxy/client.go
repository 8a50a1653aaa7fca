// Package proxy implements the client side of the remote aggregation server protocol.
// The server fetches and renders items itself, the client pulls them, stores them locally
// and acknowledges consumed ids so the server doesn't redeliver them.
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedsync/pkg/domain"
)

// DefaultTimeout is a per-request timeout for proxy calls
const DefaultTimeout = 30 * time.Second

const maxResponseSize = 32 * 1024 * 1024

// ErrProtocol is returned when the server response can't be used
var ErrProtocol = errors.New("proxy protocol error")

// TokenProvider supplies the bearer token for proxy requests
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenProvider returning a fixed token
type StaticToken string

// Token returns the token itself
func (s StaticToken) Token(context.Context) (string, error) { return string(s), nil }

// SyncRequest defines parameters of a sync call
type SyncRequest struct {
	Mode             domain.SyncMode
	ImageCompression string
	SourceURL        string // limits sync to a single subscription, optional
	Limit            int
}

// Item is a pre-rendered item delivered by the server
type Item struct {
	ID           string    `json:"id"`
	GUID         string    `json:"guid"`
	Title        string    `json:"title"`
	Link         string    `json:"link,omitempty"`
	Content      string    `json:"content"`
	Summary      string    `json:"summary,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	ImageCaption string    `json:"image_caption,omitempty"`
	ImageCredit  string    `json:"image_credit,omitempty"`
	Author       string    `json:"author,omitempty"`
	PublishedAt  time.Time `json:"published_at"`
	WordCount    int       `json:"word_count"`
	ReadingTime  int       `json:"reading_time"`
	SourceURL    string    `json:"source_url"`
	SourceTitle  string    `json:"source_title,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
}

type syncResponse struct {
	Success bool   `json:"success"`
	Items   []Item `json:"items"`
	Error   string `json:"error,omitempty"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ClientParams defines parameters of the proxy client
type ClientParams struct {
	BaseURL string
	Token   TokenProvider
	Timeout time.Duration
	Client  *http.Client
}

// Client talks to the aggregation server REST API
type Client struct {
	baseURL string
	token   TokenProvider
	timeout time.Duration
	client  *http.Client
}

// NewClient makes a proxy client, base url is the server root like https://proxy.example.com
func NewClient(params ClientParams) *Client {
	res := &Client{
		baseURL: strings.TrimSuffix(params.BaseURL, "/"),
		token:   params.Token,
		timeout: params.Timeout,
		client:  params.Client,
	}
	if res.timeout <= 0 {
		res.timeout = DefaultTimeout
	}
	if res.client == nil {
		res.client = &http.Client{}
	}
	if res.token == nil {
		res.token = StaticToken("")
	}
	return res
}

// Sync pulls pending items from the server
func (c *Client) Sync(ctx context.Context, req SyncRequest) ([]Item, error) {
	q := url.Values{}
	mode := req.Mode
	if mode == "" {
		mode = domain.SyncIncremental
	}
	q.Set("mode", string(mode))
	if req.ImageCompression != "" {
		q.Set("image_compression", req.ImageCompression)
	}
	if req.SourceURL != "" {
		q.Set("source_url", req.SourceURL)
	}
	if req.Limit > 0 {
		q.Set("limit", strconv.Itoa(req.Limit))
	}

	var resp syncResponse
	if err := c.do(ctx, http.MethodGet, "/api/sync?"+q.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("sync: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("sync: %w: %s", ErrProtocol, resp.errorMessage())
	}
	lgr.Printf("[DEBUG] proxy sync (%s) returned %d items", mode, len(resp.Items))
	return resp.Items, nil
}

// Ack acknowledges consumed items
func (c *Client) Ack(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	var resp statusResponse
	if err := c.do(ctx, http.MethodPost, "/api/ack", domain.SyncAckBatch{ItemIDs: ids}, &resp); err != nil {
		return fmt.Errorf("ack %d items: %w", len(ids), err)
	}
	if !resp.Success {
		return fmt.Errorf("ack %d items: %w: %s", len(ids), ErrProtocol, resp.errorMessage())
	}
	return nil
}

// Subscribe registers a feed on the server and returns the subscription id
func (c *Client) Subscribe(ctx context.Context, feedURL, title string) (string, error) {
	req := struct {
		URL   string `json:"url"`
		Title string `json:"title,omitempty"`
	}{URL: feedURL, Title: title}

	var resp statusResponse
	if err := c.do(ctx, http.MethodPost, "/api/subscribe", req, &resp); err != nil {
		return "", fmt.Errorf("subscribe %s: %w", feedURL, err)
	}
	if !resp.Success {
		return "", fmt.Errorf("subscribe %s: %w: %s", feedURL, ErrProtocol, resp.errorMessage())
	}
	return resp.ID, nil
}

// Unsubscribe removes a subscription from the server
func (c *Client) Unsubscribe(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("unsubscribe: empty subscription id")
	}
	var resp statusResponse
	if err := c.do(ctx, http.MethodDelete, "/api/subscribe/"+url.PathEscape(id), nil, &resp); err != nil {
		return fmt.Errorf("unsubscribe %s: %w", id, err)
	}
	if !resp.Success {
		return fmt.Errorf("unsubscribe %s: %w: %s", id, ErrProtocol, resp.errorMessage())
	}
	return nil
}

// do sends a request with optional json body and decodes json response into out
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	token, err := c.token.Token(ctx)
	if err != nil {
		return fmt.Errorf("get token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d: %s", ErrProtocol, resp.StatusCode, snippet(data))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrProtocol, err) //nolint:errorlint // protocol error is the cause
	}
	return nil
}

func (r syncResponse) errorMessage() string {
	if r.Error != "" {
		return r.Error
	}
	return "unsuccessful response"
}

func (r statusResponse) errorMessage() string {
	if r.Error != "" {
		return r.Error
	}
	return "unsuccessful response"
}

func snippet(data []byte) string {
	s := strings.TrimSpace(string(data))
	if r := []rune(s); len(r) > 200 {
		return string(r[:200]) + "..."
	}
	return s
}
