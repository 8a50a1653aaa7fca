package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedsync/pkg/domain"
)

func TestClient_Sync(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/sync", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "refresh", r.URL.Query().Get("mode"))
		assert.Equal(t, "webp", r.URL.Query().Get("image_compression"))
		assert.Equal(t, "https://example.com/rss", r.URL.Query().Get("source_url"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"success": true, "items": [
			{"id": "1", "guid": "g1", "title": "first", "link": "https://example.com/1",
			 "published_at": "2024-05-01T10:00:00Z", "source_url": "https://example.com/rss", "word_count": 250},
			{"id": "2", "guid": "g2", "title": "second", "source_url": "https://example.com/rss", "tags": ["a"]}
		]}`))
	}))
	defer ts.Close()

	c := NewClient(ClientParams{BaseURL: ts.URL + "/", Token: StaticToken("secret")})
	items, err := c.Sync(context.Background(), SyncRequest{Mode: domain.SyncRefresh, ImageCompression: "webp",
		SourceURL: "https://example.com/rss", Limit: 50})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "g1", items[0].GUID)
	assert.Equal(t, 250, items[0].WordCount)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), items[0].PublishedAt.UTC())
	assert.Empty(t, items[1].Link)
	assert.Equal(t, []string{"a"}, items[1].Tags)
}

func TestClient_SyncDefaults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sync", r.URL.Query().Get("mode"))
		assert.False(t, r.URL.Query().Has("limit"))
		assert.False(t, r.URL.Query().Has("source_url"))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"success": true, "items": []}`))
	}))
	defer ts.Close()

	items, err := NewClient(ClientParams{BaseURL: ts.URL}).Sync(context.Background(), SyncRequest{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClient_ProtocolErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "unsuccessful", status: http.StatusOK, body: `{"success": false, "error": "quota exceeded"}`},
		{name: "bad json", status: http.StatusOK, body: `<html>oops</html>`},
		{name: "server error", status: http.StatusInternalServerError, body: `internal`},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"success": false}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			c := NewClient(ClientParams{BaseURL: ts.URL})
			_, err := c.Sync(context.Background(), SyncRequest{})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrProtocol)

			err = c.Ack(context.Background(), []string{"1"})
			assert.ErrorIs(t, err, ErrProtocol)
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer ts.Close()

	c := NewClient(ClientParams{BaseURL: ts.URL, Timeout: 20 * time.Millisecond})
	_, err := c.Sync(context.Background(), SyncRequest{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProtocol)
}

func TestClient_Ack(t *testing.T) {
	var got domain.SyncAckBatch
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/ack", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer ts.Close()

	c := NewClient(ClientParams{BaseURL: ts.URL, Token: StaticToken("t")})
	require.NoError(t, c.Ack(context.Background(), []string{"1", "2", "3"}))
	assert.Equal(t, []string{"1", "2", "3"}, got.ItemIDs)

	// nothing to ack, no request
	ts.Close()
	assert.NoError(t, c.Ack(context.Background(), nil))
}

func TestClient_SubscribeUnsubscribe(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/subscribe":
			var req struct {
				URL   string `json:"url"`
				Title string `json:"title"`
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "https://example.com/rss", req.URL)
			assert.Equal(t, "Example", req.Title)
			_, _ = w.Write([]byte(`{"success": true, "id": "sub-42"}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/subscribe/sub-42":
			_, _ = w.Write([]byte(`{"success": true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	c := NewClient(ClientParams{BaseURL: ts.URL})
	id, err := c.Subscribe(context.Background(), "https://example.com/rss", "Example")
	require.NoError(t, err)
	assert.Equal(t, "sub-42", id)

	require.NoError(t, c.Unsubscribe(context.Background(), "sub-42"))
	assert.ErrorIs(t, c.Unsubscribe(context.Background(), "other"), ErrProtocol)
	assert.Error(t, c.Unsubscribe(context.Background(), ""))
}

type failingToken struct{}

func (failingToken) Token(context.Context) (string, error) { return "", errors.New("not logged in") }

func TestClient_TokenError(t *testing.T) {
	c := NewClient(ClientParams{BaseURL: "http://127.0.0.1:1", Token: failingToken{}})
	_, err := c.Sync(context.Background(), SyncRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}
