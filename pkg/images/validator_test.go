package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/feedsync/pkg/domain"
)

func imageServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, http.MethodHead, r.Method)
		q := r.URL.Query()
		if st := q.Get("status"); st != "" {
			code, _ := strconv.Atoi(st)
			w.WriteHeader(code)
			return
		}
		if ct := q.Get("type"); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		if size := q.Get("size"); size != "" {
			w.Header().Set("Content-Length", size)
		}
		if q.Get("slow") != "" {
			time.Sleep(300 * time.Millisecond)
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestValidator_Validate(t *testing.T) {
	var hits atomic.Int32
	ts := imageServer(t, &hits)
	v := NewValidator(nil, 100*time.Millisecond, nil)

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "jpeg of normal size", query: "?type=image/jpeg&size=50000", want: true},
		{name: "unknown length accepted", query: "?type=image/png", want: true},
		{name: "too small", query: "?type=image/png&size=4999", want: false},
		{name: "exactly min size", query: "?type=image/png&size=5000", want: true},
		{name: "between 5000 and 5KiB", query: "?type=image/png&size=5100", want: true},
		{name: "gif just below min", query: "?type=image/gif&size=19999", want: false},
		{name: "too large", query: "?type=image/jpeg&size=20000000", want: false},
		{name: "small gif", query: "?type=image/gif&size=15000", want: false},
		{name: "big gif", query: "?type=image/gif&size=30000", want: true},
		{name: "not an image", query: "?type=text/html&size=50000", want: false},
		{name: "no content type", query: "?size=50000", want: false},
		{name: "not found", query: "?status=404", want: false},
		{name: "server error", query: "?status=500", want: false},
		{name: "timeout", query: "?type=image/jpeg&size=50000&slow=1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Validate(context.Background(), ts.URL+"/photo.jpg"+tt.query))
		})
	}
}

func TestValidator_NoRequestCases(t *testing.T) {
	var hits atomic.Int32
	ts := imageServer(t, &hits)

	v := NewValidator(nil, time.Second, []string{"127.0.0.1", "hotlink.example.com"})
	assert.True(t, v.Validate(context.Background(), ts.URL+"/photo.jpg?type=text/html&size=10"))
	assert.True(t, v.Validate(context.Background(), "https://img.hotlink.example.com/p.jpg"))
	assert.Equal(t, int32(0), hits.Load(), "anti-hotlink hosts are not requested")

	v = NewValidator(nil, time.Second, nil)
	assert.False(t, v.Validate(context.Background(), "https://cdn.example.com/placeholder-loading.png"))
	assert.False(t, v.Validate(context.Background(), ts.URL+"/1x1.gif?type=image/gif&size=90000"))
	assert.False(t, v.Validate(context.Background(), "not a url"))
	assert.Equal(t, int32(0), hits.Load(), "placeholders rejected before any request")
}

func TestPipeline_Select(t *testing.T) {
	var hits atomic.Int32
	ts := imageServer(t, &hits)

	t.Run("top candidate valid", func(t *testing.T) {
		p := NewPipeline(NewValidator(nil, time.Second, nil))
		item := domain.ParsedItem{Media: domain.Media{Thumbnails: []domain.MediaThumbnail{
			{URL: ts.URL + "/thumb.jpg?type=image/jpeg&size=60000"}}}}
		res, ok := p.Select(context.Background(), item)
		assert.True(t, ok)
		assert.Equal(t, domain.ImageFromMediaThumbnail, res.Source)
	})

	t.Run("top candidate invalid, no fallback to the next one", func(t *testing.T) {
		hits.Store(0)
		p := NewPipeline(NewValidator(nil, time.Second, nil))
		item := domain.ParsedItem{
			Media:      domain.Media{Thumbnails: []domain.MediaThumbnail{{URL: ts.URL + "/thumb.jpg?status=404"}}},
			Enclosures: []domain.Enclosure{{URL: ts.URL + "/enc.jpg?type=image/jpeg&size=60000", Type: "image/jpeg"}},
		}
		res, ok := p.Select(context.Background(), item)
		assert.False(t, ok)
		assert.Empty(t, res.URL)
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("no validator", func(t *testing.T) {
		p := NewPipeline(nil)
		res, ok := p.Select(context.Background(), domain.ParsedItem{Content: `<img src="//cdn.com/a.jpg">`})
		assert.True(t, ok)
		assert.Equal(t, "https://cdn.com/a.jpg", res.URL)
	})

	t.Run("no candidates", func(t *testing.T) {
		_, ok := NewPipeline(nil).Select(context.Background(), domain.ParsedItem{})
		assert.False(t, ok)
	})
}
