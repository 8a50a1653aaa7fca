package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/events"
	"github.com/umputun/feedsync/pkg/feed"
	"github.com/umputun/feedsync/pkg/images"
	"github.com/umputun/feedsync/pkg/proxy"
	proxymocks "github.com/umputun/feedsync/pkg/proxy/mocks"
	"github.com/umputun/feedsync/pkg/scheduler/mocks"
)

func makeRSS(n int) []byte {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0"?><rss version="2.0"><channel><title>Test</title><link>https://example.com</link>`)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := range n {
		fmt.Fprintf(&sb, `<item><title>Item %d</title><link>https://example.com/%d</link><guid>guid-%d</guid>`+
			`<description>text of item %d</description><pubDate>%s</pubDate></item>`,
			i, i, i, i, base.Add(-time.Duration(i)*time.Hour).Format(time.RFC1123Z))
	}
	sb.WriteString(`</channel></rss>`)
	return []byte(sb.String())
}

type eventRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *eventRecorder) Emit(e events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *eventRecorder) types() []events.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]events.Type, 0, len(r.events))
	for _, e := range r.events {
		res = append(res, e.Type)
	}
	return res
}

type testDeps struct {
	sources   *mocks.SourceManagerMock
	articles  *mocks.ArticleManagerMock
	fetcher   *mocks.FetcherMock
	extractor *mocks.ExtractorMock
	events    *eventRecorder
}

func newTestDeps(sources ...domain.Source) *testDeps {
	byID := map[int64]domain.Source{}
	for _, s := range sources {
		byID[s.ID] = s
	}
	return &testDeps{
		sources: &mocks.SourceManagerMock{
			GetSourceFunc: func(_ context.Context, id int64) (*domain.Source, error) {
				s, ok := byID[id]
				if !ok {
					return nil, domain.ErrNotFound
				}
				return &s, nil
			},
			GetSourcesFunc: func(context.Context, bool) ([]domain.Source, error) {
				return sources, nil
			},
			UpdateSourceFetchedFunc: func(context.Context, int64, time.Time) error { return nil },
			UpdateSourceErrorFunc:   func(context.Context, int64, string) error { return nil },
		},
		articles: &mocks.ArticleManagerMock{
			GetRecentRefsFunc: func(context.Context, int64, int) ([]domain.StoredArticleRef, error) { return nil, nil },
			InsertArticlesFunc: func(_ context.Context, articles []domain.Article) (int, error) {
				for i := range articles {
					articles[i].ID = int64(i + 1)
				}
				return len(articles), nil
			},
		},
		fetcher: &mocks.FetcherMock{
			FetchFunc: func(context.Context, string) ([]byte, error) { return makeRSS(5), nil },
		},
		extractor: &mocks.ExtractorMock{
			ExtractFunc: func(_ context.Context, raw, _ string, _ domain.ContentType) string { return raw },
		},
		events: &eventRecorder{},
	}
}

func (d *testDeps) orchestrator(mod func(p *OrchestratorParams)) *Orchestrator {
	p := OrchestratorParams{
		Sources:    d.sources,
		Articles:   d.articles,
		Fetcher:    d.fetcher,
		Extractor:  d.extractor,
		Events:     d.events,
		RetryDelay: time.Millisecond,
	}
	if mod != nil {
		mod(&p)
	}
	return NewOrchestrator(p)
}

func directSource(id int64) domain.Source {
	return domain.Source{ID: id, URL: fmt.Sprintf("https://example.com/feed%d.xml", id), Title: fmt.Sprintf("feed %d", id),
		Mode: domain.ModeDirect, ContentType: domain.ContentText, IsActive: true}
}

func TestNewOrchestrator_Defaults(t *testing.T) {
	o := NewOrchestrator(OrchestratorParams{})
	assert.Equal(t, DefaultMaxConcurrent, o.MaxConcurrent)
	assert.Equal(t, DefaultFetchTimeout, o.FetchTimeout)
	assert.Equal(t, DefaultRetryAttempts, o.RetryAttempts)
	assert.Equal(t, DefaultRetryDelay, o.RetryDelay)
	assert.NotNil(t, o.Events)
}

func TestOrchestrator_RefreshAll_EmptyStoreImportsAll(t *testing.T) {
	d := newTestDeps(directSource(1))
	var ready []domain.Article
	res := d.orchestrator(nil).RefreshAll(context.Background(), RefreshOptions{
		OnArticlesReady: func(_ domain.Source, articles []domain.Article) { ready = articles },
	})

	assert.Equal(t, domain.BatchResult{SuccessCount: 1, TotalArticles: 5}, res)
	require.Len(t, d.articles.InsertArticlesCalls(), 1)
	stored := d.articles.InsertArticlesCalls()[0].Articles
	require.Len(t, stored, 5)
	for i, a := range stored {
		assert.Equal(t, fmt.Sprintf("guid-%d", i), a.GUID, "document order is kept")
		assert.Equal(t, fmt.Sprintf("https://example.com/%d", i), a.URL)
		assert.Equal(t, int64(1), a.SourceID)
		assert.Equal(t, fmt.Sprintf("text of item %d", i), a.Summary)
		assert.Equal(t, 4, a.WordCount)
		assert.Equal(t, 1, a.ReadingTime)
	}
	assert.Len(t, ready, 5)

	assert.Equal(t, []events.Type{events.BatchSyncStart, events.BatchSyncEnd, events.AllSourcesRefreshed,
		events.StatsUpdated}, d.events.types())
	require.Len(t, d.sources.UpdateSourceFetchedCalls(), 1)
	assert.Empty(t, d.sources.UpdateSourceErrorCalls())
}

func TestOrchestrator_RefreshSources_StopsAtStoredURL(t *testing.T) {
	d := newTestDeps(directSource(1))
	d.articles.GetRecentRefsFunc = func(_ context.Context, sourceID int64, limit int) ([]domain.StoredArticleRef, error) {
		assert.Equal(t, int64(1), sourceID)
		assert.Equal(t, 20, limit)
		return []domain.StoredArticleRef{{ID: 10, URL: "https://example.com/2", GUID: "guid-2"}}, nil
	}

	res := d.orchestrator(nil).RefreshSources(context.Background(), []int64{1}, RefreshOptions{})
	assert.Equal(t, 2, res.TotalArticles)
	stored := d.articles.InsertArticlesCalls()[0].Articles
	require.Len(t, stored, 2)
	assert.Equal(t, "guid-0", stored[0].GUID)
	assert.Equal(t, "guid-1", stored[1].GUID)

	// single requested source gets its own event
	types := d.events.types()
	assert.Contains(t, types, events.SourceRefreshed)
	assert.NotContains(t, types, events.AllSourcesRefreshed)
	assert.Equal(t, int64(1), d.events.events[2].SourceID)
}

func TestOrchestrator_RefreshSources_NothingNew(t *testing.T) {
	d := newTestDeps(directSource(1))
	d.articles.GetRecentRefsFunc = func(context.Context, int64, int) ([]domain.StoredArticleRef, error) {
		return []domain.StoredArticleRef{{URL: "https://example.com/0"}}, nil
	}

	res := d.orchestrator(nil).RefreshSources(context.Background(), []int64{1}, RefreshOptions{})
	assert.Equal(t, domain.BatchResult{SuccessCount: 1}, res)
	assert.Empty(t, d.articles.InsertArticlesCalls())
	assert.Equal(t, []events.Type{events.BatchSyncStart, events.BatchSyncEnd}, d.events.types())
	assert.Len(t, d.sources.UpdateSourceFetchedCalls(), 1)
}

func TestOrchestrator_MaxArticlesCap(t *testing.T) {
	src := directSource(1)
	src.MaxArticles = 3
	d := newTestDeps(src)
	res := d.orchestrator(nil).RefreshSources(context.Background(), []int64{1}, RefreshOptions{})
	assert.Equal(t, 3, res.TotalArticles)
	assert.Len(t, d.articles.InsertArticlesCalls()[0].Articles, 3)
}

func TestOrchestrator_RetryThenSuccess(t *testing.T) {
	d := newTestDeps(directSource(1))
	var calls atomic.Int32
	d.fetcher.FetchFunc = func(context.Context, string) ([]byte, error) {
		if calls.Add(1) < 3 {
			return nil, &feed.NetworkError{URL: "https://example.com/feed1.xml", StatusCode: 503}
		}
		return makeRSS(4), nil
	}

	res := d.orchestrator(nil).RefreshSources(context.Background(), []int64{1}, RefreshOptions{})
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, domain.BatchResult{SuccessCount: 1, TotalArticles: 4}, res)
	assert.Empty(t, d.sources.UpdateSourceErrorCalls())
}

func TestOrchestrator_RetriesExhausted(t *testing.T) {
	d := newTestDeps(directSource(1), directSource(2))
	d.fetcher.FetchFunc = func(_ context.Context, url string) ([]byte, error) {
		if strings.Contains(url, "feed1") {
			return nil, &feed.NetworkError{URL: url, StatusCode: 500}
		}
		return makeRSS(2), nil
	}
	var reported []domain.SourceError
	var mu sync.Mutex
	res := d.orchestrator(nil).RefreshAll(context.Background(), RefreshOptions{OnError: func(e domain.SourceError) {
		mu.Lock()
		reported = append(reported, e)
		mu.Unlock()
	}})

	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 1, res.FailedCount)
	assert.Equal(t, 2, res.TotalArticles)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "feed 1", res.Errors[0].SourceName)
	assert.Contains(t, res.Errors[0].Message, "status 500")
	assert.Equal(t, res.Errors, reported)
	assert.Len(t, d.fetcher.FetchCalls(), 4, "3 attempts for the failing source, 1 for the other")

	require.Len(t, d.sources.UpdateSourceErrorCalls(), 1)
	assert.Equal(t, int64(1), d.sources.UpdateSourceErrorCalls()[0].Id)
}

func TestOrchestrator_FormatErrorNotRetried(t *testing.T) {
	d := newTestDeps(directSource(1))
	d.fetcher.FetchFunc = func(context.Context, string) ([]byte, error) {
		return []byte(`<html><head><title>Just a moment...</title></head><body>checking your browser</body></html>`), nil
	}

	res := d.orchestrator(nil).RefreshSources(context.Background(), []int64{1}, RefreshOptions{})
	assert.Equal(t, 1, res.FailedCount)
	assert.Len(t, d.fetcher.FetchCalls(), 1)
	require.Len(t, d.sources.UpdateSourceErrorCalls(), 1)
	assert.Contains(t, d.sources.UpdateSourceErrorCalls()[0].ErrMsg, "challenge")
}

func TestOrchestrator_SkipsInactiveAndUnknown(t *testing.T) {
	inactive := directSource(2)
	inactive.IsActive = false
	deleted := directSource(3)
	now := time.Now()
	deleted.DeletedAt = &now
	d := newTestDeps(directSource(1), inactive, deleted)

	res := d.orchestrator(nil).RefreshSources(context.Background(), []int64{1, 2, 3, 99}, RefreshOptions{})
	assert.Equal(t, domain.BatchResult{SuccessCount: 1, TotalArticles: 5}, res)
	require.Len(t, d.fetcher.FetchCalls(), 1)
	assert.Equal(t, "https://example.com/feed1.xml", d.fetcher.FetchCalls()[0].Url)
}

func TestOrchestrator_ConcurrencyLimit(t *testing.T) {
	var sources []domain.Source
	var ids []int64
	for i := range 10 {
		sources = append(sources, directSource(int64(i+1)))
		ids = append(ids, int64(i+1))
	}
	d := newTestDeps(sources...)
	var active, maxActive atomic.Int32
	d.fetcher.FetchFunc = func(context.Context, string) ([]byte, error) {
		n := active.Add(1)
		for {
			m := maxActive.Load()
			if n <= m || maxActive.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		active.Add(-1)
		return makeRSS(1), nil
	}

	var progress []int
	var mu sync.Mutex
	res := d.orchestrator(nil).RefreshSources(context.Background(), ids, RefreshOptions{MaxConcurrent: 2,
		OnProgress: func(done, total int) {
			mu.Lock()
			progress = append(progress, done)
			mu.Unlock()
			assert.Equal(t, 10, total)
		}})

	assert.Equal(t, 10, res.SuccessCount)
	assert.Equal(t, 10, res.TotalArticles)
	assert.LessOrEqual(t, maxActive.Load(), int32(2))
	assert.Len(t, progress, 10)
}

func TestOrchestrator_ProxySourcesDelegated(t *testing.T) {
	proxySrc := directSource(2)
	proxySrc.Mode = domain.ModeProxy
	proxySrc2 := directSource(3)
	proxySrc2.Mode = domain.ModeProxy
	d := newTestDeps(directSource(1), proxySrc, proxySrc2)
	ps := &mocks.ProxySyncerMock{
		SyncSourcesFunc: func(_ context.Context, sources []domain.Source) domain.BatchResult {
			return domain.BatchResult{FailedCount: 1, Errors: []domain.SourceError{{SourceName: "proxy", Message: "bad response"}}}
		},
	}

	res := d.orchestrator(func(p *OrchestratorParams) { p.Proxy = ps }).
		RefreshSources(context.Background(), []int64{1, 2, 3}, RefreshOptions{})

	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 1, res.FailedCount)
	assert.Equal(t, 5, res.TotalArticles)
	assert.Equal(t, []domain.SourceError{{SourceName: "proxy", Message: "bad response"}}, res.Errors)
	require.Len(t, ps.SyncSourcesCalls(), 1)
	assert.Len(t, ps.SyncSourcesCalls()[0].Sources, 2)
	assert.Len(t, d.fetcher.FetchCalls(), 1, "proxy sources are not fetched directly")
}

func TestOrchestrator_ProxyNotConfigured(t *testing.T) {
	proxySrc := directSource(2)
	proxySrc.Mode = domain.ModeProxy
	d := newTestDeps(proxySrc)

	res := d.orchestrator(nil).RefreshSources(context.Background(), []int64{2}, RefreshOptions{})
	assert.Equal(t, 1, res.FailedCount)
	assert.Equal(t, "proxy", res.Errors[0].SourceName)
	require.Len(t, d.sources.UpdateSourceErrorCalls(), 1)
	assert.Equal(t, int64(2), d.sources.UpdateSourceErrorCalls()[0].Id)
}

func TestOrchestrator_FullProxySync(t *testing.T) {
	proxySrc := directSource(2)
	proxySrc.Mode = domain.ModeProxy
	d := newTestDeps(directSource(1), proxySrc)
	ps := &mocks.ProxySyncerMock{
		SyncAllFunc: func(_ context.Context, mode domain.SyncMode, sources []domain.Source) domain.BatchResult {
			assert.Equal(t, domain.SyncIncremental, mode)
			return domain.BatchResult{SuccessCount: 1, TotalArticles: 7}
		},
	}
	res := d.orchestrator(func(p *OrchestratorParams) { p.Proxy = ps }).
		RefreshAll(context.Background(), RefreshOptions{FullProxySync: true})
	assert.Equal(t, domain.BatchResult{SuccessCount: 2, TotalArticles: 12}, res)
	require.Len(t, ps.SyncAllCalls(), 1)
	assert.Equal(t, []domain.Source{proxySrc}, ps.SyncAllCalls()[0].Sources, "proxy sources passed for status update")
	assert.Empty(t, ps.SyncSourcesCalls())
}

func TestOrchestrator_FullProxySync_UpdatesSourceStatus(t *testing.T) {
	proxySrc := directSource(2)
	proxySrc.Mode = domain.ModeProxy

	newSyncer := func(syncErr error) (*proxy.Syncer, *proxymocks.StoreMock) {
		store := &proxymocks.StoreMock{
			UpdateSourceFetchedFunc: func(context.Context, int64, time.Time) error { return nil },
			UpdateSourceErrorFunc:   func(context.Context, int64, string) error { return nil },
		}
		client := &proxymocks.ServerClientMock{
			SyncFunc: func(context.Context, proxy.SyncRequest) ([]proxy.Item, error) { return nil, syncErr },
		}
		return proxy.NewSyncer(proxy.SyncerParams{Client: client, Store: store}), store
	}

	t.Run("server failure", func(t *testing.T) {
		d := newTestDeps(proxySrc)
		syncer, store := newSyncer(errors.New("server down"))
		res := d.orchestrator(func(p *OrchestratorParams) { p.Proxy = syncer }).
			RefreshAll(context.Background(), RefreshOptions{FullProxySync: true})
		assert.Equal(t, 1, res.FailedCount)
		require.Len(t, store.UpdateSourceErrorCalls(), 1)
		assert.Equal(t, int64(2), store.UpdateSourceErrorCalls()[0].Id)
		assert.Equal(t, "server down", store.UpdateSourceErrorCalls()[0].ErrMsg)
		assert.Empty(t, store.UpdateSourceFetchedCalls())
	})

	t.Run("success", func(t *testing.T) {
		d := newTestDeps(proxySrc)
		syncer, store := newSyncer(nil)
		res := d.orchestrator(func(p *OrchestratorParams) { p.Proxy = syncer }).
			RefreshAll(context.Background(), RefreshOptions{FullProxySync: true})
		assert.Equal(t, domain.BatchResult{SuccessCount: 1}, res)
		require.Len(t, store.UpdateSourceFetchedCalls(), 1)
		assert.Equal(t, int64(2), store.UpdateSourceFetchedCalls()[0].Id)
		assert.Empty(t, store.UpdateSourceErrorCalls())
	})
}

func TestOrchestrator_SyncFromServer(t *testing.T) {
	proxySrc := directSource(2)
	proxySrc.Mode = domain.ModeProxy
	d := newTestDeps(directSource(1), proxySrc)
	ps := &mocks.ProxySyncerMock{
		SyncAllFunc: func(_ context.Context, mode domain.SyncMode, _ []domain.Source) domain.BatchResult {
			assert.Equal(t, domain.SyncRefresh, mode)
			return domain.BatchResult{SuccessCount: 1, TotalArticles: 2}
		},
	}
	o := d.orchestrator(func(p *OrchestratorParams) { p.Proxy = ps })
	res := o.SyncFromServer(context.Background(), domain.SyncRefresh)
	assert.Equal(t, domain.BatchResult{SuccessCount: 1, TotalArticles: 2}, res)
	assert.Equal(t, []events.Type{events.BatchSyncStart, events.BatchSyncEnd, events.AllSourcesRefreshed,
		events.StatsUpdated}, d.events.types())
	require.Len(t, ps.SyncAllCalls(), 1)
	assert.Equal(t, []domain.Source{proxySrc}, ps.SyncAllCalls()[0].Sources)

	d2 := newTestDeps()
	res = d2.orchestrator(nil).SyncFromServer(context.Background(), domain.SyncIncremental)
	assert.Equal(t, 1, res.FailedCount)
	assert.Equal(t, []events.Type{events.BatchSyncStart, events.BatchSyncEnd}, d2.events.types())
}

func TestOrchestrator_FilterAndImages(t *testing.T) {
	d := newTestDeps(directSource(1))
	filter := &mocks.FilterMock{ApplyFunc: func(_ context.Context, _ int64, articles []domain.Article) ([]domain.Article, error) {
		return articles[:2], nil
	}}
	images := &mocks.ImageSelectorMock{SelectFunc: func(_ context.Context, item domain.ParsedItem) (domain.ImageResult, bool) {
		if item.GUID == "guid-0" {
			return domain.ImageResult{URL: "https://example.com/img.jpg", Caption: "cap", Source: domain.ImageFromEnclosure}, true
		}
		return domain.ImageResult{}, false
	}}

	res := d.orchestrator(func(p *OrchestratorParams) { p.Filter = filter; p.Images = images }).
		RefreshSources(context.Background(), []int64{1}, RefreshOptions{})
	assert.Equal(t, 2, res.TotalArticles)
	require.Len(t, filter.ApplyCalls(), 1, "rules loaded once per task")
	assert.Len(t, filter.ApplyCalls()[0].Articles, 5)
	assert.Len(t, images.SelectCalls(), 5)

	stored := d.articles.InsertArticlesCalls()[0].Articles
	assert.Equal(t, "https://example.com/img.jpg", stored[0].ImageURL)
	assert.Equal(t, "cap", stored[0].ImageCaption)
	assert.Empty(t, stored[1].ImageURL)
}

func TestOrchestrator_FilterError(t *testing.T) {
	d := newTestDeps(directSource(1))
	filter := &mocks.FilterMock{ApplyFunc: func(context.Context, int64, []domain.Article) ([]domain.Article, error) {
		return nil, errors.New("db is gone")
	}}
	res := d.orchestrator(func(p *OrchestratorParams) { p.Filter = filter }).
		RefreshSources(context.Background(), []int64{1}, RefreshOptions{})
	assert.Equal(t, 1, res.FailedCount)
	assert.Contains(t, res.Errors[0].Message, "apply filter rules")
	assert.Empty(t, d.articles.InsertArticlesCalls())
}

func TestOrchestrator_ExtractorUsesContentType(t *testing.T) {
	src := directSource(1)
	src.ContentType = domain.ContentImageText
	d := newTestDeps(src)
	d.extractor.ExtractFunc = func(_ context.Context, raw, articleURL string, ct domain.ContentType) string {
		assert.Equal(t, domain.ContentImageText, ct)
		assert.True(t, strings.HasPrefix(articleURL, "https://example.com/"))
		return "<p>" + raw + " with full text</p>"
	}
	res := d.orchestrator(nil).RefreshSources(context.Background(), []int64{1}, RefreshOptions{})
	assert.Equal(t, 5, res.TotalArticles)
	stored := d.articles.InsertArticlesCalls()[0].Articles
	assert.Equal(t, "<p>text of item 0 with full text</p>", stored[0].Content)
	assert.Equal(t, 7, stored[0].WordCount)
}

func TestOrchestrator_ImagesFromNormalizedExcerpt(t *testing.T) {
	src := directSource(1)
	d := newTestDeps(src)
	d.fetcher.FetchFunc = func(context.Context, string) ([]byte, error) {
		return []byte(`<?xml version="1.0"?><rss version="2.0"><channel><title>Test</title>` +
			`<item><title>relative</title><link>https://site.example.com/posts/1</link><guid>r1</guid>` +
			`<description><![CDATA[<p>some text</p><img src="/img/photo.jpg">]]></description></item>` +
			`<item><title>lazy</title><link>https://site.example.com/posts/2</link><guid>l1</guid>` +
			`<description><![CDATA[<p>some text</p><img data-src="https://site.example.com/lazy.jpg">]]></description></item>` +
			`</channel></rss>`), nil
	}

	res := d.orchestrator(func(p *OrchestratorParams) { p.Images = images.NewPipeline(nil) }).
		RefreshSources(context.Background(), []int64{1}, RefreshOptions{})
	require.Equal(t, 2, res.TotalArticles)

	stored := d.articles.InsertArticlesCalls()[0].Articles
	require.Len(t, stored, 2)
	assert.Equal(t, "https://site.example.com/img/photo.jpg", stored[0].ImageURL)
	assert.Equal(t, "https://site.example.com/lazy.jpg", stored[1].ImageURL)
}

func TestOrchestrator_OnArticlesReadyGetsInsertedOnly(t *testing.T) {
	d := newTestDeps(directSource(1))
	d.articles.InsertArticlesFunc = func(_ context.Context, articles []domain.Article) (int, error) {
		// the last three are ignored as duplicates
		articles[0].ID, articles[1].ID = 100, 101
		return 2, nil
	}

	var ready []domain.Article
	res := d.orchestrator(nil).RefreshSources(context.Background(), []int64{1}, RefreshOptions{
		OnArticlesReady: func(_ domain.Source, articles []domain.Article) { ready = articles },
	})
	assert.Equal(t, 2, res.TotalArticles)
	require.Len(t, ready, 2)
	assert.Equal(t, "https://example.com/0", ready[0].URL)
	assert.Equal(t, int64(101), ready[1].ID)
}
