// Package scheduler runs source refreshes. Orchestrator refreshes a batch of sources under a bounded
// worker pool, Scheduler triggers it periodically.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/feedsync/pkg/content"
	"github.com/umputun/feedsync/pkg/diff"
	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/events"
	"github.com/umputun/feedsync/pkg/feed"
)

//go:generate moq -out mocks/sources.go -pkg mocks -skip-ensure -fmt goimports . SourceManager ArticleManager
//go:generate moq -out mocks/pipeline.go -pkg mocks -skip-ensure -fmt goimports . Fetcher Extractor ImageSelector Filter ProxySyncer

// defaults
const (
	DefaultMaxConcurrent = 3
	DefaultFetchTimeout  = 15 * time.Second
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = time.Second
)

// errNoProxy is reported for proxy sources when no proxy syncer is configured
var errNoProxy = errors.New("proxy sync is not configured")

// SourceManager provides source records and stores fetch status
type SourceManager interface {
	GetSource(ctx context.Context, id int64) (*domain.Source, error)
	GetSources(ctx context.Context, activeOnly bool) ([]domain.Source, error)
	UpdateSourceFetched(ctx context.Context, id int64, fetchedAt time.Time) error
	UpdateSourceError(ctx context.Context, id int64, errMsg string) error
}

// ArticleManager reads recent article refs and stores new articles
type ArticleManager interface {
	GetRecentRefs(ctx context.Context, sourceID int64, limit int) ([]domain.StoredArticleRef, error)
	InsertArticles(ctx context.Context, articles []domain.Article) (int, error)
}

// Fetcher downloads raw feed bytes
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Extractor returns the best available html content for an item, it never fails
type Extractor interface {
	Extract(ctx context.Context, rawContent, articleURL string, contentType domain.ContentType) string
}

// ImageSelector picks a validated representative image of an item
type ImageSelector interface {
	Select(ctx context.Context, item domain.ParsedItem) (domain.ImageResult, bool)
}

// Filter drops articles rejected by the effective rules of a source
type Filter interface {
	Apply(ctx context.Context, sourceID int64, articles []domain.Article) ([]domain.Article, error)
}

// ProxySyncer pulls items from the aggregation server
type ProxySyncer interface {
	SyncAll(ctx context.Context, mode domain.SyncMode, sources []domain.Source) domain.BatchResult
	SyncSources(ctx context.Context, sources []domain.Source) domain.BatchResult
}

// EventEmitter publishes change notifications
type EventEmitter interface {
	Emit(e events.Event)
}

// OrchestratorParams defines dependencies and settings of the orchestrator.
// Images, Filter and Proxy are optional.
type OrchestratorParams struct {
	Sources   SourceManager
	Articles  ArticleManager
	Fetcher   Fetcher
	Extractor Extractor
	Images    ImageSelector
	Filter    Filter
	Proxy     ProxySyncer
	Events    EventEmitter

	MaxConcurrent int
	FetchTimeout  time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

// RefreshOptions customizes a single refresh call, all callbacks are optional and may be called concurrently
type RefreshOptions struct {
	MaxConcurrent   int                                                   // overrides the orchestrator default
	FullProxySync   bool                                                  // run a full proxy sync even with no proxy sources requested
	OnProgress      func(done, total int)                                 // called after each finished task
	OnError         func(e domain.SourceError)                            // called for each failed task
	OnArticlesReady func(source domain.Source, articles []domain.Article) // called with actually inserted articles
}

// Orchestrator refreshes sources concurrently and aggregates results
type Orchestrator struct {
	OrchestratorParams
	retryFunc func(ctx context.Context, operation func() error) error
}

// NewOrchestrator makes an orchestrator with defaults applied
func NewOrchestrator(params OrchestratorParams) *Orchestrator {
	if params.MaxConcurrent <= 0 {
		params.MaxConcurrent = DefaultMaxConcurrent
	}
	if params.FetchTimeout <= 0 {
		params.FetchTimeout = DefaultFetchTimeout
	}
	if params.RetryAttempts <= 0 {
		params.RetryAttempts = DefaultRetryAttempts
	}
	if params.RetryDelay <= 0 {
		params.RetryDelay = DefaultRetryDelay
	}
	if params.Events == nil {
		params.Events = events.Default()
	}

	res := &Orchestrator{OrchestratorParams: params}
	res.retryFunc = func(ctx context.Context, operation func() error) error {
		// delays grow as base * 2^attempt, format errors are final
		r := repeater.NewBackoff(params.RetryAttempts, params.RetryDelay,
			repeater.WithMaxDelay(params.RetryDelay*8), repeater.WithJitter(0))
		return r.Do(ctx, operation, feed.ErrFeedFormat)
	}
	return res
}

// RefreshAll refreshes every active source
func (o *Orchestrator) RefreshAll(ctx context.Context, opts RefreshOptions) domain.BatchResult {
	sources, err := o.Sources.GetSources(ctx, true)
	if err != nil {
		lgr.Printf("[ERROR] failed to get active sources: %v", err)
		res := domain.BatchResult{FailedCount: 1, Errors: []domain.SourceError{{Message: fmt.Sprintf("get sources: %v", err)}}}
		return res
	}
	return o.refresh(ctx, sources, false, opts)
}

// RefreshSources refreshes the requested sources. Inactive, deleted and unknown sources are skipped
// and not counted. Direct sources run as separate pool tasks, proxy sources are synced by one task.
func (o *Orchestrator) RefreshSources(ctx context.Context, sourceIDs []int64, opts RefreshOptions) domain.BatchResult {
	sources := make([]domain.Source, 0, len(sourceIDs))
	for _, id := range sourceIDs {
		src, err := o.Sources.GetSource(ctx, id)
		if err != nil {
			lgr.Printf("[WARN] skip source %d: %v", id, err)
			continue
		}
		sources = append(sources, *src)
	}
	return o.refresh(ctx, sources, len(sourceIDs) == 1, opts)
}

// SyncFromServer runs a full proxy sync with the same event policy as refresh.
// Fetch status of active proxy sources follows the outcome of the sync.
func (o *Orchestrator) SyncFromServer(ctx context.Context, mode domain.SyncMode) domain.BatchResult {
	o.Events.Emit(events.Event{Type: events.BatchSyncStart, Reason: "proxy " + string(mode)})
	res := domain.BatchResult{FailedCount: 1, Errors: []domain.SourceError{{SourceName: "proxy", Message: errNoProxy.Error()}}}
	if o.Proxy != nil {
		res = o.Proxy.SyncAll(ctx, mode, o.activeProxySources(ctx))
	}
	o.Events.Emit(events.Event{Type: events.BatchSyncEnd, Reason: "proxy " + string(mode)})

	if res.TotalArticles > 0 {
		o.Events.Emit(events.Event{Type: events.AllSourcesRefreshed, Reason: "proxy sync"})
		o.Events.Emit(events.Event{Type: events.StatsUpdated})
	}
	return res
}

func (o *Orchestrator) refresh(ctx context.Context, sources []domain.Source, single bool, opts RefreshOptions) domain.BatchResult {
	var direct, proxied []domain.Source
	for _, src := range sources {
		if !src.IsActive || src.DeletedAt != nil {
			lgr.Printf("[DEBUG] skip inactive source %s", src.Name())
			continue
		}
		if src.Mode == domain.ModeProxy {
			proxied = append(proxied, src)
			continue
		}
		direct = append(direct, src)
	}

	runProxy := len(proxied) > 0 || (opts.FullProxySync && o.Proxy != nil)
	total := len(direct)
	if runProxy {
		total++
	}

	limit := o.MaxConcurrent
	if opts.MaxConcurrent > 0 {
		limit = opts.MaxConcurrent
	}

	o.Events.Emit(events.Event{Type: events.BatchSyncStart, SourceIDs: sourceIDs(direct, proxied)})
	lgr.Printf("[INFO] refreshing %d sources (%d direct, %d proxy) with %d workers", len(direct)+len(proxied),
		len(direct), len(proxied), limit)

	var (
		mu   sync.Mutex
		res  domain.BatchResult
		done int
	)
	report := func(r domain.BatchResult) {
		mu.Lock()
		res.Merge(r)
		done++
		d := done
		mu.Unlock()
		if opts.OnError != nil {
			for _, e := range r.Errors {
				opts.OnError(e)
			}
		}
		if opts.OnProgress != nil {
			opts.OnProgress(d, total)
		}
	}

	var g errgroup.Group
	g.SetLimit(limit)

	if runProxy {
		g.Go(func() error {
			report(o.proxySync(ctx, proxied, opts.FullProxySync))
			return nil
		})
	}

	for _, src := range direct {
		g.Go(func() error {
			r := o.refreshSource(ctx, src, opts)
			var batch domain.BatchResult
			batch.Add(r)
			report(batch)
			return nil
		})
	}
	_ = g.Wait() // tasks report their errors in the result

	o.Events.Emit(events.Event{Type: events.BatchSyncEnd, SourceIDs: sourceIDs(direct, proxied)})
	lgr.Printf("[INFO] refresh completed, %d succeeded, %d failed, %d new articles",
		res.SuccessCount, res.FailedCount, res.TotalArticles)

	if res.TotalArticles > 0 {
		ids := sourceIDs(direct, proxied)
		if single && len(ids) == 1 {
			o.Events.Emit(events.Event{Type: events.SourceRefreshed, SourceID: ids[0]})
		} else {
			o.Events.Emit(events.Event{Type: events.AllSourcesRefreshed, SourceIDs: ids})
		}
		o.Events.Emit(events.Event{Type: events.StatsUpdated})
	}
	return res
}

// proxySync syncs proxy sources, full sync pulls everything the server has
func (o *Orchestrator) proxySync(ctx context.Context, sources []domain.Source, full bool) domain.BatchResult {
	if o.Proxy == nil {
		msg := errNoProxy.Error()
		for _, src := range sources {
			if err := o.Sources.UpdateSourceError(ctx, src.ID, msg); err != nil {
				lgr.Printf("[WARN] failed to update error status of source %s: %v", src.Name(), err)
			}
		}
		return domain.BatchResult{FailedCount: 1, Errors: []domain.SourceError{{SourceName: "proxy", Message: msg}}}
	}
	if full {
		return o.Proxy.SyncAll(ctx, domain.SyncIncremental, sources)
	}
	return o.Proxy.SyncSources(ctx, sources)
}

// activeProxySources returns active proxy-mode sources, a lookup failure only skips status updates
func (o *Orchestrator) activeProxySources(ctx context.Context) []domain.Source {
	sources, err := o.Sources.GetSources(ctx, true)
	if err != nil {
		lgr.Printf("[WARN] failed to get proxy sources: %v", err)
		return nil
	}
	var res []domain.Source
	for _, src := range sources {
		if src.Mode == domain.ModeProxy && src.DeletedAt == nil {
			res = append(res, src)
		}
	}
	return res
}

// refreshSource runs the pipeline for a single direct source:
// fetch, parse, diff against recent refs, enrich, filter and store new articles
func (o *Orchestrator) refreshSource(ctx context.Context, src domain.Source, opts RefreshOptions) domain.FetchTaskResult {
	res := domain.FetchTaskResult{SourceID: src.ID, SourceName: src.Name()}
	lgr.Printf("[DEBUG] refreshing source %s", src.Name())

	parsed, err := o.fetchFeed(ctx, src)
	if err == nil {
		res.NewArticleCount, err = o.importItems(ctx, src, parsed, opts)
	}
	if err != nil {
		lgr.Printf("[WARN] failed to refresh source %s: %v", src.Name(), err)
		if e := o.Sources.UpdateSourceError(ctx, src.ID, err.Error()); e != nil {
			lgr.Printf("[WARN] failed to update error status of source %s: %v", src.Name(), e)
		}
		res.Err = err
		return res
	}

	if err := o.Sources.UpdateSourceFetched(ctx, src.ID, time.Now()); err != nil {
		lgr.Printf("[WARN] failed to update fetch status of source %s: %v", src.Name(), err)
	}
	res.Success = true
	if res.NewArticleCount > 0 {
		lgr.Printf("[INFO] added %d new articles from %s", res.NewArticleCount, src.Name())
	}
	return res
}

// fetchFeed downloads and parses the feed with retries, format errors are not retried
func (o *Orchestrator) fetchFeed(ctx context.Context, src domain.Source) (*domain.ParsedFeed, error) {
	var parsed *domain.ParsedFeed
	attempt := 0
	err := o.retryFunc(ctx, func() error {
		attempt++
		fetchCtx, cancel := context.WithTimeout(ctx, o.FetchTimeout)
		defer cancel()

		raw, err := o.Fetcher.Fetch(fetchCtx, src.URL)
		if err != nil {
			lgr.Printf("[DEBUG] fetch %s, attempt %d: %v", src.URL, attempt, err)
			return fmt.Errorf("fetch feed: %w", err)
		}
		if parsed, err = feed.ParseFeed(raw); err != nil {
			return fmt.Errorf("parse feed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return parsed, nil
}

// importItems stores leading new items of the parsed feed, returns number of inserted articles
func (o *Orchestrator) importItems(ctx context.Context, src domain.Source, parsed *domain.ParsedFeed, opts RefreshOptions) (int, error) {
	recent, err := o.Articles.GetRecentRefs(ctx, src.ID, diff.RecentWindow)
	if err != nil {
		return 0, fmt.Errorf("get recent articles: %w", err)
	}
	items := diff.NewItems(parsed.Items, recent, src.ArticleCap())
	if len(items) == 0 {
		lgr.Printf("[DEBUG] no new items in %s", src.Name())
		return 0, nil
	}

	articles := make([]domain.Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, o.buildArticle(ctx, src, item))
	}

	if o.Filter != nil {
		kept, err := o.Filter.Apply(ctx, src.ID, articles)
		if err != nil {
			return 0, fmt.Errorf("apply filter rules: %w", err)
		}
		if dropped := len(articles) - len(kept); dropped > 0 {
			lgr.Printf("[DEBUG] filtered out %d articles of %s", dropped, src.Name())
		}
		articles = kept
	}
	if len(articles) == 0 {
		return 0, nil
	}

	n, err := o.Articles.InsertArticles(ctx, articles)
	if err != nil {
		return 0, fmt.Errorf("store articles: %w", err)
	}
	if n > 0 && opts.OnArticlesReady != nil {
		opts.OnArticlesReady(src, insertedOnly(articles))
	}
	return n, nil
}

// buildArticle enriches a parsed item with extracted content and a representative image
func (o *Orchestrator) buildArticle(ctx context.Context, src domain.Source, item domain.ParsedItem) domain.Article {
	body := o.Extractor.Extract(ctx, item.Body(), item.Link, src.ContentType)
	words := content.WordCount(body)

	summary := content.Summary(item.Description)
	if summary == "" {
		summary = content.Summary(body)
	}

	article := domain.Article{
		SourceID:    src.ID,
		GUID:        item.GUID,
		Title:       item.Title,
		URL:         item.Link,
		Content:     body,
		Summary:     summary,
		PublishedAt: item.Published,
		WordCount:   words,
		ReadingTime: content.ReadingTime(words),
		Tags:        item.Categories,
	}

	if o.Images != nil {
		// images are picked from the excerpt with lazy and relative src already resolved
		sel := item
		sel.Content = content.NormalizeExcerpt(item.Body(), item.Link)
		if img, ok := o.Images.Select(ctx, sel); ok {
			article.ImageURL = img.URL
			article.ImageCaption = img.Caption
			article.ImageCredit = img.Credit
		}
	}
	return article
}

// insertedOnly keeps articles the store assigned an id to, rows ignored as duplicates have none
func insertedOnly(articles []domain.Article) []domain.Article {
	res := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if a.ID != 0 {
			res = append(res, a)
		}
	}
	return res
}

func sourceIDs(groups ...[]domain.Source) []int64 {
	var res []int64
	for _, g := range groups {
		for _, s := range g {
			res = append(res, s.ID)
		}
	}
	return res
}
