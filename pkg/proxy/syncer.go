package proxy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedsync/pkg/content"
	"github.com/umputun/feedsync/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store Filter ServerClient

// proxySourceName is used for the aggregate error of a failed proxy sync
const proxySourceName = "proxy"

// Store is the subset of the article store used by the syncer
type Store interface {
	FindSourceByURL(ctx context.Context, url string) (*domain.Source, error)
	CreateSource(ctx context.Context, src *domain.Source) error
	ExistingGUIDs(ctx context.Context, guids []string) (map[string]bool, error)
	InsertArticles(ctx context.Context, articles []domain.Article) (int, error)
	UpdateSourceFetched(ctx context.Context, id int64, fetchedAt time.Time) error
	UpdateSourceError(ctx context.Context, id int64, errMsg string) error
}

// Filter drops articles rejected by the effective rules of a source
type Filter interface {
	Apply(ctx context.Context, sourceID int64, articles []domain.Article) ([]domain.Article, error)
}

// ServerClient is the aggregation server API used by the syncer, implemented by Client
type ServerClient interface {
	Sync(ctx context.Context, req SyncRequest) ([]Item, error)
	Ack(ctx context.Context, ids []string) error
}

// SyncerParams defines parameters of the syncer
type SyncerParams struct {
	Client           ServerClient
	Store            Store
	Filter           Filter // optional
	ImageCompression string
	Limit            int
}

// Syncer pulls items from the aggregation server into the local store
type Syncer struct {
	SyncerParams
}

// NewSyncer makes a syncer
func NewSyncer(params SyncerParams) *Syncer {
	return &Syncer{SyncerParams: params}
}

// SyncFromServer pulls all pending items. The whole call counts as a single unit in the result,
// a failure is reported as one error with source name "proxy".
func (s *Syncer) SyncFromServer(ctx context.Context, mode domain.SyncMode) domain.BatchResult {
	return s.SyncAll(ctx, mode, nil)
}

// SyncAll pulls all pending items like SyncFromServer and updates fetch status of the given
// proxy-mode sources from the outcome of the whole call.
func (s *Syncer) SyncAll(ctx context.Context, mode domain.SyncMode, sources []domain.Source) domain.BatchResult {
	return s.run(ctx, SyncRequest{Mode: mode, ImageCompression: s.ImageCompression, Limit: s.Limit}, sources)
}

// SyncSources pulls items for the given proxy-mode sources and updates their fetch status.
// A single source limits the server call to its url.
func (s *Syncer) SyncSources(ctx context.Context, sources []domain.Source) domain.BatchResult {
	req := SyncRequest{Mode: domain.SyncIncremental, ImageCompression: s.ImageCompression, Limit: s.Limit}
	if len(sources) == 1 {
		req.SourceURL = sources[0].URL
	}
	return s.run(ctx, req, sources)
}

func (s *Syncer) run(ctx context.Context, req SyncRequest, requested []domain.Source) domain.BatchResult {
	inserted, err := s.sync(ctx, req)

	for _, src := range requested {
		if err != nil {
			if e := s.Store.UpdateSourceError(ctx, src.ID, err.Error()); e != nil {
				lgr.Printf("[WARN] failed to update error status of source %d: %v", src.ID, e)
			}
			continue
		}
		if e := s.Store.UpdateSourceFetched(ctx, src.ID, time.Now()); e != nil {
			lgr.Printf("[WARN] failed to update fetch status of source %d: %v", src.ID, e)
		}
	}

	res := domain.BatchResult{TotalArticles: inserted}
	if err != nil {
		lgr.Printf("[WARN] proxy sync failed: %v", err)
		res.FailedCount = 1
		res.Errors = []domain.SourceError{{SourceName: proxySourceName, Message: err.Error()}}
		return res
	}
	res.SuccessCount = 1
	return res
}

// sync pulls items, stores new ones and acks every consumed item. Items of a source which failed
// to store are not acked, so the server delivers them again. Returns number of inserted articles,
// it can be non-zero together with an error if some sources failed.
func (s *Syncer) sync(ctx context.Context, req SyncRequest) (int, error) {
	items, err := s.Client.Sync(ctx, req)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}

	groups, order := groupBySource(items)
	var inserted int
	var consumed []string
	var errs []error
	for _, srcURL := range order {
		group := groups[srcURL]
		n, err := s.storeGroup(ctx, srcURL, group)
		if err != nil {
			errs = append(errs, fmt.Errorf("store items of %s: %w", srcURL, err))
			continue
		}
		inserted += n
		for _, it := range group {
			consumed = append(consumed, it.ID)
		}
	}

	if err := s.Client.Ack(ctx, consumed); err != nil {
		// server redelivers unacked items, local dedup by guid makes it harmless
		lgr.Printf("[WARN] failed to ack %d proxy items: %v", len(consumed), err)
	}
	lgr.Printf("[INFO] proxy sync stored %d of %d items", inserted, len(items))
	return inserted, errors.Join(errs...)
}

// storeGroup persists items of a single source, creating the source if it is unknown
func (s *Syncer) storeGroup(ctx context.Context, srcURL string, items []Item) (int, error) {
	src, err := s.resolveSource(ctx, srcURL, items[0].SourceTitle)
	if err != nil {
		return 0, err
	}

	guids := make([]string, 0, len(items))
	for _, it := range items {
		guids = append(guids, itemGUID(it))
	}
	existing, err := s.Store.ExistingGUIDs(ctx, guids)
	if err != nil {
		return 0, fmt.Errorf("check existing guids: %w", err)
	}

	articles := make([]domain.Article, 0, len(items))
	for _, it := range items {
		if existing[itemGUID(it)] {
			continue
		}
		articles = append(articles, toArticle(src.ID, it))
	}
	if len(articles) == 0 {
		return 0, nil
	}

	if s.Filter != nil {
		if articles, err = s.Filter.Apply(ctx, src.ID, articles); err != nil {
			return 0, fmt.Errorf("apply filters: %w", err)
		}
	}
	n, err := s.Store.InsertArticles(ctx, articles)
	if err != nil {
		return 0, fmt.Errorf("insert articles: %w", err)
	}
	return n, nil
}

func (s *Syncer) resolveSource(ctx context.Context, srcURL, title string) (*domain.Source, error) {
	src, err := s.Store.FindSourceByURL(ctx, srcURL)
	if err == nil {
		return src, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find source: %w", err)
	}

	src = &domain.Source{URL: srcURL, Title: title, Mode: domain.ModeProxy, ContentType: domain.ContentText, IsActive: true}
	if err := s.Store.CreateSource(ctx, src); err != nil {
		return nil, fmt.Errorf("create source: %w", err)
	}
	lgr.Printf("[INFO] created proxy source %q (%s)", src.Name(), srcURL)
	return src, nil
}

// groupBySource splits items by source url keeping the first-seen order of sources
func groupBySource(items []Item) (groups map[string][]Item, order []string) {
	groups = make(map[string][]Item)
	for _, it := range items {
		key := strings.TrimSpace(it.SourceURL)
		if key == "" {
			key = proxySourceName
		}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], it)
	}
	return groups, order
}

func itemGUID(it Item) string {
	if it.GUID != "" {
		return it.GUID
	}
	return it.ID
}

// toArticle converts a server item, missing link falls back to guid
func toArticle(sourceID int64, it Item) domain.Article {
	a := domain.Article{
		SourceID:     sourceID,
		GUID:         itemGUID(it),
		Title:        it.Title,
		URL:          it.Link,
		Content:      it.Content,
		Summary:      it.Summary,
		ImageURL:     it.ImageURL,
		ImageCaption: it.ImageCaption,
		ImageCredit:  it.ImageCredit,
		PublishedAt:  it.PublishedAt,
		WordCount:    it.WordCount,
		ReadingTime:  it.ReadingTime,
		Tags:         it.Tags,
	}
	if a.URL == "" {
		a.URL = a.GUID
	}
	if a.Summary == "" {
		a.Summary = content.Summary(it.Content)
	}
	if a.WordCount == 0 {
		a.WordCount = content.WordCount(it.Content)
	}
	if a.ReadingTime == 0 {
		a.ReadingTime = content.ReadingTime(a.WordCount)
	}
	if a.PublishedAt.IsZero() {
		a.PublishedAt = time.Now()
	}
	return a
}
