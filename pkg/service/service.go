// Package service is the facade over the repositories used by the orchestrator, the proxy syncer
// and the local API. Mutations emit change events on the bus.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/events"
	"github.com/umputun/feedsync/pkg/filter"
	"github.com/umputun/feedsync/pkg/repository"
)

// errors returned by the service
var (
	ErrInvalidSource    = errors.New("invalid source")
	ErrSourceExists     = errors.New("source already exists")
	ErrProxyUnavailable = errors.New("proxy is not configured")
)

// setting keys
const (
	settingLastRefresh = "last_refresh_at"
)

// EventEmitter publishes change notifications
type EventEmitter interface {
	Emit(e events.Event)
}

//go:generate moq -out mocks/proxy.go -pkg mocks -skip-ensure -fmt goimports . ProxySubscriber
//go:generate moq -out mocks/enrich.go -pkg mocks -skip-ensure -fmt goimports . Extractor ImageSelector

// ProxySubscriber manages subscriptions on the aggregation server
type ProxySubscriber interface {
	Subscribe(ctx context.Context, feedURL, title string) (string, error)
	Unsubscribe(ctx context.Context, id string) error
}

// Params defines service dependencies, Proxy, Extractor and Images are optional
type Params struct {
	Repos     *repository.Repositories
	Events    EventEmitter
	Proxy     ProxySubscriber
	Extractor Extractor
	Images    ImageSelector
}

// Service provides unified access to repositories
type Service struct {
	sourceRepo  *repository.SourceRepository
	articleRepo *repository.ArticleRepository
	ruleRepo    *repository.RuleRepository
	settingRepo *repository.SettingRepository

	events    EventEmitter
	proxy     ProxySubscriber
	extractor Extractor
	images    ImageSelector
}

// NewService creates a new service
func NewService(params Params) *Service {
	res := &Service{
		sourceRepo:  params.Repos.Source,
		articleRepo: params.Repos.Article,
		ruleRepo:    params.Repos.Rule,
		settingRepo: params.Repos.Setting,
		events:      params.Events,
		proxy:       params.Proxy,
		extractor:   params.Extractor,
		images:      params.Images,
	}
	if res.events == nil {
		res.events = events.Default()
	}
	return res
}

// SubscribeRequest defines a new source
type SubscribeRequest struct {
	URL         string             `json:"url"`
	Title       string             `json:"title"`
	Mode        domain.SourceMode  `json:"mode"`
	ContentType domain.ContentType `json:"content_type"`
	MaxArticles int                `json:"max_articles"`
	GroupID     *int64             `json:"group_id,omitempty"`
}

// Source management methods

// Subscribe creates a source. Proxy sources are registered on the aggregation server first.
func (s *Service) Subscribe(ctx context.Context, req SubscribeRequest) (*domain.Source, error) {
	src := &domain.Source{
		URL:         strings.TrimSpace(req.URL),
		Title:       strings.TrimSpace(req.Title),
		Mode:        req.Mode,
		ContentType: req.ContentType,
		MaxArticles: req.MaxArticles,
		GroupID:     req.GroupID,
		IsActive:    true,
	}
	if src.Mode == "" {
		src.Mode = domain.ModeDirect
	}
	if src.ContentType == "" {
		src.ContentType = domain.ContentText
	}
	if err := validateSource(src); err != nil {
		return nil, err
	}

	if _, err := s.sourceRepo.FindSourceByURL(ctx, src.URL); err == nil {
		return nil, fmt.Errorf("subscribe %s: %w", src.URL, ErrSourceExists)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("subscribe %s: %w", src.URL, err)
	}

	if src.Mode == domain.ModeProxy {
		if s.proxy == nil {
			return nil, fmt.Errorf("subscribe %s: %w", src.URL, ErrProxyUnavailable)
		}
		remoteID, err := s.proxy.Subscribe(ctx, src.URL, src.Title)
		if err != nil {
			return nil, fmt.Errorf("subscribe %s on proxy: %w", src.URL, err)
		}
		src.RemoteID = remoteID
	}

	if err := s.sourceRepo.CreateSource(ctx, src); err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", src.URL, err)
	}
	lgr.Printf("[INFO] subscribed to %s (%s, %s)", src.Name(), src.Mode, src.ContentType)
	s.events.Emit(events.Event{Type: events.SourceUpdated, SourceID: src.ID, Reason: "subscribed"})
	return src, nil
}

// GetSource retrieves a source by ID
func (s *Service) GetSource(ctx context.Context, id int64) (*domain.Source, error) {
	return s.sourceRepo.GetSource(ctx, id)
}

// GetSources returns live sources in display order
func (s *Service) GetSources(ctx context.Context, activeOnly bool) ([]domain.Source, error) {
	return s.sourceRepo.GetSources(ctx, activeOnly)
}

// FindSourceByURL returns the live source with the url
func (s *Service) FindSourceByURL(ctx context.Context, u string) (*domain.Source, error) {
	return s.sourceRepo.FindSourceByURL(ctx, u)
}

// CreateSource stores a source as is, used by the proxy syncer for unseen server subscriptions
func (s *Service) CreateSource(ctx context.Context, src *domain.Source) error {
	if err := s.sourceRepo.CreateSource(ctx, src); err != nil {
		return err
	}
	s.events.Emit(events.Event{Type: events.SourceUpdated, SourceID: src.ID, Reason: "created by sync"})
	return nil
}

// UpdateSource stores user-editable fields of the source
func (s *Service) UpdateSource(ctx context.Context, src *domain.Source) error {
	if err := validateSource(src); err != nil {
		return err
	}
	if err := s.sourceRepo.UpdateSource(ctx, src); err != nil {
		return err
	}
	s.events.Emit(events.Event{Type: events.SourceUpdated, SourceID: src.ID})
	return nil
}

// DeleteSource soft-deletes the source with its articles. Proxy unsubscribe is best-effort.
func (s *Service) DeleteSource(ctx context.Context, id int64) error {
	src, err := s.sourceRepo.GetSource(ctx, id)
	if err != nil {
		return err
	}
	if src.Mode == domain.ModeProxy && src.RemoteID != "" && s.proxy != nil {
		if err := s.proxy.Unsubscribe(ctx, src.RemoteID); err != nil {
			lgr.Printf("[WARN] failed to unsubscribe %s on proxy: %v", src.Name(), err)
		}
	}
	if err := s.sourceRepo.DeleteSource(ctx, id); err != nil {
		return err
	}
	lgr.Printf("[INFO] deleted source %s", src.Name())
	s.events.Emit(events.Event{Type: events.SourceDeleted, SourceID: id})
	s.events.Emit(events.Event{Type: events.StatsUpdated})
	return nil
}

// ReorderSources sets display order of sources
func (s *Service) ReorderSources(ctx context.Context, ids []int64) error {
	if err := s.sourceRepo.ReorderSources(ctx, ids); err != nil {
		return err
	}
	s.events.Emit(events.Event{Type: events.SourceUpdated, SourceIDs: ids, Reason: "reordered"})
	return nil
}

// UpdateSourceFetched records a successful fetch
func (s *Service) UpdateSourceFetched(ctx context.Context, id int64, fetchedAt time.Time) error {
	return s.sourceRepo.UpdateSourceFetched(ctx, id, fetchedAt)
}

// UpdateSourceError records a failed fetch
func (s *Service) UpdateSourceError(ctx context.Context, id int64, errMsg string) error {
	return s.sourceRepo.UpdateSourceError(ctx, id, errMsg)
}

// Article methods

// GetRecentRefs returns slim refs of the latest stored articles of the source
func (s *Service) GetRecentRefs(ctx context.Context, sourceID int64, limit int) ([]domain.StoredArticleRef, error) {
	return s.articleRepo.GetRecentRefs(ctx, sourceID, limit)
}

// InsertArticles stores new articles, duplicates are ignored
func (s *Service) InsertArticles(ctx context.Context, articles []domain.Article) (int, error) {
	return s.articleRepo.InsertArticles(ctx, articles)
}

// ExistingGUIDs returns the subset of guids already stored
func (s *Service) ExistingGUIDs(ctx context.Context, guids []string) (map[string]bool, error) {
	return s.articleRepo.ExistingGUIDs(ctx, guids)
}

// GetArticle retrieves an article by ID
func (s *Service) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	return s.articleRepo.GetArticle(ctx, id)
}

// ListArticles returns articles matching the filter
func (s *Service) ListArticles(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, error) {
	return s.articleRepo.ListArticles(ctx, f)
}

// MarkRead sets read state of the article
func (s *Service) MarkRead(ctx context.Context, id int64, read bool) error {
	if err := s.articleRepo.MarkRead(ctx, id, read); err != nil {
		return err
	}
	s.emitArticleRead(ctx, id)
	return nil
}

// SetFavorite sets favorite flag of the article
func (s *Service) SetFavorite(ctx context.Context, id int64, favorite bool) error {
	return s.articleRepo.SetFavorite(ctx, id, favorite)
}

// UpdateReadProgress stores reading progress, full progress marks the article read
func (s *Service) UpdateReadProgress(ctx context.Context, id int64, progress float64) error {
	if err := s.articleRepo.UpdateReadProgress(ctx, id, progress); err != nil {
		return err
	}
	if progress >= 1 {
		s.emitArticleRead(ctx, id)
	}
	return nil
}

// ClearArticles deletes non-favorite articles of the source, all sources if sourceID is 0
func (s *Service) ClearArticles(ctx context.Context, sourceID int64) (int64, error) {
	deleted, err := s.articleRepo.ClearArticles(ctx, sourceID)
	if err != nil {
		return 0, err
	}
	lgr.Printf("[INFO] cleared %d articles", deleted)
	s.events.Emit(events.Event{Type: events.ArticlesCleared, SourceID: sourceID})
	s.events.Emit(events.Event{Type: events.StatsUpdated})
	return deleted, nil
}

// Stats returns total and unread counters per source
func (s *Service) Stats(ctx context.Context) ([]domain.SourceStats, error) {
	return s.articleRepo.Stats(ctx)
}

func (s *Service) emitArticleRead(ctx context.Context, id int64) {
	e := events.Event{Type: events.ArticleRead, ArticleID: id}
	if a, err := s.articleRepo.GetArticle(ctx, id); err == nil {
		e.SourceID = a.SourceID
	}
	s.events.Emit(e)
	s.events.Emit(events.Event{Type: events.StatsUpdated})
}

// Filter rule methods

// CreateRule validates and stores a rule
func (s *Service) CreateRule(ctx context.Context, rule *domain.FilterRule) error {
	if err := filter.ValidateRule(*rule); err != nil {
		return fmt.Errorf("create rule: %w", err)
	}
	if rule.SourceID != nil {
		if _, err := s.sourceRepo.GetSource(ctx, *rule.SourceID); err != nil {
			return fmt.Errorf("create rule: %w", err)
		}
	}
	return s.ruleRepo.CreateRule(ctx, rule)
}

// ListRules returns all rules
func (s *Service) ListRules(ctx context.Context) ([]domain.FilterRule, error) {
	return s.ruleRepo.ListRules(ctx)
}

// DeleteRule removes a rule
func (s *Service) DeleteRule(ctx context.Context, id int64) error {
	return s.ruleRepo.DeleteRule(ctx, id)
}

// GetEffectiveRules returns global rules plus rules bound to the source
func (s *Service) GetEffectiveRules(ctx context.Context, sourceID int64) ([]domain.FilterRule, error) {
	return s.ruleRepo.GetEffectiveRules(ctx, sourceID)
}

// Setting methods

// MarkRefreshed stores the completion time of the last refresh
func (s *Service) MarkRefreshed(ctx context.Context, at time.Time) error {
	return s.settingRepo.SetSetting(ctx, settingLastRefresh, at.UTC().Format(time.RFC3339))
}

// LastRefresh returns the completion time of the last refresh, zero if never refreshed
func (s *Service) LastRefresh(ctx context.Context) (time.Time, error) {
	val, err := s.settingRepo.GetSetting(ctx, settingLastRefresh)
	if err != nil || val == "" {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse last refresh time %q: %w", val, err)
	}
	return t, nil
}

func validateSource(src *domain.Source) error {
	u, err := url.Parse(src.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: url %q must be an absolute http(s) url", ErrInvalidSource, src.URL)
	}
	if src.Mode != domain.ModeDirect && src.Mode != domain.ModeProxy {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidSource, src.Mode)
	}
	if !src.ContentType.Valid() {
		return fmt.Errorf("%w: unknown content type %q", ErrInvalidSource, src.ContentType)
	}
	if src.MaxArticles < 0 {
		return fmt.Errorf("%w: max articles can't be negative", ErrInvalidSource)
	}
	return nil
}
