// Package server is the local HTTP API used by the UI process. It exposes source, article and
// rule management, on-demand refresh and proxy sync, and streams bus events as server-sent events.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/events"
	"github.com/umputun/feedsync/pkg/filter"
	"github.com/umputun/feedsync/pkg/scheduler"
	"github.com/umputun/feedsync/pkg/service"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/refresher.go -pkg mocks -skip-ensure -fmt goimports . Refresher

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	store     Store
	refresher Refresher
	bus       EventSource
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Store is the subset of the service used by the API handlers
type Store interface {
	GetSources(ctx context.Context, activeOnly bool) ([]domain.Source, error)
	GetSource(ctx context.Context, id int64) (*domain.Source, error)
	Subscribe(ctx context.Context, req service.SubscribeRequest) (*domain.Source, error)
	UpdateSource(ctx context.Context, src *domain.Source) error
	DeleteSource(ctx context.Context, id int64) error
	ReorderSources(ctx context.Context, ids []int64) error
	BackfillImages(ctx context.Context, sourceID int64, limit int) (int, error)
	ListArticles(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, error)
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)
	MarkRead(ctx context.Context, id int64, read bool) error
	SetFavorite(ctx context.Context, id int64, favorite bool) error
	UpdateReadProgress(ctx context.Context, id int64, progress float64) error
	ClearArticles(ctx context.Context, sourceID int64) (int64, error)
	Stats(ctx context.Context) ([]domain.SourceStats, error)
	ListRules(ctx context.Context) ([]domain.FilterRule, error)
	CreateRule(ctx context.Context, rule *domain.FilterRule) error
	DeleteRule(ctx context.Context, id int64) error
	ExportOPML(ctx context.Context) (string, error)
	ImportOPML(ctx context.Context, data []byte) (service.ImportResult, error)
	MarkRefreshed(ctx context.Context, at time.Time) error
	LastRefresh(ctx context.Context) (time.Time, error)
}

// Refresher runs refreshes and proxy syncs on demand
type Refresher interface {
	RefreshAll(ctx context.Context, opts scheduler.RefreshOptions) domain.BatchResult
	RefreshSources(ctx context.Context, sourceIDs []int64, opts scheduler.RefreshOptions) domain.BatchResult
	SyncFromServer(ctx context.Context, mode domain.SyncMode) domain.BatchResult
}

// EventSource provides the event stream, implemented by events.Bus
type EventSource interface {
	SubscribeChan(size int) (<-chan events.Event, func())
	SyncInProgress() bool
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, store Store, refresher Refresher, bus EventSource, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		store:     store,
		refresher: refresher,
		bus:       bus,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout, // event stream clears its own write deadline
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feedsync", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(4 * 1024 * 1024)) // opml uploads
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /events", s.eventsHandler)

		// sources
		r.HandleFunc("GET /sources", s.listSourcesHandler)
		r.HandleFunc("POST /sources", s.createSourceHandler)
		r.HandleFunc("POST /sources/reorder", s.reorderSourcesHandler)
		r.HandleFunc("GET /sources/{id}", s.getSourceHandler)
		r.HandleFunc("PUT /sources/{id}", s.updateSourceHandler)
		r.HandleFunc("DELETE /sources/{id}", s.deleteSourceHandler)
		r.HandleFunc("POST /sources/{id}/backfill", s.backfillHandler)

		// refresh and sync
		r.HandleFunc("POST /refresh", s.refreshHandler)
		r.HandleFunc("POST /sync", s.syncHandler)

		// articles
		r.HandleFunc("GET /articles", s.listArticlesHandler)
		r.HandleFunc("DELETE /articles", s.clearArticlesHandler)
		r.HandleFunc("GET /articles/{id}", s.getArticleHandler)
		r.HandleFunc("POST /articles/{id}/read", s.readHandler)
		r.HandleFunc("POST /articles/{id}/favorite", s.favoriteHandler)
		r.HandleFunc("POST /articles/{id}/progress", s.progressHandler)
		r.HandleFunc("GET /stats", s.statsHandler)

		// filter rules
		r.HandleFunc("GET /rules", s.listRulesHandler)
		r.HandleFunc("POST /rules", s.createRuleHandler)
		r.HandleFunc("DELETE /rules/{id}", s.deleteRuleHandler)

		// opml
		r.HandleFunc("GET /opml", s.exportOPMLHandler)
		r.HandleFunc("POST /opml", s.importOPMLHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":           "ok",
		"version":          s.version,
		"time":             time.Now().UTC(),
		"sync_in_progress": s.bus.SyncInProgress(),
	}
	last, err := s.store.LastRefresh(r.Context())
	if err != nil {
		lgr.Printf("[WARN] failed to get last refresh time: %v", err)
	}
	if !last.IsZero() {
		status["last_refresh"] = last
	}
	renderJSON(w, r, http.StatusOK, status)
}

// pathID parses the {id} path value
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", r.PathValue("id"))
	}
	return id, nil
}

// decodeJSON reads json request body into v
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// errorCode maps service errors to http status codes
func errorCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidSource), errors.Is(err, filter.ErrInvalidRule):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrSourceExists):
		return http.StatusConflict
	case errors.Is(err, service.ErrProxyUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	if code >= http.StatusInternalServerError {
		lgr.Printf("[ERROR] %s %s: %s", r.Method, r.URL.Path, errMsg)
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
