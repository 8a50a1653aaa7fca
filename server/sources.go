package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/scheduler"
	"github.com/umputun/feedsync/pkg/service"
)

// sourceUpdate carries editable source fields, nil fields are left as is
type sourceUpdate struct {
	Title       *string             `json:"title"`
	ContentType *domain.ContentType `json:"content_type"`
	MaxArticles *int                `json:"max_articles"`
	IsActive    *bool               `json:"is_active"`
	GroupID     *int64              `json:"group_id"`
}

func (s *Server) listSourcesHandler(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	sources, err := s.store.GetSources(r.Context(), activeOnly)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, sources)
}

func (s *Server) getSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	src, err := s.store.GetSource(r.Context(), id)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, src)
}

// createSourceHandler subscribes to a feed and triggers its first refresh in background
func (s *Server) createSourceHandler(w http.ResponseWriter, r *http.Request) {
	var req service.SubscribeRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	src, err := s.store.Subscribe(r.Context(), req)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}

	// background context, the fetch outlives the request
	go func(id int64) {
		res := s.refresher.RefreshSources(context.Background(), []int64{id}, scheduler.RefreshOptions{})
		if res.FailedCount > 0 {
			lgr.Printf("[WARN] first refresh of source %d failed: %+v", id, res.Errors)
		}
	}(src.ID)

	renderJSON(w, r, http.StatusCreated, src)
}

func (s *Server) updateSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	var upd sourceUpdate
	if err = decodeJSON(r, &upd); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	src, err := s.store.GetSource(r.Context(), id)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	if upd.Title != nil {
		src.Title = *upd.Title
	}
	if upd.ContentType != nil {
		if !upd.ContentType.Valid() {
			renderError(w, r, fmt.Errorf("unknown content type %q", *upd.ContentType), http.StatusBadRequest)
			return
		}
		src.ContentType = *upd.ContentType
	}
	if upd.MaxArticles != nil {
		src.MaxArticles = *upd.MaxArticles
	}
	if upd.IsActive != nil {
		src.IsActive = *upd.IsActive
	}
	if upd.GroupID != nil {
		src.GroupID = upd.GroupID
	}
	if err := s.store.UpdateSource(r.Context(), src); err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, src)
}

func (s *Server) deleteSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := s.store.DeleteSource(r.Context(), id); err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) reorderSourcesHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []int64 `json:"ids"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if len(req.IDs) == 0 {
		renderError(w, r, fmt.Errorf("ids are required"), http.StatusBadRequest)
		return
	}
	if err := s.store.ReorderSources(r.Context(), req.IDs); err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// backfillHandler re-extracts images for articles of the source stored without one
func (s *Server) backfillHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit <= 0 {
			renderError(w, r, fmt.Errorf("invalid limit %q", v), http.StatusBadRequest)
			return
		}
	}
	updated, err := s.store.BackfillImages(context.WithoutCancel(r.Context()), id, limit)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]int{"updated": updated})
}

// refreshHandler refreshes the listed sources, or all active sources if none listed.
// The refresh isn't cancelled when the client goes away.
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SourceIDs []int64 `json:"source_ids"`
	}
	// empty body means all sources
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	ctx := context.WithoutCancel(r.Context())
	if len(req.SourceIDs) > 0 {
		renderJSON(w, r, http.StatusOK, s.refresher.RefreshSources(ctx, req.SourceIDs, scheduler.RefreshOptions{}))
		return
	}

	res := s.refresher.RefreshAll(ctx, scheduler.RefreshOptions{})
	if err := s.store.MarkRefreshed(ctx, time.Now()); err != nil {
		lgr.Printf("[WARN] failed to store refresh time: %v", err)
	}
	renderJSON(w, r, http.StatusOK, res)
}

// syncHandler pulls pending items from the aggregation server, mode is "sync" (default) or "refresh"
func (s *Server) syncHandler(w http.ResponseWriter, r *http.Request) {
	mode := domain.SyncMode(r.URL.Query().Get("mode"))
	switch mode {
	case "":
		mode = domain.SyncIncremental
	case domain.SyncIncremental, domain.SyncRefresh:
	default:
		renderError(w, r, fmt.Errorf("invalid sync mode %q", mode), http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, s.refresher.SyncFromServer(context.WithoutCancel(r.Context()), mode))
}

func (s *Server) exportOPMLHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.ExportOPML(r.Context())
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	w.Header().Set("Content-Type", "text/x-opml; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="feedsync.opml"`)
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, doc); err != nil {
		lgr.Printf("[WARN] failed to write opml: %v", err)
	}
}

// importOPMLHandler takes raw OPML document as the request body
func (s *Server) importOPMLHandler(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		renderError(w, r, fmt.Errorf("read body: %w", err), http.StatusBadRequest)
		return
	}
	res, err := s.store.ImportOPML(r.Context(), data)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}
