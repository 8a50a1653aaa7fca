package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/umputun/feedsync/pkg/domain"
)

func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	f, err := articleFilter(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	articles, err := s.store.ListArticles(r.Context(), f)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, articles)
}

func (s *Server) getArticleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	article, err := s.store.GetArticle(r.Context(), id)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, article)
}

// readHandler sets read state, empty body marks the article read
func (s *Server) readHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	req := struct {
		Read bool `json:"read"`
	}{Read: true}
	if err = decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := s.store.MarkRead(r.Context(), id, req.Read); err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// favoriteHandler sets favorite flag, empty body marks the article favorite
func (s *Server) favoriteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	req := struct {
		Favorite bool `json:"favorite"`
	}{Favorite: true}
	if err = decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := s.store.SetFavorite(r.Context(), id, req.Favorite); err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) progressHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	var req struct {
		Progress float64 `json:"progress"`
	}
	if err = decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := s.store.UpdateReadProgress(r.Context(), id, req.Progress); err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// clearArticlesHandler deletes non-favorite articles of source_id, of all sources without it
func (s *Server) clearArticlesHandler(w http.ResponseWriter, r *http.Request) {
	var sourceID int64
	if v := r.URL.Query().Get("source_id"); v != "" {
		var err error
		if sourceID, err = strconv.ParseInt(v, 10, 64); err != nil || sourceID <= 0 {
			renderError(w, r, fmt.Errorf("invalid source_id %q", v), http.StatusBadRequest)
			return
		}
	}
	deleted, err := s.store.ClearArticles(r.Context(), sourceID)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]int64{"deleted": deleted})
}

func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats(r.Context())
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

func (s *Server) listRulesHandler(w http.ResponseWriter, r *http.Request) {
	rules, err := s.store.ListRules(r.Context())
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, rules)
}

func (s *Server) createRuleHandler(w http.ResponseWriter, r *http.Request) {
	var rule domain.FilterRule
	if err := decodeJSON(r, &rule); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	rule.ID = 0
	if err := s.store.CreateRule(r.Context(), &rule); err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusCreated, rule)
}

func (s *Server) deleteRuleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := s.store.DeleteRule(r.Context(), id); err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// articleFilter builds the listing filter from query parameters
func articleFilter(r *http.Request) (domain.ArticleFilter, error) {
	q := r.URL.Query()
	f := domain.ArticleFilter{UnreadOnly: q.Get("unread") == "true", FavoriteOnly: q.Get("favorite") == "true"}

	ints := []struct {
		name string
		dst  *int
	}{{"limit", &f.Limit}, {"offset", &f.Offset}}
	for _, p := range ints {
		if v := q.Get(p.name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return f, fmt.Errorf("invalid %s %q", p.name, v)
			}
			*p.dst = n
		}
	}

	ids := []struct {
		name string
		dst  *int64
	}{{"source_id", &f.SourceID}, {"group_id", &f.GroupID}}
	for _, p := range ids {
		if v := q.Get(p.name); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil || n <= 0 {
				return f, fmt.Errorf("invalid %s %q", p.name, v)
			}
			*p.dst = n
		}
	}
	return f, nil
}
