package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/feed"
)

// ImportResult reports the outcome of an OPML import
type ImportResult struct {
	Added   int      `json:"added"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// ExportOPML renders active sources as an OPML document
func (s *Service) ExportOPML(ctx context.Context) (string, error) {
	sources, err := s.sourceRepo.GetSources(ctx, false)
	if err != nil {
		return "", fmt.Errorf("get sources: %w", err)
	}
	return feed.GenerateOPML(sources)
}

// ImportOPML subscribes to every feed of the OPML document as a direct source.
// Already subscribed urls are skipped, invalid entries are reported and skipped.
func (s *Service) ImportOPML(ctx context.Context, data []byte) (ImportResult, error) {
	entries, err := feed.ParseOPML(data)
	if err != nil {
		return ImportResult{}, fmt.Errorf("import opml: %w", err)
	}

	var res ImportResult
	for _, e := range entries {
		_, err := s.Subscribe(ctx, SubscribeRequest{URL: e.URL, Title: e.Title, Mode: domain.ModeDirect})
		switch {
		case err == nil:
			res.Added++
		case errors.Is(err, ErrSourceExists):
			res.Skipped++
		default:
			res.Skipped++
			res.Errors = append(res.Errors, err.Error())
		}
	}
	lgr.Printf("[INFO] opml import: %d added, %d skipped", res.Added, res.Skipped)
	return res, nil
}
