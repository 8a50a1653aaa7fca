package service

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedsync/pkg/content"
	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/events"
)

// Extractor returns the best available html content for an article
type Extractor interface {
	Extract(ctx context.Context, rawContent, articleURL string, contentType domain.ContentType) string
}

// ImageSelector picks a validated representative image of an item
type ImageSelector interface {
	Select(ctx context.Context, item domain.ParsedItem) (domain.ImageResult, bool)
}

// BackfillImages re-runs content extraction and image selection for articles of the source stored
// without an image. Returns the number of updated articles.
func (s *Service) BackfillImages(ctx context.Context, sourceID int64, limit int) (int, error) {
	if s.extractor == nil || s.images == nil {
		return 0, fmt.Errorf("backfill images: extractor and image selector are required")
	}
	src, err := s.sourceRepo.GetSource(ctx, sourceID)
	if err != nil {
		return 0, fmt.Errorf("backfill images: %w", err)
	}
	articles, err := s.articleRepo.ArticlesWithoutImage(ctx, sourceID, limit)
	if err != nil {
		return 0, fmt.Errorf("backfill images: %w", err)
	}

	updated := 0
	for _, a := range articles {
		if ctx.Err() != nil {
			break
		}
		body := s.extractor.Extract(ctx, a.Content, a.URL, domain.ContentImageText)
		img, ok := s.images.Select(ctx, domain.ParsedItem{GUID: a.GUID, Title: a.Title, Link: a.URL, Content: body})
		if !ok {
			continue
		}

		words := content.WordCount(body)
		e := domain.Enrichment{Content: body, ImageURL: img.URL, ImageCaption: img.Caption, ImageCredit: img.Credit,
			WordCount: words, ReadingTime: content.ReadingTime(words)}
		if err := s.articleRepo.UpdateEnrichment(ctx, a.ID, e); err != nil {
			lgr.Printf("[WARN] failed to store enrichment of article %d: %v", a.ID, err)
			continue
		}
		updated++
	}

	if updated > 0 {
		lgr.Printf("[INFO] backfilled images of %d articles of %s", updated, src.Name())
		s.events.Emit(events.Event{Type: events.SourceRefreshed, SourceID: sourceID, Reason: "backfill"})
	}
	return updated, nil
}
