package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/events"
	"github.com/umputun/feedsync/pkg/service/mocks"
)

func TestService_BackfillImages(t *testing.T) {
	extractor := &mocks.ExtractorMock{ExtractFunc: func(_ context.Context, raw, _ string, ct domain.ContentType) string {
		assert.Equal(t, domain.ContentImageText, ct)
		return raw + `<figure><img src="https://a.com/big.jpg"><figcaption>cap</figcaption></figure>`
	}}
	images := &mocks.ImageSelectorMock{SelectFunc: func(_ context.Context, item domain.ParsedItem) (domain.ImageResult, bool) {
		if item.GUID == "g2" {
			return domain.ImageResult{}, false
		}
		return domain.ImageResult{URL: "https://a.com/big.jpg", Caption: "cap", Source: domain.ImageFromFigure}, true
	}}
	svc, rec := setupService(t, func(p *Params) { p.Extractor = extractor; p.Images = images })
	ctx := context.Background()

	src, err := svc.Subscribe(ctx, SubscribeRequest{URL: "https://a.com/rss"})
	require.NoError(t, err)
	_, err = svc.InsertArticles(ctx, []domain.Article{
		{SourceID: src.ID, GUID: "g1", URL: "https://a.com/1", Content: "<p>one</p>"},
		{SourceID: src.ID, GUID: "g2", URL: "https://a.com/2", Content: "<p>two</p>"},
		{SourceID: src.ID, GUID: "g3", URL: "https://a.com/3", ImageURL: "https://a.com/has.jpg"},
	})
	require.NoError(t, err)
	rec.reset()

	n, err := svc.BackfillImages(ctx, src.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, extractor.ExtractCalls(), 2)
	assert.Equal(t, []events.Type{events.SourceRefreshed}, rec.types())

	list, err := svc.ListArticles(ctx, domain.ArticleFilter{SourceID: src.ID})
	require.NoError(t, err)
	for _, a := range list {
		switch a.GUID {
		case "g1":
			assert.Equal(t, "https://a.com/big.jpg", a.ImageURL)
			assert.Equal(t, "cap", a.ImageCaption)
			assert.Contains(t, a.Content, "<figure>")
			assert.Equal(t, 2, a.WordCount)
		case "g2":
			assert.Empty(t, a.ImageURL)
		}
	}
}

func TestService_BackfillImagesRequiresDeps(t *testing.T) {
	svc, _ := setupService(t, nil)
	_, err := svc.BackfillImages(context.Background(), 1, 10)
	assert.Error(t, err)
}
