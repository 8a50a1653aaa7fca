package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_OPMLRoundTrip(t *testing.T) {
	svc, _ := setupService(t, nil)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, SubscribeRequest{URL: "https://existing.com/rss", Title: "Existing"})
	require.NoError(t, err)

	opml := `<?xml version="1.0" encoding="UTF-8"?>
<opml version="2.0">
  <head><title>export</title></head>
  <body>
    <outline text="Tech" title="Tech">
      <outline type="rss" text="Go Blog" title="Go Blog" xmlUrl="https://go.dev/blog/feed.atom"/>
      <outline type="rss" text="Existing" xmlUrl="https://existing.com/rss"/>
    </outline>
    <outline type="rss" text="Bad" xmlUrl="not-a-url"/>
  </body>
</opml>`

	res, err := svc.ImportOPML(ctx, []byte(opml))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "not-a-url")

	out, err := svc.ExportOPML(ctx)
	require.NoError(t, err)
	assert.Contains(t, out, `xmlUrl="https://go.dev/blog/feed.atom"`)
	assert.Contains(t, out, `xmlUrl="https://existing.com/rss"`)

	_, err = svc.ImportOPML(ctx, []byte("not xml"))
	assert.Error(t, err)
}
