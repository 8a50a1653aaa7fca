package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedsync/pkg/domain"
)

func TestSourceRepository_CreateAndGet(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	gid := int64(7)
	src := &domain.Source{URL: "https://example.com/feed.xml", Title: "Example", IsActive: true, GroupID: &gid}
	require.NoError(t, repos.Source.CreateSource(ctx, src))
	assert.NotZero(t, src.ID)
	assert.Equal(t, domain.ModeDirect, src.Mode)
	assert.Equal(t, domain.ContentText, src.ContentType)
	assert.Equal(t, domain.DefaultMaxArticles, src.MaxArticles)
	assert.Equal(t, 0, src.SortOrder)
	require.NotNil(t, src.GroupID)
	assert.Equal(t, int64(7), *src.GroupID)

	second := createTestSource(t, repos, "https://example.com/second.xml")
	assert.Equal(t, 1, second.SortOrder)

	got, err := repos.Source.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, "Example", got.Title)
	assert.True(t, got.IsActive)

	_, err = repos.Source.GetSource(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	found, err := repos.Source.FindSourceByURL(ctx, "https://example.com/second.xml")
	require.NoError(t, err)
	assert.Equal(t, second.ID, found.ID)

	_, err = repos.Source.FindSourceByURL(ctx, "https://example.com/none.xml")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSourceRepository_DuplicateURL(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	src := createTestSource(t, repos, "https://example.com/feed.xml")
	err := repos.Source.CreateSource(ctx, &domain.Source{URL: "https://example.com/feed.xml"})
	require.Error(t, err)

	// url can be reused after soft delete
	require.NoError(t, repos.Source.DeleteSource(ctx, src.ID))
	require.NoError(t, repos.Source.CreateSource(ctx, &domain.Source{URL: "https://example.com/feed.xml"}))
}

func TestSourceRepository_GetSources(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	a := createTestSource(t, repos, "https://a.com/rss")
	b := createTestSource(t, repos, "https://b.com/rss")
	c := createTestSource(t, repos, "https://c.com/rss")

	b.IsActive = false
	require.NoError(t, repos.Source.UpdateSource(ctx, b))

	all, err := repos.Source.GetSources(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{a.ID, b.ID, c.ID}, []int64{all[0].ID, all[1].ID, all[2].ID})

	active, err := repos.Source.GetSources(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, a.ID, active[0].ID)
	assert.Equal(t, c.ID, active[1].ID)
}

func TestSourceRepository_UpdateSource(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	src := createTestSource(t, repos, "https://a.com/rss")
	src.Title = "renamed"
	src.Mode = domain.ModeProxy
	src.ContentType = domain.ContentImageText
	src.MaxArticles = 10
	src.RemoteID = "remote-1"
	require.NoError(t, repos.Source.UpdateSource(ctx, src))

	got, err := repos.Source.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
	assert.Equal(t, domain.ModeProxy, got.Mode)
	assert.Equal(t, domain.ContentImageText, got.ContentType)
	assert.Equal(t, 10, got.MaxArticles)
	assert.Equal(t, "remote-1", got.RemoteID)
	assert.Nil(t, got.GroupID)

	err = repos.Source.UpdateSource(ctx, &domain.Source{ID: 999, Mode: domain.ModeDirect, ContentType: domain.ContentText})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSourceRepository_FetchStatus(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	src := createTestSource(t, repos, "https://a.com/rss")
	require.NoError(t, repos.Source.UpdateSourceError(ctx, src.ID, "timeout"))
	require.NoError(t, repos.Source.UpdateSourceError(ctx, src.ID, "status 500"))

	got, err := repos.Source.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ErrorCount)
	assert.Equal(t, "status 500", got.LastError)
	assert.Nil(t, got.LastFetchAt)

	fetchedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Source.UpdateSourceFetched(ctx, src.ID, fetchedAt))
	got, err = repos.Source.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ErrorCount)
	assert.Empty(t, got.LastError)
	require.NotNil(t, got.LastFetchAt)
	assert.True(t, fetchedAt.Equal(*got.LastFetchAt))
}

func TestSourceRepository_DeleteSource(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	src := createTestSource(t, repos, "https://a.com/rss")
	other := createTestSource(t, repos, "https://b.com/rss")

	_, err := repos.Article.InsertArticles(ctx, []domain.Article{
		{SourceID: src.ID, GUID: "g1", Title: "one", URL: "https://a.com/1"},
		{SourceID: other.ID, GUID: "g2", Title: "two", URL: "https://b.com/2"},
	})
	require.NoError(t, err)
	require.NoError(t, repos.Rule.CreateRule(ctx, &domain.FilterRule{SourceID: &src.ID, Mode: domain.RuleExclude, Keyword: "ads"}))
	require.NoError(t, repos.Rule.CreateRule(ctx, &domain.FilterRule{Mode: domain.RuleExclude, Keyword: "spam"}))

	require.NoError(t, repos.Source.DeleteSource(ctx, src.ID))

	deleted, err := repos.Source.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.NotNil(t, deleted.DeletedAt)
	assert.False(t, deleted.IsActive)

	sources, err := repos.Source.GetSources(ctx, false)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, other.ID, sources[0].ID)

	refs, err := repos.Article.GetRecentRefs(ctx, src.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, refs)
	refs, err = repos.Article.GetRecentRefs(ctx, other.ID, 10)
	require.NoError(t, err)
	assert.Len(t, refs, 1)

	rules, err := repos.Rule.ListRules(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "spam", rules[0].Keyword)

	assert.ErrorIs(t, repos.Source.DeleteSource(ctx, src.ID), domain.ErrNotFound)
}

func TestSourceRepository_ReorderSources(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	a := createTestSource(t, repos, "https://a.com/rss")
	b := createTestSource(t, repos, "https://b.com/rss")
	c := createTestSource(t, repos, "https://c.com/rss")

	require.NoError(t, repos.Source.ReorderSources(ctx, []int64{c.ID, a.ID, b.ID}))
	sources, err := repos.Source.GetSources(ctx, false)
	require.NoError(t, err)
	require.Len(t, sources, 3)
	assert.Equal(t, []int64{c.ID, a.ID, b.ID}, []int64{sources[0].ID, sources[1].ID, sources[2].ID})

	err = repos.Source.ReorderSources(ctx, []int64{b.ID, 999})
	require.ErrorIs(t, err, domain.ErrNotFound)

	// failed reorder is rolled back
	sources, err = repos.Source.GetSources(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, c.ID, sources[0].ID)
}
