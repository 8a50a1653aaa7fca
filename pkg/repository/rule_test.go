package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedsync/pkg/domain"
)

func TestRuleRepository(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	a := createTestSource(t, repos, "https://a.com/rss")
	b := createTestSource(t, repos, "https://b.com/rss")

	global := &domain.FilterRule{Mode: domain.RuleExclude, Keyword: "sponsored"}
	forA := &domain.FilterRule{SourceID: &a.ID, Mode: domain.RuleInclude, Keyword: "^go", IsRegex: true}
	forB := &domain.FilterRule{SourceID: &b.ID, Mode: domain.RuleExclude, Keyword: "sports"}
	for _, r := range []*domain.FilterRule{forA, global, forB} {
		require.NoError(t, repos.Rule.CreateRule(ctx, r))
		assert.NotZero(t, r.ID)
	}

	all, err := repos.Rule.ListRules(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].IsGlobal(), "global rules come first")

	effective, err := repos.Rule.GetEffectiveRules(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, effective, 2)
	assert.Equal(t, forA.ID, effective[0].ID)
	require.NotNil(t, effective[0].SourceID)
	assert.Equal(t, a.ID, *effective[0].SourceID)
	assert.True(t, effective[0].IsRegex)
	assert.Equal(t, global.ID, effective[1].ID)

	require.NoError(t, repos.Rule.DeleteRule(ctx, global.ID))
	effective, err = repos.Rule.GetEffectiveRules(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, effective, 1)
	assert.Equal(t, "sports", effective[0].Keyword)

	assert.ErrorIs(t, repos.Rule.DeleteRule(ctx, global.ID), domain.ErrNotFound)

	// invalid mode is rejected by the schema
	assert.Error(t, repos.Rule.CreateRule(ctx, &domain.FilterRule{Mode: "maybe", Keyword: "x"}))
}
