package filter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/filter/mocks"
)

func TestEngine_ShouldKeep(t *testing.T) {
	article := domain.Article{
		Title:   "Go 1.24 released with new features",
		Summary: "The Go team announces a new release",
		Content: "<p>Generic type <b>aliases</b> are now fully supported</p>",
	}

	tests := []struct {
		name  string
		rules []domain.FilterRule
		want  bool
	}{
		{name: "no rules", rules: nil, want: true},
		{name: "include matches title", rules: []domain.FilterRule{
			{Mode: domain.RuleInclude, Keyword: "go 1.24"},
		}, want: true},
		{name: "include is case insensitive", rules: []domain.FilterRule{
			{Mode: domain.RuleInclude, Keyword: "RELEASED"},
		}, want: true},
		{name: "include matches stripped content", rules: []domain.FilterRule{
			{Mode: domain.RuleInclude, Keyword: "type aliases"},
		}, want: true},
		{name: "include doesn't match html tags", rules: []domain.FilterRule{
			{Mode: domain.RuleInclude, Keyword: "<b>"},
		}, want: false},
		{name: "include none match", rules: []domain.FilterRule{
			{Mode: domain.RuleInclude, Keyword: "rust"},
			{Mode: domain.RuleInclude, Keyword: "python"},
		}, want: false},
		{name: "include any of many", rules: []domain.FilterRule{
			{Mode: domain.RuleInclude, Keyword: "rust"},
			{Mode: domain.RuleInclude, Keyword: "go team"},
		}, want: true},
		{name: "exclude matches", rules: []domain.FilterRule{
			{Mode: domain.RuleExclude, Keyword: "announces"},
		}, want: false},
		{name: "exclude no match", rules: []domain.FilterRule{
			{Mode: domain.RuleExclude, Keyword: "sponsored"},
		}, want: true},
		{name: "include and exclude both match, exclude wins", rules: []domain.FilterRule{
			{Mode: domain.RuleInclude, Keyword: "go"},
			{Mode: domain.RuleExclude, Keyword: "release"},
		}, want: false},
		{name: "whitelist unmatched ignores blacklist", rules: []domain.FilterRule{
			{Mode: domain.RuleInclude, Keyword: "kotlin"},
			{Mode: domain.RuleExclude, Keyword: "nothing-here"},
		}, want: false},
		{name: "regex include", rules: []domain.FilterRule{
			{Mode: domain.RuleInclude, Keyword: `go\s+1\.\d+`, IsRegex: true},
		}, want: true},
		{name: "regex exclude", rules: []domain.FilterRule{
			{Mode: domain.RuleExclude, Keyword: `^go \d`, IsRegex: true},
		}, want: false},
		{name: "invalid regex never matches as include", rules: []domain.FilterRule{
			{Mode: domain.RuleInclude, Keyword: `go(`, IsRegex: true},
		}, want: false},
		{name: "invalid regex never matches as exclude", rules: []domain.FilterRule{
			{Mode: domain.RuleExclude, Keyword: `[unclosed`, IsRegex: true},
		}, want: true},
		{name: "empty keyword ignored", rules: []domain.FilterRule{
			{Mode: domain.RuleExclude, Keyword: "  "},
		}, want: true},
		{name: "unknown mode ignored", rules: []domain.FilterRule{
			{Mode: "weird", Keyword: "go"},
		}, want: true},
	}

	e := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.ShouldKeep(article, tt.rules))
		})
	}
}

func TestEngine_RegexCache(t *testing.T) {
	e := New(nil)
	rule := domain.FilterRule{Mode: domain.RuleInclude, Keyword: `foo(`, IsRegex: true}
	a := domain.Article{Title: "foo("}
	assert.False(t, e.ShouldKeep(a, []domain.FilterRule{rule}))
	assert.False(t, e.ShouldKeep(a, []domain.FilterRule{rule}))
	assert.Len(t, e.regexes, 1)
	assert.Nil(t, e.regexes[`foo(`])
}

func TestEngine_Apply(t *testing.T) {
	srcID := int64(7)
	provider := &mocks.RuleProviderMock{
		GetEffectiveRulesFunc: func(ctx context.Context, sourceID int64) ([]domain.FilterRule, error) {
			assert.Equal(t, srcID, sourceID)
			return []domain.FilterRule{
				{Mode: domain.RuleExclude, Keyword: "ad"},
				{Mode: domain.RuleInclude, Keyword: "news", SourceID: &srcID},
			}, nil
		},
	}
	e := New(provider)

	articles := []domain.Article{
		{Title: "news one"},
		{Title: "ad news"},
		{Title: "unrelated"},
		{Title: "news two"},
	}
	res, err := e.Apply(context.Background(), srcID, articles)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "news one", res[0].Title)
	assert.Equal(t, "news two", res[1].Title)
	assert.Len(t, provider.GetEffectiveRulesCalls(), 1)
}

func TestEngine_ApplyErrors(t *testing.T) {
	provider := &mocks.RuleProviderMock{
		GetEffectiveRulesFunc: func(ctx context.Context, sourceID int64) ([]domain.FilterRule, error) {
			return nil, errors.New("db failure")
		},
	}
	_, err := New(provider).Apply(context.Background(), 1, []domain.Article{{Title: "x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db failure")

	res, err := New(nil).Apply(context.Background(), 1, []domain.Article{{Title: "x"}})
	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestValidateRule(t *testing.T) {
	assert.NoError(t, ValidateRule(domain.FilterRule{Mode: domain.RuleInclude, Keyword: "go"}))
	assert.NoError(t, ValidateRule(domain.FilterRule{Mode: domain.RuleExclude, Keyword: `\d+`, IsRegex: true}))
	assert.Error(t, ValidateRule(domain.FilterRule{Mode: domain.RuleInclude, Keyword: " "}))
	assert.Error(t, ValidateRule(domain.FilterRule{Mode: "all", Keyword: "go"}))
	assert.ErrorIs(t, ValidateRule(domain.FilterRule{Mode: domain.RuleExclude, Keyword: "(", IsRegex: true}), ErrInvalidRule)
}
