// Package filter evaluates whitelist/blacklist rules against article text.
package filter

import (
	"context"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/feedsync/pkg/domain"
)

//go:generate moq -out mocks/rule_provider.go -pkg mocks -skip-ensure -fmt goimports . RuleProvider

// ErrInvalidRule is returned by ValidateRule
var ErrInvalidRule = errors.New("invalid rule")

// RuleProvider returns the effective rules for a source, i.e. global rules plus rules bound to it
type RuleProvider interface {
	GetEffectiveRules(ctx context.Context, sourceID int64) ([]domain.FilterRule, error)
}

// Engine matches articles against filter rules. Compiled regexes are cached, invalid
// patterns are cached as non-matching and logged once.
type Engine struct {
	provider RuleProvider
	strip    *bluemonday.Policy

	mu      sync.Mutex
	regexes map[string]*regexp.Regexp
}

// New makes an engine. Provider can be nil if only ShouldKeep is used.
func New(provider RuleProvider) *Engine {
	return &Engine{
		provider: provider,
		strip:    bluemonday.StrictPolicy(),
		regexes:  make(map[string]*regexp.Regexp),
	}
}

// ShouldKeep reports whether article survives the rules. Whitelist (include) rules are evaluated
// first: if any exist the article must match at least one of them. Blacklist (exclude) rules
// are evaluated on the survivors and any match drops the article.
func (e *Engine) ShouldKeep(article domain.Article, rules []domain.FilterRule) bool {
	if len(rules) == 0 {
		return true
	}

	text := e.candidateText(article)

	var includes, excludes []domain.FilterRule
	for _, r := range rules {
		switch r.Mode {
		case domain.RuleInclude:
			includes = append(includes, r)
		case domain.RuleExclude:
			excludes = append(excludes, r)
		default:
			lgr.Printf("[WARN] filter rule %d has unknown mode %q, ignored", r.ID, r.Mode)
		}
	}

	if len(includes) > 0 {
		matched := false
		for _, r := range includes {
			if e.matches(r, text) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, r := range excludes {
		if e.matches(r, text) {
			return false
		}
	}
	return true
}

// Apply loads effective rules for the source and returns articles which should be kept, order preserved
func (e *Engine) Apply(ctx context.Context, sourceID int64, articles []domain.Article) ([]domain.Article, error) {
	if e.provider == nil {
		return articles, nil
	}
	rules, err := e.provider.GetEffectiveRules(ctx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("get effective rules for source %d: %w", sourceID, err)
	}
	if len(rules) == 0 {
		return articles, nil
	}

	res := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if e.ShouldKeep(a, rules) {
			res = append(res, a)
			continue
		}
		lgr.Printf("[DEBUG] article %q filtered out for source %d", a.Title, sourceID)
	}
	return res, nil
}

// ValidateRule checks rule for correctness before it is stored
func ValidateRule(r domain.FilterRule) error {
	if strings.TrimSpace(r.Keyword) == "" {
		return fmt.Errorf("%w: empty keyword", ErrInvalidRule)
	}
	if r.Mode != domain.RuleInclude && r.Mode != domain.RuleExclude {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidRule, r.Mode)
	}
	if r.IsRegex {
		if _, err := regexp.Compile("(?i)" + r.Keyword); err != nil {
			return fmt.Errorf("%w: bad regex %q: %v", ErrInvalidRule, r.Keyword, err)
		}
	}
	return nil
}

func (e *Engine) matches(r domain.FilterRule, text string) bool {
	if strings.TrimSpace(r.Keyword) == "" {
		return false
	}
	if !r.IsRegex {
		return strings.Contains(text, strings.ToLower(r.Keyword))
	}
	re := e.compile(r.Keyword)
	if re == nil {
		return false
	}
	return re.MatchString(text)
}

// compile returns cached regex for the pattern, nil if the pattern is invalid
func (e *Engine) compile(pattern string) *regexp.Regexp {
	e.mu.Lock()
	defer e.mu.Unlock()
	if re, ok := e.regexes[pattern]; ok {
		return re
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		lgr.Printf("[WARN] invalid filter regex %q, treated as non-matching: %v", pattern, err)
		re = nil
	}
	e.regexes[pattern] = re
	return re
}

// candidateText makes lower-cased text the rules are matched against
func (e *Engine) candidateText(a domain.Article) string {
	parts := []string{a.Title, a.Summary}
	if a.Content != "" {
		parts = append(parts, html.UnescapeString(e.strip.Sanitize(a.Content)))
	}
	return strings.ToLower(strings.Join(parts, "\n"))
}
