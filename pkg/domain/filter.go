package domain

// RuleMode defines whether a rule is a whitelist or a blacklist rule
type RuleMode string

// rule modes
const (
	RuleInclude RuleMode = "include"
	RuleExclude RuleMode = "exclude"
)

// FilterRule is a user-defined keyword or regex rule. SourceID is nil for global rules.
type FilterRule struct {
	ID       int64    `json:"id"`
	SourceID *int64   `json:"source_id,omitempty"`
	Mode     RuleMode `json:"mode"`
	Keyword  string   `json:"keyword"`
	IsRegex  bool     `json:"is_regex"`
}

// IsGlobal reports whether the rule applies to every source
func (r FilterRule) IsGlobal() bool {
	return r.SourceID == nil
}
