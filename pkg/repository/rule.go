package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedsync/pkg/domain"
)

// RuleRepository handles filter rule database operations
type RuleRepository struct {
	db *sqlx.DB
}

type ruleSQL struct {
	ID       int64         `db:"id"`
	SourceID sql.NullInt64 `db:"source_id"`
	Mode     string        `db:"mode"`
	Keyword  string        `db:"keyword"`
	IsRegex  bool          `db:"is_regex"`
}

// NewRuleRepository creates a new rule repository
func NewRuleRepository(db *sqlx.DB) *RuleRepository {
	return &RuleRepository{db: db}
}

// CreateRule stores a rule and sets its ID
func (r *RuleRepository) CreateRule(ctx context.Context, rule *domain.FilterRule) error {
	row := ruleSQL{Mode: string(rule.Mode), Keyword: rule.Keyword, IsRegex: rule.IsRegex}
	if rule.SourceID != nil {
		row.SourceID = sql.NullInt64{Int64: *rule.SourceID, Valid: true}
	}
	query := `INSERT INTO filter_rules (source_id, mode, keyword, is_regex) VALUES (:source_id, :mode, :keyword, :is_regex)`
	return withLockRetry(ctx, func() error {
		res, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			return fmt.Errorf("create rule: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("get insert id: %w", err)
		}
		rule.ID = id
		return nil
	})
}

// ListRules returns all rules, global first
func (r *RuleRepository) ListRules(ctx context.Context) ([]domain.FilterRule, error) {
	var rows []ruleSQL
	query := `SELECT id, source_id, mode, keyword, is_regex FROM filter_rules ORDER BY source_id IS NOT NULL, source_id, id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}
	return r.toDomain(rows), nil
}

// GetEffectiveRules returns global rules plus rules bound to the source
func (r *RuleRepository) GetEffectiveRules(ctx context.Context, sourceID int64) ([]domain.FilterRule, error) {
	var rows []ruleSQL
	query := `SELECT id, source_id, mode, keyword, is_regex FROM filter_rules
		WHERE source_id IS NULL OR source_id = ? ORDER BY id`
	if err := r.db.SelectContext(ctx, &rows, query, sourceID); err != nil {
		return nil, fmt.Errorf("get rules for source %d: %w", sourceID, err)
	}
	return r.toDomain(rows), nil
}

// DeleteRule removes a rule
func (r *RuleRepository) DeleteRule(ctx context.Context, id int64) error {
	return withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, `DELETE FROM filter_rules WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete rule %d: %w", id, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("delete rule %d: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}

func (r *RuleRepository) toDomain(rows []ruleSQL) []domain.FilterRule {
	res := make([]domain.FilterRule, len(rows))
	for i, row := range rows {
		res[i] = domain.FilterRule{ID: row.ID, Mode: domain.RuleMode(row.Mode), Keyword: row.Keyword, IsRegex: row.IsRegex}
		if row.SourceID.Valid {
			sid := row.SourceID.Int64
			res[i].SourceID = &sid
		}
	}
	return res
}
