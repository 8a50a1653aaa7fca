package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedsync/pkg/domain"
)

// SourceRepository handles source-related database operations
type SourceRepository struct {
	db *sqlx.DB
}

// sourceSQL represents a source for SQL operations
type sourceSQL struct {
	ID          int64         `db:"id"`
	URL         string        `db:"url"`
	Title       string        `db:"title"`
	Mode        string        `db:"mode"`
	ContentType string        `db:"content_type"`
	MaxArticles int           `db:"max_articles"`
	IsActive    bool          `db:"is_active"`
	ErrorCount  int           `db:"error_count"`
	LastError   string        `db:"last_error"`
	LastFetchAt *time.Time    `db:"last_fetch_at"`
	GroupID     sql.NullInt64 `db:"group_id"`
	SortOrder   int           `db:"sort_order"`
	RemoteID    string        `db:"remote_id"`
	CreatedAt   time.Time     `db:"created_at"`
	DeletedAt   *time.Time    `db:"deleted_at"`
}

const sourceColumns = `id, url, title, mode, content_type, max_articles, is_active, error_count, last_error,
	last_fetch_at, group_id, sort_order, remote_id, created_at, deleted_at`

// NewSourceRepository creates a new source repository
func NewSourceRepository(db *sqlx.DB) *SourceRepository {
	return &SourceRepository{db: db}
}

// CreateSource inserts a new source at the end of the list and sets its ID
func (r *SourceRepository) CreateSource(ctx context.Context, src *domain.Source) error {
	if src.Mode == "" {
		src.Mode = domain.ModeDirect
	}
	if src.ContentType == "" {
		src.ContentType = domain.ContentText
	}
	if src.MaxArticles <= 0 {
		src.MaxArticles = domain.DefaultMaxArticles
	}

	row := r.toSQL(src)
	query := `
		INSERT INTO sources (url, title, mode, content_type, max_articles, is_active, group_id, remote_id, sort_order)
		VALUES (:url, :title, :mode, :content_type, :max_articles, :is_active, :group_id, :remote_id,
			(SELECT COALESCE(MAX(sort_order), -1) + 1 FROM sources WHERE deleted_at IS NULL))
	`
	var id int64
	err := withLockRetry(ctx, func() error {
		res, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			return fmt.Errorf("create source: %w", err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("get insert id: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	created, err := r.GetSource(ctx, id)
	if err != nil {
		return err
	}
	*src = *created
	return nil
}

// GetSource retrieves a source by ID, including soft-deleted ones
func (r *SourceRepository) GetSource(ctx context.Context, id int64) (*domain.Source, error) {
	var row sourceSQL
	err := r.db.GetContext(ctx, &row, "SELECT "+sourceColumns+" FROM sources WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get source %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get source %d: %w", id, err)
	}
	return r.toDomain(&row), nil
}

// FindSourceByURL returns the live (not deleted) source with the url
func (r *SourceRepository) FindSourceByURL(ctx context.Context, url string) (*domain.Source, error) {
	var row sourceSQL
	err := r.db.GetContext(ctx, &row, "SELECT "+sourceColumns+" FROM sources WHERE url = ? AND deleted_at IS NULL", url)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find source %s: %w", url, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find source %s: %w", url, err)
	}
	return r.toDomain(&row), nil
}

// GetSources returns live sources in display order
func (r *SourceRepository) GetSources(ctx context.Context, activeOnly bool) ([]domain.Source, error) {
	query := "SELECT " + sourceColumns + " FROM sources WHERE deleted_at IS NULL"
	if activeOnly {
		query += " AND is_active = 1"
	}
	query += " ORDER BY sort_order, id"

	var rows []sourceSQL
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}
	res := make([]domain.Source, len(rows))
	for i := range rows {
		res[i] = *r.toDomain(&rows[i])
	}
	return res, nil
}

// UpdateSource stores user-editable fields of the source
func (r *SourceRepository) UpdateSource(ctx context.Context, src *domain.Source) error {
	query := `
		UPDATE sources
		SET title = :title, mode = :mode, content_type = :content_type, max_articles = :max_articles,
			is_active = :is_active, group_id = :group_id, remote_id = :remote_id
		WHERE id = :id AND deleted_at IS NULL
	`
	return withLockRetry(ctx, func() error {
		res, err := r.db.NamedExecContext(ctx, query, r.toSQL(src))
		if err != nil {
			return fmt.Errorf("update source %d: %w", src.ID, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("update source %d: %w", src.ID, domain.ErrNotFound)
		}
		return nil
	})
}

// UpdateSourceFetched records a successful fetch and resets the error counter
func (r *SourceRepository) UpdateSourceFetched(ctx context.Context, id int64, fetchedAt time.Time) error {
	return withLockRetry(ctx, func() error {
		query := `UPDATE sources SET last_fetch_at = ?, error_count = 0, last_error = '' WHERE id = ?`
		if _, err := r.db.ExecContext(ctx, query, fetchedAt.UTC(), id); err != nil {
			return fmt.Errorf("update source fetched: %w", err)
		}
		return nil
	})
}

// UpdateSourceError increments the error counter and keeps the last error message
func (r *SourceRepository) UpdateSourceError(ctx context.Context, id int64, errMsg string) error {
	return withLockRetry(ctx, func() error {
		query := `UPDATE sources SET error_count = error_count + 1, last_error = ? WHERE id = ?`
		if _, err := r.db.ExecContext(ctx, query, errMsg, id); err != nil {
			return fmt.Errorf("update source error: %w", err)
		}
		return nil
	})
}

// DeleteSource soft-deletes the source and removes its articles and bound rules in one transaction
func (r *SourceRepository) DeleteSource(ctx context.Context, id int64) error {
	return withLockRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		res, err := tx.ExecContext(ctx, `UPDATE sources SET deleted_at = ?, is_active = 0 WHERE id = ? AND deleted_at IS NULL`,
			time.Now().UTC(), id)
		if err != nil {
			return fmt.Errorf("soft delete source %d: %w", id, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("delete source %d: %w", id, domain.ErrNotFound)
		}
		if _, err = tx.ExecContext(ctx, `DELETE FROM articles WHERE source_id = ?`, id); err != nil {
			return fmt.Errorf("delete articles of source %d: %w", id, err)
		}
		if _, err = tx.ExecContext(ctx, `DELETE FROM filter_rules WHERE source_id = ?`, id); err != nil {
			return fmt.Errorf("delete rules of source %d: %w", id, err)
		}
		if err = tx.Commit(); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	})
}

// ReorderSources sets sort order following the given ids, in one transaction
func (r *SourceRepository) ReorderSources(ctx context.Context, ids []int64) error {
	return withLockRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		stmt, err := tx.PreparexContext(ctx, `UPDATE sources SET sort_order = ? WHERE id = ? AND deleted_at IS NULL`)
		if err != nil {
			return fmt.Errorf("prepare reorder: %w", err)
		}
		defer stmt.Close()

		for i, id := range ids {
			res, err := stmt.ExecContext(ctx, i, id)
			if err != nil {
				return fmt.Errorf("reorder source %d: %w", id, err)
			}
			if n, _ := res.RowsAffected(); n == 0 {
				return fmt.Errorf("reorder source %d: %w", id, domain.ErrNotFound)
			}
		}
		if err = tx.Commit(); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	})
}

func (r *SourceRepository) toSQL(src *domain.Source) *sourceSQL {
	row := &sourceSQL{
		ID:          src.ID,
		URL:         src.URL,
		Title:       src.Title,
		Mode:        string(src.Mode),
		ContentType: string(src.ContentType),
		MaxArticles: src.MaxArticles,
		IsActive:    src.IsActive,
		RemoteID:    src.RemoteID,
	}
	if src.GroupID != nil {
		row.GroupID = sql.NullInt64{Int64: *src.GroupID, Valid: true}
	}
	return row
}

// toDomain converts sourceSQL to domain.Source
func (r *SourceRepository) toDomain(row *sourceSQL) *domain.Source {
	src := &domain.Source{
		ID:          row.ID,
		URL:         row.URL,
		Title:       row.Title,
		Mode:        domain.SourceMode(row.Mode),
		ContentType: domain.ContentType(row.ContentType),
		MaxArticles: row.MaxArticles,
		IsActive:    row.IsActive,
		ErrorCount:  row.ErrorCount,
		LastError:   row.LastError,
		LastFetchAt: row.LastFetchAt,
		SortOrder:   row.SortOrder,
		RemoteID:    row.RemoteID,
		CreatedAt:   row.CreatedAt,
		DeletedAt:   row.DeletedAt,
	}
	if row.GroupID.Valid {
		gid := row.GroupID.Int64
		src.GroupID = &gid
	}
	return src
}
