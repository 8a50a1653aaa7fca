package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedsync/pkg/domain"
)

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID           int64          `db:"id"`
	SourceID     int64          `db:"source_id"`
	GUID         string         `db:"guid"`
	Title        string         `db:"title"`
	URL          sql.NullString `db:"url"`
	Content      string         `db:"content"`
	Summary      string         `db:"summary"`
	ImageURL     string         `db:"image_url"`
	ImageCaption string         `db:"image_caption"`
	ImageCredit  string         `db:"image_credit"`
	PublishedAt  *time.Time     `db:"published_at"`
	WordCount    int            `db:"word_count"`
	ReadingTime  int            `db:"reading_time"`
	IsRead       bool           `db:"is_read"`
	IsFavorite   bool           `db:"is_favorite"`
	ReadProgress float64        `db:"read_progress"`
	Tags         string         `db:"tags"`
	CreatedAt    time.Time      `db:"created_at"`
}

var articleColumns = []string{"a.id", "a.source_id", "a.guid", "a.title", "a.url", "a.content", "a.summary",
	"a.image_url", "a.image_caption", "a.image_credit", "a.published_at", "a.word_count", "a.reading_time",
	"a.is_read", "a.is_favorite", "a.read_progress", "a.tags", "a.created_at"}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// InsertArticles stores articles in one transaction. Articles conflicting by guid or by (source, url)
// are ignored and not counted. Returns the number of inserted rows.
func (r *ArticleRepository) InsertArticles(ctx context.Context, articles []domain.Article) (int, error) {
	if len(articles) == 0 {
		return 0, nil
	}

	query := `
		INSERT OR IGNORE INTO articles (source_id, guid, title, url, content, summary, image_url, image_caption,
			image_credit, published_at, word_count, reading_time, tags)
		VALUES (:source_id, :guid, :title, :url, :content, :summary, :image_url, :image_caption,
			:image_credit, :published_at, :word_count, :reading_time, :tags)
	`

	var inserted int
	err := withLockRetry(ctx, func() error {
		inserted = 0
		for i := range articles {
			articles[i].ID = 0
		}
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		for i := range articles {
			res, err := tx.NamedExecContext(ctx, query, r.toSQL(&articles[i]))
			if err != nil {
				return fmt.Errorf("insert article %q: %w", articles[i].GUID, err)
			}
			if n, _ := res.RowsAffected(); n > 0 {
				inserted++
				if id, err := res.LastInsertId(); err == nil {
					articles[i].ID = id
				}
			}
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// GetRecentRefs returns slim refs of the latest stored articles of the source, newest first
func (r *ArticleRepository) GetRecentRefs(ctx context.Context, sourceID int64, limit int) ([]domain.StoredArticleRef, error) {
	type refSQL struct {
		ID          int64          `db:"id"`
		GUID        string         `db:"guid"`
		URL         sql.NullString `db:"url"`
		Title       string         `db:"title"`
		PublishedAt *time.Time     `db:"published_at"`
	}
	var rows []refSQL
	query := `SELECT id, guid, url, title, published_at FROM articles WHERE source_id = ?
		ORDER BY published_at DESC, id DESC LIMIT ?`
	if err := r.db.SelectContext(ctx, &rows, query, sourceID, limit); err != nil {
		return nil, fmt.Errorf("get recent refs for source %d: %w", sourceID, err)
	}

	res := make([]domain.StoredArticleRef, len(rows))
	for i, row := range rows {
		res[i] = domain.StoredArticleRef{ID: row.ID, GUID: row.GUID, URL: row.URL.String, Title: row.Title}
		if row.PublishedAt != nil {
			res[i].PublishedAt = *row.PublishedAt
		}
	}
	return res, nil
}

// ExistingGUIDs returns the subset of guids already stored
func (r *ArticleRepository) ExistingGUIDs(ctx context.Context, guids []string) (map[string]bool, error) {
	res := make(map[string]bool)
	if len(guids) == 0 {
		return res, nil
	}

	query, args, err := sq.Select("guid").From("articles").Where(sq.Eq{"guid": guids}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build guid query: %w", err)
	}
	var found []string
	if err := r.db.SelectContext(ctx, &found, query, args...); err != nil {
		return nil, fmt.Errorf("get existing guids: %w", err)
	}
	for _, g := range found {
		res[g] = true
	}
	return res, nil
}

// GetArticle retrieves an article by ID
func (r *ArticleRepository) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	query, args, err := sq.Select(articleColumns...).From("articles a").Where(sq.Eq{"a.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build article query: %w", err)
	}
	var row articleSQL
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get article %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return r.toDomain(&row), nil
}

// ListArticles returns articles of live sources matching the filter, newest first
func (r *ArticleRepository) ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	qb := sq.Select(articleColumns...).
		From("articles a").
		Join("sources s ON s.id = a.source_id").
		Where("s.deleted_at IS NULL").
		OrderBy("a.published_at DESC", "a.id DESC")

	if filter.SourceID > 0 {
		qb = qb.Where(sq.Eq{"a.source_id": filter.SourceID})
	}
	if filter.GroupID > 0 {
		qb = qb.Where(sq.Eq{"s.group_id": filter.GroupID})
	}
	if filter.UnreadOnly {
		qb = qb.Where(sq.Eq{"a.is_read": false})
	}
	if filter.FavoriteOnly {
		qb = qb.Where(sq.Eq{"a.is_favorite": true})
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	qb = qb.Limit(uint64(limit)) //nolint:gosec // limit is positive
	if filter.Offset > 0 {
		qb = qb.Offset(uint64(filter.Offset)) //nolint:gosec // offset is positive
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}
	var rows []articleSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	res := make([]domain.Article, len(rows))
	for i := range rows {
		res[i] = *r.toDomain(&rows[i])
	}
	return res, nil
}

// MarkRead sets read state. Marking unread resets read progress.
func (r *ArticleRepository) MarkRead(ctx context.Context, id int64, read bool) error {
	query := `UPDATE articles SET is_read = ?, read_progress = CASE WHEN ? THEN read_progress ELSE 0 END WHERE id = ?`
	return r.updateOne(ctx, id, "mark read", query, read, read, id)
}

// SetFavorite sets favorite flag
func (r *ArticleRepository) SetFavorite(ctx context.Context, id int64, favorite bool) error {
	return r.updateOne(ctx, id, "set favorite", `UPDATE articles SET is_favorite = ? WHERE id = ?`, favorite, id)
}

// UpdateReadProgress stores reading progress clamped to [0,1]. Full progress marks the article read.
func (r *ArticleRepository) UpdateReadProgress(ctx context.Context, id int64, progress float64) error {
	progress = max(0, min(1, progress))
	query := `UPDATE articles SET read_progress = ?, is_read = CASE WHEN ? >= 1 THEN 1 ELSE is_read END WHERE id = ?`
	return r.updateOne(ctx, id, "update read progress", query, progress, progress, id)
}

// UpdateEnrichment backfills content and image fields
func (r *ArticleRepository) UpdateEnrichment(ctx context.Context, id int64, e domain.Enrichment) error {
	query := `
		UPDATE articles SET content = ?, image_url = ?, image_caption = ?, image_credit = ?, word_count = ?, reading_time = ?
		WHERE id = ?
	`
	return r.updateOne(ctx, id, "update enrichment", query,
		e.Content, e.ImageURL, e.ImageCaption, e.ImageCredit, e.WordCount, e.ReadingTime, id)
}

// ArticlesWithoutImage returns articles of the source lacking an image, newest first
func (r *ArticleRepository) ArticlesWithoutImage(ctx context.Context, sourceID int64, limit int) ([]domain.Article, error) {
	query, args, err := sq.Select(articleColumns...).From("articles a").
		Where(sq.Eq{"a.source_id": sourceID, "a.image_url": ""}).
		OrderBy("a.published_at DESC", "a.id DESC").
		Limit(uint64(max(limit, 1))). //nolint:gosec // limit is positive
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	var rows []articleSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get articles without image: %w", err)
	}
	res := make([]domain.Article, len(rows))
	for i := range rows {
		res[i] = *r.toDomain(&rows[i])
	}
	return res, nil
}

// ClearArticles deletes non-favorite articles of the source, or of all sources if sourceID is 0
func (r *ArticleRepository) ClearArticles(ctx context.Context, sourceID int64) (int64, error) {
	qb := sq.Delete("articles").Where(sq.Eq{"is_favorite": false})
	if sourceID > 0 {
		qb = qb.Where(sq.Eq{"source_id": sourceID})
	}
	query, args, err := qb.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete query: %w", err)
	}

	var deleted int64
	err = withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("clear articles: %w", err)
		}
		deleted, _ = res.RowsAffected()
		return nil
	})
	return deleted, err
}

// Stats returns total and unread counters per live source
func (r *ArticleRepository) Stats(ctx context.Context) ([]domain.SourceStats, error) {
	query := `
		SELECT s.id AS source_id, COUNT(a.id) AS total, COALESCE(SUM(CASE WHEN a.is_read = 0 THEN 1 ELSE 0 END), 0) AS unread
		FROM sources s
		LEFT JOIN articles a ON a.source_id = s.id
		WHERE s.deleted_at IS NULL
		GROUP BY s.id
		ORDER BY s.sort_order, s.id
	`
	var res []domain.SourceStats
	if err := r.db.SelectContext(ctx, &res, query); err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return res, nil
}

func (r *ArticleRepository) updateOne(ctx context.Context, id int64, op, query string, args ...any) error {
	return withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%s %d: %w", op, id, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("%s %d: %w", op, id, domain.ErrNotFound)
		}
		return nil
	})
}

func (r *ArticleRepository) toSQL(a *domain.Article) *articleSQL {
	row := &articleSQL{
		SourceID:     a.SourceID,
		GUID:         a.GUID,
		Title:        a.Title,
		URL:          sql.NullString{String: a.URL, Valid: a.URL != ""},
		Content:      a.Content,
		Summary:      a.Summary,
		ImageURL:     a.ImageURL,
		ImageCaption: a.ImageCaption,
		ImageCredit:  a.ImageCredit,
		WordCount:    a.WordCount,
		ReadingTime:  a.ReadingTime,
		Tags:         "[]",
	}
	if !a.PublishedAt.IsZero() {
		ts := a.PublishedAt.UTC()
		row.PublishedAt = &ts
	}
	if len(a.Tags) > 0 {
		if b, err := json.Marshal(a.Tags); err == nil {
			row.Tags = string(b)
		}
	}
	return row
}

// toDomain converts articleSQL to domain.Article
func (r *ArticleRepository) toDomain(row *articleSQL) *domain.Article {
	a := &domain.Article{
		ID:           row.ID,
		SourceID:     row.SourceID,
		GUID:         row.GUID,
		Title:        row.Title,
		URL:          row.URL.String,
		Content:      row.Content,
		Summary:      row.Summary,
		ImageURL:     row.ImageURL,
		ImageCaption: row.ImageCaption,
		ImageCredit:  row.ImageCredit,
		WordCount:    row.WordCount,
		ReadingTime:  row.ReadingTime,
		IsRead:       row.IsRead,
		IsFavorite:   row.IsFavorite,
		ReadProgress: row.ReadProgress,
		CreatedAt:    row.CreatedAt,
	}
	if row.PublishedAt != nil {
		a.PublishedAt = *row.PublishedAt
	}
	if row.Tags != "" && row.Tags != "[]" {
		if err := json.Unmarshal([]byte(row.Tags), &a.Tags); err != nil {
			lgr.Printf("[WARN] invalid tags of article %d: %v", row.ID, err)
		}
	}
	return a
}
