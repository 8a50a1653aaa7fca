package domain

import "time"

// Article represents a persisted news article
type Article struct {
	ID           int64     `json:"id"`
	SourceID     int64     `json:"source_id"`
	GUID         string    `json:"guid"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	Content      string    `json:"content,omitempty"`
	Summary      string    `json:"summary"`
	ImageURL     string    `json:"image_url,omitempty"`
	ImageCaption string    `json:"image_caption,omitempty"`
	ImageCredit  string    `json:"image_credit,omitempty"`
	PublishedAt  time.Time `json:"published_at"`
	WordCount    int       `json:"word_count"`
	ReadingTime  int       `json:"reading_time"` // minutes
	IsRead       bool      `json:"is_read"`
	IsFavorite   bool      `json:"is_favorite"`
	ReadProgress float64   `json:"read_progress"`
	Tags         []string  `json:"tags,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// StoredArticleRef is a slim projection of a stored article used for new item detection
type StoredArticleRef struct {
	ID          int64
	GUID        string
	URL         string
	Title       string
	PublishedAt time.Time
}

// ArticleFilter represents listing criteria for articles
type ArticleFilter struct {
	SourceID     int64
	GroupID      int64
	UnreadOnly   bool
	FavoriteOnly bool
	Limit        int
	Offset       int
}

// Enrichment holds fields which can be backfilled after an article was persisted
type Enrichment struct {
	Content      string
	ImageURL     string
	ImageCaption string
	ImageCredit  string
	WordCount    int
	ReadingTime  int
}

// SourceStats holds article counters for a single source
type SourceStats struct {
	SourceID int64 `json:"source_id" db:"source_id"`
	Total    int   `json:"total" db:"total"`
	Unread   int   `json:"unread" db:"unread"`
}
