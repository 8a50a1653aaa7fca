package domain

import "time"

// SourceMode selects the fetch strategy for a source
type SourceMode string

// source modes
const (
	ModeDirect SourceMode = "direct"
	ModeProxy  SourceMode = "proxy"
)

// ContentType defines what a source is expected to deliver
type ContentType string

// content types
const (
	ContentText      ContentType = "text"
	ContentImageText ContentType = "image_text"
)

// Valid reports whether c is a known content type
func (c ContentType) Valid() bool {
	return c == ContentText || c == ContentImageText
}

// DefaultMaxArticles caps imports for a source without an explicit limit
const DefaultMaxArticles = 50

// Source represents a subscribed feed endpoint plus its fetch configuration
type Source struct {
	ID          int64       `json:"id"`
	URL         string      `json:"url"`
	Title       string      `json:"title"`
	Mode        SourceMode  `json:"mode"`
	ContentType ContentType `json:"content_type"`
	MaxArticles int         `json:"max_articles"`
	IsActive    bool        `json:"is_active"`
	ErrorCount  int         `json:"error_count"`
	LastError   string      `json:"last_error,omitempty"`
	LastFetchAt *time.Time  `json:"last_fetch_at,omitempty"`
	GroupID     *int64      `json:"group_id,omitempty"`
	SortOrder   int         `json:"sort_order"`
	RemoteID    string      `json:"remote_id,omitempty"` // subscription id on the proxy server
	CreatedAt   time.Time   `json:"created_at"`
	DeletedAt   *time.Time  `json:"deleted_at,omitempty"`
}

// Name returns a human-readable identifier for the source
func (s Source) Name() string {
	if s.Title != "" {
		return s.Title
	}
	return s.URL
}

// ArticleCap returns effective max number of articles to import per refresh
func (s Source) ArticleCap() int {
	if s.MaxArticles <= 0 {
		return DefaultMaxArticles
	}
	return s.MaxArticles
}
