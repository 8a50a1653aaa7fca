package domain

import "time"

// ParsedFeed represents a feed converted from raw RSS/Atom bytes
type ParsedFeed struct {
	Title       string
	Description string
	Link        string
	Items       []ParsedItem
}

// ParsedItem represents a single item of a parsed feed, in document order
type ParsedItem struct {
	GUID        string
	Title       string
	Link        string
	Description string
	Content     string
	Author      string
	Published   time.Time
	Categories  []string
	Enclosures  []Enclosure
	Media       Media
}

// Body returns the richest text available for the item
func (p ParsedItem) Body() string {
	if p.Content != "" {
		return p.Content
	}
	return p.Description
}

// Enclosure is an RSS enclosure or Atom enclosure link
type Enclosure struct {
	URL    string
	Type   string
	Length int64
}

// Media holds Media RSS metadata of an item
type Media struct {
	Contents    []MediaContent
	Thumbnails  []MediaThumbnail
	Title       string
	Description string
	Credit      string
}

// MediaContent is a media:content element
type MediaContent struct {
	URL         string
	Medium      string
	Type        string
	Width       int
	Height      int
	Title       string
	Description string
	Credit      string
}

// MediaThumbnail is a media:thumbnail element
type MediaThumbnail struct {
	URL    string
	Width  int
	Height int
}

// ImageSource tells where the selected image came from
type ImageSource string

// image sources in preference order
const (
	ImageFromMediaContent   ImageSource = "media_content"
	ImageFromMediaThumbnail ImageSource = "media_thumbnail"
	ImageFromEnclosure      ImageSource = "enclosure"
	ImageFromFigure         ImageSource = "figure"
	ImageFromImg            ImageSource = "img"
)

// ImageResult is the representative image selected for an item
type ImageResult struct {
	URL     string
	Caption string
	Credit  string
	Source  ImageSource
}
