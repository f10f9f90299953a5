// This file defines the core data structures (models) for the admin
// console. These structs represent the series, chapters, users and
// comments managed through the dashboard.

package models

import "time"

// Category distinguishes image-based series from text-based ones.
type Category string

const (
	CategoryManga Category = "Manga"
	CategoryNovel Category = "Novel"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c == CategoryManga || c == CategoryNovel
}

// SeriesStatus controls whether a series is visible to readers.
type SeriesStatus string

const (
	SeriesVisible SeriesStatus = "Visible"
	SeriesHidden  SeriesStatus = "Hidden"
)

func (s SeriesStatus) Valid() bool {
	return s == SeriesVisible || s == SeriesHidden
}

// Series represents a single published title in the catalog.
type Series struct {
	ID        int64        `json:"id"`
	Title     string       `json:"title"`
	Cover     string       `json:"cover"`
	Rating    float64      `json:"rating"`
	Category  Category     `json:"category"`
	Views     int64        `json:"views"`
	Status    SeriesStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`

	// Optional metadata shown on the series detail form.
	Description  string `json:"description,omitempty"`
	Year         string `json:"year,omitempty"`
	ChapterLabel string `json:"chapter_label,omitempty"`
	Country      string `json:"country,omitempty"`
	Genres       string `json:"genres,omitempty"`
}

// ContentKind is the discriminant of a chapter's content payload.
type ContentKind string

const (
	ContentPages ContentKind = "pages" // ordered image references (manga)
	ContentText  ContentKind = "text"  // single prose blob (novel)
)

// ChapterContent is a tagged union: Pages is populated when Kind is
// ContentPages, Text when Kind is ContentText. The kind is fixed by the
// parent series' category at authoring time.
type ChapterContent struct {
	Kind  ContentKind `json:"kind"`
	Pages []string    `json:"pages,omitempty"`
	Text  string      `json:"text,omitempty"`
}

// PageContent builds a manga content payload.
func PageContent(pages []string) ChapterContent {
	return ChapterContent{Kind: ContentPages, Pages: pages}
}

// TextContent builds a novel content payload.
func TextContent(text string) ChapterContent {
	return ChapterContent{Kind: ContentText, Text: text}
}

// Chapter represents a single numbered installment of a series.
type Chapter struct {
	ID        int64          `json:"id"`
	SeriesID  int64          `json:"series_id"`
	Number    float64        `json:"number"`
	Title     string         `json:"title"`
	Content   ChapterContent `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
}
