package forms

import (
	"fmt"
	"time"

	"github.com/Nicolas-29/nexus-admin/internal/models"
)

// ChapterForm collects a new chapter. It carries the current catalog so
// the series picker can resolve the selected entry, and it accumulates
// either uploaded page references or novel text; which half is used
// follows the selected series' category.
type ChapterForm struct {
	SeriesID int64
	Number   float64
	Title    string
	Text     string

	series []models.Series
	pages  []string
}

// NewChapterForm builds a form over the given catalog. A nonzero
// preselected id (set by a catalog row's "add chapter" action) selects
// that series; otherwise the first catalog entry is selected.
func NewChapterForm(series []models.Series, preselected int64) *ChapterForm {
	f := &ChapterForm{series: series, Number: 1}
	if preselected != 0 {
		f.SeriesID = preselected
	} else if len(series) > 0 {
		f.SeriesID = series[0].ID
	}
	return f
}

// SelectedSeries resolves the currently selected catalog entry.
func (f *ChapterForm) SelectedSeries() (models.Series, bool) {
	for _, sr := range f.series {
		if sr.ID == f.SeriesID {
			return sr, true
		}
	}
	return models.Series{}, false
}

// AddPages appends uploaded page references in order.
func (f *ChapterForm) AddPages(refs ...string) {
	f.pages = append(f.pages, refs...)
}

// RemovePage drops the page at index i; out-of-range indexes are ignored.
func (f *ChapterForm) RemovePage(i int) {
	if i < 0 || i >= len(f.pages) {
		return
	}
	f.pages = append(f.pages[:i], f.pages[i+1:]...)
}

// Pages returns the accumulated page references.
func (f *ChapterForm) Pages() []string {
	out := make([]string, len(f.pages))
	copy(out, f.pages)
	return out
}

// Validate checks that a series is selected and the number is usable.
func (f *ChapterForm) Validate() error {
	if _, ok := f.SelectedSeries(); !ok {
		return fmt.Errorf("select a series first")
	}
	if f.Number <= 0 {
		return fmt.Errorf("chapter number must be positive")
	}
	return nil
}

// Record validates and builds the chapter. The content union is keyed by
// the selected series' category.
func (f *ChapterForm) Record() (models.Chapter, error) {
	if err := f.Validate(); err != nil {
		return models.Chapter{}, err
	}
	sr, _ := f.SelectedSeries()

	ch := models.Chapter{
		SeriesID:  sr.ID,
		Number:    f.Number,
		Title:     f.Title,
		CreatedAt: time.Now(),
	}
	if sr.Category == models.CategoryManga {
		ch.Content = models.PageContent(f.Pages())
	} else {
		ch.Content = models.TextContent(f.Text)
	}
	return ch, nil
}
