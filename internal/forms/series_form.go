// Data-entry drafts for the console's forms. A form holds one draft
// record, validates its required fields, and hands the finished record
// to the console on submit. Stores accept any well-typed record;
// validation lives here and only here.

package forms

import (
	"fmt"
	"time"

	"github.com/Nicolas-29/nexus-admin/internal/models"
)

// defaultCover is the placeholder used until a real cover is picked.
const defaultCover = "https://picsum.photos/seed/default/200/300"

// SeriesForm collects a catalog entry draft.
type SeriesForm struct {
	Draft models.Series

	editing bool
}

// NewSeriesForm starts a blank draft with the add-form defaults.
func NewSeriesForm() *SeriesForm {
	return &SeriesForm{
		Draft: models.Series{
			Cover:     defaultCover,
			Category:  models.CategoryManga,
			Status:    models.SeriesVisible,
			Country:   "Japan",
			CreatedAt: time.Now(),
		},
	}
}

// EditSeriesForm starts from an existing record.
func EditSeriesForm(sr models.Series) *SeriesForm {
	return &SeriesForm{Draft: sr, editing: true}
}

// Editing reports whether the form updates an existing record.
func (f *SeriesForm) Editing() bool { return f.editing }

// SetCover points the draft at a picked cover image. The reference is an
// ephemeral session handle, not a durable URL.
func (f *SeriesForm) SetCover(ref string) {
	if ref != "" {
		f.Draft.Cover = ref
	}
}

// Validate enforces the required fields and value ranges.
func (f *SeriesForm) Validate() error {
	if f.Draft.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !f.Draft.Category.Valid() {
		return fmt.Errorf("unknown category %q", f.Draft.Category)
	}
	if !f.Draft.Status.Valid() {
		return fmt.Errorf("unknown status %q", f.Draft.Status)
	}
	if f.Draft.Rating < 0 || f.Draft.Rating > 10 {
		return fmt.Errorf("rating %.1f out of range 0-10", f.Draft.Rating)
	}
	if f.Draft.Views < 0 {
		return fmt.Errorf("views must not be negative")
	}
	return nil
}

// Record validates and returns the finished draft.
func (f *SeriesForm) Record() (models.Series, error) {
	if err := f.Validate(); err != nil {
		return models.Series{}, err
	}
	return f.Draft, nil
}
