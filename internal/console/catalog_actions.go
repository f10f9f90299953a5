package console

import (
	"fmt"
	"strconv"

	"github.com/Nicolas-29/nexus-admin/internal/events"
	"github.com/Nicolas-29/nexus-admin/internal/forms"
	"github.com/Nicolas-29/nexus-admin/internal/models"
	"github.com/Nicolas-29/nexus-admin/internal/nav"
	"github.com/Nicolas-29/nexus-admin/internal/notify"
)

// AddSeries publishes a new catalog entry and returns to the catalog.
func (c *Console) AddSeries(sr models.Series) models.Series {
	stored := c.store.AddSeries(sr)
	c.nav.Go(nav.PageCatalog)
	c.notifier.Push(fmt.Sprintf("%q published!", stored.Title), notify.LevelSuccess)
	c.publish(events.ScopeCatalog)
	c.publish(events.ScopeNav)
	return stored
}

// UpdateSeries replaces a catalog entry's metadata. A vanished record
// surfaces as an error toast instead of a silent no-op.
func (c *Console) UpdateSeries(sr models.Series) error {
	if err := c.store.UpdateSeries(sr); err != nil {
		c.notifier.Push("Series no longer exists", notify.LevelError)
		return err
	}
	c.nav.Go(nav.PageCatalog)
	c.notifier.Push("Series metadata updated", notify.LevelSuccess)
	c.publish(events.ScopeCatalog)
	c.publish(events.ScopeNav)
	return nil
}

// DeleteSeries asks for confirmation, then removes the entry. Chapters
// of the series are intentionally left in place.
func (c *Console) DeleteSeries(id int64) {
	c.confirm.Request(
		"Delete Series?",
		"This will permanently remove this title and all associated chapters from the library.",
		func() {
			if err := c.store.DeleteSeries(id); err != nil {
				c.notifier.Push("Series no longer exists", notify.LevelError)
				return
			}
			c.notifier.Push("Series deleted successfully", notify.LevelSuccess)
			c.publish(events.ScopeCatalog)
		},
	)
	c.publish(events.ScopeConfirm)
}

// EditSeries selects a catalog row and opens the edit form. An id with
// no record still opens the page; the form falls back to a blank draft.
func (c *Console) EditSeries(id int64) {
	if sr, err := c.store.SeriesByID(id); err == nil {
		c.nav.EditSeries(sr)
	} else {
		c.nav.Go(nav.PageEditSeries)
	}
	c.publish(events.ScopeNav)
}

// SeriesForm builds the item form for the current page: the selected
// record when editing, otherwise a blank draft.
func (c *Console) SeriesForm() *forms.SeriesForm {
	if sr, ok := c.nav.EditingSeries(); ok {
		return forms.EditSeriesForm(sr)
	}
	return forms.NewSeriesForm()
}

// AddChapterFor preselects a series and opens the chapter form.
func (c *Console) AddChapterFor(seriesID int64) {
	c.nav.AddChapterFor(seriesID)
	c.publish(events.ScopeNav)
}

// ChapterForm builds the chapter form over the live catalog, honoring
// any row-action preselection.
func (c *Console) ChapterForm() *forms.ChapterForm {
	pre, _ := c.nav.PreselectedSeries()
	return forms.NewChapterForm(c.store.Series(), pre)
}

// SubmitChapter stores a new chapter and returns to the catalog.
func (c *Console) SubmitChapter(ch models.Chapter) error {
	stored, err := c.store.AddChapter(ch)
	if err != nil {
		c.notifier.Push("Select an existing series for the chapter", notify.LevelError)
		return err
	}
	c.nav.Go(nav.PageCatalog)
	number := strconv.FormatFloat(stored.Number, 'f', -1, 64)
	c.notifier.Push(fmt.Sprintf("Chapter %s published successfully!", number), notify.LevelSuccess)
	c.publish(events.ScopeChapters)
	c.publish(events.ScopeNav)
	return nil
}
