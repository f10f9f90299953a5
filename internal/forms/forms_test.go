package forms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nicolas-29/nexus-admin/internal/forms"
	"github.com/Nicolas-29/nexus-admin/internal/models"
	"github.com/Nicolas-29/nexus-admin/internal/seed"
)

func TestSeriesForm(t *testing.T) {
	t.Run("Blank draft carries the add-form defaults", func(t *testing.T) {
		f := forms.NewSeriesForm()
		assert.False(t, f.Editing())
		assert.Equal(t, models.CategoryManga, f.Draft.Category)
		assert.Equal(t, models.SeriesVisible, f.Draft.Status)
		assert.Equal(t, "Japan", f.Draft.Country)
		assert.NotEmpty(t, f.Draft.Cover)
	})

	t.Run("Title is required", func(t *testing.T) {
		f := forms.NewSeriesForm()
		_, err := f.Record()
		assert.Error(t, err)

		f.Draft.Title = "Omniscient Reader"
		rec, err := f.Record()
		require.NoError(t, err)
		assert.Equal(t, "Omniscient Reader", rec.Title)
	})

	t.Run("Rating range is enforced", func(t *testing.T) {
		f := forms.NewSeriesForm()
		f.Draft.Title = "x"
		f.Draft.Rating = 10.5
		assert.Error(t, f.Validate())
		f.Draft.Rating = 9.6
		assert.NoError(t, f.Validate())
	})

	t.Run("Edit mode starts from the record", func(t *testing.T) {
		f := forms.EditSeriesForm(models.Series{ID: 1042, Title: "Solo Leveling: Ragnarok", Category: models.CategoryManga, Status: models.SeriesVisible})
		assert.True(t, f.Editing())
		assert.Equal(t, int64(1042), f.Draft.ID)
	})

	t.Run("Picked cover replaces the placeholder", func(t *testing.T) {
		f := forms.NewSeriesForm()
		f.SetCover("blob:session/abc123")
		assert.Equal(t, "blob:session/abc123", f.Draft.Cover)
		f.SetCover("")
		assert.Equal(t, "blob:session/abc123", f.Draft.Cover, "empty pick is ignored")
	})
}

func TestUserForm(t *testing.T) {
	f := forms.NewUserForm()
	assert.Equal(t, models.PlanFree, f.Draft.Plan)
	assert.Equal(t, models.UserApproved, f.Draft.Status)

	_, err := f.Record()
	assert.Error(t, err, "blank draft fails required fields")

	f.Draft.Name = "Luna Moon"
	f.Draft.Username = "lunatic"
	f.Draft.Email = "not-an-email"
	assert.Error(t, f.Validate())

	f.Draft.Email = "luna@celestial.com"
	rec, err := f.Record()
	require.NoError(t, err)
	assert.Equal(t, "lunatic", rec.Username)
}

func TestCommentForm(t *testing.T) {
	t.Run("Blank fallback defaults to Pending", func(t *testing.T) {
		f := forms.NewCommentForm()
		assert.False(t, f.Editing())
		assert.Equal(t, models.CommentPending, f.Draft.Status)
	})

	t.Run("Text and author are required", func(t *testing.T) {
		f := forms.NewCommentForm()
		assert.Error(t, f.Validate())
		f.Draft.Text = "Great chapter"
		assert.Error(t, f.Validate())
		f.Draft.AuthorName = "Brian Cranston"
		assert.NoError(t, f.Validate())
	})
}

func TestChapterForm(t *testing.T) {
	catalog := seed.Series()

	t.Run("Preselection wins over the first entry", func(t *testing.T) {
		f := forms.NewChapterForm(catalog, 1040)
		sr, ok := f.SelectedSeries()
		require.True(t, ok)
		assert.Equal(t, "Ending Maker", sr.Title)
	})

	t.Run("No preselection falls back to the first entry", func(t *testing.T) {
		f := forms.NewChapterForm(catalog, 0)
		sr, ok := f.SelectedSeries()
		require.True(t, ok)
		assert.Equal(t, int64(1042), sr.ID)
	})

	t.Run("Empty catalog leaves nothing selected", func(t *testing.T) {
		f := forms.NewChapterForm(nil, 0)
		_, ok := f.SelectedSeries()
		assert.False(t, ok)
		assert.Error(t, f.Validate())
	})

	t.Run("Manga selection emits page content", func(t *testing.T) {
		f := forms.NewChapterForm(catalog, 1042)
		f.Number = 15.5
		f.Title = "The Beginning of the End"
		f.AddPages("p1.jpg", "p2.jpg", "p3.jpg")
		f.RemovePage(1)

		ch, err := f.Record()
		require.NoError(t, err)
		assert.Equal(t, models.ContentPages, ch.Content.Kind)
		assert.Equal(t, []string{"p1.jpg", "p3.jpg"}, ch.Content.Pages)
		assert.Equal(t, 15.5, ch.Number)
	})

	t.Run("Novel selection emits text content", func(t *testing.T) {
		f := forms.NewChapterForm(catalog, 1040)
		f.Text = "It was a dark and stormy night."
		f.AddPages("ignored.jpg")

		ch, err := f.Record()
		require.NoError(t, err)
		assert.Equal(t, models.ContentText, ch.Content.Kind)
		assert.Equal(t, "It was a dark and stormy night.", ch.Content.Text)
		assert.Empty(t, ch.Content.Pages)
	})

	t.Run("Chapter number must be positive", func(t *testing.T) {
		f := forms.NewChapterForm(catalog, 1042)
		f.Number = 0
		assert.Error(t, f.Validate())
	})

	t.Run("RemovePage ignores out-of-range indexes", func(t *testing.T) {
		f := forms.NewChapterForm(catalog, 1042)
		f.AddPages("p1.jpg")
		f.RemovePage(5)
		f.RemovePage(-1)
		assert.Len(t, f.Pages(), 1)
	})
}
