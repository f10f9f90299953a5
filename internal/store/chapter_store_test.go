package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nicolas-29/nexus-admin/internal/models"
	"github.com/Nicolas-29/nexus-admin/internal/seed"
	"github.com/Nicolas-29/nexus-admin/internal/store"
)

func TestChapterStore_Add(t *testing.T) {
	s := store.New()
	seed.Apply(s)

	t.Run("Manga parent forces page content", func(t *testing.T) {
		ch, err := s.AddChapter(models.Chapter{
			SeriesID: 1042, // Solo Leveling: Ragnarok, Manga
			Number:   15.5,
			Title:    "The Beginning of the End",
			Content:  models.TextContent("should be discarded"),
		})
		require.NoError(t, err)
		assert.Equal(t, models.ContentPages, ch.Content.Kind)
		assert.Empty(t, ch.Content.Text)
	})

	t.Run("Novel parent forces text content", func(t *testing.T) {
		ch, err := s.AddChapter(models.Chapter{
			SeriesID: 1040, // Ending Maker, Novel
			Number:   1,
			Content:  models.PageContent([]string{"p1.jpg"}),
		})
		require.NoError(t, err)
		assert.Equal(t, models.ContentText, ch.Content.Kind)
		assert.Nil(t, ch.Content.Pages)
	})

	t.Run("Missing parent is rejected", func(t *testing.T) {
		_, err := s.AddChapter(models.Chapter{SeriesID: 9999, Number: 1})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("Newest chapter is at the front", func(t *testing.T) {
		ch, err := s.AddChapter(models.Chapter{SeriesID: 1042, Number: 16})
		require.NoError(t, err)
		assert.Equal(t, ch.ID, s.Chapters()[0].ID)
	})
}

func TestChapterStore_Orphans(t *testing.T) {
	s := store.New()
	seed.Apply(s)

	_, err := s.AddChapter(models.Chapter{SeriesID: 1039, Number: 1})
	require.NoError(t, err)
	_, err = s.AddChapter(models.Chapter{SeriesID: 1042, Number: 1})
	require.NoError(t, err)

	assert.Empty(t, s.OrphanChapters())

	// Deleting a series does not cascade; its chapters become orphans.
	require.NoError(t, s.DeleteSeries(1039))

	orphans := s.OrphanChapters()
	require.Len(t, orphans, 1)
	assert.Equal(t, int64(1039), orphans[0].SeriesID)
	assert.Equal(t, 2, s.ChapterCount(), "orphaned chapters stay in the collection")

	assert.Len(t, s.ChaptersForSeries(1042), 1)
}
