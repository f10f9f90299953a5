package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nicolas-29/nexus-admin/internal/models"
	"github.com/Nicolas-29/nexus-admin/internal/seed"
	"github.com/Nicolas-29/nexus-admin/internal/store"
)

func TestApply(t *testing.T) {
	s := store.New()
	seed.Apply(s)

	assert.Equal(t, 5, s.SeriesCount())
	assert.Equal(t, 4, s.UserCount())
	assert.Equal(t, 4, s.CommentCount())
	assert.Equal(t, 0, s.ChapterCount(), "chapters seed empty")

	t.Run("Display order is preserved", func(t *testing.T) {
		series := s.Series()
		require.Len(t, series, 5)
		assert.Equal(t, int64(1042), series[0].ID)
		assert.Equal(t, int64(1038), series[4].ID)

		users := s.Users()
		assert.Equal(t, "John Doe", users[0].Name)
	})

	t.Run("Ids assigned after seeding never collide", func(t *testing.T) {
		sr := s.AddSeries(models.Series{Title: "fresh", Category: models.CategoryManga, Status: models.SeriesVisible})
		assert.Greater(t, sr.ID, int64(1042))
	})

	t.Run("Seed state covers every toggle branch", func(t *testing.T) {
		var haveFlagged, havePending bool
		for _, cm := range s.Comments() {
			switch cm.Status {
			case models.CommentFlagged:
				haveFlagged = true
			case models.CommentPending:
				havePending = true
			}
		}
		assert.True(t, haveFlagged)
		assert.True(t, havePending)

		var haveBanned bool
		for _, u := range s.Users() {
			if u.Status == models.UserBanned {
				haveBanned = true
			}
		}
		assert.True(t, haveBanned)
	})
}
