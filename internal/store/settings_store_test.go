package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nicolas-29/nexus-admin/internal/models"
	"github.com/Nicolas-29/nexus-admin/internal/store"
)

func TestSettingsStore_Site(t *testing.T) {
	s := store.New()

	site := s.SiteSettings()
	assert.Equal(t, "Nexus Scanlation", site.SiteName)
	assert.True(t, site.RegistrationOpen)
	assert.False(t, site.MaintenanceMode)

	site.SiteName = "Nexus Reborn"
	site.MaintenanceMode = true
	s.UpdateSiteSettings(site)

	got := s.SiteSettings()
	assert.Equal(t, "Nexus Reborn", got.SiteName)
	assert.True(t, got.MaintenanceMode)
}

func TestSettingsStore_Ads(t *testing.T) {
	s := store.New()

	ads := s.AdSettings()
	require.Len(t, ads.Units, 4)
	assert.True(t, ads.AntiAdblock)

	t.Run("Toggle flips Active and Paused", func(t *testing.T) {
		status, err := s.ToggleAdUnit("Header Leaderboard")
		require.NoError(t, err)
		assert.Equal(t, models.AdUnitPaused, status)

		status, err = s.ToggleAdUnit("Header Leaderboard")
		require.NoError(t, err)
		assert.Equal(t, models.AdUnitActive, status)
	})

	t.Run("Unknown unit reports not found", func(t *testing.T) {
		_, err := s.ToggleAdUnit("Sidebar Skyscraper")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("Accessor returns a copy", func(t *testing.T) {
		snapshot := s.AdSettings()
		snapshot.Units[0].Status = models.AdUnitPaused
		fresh := s.AdSettings()
		assert.Equal(t, models.AdUnitActive, fresh.Units[0].Status)
	})

	s.SetAdToggles(false, true)
	assert.False(t, s.AdSettings().AntiAdblock)
	assert.True(t, s.AdSettings().LazyLoading)
}
