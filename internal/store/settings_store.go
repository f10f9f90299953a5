package store

import "github.com/Nicolas-29/nexus-admin/internal/models"

func defaultSiteSettings() models.SiteSettings {
	return models.SiteSettings{
		SiteName:         "Nexus Scanlation",
		ContactEmail:     "contact@nexus-scan.com",
		TitleTemplate:    "%title% - Nexus Scanlation",
		MetaDescription:  "Read the latest mangas and novels on Nexus Scanlation. High-quality translations and fast updates.",
		MetaKeywords:     "manga, scanlation, novel, reading, anime, solo leveling",
		RegistrationOpen: true,
	}
}

func defaultAdSettings() models.AdSettings {
	return models.AdSettings{
		AntiAdblock: true,
		LazyLoading: true,
		Units: []models.AdUnit{
			{Name: "Header Leaderboard", Size: "728x90", Kind: "Display", Status: models.AdUnitActive, Devices: "All"},
			{Name: "Reader Interstitial", Size: "Full Screen", Kind: "Pop-under", Status: models.AdUnitActive, Devices: "Mobile"},
			{Name: "Mid-Chapter Ribbon", Size: "300x250", Kind: "In-Content", Status: models.AdUnitPaused, Devices: "Desktop"},
			{Name: "Footer Sticky", Size: "320x50", Kind: "Anchor", Status: models.AdUnitActive, Devices: "Mobile"},
		},
	}
}

// SiteSettings returns a copy of the current site settings.
func (s *Store) SiteSettings() models.SiteSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.site
}

// UpdateSiteSettings replaces the site settings wholesale.
func (s *Store) UpdateSiteSettings(cfg models.SiteSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.site = cfg
}

// AdSettings returns a copy of the monetization settings.
func (s *Store) AdSettings() models.AdSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.ads
	out.Units = make([]models.AdUnit, len(s.ads.Units))
	copy(out.Units, s.ads.Units)
	return out
}

// SetAdToggles updates the two monetization switches.
func (s *Store) SetAdToggles(antiAdblock, lazyLoading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ads.AntiAdblock = antiAdblock
	s.ads.LazyLoading = lazyLoading
}

// ToggleAdUnit flips an ad placement between Active and Paused. Returns
// the status after the call.
func (s *Store) ToggleAdUnit(name string) (models.AdUnitStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.ads.Units {
		if s.ads.Units[i].Name != name {
			continue
		}
		if s.ads.Units[i].Status == models.AdUnitActive {
			s.ads.Units[i].Status = models.AdUnitPaused
		} else {
			s.ads.Units[i].Status = models.AdUnitActive
		}
		return s.ads.Units[i].Status, nil
	}
	return "", ErrNotFound
}
