package console

import (
	"github.com/Nicolas-29/nexus-admin/internal/events"
	"github.com/Nicolas-29/nexus-admin/internal/models"
	"github.com/Nicolas-29/nexus-admin/internal/notify"
)

// SaveSettings replaces the site settings wholesale.
func (c *Console) SaveSettings(cfg models.SiteSettings) {
	c.store.UpdateSiteSettings(cfg)
	c.notifier.Push("Settings saved", notify.LevelSuccess)
	c.publish(events.ScopeSettings)
}

// SetAdToggles updates the monetization switches.
func (c *Console) SetAdToggles(antiAdblock, lazyLoading bool) {
	c.store.SetAdToggles(antiAdblock, lazyLoading)
	c.publish(events.ScopeSettings)
}

// ToggleAdUnit flips an ad placement between Active and Paused.
func (c *Console) ToggleAdUnit(name string) error {
	if _, err := c.store.ToggleAdUnit(name); err != nil {
		c.notifier.Push("Ad unit not found", notify.LevelError)
		return err
	}
	c.publish(events.ScopeSettings)
	return nil
}
