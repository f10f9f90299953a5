package core

import (
	"fmt"
	"log"

	"github.com/Nicolas-29/nexus-admin/internal/config"
	"github.com/Nicolas-29/nexus-admin/internal/console"
	"github.com/Nicolas-29/nexus-admin/internal/insight"
	"github.com/Nicolas-29/nexus-admin/internal/seed"
)

// App holds the core components of the application shared by the
// entrypoint and the tests.
type App struct {
	cfg *config.Config
	con *console.Console
}

// New sets up and returns a new App instance. It loads the
// configuration, wires the console, and loads the seed dataset when
// enabled.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	con := console.New(console.Options{
		NotificationTTL: cfg.NotificationTTL(),
		Insight: insight.Config{
			BaseURL: cfg.Insight.BaseURL,
			APIKey:  cfg.Insight.APIKey,
			Model:   cfg.Insight.Model,
			Timeout: cfg.InsightTimeout(),
		},
	})
	if cfg.Seed {
		seed.Apply(con.Store())
	}
	if cfg.Site.Name != "" {
		site := con.Store().SiteSettings()
		site.SiteName = cfg.Site.Name
		con.Store().UpdateSiteSettings(site)
	}

	log.Println("Core application setup complete.")
	return &App{cfg: cfg, con: con}, nil
}

// Config returns the loaded configuration.
func (a *App) Config() *config.Config { return a.cfg }

// Console returns the admin console container.
func (a *App) Console() *console.Console { return a.con }

// Close gracefully releases the console's timers and event hub.
func (a *App) Close() {
	if a.con != nil {
		a.con.Close()
	}
}
