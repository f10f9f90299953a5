package models

// SiteSettings holds the toggles and text fields from the settings page.
type SiteSettings struct {
	SiteName         string `json:"site_name"`
	ContactEmail     string `json:"contact_email"`
	TitleTemplate    string `json:"title_template"`
	MetaDescription  string `json:"meta_description"`
	MetaKeywords     string `json:"meta_keywords"`
	MaintenanceMode  bool   `json:"maintenance_mode"`
	RegistrationOpen bool   `json:"registration_open"`
}

// AdUnitStatus is the serving state of an ad placement.
type AdUnitStatus string

const (
	AdUnitActive AdUnitStatus = "Active"
	AdUnitPaused AdUnitStatus = "Paused"
)

// AdUnit is a single ad placement on the monetization page.
type AdUnit struct {
	Name    string       `json:"name"`
	Size    string       `json:"size"`
	Kind    string       `json:"kind"`
	Status  AdUnitStatus `json:"status"`
	Devices string       `json:"devices"`
}

// AdSettings holds the monetization toggles and the ad unit inventory.
type AdSettings struct {
	AntiAdblock bool     `json:"anti_adblock"`
	LazyLoading bool     `json:"lazy_loading"`
	Units       []AdUnit `json:"units"`
}
