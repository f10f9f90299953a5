package console

import (
	"sort"

	"github.com/Nicolas-29/nexus-admin/internal/models"
	"github.com/Nicolas-29/nexus-admin/internal/util"
)

// StatCard is one headline figure on the dashboard or monetization page.
type StatCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Trend string `json:"trend,omitempty"`
}

// DashboardSnapshot is everything the dashboard page renders.
type DashboardSnapshot struct {
	SeriesCount  int `json:"series_count"`
	ChapterCount int `json:"chapter_count"`
	UserCount    int `json:"user_count"`
	CommentCount int `json:"comment_count"`

	Headline     []StatCard      `json:"headline"`
	TopSeries    []models.Series `json:"top_series"`
	LatestSeries []models.Series `json:"latest_series"`
	LatestUsers  []models.User   `json:"latest_users"`
}

const dashboardListLimit = 5

// Dashboard assembles the dashboard page from the live collections. The
// headline values are computed from store state; the trend figures are
// display-only placeholders until real analytics exist.
func (c *Console) Dashboard() DashboardSnapshot {
	series := c.store.Series()
	users := c.store.Users()

	var totalViews int64
	for _, sr := range series {
		totalViews += sr.Views
	}
	var totalReviews int64
	for _, u := range users {
		totalReviews += int64(u.ReviewsCount)
	}

	snap := DashboardSnapshot{
		SeriesCount:  len(series),
		ChapterCount: c.store.ChapterCount(),
		UserCount:    len(users),
		CommentCount: c.store.CommentCount(),
		Headline: []StatCard{
			{Label: "Monthly Views", Value: util.FormatCount(totalViews), Trend: "+12.5%"},
			{Label: "Chapters", Value: util.FormatCount(int64(c.store.ChapterCount())), Trend: "+4.2%"},
			{Label: "Comments", Value: util.FormatCount(int64(c.store.CommentCount())), Trend: "+22.1%"},
			{Label: "Reviews", Value: util.FormatCount(totalReviews), Trend: "+8.9%"},
		},
		LatestSeries: firstSeries(series, dashboardListLimit),
		LatestUsers:  firstUsers(users, dashboardListLimit),
	}

	top := make([]models.Series, len(series))
	copy(top, series)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Rating > top[j].Rating })
	snap.TopSeries = firstSeries(top, dashboardListLimit)

	return snap
}

// MonetizationSnapshot is everything the monetization page renders.
type MonetizationSnapshot struct {
	Cards    []StatCard        `json:"cards"`
	Settings models.AdSettings `json:"settings"`
}

// Monetization assembles the monetization page. The revenue cards are
// static display figures; there is no live ad feed behind them.
func (c *Console) Monetization() MonetizationSnapshot {
	return MonetizationSnapshot{
		Cards: []StatCard{
			{Label: "Est. Earnings (Mo)", Value: "$4,250.80", Trend: "+15.4%"},
			{Label: "Avg. RPM", Value: "$2.45", Trend: "+0.12"},
			{Label: "Ad Impressions", Value: "1.8M", Trend: "+240K"},
			{Label: "Fill Rate", Value: "98.2%"},
		},
		Settings: c.store.AdSettings(),
	}
}

func firstSeries(in []models.Series, n int) []models.Series {
	if len(in) > n {
		in = in[:n]
	}
	out := make([]models.Series, len(in))
	copy(out, in)
	return out
}

func firstUsers(in []models.User, n int) []models.User {
	if len(in) > n {
		in = in[:n]
	}
	out := make([]models.User, len(in))
	copy(out, in)
	return out
}
