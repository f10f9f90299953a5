package console

import (
	"context"

	"github.com/Nicolas-29/nexus-admin/internal/events"
	"github.com/Nicolas-29/nexus-admin/internal/insight"
	"github.com/Nicolas-29/nexus-admin/internal/notify"
)

// InsightStats summarizes the live collections for the insight prompt.
// The top performer is the first catalog entry.
func (c *Console) InsightStats() insight.Stats {
	stats := insight.Stats{
		SeriesCount:  c.store.SeriesCount(),
		UserCount:    c.store.UserCount(),
		CommentCount: c.store.CommentCount(),
	}
	if series := c.store.Series(); len(series) > 0 {
		stats.TopTitle = series[0].Title
		stats.TopViews = series[0].Views
	}
	return stats
}

// InsightBusy reports whether an insight request is outstanding, so the
// trigger control can render its busy state.
func (c *Console) InsightBusy() bool {
	return c.insight.Busy()
}

// RequestInsight triggers the AI summary. The result lands in the
// confirmation dialog (informational, accepting just closes it); failure
// degrades to an error toast. A request already in flight is reported
// back as insight.ErrBusy and no second call is issued.
func (c *Console) RequestInsight(ctx context.Context) error {
	err := c.insight.Generate(ctx, c.InsightStats(), func(text string, reqErr error) {
		if reqErr != nil {
			c.notifier.Push("Could not reach Nexus AI services.", notify.LevelError)
			c.publish(events.ScopeInsight)
			return
		}
		c.confirm.Request("Nexus AI Insight", text, func() {})
		c.publish(events.ScopeConfirm)
		c.publish(events.ScopeInsight)
	})
	if err != nil {
		return err
	}
	c.notifier.Push("Analyzing site activity for insights...", notify.LevelInfo)
	c.publish(events.ScopeInsight)
	return nil
}
