package core_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nicolas-29/nexus-admin/internal/core"
)

func TestAppNew(t *testing.T) {
	// Ensure the defaults are in play.
	os.Remove("config.yml")

	app, err := core.New()
	require.NoError(t, err)
	defer app.Close()

	assert.True(t, app.Config().Seed)

	snap := app.Console().Dashboard()
	assert.Equal(t, 5, snap.SeriesCount, "seed dataset is loaded")
	assert.Equal(t, 4, snap.UserCount)
	assert.Equal(t, "Nexus Scanlation", app.Console().Store().SiteSettings().SiteName)
}
