package stats

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/libris/internal/cmd/cmdtest"
	"github.com/agentstation/libris/internal/cmd/output"
	"github.com/agentstation/libris/pkg/items"
)

func TestStats(t *testing.T) {
	archive, _ := cmdtest.NewArchive(t,
		items.NewBook("111", "Dune", 1965, 412, "Herbert", "SciFi"),
		items.NewMagazine("222", "Time", 2020, 60, items.Weekly),
	)

	stdout, _, err := cmdtest.Execute(NewCommand(cmdtest.NewApp(archive)), "-o", "json")
	require.NoError(t, err)

	var view output.StatsView
	require.NoError(t, json.Unmarshal([]byte(stdout), &view))
	assert.Equal(t, 2, view.Total)
	assert.Equal(t, 1, view.Books)
	assert.Equal(t, 1, view.Magazines)
	assert.InDelta(t, 236.0, view.AveragePages, 1e-9)
	require.NotNil(t, view.HighestPages)
	assert.Equal(t, "111", view.HighestPages.ISBN)
}

func TestStatsEmpty(t *testing.T) {
	archive, _ := cmdtest.NewArchive(t)

	stdout, _, err := cmdtest.Execute(NewCommand(cmdtest.NewApp(archive)))
	require.NoError(t, err)
	assert.Contains(t, stdout, "0.00")
	assert.Contains(t, stdout, "Most Pages")
}
