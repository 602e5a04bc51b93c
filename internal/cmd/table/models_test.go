package table

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/libris/pkg/catalog"
	"github.com/agentstation/libris/pkg/items"
)

func TestItemsToTableData(t *testing.T) {
	list := []items.Item{
		items.NewBook("111", "Dune", 1965, 412, "Herbert", ""),
		items.NewMagazine("222", "Time", 2020, 60, items.Weekly),
	}

	t.Run("narrow", func(t *testing.T) {
		data := ItemsToTableData(list, false)
		assert.Equal(t, []string{"ISBN", "Type", "Title", "Year", "Pages"}, data.Headers)
		assert.Equal(t, []string{"111", "Book", "Dune", "1965", "412"}, data.Rows[0])
		assert.Len(t, data.Align, len(data.Headers))
	})

	t.Run("wide", func(t *testing.T) {
		data := ItemsToTableData(list, true)
		assert.Len(t, data.Headers, 8)
		assert.Equal(t, []string{"111", "Book", "Dune", "1965", "412", "Herbert", "-", "-"}, data.Rows[0])
		assert.Equal(t, []string{"222", "Magazine", "Time", "2020", "60", "-", "-", "WEEKLY"}, data.Rows[1])
		assert.Len(t, data.Align, len(data.Headers))
	})

	t.Run("empty", func(t *testing.T) {
		data := ItemsToTableData(nil, false)
		assert.Empty(t, data.Rows)
	})
}

func TestItemDetails(t *testing.T) {
	data := ItemDetails(items.NewMagazine("222", "Time", 2020, 60, items.Monthly))
	assert.Equal(t, []string{"Periodicity", "MONTHLY"}, data.Rows[len(data.Rows)-1])

	data = ItemDetails(items.NewBook("111", "Dune", 1965, 412, "Herbert", "SciFi"))
	assert.Contains(t, data.Rows, []string{"Author", "Herbert"})
	assert.Contains(t, data.Rows, []string{"Genre", "SciFi"})
}

func TestStatsToTableData(t *testing.T) {
	data := StatsToTableData(catalog.Stats{})
	assert.Equal(t, []string{"Most Pages", "-"}, data.Rows[4])
	assert.Equal(t, []string{"Average Pages", "0.00"}, data.Rows[3])

	data = StatsToTableData(catalog.Stats{
		Total:        2,
		Books:        1,
		Magazines:    1,
		AveragePages: 236,
		HighestPages: items.NewBook("111", "Dune", 1965, 412, "Herbert", "SciFi"),
	})
	assert.Equal(t, []string{"Most Pages", "Dune (111, 412 pages)"}, data.Rows[4])
	assert.Equal(t, []string{"Average Pages", "236.00"}, data.Rows[3])
}
