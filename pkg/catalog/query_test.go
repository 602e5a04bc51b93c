package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/libris/pkg/items"
)

func TestSearchByYear(t *testing.T) {
	archive, _ := newTestArchive(t, dune, timeMag, nineteen)

	assert.Equal(t, []items.Item{timeMag}, archive.SearchByYear(2020))
	assert.Empty(t, archive.SearchByYear(1800))
	assert.NotNil(t, archive.SearchByYear(1800), "no match is an empty result, not nil")
}

func TestSearchByTitle(t *testing.T) {
	archive, _ := newTestArchive(t, dune, timeMag, nineteen)

	tests := []struct {
		name  string
		query string
		want  []items.Item
	}{
		{"substring", "un", []items.Item{dune}},
		{"case-sensitive", "dune", []items.Item{}},
		{"multiple", "i", []items.Item{timeMag, nineteen}},
		{"empty matches all", "", []items.Item{dune, timeMag, nineteen}},
		{"literal, not a pattern", "D.ne", []items.Item{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, archive.SearchByTitle(tc.query))
		})
	}
}

func TestSearchByAuthor(t *testing.T) {
	archive, _ := newTestArchive(t, dune, timeMag, nineteen)

	got := archive.SearchByAuthor("Orwell")
	require.Len(t, got, 1)
	assert.Equal(t, nineteen, got[0])

	assert.Equal(t, []items.Book{dune}, archive.SearchByAuthor("HERBERT"))
	assert.Empty(t, archive.SearchByAuthor("Herb"), "author match is exact")
}

func TestSearchByAuthorSkipsMagazines(t *testing.T) {
	// A magazine whose title equals the author name must not match.
	archive, _ := newTestArchive(t, items.NewMagazine("444", "Orwell", 2000, 10, items.Monthly))
	assert.Empty(t, archive.SearchByAuthor("Orwell"))
}

func TestTotals(t *testing.T) {
	archive, _ := newTestArchive(t)
	assert.Zero(t, archive.TotalBooks())
	assert.Zero(t, archive.TotalMagazines())

	archive, _ = newTestArchive(t, dune, timeMag, nineteen)
	assert.Equal(t, 2, archive.TotalBooks())
	assert.Equal(t, 1, archive.TotalMagazines())
}

func TestItemWithHighestPages(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		archive, _ := newTestArchive(t)
		got, ok := archive.ItemWithHighestPages()
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("maximum", func(t *testing.T) {
		a := items.NewBook("A", "A", 2000, 50, "x", "y")
		b := items.NewMagazine("B", "B", 2000, 200, items.Weekly)
		archive, _ := newTestArchive(t, a, b)

		got, ok := archive.ItemWithHighestPages()
		require.True(t, ok)
		assert.Equal(t, b, got)
	})

	t.Run("tie", func(t *testing.T) {
		a := items.NewBook("A", "A", 2000, 100, "x", "y")
		b := items.NewBook("B", "B", 2000, 100, "x", "y")
		archive, _ := newTestArchive(t, b, a)

		got, ok := archive.ItemWithHighestPages()
		require.True(t, ok)
		assert.Equal(t, 100, got.Info().NumberOfPages)
	})
}

func TestAveragePages(t *testing.T) {
	archive, _ := newTestArchive(t)
	assert.Zero(t, archive.AveragePages())

	archive, _ = newTestArchive(t,
		items.NewBook("1", "One", 2000, 100, "a", "g"),
		items.NewMagazine("2", "Two", 2000, 300, items.SemiAnnual),
	)
	assert.InDelta(t, 200.0, archive.AveragePages(), 1e-9)
}

func TestStats(t *testing.T) {
	archive, _ := newTestArchive(t)
	stats := archive.Stats()
	assert.Zero(t, stats.Total)
	assert.Nil(t, stats.HighestPages)

	archive, _ = newTestArchive(t, dune, timeMag, nineteen)
	stats = archive.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Books)
	assert.Equal(t, 1, stats.Magazines)
	assert.InDelta(t, 800.0/3, stats.AveragePages, 1e-9)
	assert.Equal(t, dune, stats.HighestPages)
}

func TestListSortedByISBN(t *testing.T) {
	archive, _ := newTestArchive(t, nineteen, timeMag, dune)
	assert.Equal(t, []items.Item{dune, timeMag, nineteen}, archive.List())
}
