package items_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/libris/pkg/errors"
	"github.com/agentstation/libris/pkg/items"
)

func TestVariants(t *testing.T) {
	book := items.NewBook("111", "Dune", 1965, 412, "Herbert", "SciFi")
	magazine := items.NewMagazine("222", "Time", 2020, 60, items.Weekly)

	all := []items.Item{book, magazine}
	kinds := make([]items.Kind, 0, len(all))
	for _, it := range all {
		kinds = append(kinds, it.Kind())
	}
	assert.Equal(t, []items.Kind{items.KindBook, items.KindMagazine}, kinds)

	assert.Equal(t, items.Base{ISBN: "111", Title: "Dune", YearOfPublication: 1965, NumberOfPages: 412}, book.Info())
	assert.Equal(t, "Herbert", book.Author)
	assert.Equal(t, "SciFi", book.Genre)
	assert.Equal(t, items.Weekly, magazine.Periodicity)
	assert.Equal(t, 60, magazine.Info().NumberOfPages)
}

func TestConstructorsAcceptAnyValues(t *testing.T) {
	book := items.NewBook("", "", -1, -20, "", "")
	assert.Equal(t, -20, book.NumberOfPages)

	magazine := items.NewMagazine("x", "y", 0, 0, items.Periodicity("DAILY"))
	assert.Equal(t, items.Periodicity("DAILY"), magazine.Periodicity)
}

func TestTypeSwitch(t *testing.T) {
	var it items.Item = items.NewMagazine("222", "Time", 2020, 60, items.Monthly)

	switch v := it.(type) {
	case items.Book:
		t.Fatalf("magazine matched book case: %+v", v)
	case items.Magazine:
		assert.Equal(t, items.Monthly, v.Periodicity)
	default:
		t.Fatalf("unexpected variant %T", v)
	}
}

func TestParsePeriodicity(t *testing.T) {
	tests := []struct {
		input string
		want  items.Periodicity
	}{
		{"WEEKLY", items.Weekly},
		{"weekly", items.Weekly},
		{" Monthly ", items.Monthly},
		{"semi-annual", items.SemiAnnual},
		{"semi annual", items.SemiAnnual},
		{"SEMI_ANNUAL", items.SemiAnnual},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := items.ParsePeriodicity(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := items.ParsePeriodicity("daily")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestPeriodicityText(t *testing.T) {
	text, err := items.SemiAnnual.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "SEMI_ANNUAL", string(text))

	var p items.Periodicity
	require.NoError(t, p.UnmarshalText([]byte("MONTHLY")))
	assert.Equal(t, items.Monthly, p)

	err = p.UnmarshalText([]byte("monthly"))
	require.Error(t, err, "stored values are matched exactly")
	assert.Equal(t, items.Monthly, p, "failed unmarshal leaves the value untouched")

	assert.ElementsMatch(t, []items.Periodicity{items.Weekly, items.Monthly, items.SemiAnnual}, items.Periodicities())
}
