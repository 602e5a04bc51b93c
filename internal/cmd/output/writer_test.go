package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/libris/pkg/catalog"
	"github.com/agentstation/libris/pkg/errors"
	"github.com/agentstation/libris/pkg/items"
)

var sample = []items.Item{
	items.NewBook("111", "Dune", 1965, 412, "Herbert", "SciFi"),
	items.NewMagazine("222", "Time", 2020, 60, items.Weekly),
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"table", Table, false},
		{"JSON", JSON, false},
		{"yaml", YAML, false},
		{"wide", Wide, false},
		{"", Table, false},
		{"xml", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseFormat(tc.input)
			if tc.wantErr {
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestItems(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(&buf, Table).Items(sample))
		assert.Contains(t, buf.String(), "Dune")
		assert.Contains(t, buf.String(), "Magazine")
		assert.NotContains(t, buf.String(), "Herbert")
	})

	t.Run("wide", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(&buf, Wide).Items(sample))
		assert.Contains(t, buf.String(), "Herbert")
		assert.Contains(t, buf.String(), "WEEKLY")
	})

	t.Run("json uses tagged records", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(&buf, JSON).Items(sample))
		assert.JSONEq(t, `[
			{"type":"Book","isbn":"111","title":"Dune","yearOfPublication":1965,"numberOfPages":412,"author":"Herbert","genre":"SciFi"},
			{"type":"Magazine","isbn":"222","title":"Time","yearOfPublication":2020,"numberOfPages":60,"periodicity":"WEEKLY"}
		]`, buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(&buf, YAML).Items(sample))
		assert.Contains(t, buf.String(), "type: Book")
		assert.Contains(t, buf.String(), "title: Time")
	})
}

func TestItem(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, Table).Item(sample[1]))
	assert.Contains(t, buf.String(), "Periodicity")
	assert.Contains(t, buf.String(), "WEEKLY")

	buf.Reset()
	require.NoError(t, NewWriter(&buf, JSON).Item(sample[0]))
	assert.JSONEq(t, `{"type":"Book","isbn":"111","title":"Dune","yearOfPublication":1965,"numberOfPages":412,"author":"Herbert","genre":"SciFi"}`, buf.String())
}

func TestStats(t *testing.T) {
	stats := catalog.Stats{Total: 2, Books: 1, Magazines: 1, AveragePages: 236, HighestPages: sample[0]}

	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, JSON).Stats(stats))
	assert.JSONEq(t, `{
		"total": 2, "books": 1, "magazines": 1, "averagePages": 236,
		"highestPages": {"type":"Book","isbn":"111","title":"Dune","yearOfPublication":1965,"numberOfPages":412,"author":"Herbert","genre":"SciFi"}
	}`, buf.String())

	buf.Reset()
	require.NoError(t, NewWriter(&buf, JSON).Stats(catalog.Stats{}))
	assert.NotContains(t, buf.String(), "highestPages")

	buf.Reset()
	require.NoError(t, NewWriter(&buf, Table).Stats(stats))
	assert.Contains(t, buf.String(), "236.00")
}

func TestEncodeRequiresStructuredFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewWriter(&buf, Table).Encode(map[string]int{"total": 2})
	require.Error(t, err)
	assert.Empty(t, buf.String())
}
