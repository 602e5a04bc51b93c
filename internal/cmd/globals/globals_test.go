package globals

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/libris/pkg/errors"
	"github.com/agentstation/libris/pkg/items"
)

func TestParseWalksToRoot(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	AddFlags(root)
	child := &cobra.Command{Use: "child", RunE: func(*cobra.Command, []string) error { return nil }}
	root.AddCommand(child)

	root.SetArgs([]string{"child", "-o", "yaml", "-q"})
	require.NoError(t, root.Execute())

	flags, err := Parse(child)
	require.NoError(t, err)
	assert.Equal(t, "yaml", flags.Output)
	assert.True(t, flags.Quiet)
	assert.False(t, flags.Verbose)
}

func TestParseWithoutGlobalFlags(t *testing.T) {
	bare := &cobra.Command{Use: "bare"}

	flags, err := Parse(bare)
	assert.Nil(t, flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading global flags of bare")
	assert.Contains(t, err.Error(), "output")
}

func TestItemFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "magazine"}
	flags := AddMagazineFlags(cmd, true)
	require.NoError(t, cmd.ParseFlags([]string{
		"--isbn", "222", "--title", "Time", "--year", "2020", "--pages", "60", "--periodicity", "semi-annual",
	}))

	m, err := flags.Magazine()
	require.NoError(t, err)
	assert.Equal(t, items.NewMagazine("222", "Time", 2020, 60, items.SemiAnnual), m)

	flags.Periodicity = "daily"
	_, err = flags.Magazine()
	assert.True(t, errors.IsValidationError(err))

	cmd = &cobra.Command{Use: "book"}
	flags = AddBookFlags(cmd, false)
	assert.Nil(t, cmd.Flags().Lookup("isbn"))
	require.NoError(t, cmd.ParseFlags([]string{"--title", "Dune", "--author", "Herbert"}))
	flags.ISBN = "111"
	assert.Equal(t, items.NewBook("111", "Dune", 0, 0, "Herbert", ""), flags.Book())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		kind    string
		want    items.Kind
		wantErr bool
	}{
		{"", "", false},
		{"book", items.KindBook, false},
		{"magazines", items.KindMagazine, false},
		{"pamphlet", "", true},
	}

	for _, tc := range tests {
		got, err := (&ListFlags{Kind: tc.kind}).ParseKind()
		if tc.wantErr {
			assert.Error(t, err, tc.kind)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}
