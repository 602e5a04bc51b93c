// Package cmdtest provides helpers for testing catalog commands.
package cmdtest

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agentstation/libris/internal/cmd/application"
	"github.com/agentstation/libris/internal/cmd/constants"
	"github.com/agentstation/libris/internal/cmd/globals"
	"github.com/agentstation/libris/pkg/catalog"
	"github.com/agentstation/libris/pkg/items"
	"github.com/agentstation/libris/pkg/logging"
)

// CatalogFile is the backing file of archives created by NewArchive.
const CatalogFile = "catalog.json"

// NewArchive returns an archive on an in-memory filesystem that already
// holds list, together with that filesystem.
func NewArchive(t testing.TB, list ...items.Item) (*catalog.Archive, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	archive, err := catalog.New(
		catalog.WithFs(fs),
		catalog.WithPath(CatalogFile),
		catalog.WithLogger(logging.NewNopLogger()),
	)
	if err != nil {
		t.Fatalf("catalog.New() failed: %v", err)
	}

	for _, it := range list {
		if err := archive.AddItem(it); err != nil {
			t.Fatalf("AddItem(%s) failed: %v", it.Info().ISBN, err)
		}
	}

	return archive, fs
}

// NewApp returns a mock application serving archive.
func NewApp(archive *catalog.Archive) *application.Mock {
	return &application.Mock{
		CatalogFunc: func() (*catalog.Archive, error) {
			return archive, nil
		},
		LoggerFunc: func() *zerolog.Logger {
			return logging.NewNopLogger()
		},
	}
}

// Execute runs cmd below a root command that carries the global flags and
// returns what it wrote to stdout and stderr.
func Execute(cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	root := &cobra.Command{
		Use:           "libris",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	globals.AddFlags(root)
	root.AddGroup(
		&cobra.Group{ID: constants.GroupCatalog, Title: "Catalog Commands:"},
		&cobra.Group{ID: constants.GroupQuery, Title: "Query Commands:"},
		&cobra.Group{ID: constants.GroupManagement, Title: "Management Commands:"},
	)
	root.AddCommand(cmd)

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{cmd.Name()}, args...))

	err = root.Execute()
	return out.String(), errOut.String(), err
}
