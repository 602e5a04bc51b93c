// Package export provides the export command.
package export

import (
	"bytes"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agentstation/libris/cmd/application"
	"github.com/agentstation/libris/internal/cmd/cmdutil"
	"github.com/agentstation/libris/internal/cmd/constants"
	"github.com/agentstation/libris/internal/cmd/output"
	"github.com/agentstation/libris/pkg/catalog"
	pkgconstants "github.com/agentstation/libris/pkg/constants"
	"github.com/agentstation/libris/pkg/errors"
)

// NewCommand creates the export command writing to the OS filesystem.
func NewCommand(app application.Application) *cobra.Command {
	return NewCommandWithFs(app, afero.NewOsFs())
}

// NewCommandWithFs creates the export command writing files to fs.
func NewCommandWithFs(app application.Application, fs afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:     "export [file]",
		GroupID: constants.GroupManagement,
		Short:   "Export the catalog as YAML",
		Long: `Export writes every item of the catalog as a YAML list of tagged
records, the same records the catalog file stores as JSON. Without a file
argument the YAML is written to stdout.`,
		Args: cobra.MaximumNArgs(1),
		Example: `  libris export
  libris export catalog.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, err := cmdutil.Archive(app)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			records := catalog.Records(archive.List())
			if err := output.NewWriter(&buf, output.YAML).Encode(records); err != nil {
				return errors.WrapResource("export", "catalog", "", err)
			}

			if len(args) == 0 {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			path := args[0]
			if dir := filepath.Dir(path); dir != "." {
				if err := fs.MkdirAll(dir, pkgconstants.DirPermissions); err != nil {
					return errors.WrapIO("create", dir, err)
				}
			}
			if err := afero.WriteFile(fs, path, buf.Bytes(), pkgconstants.FilePermissions); err != nil {
				return errors.WrapIO("write", path, err)
			}

			cmdutil.Logger(cmd, app).Info().
				Str("path", path).
				Int("items", len(records)).
				Msg("Catalog exported")
			return nil
		},
	}
}
