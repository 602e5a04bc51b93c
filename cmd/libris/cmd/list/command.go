// Package list provides the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/libris/cmd/application"
	"github.com/agentstation/libris/internal/cmd/cmdutil"
	"github.com/agentstation/libris/internal/cmd/constants"
	"github.com/agentstation/libris/internal/cmd/globals"
	"github.com/agentstation/libris/pkg/items"
)

// NewCommand creates the list command.
func NewCommand(app application.Application) *cobra.Command {
	var flags *globals.ListFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		GroupID: constants.GroupCatalog,
		Short:   "List the items in the catalog",
		Args:    cobra.NoArgs,
		Example: `  libris list
  libris list --kind magazine
  libris list --limit 10 -o wide`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := flags.ParseKind()
			if err != nil {
				return err
			}

			archive, err := cmdutil.Archive(app)
			if err != nil {
				return err
			}

			all := archive.List()
			filtered := make([]items.Item, 0, len(all))
			for _, it := range all {
				if kind == "" || it.Kind() == kind {
					filtered = append(filtered, it)
				}
			}

			if flags.Limit > 0 && len(filtered) > flags.Limit {
				filtered = filtered[:flags.Limit]
			}

			out, err := cmdutil.Output(cmd, app)
			if err != nil {
				return err
			}
			return out.Items(filtered)
		},
	}
	flags = globals.AddListFlags(cmd)

	return cmd
}
