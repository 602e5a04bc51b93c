// Package get provides the get command.
package get

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/libris/cmd/application"
	"github.com/agentstation/libris/internal/cmd/cmdutil"
	"github.com/agentstation/libris/internal/cmd/constants"
)

// NewCommand creates the get command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:               "get <isbn>",
		Aliases:           []string{"show"},
		GroupID:           constants.GroupCatalog,
		Short:             "Show the item with the given ISBN",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: cmdutil.CompleteISBN(app),
		Example: `  libris get 111
  libris get 111 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, err := cmdutil.Archive(app)
			if err != nil {
				return err
			}

			item, err := archive.SearchByISBN(args[0])
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}

			out, err := cmdutil.Output(cmd, app)
			if err != nil {
				return err
			}
			return out.Item(item)
		},
	}
}
