// Package remove provides the remove command.
package remove

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/libris/cmd/application"
	"github.com/agentstation/libris/internal/cmd/cmdutil"
	"github.com/agentstation/libris/internal/cmd/constants"
)

// NewCommand creates the remove command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:               "remove <isbn>",
		Aliases:           []string{"rm", "delete"},
		GroupID:           constants.GroupCatalog,
		Short:             "Remove the item with the given ISBN",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: cmdutil.CompleteISBN(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, err := cmdutil.Archive(app)
			if err != nil {
				return err
			}

			isbn := args[0]
			subject := "item " + isbn
			if item, err := archive.SearchByISBN(isbn); err == nil {
				subject = cmdutil.Subject(item)
			}

			err = archive.RemoveItemByISBN(isbn)
			return cmdutil.ReportMutation(cmd, app, archive, cmdutil.Mutation{
				Action:  "Removed",
				Subject: subject,
				ISBN:    isbn,
			}, err)
		},
	}
}
