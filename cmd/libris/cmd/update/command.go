// Package update provides the update command.
package update

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/libris/cmd/application"
	"github.com/agentstation/libris/internal/cmd/cmdutil"
	"github.com/agentstation/libris/internal/cmd/constants"
	"github.com/agentstation/libris/internal/cmd/globals"
	"github.com/agentstation/libris/pkg/items"
)

// NewCommand creates the update command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "update",
		GroupID: constants.GroupCatalog,
		Short:   "Replace the item stored under an ISBN",
		Long: `Update replaces every field of an existing item. Fields that are not
given are stored empty. The replacement may be of a different kind than the
item it replaces.`,
		Example: `  libris update book 111 --title "Dune" --year 1965 --pages 617 --author Herbert --genre SciFi
  libris update magazine 222 --title Time --year 2021 --pages 64 --periodicity monthly`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newBookCommand(app))
	cmd.AddCommand(newMagazineCommand(app))

	return cmd
}

func newBookCommand(app application.Application) *cobra.Command {
	var flags *globals.ItemFlags

	cmd := &cobra.Command{
		Use:               "book <isbn>",
		Short:             "Replace an item with a book",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: cmdutil.CompleteISBN(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.ISBN = args[0]
			return updateItem(cmd, app, args[0], flags.Book())
		},
	}
	flags = globals.AddBookFlags(cmd, false)

	return cmd
}

func newMagazineCommand(app application.Application) *cobra.Command {
	var flags *globals.ItemFlags

	cmd := &cobra.Command{
		Use:               "magazine <isbn>",
		Short:             "Replace an item with a magazine",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: cmdutil.CompleteISBN(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.ISBN = args[0]
			magazine, err := flags.Magazine()
			if err != nil {
				return err
			}
			return updateItem(cmd, app, args[0], magazine)
		},
	}
	flags = globals.AddMagazineFlags(cmd, false)

	return cmd
}

func updateItem(cmd *cobra.Command, app application.Application, isbn string, item items.Item) error {
	archive, err := cmdutil.Archive(app)
	if err != nil {
		return err
	}

	err = archive.UpdateItemByISBN(isbn, item)
	return cmdutil.ReportMutation(cmd, app, archive, cmdutil.Mutation{
		Action:  "Updated",
		Subject: cmdutil.Subject(item),
		ISBN:    isbn,
	}, err)
}
