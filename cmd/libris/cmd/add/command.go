// Package add provides the add command.
package add

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/libris/cmd/application"
	"github.com/agentstation/libris/internal/cmd/cmdutil"
	"github.com/agentstation/libris/internal/cmd/constants"
	"github.com/agentstation/libris/internal/cmd/globals"
	"github.com/agentstation/libris/pkg/items"
)

// NewCommand creates the add command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add",
		GroupID: constants.GroupCatalog,
		Short:   "Add a book or magazine to the catalog",
		Long: `Add stores a new item in the catalog and rewrites the catalog file.

An item whose ISBN is already in the catalog is rejected.`,
		Example: `  libris add book --isbn 111 --title Dune --year 1965 --pages 412 --author Herbert --genre SciFi
  libris add magazine --isbn 222 --title Time --year 2020 --pages 60 --periodicity weekly`,
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
		Use:   "book",
		Short: "Add a book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return addItem(cmd, app, flags.Book())
		},
	}
	flags = globals.AddBookFlags(cmd, true)

	return cmd
}

func newMagazineCommand(app application.Application) *cobra.Command {
	var flags *globals.ItemFlags

	cmd := &cobra.Command{
		Use:   "magazine",
		Short: "Add a magazine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			magazine, err := flags.Magazine()
			if err != nil {
				return err
			}
			return addItem(cmd, app, magazine)
		},
	}
	flags = globals.AddMagazineFlags(cmd, true)

	return cmd
}

func addItem(cmd *cobra.Command, app application.Application, item items.Item) error {
	archive, err := cmdutil.Archive(app)
	if err != nil {
		return err
	}

	err = archive.AddItem(item)
	return cmdutil.ReportMutation(cmd, app, archive, cmdutil.Mutation{
		Action:  "Added",
		Subject: cmdutil.Subject(item),
		ISBN:    item.Info().ISBN,
	}, err)
}
