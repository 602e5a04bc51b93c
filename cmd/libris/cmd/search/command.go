// Package search provides the search command and its subcommands.
package search

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/libris/cmd/application"
	"github.com/agentstation/libris/internal/cmd/cmdutil"
	"github.com/agentstation/libris/internal/cmd/constants"
	"github.com/agentstation/libris/pkg/catalog"
	"github.com/agentstation/libris/pkg/errors"
	"github.com/agentstation/libris/pkg/items"
)

// NewCommand creates the search command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search",
		Aliases: []string{"find"},
		GroupID: constants.GroupQuery,
		Short:   "Search the catalog by year, title or author",
		Example: `  libris search year 1965
  libris search title "Eighty"
  libris search author "frank herbert"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newYearCommand(app))
	cmd.AddCommand(newTitleCommand(app))
	cmd.AddCommand(newAuthorCommand(app))

	return cmd
}

func newYearCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "year <year>",
		Short: "Items published in the given year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.NewValidationError("year", args[0], "must be a whole number")
			}
			return run(cmd, app, func(a *catalog.Archive) []items.Item {
				return a.SearchByYear(year)
			})
		},
	}
}

func newTitleCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "title <text>",
		Short: "Items whose title contains the text (case-sensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, func(a *catalog.Archive) []items.Item {
				return a.SearchByTitle(args[0])
			})
		},
	}
}

func newAuthorCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "author <name>",
		Short: "Books by the given author (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, func(a *catalog.Archive) []items.Item {
				books := a.SearchByAuthor(args[0])
				list := make([]items.Item, 0, len(books))
				for _, b := range books {
					list = append(list, b)
				}
				return list
			})
		},
	}
}

func run(cmd *cobra.Command, app application.Application, query func(*catalog.Archive) []items.Item) error {
	archive, err := cmdutil.Archive(app)
	if err != nil {
		return err
	}

	results := query(archive)
	cmdutil.Logger(cmd, app).Debug().
		Int("results", len(results)).
		Msg("Catalog searched")

	out, err := cmdutil.Output(cmd, app)
	if err != nil {
		return err
	}
	return out.Items(results)
}
