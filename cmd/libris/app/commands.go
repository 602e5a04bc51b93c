package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/libris/cmd/libris/cmd/add"
	"github.com/agentstation/libris/cmd/libris/cmd/export"
	"github.com/agentstation/libris/cmd/libris/cmd/get"
	"github.com/agentstation/libris/cmd/libris/cmd/list"
	"github.com/agentstation/libris/cmd/libris/cmd/remove"
	"github.com/agentstation/libris/cmd/libris/cmd/search"
	"github.com/agentstation/libris/cmd/libris/cmd/stats"
	"github.com/agentstation/libris/cmd/libris/cmd/update"
	"github.com/agentstation/libris/cmd/libris/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Catalog commands
	rootCmd.AddCommand(add.NewCommand(a))
	rootCmd.AddCommand(get.NewCommand(a))
	rootCmd.AddCommand(update.NewCommand(a))
	rootCmd.AddCommand(remove.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))

	// Query commands
	rootCmd.AddCommand(search.NewCommand(a))
	rootCmd.AddCommand(stats.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(export.NewCommand(a))
	rootCmd.AddCommand(version.NewCommand(a))
}
