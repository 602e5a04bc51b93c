package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/libris/internal/cmd/constants"
	"github.com/agentstation/libris/internal/cmd/globals"
	"github.com/agentstation/libris/internal/cmd/output"
)

// Execute runs the libris CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "libris",
		Short:   "Catalog of books and magazines",
		Version: a.version,
		Long: `Libris keeps a catalog of books and magazines keyed by ISBN.

The catalog lives in a single JSON file (catalog.json by default) that is
rewritten after every change. Use --catalog, the catalog_path key of
.libris.yaml or LIBRIS_CATALOG_PATH to point at another file.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(
		&cobra.Group{ID: constants.GroupCatalog, Title: "Catalog Commands:"},
		&cobra.Group{ID: constants.GroupQuery, Title: "Query Commands:"},
		&cobra.Group{ID: constants.GroupManagement, Title: "Management Commands:"},
	)

	globals.AddFlags(rootCmd)
	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.libris.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	rootCmd.PersistentFlags().String("catalog", "", "catalog file (default is catalog.json)")

	rootCmd.SetVersionTemplate("libris {{.Version}}\n")

	if a.stdout != nil {
		rootCmd.SetOut(a.stdout)
	}
	if a.stderr != nil {
		rootCmd.SetErr(a.stderr)
	}

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}
	if _, err := output.ParseFormat(flags.Output); err != nil {
		return err
	}

	// These flags are defined as persistent flags in createRootCommand, so errors indicate programming errors
	configFile := mustGetString(cmd, "config")
	logLevel := mustGetString(cmd, "log-level")
	catalogPath := mustGetString(cmd, "catalog")

	if configFile != "" {
		config, err := LoadConfigFile(configFile)
		if err != nil {
			return err
		}
		a.config = config
	}

	a.config.UpdateFromFlags(flags.Verbose, flags.Quiet, flags.NoColor, flags.Output, logLevel, catalogPath)

	logger := NewLogger(a.config)
	a.logger = &logger

	a.logger.Debug().
		Str("config", a.config.ConfigFile).
		Str("catalog", a.config.CatalogPath).
		Msg("Configuration loaded")
	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
