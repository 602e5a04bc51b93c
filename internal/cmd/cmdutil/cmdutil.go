// Package cmdutil provides helpers shared by the catalog commands.
package cmdutil

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/libris/cmd/application"
	"github.com/agentstation/libris/internal/cmd/alerts"
	"github.com/agentstation/libris/internal/cmd/globals"
	"github.com/agentstation/libris/internal/cmd/output"
	"github.com/agentstation/libris/pkg/catalog"
	"github.com/agentstation/libris/pkg/errors"
	"github.com/agentstation/libris/pkg/items"
	"github.com/agentstation/libris/pkg/logging"
)

// Archive returns the application's catalog or an error when none is available.
func Archive(app application.Application) (*catalog.Archive, error) {
	archive, err := app.Catalog()
	if err != nil {
		return nil, err
	}
	if archive == nil {
		return nil, errors.NewConfigError("catalog", "no catalog available", nil)
	}
	return archive, nil
}

// Mutation describes a catalog change for reporting.
type Mutation struct {
	// Action is the past-tense verb shown to the user, such as "Added".
	Action string
	// Subject names the item, such as "Book 111".
	Subject string
	// ISBN is the catalog key that was changed.
	ISBN string
}

// ReportMutation reports the outcome of a catalog change.
//
// A nil err prints a success alert unless --quiet is set. An IO failure means
// the change is applied in memory but the catalog file was not rewritten; a
// warning says so and the error is returned so the command exits non-zero.
// Any other error is returned unchanged.
func ReportMutation(cmd *cobra.Command, app application.Application, archive *catalog.Archive, m Mutation, err error) error {
	if err != nil {
		cmd.SilenceUsage = true
	}

	flags, format, settingsErr := settings(cmd, app)
	if settingsErr != nil {
		return errors.Join(err, settingsErr)
	}
	writer := alerts.NewWriter(cmd.ErrOrStderr(), format, flags.NoColor)

	switch {
	case err == nil:
		if flags.Quiet {
			return nil
		}
		return writer.Write(alerts.Successf("%s %s", m.Action, m.Subject))

	case errors.IsIO(err):
		ctx := logging.WithLogger(commandContext(cmd), Logger(cmd, app))
		ctx = logging.WithISBN(logging.WithPath(ctx, archive.Path()), m.ISBN)
		logging.FromContext(ctx).Error().
			Err(err).
			Msg("Catalog change applied in memory only")
		alert := alerts.Warningf("%s %s in memory only, the catalog file was not saved", m.Action, m.Subject).
			WithDetails("catalog file: " + archive.Path())
		if writeErr := writer.Write(alert); writeErr != nil {
			return errors.Join(err, writeErr)
		}
		return err

	default:
		return err
	}
}

// Output returns a writer for the results of cmd in the selected format.
func Output(cmd *cobra.Command, app application.Application) (*output.Writer, error) {
	_, format, err := settings(cmd, app)
	if err != nil {
		return nil, err
	}
	return output.NewWriter(cmd.OutOrStdout(), format), nil
}

// settings returns the global flags of cmd and the output format, taken
// from the application configuration when --output was not given.
func settings(cmd *cobra.Command, app application.Application) (*globals.Flags, output.Format, error) {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return nil, "", err
	}
	if flags.Output == "" {
		flags.Output = app.OutputFormat()
	}
	format, err := output.ParseFormat(flags.Output)
	if err != nil {
		return nil, "", err
	}
	return flags, format, nil
}

// Subject names an item in user messages, such as "Book 111".
func Subject(item items.Item) string {
	return fmt.Sprintf("%s %s", item.Kind(), item.Info().ISBN)
}

// CompleteISBN completes the ISBNs currently in the catalog.
func CompleteISBN(app application.Application) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		archive, err := Archive(app)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		list := archive.List()
		isbns := make([]string, 0, len(list))
		for _, it := range list {
			isbns = append(isbns, it.Info().ISBN+"\t"+it.Info().Title)
		}
		return isbns, cobra.ShellCompDirectiveNoFileComp
	}
}

// Logger returns the application logger tagged with the running command.
func Logger(cmd *cobra.Command, app application.Application) *zerolog.Logger {
	ctx := logging.WithLogger(commandContext(cmd), app.Logger())
	return logging.FromContext(logging.WithOperation(ctx, cmd.CommandPath()))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
