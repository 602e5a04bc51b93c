// Package stats provides the stats command.
package stats

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/libris/cmd/application"
	"github.com/agentstation/libris/internal/cmd/cmdutil"
	"github.com/agentstation/libris/internal/cmd/constants"
)

// NewCommand creates the stats command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		GroupID: constants.GroupQuery,
		Short:   "Show catalog totals, average page count and the longest item",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			archive, err := cmdutil.Archive(app)
			if err != nil {
				return err
			}
			out, err := cmdutil.Output(cmd, app)
			if err != nil {
				return err
			}
			return out.Stats(archive.Stats())
		},
	}
}
