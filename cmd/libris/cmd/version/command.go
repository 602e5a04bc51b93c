// Package version provides the version command.
package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/libris/cmd/application"
	"github.com/agentstation/libris/internal/cmd/constants"
)

// NewCommand creates the version command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		GroupID: constants.GroupManagement,
		Short:   "Show version information",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "libris version %s\n", app.Version())
			fmt.Fprintf(w, "commit: %s\n", app.Commit())
			fmt.Fprintf(w, "built: %s\n", app.Date())
			fmt.Fprintf(w, "go version: %s\n", runtime.Version())
			fmt.Fprintf(w, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
