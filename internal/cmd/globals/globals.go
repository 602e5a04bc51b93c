// Package globals defines the flags shared by the libris commands.
package globals

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Names of the persistent flags registered by AddFlags.
const (
	FlagOutput  = "output"
	FlagQuiet   = "quiet"
	FlagVerbose = "verbose"
	FlagNoColor = "no-color"
)

// Flags are the persistent flags every command inherits from the root.
type Flags struct {
	Output  string
	Quiet   bool
	Verbose bool
	NoColor bool
}

// AddFlags registers the persistent flags on root.
func AddFlags(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.StringP(FlagOutput, "o", "", "output format: table, wide, json, yaml")
	pf.BoolP(FlagQuiet, "q", false, "only print errors and warnings")
	pf.BoolP(FlagVerbose, "v", false, "log at debug level")
	pf.Bool(FlagNoColor, false, "disable colored alerts")
}

// Parse reads the persistent flags from the root of cmd. It fails when
// the root was built without AddFlags.
func Parse(cmd *cobra.Command) (*Flags, error) {
	pf := cmd.Root().PersistentFlags()

	output, errOutput := pf.GetString(FlagOutput)
	quiet, errQuiet := pf.GetBool(FlagQuiet)
	verbose, errVerbose := pf.GetBool(FlagVerbose)
	noColor, errNoColor := pf.GetBool(FlagNoColor)
	if err := errors.Join(errOutput, errQuiet, errVerbose, errNoColor); err != nil {
		return nil, fmt.Errorf("reading global flags of %s: %w", cmd.CommandPath(), err)
	}

	return &Flags{Output: output, Quiet: quiet, Verbose: verbose, NoColor: noColor}, nil
}
