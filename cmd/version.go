package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

// versionString renders version for display. Anything that is not a
// valid semantic version is reported as a development build.
func versionString(v string) string {
	if !semver.IsValid(v) {
		return "(devel) development build"
	}
	if pre := semver.Prerelease(v); pre != "" {
		return v + " (pre-release)"
	}
	return v
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "navyranks", versionString(version))
	},
}
