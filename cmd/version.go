package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "traineeval", displayVersion(version))
	},
}

// displayVersion canonicalizes release versions ("1.2" -> "v1.2.0").
// Anything that is not semver, such as "(devel)", is returned unchanged.
func displayVersion(v string) string {
	tagged := v
	if len(tagged) > 0 && tagged[0] != 'v' {
		tagged = "v" + tagged
	}
	if !semver.IsValid(tagged) {
		return v
	}
	return semver.Canonical(tagged)
}
