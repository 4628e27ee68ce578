package cli

import (
	"github.com/spf13/cobra"
)

// versionCmd prints build information.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if formatter.IsJSON() {
			return formatter.JSON(map[string]string{
				"version": buildInfo.Version,
				"commit":  buildInfo.Commit,
				"date":    buildInfo.Date,
			})
		}
		outln(formatter.Writer(), "lastword "+formatVersion(buildInfo))
		return nil
	},
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(versionCmd)
}
