package cmd

import (
	"fmt"

	"github.com/alexiusacademia/golam/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of golam",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "golam v%s\n", version.Version)
		fmt.Fprintln(out, "Composite Laminate Analysis Tool")
		fmt.Fprintf(out, "Build: %s (commit %s)\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
