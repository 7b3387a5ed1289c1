package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	app "github.com/root31/nursery/pkg"
	"github.com/spf13/cobra"
)

var outputFormats = []string{"table", "csv", "tsv", "json"}

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", app.Version, app.Build)
		os.Exit(0)
	}
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "table",
		"output format: "+strings.Join(outputFormats, ", "))
}

func formatFlag(cmd *cobra.Command) (string, error) {
	s, _ := cmd.Flags().GetString("format")
	s = strings.ToLower(s)
	if !slices.Contains(outputFormats, s) {
		return "", fmt.Errorf(
			"unknown format %q, use one of: %s",
			s, strings.Join(outputFormats, ", "),
		)
	}
	return s, nil
}

// stringFlag returns the value of a flag and whether it was set.
func stringFlag(cmd *cobra.Command, name string) (string, bool) {
	if !cmd.Flags().Changed(name) {
		return "", false
	}
	s, _ := cmd.Flags().GetString(name)
	return s, true
}
