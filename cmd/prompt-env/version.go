package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MPLew-is/prompt-env/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the prompt-env version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
