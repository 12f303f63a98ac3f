package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MPLew-is/prompt-env/internal/entry"
	"github.com/MPLew-is/prompt-env/internal/resolve"
	"github.com/MPLew-is/prompt-env/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "prompt-env [ENTRY [--secure|-s]]...",
	Short: "Prompt for named values and print them as KEY=\"value\" lines",
	Long: `prompt-env collects a value for each named variable and prints the results
as shell-compatible KEY="value" assignments on stdout. Prompts are written to
stderr, so the output can be captured or eval'd without losing interactivity:

  eval "$(prompt-env USERNAME 'API token':TOKEN --secure)"

Each ENTRY is either VARNAME or PROMPT:VARNAME; the text before the last
colon becomes the prompt, so prompts may themselves contain colons. An entry
followed by --secure (or -s) is read without echoing the typed value.

Variables already set in the environment, even to the empty string, are
emitted as-is without prompting.`,
	// Entries carry their own --secure/-s modifiers, which must reach the
	// entry parser rather than be eaten as command flags.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runRoot,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	// With flag parsing disabled, help and version requests show up as
	// ordinary arguments.
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return cmd.Help()
		case "--version":
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		}
	}

	entries, err := entry.Parse(args)
	if err != nil {
		return err
	}
	return resolve.Run(entries, resolve.Options{})
}
