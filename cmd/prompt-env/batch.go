package main

import (
	"github.com/spf13/cobra"

	"github.com/MPLew-is/prompt-env/internal/manifest"
	"github.com/MPLew-is/prompt-env/internal/resolve"
)

var batchFile string

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Collect values declared in a YAML manifest",
	Long: `Collect a value for every prompt declared in a YAML manifest, using the
same environment-first resolution as the command-line form.

Manifest format:

  prompts:
    - name: DB_USER
    - name: DB_PASSWORD
      prompt: "Database password"
      secure: true`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "prompts.yaml", "path to the prompt manifest")
}

func runBatch(cmd *cobra.Command, args []string) error {
	entries, err := manifest.Load(batchFile)
	if err != nil {
		return err
	}
	return resolve.Run(entries, resolve.Options{})
}
