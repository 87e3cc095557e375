package main

import (
	"github.com/hadronized/hop.kak/internal/cli"
	"github.com/spf13/cobra"
)

var stepCmd = &cobra.Command{
	Use:   "step [SELECTION...]",
	Short: "Narrow labelled selections by one key, or cancel",
	Long: `Rebuilds the previous pairing from --labels (or --input json on stdin)
and applies --key or --cancel. Without either it prints the pairing again.

Exit status 2 means the key matched no label; keep the previous output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		labels, _ := cmd.Flags().GetString("labels")
		original, _ := cmd.Flags().GetString("original")
		key, _ := cmd.Flags().GetString("key")
		cancel, _ := cmd.Flags().GetBool("cancel")
		input, _ := cmd.Flags().GetString("input")

		return cli.Step(cli.StepOptions{
			RunOptions: runOptions(cmd),
			Labels:     labels,
			Original:   original,
			Key:        key,
			Cancel:     cancel,
			Input:      input,
		}, args)
	},
}

func init() {
	rootCmd.AddCommand(stepCmd)
	addOutputFlags(stepCmd)

	stepCmd.Flags().String("labels", "", "Space-separated labels emitted by the previous call")
	stepCmd.Flags().String("original", "", "Space-separated selections of the first call")
	stepCmd.Flags().String("key", "", "The typed key")
	stepCmd.Flags().Bool("cancel", false, "Abandon hinting and restore the original selections")
	stepCmd.Flags().String("input", "", "Read the previous call from stdin (json)")
}
