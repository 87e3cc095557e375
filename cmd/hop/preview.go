package main

import (
	"github.com/hadronized/hop.kak/internal/cli"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:     "preview",
	Short:   "Render a json result from stdin for a human",
	Example: `  hop hint -f json 1.1,1.1 2.1,2.4 | hop preview`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Preview(runOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
